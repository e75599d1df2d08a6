package service

import (
	"context"
	"time"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/rs/zerolog"
)

// UserStore is the persistence the user service needs.
type UserStore interface {
	GetUserWithEmail(ctx context.Context, email string) (*model.User, error)
	GetUserWithID(ctx context.Context, id int64) (*model.User, error)
	AddUser(ctx context.Context, user model.NewUser) (*model.User, error)
}

type UserService struct {
	store UserStore
	log   *zerolog.Logger
}

func NewUserService(store UserStore, logger *zerolog.Logger) *UserService {
	log := logger.With().Str("component", "user_service").Logger()
	return &UserService{store: store, log: &log}
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	start := time.Now()

	user, err := s.store.GetUserWithEmail(ctx, email)
	logResult(s.log, "user.get_by_email", start, 1, err)

	return user, err
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	start := time.Now()

	user, err := s.store.GetUserWithID(ctx, id)
	logResult(s.log, "user.get_by_id", start, 1, err)

	return user, err
}

func (s *UserService) Add(ctx context.Context, user model.NewUser) (*model.User, error) {
	start := time.Now()

	created, err := s.store.AddUser(ctx, user)
	logResult(s.log, "user.add", start, 1, err)

	return created, err
}
