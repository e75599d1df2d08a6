package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const (
	getUserWithEmailQuery = `
SELECT id, name, email, password
FROM users
WHERE email = $1`

	getUserWithIDQuery = `
SELECT id, name, email, password
FROM users
WHERE id = $1`

	addUserQuery = `
INSERT INTO users (name, email, password)
VALUES ($1, $2, $3)
RETURNING id, name, email, password`
)

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserWithEmail returns the user with the given email.
func (r *UserRepository) GetUserWithEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOne(ctx, "user.get_with_email", getUserWithEmailQuery, email)
}

// GetUserWithID returns the user with the given id.
func (r *UserRepository) GetUserWithID(ctx context.Context, id int64) (*model.User, error) {
	return r.getOne(ctx, "user.get_with_id", getUserWithIDQuery, id)
}

// AddUser inserts a user and returns the stored row.
func (r *UserRepository) AddUser(ctx context.Context, user model.NewUser) (*model.User, error) {
	return r.getOne(ctx, "user.add", addUserQuery, user.Name, user.Email, user.Password)
}

func (r *UserRepository) getOne(ctx context.Context, op, query string, args ...any) (*model.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, sqlerr.Wrap(op, query, err)
	}

	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = sqlerr.NotFound("users")
		}
		return nil, sqlerr.Wrap(op, query, err)
	}

	return &user, nil
}
