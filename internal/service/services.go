package service

import (
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/rs/zerolog"
)

type Services struct {
	Users        *UserService
	Properties   *PropertyService
	Reservations *ReservationService
}

// NewService wires every service on the server's repositories.
func NewService(s *server.Server, repos *repository.Repositories) *Services {
	return New(repos, s.Logger, s.Config.Search.DefaultLimit)
}

// New wires every service on repos. defaultLimit replaces a zero limit.
func New(repos *repository.Repositories, logger *zerolog.Logger, defaultLimit int) *Services {
	return &Services{
		Users:        NewUserService(repos.Users, logger),
		Properties:   NewPropertyService(repos.Properties, logger, defaultLimit),
		Reservations: NewReservationService(repos.Reservations, logger, defaultLimit),
	}
}
