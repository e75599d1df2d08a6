package repository

import (
	"github.com/deppfellow/lightbnb/internal/search"
	"github.com/deppfellow/lightbnb/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users        *UserRepository
	Properties   *PropertyRepository
	Reservations *ReservationRepository
}

// NewRepositories builds every repository on the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	join := search.JoinReviewed
	if s.Config.Search.JoinUnreviewed {
		join = search.JoinAll
	}

	return New(s.DB.Pool, join)
}

// New builds every repository on db.
func New(db Querier, join search.JoinMode) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db),
		Properties:   NewPropertyRepository(db, join),
		Reservations: NewReservationRepository(db),
	}
}
