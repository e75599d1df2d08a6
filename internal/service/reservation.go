package service

import (
	"context"
	"time"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/search"
	"github.com/rs/zerolog"
)

// ReservationStore is the persistence the reservation service needs.
type ReservationStore interface {
	GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.ReservationListing, error)
	AddReservation(ctx context.Context, res model.NewReservation) (*model.Reservation, error)
}

type ReservationService struct {
	store        ReservationStore
	log          *zerolog.Logger
	defaultLimit int
}

func NewReservationService(store ReservationStore, logger *zerolog.Logger, defaultLimit int) *ReservationService {
	if defaultLimit == 0 {
		defaultLimit = search.DefaultLimit
	}

	log := logger.With().Str("component", "reservation_service").Logger()

	return &ReservationService{store: store, log: &log, defaultLimit: defaultLimit}
}

// ListForGuest returns a guest's reservations, earliest first.
func (s *ReservationService) ListForGuest(ctx context.Context, guestID int64, limit int) ([]model.ReservationListing, error) {
	start := time.Now()

	if limit == 0 {
		limit = s.defaultLimit
	}

	reservations, err := s.store.GetAllReservations(ctx, guestID, limit)
	logResult(s.log, "reservation.list_for_guest", start, len(reservations), err)

	return reservations, err
}

func (s *ReservationService) Add(ctx context.Context, res model.NewReservation) (*model.Reservation, error) {
	start := time.Now()

	reservation, err := s.store.AddReservation(ctx, res)
	logResult(s.log, "reservation.add", start, 1, err)

	return reservation, err
}
