package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/search"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const (
	getAllReservationsQuery = `
SELECT reservations.id, reservations.start_date, reservations.end_date,
  reservations.property_id, reservations.guest_id,
  properties.title, properties.city, properties.cost_per_night,
  avg(property_reviews.rating) AS average_rating
FROM reservations
JOIN properties ON reservations.property_id = properties.id
LEFT JOIN property_reviews ON properties.id = property_reviews.property_id
WHERE reservations.guest_id = $1
GROUP BY reservations.id, properties.id
ORDER BY reservations.start_date
LIMIT $2`

	addReservationQuery = `
INSERT INTO reservations (start_date, end_date, property_id, guest_id)
VALUES ($1, $2, $3, $4)
RETURNING id, start_date, end_date, property_id, guest_id`
)

type ReservationRepository struct {
	db Querier
}

func NewReservationRepository(db Querier) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// GetAllReservations returns up to limit reservations of guestID, earliest first.
// A limit of 0 means search.DefaultLimit.
func (r *ReservationRepository) GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.ReservationListing, error) {
	const op = "reservation.get_all"

	if limit == 0 {
		limit = search.DefaultLimit
	}

	rows, err := r.db.Query(ctx, getAllReservationsQuery, guestID, limit)
	if err != nil {
		return nil, sqlerr.Wrap(op, getAllReservationsQuery, err)
	}

	reservations, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ReservationListing])
	if err != nil {
		return nil, sqlerr.Wrap(op, getAllReservationsQuery, err)
	}

	return reservations, nil
}

// AddReservation inserts a reservation and returns the stored row.
func (r *ReservationRepository) AddReservation(ctx context.Context, res model.NewReservation) (*model.Reservation, error) {
	const op = "reservation.add"

	rows, err := r.db.Query(ctx, addReservationQuery, res.StartDate, res.EndDate, res.PropertyID, res.GuestID)
	if err != nil {
		return nil, sqlerr.Wrap(op, addReservationQuery, err)
	}

	reservation, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Reservation])
	if err != nil {
		return nil, sqlerr.Wrap(op, addReservationQuery, err)
	}

	return &reservation, nil
}
