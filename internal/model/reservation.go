package model

import "time"

// Reservation is a row of the reservations table.
type Reservation struct {
	ID         int64     `db:"id" json:"id"`
	StartDate  time.Time `db:"start_date" json:"start_date"`
	EndDate    time.Time `db:"end_date" json:"end_date"`
	PropertyID int64     `db:"property_id" json:"property_id"`
	GuestID    int64     `db:"guest_id" json:"guest_id"`
}

// ReservationListing is a guest's reservation with a summary of the booked property.
type ReservationListing struct {
	Reservation
	Title         string   `db:"title" json:"title"`
	City          string   `db:"city" json:"city"`
	CostPerNight  int64    `db:"cost_per_night" json:"cost_per_night"`
	AverageRating *float64 `db:"average_rating" json:"average_rating"`
}

// NewReservation is the input of an insert into reservations.
type NewReservation struct {
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	PropertyID int64     `json:"property_id"`
	GuestID    int64     `json:"guest_id"`
}
