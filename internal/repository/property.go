package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/search"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const addPropertyQuery = `
INSERT INTO properties (
  owner_id, title, description, thumbnail_photo_url, cover_photo_url,
  cost_per_night, parking_spaces, number_of_bathrooms, number_of_bedrooms,
  country, street, city, province, post_code
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id, owner_id, title, description, thumbnail_photo_url, cover_photo_url,
  cost_per_night, parking_spaces, number_of_bathrooms, number_of_bedrooms,
  country, street, city, province, post_code, active`

type PropertyRepository struct {
	db   Querier
	join search.JoinMode
}

func NewPropertyRepository(db Querier, join search.JoinMode) *PropertyRepository {
	return &PropertyRepository{db: db, join: join}
}

// GetAllProperties lists properties matching criteria with their average
// rating, cheapest first, capped at limit. A limit of 0 means search.DefaultLimit.
//
// No match is an empty slice and a nil error.
func (r *PropertyRepository) GetAllProperties(ctx context.Context, criteria search.Criteria, limit int) ([]model.PropertyListing, error) {
	const op = "property.get_all"

	plan := search.Build(criteria, limit, r.join)
	query := plan.SQL()

	rows, err := r.db.Query(ctx, query, plan.Args...)
	if err != nil {
		return nil, sqlerr.Wrap(op, query, err)
	}

	properties, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.PropertyListing])
	if err != nil {
		return nil, sqlerr.Wrap(op, query, err)
	}

	return properties, nil
}

// AddProperty inserts a property and returns the stored row.
func (r *PropertyRepository) AddProperty(ctx context.Context, p model.NewProperty) (*model.Property, error) {
	const op = "property.add"

	rows, err := r.db.Query(ctx, addPropertyQuery,
		p.OwnerID, p.Title, p.Description, p.ThumbnailPhotoURL, p.CoverPhotoURL,
		p.CostPerNight, p.ParkingSpaces, p.NumberOfBathrooms, p.NumberOfBedrooms,
		p.Country, p.Street, p.City, p.Province, p.PostCode,
	)
	if err != nil {
		return nil, sqlerr.Wrap(op, addPropertyQuery, err)
	}

	property, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Property])
	if err != nil {
		return nil, sqlerr.Wrap(op, addPropertyQuery, err)
	}

	return &property, nil
}
