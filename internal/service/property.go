package service

import (
	"context"
	"time"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/search"
	"github.com/rs/zerolog"
)

// PropertyStore is the persistence the property service needs.
type PropertyStore interface {
	GetAllProperties(ctx context.Context, criteria search.Criteria, limit int) ([]model.PropertyListing, error)
	AddProperty(ctx context.Context, p model.NewProperty) (*model.Property, error)
}

type PropertyService struct {
	store        PropertyStore
	log          *zerolog.Logger
	defaultLimit int
}

func NewPropertyService(store PropertyStore, logger *zerolog.Logger, defaultLimit int) *PropertyService {
	if defaultLimit == 0 {
		defaultLimit = search.DefaultLimit
	}

	log := logger.With().Str("component", "property_service").Logger()

	return &PropertyService{
		store:        store,
		log:          &log,
		defaultLimit: defaultLimit,
	}
}

// Search lists properties matching criteria. A zero limit uses the
// configured default.
func (s *PropertyService) Search(ctx context.Context, criteria search.Criteria, limit int) ([]model.PropertyListing, error) {
	start := time.Now()

	if limit == 0 {
		limit = s.defaultLimit
	}

	s.log.Debug().
		Bool("filtered", !criteria.IsEmpty()).
		Int("limit", limit).
		Msg("searching properties")

	properties, err := s.store.GetAllProperties(ctx, criteria, limit)
	logResult(s.log, "property.search", start, len(properties), err)

	return properties, err
}

// Add stores a new property.
func (s *PropertyService) Add(ctx context.Context, p model.NewProperty) (*model.Property, error) {
	start := time.Now()

	property, err := s.store.AddProperty(ctx, p)
	logResult(s.log, "property.add", start, 1, err)

	return property, err
}
