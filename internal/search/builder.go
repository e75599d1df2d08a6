package search

import (
	"strconv"
	"strings"
)

// Plan is a parameterized property search statement.
type Plan struct {
	// Conditions are the boolean conditions in emission order. They are
	// joined with AND under a single WHERE.
	Conditions []string

	// Args are the positional arguments. Args[i] binds placeholder $(i+1);
	// the last one is always the limit.
	Args []any

	Join JoinMode
}

// Build produces the search plan for criteria, capped at limit rows.
//
// A limit of 0 means DefaultLimit. Any other value, including a negative
// one, is bound as given.
//
// Conditions are emitted in a fixed order: owner, city, price, rating.
func Build(criteria Criteria, limit int, join JoinMode) *Plan {
	if limit == 0 {
		limit = DefaultLimit
	}

	p := &Plan{Join: join}

	if criteria.OwnerID != nil {
		p.where("rated.owner_id = " + p.bind(*criteria.OwnerID))
	}

	if criteria.City != "" {
		p.where("rated.city ILIKE " + p.bind("%"+criteria.City+"%"))
	}

	switch low, high := criteria.MinimumPrice, criteria.MaximumPrice; {
	case low != nil && high != nil:
		lowArg := p.bind(ToCents(*low))
		highArg := p.bind(ToCents(*high))
		p.where("rated.cost_per_night BETWEEN " + lowArg + " AND " + highArg)
	case low != nil:
		p.where("rated.cost_per_night >= " + p.bind(ToCents(*low)))
	case high != nil:
		p.where("rated.cost_per_night <= " + p.bind(ToCents(*high)))
	}

	if criteria.MinimumRating != nil {
		p.where("rated.average_rating >= " + p.bind(criteria.MinimumRating.String()))
	}

	p.Args = append(p.Args, limit)

	return p
}

// bind appends v and returns its placeholder.
func (p *Plan) bind(v any) string {
	p.Args = append(p.Args, v)
	return "$" + strconv.Itoa(len(p.Args))
}

func (p *Plan) where(condition string) {
	p.Conditions = append(p.Conditions, condition)
}

// Limit returns the bound limit.
func (p *Plan) Limit() any {
	if len(p.Args) == 0 {
		return nil
	}
	return p.Args[len(p.Args)-1]
}

// SQL renders the statement.
//
// Grouping happens in the derived table "rated", so conditions on
// average_rating see the per-property aggregate.
func (p *Plan) SQL() string {
	var sb strings.Builder

	sb.WriteString("SELECT rated.*\nFROM (\n")
	sb.WriteString("  SELECT " + strings.Join(propertyColumns, ", ") + ",\n")
	sb.WriteString("    avg(property_reviews.rating) AS average_rating\n")
	sb.WriteString("  FROM properties\n")
	sb.WriteString("  " + p.Join.keyword() + " property_reviews ON properties.id = property_reviews.property_id\n")
	sb.WriteString("  GROUP BY properties.id\n")
	sb.WriteString(") AS rated\n")

	if len(p.Conditions) > 0 {
		sb.WriteString("WHERE ")
		sb.WriteString(strings.Join(p.Conditions, "\n  AND "))
		sb.WriteString("\n")
	}

	sb.WriteString("ORDER BY rated.cost_per_night\n")
	sb.WriteString("LIMIT $" + strconv.Itoa(len(p.Args)))

	return sb.String()
}

var propertyColumns = []string{
	"properties.id",
	"properties.owner_id",
	"properties.title",
	"properties.description",
	"properties.thumbnail_photo_url",
	"properties.cover_photo_url",
	"properties.cost_per_night",
	"properties.parking_spaces",
	"properties.number_of_bathrooms",
	"properties.number_of_bedrooms",
	"properties.country",
	"properties.street",
	"properties.city",
	"properties.province",
	"properties.post_code",
	"properties.active",
}
