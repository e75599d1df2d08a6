// Package search builds the filtered property listing query.
//
// Build turns a sparse set of optional Criteria and a result limit into a
// Plan: ordered condition fragments plus the positional arguments they bind.
// Placeholders are numbered as conditions are emitted, so the Nth "$n" in
// the rendered SQL always belongs to the Nth argument.
//
// The package holds no state and never touches the database.
package search

import "github.com/shopspring/decimal"

// DefaultLimit is used when the caller gives no limit.
const DefaultLimit = 10

// Criteria is the set of optional property search filters.
//
// A nil pointer or an empty City means the filter is absent. Prices are in
// major currency units (dollars); ratings are on the review scale.
type Criteria struct {
	OwnerID       *int64
	City          string
	MinimumPrice  *decimal.Decimal
	MaximumPrice  *decimal.Decimal
	MinimumRating *decimal.Decimal
}

// IsEmpty reports whether no filter is set.
func (c Criteria) IsEmpty() bool {
	return c.OwnerID == nil &&
		c.City == "" &&
		c.MinimumPrice == nil &&
		c.MaximumPrice == nil &&
		c.MinimumRating == nil
}

// JoinMode selects how properties are joined to their reviews.
type JoinMode int

const (
	// JoinReviewed uses an inner join: properties without reviews are not listed.
	JoinReviewed JoinMode = iota

	// JoinAll uses a left join: unreviewed properties are listed with a NULL rating.
	JoinAll
)

func (m JoinMode) String() string {
	switch m {
	case JoinAll:
		return "all"
	default:
		return "reviewed"
	}
}

func (m JoinMode) keyword() string {
	if m == JoinAll {
		return "LEFT JOIN"
	}
	return "JOIN"
}

// ToCents converts a major-unit amount into whole minor units, rounding
// half away from zero.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
