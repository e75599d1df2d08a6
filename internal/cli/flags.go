package cli

import (
	"fmt"
	"time"

	"github.com/deppfellow/lightbnb/internal/search"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

func addSearchFlags(flags *pflag.FlagSet) {
	flags.Int64("owner-id", 0, "only properties owned by this user")
	flags.String("city", "", "case-insensitive substring of the city")
	flags.String("min-price", "", "minimum nightly cost in dollars")
	flags.String("max-price", "", "maximum nightly cost in dollars")
	flags.String("min-rating", "", "minimum average review rating")
	flags.Int("limit", 0, "maximum number of results (0 for the default)")
}

// criteriaFromFlags turns the flags the user actually set into search
// criteria. Unset flags stay absent, so --min-price 0 still filters.
func criteriaFromFlags(flags *pflag.FlagSet) (search.Criteria, error) {
	var criteria search.Criteria

	if flags.Changed("owner-id") {
		id, err := flags.GetInt64("owner-id")
		if err != nil {
			return criteria, err
		}
		criteria.OwnerID = &id
	}

	if flags.Changed("city") {
		city, err := flags.GetString("city")
		if err != nil {
			return criteria, err
		}
		criteria.City = city
	}

	var err error
	if criteria.MinimumPrice, err = decimalFlag(flags, "min-price"); err != nil {
		return criteria, err
	}
	if criteria.MaximumPrice, err = decimalFlag(flags, "max-price"); err != nil {
		return criteria, err
	}
	if criteria.MinimumRating, err = decimalFlag(flags, "min-rating"); err != nil {
		return criteria, err
	}

	return criteria, nil
}

func decimalFlag(flags *pflag.FlagSet, name string) (*decimal.Decimal, error) {
	if !flags.Changed(name) {
		return nil, nil
	}

	raw, err := flags.GetString(name)
	if err != nil {
		return nil, err
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", name, raw, err)
	}
	return &d, nil
}

func dateFlag(flags *pflag.FlagSet, name string) (time.Time, error) {
	raw, err := flags.GetString(name)
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q, want YYYY-MM-DD: %w", name, raw, err)
	}
	return t, nil
}
