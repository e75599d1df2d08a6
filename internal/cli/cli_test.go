package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/search"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	flags := pflag.NewFlagSet("search", pflag.ContinueOnError)
	addSearchFlags(flags)
	require.NoError(t, flags.Parse(args))

	return flags
}

func TestCriteriaFromFlags(t *testing.T) {
	t.Run("nothing set", func(t *testing.T) {
		criteria, err := criteriaFromFlags(searchFlags(t))
		require.NoError(t, err)
		assert.True(t, criteria.IsEmpty())
	})

	t.Run("all set", func(t *testing.T) {
		criteria, err := criteriaFromFlags(searchFlags(t,
			"--owner-id", "7",
			"--city", "Vancouver",
			"--min-price", "50",
			"--max-price", "150.50",
			"--min-rating", "4",
		))
		require.NoError(t, err)

		require.NotNil(t, criteria.OwnerID)
		assert.Equal(t, int64(7), *criteria.OwnerID)
		assert.Equal(t, "Vancouver", criteria.City)
		assert.Equal(t, "50", criteria.MinimumPrice.String())
		assert.Equal(t, "150.5", criteria.MaximumPrice.String())
		assert.Equal(t, "4", criteria.MinimumRating.String())
	})

	t.Run("explicit zero price is present", func(t *testing.T) {
		criteria, err := criteriaFromFlags(searchFlags(t, "--min-price", "0"))
		require.NoError(t, err)

		require.NotNil(t, criteria.MinimumPrice)
		assert.True(t, criteria.MinimumPrice.IsZero())
		assert.Nil(t, criteria.MaximumPrice)
	})

	t.Run("bad decimal", func(t *testing.T) {
		_, err := criteriaFromFlags(searchFlags(t, "--min-rating", "four"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--min-rating")
	})
}

func TestNewPropertyFromFlags(t *testing.T) {
	flags := pflag.NewFlagSet("add", pflag.ContinueOnError)
	addPropertyFlags(flags)
	require.NoError(t, flags.Parse([]string{
		"--owner-id", "3",
		"--title", "Cabin",
		"--cost-per-night", "93.456",
		"--bedrooms", "2",
		"--city", "Banff",
	}))

	p, err := newPropertyFromFlags(flags)
	require.NoError(t, err)

	assert.Equal(t, int64(3), p.OwnerID)
	assert.Equal(t, "Cabin", p.Title)
	assert.Equal(t, int64(9346), p.CostPerNight)
	assert.Equal(t, int32(2), p.NumberOfBedrooms)
	assert.Equal(t, "Banff", p.City)

	require.NoError(t, flags.Set("cost-per-night", "cheap"))
	_, err = newPropertyFromFlags(flags)
	assert.Error(t, err)
}

func TestNewReservationFromFlags(t *testing.T) {
	cmd := newReservationsAddCmd(&app{})
	require.NoError(t, cmd.ParseFlags([]string{
		"--guest", "1", "--property", "4", "--start", "2026-07-01", "--end", "2026-07-05",
	}))

	res, err := newReservationFromFlags(cmd)
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.GuestID)
	assert.Equal(t, int64(4), res.PropertyID)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), res.StartDate)
	assert.Equal(t, time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC), res.EndDate)

	require.NoError(t, cmd.Flags().Set("end", "07/05/2026"))
	_, err = newReservationFromFlags(cmd)
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd(&app{})

	for _, path := range [][]string{
		{"properties", "search"},
		{"properties", "add"},
		{"users", "get"},
		{"users", "add"},
		{"reservations", "list"},
		{"reservations", "add"},
		{"ping"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestPropertiesSearchCommand(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer mock.Close()

	logger := zerolog.Nop()
	var out bytes.Buffer
	a := &app{
		out:      &out,
		services: service.New(repository.New(mock, search.JoinReviewed), &logger, 0),
	}

	owner := int64(3)
	plan := search.Build(search.Criteria{OwnerID: &owner}, search.DefaultLimit, search.JoinReviewed)

	columns := []string{
		"id", "owner_id", "title", "description", "thumbnail_photo_url", "cover_photo_url",
		"cost_per_night", "parking_spaces", "number_of_bathrooms", "number_of_bedrooms",
		"country", "street", "city", "province", "post_code", "active", "average_rating",
	}
	avg := 4.5
	mock.ExpectQuery(plan.SQL()).
		WithArgs(int64(3), search.DefaultLimit).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(
			int64(11), int64(3), "Cabin", "", "", "",
			int64(12000), int32(1), int32(1), int32(2),
			"Canada", "1 Main St", "Banff", "Alberta", "T1L", true, &avg,
		))

	cmd := newPropertiesSearchCmd(a)
	cmd.SetArgs([]string{"--owner-id", "3"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Contains(t, out.String(), `"city": "Banff"`)
	assert.Contains(t, out.String(), `"average_rating": 4.5`)
}

func TestUsersGetRequiresOneFlag(t *testing.T) {
	cmd := newUsersGetCmd(&app{})
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SilenceUsage = true

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}
