package cli

import (
	"fmt"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/search"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newPropertiesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "properties",
		Aliases: []string{"property"},
		Short:   "Search and create rental properties",
	}

	cmd.AddCommand(newPropertiesSearchCmd(a))
	cmd.AddCommand(newPropertiesAddCmd(a))

	return cmd
}

func newPropertiesSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "List properties matching the given filters, cheapest first",
		Example: `  lightbnb properties search --city vancouver --min-rating 4
  lightbnb properties search --min-price 50 --max-price 150 --limit 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			criteria, err := criteriaFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			limit, _ := cmd.Flags().GetInt("limit")

			listings, err := a.services.Properties.Search(cmd.Context(), criteria, limit)
			if err != nil {
				return a.noticeError(err)
			}

			return a.print(listings)
		},
	}

	addSearchFlags(cmd.Flags())

	return cmd
}

func addPropertyFlags(flags *pflag.FlagSet) {
	flags.Int64("owner-id", 0, "id of the owning user")
	flags.String("title", "", "listing title")
	flags.String("description", "", "listing description")
	flags.String("thumbnail-photo-url", "", "thumbnail image URL")
	flags.String("cover-photo-url", "", "cover image URL")
	flags.String("cost-per-night", "0", "nightly cost in dollars")
	flags.Int32("parking-spaces", 0, "number of parking spaces")
	flags.Int32("bathrooms", 0, "number of bathrooms")
	flags.Int32("bedrooms", 0, "number of bedrooms")
	flags.String("country", "", "country")
	flags.String("street", "", "street address")
	flags.String("city", "", "city")
	flags.String("province", "", "province or state")
	flags.String("post-code", "", "postal code")
}

// newPropertyFromFlags reads the property flags. Cost is taken in dollars
// and stored in cents.
func newPropertyFromFlags(flags *pflag.FlagSet) (model.NewProperty, error) {
	raw, _ := flags.GetString("cost-per-night")
	cost, err := decimal.NewFromString(raw)
	if err != nil {
		return model.NewProperty{}, fmt.Errorf("invalid --cost-per-night %q: %w", raw, err)
	}

	p := model.NewProperty{CostPerNight: search.ToCents(cost)}
	p.OwnerID, _ = flags.GetInt64("owner-id")
	p.Title, _ = flags.GetString("title")
	p.Description, _ = flags.GetString("description")
	p.ThumbnailPhotoURL, _ = flags.GetString("thumbnail-photo-url")
	p.CoverPhotoURL, _ = flags.GetString("cover-photo-url")
	p.ParkingSpaces, _ = flags.GetInt32("parking-spaces")
	p.NumberOfBathrooms, _ = flags.GetInt32("bathrooms")
	p.NumberOfBedrooms, _ = flags.GetInt32("bedrooms")
	p.Country, _ = flags.GetString("country")
	p.Street, _ = flags.GetString("street")
	p.City, _ = flags.GetString("city")
	p.Province, _ = flags.GetString("province")
	p.PostCode, _ = flags.GetString("post-code")

	return p, nil
}

func newPropertiesAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a property listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := newPropertyFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			property, err := a.services.Properties.Add(cmd.Context(), p)
			if err != nil {
				return a.noticeError(err)
			}

			return a.print(property)
		},
	}

	addPropertyFlags(cmd.Flags())
	_ = cmd.MarkFlagRequired("owner-id")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
