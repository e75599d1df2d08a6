package cli

import (
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/spf13/cobra"
)

func newReservationsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reservations",
		Aliases: []string{"reservation"},
		Short:   "List and book reservations",
	}

	cmd.AddCommand(newReservationsListCmd(a))
	cmd.AddCommand(newReservationsAddCmd(a))

	return cmd
}

func newReservationsListCmd(a *app) *cobra.Command {
	var (
		guestID int64
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a guest's reservations, earliest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reservations, err := a.services.Reservations.ListForGuest(cmd.Context(), guestID, limit)
			if err != nil {
				return a.noticeError(err)
			}

			return a.print(reservations)
		},
	}

	cmd.Flags().Int64Var(&guestID, "guest", 0, "guest user id")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results (0 for the default)")
	_ = cmd.MarkFlagRequired("guest")

	return cmd
}

func newReservationsAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Book a property for a guest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := newReservationFromFlags(cmd)
			if err != nil {
				return err
			}

			created, err := a.services.Reservations.Add(cmd.Context(), res)
			if err != nil {
				return a.noticeError(err)
			}

			return a.print(created)
		},
	}

	cmd.Flags().Int64("guest", 0, "guest user id")
	cmd.Flags().Int64("property", 0, "property id")
	cmd.Flags().String("start", "", "first night, YYYY-MM-DD")
	cmd.Flags().String("end", "", "checkout day, YYYY-MM-DD")
	for _, name := range []string{"guest", "property", "start", "end"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newReservationFromFlags(cmd *cobra.Command) (model.NewReservation, error) {
	var (
		res model.NewReservation
		err error
	)

	flags := cmd.Flags()
	res.GuestID, _ = flags.GetInt64("guest")
	res.PropertyID, _ = flags.GetInt64("property")

	if res.StartDate, err = dateFlag(flags, "start"); err != nil {
		return res, err
	}
	if res.EndDate, err = dateFlag(flags, "end"); err != nil {
		return res, err
	}

	return res, nil
}
