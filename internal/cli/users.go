package cli

import (
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/spf13/cobra"
)

func newUsersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Look up and register users",
	}

	cmd.AddCommand(newUsersGetCmd(a))
	cmd.AddCommand(newUsersAddCmd(a))

	return cmd
}

func newUsersGetCmd(a *app) *cobra.Command {
	var (
		email string
		id    int64
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch a user by email or id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				user *model.User
				err  error
			)

			if cmd.Flags().Changed("id") {
				user, err = a.services.Users.GetByID(cmd.Context(), id)
			} else {
				user, err = a.services.Users.GetByEmail(cmd.Context(), email)
			}
			if err != nil {
				return a.noticeError(err)
			}

			return a.print(user)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().Int64Var(&id, "id", 0, "user id")
	cmd.MarkFlagsMutuallyExclusive("email", "id")
	cmd.MarkFlagsOneRequired("email", "id")

	return cmd
}

func newUsersAddCmd(a *app) *cobra.Command {
	var user model.NewUser

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := a.services.Users.Add(cmd.Context(), user)
			if err != nil {
				return a.noticeError(err)
			}

			return a.print(created)
		},
	}

	cmd.Flags().StringVar(&user.Name, "name", "", "display name")
	cmd.Flags().StringVar(&user.Email, "email", "", "email address")
	cmd.Flags().StringVar(&user.Password, "password", "", "password hash to store")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
