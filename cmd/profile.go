package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your profile",
	}

	cmd.AddCommand(newProfileShowCmd(app), newProfileUpdateCmd(app))

	return cmd
}

func newProfileShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the profile stored by the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, func(ctx context.Context) error {
				if err := app.enter(ctx, domain.RouteProfile); err != nil {
					return err
				}
				identity, err := app.shell.Profile.Refresh(ctx)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), identity)
				}
				return writeProfile(cmd, identity)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the profile as JSON")

	return cmd
}

func newProfileUpdateCmd(app *app) *cobra.Command {
	var username string
	var email string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change your username or email",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, func(ctx context.Context) error {
				if err := app.enter(ctx, domain.RouteProfile); err != nil {
					return err
				}

				current := *app.shell.Session.Session().Identity
				update := domain.ProfileUpdate{Username: current.Username, Email: current.Email}
				if cmd.Flags().Changed("username") {
					update.Username = username
				}
				if cmd.Flags().Changed("email") {
					update.Email = email
				}

				identity, err := app.shell.Profile.Update(ctx, update)
				if err != nil {
					return describeError(err)
				}
				return writeProfile(cmd, identity)
			})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "New username")
	cmd.Flags().StringVar(&email, "email", "", "New email")
	cmd.MarkFlagsOneRequired("username", "email")

	return cmd
}

func writeProfile(cmd *cobra.Command, identity domain.Identity) error {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "id:\t%s\n", identity.ID)
	_, _ = fmt.Fprintf(out, "username:\t%s\n", identity.Username)
	_, _ = fmt.Fprintf(out, "email:\t%s\n", identity.Email)
	if !identity.CreatedAt.IsZero() {
		_, _ = fmt.Fprintf(out, "member since:\t%s\n", identity.CreatedAt.Format("02 Jan 2006"))
	}
	return nil
}
