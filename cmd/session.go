package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string
	var returnTo string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the fitness gateway",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, func(ctx context.Context) error {
				if err := app.enter(ctx, domain.RouteLogin); err != nil {
					return err
				}
				secret, err := app.resolvePassword(cmd, password)
				if err != nil {
					return err
				}
				if err := app.shell.Session.Login(ctx, email, secret); err != nil {
					return app.signInFailed(err)
				}
				return app.printSignedIn(cmd, returnTo)
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted on a terminal)")
	cmd.Flags().StringVar(&returnTo, "return-to", "", "Page to continue with after signing in")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// signInFailed posts a failed login or register as one error notification
// and returns it as the command error.
func (a *app) signInFailed(err error) error {
	a.shell.Notifications.Notify(domain.UserMessage(err), domain.NotificationError)
	return describeError(err)
}

func newRegisterCmd(app *app) *cobra.Command {
	var username string
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, func(ctx context.Context) error {
				if err := app.enter(ctx, domain.RouteRegister); err != nil {
					return err
				}
				secret, err := app.resolvePassword(cmd, password)
				if err != nil {
					return err
				}
				if err := app.shell.Session.Register(ctx, username, email, secret); err != nil {
					return app.signInFailed(err)
				}
				return app.printSignedIn(cmd, "")
			})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted on a terminal)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, func(ctx context.Context) error {
				app.shell.Session.Restore(ctx)
				if err := app.shell.Session.Logout(ctx); err != nil {
					return fmt.Errorf("logout: %w", err)
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
				return err
			})
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, func(ctx context.Context) error {
				session := app.shell.Session.Restore(ctx)
				if !session.Authenticated() {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), "not signed in")
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), identityLine(*session.Identity))
				return err
			})
		},
	}
}

func (a *app) printSignedIn(cmd *cobra.Command, returnTo string) error {
	session := a.shell.Session.Session()
	if !session.Authenticated() {
		return domain.ErrNotAuthenticated
	}
	next := a.shell.Guard.AfterLogin(returnTo)
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s. Continue with %s.\n", session.Identity.DisplayName(), commandFor(next))
	return err
}

func (a *app) resolvePassword(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if !a.stdinIsTerminal() {
		return "", errors.New("password is required: pass --password or run on a terminal")
	}

	_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	secret, err := a.readPassword(int(os.Stdin.Fd()))
	_, _ = fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(string(secret), "\r\n"), nil
}

func identityLine(identity domain.Identity) string {
	line := identity.DisplayName()
	if identity.Email != "" && identity.Email != line {
		line += " <" + identity.Email + ">"
	}
	return fmt.Sprintf("%s (id %s)", line, identity.ID)
}

// commandFor maps a route to the command that shows it.
func commandFor(path string) string {
	switch path {
	case domain.RouteProfile.Path:
		return "`fit profile show`"
	case domain.RouteLogin.Path:
		return "`fit login`"
	default:
		return "`fit dashboard`"
	}
}
