package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
)

var errAlreadySignedIn = errors.New("already signed in")

// run executes a command body, waits for background work it started and
// prints the notifications it produced.
func (a *app) run(cmd *cobra.Command, fn func(ctx context.Context) error) error {
	err := fn(cmd.Context())

	a.shell.Mutations.Wait()
	a.printNotifications(cmd.OutOrStdout())
	a.shell.Close()
	if a.takeRedirect() == domain.RouteLogin.Path {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Run `fit login` to sign in again.")
	}
	return err
}

// enter restores the persisted session and applies the route guard.
func (a *app) enter(ctx context.Context, route domain.Route) error {
	a.shell.Session.Restore(ctx)

	decision := a.shell.Access(route)
	if decision.Allowed {
		return nil
	}
	if decision.RedirectTo == domain.RouteLogin.Path {
		return fmt.Errorf("%w: run `fit login` to open %s", errLoginRequired, decision.ReturnTo)
	}

	name := a.shell.Session.Session().Identity.DisplayName()
	return fmt.Errorf("%w as %s: run `fit logout` first", errAlreadySignedIn, name)
}

func (a *app) printNotifications(w io.Writer) {
	for _, n := range a.shell.Notifications.Drain() {
		_, _ = fmt.Fprintf(w, "[%s] %s\n", n.Kind, n.Message)
	}
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

// describeError turns domain errors into the sentence shown to the user.
func describeError(err error) error {
	if err == nil {
		return nil
	}
	var validation *domain.ValidationError
	var authErr *domain.AuthError
	switch {
	case errors.As(err, &validation), errors.As(err, &authErr):
		return errors.New(domain.UserMessage(err))
	default:
		return err
	}
}
