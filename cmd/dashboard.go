package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/adapters/render/dashboard"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
)

func newDashboardCmd(app *app) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show activities, recommendations and notifications",
		Long:  "dashboard loads the first page of your activities and recommendations. On a terminal it stays open and refreshes as data arrives; use --once to print a single snapshot.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, func(ctx context.Context) error {
				if err := app.enter(ctx, domain.RouteDashboard); err != nil {
					return err
				}

				if once || !app.stdoutIsTerminal(cmd.OutOrStdout()) {
					return app.printDashboard(ctx, cmd)
				}

				if _, err := app.shell.Start(ctx); err != nil {
					app.logger.Debug("dashboard initial load", "error", err)
				}
				return app.runDashboard(ctx, app.shell, dashboard.RunOptions{
					Output: cmd.OutOrStdout(),
					Now:    app.now,
				})
			})
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Print one snapshot and exit")

	return cmd
}

func (a *app) printDashboard(ctx context.Context, cmd *cobra.Command) error {
	_, loadErr := a.shell.Start(ctx)
	a.shell.Mutations.Wait()

	output, err := a.renderDashboard(a.shell.Snapshot(), dashboard.RenderOptions{Now: a.now(), Static: true})
	if err != nil {
		return err
	}
	// The snapshot already shows the pending notifications.
	a.shell.Notifications.Drain()

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), output); err != nil {
		return err
	}
	if loadErr != nil {
		return fmt.Errorf("load dashboard: %w", loadErr)
	}
	return nil
}
