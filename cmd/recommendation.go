package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/application"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
)

func newRecommendationCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recommendation",
		Aliases: []string{"recommendations", "rec"},
		Short:   "Read the AI recommendations for your activities",
	}

	cmd.AddCommand(newRecommendationListCmd(app))

	return cmd
}

func newRecommendationListCmd(app *app) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recommendations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, func(ctx context.Context) error {
				params, err := flags.params()
				if err != nil {
					return describeError(err)
				}
				if err := app.enter(ctx, domain.RouteDashboard); err != nil {
					return err
				}

				result, err := app.shell.Recommendations.Query(ctx, params)
				if err != nil {
					return describeError(err)
				}
				if result.Err != nil {
					return fmt.Errorf("list recommendations: %w", result.Err)
				}

				state := app.shell.Recommendations.State()
				if flags.asJSON {
					return writeJSON(cmd.OutOrStdout(), newPageOutput(state))
				}
				return writeRecommendations(cmd.OutOrStdout(), state)
			})
		},
	}

	flags.register(cmd, application.RecommendationDefaults(app.cfg.RecommendationPageSize))

	return cmd
}

func writeRecommendations(out io.Writer, state application.CollectionState[domain.Recommendation]) error {
	if len(state.Content) == 0 {
		_, _ = fmt.Fprintln(out, "No recommendations yet. Log an activity to get one.")
	}
	for _, rec := range state.Content {
		_, _ = fmt.Fprintf(out, "%s  %s  %s\n", rec.ID, rec.ActivityType.Label(), formatTime(rec.CreatedAt))
		_, _ = fmt.Fprintf(out, "  %s\n", rec.Text)
		writeBullets(out, "improve", rec.Improvements)
		writeBullets(out, "try", rec.Suggestions)
		writeBullets(out, "safety", rec.Safety)
	}
	_, err := fmt.Fprintln(out, pageLine(state.Params.Page, state.TotalPages))
	return err
}

func writeBullets(out io.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}
	_, _ = fmt.Fprintf(out, "  %s: %s\n", label, strings.Join(items, "; "))
}
