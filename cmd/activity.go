package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/application"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
)

var startTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

func newActivityCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activity",
		Aliases: []string{"activities"},
		Short:   "List, log or delete activities",
	}

	cmd.AddCommand(
		newActivityListCmd(app),
		newActivityCreateCmd(app),
		newActivityDeleteCmd(app),
	)

	return cmd
}

type listFlags struct {
	page      int
	size      int
	sortBy    string
	direction string
	asJSON    bool
}

func (f *listFlags) register(cmd *cobra.Command, defaults domain.QueryParams) {
	cmd.Flags().IntVar(&f.page, "page", 1, "Page to show, starting at 1")
	cmd.Flags().IntVar(&f.size, "size", defaults.Size, "Items per page")
	cmd.Flags().StringVar(&f.sortBy, "sort-by", defaults.SortBy, "Field to sort by")
	cmd.Flags().StringVar(&f.direction, "direction", string(defaults.SortDirection), "Sort direction: asc or desc")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print the page as JSON")
}

func (f listFlags) params() (domain.QueryParams, error) {
	if f.page < 1 {
		return domain.QueryParams{}, &domain.ValidationError{Field: "page", Message: "Page must be at least 1"}
	}
	direction, err := domain.ParseSortDirection(f.direction)
	if err != nil {
		return domain.QueryParams{}, err
	}
	return domain.QueryParams{
		Page:          f.page - 1,
		Size:          f.size,
		SortBy:        strings.TrimSpace(f.sortBy),
		SortDirection: direction,
	}, nil
}

type pageOutput[T any] struct {
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	Size       int    `json:"size"`
	SortBy     string `json:"sortBy"`
	Direction  string `json:"sortDirection"`
	Content    []T    `json:"content"`
}

func newPageOutput[T any](state application.CollectionState[T]) pageOutput[T] {
	content := state.Content
	if content == nil {
		content = []T{}
	}
	return pageOutput[T]{
		Page:       state.Params.Page + 1,
		TotalPages: state.TotalPages,
		Size:       state.Params.Size,
		SortBy:     state.Params.SortBy,
		Direction:  string(state.Params.SortDirection),
		Content:    content,
	}
}

func newActivityListCmd(app *app) *cobra.Command {
	var flags listFlags
	var activityType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your activities, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, func(ctx context.Context) error {
				params, err := flags.params()
				if err != nil {
					return describeError(err)
				}
				if strings.TrimSpace(activityType) != "" {
					parsed, ok := domain.ParseActivityType(activityType)
					if !ok {
						return fmt.Errorf("unknown activity type %q", activityType)
					}
					params.Filter = application.ActivityTypeFilter(parsed)
				}

				if err := app.enter(ctx, domain.RouteDashboard); err != nil {
					return err
				}
				result, err := app.shell.Activities.Query(ctx, params)
				if err != nil {
					return describeError(err)
				}
				if result.Err != nil {
					return fmt.Errorf("list activities: %w", result.Err)
				}

				state := app.shell.Activities.State()
				if flags.asJSON {
					return writeJSON(cmd.OutOrStdout(), newPageOutput(state))
				}
				return writeActivities(cmd.OutOrStdout(), state)
			})
		},
	}

	flags.register(cmd, application.ActivityDefaults(app.cfg.ActivityPageSize))
	cmd.Flags().StringVar(&activityType, "type", "", "Only show one activity type, e.g. RUNNING")

	return cmd
}

func writeActivities(out io.Writer, state application.CollectionState[domain.Activity]) error {
	if len(state.Content) == 0 {
		_, _ = fmt.Fprintln(out, "No activities yet.")
	} else {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "ID\tSTART\tTYPE\tTITLE\tMIN\tKCAL\tSTATUS")
		for _, activity := range state.Content {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
				activity.ID,
				formatTime(activity.StartTime),
				activity.Type.Label(),
				activity.Title,
				activity.DurationMin,
				activity.CaloriesBurned,
				activity.Status,
			)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(out, pageLine(state.Params.Page, state.TotalPages))
	return err
}

func newActivityCreateCmd(app *app) *cobra.Command {
	var input domain.ActivityInput
	var start string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Log a new activity and request AI recommendations for it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, func(ctx context.Context) error {
				if err := app.enter(ctx, domain.RouteDashboard); err != nil {
					return err
				}

				startTime, err := parseStartTime(start, app.now)
				if err != nil {
					return err
				}
				input.StartTime = startTime

				created, err := runProgress(ctx, cmd.ErrOrStderr(), "Saving activity...",
					func(ctx context.Context, advance func(string)) (domain.Activity, error) {
						created, err := app.shell.Mutations.CreateActivity(ctx, input)
						if err != nil {
							return domain.Activity{}, err
						}
						advance("Requesting AI recommendations...")
						app.shell.Mutations.Wait()
						return created, nil
					})
				if err != nil {
					return describeError(err)
				}

				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created activity %s (%s).\n", created.ID, created.Title)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&input.Title, "title", "", "Activity title")
	cmd.Flags().StringVar(&input.Description, "description", "", "Free-form notes")
	cmd.Flags().StringVar(&input.Type, "type", "", "Activity type, e.g. RUNNING or WEIGHT_TRAINING")
	cmd.Flags().StringVar(&input.Status, "status", "", "planned, in_progress or completed (default planned)")
	cmd.Flags().IntVar(&input.DurationMin, "duration", 0, "Duration in minutes")
	cmd.Flags().IntVar(&input.CaloriesBurned, "calories", 0, "Calories burned")
	cmd.Flags().StringVar(&start, "start", "", "Start time as YYYY-MM-DDTHH:MM (default now)")
	cmd.Flags().StringVar(&input.AdditionalMetrics, "metrics", "", "Additional metrics as a JSON object")

	return cmd
}

func newActivityDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your activities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, func(ctx context.Context) error {
				if err := app.enter(ctx, domain.RouteDashboard); err != nil {
					return err
				}
				if err := app.shell.Mutations.DeleteActivity(ctx, domain.ActivityID(args[0])); err != nil {
					return describeError(err)
				}
				return nil
			})
		},
	}
}

func parseStartTime(raw string, now func() time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now().Truncate(time.Minute), nil
	}
	for _, layout := range startTimeLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --start %q: use YYYY-MM-DDTHH:MM", raw)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func pageLine(page, totalPages int) string {
	if totalPages == 0 {
		return "no pages"
	}
	return fmt.Sprintf("page %d/%d", page+1, totalPages)
}
