package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/application"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
)

// Pane identifies the collection that paging keys act on.
type Pane int

const (
	PaneActivities Pane = iota
	PaneRecommendations
)

const maxTextWidth = 72

type RenderOptions struct {
	Now   time.Time
	Focus Pane
	// Static hides the focus marker for one-shot output.
	Static bool
}

func renderView(snapshot application.DashboardSnapshot, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Fitness Dashboard"),
		s.header.Render(sessionLine(snapshot.Session)),
	}

	lines = append(lines,
		s.section.Render(renderActivities(snapshot.Activities, opts, s)),
		s.section.Render(renderRecommendations(snapshot.Recommendations, opts, s)),
	)

	if len(snapshot.Notifications) > 0 {
		lines = append(lines, s.section.Render(renderNotifications(snapshot.Notifications, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func sessionLine(session domain.Session) string {
	switch {
	case session.Authenticated():
		identity := *session.Identity
		if identity.Email != "" && identity.Email != identity.DisplayName() {
			return fmt.Sprintf("signed in as %s <%s>", identity.DisplayName(), identity.Email)
		}
		return "signed in as " + identity.DisplayName()
	case session.Status == domain.StatusRestoring:
		return "restoring session..."
	default:
		return "not signed in"
	}
}

func paneTitle(name string, pane Pane, opts RenderOptions, s styles) string {
	if !opts.Static && opts.Focus == pane {
		return s.focused.Render("> " + name)
	}
	return s.pane.Render(name)
}

func renderActivities(state application.CollectionState[domain.Activity], opts RenderOptions, s styles) string {
	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			paneTitle("Activities", PaneActivities, opts, s), " ",
			s.pager.Render(pagerLine(state.Params, state.TotalPages, state.PagesKnown)),
		),
	}
	if state.Phase == application.PhaseFetching {
		parts = append(parts, s.loading.Render("loading..."))
	}

	if len(state.Content) == 0 {
		parts = append(parts, s.empty.Render(emptyMessage(state.Phase, "No activities yet.")))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	for _, activity := range state.Content {
		parts = append(parts, activityLine(activity, opts.Now, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func activityLine(activity domain.Activity, now time.Time, s styles) string {
	details := []string{
		activity.Type.Label(),
		fmt.Sprintf("%d min", activity.DurationMin),
		fmt.Sprintf("%d kcal", activity.CaloriesBurned),
	}
	if when := formatStart(activity.StartTime, now); when != "" {
		details = append(details, when)
	}
	if activity.Status != "" && activity.Status != domain.ActivityCompleted {
		details = append(details, strings.ReplaceAll(string(activity.Status), "_", " "))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		"  ", s.itemTitle.Render(truncate(activity.Title, 32)),
		"  ", s.detail.Render(strings.Join(details, " · ")),
	)
}

func renderRecommendations(state application.CollectionState[domain.Recommendation], opts RenderOptions, s styles) string {
	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			paneTitle("AI Recommendations", PaneRecommendations, opts, s), " ",
			s.pager.Render(pagerLine(state.Params, state.TotalPages, state.PagesKnown)),
		),
	}
	if state.Phase == application.PhaseFetching {
		parts = append(parts, s.loading.Render("loading..."))
	}

	if len(state.Content) == 0 {
		parts = append(parts, s.empty.Render(emptyMessage(state.Phase, "No recommendations yet. Log an activity to get one.")))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	for _, rec := range state.Content {
		label := "General"
		if rec.ActivityType != "" {
			label = rec.ActivityType.Label()
		}
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top,
			"  ", s.itemTitle.Render(label+":"),
			" ", s.detail.Render(truncate(rec.Text, maxTextWidth)),
		))
		if len(rec.Improvements) > 0 {
			parts = append(parts, s.header.Render("    improve: "+truncate(strings.Join(rec.Improvements, "; "), maxTextWidth)))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderNotifications(notifications []domain.Notification, s styles) string {
	parts := make([]string, 0, len(notifications))
	for _, n := range notifications {
		parts = append(parts, s.notification(n.Kind).Render(fmt.Sprintf("[%s] %s", n.Kind, n.Message)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// pagerLine shows 1-based pages; the total is only known after a fetch.
func pagerLine(params domain.QueryParams, totalPages int, known bool) string {
	page := fmt.Sprintf("page %d", params.Page+1)
	if known {
		if totalPages == 0 {
			page = "no pages"
		} else {
			page = fmt.Sprintf("page %d/%d", params.Page+1, totalPages)
		}
	}

	parts := []string{
		page,
		fmt.Sprintf("sort %s %s", params.SortBy, params.SortDirection),
		fmt.Sprintf("size %d", params.Size),
	}
	if activityType := params.Filter[application.ActivityFilterType]; activityType != "" {
		parts = append(parts, "type "+domain.ActivityType(activityType).Label())
	}
	return "(" + strings.Join(parts, " · ") + ")"
}

func emptyMessage(phase application.Phase, settled string) string {
	if phase == application.PhaseIdle {
		return "Not loaded."
	}
	return settled
}

func formatStart(start, now time.Time) string {
	if start.IsZero() {
		return ""
	}
	if !now.IsZero() && start.Year() == now.Year() {
		return start.Format("02 Jan 15:04")
	}
	return start.Format("02 Jan 2006 15:04")
}

func truncate(text string, width int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= width {
		return string(runes)
	}
	return string(runes[:width-3]) + "..."
}
