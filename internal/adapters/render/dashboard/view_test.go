package dashboard

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/application"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/ports"
)

var renderNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestRenderSignedInSnapshot(t *testing.T) {
	output, err := Render(application.DashboardSnapshot{
		Session: domain.Session{
			Status:   domain.StatusAuthenticated,
			Token:    "jwt",
			Identity: &domain.Identity{ID: "1", Username: "ana", Email: "ana@example.com"},
		},
		Activities: application.CollectionState[domain.Activity]{
			Params:     application.ActivityDefaults(5),
			TotalPages: 3,
			PagesKnown: true,
			Phase:      application.PhaseSettled,
			Content: []domain.Activity{{
				ID: "a1", Title: "Morning run", Type: domain.ActivityRunning, Status: domain.ActivityCompleted,
				DurationMin: 30, CaloriesBurned: 320, StartTime: time.Date(2026, 3, 2, 6, 45, 0, 0, time.UTC),
			}},
		},
		Recommendations: application.CollectionState[domain.Recommendation]{
			Params:     application.RecommendationDefaults(5),
			TotalPages: 1,
			PagesKnown: true,
			Phase:      application.PhaseSettled,
			Content: []domain.Recommendation{{
				ID: "r1", ActivityType: domain.ActivityWeightTraining, Text: "Add a rest day", Improvements: []string{"sleep"},
			}},
		},
		Notifications: []domain.Notification{{ID: "n1", Message: "Activity created successfully!", Kind: domain.NotificationSuccess}},
	}, RenderOptions{Now: renderNow, Static: true})

	require.NoError(t, err)
	assert.Contains(t, output, "signed in as ana <ana@example.com>")
	assert.Contains(t, output, "page 1/3")
	assert.Contains(t, output, "sort startTime desc")
	assert.Contains(t, output, "Morning run")
	assert.Contains(t, output, "Running · 30 min · 320 kcal · 02 Mar 06:45")
	assert.Contains(t, output, "Weight Training: Add a rest day")
	assert.Contains(t, output, "improve: sleep")
	assert.Contains(t, output, "[success] Activity created successfully!")
	assert.NotContains(t, output, "> Activities")
}

func TestRenderEmptyAndLoadingStates(t *testing.T) {
	output, err := Render(application.DashboardSnapshot{
		Session: domain.Session{Status: domain.StatusUnauthenticated},
		Activities: application.CollectionState[domain.Activity]{
			Params: application.ActivityDefaults(5),
			Phase:  application.PhaseIdle,
		},
		Recommendations: application.CollectionState[domain.Recommendation]{
			Params:     application.RecommendationDefaults(5),
			Phase:      application.PhaseFetching,
			PagesKnown: true,
		},
	}, RenderOptions{Now: renderNow, Focus: PaneRecommendations})

	require.NoError(t, err)
	assert.Contains(t, output, "not signed in")
	assert.Contains(t, output, "Not loaded.")
	assert.Contains(t, output, "loading...")
	assert.Contains(t, output, "no pages")
	assert.Contains(t, output, "> AI Recommendations")
}

func TestPagerLineShowsFilterLabel(t *testing.T) {
	params := application.ActivityDefaults(10)
	params.Page = 1
	params.Filter = application.ActivityTypeFilter(domain.ActivityHIIT)

	assert.Equal(t, "(page 2 · sort startTime desc · size 10 · type HIIT)", pagerLine(params, 0, false))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}

type recordingActivities struct {
	mu     sync.Mutex
	params []domain.QueryParams
}

func (r *recordingActivities) List(_ context.Context, params domain.QueryParams) (domain.Page[domain.Activity], error) {
	r.mu.Lock()
	r.params = append(r.params, params)
	r.mu.Unlock()
	return domain.Page[domain.Activity]{
		Content:    []domain.Activity{{ID: "a1", Title: "Walk", Type: domain.ActivityWalking}},
		TotalPages: 4,
	}, nil
}

func (r *recordingActivities) Create(context.Context, domain.NewActivity) (domain.Activity, error) {
	return domain.Activity{}, nil
}

func (r *recordingActivities) Delete(context.Context, domain.ActivityID) error {
	return nil
}

func (r *recordingActivities) last() domain.QueryParams {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.params[len(r.params)-1]
}

type staticRecommendations struct{}

func (staticRecommendations) List(context.Context, domain.QueryParams) (domain.Page[domain.Recommendation], error) {
	return domain.Page[domain.Recommendation]{TotalPages: 1}, nil
}

func (staticRecommendations) Analyze(context.Context, domain.ActivityID) ([]domain.Recommendation, error) {
	return nil, nil
}

func newTestModel(t *testing.T) (interactiveModel, *recordingActivities) {
	t.Helper()

	activities := &recordingActivities{}
	shell := application.NewShell(application.ShellDeps{
		Activities:      activities,
		Recommendations: staticRecommendations{},
		Clock:           ports.SystemClock{},
	})
	t.Cleanup(shell.Close)

	return newInteractiveModel(context.Background(), shell, RunOptions{Now: func() time.Time { return renderNow }}, nil), activities
}

func press(t *testing.T, m interactiveModel, msg tea.KeyMsg) interactiveModel {
	t.Helper()

	updated, cmd := m.Update(msg)
	m = updated.(interactiveModel)
	if cmd == nil {
		return m
	}
	done, ok := cmd().(operationDoneMsg)
	require.True(t, ok)
	updated, _ = m.Update(done)
	return updated.(interactiveModel)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInteractiveKeysDriveFocusedCollection(t *testing.T) {
	m, activities := newTestModel(t)

	m = press(t, m, runes("r"))
	assert.Equal(t, 0, activities.last().Page)
	assert.Equal(t, 4, m.snapshot.Activities.TotalPages)

	m = press(t, m, runes("n"))
	assert.Equal(t, 1, activities.last().Page)

	m = press(t, m, runes("s"))
	assert.Equal(t, domain.SortAscending, activities.last().SortDirection)
	assert.Equal(t, 0, activities.last().Page)

	m = press(t, m, runes("z"))
	assert.Equal(t, 10, activities.last().Size)

	m = press(t, m, runes("f"))
	assert.Equal(t, string(domain.ActivityRunning), activities.last().Filter[application.ActivityFilterType])

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, PaneRecommendations, m.focus)
	assert.Contains(t, m.View(), "> AI Recommendations")
}

func TestInteractiveDismissRemovesNewestNotification(t *testing.T) {
	m, _ := newTestModel(t)

	m.shell.Notifications.Notify("first", domain.NotificationInfo)
	m.shell.Notifications.Notify("second", domain.NotificationError)
	m.snapshot = m.shell.Snapshot()

	m = press(t, m, runes("x"))
	require.Len(t, m.snapshot.Notifications, 1)
	assert.Equal(t, "first", m.snapshot.Notifications[0].Message)
}

func TestInteractiveQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestListenResumesUntilChannelCloses(t *testing.T) {
	ch := make(chan int, 1)
	cmd := listen(ch)

	ch <- 1
	msg, ok := cmd().(stateChangedMsg)
	require.True(t, ok)
	require.NotNil(t, msg.resume)

	close(ch)
	assert.Nil(t, msg.resume())
}
