package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/application"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
)

var defaultPageSizes = []int{5, 10, 20}

type RunOptions struct {
	Input     io.Reader
	Output    io.Writer
	Now       func() time.Time
	PageSizes []int
}

// pager is the part of a collection controller the keys drive.
type pager interface {
	NextPage(ctx context.Context) application.FetchResult
	PrevPage(ctx context.Context) application.FetchResult
	Refresh(ctx context.Context) application.FetchResult
	SetSortDirection(ctx context.Context, direction domain.SortDirection) (application.FetchResult, error)
	SetSize(ctx context.Context, size int) (application.FetchResult, error)
}

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Sort    key.Binding
	Filter  key.Binding
	Size    key.Binding
	Focus   key.Binding
	Refresh key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n", "next page")),
		Prev:    key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p", "prev page")),
		Sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort direction")),
		Filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "activity type")),
		Size:    key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "page size")),
		Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Dismiss: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Sort, k.Filter, k.Size, k.Focus, k.Refresh, k.Dismiss, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// stateChangedMsg carries the command that resumes listening on the
// subscription that fired.
type stateChangedMsg struct {
	resume tea.Cmd
}

type operationDoneMsg struct {
	result application.FetchResult
	err    error
}

type interactiveModel struct {
	ctx       context.Context
	shell     *application.Shell
	listeners []tea.Cmd
	keys      keyMap
	help      help.Model
	styles    styles
	now       func() time.Time
	pageSizes []int
	focus     Pane
	filter    int
	snapshot  application.DashboardSnapshot
	lastErr   error
}

func newInteractiveModel(ctx context.Context, shell *application.Shell, opts RunOptions, listeners []tea.Cmd) interactiveModel {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	sizes := opts.PageSizes
	if len(sizes) == 0 {
		sizes = defaultPageSizes
	}

	m := interactiveModel{
		ctx:       ctx,
		shell:     shell,
		listeners: listeners,
		keys:      newKeyMap(),
		help:      help.New(),
		styles:    newStyles(),
		now:       now,
		pageSizes: sizes,
		filter:    -1,
		snapshot:  shell.Snapshot(),
	}
	if current := m.snapshot.Activities.Params.Filter[application.ActivityFilterType]; current != "" {
		m.filter = slices.Index(domain.ActivityTypes(), domain.ActivityType(current))
	}
	return m
}

func (m interactiveModel) Init() tea.Cmd {
	return tea.Batch(m.listeners...)
}

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		m.snapshot = m.shell.Snapshot()
		return m, msg.resume
	case operationDoneMsg:
		m.lastErr = msg.err
		m.snapshot = m.shell.Snapshot()
		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m interactiveModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	focused := m.focused()
	state := m.focusedParams()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		m.focus = (m.focus + 1) % 2
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m, m.run(func(ctx context.Context) (application.FetchResult, error) {
			return focused.NextPage(ctx), nil
		})
	case key.Matches(msg, m.keys.Prev):
		return m, m.run(func(ctx context.Context) (application.FetchResult, error) {
			return focused.PrevPage(ctx), nil
		})
	case key.Matches(msg, m.keys.Refresh):
		return m, m.run(func(ctx context.Context) (application.FetchResult, error) {
			return focused.Refresh(ctx), nil
		})
	case key.Matches(msg, m.keys.Sort):
		direction := state.SortDirection.Toggle()
		return m, m.run(func(ctx context.Context) (application.FetchResult, error) {
			return focused.SetSortDirection(ctx, direction)
		})
	case key.Matches(msg, m.keys.Size):
		size := m.nextSize(state.Size)
		return m, m.run(func(ctx context.Context) (application.FetchResult, error) {
			return focused.SetSize(ctx, size)
		})
	case key.Matches(msg, m.keys.Filter):
		return m.cycleFilter()
	case key.Matches(msg, m.keys.Dismiss):
		if n := len(m.snapshot.Notifications); n > 0 {
			m.shell.Notifications.Dismiss(m.snapshot.Notifications[n-1].ID)
			m.snapshot = m.shell.Snapshot()
		}
		return m, nil
	default:
		return m, nil
	}
}

// cycleFilter steps through "all" and every activity type. It always
// targets the activity pane since recommendations have no filter.
func (m interactiveModel) cycleFilter() (tea.Model, tea.Cmd) {
	types := domain.ActivityTypes()
	m.filter++
	if m.filter >= len(types) {
		m.filter = -1
	}

	var filter domain.Filter
	if m.filter >= 0 {
		filter = application.ActivityTypeFilter(types[m.filter])
	}
	activities := m.shell.Activities
	return m, m.run(func(ctx context.Context) (application.FetchResult, error) {
		return activities.SetFilter(ctx, filter), nil
	})
}

func (m interactiveModel) nextSize(current int) int {
	i := slices.Index(m.pageSizes, current)
	return m.pageSizes[(i+1)%len(m.pageSizes)]
}

func (m interactiveModel) focused() pager {
	if m.focus == PaneRecommendations {
		return m.shell.Recommendations
	}
	return m.shell.Activities
}

func (m interactiveModel) focusedParams() domain.QueryParams {
	if m.focus == PaneRecommendations {
		return m.snapshot.Recommendations.Params
	}
	return m.snapshot.Activities.Params
}

// run executes a controller operation off the update loop, so overlapping
// key presses produce overlapping fetches.
func (m interactiveModel) run(op func(ctx context.Context) (application.FetchResult, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		result, err := op(ctx)
		return operationDoneMsg{result: result, err: err}
	}
}

func (m interactiveModel) View() string {
	body := renderView(m.snapshot, RenderOptions{Now: m.now(), Focus: m.focus}, m.styles)
	parts := []string{body}
	if m.lastErr != nil {
		parts = append(parts, m.styles.failure.Render(m.lastErr.Error()))
	}
	parts = append(parts, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func listen[T any](ch <-chan T) tea.Cmd {
	var cmd tea.Cmd
	cmd = func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return stateChangedMsg{resume: cmd}
	}
	return cmd
}

// Run shows the live dashboard until the user quits or ctx ends.
func Run(ctx context.Context, shell *application.Shell, opts RunOptions) error {
	sessionCh, stopSession := shell.Session.Subscribe()
	defer stopSession()
	activityCh, stopActivities := shell.Activities.Subscribe()
	defer stopActivities()
	recommendationCh, stopRecommendations := shell.Recommendations.Subscribe()
	defer stopRecommendations()
	notificationCh, stopNotifications := shell.Notifications.Subscribe()
	defer stopNotifications()

	listeners := []tea.Cmd{
		listen(sessionCh),
		listen(activityCh),
		listen(recommendationCh),
		listen(notificationCh),
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(newInteractiveModel(ctx, shell, opts, listeners), programOpts...)
	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run dashboard: %w", err)
	}
	if _, ok := finalModel.(interactiveModel); !ok {
		return ErrUnexpectedRenderModel
	}
	return nil
}
