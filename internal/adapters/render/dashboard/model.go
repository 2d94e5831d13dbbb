package dashboard

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/application"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

// snapshotModel renders one snapshot and quits.
type snapshotModel struct {
	snapshot application.DashboardSnapshot
	opts     RenderOptions
	styles   styles
	output   string
}

func newSnapshotModel(snapshot application.DashboardSnapshot, opts RenderOptions) snapshotModel {
	return snapshotModel{snapshot: snapshot, opts: opts, styles: newStyles()}
}

func (m snapshotModel) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m snapshotModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(renderReadyMsg); ok {
		m.output = renderView(m.snapshot, m.opts, m.styles)
		return m, tea.Quit
	}
	return m, nil
}

func (m snapshotModel) View() string {
	return m.output
}

func Render(snapshot application.DashboardSnapshot, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newSnapshotModel(snapshot, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(snapshotModel)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}
	return rendered.View(), nil
}
