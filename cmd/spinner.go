package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	phaseActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	phaseDoneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// phaseMsg moves the spinner to the next step of a multi-step job.
type phaseMsg string

type jobDoneMsg[T any] struct {
	value T
	err   error
}

// progressModel shows the current phase next to a spinner and lists the
// phases already finished above it.
type progressModel[T any] struct {
	spinner  spinner.Model
	phase    string
	finished []string
	work     tea.Cmd

	value T
	err   error
	done  bool
}

func newProgressModel[T any](phase string, work tea.Cmd) progressModel[T] {
	return progressModel[T]{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(phaseActiveStyle)),
		phase:   phase,
		work:    work,
	}
}

func (m progressModel[T]) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m progressModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case phaseMsg:
		next := strings.TrimSpace(string(msg))
		if next == "" || next == m.phase {
			return m, nil
		}
		m.finished = append(m.finished, m.phase)
		m.phase = next
		return m, nil
	case jobDoneMsg[T]:
		m.done = true
		m.value = msg.value
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m progressModel[T]) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	for _, phase := range m.finished {
		b.WriteString(phaseDoneStyle.Render("✓ " + phase))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%s %s", m.spinner.View(), m.phase)
	return b.String()
}

// runProgress runs work behind a spinner on output. work reports each new
// phase through advance; the spinner's first phase is first.
func runProgress[T any](
	ctx context.Context,
	output io.Writer,
	first string,
	work func(ctx context.Context, advance func(phase string)) (T, error),
) (T, error) {
	var zero T
	var p *tea.Program

	workCmd := func() tea.Msg {
		value, err := work(ctx, func(phase string) { p.Send(phaseMsg(phase)) })
		return jobDoneMsg[T]{value: value, err: err}
	}

	p = tea.NewProgram(
		newProgressModel[T](first, workCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return zero, err
	}

	result, ok := finalModel.(progressModel[T])
	if !ok {
		return zero, fmt.Errorf("unexpected final progress model type %T", finalModel)
	}
	return result.value, result.err
}
