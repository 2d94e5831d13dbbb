package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
)

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	section   lipgloss.Style
	pane      lipgloss.Style
	focused   lipgloss.Style
	pager     lipgloss.Style
	itemTitle lipgloss.Style
	detail    lipgloss.Style
	empty     lipgloss.Style
	loading   lipgloss.Style
	success   lipgloss.Style
	failure   lipgloss.Style
	info      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section:   lipgloss.NewStyle().MarginTop(1),
		pane:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		focused:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		pager:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		itemTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:     lipgloss.NewStyle().Faint(true),
		loading:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("69")),
		success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		failure:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		info:      lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	}
}

func (s styles) notification(kind domain.NotificationKind) lipgloss.Style {
	switch kind {
	case domain.NotificationSuccess:
		return s.success
	case domain.NotificationError:
		return s.failure
	default:
		return s.info
	}
}
