package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorDanger  = lipgloss.Color("#DC2626")
	colorBorder  = lipgloss.Color("#D1D5DB")
	colorAccent  = lipgloss.Color("#0EA5E9")
)

// Styles groups the lipgloss styles used by the agenda views.
type Styles struct {
	Eyebrow    lipgloss.Style
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Tab        lipgloss.Style
	ActiveTab  lipgloss.Style
	Banner     lipgloss.Style
	Status     lipgloss.Style
	Section    lipgloss.Style
	Label      lipgloss.Style
	FieldError lipgloss.Style
	Button     lipgloss.Style
	ButtonBusy lipgloss.Style
	Link       lipgloss.Style
	Card       lipgloss.Style
	CardActive lipgloss.Style
	CardName   lipgloss.Style
	Badge      lipgloss.Style
	Muted      lipgloss.Style
	Footer     lipgloss.Style
}

// DefaultStyles returns the agenda color scheme.
func DefaultStyles() Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		MarginBottom(1)

	return Styles{
		Eyebrow:    lipgloss.NewStyle().Foreground(colorMuted).Bold(true),
		Title:      lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		Subtitle:   lipgloss.NewStyle().Foreground(colorMuted),
		Tab:        lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1),
		ActiveTab:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(colorPrimary).Padding(0, 1),
		Banner:     lipgloss.NewStyle().Foreground(colorDanger).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(colorDanger).PaddingLeft(1),
		Status:     lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
		Section:    lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Label:      lipgloss.NewStyle().Foreground(colorMuted).Width(10),
		FieldError: lipgloss.NewStyle().Foreground(colorDanger).PaddingLeft(10),
		Button:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(colorPrimary).Padding(0, 2),
		ButtonBusy: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(colorMuted).Padding(0, 2),
		Link:       lipgloss.NewStyle().Foreground(colorAccent).Underline(true),
		Card:       card,
		CardActive: card.BorderForeground(colorPrimary),
		CardName:   lipgloss.NewStyle().Bold(true),
		Badge:      lipgloss.NewStyle().Foreground(colorPrimary).Background(lipgloss.Color("#EDE9FE")).Padding(0, 1),
		Muted:      lipgloss.NewStyle().Foreground(colorMuted),
		Footer:     lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
	}
}
