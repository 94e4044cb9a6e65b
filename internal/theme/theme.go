package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the console.
type Styles struct {
	Loading        *lipgloss.Style
	Header         *lipgloss.Style
	Message        *lipgloss.Style
	Underline      *lipgloss.Style
	Italic         *lipgloss.Style
	Button         *lipgloss.Style
	SelectedButton *lipgloss.Style
	Pending        *lipgloss.Style
	Notice         *lipgloss.Style
	Error          *lipgloss.Style
	Footer         *lipgloss.Style
	ComposerPrompt *lipgloss.Style
	ComposerText   *lipgloss.Style
	Placeholder    *lipgloss.Style
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Message: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Underline: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Underline(true),
	),
	Italic: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")),
	),
	SelectedButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	Pending: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Notice: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	ComposerPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	ComposerText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
