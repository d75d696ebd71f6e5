package live

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-formscreen/pkg/render"
)

// Styles groups the lipgloss styles used by the screen.
type Styles struct {
	Theme render.Theme

	Card           lipgloss.Style
	Title          lipgloss.Style
	Label          lipgloss.Style
	Focused        lipgloss.Style
	Muted          lipgloss.Style
	Error          lipgloss.Style
	Selected       lipgloss.Style
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style
	Result         lipgloss.Style
	ResultTitle    lipgloss.Style
	Help           lipgloss.Style
}

// NewStyles derives terminal styles from theme tokens.
func NewStyles(theme render.Theme) Styles {
	color := func(token string) lipgloss.Color {
		return lipgloss.Color(theme.Token(token))
	}

	return Styles{
		Theme: theme,

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color(render.TokenBorder)).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(color(render.TokenPrimary)).
			Bold(true).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(color(render.TokenText)),

		Focused: lipgloss.NewStyle().
			Foreground(color(render.TokenPrimary)).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(color(render.TokenMuted)),

		Error: lipgloss.NewStyle().
			Foreground(color(render.TokenError)),

		Selected: lipgloss.NewStyle().
			Foreground(color(render.TokenPrimary)),

		Button: lipgloss.NewStyle().
			Foreground(color(render.TokenOnPrimary)).
			Background(color(render.TokenPrimary)).
			Padding(0, 2),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(color(render.TokenOnPrimary)).
			Background(color(render.TokenPrimary)).
			Bold(true).
			Underline(true).
			Padding(0, 2),

		ButtonDisabled: lipgloss.NewStyle().
			Foreground(color(render.TokenMuted)).
			Padding(0, 2),

		Result: lipgloss.NewStyle().
			Foreground(color(render.TokenText)).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(color(render.TokenPrimary)).
			PaddingLeft(1).
			MarginTop(1),

		ResultTitle: lipgloss.NewStyle().
			Foreground(color(render.TokenPrimary)).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(color(render.TokenMuted)).
			MarginTop(1),
	}
}
