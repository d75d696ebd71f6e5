package live

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-formscreen/pkg/screen"
)

const sliderWidth = 20

const helpText = "tab/shift+tab move • ←/→ adjust • pgup/pgdn ±10 • space select • enter submit • ctrl+c quit"

type frame struct {
	view   screen.View
	focus  string
	name   string
	cursor int
	err    error
	width  int
	help   bool

	fieldErrors map[string][]string
	formErrors  []string
}

func renderFrame(f frame, st Styles) string {
	var sections []string
	if f.view.Title != "" {
		sections = append(sections, st.Title.Render(f.view.Title))
	}
	for _, message := range f.formErrors {
		sections = append(sections, st.Error.Render(message))
	}

	for _, field := range f.view.Fields {
		sections = append(sections, renderField(f, field, st))
	}
	sections = append(sections, "", renderButton(f, st))

	if f.err != nil {
		sections = append(sections, st.Error.Render(f.err.Error()))
	}
	if f.view.HasResult && len(f.view.Result) > 0 {
		lines := []string{st.ResultTitle.Render(f.view.Result[0])}
		lines = append(lines, f.view.Result[1:]...)
		sections = append(sections, st.Result.Render(strings.Join(lines, "\n")))
	}

	card := st.Card
	if f.width > 4 {
		card = card.MaxWidth(f.width)
	}
	out := card.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	if f.help {
		out = lipgloss.JoinVertical(lipgloss.Left, out, st.Help.Render(helpText))
	}
	return out
}

func renderField(f frame, field screen.FieldView, st Styles) string {
	focused := f.focus == field.Name
	marker := "  "
	label := st.Label
	if focused {
		marker = "› "
		label = st.Focused
	}

	var lines []string
	switch field.Widget {
	case "checkbox":
		box := "[ ]"
		if field.Checked {
			box = "[x]"
		}
		lines = append(lines, marker+label.Render(box+" "+field.Label))
	case "radio":
		lines = append(lines, marker+label.Render(field.Label))
		lines = append(lines, "    "+renderChoices(field, focused, f.cursor, st))
	case "slider":
		lines = append(lines, marker+label.Render(field.Label))
		lines = append(lines, "    "+renderSlider(field, st)+" "+label.Render(field.Display))
	default:
		lines = append(lines, marker+label.Render(field.Label))
		text := f.name
		if text == "" && field.Text == "" {
			text = st.Muted.Render(field.Placeholder)
		} else if text == "" {
			text = field.Text
		}
		lines = append(lines, "    "+text)
		if field.Invalid() {
			lines = append(lines, "    "+st.Error.Render(field.Error))
		}
	}

	for _, message := range f.fieldErrors[field.Name] {
		lines = append(lines, "    "+st.Error.Render(message))
	}
	return strings.Join(lines, "\n")
}

func renderChoices(field screen.FieldView, focused bool, cursor int, st Styles) string {
	parts := make([]string, 0, len(field.Options))
	for i, option := range field.Options {
		mark := "( )"
		if option.Selected {
			mark = "(•)"
		}
		text := mark + " " + option.Label
		switch {
		case focused && i == cursor:
			text = st.Focused.Render(text)
		case option.Selected:
			text = st.Selected.Render(text)
		default:
			text = st.Label.Render(text)
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "  ")
}

func renderSlider(field screen.FieldView, st Styles) string {
	span := field.Max - field.Min
	filled := 0
	if span > 0 {
		filled = int(math.Round((field.Value - field.Min) / span * sliderWidth))
	}
	filled = min(max(filled, 0), sliderWidth)
	return st.Selected.Render(strings.Repeat("━", filled)) +
		"●" +
		st.Muted.Render(strings.Repeat("─", sliderWidth-filled))
}

func renderButton(f frame, st Styles) string {
	label := f.view.Submit.Label
	switch {
	case !f.view.Submit.Enabled:
		return "  " + st.ButtonDisabled.Render("("+label+")")
	case f.focus == FocusSubmit:
		return "› " + st.ButtonFocused.Render(label)
	default:
		return "  " + st.Button.Render(label)
	}
}
