package screen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formscreen/pkg/form"
	"github.com/goliatone/go-formscreen/pkg/model"
)

// View is an immutable, localized rendering of the screen.
type View struct {
	Title     string
	Fields    []FieldView
	Submit    Button
	Result    []string
	HasResult bool
	State     form.State
	Derived   form.Derived
}

// FieldView describes one input. Only the members relevant to Widget are set.
type FieldView struct {
	Name     string
	Widget   string
	Label    string
	Required bool

	// text
	Text        string
	Placeholder string
	Error       string

	// slider
	Value   float64
	Display string
	Min     float64
	Max     float64
	Step    float64

	// radio
	Options []Choice

	// checkbox
	Checked bool
}

// Invalid reports whether the field shows an inline error.
func (f FieldView) Invalid() bool { return f.Error != "" }

// Choice is one radio option.
type Choice struct {
	Value    string
	Label    string
	Selected bool
}

// Button is the submit action.
type Button struct {
	Label   string
	Enabled bool
}

// Field returns the field view named name.
func (v View) Field(name string) (FieldView, bool) {
	for _, field := range v.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldView{}, false
}

// View renders the current model state.
func (s *Screen) View() View {
	state := s.model.State()
	derived := state.Derive()

	view := View{
		Title:   s.layout.UIHints["title"],
		State:   state,
		Derived: derived,
		Submit: Button{
			Label:   s.localizer.Localize(form.KeySubmit),
			Enabled: s.model.CanSubmit(),
		},
	}
	if result, ok := s.model.Result(); ok {
		view.HasResult = true
		view.Result = result.Lines()
	}

	view.Fields = make([]FieldView, 0, len(s.layout.Fields))
	for _, field := range s.layout.Fields {
		fv := FieldView{
			Name:     field.Name,
			Widget:   field.Hint("widget"),
			Label:    field.Label,
			Required: field.Required,
		}
		switch field.Name {
		case FieldName:
			fv.Text = state.Name
			fv.Placeholder = field.Placeholder
			if !derived.NameValid {
				fv.Error = field.Hint("errorText")
			}
		case FieldAge:
			fv.Value = state.Age
			fv.Display = strconv.Itoa(derived.AgeInteger)
			fv.Min = boundFromRule(field, model.ValidationRuleMin, form.MinAge)
			fv.Max = boundFromRule(field, model.ValidationRuleMax, form.MaxAge)
			fv.Step = stepHint(field)
		case FieldGender:
			fv.Options = s.genderChoices(field, state.Gender)
		case FieldSubscribed:
			fv.Checked = state.Subscribed
		}
		view.Fields = append(view.Fields, fv)
	}
	return view
}

func (s *Screen) genderChoices(field model.Field, selected form.Gender) []Choice {
	keys := optionKeys(field)
	genders := form.Genders()
	out := make([]Choice, 0, len(genders))
	for _, g := range genders {
		key, ok := keys[string(g)]
		if !ok {
			key = g.LabelKey()
		}
		out = append(out, Choice{
			Value:    string(g),
			Label:    s.localizer.Localize(key),
			Selected: g == selected,
		})
	}
	return out
}

// optionKeys pairs the comma separated optionKeys hint with the field enum.
func optionKeys(field model.Field) map[string]string {
	raw := strings.TrimSpace(field.Hint("optionKeys"))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make(map[string]string, len(parts))
	for i, value := range field.Enum {
		if i >= len(parts) {
			break
		}
		if key := strings.TrimSpace(parts[i]); key != "" {
			out[fmt.Sprint(value)] = key
		}
	}
	return out
}

func stepHint(field model.Field) float64 {
	step, err := strconv.ParseFloat(field.Hint("step"), 64)
	if err != nil || step <= 0 {
		return 1
	}
	return step
}
