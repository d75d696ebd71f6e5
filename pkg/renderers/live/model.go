package live

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-formscreen/pkg/form"
	"github.com/goliatone/go-formscreen/pkg/screen"
)

// FocusSubmit is the focus slot of the submit button.
const FocusSubmit = "submit"

const (
	ageStep     = 1.0
	agePageStep = 10.0
)

// Model is the bubbletea model driving one screen. It is used through a
// pointer so the change listener and the program share the cached view.
type Model struct {
	screen *screen.Screen
	styles Styles

	input        textinput.Model
	order        []string
	focus        int
	genderCursor int

	view     screen.View
	err      error
	width    int
	quitting bool
	cancel   func()
}

var _ tea.Model = (*Model)(nil)

// NewModel binds a model to s. Call Close to drop the change subscription.
func NewModel(s *screen.Screen, styles Styles) *Model {
	m := &Model{
		screen: s,
		styles: styles,
		input:  textinput.New(),
		view:   s.View(),
	}
	m.input.Prompt = ""

	for _, field := range m.view.Fields {
		m.order = append(m.order, field.Name)
		switch field.Name {
		case screen.FieldName:
			m.input.Placeholder = field.Placeholder
			m.input.SetValue(field.Text)
		case screen.FieldGender:
			m.genderCursor = selectedChoice(field.Options)
		}
	}
	m.order = append(m.order, FocusSubmit)

	m.cancel = s.Model().Subscribe(m.refresh)
	m.syncFocus()
	return m
}

// Close stops listening to model changes.
func (m *Model) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// Focused reports the focused slot: a field name or FocusSubmit.
func (m *Model) Focused() string {
	if len(m.order) == 0 {
		return ""
	}
	return m.order[m.focus]
}

// Err returns the last error raised by the model, if any.
func (m *Model) Err() error { return m.err }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if m.Focused() == screen.FieldName {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return renderFrame(frame{
		view:   m.view,
		focus:  m.Focused(),
		name:   m.input.View(),
		cursor: m.genderCursor,
		err:    m.err,
		width:  m.width,
		help:   true,
	}, m.styles)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return tea.Quit
	case tea.KeyTab, tea.KeyDown:
		return m.moveFocus(1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m.moveFocus(-1)
	}

	switch m.Focused() {
	case screen.FieldName:
		return m.updateName(msg)
	case screen.FieldAge:
		return m.updateAge(msg)
	case screen.FieldGender:
		return m.updateGender(msg)
	case screen.FieldSubscribed:
		switch msg.Type {
		case tea.KeySpace:
			model := m.screen.Model()
			model.SetSubscribed(!model.Subscribed())
		case tea.KeyEnter:
			return m.moveFocus(1)
		}
	case FocusSubmit:
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace {
			m.submit()
		}
	}
	return nil
}

func (m *Model) updateName(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEnter {
		return m.moveFocus(1)
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.screen.Model().SetName(after)
	}
	return cmd
}

func (m *Model) updateAge(msg tea.KeyMsg) tea.Cmd {
	current := m.screen.Model().Age()
	next := current
	switch msg.Type {
	case tea.KeyLeft:
		next = current - ageStep
	case tea.KeyRight:
		next = current + ageStep
	case tea.KeyPgUp:
		next = current + agePageStep
	case tea.KeyPgDown:
		next = current - agePageStep
	case tea.KeyHome:
		next = form.MinAge
	case tea.KeyEnd:
		next = form.MaxAge
	case tea.KeyEnter:
		return m.moveFocus(1)
	default:
		return nil
	}

	next = form.ClampAge(next)
	if next == current {
		return nil
	}
	m.err = m.screen.Model().SetAge(next)
	return nil
}

func (m *Model) updateGender(msg tea.KeyMsg) tea.Cmd {
	field, ok := m.view.Field(screen.FieldGender)
	if !ok || len(field.Options) == 0 {
		return nil
	}
	count := len(field.Options)
	switch msg.Type {
	case tea.KeyLeft:
		m.genderCursor = (m.genderCursor - 1 + count) % count
	case tea.KeyRight:
		m.genderCursor = (m.genderCursor + 1) % count
	case tea.KeySpace:
		gender, err := form.ParseGender(field.Options[m.genderCursor].Value)
		if err == nil {
			err = m.screen.Model().SetGender(gender)
		}
		m.err = err
	case tea.KeyEnter:
		return m.moveFocus(1)
	}
	return nil
}

func (m *Model) submit() {
	if !m.view.Submit.Enabled {
		return
	}
	_, m.err = m.screen.Submit()
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	count := len(m.order)
	if count == 0 {
		return nil
	}
	m.focus = (m.focus + delta + count) % count
	return m.syncFocus()
}

func (m *Model) syncFocus() tea.Cmd {
	if m.Focused() == screen.FieldName {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *Model) refresh(change form.Change) {
	m.view = m.screen.View()
	if change.Field == form.FieldRestore {
		m.input.SetValue(change.State.Name)
		m.input.CursorEnd()
		if field, ok := m.view.Field(screen.FieldGender); ok {
			m.genderCursor = selectedChoice(field.Options)
		}
	}
}

func selectedChoice(options []screen.Choice) int {
	for i, option := range options {
		if option.Selected {
			return i
		}
	}
	return 0
}
