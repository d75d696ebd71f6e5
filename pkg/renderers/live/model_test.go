package live_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formscreen/pkg/form"
	"github.com/goliatone/go-formscreen/pkg/render"
	"github.com/goliatone/go-formscreen/pkg/renderers/live"
	"github.com/goliatone/go-formscreen/pkg/screen"
	"github.com/goliatone/go-formscreen/pkg/testsupport"
)

func newModel(t *testing.T, locale string, options ...form.Option) (*live.Model, *screen.Screen) {
	t.Helper()
	s := testsupport.NewScreen(t, locale, options...)
	m := live.NewModel(s, live.NewStyles(render.DefaultTheme()))
	t.Cleanup(m.Close)
	return m, s
}

func press(m *live.Model, keys ...tea.KeyType) {
	for _, key := range keys {
		m.Update(tea.KeyMsg{Type: key})
	}
}

func typeText(m *live.Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func space(m *live.Model) {
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
}

func focusOn(t *testing.T, m *live.Model, slot string) {
	t.Helper()
	for i := 0; i < 6; i++ {
		if m.Focused() == slot {
			return
		}
		press(m, tea.KeyTab)
	}
	t.Fatalf("focus never reached %q", slot)
}

func TestModel_FocusCycle(t *testing.T) {
	m, _ := newModel(t, "en")
	require.Equal(t, screen.FieldName, m.Focused())

	want := []string{screen.FieldGender, screen.FieldAge, screen.FieldSubscribed, live.FocusSubmit, screen.FieldName}
	for _, slot := range want {
		press(m, tea.KeyTab)
		require.Equal(t, slot, m.Focused())
	}

	press(m, tea.KeyShiftTab)
	require.Equal(t, live.FocusSubmit, m.Focused())
}

func TestModel_TypingEditsName(t *testing.T) {
	m, s := newModel(t, "en")
	require.False(t, s.Model().CanSubmit())

	typeText(m, "Bob")
	require.Equal(t, "Bob", s.Model().Name())
	require.True(t, s.Model().CanSubmit())

	press(m, tea.KeyBackspace, tea.KeyBackspace, tea.KeyBackspace)
	require.Equal(t, "", s.Model().Name())
	require.False(t, s.Model().CanSubmit())
}

func TestModel_TypingIgnoredOffName(t *testing.T) {
	m, s := newModel(t, "en")
	focusOn(t, m, screen.FieldAge)

	typeText(m, "xyz")
	require.Equal(t, "", s.Model().Name())
}

func TestModel_AgeSliderClamps(t *testing.T) {
	m, s := newModel(t, "en")
	focusOn(t, m, screen.FieldAge)

	press(m, tea.KeyRight)
	require.Equal(t, 26.0, s.Model().Age())

	press(m, tea.KeyPgUp)
	require.Equal(t, 36.0, s.Model().Age())

	for i := 0; i < 5; i++ {
		press(m, tea.KeyPgDown)
	}
	require.Equal(t, form.MinAge, s.Model().Age())

	press(m, tea.KeyLeft)
	require.Equal(t, form.MinAge, s.Model().Age())
	require.NoError(t, m.Err())

	press(m, tea.KeyEnd)
	require.Equal(t, form.MaxAge, s.Model().Age())
	press(m, tea.KeyPgUp)
	require.Equal(t, form.MaxAge, s.Model().Age())
}

func TestModel_GenderSelection(t *testing.T) {
	m, s := newModel(t, "en")
	focusOn(t, m, screen.FieldGender)
	require.Equal(t, form.GenderMale, s.Model().Gender())

	press(m, tea.KeyRight)
	require.Equal(t, form.GenderMale, s.Model().Gender(), "moving the cursor does not select")

	space(m)
	require.Equal(t, form.GenderFemale, s.Model().Gender())

	press(m, tea.KeyRight)
	space(m)
	require.Equal(t, form.GenderMale, s.Model().Gender())
}

func TestModel_SubscriptionToggle(t *testing.T) {
	m, s := newModel(t, "en")
	focusOn(t, m, screen.FieldSubscribed)

	space(m)
	require.True(t, s.Model().Subscribed())
	space(m)
	require.False(t, s.Model().Subscribed())
}

func TestModel_SubmitDisabledIsNoop(t *testing.T) {
	m, s := newModel(t, "en", form.WithSubmitPolicy(form.PolicyStrict))
	focusOn(t, m, live.FocusSubmit)

	press(m, tea.KeyEnter)
	require.False(t, s.Model().HasResult())
	require.NoError(t, m.Err())
	require.Contains(t, m.View(), "(Submit)")
}

func TestModel_SubmitProducesResult(t *testing.T) {
	m, s := newModel(t, "en")
	typeText(m, "Alice")
	focusOn(t, m, screen.FieldSubscribed)
	space(m)
	focusOn(t, m, live.FocusSubmit)

	press(m, tea.KeyEnter)
	require.True(t, s.Model().HasResult())

	frame := m.View()
	for _, want := range []string{"Your details", "Name: Alice", "Age: 25", "Gender: Male", "Subscribed: Yes"} {
		require.Contains(t, frame, want)
	}
}

func TestModel_RestoreResyncsInput(t *testing.T) {
	m, s := newModel(t, "en")
	typeText(m, "Bob")

	snapshot := s.Snapshot()
	snapshot.State.Name = "Carol"
	snapshot.State.Gender = form.GenderFemale
	require.NoError(t, s.Restore(snapshot))

	typeText(m, "!")
	require.Equal(t, "Carol!", s.Model().Name())

	focusOn(t, m, screen.FieldGender)
	space(m)
	require.Equal(t, form.GenderFemale, s.Model().Gender())
}

func TestModel_CtrlCQuits(t *testing.T) {
	m, _ := newModel(t, "en")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
	require.Empty(t, m.View())
}

func TestModel_Localized(t *testing.T) {
	m, _ := newModel(t, "ru")
	frame := m.View()
	require.Contains(t, frame, "Профиль")
	require.Contains(t, frame, "Мужской")
}

func TestRenderer_RenderStaticFrame(t *testing.T) {
	s := testsupport.SubmittedScreen(t, "en")
	r := live.New()
	require.Equal(t, "live", r.Name())

	out, err := r.Render(testsupport.Context(), s.View(), render.RenderOptions{
		Errors:     map[string][]string{screen.FieldName: {"taken"}},
		FormErrors: []string{"try again"},
	})
	require.NoError(t, err)

	frame := string(out)
	for _, want := range []string{"Profile", "Alice", "[x] Subscribe to newsletter", "(•) Female", "taken", "try again", "Your details", "Age: 30"} {
		require.Contains(t, frame, want)
	}
	require.NotContains(t, frame, "ctrl+c")
}

func TestRenderer_RenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := live.New().Render(ctx, screen.View{}, render.RenderOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRenderer_RunSubmitsFromKeystrokes(t *testing.T) {
	s := testsupport.NewScreen(t, "en")
	var out bytes.Buffer
	in := strings.NewReader("Zoe\t\t\t\t\r\x03")

	r := live.New(
		live.WithInput(in),
		live.WithOutput(&out),
		live.WithProgramOptions(tea.WithoutSignalHandler()),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := r.Run(ctx, s, render.RenderOptions{})
	require.NoError(t, err)
	require.Equal(t, "Zoe", s.Model().Name())
	require.Contains(t, string(result), "Name: Zoe")
}

func TestRenderer_RunRequiresScreen(t *testing.T) {
	_, err := live.New().Run(context.Background(), nil, render.RenderOptions{})
	require.ErrorIs(t, err, live.ErrNoScreen)
}
