// Package testsupport holds helpers shared by renderer and component tests.
package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formscreen/pkg/form"
	"github.com/goliatone/go-formscreen/pkg/i18n"
	"github.com/goliatone/go-formscreen/pkg/screen"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// Localizer binds the embedded catalog to locale.
func Localizer(locale string) *i18n.Localizer {
	return i18n.Bind(i18n.MustDefaultCatalog(), locale)
}

// NewScreen builds a screen over the bundled descriptor and catalog.
func NewScreen(t *testing.T, locale string, options ...form.Option) *screen.Screen {
	t.Helper()

	s, err := screen.New(Context(),
		screen.WithLocalizer(Localizer(locale)),
		screen.WithModelOptions(options...),
	)
	if err != nil {
		t.Fatalf("new screen: %v", err)
	}
	return s
}

// SubmittedScreen returns a screen holding the Alice profile with a result.
func SubmittedScreen(t *testing.T, locale string) *screen.Screen {
	t.Helper()

	s := NewScreen(t, locale)
	m := s.Model()
	m.SetName("Alice")
	if err := m.SetAge(30.7); err != nil {
		t.Fatalf("set age: %v", err)
	}
	if err := m.SetGender(form.GenderFemale); err != nil {
		t.Fatalf("set gender: %v", err)
	}
	m.SetSubscribed(true)
	if _, err := m.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	return s
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CaptureOutput runs render with a buffer and returns both the returned
// string and what was written.
func CaptureOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out, buf.String()
}
