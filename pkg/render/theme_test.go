package render_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-formscreen/pkg/render"
)

func TestDefaultTheme_Palette(t *testing.T) {
	theme := render.DefaultTheme()
	checks := map[string]string{
		render.TokenBackgroundStart: "#e3f2fd",
		render.TokenBackgroundEnd:   "#bbdefb",
		render.TokenCard:            "#ffffff",
		render.TokenPrimary:         "#1565C0",
	}
	for token, want := range checks {
		if got := theme.Token(token); got != want {
			t.Fatalf("%s: got %q want %q", token, got, want)
		}
	}
}

func TestTheme_CSSVarsStyle(t *testing.T) {
	style := render.DarkTheme().CSSVarsStyle()
	if !strings.HasPrefix(style, ":root {\n") || !strings.HasSuffix(style, "}") {
		t.Fatalf("unexpected style block:\n%s", style)
	}
	if !strings.Contains(style, "  --fs-primary: #64b5f6;\n") {
		t.Fatalf("primary variable missing:\n%s", style)
	}
	if strings.Index(style, "--fs-background-end") > strings.Index(style, "--fs-background-start") {
		t.Fatalf("variables are not sorted:\n%s", style)
	}
}

func TestTheme_TokenFallsBackToDefault(t *testing.T) {
	partial := render.Theme{Name: "brand", Tokens: map[string]string{render.TokenPrimary: "#ff0000"}}
	if got := partial.Token(render.TokenCard); got != "#ffffff" {
		t.Fatalf("card fallback: got %q", got)
	}
	if got := partial.CSSVars()["--fs-primary"]; got != "#ff0000" {
		t.Fatalf("primary override: got %q", got)
	}
}

func TestThemeByName(t *testing.T) {
	if theme, err := render.ThemeByName(" Dark "); err != nil || theme.Variant != "dark" {
		t.Fatalf("dark theme: %v %v", theme, err)
	}
	if theme, err := render.ThemeByName(""); err != nil || theme.Name != "default" {
		t.Fatalf("default theme: %v %v", theme, err)
	}
	if _, err := render.ThemeByName("neon"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
	if got := (render.RenderOptions{}).ResolvedTheme().Name; got != "default" {
		t.Fatalf("resolved theme: got %q", got)
	}
}
