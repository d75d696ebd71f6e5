package render

import (
	"fmt"
	"sort"
	"strings"
)

// Theme token names. Every bundled theme defines all of them.
const (
	TokenBackgroundStart = "background-start"
	TokenBackgroundEnd   = "background-end"
	TokenCard            = "card"
	TokenPrimary         = "primary"
	TokenOnPrimary       = "on-primary"
	TokenText            = "text"
	TokenMuted           = "muted"
	TokenError           = "error"
	TokenBorder          = "border"
)

const cssVarPrefix = "--fs-"

// Theme is a named palette shared by the HTML and terminal renderers.
type Theme struct {
	Name    string
	Variant string
	Tokens  map[string]string
}

// DefaultTheme is the light blue profile palette.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Variant: "light",
		Tokens: map[string]string{
			TokenBackgroundStart: "#e3f2fd",
			TokenBackgroundEnd:   "#bbdefb",
			TokenCard:            "#ffffff",
			TokenPrimary:         "#1565C0",
			TokenOnPrimary:       "#ffffff",
			TokenText:            "#0d1b2a",
			TokenMuted:           "#607d8b",
			TokenError:           "#c62828",
			TokenBorder:          "#90caf9",
		},
	}
}

// DarkTheme keeps the primary hue on a dark surface.
func DarkTheme() Theme {
	return Theme{
		Name:    "dark",
		Variant: "dark",
		Tokens: map[string]string{
			TokenBackgroundStart: "#0d1b2a",
			TokenBackgroundEnd:   "#1b263b",
			TokenCard:            "#1f2a3a",
			TokenPrimary:         "#64b5f6",
			TokenOnPrimary:       "#0d1b2a",
			TokenText:            "#e3f2fd",
			TokenMuted:           "#90a4ae",
			TokenError:           "#ef9a9a",
			TokenBorder:          "#37474f",
		},
	}
}

// ThemeByName resolves a bundled theme. An empty name yields DefaultTheme.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default", "light":
		return DefaultTheme(), nil
	case "dark":
		return DarkTheme(), nil
	default:
		return Theme{}, fmt.Errorf("render: unknown theme %q", name)
	}
}

// Token returns the value of key, falling back to DefaultTheme.
func (t Theme) Token(key string) string {
	if value, ok := t.Tokens[key]; ok && value != "" {
		return value
	}
	return DefaultTheme().Tokens[key]
}

// CSSVars maps every token to a `--fs-<token>` custom property.
func (t Theme) CSSVars() map[string]string {
	defaults := DefaultTheme().Tokens
	out := make(map[string]string, len(defaults))
	for key := range defaults {
		out[cssVarPrefix+key] = t.Token(key)
	}
	for key, value := range t.Tokens {
		out[cssVarPrefix+key] = value
	}
	return out
}

// CSSVarsStyle renders CSSVars as a sorted `:root { ... }` block.
func (t Theme) CSSVarsStyle() string {
	vars := t.CSSVars()
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
