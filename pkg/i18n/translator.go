package i18n

import (
	"errors"
	"strings"
)

var (
	// ErrMissingTranslator is reported to MissingTranslationHandler when no
	// Translator was configured.
	ErrMissingTranslator = errors.New("i18n: translator is not configured")
	// ErrMissingTranslation is returned when a key has no message in the
	// requested locale or any of its fallbacks.
	ErrMissingTranslation = errors.New("i18n: missing translation")
)

// Translator resolves a key for a locale. Extra args are applied to the
// message with fmt verbs.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides what text to show when a lookup fails.
// args carries the original arguments followed by a map holding the
// "default" fallback, when one exists.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	if fallback := fallbackFromArgs(args); fallback != "" {
		return fallback
	}
	return key
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	if t == nil {
		if onMissing != nil {
			return onMissing(locale, key, []any{map[string]any{"default": fallback}}, ErrMissingTranslator)
		}
		if strings.TrimSpace(fallback) != "" {
			return fallback
		}
		return key
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}

	if onMissing != nil {
		return onMissing(locale, key, []any{map[string]any{"default": fallback}}, err)
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

func fallbackFromArgs(args []any) string {
	for i := len(args) - 1; i >= 0; i-- {
		values, ok := args[i].(map[string]any)
		if !ok {
			continue
		}
		if fallback, ok := values["default"].(string); ok && strings.TrimSpace(fallback) != "" {
			return fallback
		}
	}
	return ""
}
