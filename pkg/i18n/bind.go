package i18n

import (
	"strings"

	"github.com/goliatone/go-formscreen/pkg/form"
)

// BindOption configures Bind.
type BindOption func(*Localizer)

// WithOnMissing overrides how lookups that fail are rendered.
func WithOnMissing(handler MissingTranslationHandler) BindOption {
	return func(l *Localizer) {
		if handler != nil {
			l.onMissing = handler
		}
	}
}

// WithFallbacks supplies per-key text used when the translator has no
// message.
func WithFallbacks(fallbacks map[string]string) BindOption {
	return func(l *Localizer) {
		if len(fallbacks) == 0 {
			return
		}
		if l.fallbacks == nil {
			l.fallbacks = make(map[string]string, len(fallbacks))
		}
		for key, value := range fallbacks {
			l.fallbacks[strings.TrimSpace(key)] = value
		}
	}
}

// Localizer pins a Translator to one locale and satisfies form.Localizer.
type Localizer struct {
	translator Translator
	locale     string
	onMissing  MissingTranslationHandler
	fallbacks  map[string]string
}

var _ form.Localizer = (*Localizer)(nil)

// Bind returns a Localizer resolving keys through t for locale.
func Bind(t Translator, locale string, options ...BindOption) *Localizer {
	l := &Localizer{
		translator: t,
		locale:     strings.TrimSpace(locale),
		onMissing:  missingTranslationDefault,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Locale returns the bound locale.
func (l *Localizer) Locale() string {
	if l == nil {
		return ""
	}
	return l.locale
}

// Localize implements form.Localizer.
func (l *Localizer) Localize(key string) string {
	if l == nil {
		return key
	}
	return translate(l.locale, key, l.fallbacks[strings.TrimSpace(key)], l.translator, l.onMissing)
}
