package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-formscreen/pkg/descriptor"
)

// ErrorMapping splits validation feedback into field-level and form-level
// messages.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// Empty reports whether the mapping carries no messages.
func (m ErrorMapping) Empty() bool {
	return len(m.Fields) == 0 && len(m.Form) == 0
}

// Apply copies the mapping into opts, merging with existing messages.
func (m ErrorMapping) Apply(opts *RenderOptions) {
	if opts == nil || m.Empty() {
		return
	}
	for field, messages := range m.Fields {
		if opts.Errors == nil {
			opts.Errors = make(map[string][]string, len(m.Fields))
		}
		opts.Errors[field] = normalizeMessages(append(opts.Errors[field], messages...))
	}
	opts.FormErrors = MergeFormErrors(opts.FormErrors, m.Form...)
}

// MapError converts err into an ErrorMapping. Schema violations keep their
// field keys; any other error becomes a single form-level message.
func MapError(err error) ErrorMapping {
	if err == nil {
		return ErrorMapping{}
	}

	var verr *descriptor.ValidationError
	if !errors.As(err, &verr) {
		return ErrorMapping{Form: normalizeMessages([]string{err.Error()})}
	}

	mapping := ErrorMapping{Form: normalizeMessages(verr.Form)}
	for field, messages := range verr.Fields {
		normalized := normalizeMessages(messages)
		if len(normalized) == 0 {
			continue
		}
		if mapping.Fields == nil {
			mapping.Fields = make(map[string][]string, len(verr.Fields))
		}
		mapping.Fields[field] = normalized
	}
	return mapping
}

// MergeFormErrors concatenates form-level messages, trimming whitespace and
// removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
