package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formscreen/pkg/model"
)

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field model.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for fields based on explicit hints or registered
// matchers. Higher priority wins; ties fall back to registration order. An
// empty registry never resolves a widget.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers for the text,
// radio, slider and checkbox widgets.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher with the provided name and priority. The latest
// registration wins between equal names only through priority and order.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a field. An explicit widget UI hint is
// honoured before matcher evaluation.
func (r *Registry) Resolve(field model.Field) (string, bool) {
	if explicit := strings.TrimSpace(field.Hint("widget")); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// Decorate implements model.Decorator. Resolved widgets are stored in
// UIHints["widget"]; existing hints are preserved.
func (r *Registry) Decorate(form *model.FormModel) error {
	if r == nil || form == nil {
		return nil
	}
	for idx, field := range form.Fields {
		widget, ok := r.Resolve(field)
		if !ok || widget == "" {
			continue
		}
		if field.UIHints == nil {
			field.UIHints = make(map[string]string)
		}
		if field.UIHints["widget"] == "" {
			field.UIHints["widget"] = widget
		}
		form.Fields[idx] = field
	}
	return nil
}

func (r *Registry) registerBuiltins() {
	r.Register(model.WidgetCheckbox, 90, func(field model.Field) bool {
		return field.Type == model.FieldTypeBoolean
	})

	r.Register(model.WidgetRadio, 80, func(field model.Field) bool {
		return len(field.Enum) > 0
	})

	r.Register(model.WidgetSlider, 70, func(field model.Field) bool {
		if field.Type != model.FieldTypeNumber && field.Type != model.FieldTypeInteger {
			return false
		}
		_, hasMin := field.Rule(model.ValidationRuleMin)
		_, hasMax := field.Rule(model.ValidationRuleMax)
		return hasMin && hasMax
	})

	r.Register(model.WidgetText, 10, func(field model.Field) bool {
		return field.Type == model.FieldTypeString
	})
}
