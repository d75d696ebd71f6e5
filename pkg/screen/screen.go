package screen

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-formscreen/pkg/descriptor"
	"github.com/goliatone/go-formscreen/pkg/form"
	"github.com/goliatone/go-formscreen/pkg/model"
)

// Field names shared by the descriptor and the HTML form.
const (
	FieldName       = "name"
	FieldGender     = "gender"
	FieldAge        = "age"
	FieldSubscribed = "subscribed"
)

// Option configures a Screen.
type Option func(*Screen)

// WithModel binds an existing model instead of creating a fresh one.
func WithModel(m *form.Model) Option {
	return func(s *Screen) {
		if m != nil {
			s.model = m
		}
	}
}

// WithDescriptor overrides the bundled descriptor.
func WithDescriptor(d *descriptor.Descriptor) Option {
	return func(s *Screen) {
		if d != nil {
			s.descriptor = d
		}
	}
}

// WithLocalizer sets the localizer for both labels and the result summary.
func WithLocalizer(loc form.Localizer) Option {
	return func(s *Screen) {
		if loc != nil {
			s.localizer = loc
		}
	}
}

// WithModelOptions forwards options to form.New when no model is supplied.
func WithModelOptions(options ...form.Option) Option {
	return func(s *Screen) {
		s.modelOptions = append(s.modelOptions, options...)
	}
}

// Screen is the view model behind every renderer. Like form.Model it is not
// safe for concurrent use.
type Screen struct {
	model        *form.Model
	modelOptions []form.Option
	descriptor   *descriptor.Descriptor
	localizer    form.Localizer
	layout       model.FormModel
}

// New builds a Screen. The bundled descriptor is used unless WithDescriptor
// supplies one.
func New(ctx context.Context, options ...Option) (*Screen, error) {
	s := &Screen{}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}

	if s.descriptor == nil {
		d, err := descriptor.Default(ctx)
		if err != nil {
			return nil, fmt.Errorf("screen: %w", err)
		}
		s.descriptor = d
	}
	if s.model == nil {
		s.model = form.New(s.modelOptions...)
	}
	if s.localizer == nil {
		s.localizer = s.model.Localizer()
	} else {
		s.model.SetLocalizer(s.localizer)
	}
	s.layout = s.descriptor.Localized(s.localizer)
	return s, nil
}

// Model exposes the underlying form model.
func (s *Screen) Model() *form.Model { return s.model }

// Descriptor exposes the field descriptor.
func (s *Screen) Descriptor() *descriptor.Descriptor { return s.descriptor }

// Localizer returns the active localizer.
func (s *Screen) Localizer() form.Localizer { return s.localizer }

// SetLocalizer switches locale. An existing Result keeps its original text.
func (s *Screen) SetLocalizer(loc form.Localizer) {
	if loc == nil {
		loc = form.KeyLocalizer
	}
	s.localizer = loc
	s.model.SetLocalizer(loc)
	s.layout = s.descriptor.Localized(loc)
}

// Submit delegates to the model.
func (s *Screen) Submit() (form.Result, error) {
	return s.model.Submit()
}

// Snapshot captures the model state and result.
func (s *Screen) Snapshot() form.Snapshot {
	return s.model.Snapshot()
}

// Restore replaces the model state and result.
func (s *Screen) Restore(snapshot form.Snapshot) error {
	return s.model.Restore(snapshot)
}

// Apply sets fields from a decoded payload keyed by descriptor field name.
// Unknown keys are ignored. Age values are clamped into the domain before
// reaching the model. On error, fields applied earlier stay applied.
func (s *Screen) Apply(values map[string]any) error {
	for _, field := range s.layout.Fields {
		raw, ok := values[field.Name]
		if !ok {
			continue
		}
		if err := s.applyField(field.Name, raw); err != nil {
			return fmt.Errorf("screen: apply %s: %w", field.Name, err)
		}
	}
	return nil
}

func (s *Screen) applyField(name string, raw any) error {
	switch name {
	case FieldName:
		text, err := toText(raw)
		if err != nil {
			return err
		}
		s.model.SetName(text)
	case FieldAge:
		age, err := toNumber(raw)
		if err != nil {
			return err
		}
		return s.model.SetAge(form.ClampAge(age))
	case FieldGender:
		text, err := toText(raw)
		if err != nil {
			return err
		}
		g, err := form.ParseGender(text)
		if err != nil {
			return err
		}
		return s.model.SetGender(g)
	case FieldSubscribed:
		checked, err := toBool(raw)
		if err != nil {
			return err
		}
		s.model.SetSubscribed(checked)
	}
	return nil
}

func toText(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("unsupported value %T", raw)
	}
}

func toNumber(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not a number", v)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("unsupported value %T", raw)
	}
}

func toBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "on", "true", "1", "yes":
			return true, nil
		case "", "off", "false", "0", "no":
			return false, nil
		}
		return false, fmt.Errorf("value %q is not a boolean", v)
	case nil:
		return false, nil
	default:
		return false, fmt.Errorf("unsupported value %T", raw)
	}
}

func boundFromRule(field model.Field, kind string, fallback float64) float64 {
	rule, ok := field.Rule(kind)
	if !ok {
		return fallback
	}
	value, err := strconv.ParseFloat(rule.Params["value"], 64)
	if err != nil || math.IsNaN(value) {
		return fallback
	}
	return value
}
