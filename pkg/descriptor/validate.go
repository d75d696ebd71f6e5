package descriptor

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formscreen/pkg/model"
)

// ErrValidation is the sentinel wrapped by ValidationError.
var ErrValidation = errors.New("descriptor: payload does not match schema")

// ValidationError splits schema violations into field-level and form-level
// messages. Field keys are the property names of the request schema.
type ValidationError struct {
	Fields map[string][]string
	Form   []string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Fields)+len(e.Form))
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		parts = append(parts, name+": "+strings.Join(e.Fields[name], "; "))
	}
	parts = append(parts, e.Form...)
	if len(parts) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Field returns the messages recorded for name.
func (e *ValidationError) Field(name string) []string {
	if e == nil || e.Fields == nil {
		return nil
	}
	return e.Fields[name]
}

func (e *ValidationError) add(field, message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	if field == "" {
		e.Form = appendUnique(e.Form, message)
		return
	}
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = appendUnique(e.Fields[field], message)
}

func (e *ValidationError) empty() bool {
	return len(e.Fields) == 0 && len(e.Form) == 0
}

// Validate checks a decoded payload against the request schema. It returns
// nil or a *ValidationError.
func (d *Descriptor) Validate(payload map[string]any) error {
	if d == nil || d.schema == nil {
		return errors.New("descriptor: not loaded")
	}
	err := d.schema.VisitJSON(payload, openapi3.MultiErrors())
	if err == nil {
		return nil
	}

	verr := &ValidationError{}
	d.collect(verr, err)
	if verr.empty() {
		verr.add("", err.Error())
	}
	return verr
}

func (d *Descriptor) collect(verr *ValidationError, err error) {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		for _, inner := range multi {
			d.collect(verr, inner)
		}
		return
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		verr.add(d.fieldFor(schemaErr), schemaErr.Reason)
		return
	}
	verr.add("", err.Error())
}

// fieldFor maps a schema error onto a top-level property. Missing required
// properties report an empty pointer, so the property is read from the reason.
func (d *Descriptor) fieldFor(err *openapi3.SchemaError) string {
	if pointer := err.JSONPointer(); len(pointer) > 0 {
		if _, ok := d.form.Field(pointer[0]); ok {
			return pointer[0]
		}
		return ""
	}
	if err.SchemaField == "required" {
		if name, ok := quotedName(err.Reason); ok {
			if _, known := d.form.Field(name); known {
				return name
			}
		}
	}
	return ""
}

func quotedName(reason string) (string, bool) {
	start := strings.IndexByte(reason, '"')
	if start < 0 {
		return "", false
	}
	end := strings.IndexByte(reason[start+1:], '"')
	if end < 0 {
		return "", false
	}
	return reason[start+1 : start+1+end], true
}

// Decode turns HTML form values into a typed payload shaped by the request
// schema. Boolean fields follow checkbox semantics: absent means false.
// Values that cannot be converted are reported as a *ValidationError.
func (d *Descriptor) Decode(values url.Values) (map[string]any, error) {
	if d == nil {
		return nil, errors.New("descriptor: not loaded")
	}
	payload := make(map[string]any, len(d.form.Fields))
	verr := &ValidationError{}

	for _, field := range d.form.Fields {
		raw, present := values[field.Name]
		value := ""
		if present && len(raw) > 0 {
			value = raw[len(raw)-1]
		}

		switch field.Type {
		case model.FieldTypeBoolean:
			parsed, err := parseCheckbox(present, value)
			if err != nil {
				verr.add(field.Name, err.Error())
				continue
			}
			payload[field.Name] = parsed
		case model.FieldTypeNumber, model.FieldTypeInteger:
			if !present {
				continue
			}
			parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
				verr.add(field.Name, fmt.Sprintf("value %q is not a number", value))
				continue
			}
			payload[field.Name] = parsed
		default:
			if !present {
				continue
			}
			payload[field.Name] = value
		}
	}

	if !verr.empty() {
		return payload, verr
	}
	return payload, nil
}

func parseCheckbox(present bool, value string) (bool, error) {
	if !present {
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("value %q is not a boolean", value)
	}
}

func appendUnique(list []string, message string) []string {
	for _, existing := range list {
		if existing == message {
			return list
		}
	}
	return append(list, message)
}
