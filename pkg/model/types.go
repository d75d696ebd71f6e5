package model

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
)

const (
	ValidationRuleMin       = "min"
	ValidationRuleMax       = "max"
	ValidationRuleMinLength = "minLength"
	ValidationRuleMaxLength = "maxLength"
	ValidationRulePattern   = "pattern"
	ValidationRuleTrimmed   = "trimmed"
)

// Widget hints understood by the bundled renderers.
const (
	WidgetText     = "text"
	WidgetSlider   = "slider"
	WidgetRadio    = "radio"
	WidgetCheckbox = "checkbox"
)

// ValidationRule represents a single validation constraint applied to a field.
// Numeric bounds and length limits encode their threshold in Params["value"]
// while pattern rules preserve the original expression in Params["pattern"].
type ValidationRule struct {
	Kind   string            `json:"kind"`
	Params map[string]string `json:"params,omitempty"`
}

// Field models an individual input inside the form.
type Field struct {
	Name        string            `json:"name"`
	Type        FieldType         `json:"type"`
	Format      string            `json:"format,omitempty"`
	Required    bool              `json:"required"`
	Label       string            `json:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	Default     any               `json:"default,omitempty"`
	Enum        []any             `json:"enum,omitempty"`
	Order       int               `json:"order"`
	Validations []ValidationRule  `json:"validations,omitempty"`
	UIHints     map[string]string `json:"uiHints,omitempty"`
}

// Rule returns the first validation rule of the given kind.
func (f Field) Rule(kind string) (ValidationRule, bool) {
	for _, rule := range f.Validations {
		if rule.Kind == kind {
			return rule, true
		}
	}
	return ValidationRule{}, false
}

// Hint returns a UI hint value, or "" when unset.
func (f Field) Hint(key string) string {
	if f.UIHints == nil {
		return ""
	}
	return f.UIHints[key]
}

// FormModel is the top-level descriptor renderers consume.
type FormModel struct {
	OperationID string            `json:"operationId"`
	Endpoint    string            `json:"endpoint"`
	Method      string            `json:"method"`
	Summary     string            `json:"summary,omitempty"`
	Description string            `json:"description,omitempty"`
	Fields      []Field           `json:"fields"`
	UIHints     map[string]string `json:"uiHints,omitempty"`
}

// Field looks up a field by name.
func (m FormModel) Field(name string) (Field, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Clone returns a deep copy so callers can localise without touching shared
// descriptors.
func (m FormModel) Clone() FormModel {
	out := m
	out.UIHints = cloneStringMap(m.UIHints)
	if m.Fields != nil {
		out.Fields = make([]Field, len(m.Fields))
		for i, field := range m.Fields {
			clone := field
			clone.Enum = append([]any(nil), field.Enum...)
			clone.UIHints = cloneStringMap(field.UIHints)
			if field.Validations != nil {
				clone.Validations = make([]ValidationRule, len(field.Validations))
				for j, rule := range field.Validations {
					clone.Validations[j] = ValidationRule{Kind: rule.Kind, Params: cloneStringMap(rule.Params)}
				}
			}
			out.Fields[i] = clone
		}
	}
	return out
}

func cloneStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
