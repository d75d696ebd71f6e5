package descriptor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formscreen/pkg/model"
	"github.com/goliatone/go-formscreen/pkg/widgets"
)

const (
	extensionNamespace = "x-formscreen"
	requestContentType = "application/json"
)

// Option configures Load.
type Option func(*config)

type config struct {
	labeler    func(string) string
	widgets    *widgets.Registry
	decorators []model.Decorator
}

// WithLabeler overrides the default label generation function.
func WithLabeler(labeler func(string) string) Option {
	return func(cfg *config) {
		if labeler != nil {
			cfg.labeler = labeler
		}
	}
}

// WithWidgetRegistry replaces the registry that fills in missing widget hints.
func WithWidgetRegistry(reg *widgets.Registry) Option {
	return func(cfg *config) {
		if reg != nil {
			cfg.widgets = reg
		}
	}
}

// WithDecorators appends decorators run after the form model is built.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(cfg *config) {
		for _, d := range decorators {
			if d != nil {
				cfg.decorators = append(cfg.decorators, d)
			}
		}
	}
}

// Descriptor pairs the built form model with the request schema used to
// validate submissions.
type Descriptor struct {
	form   model.FormModel
	schema *openapi3.Schema
}

// Load parses an OpenAPI document (JSON or YAML) and builds the descriptor
// for operationID.
func Load(ctx context.Context, raw []byte, operationID string, options ...Option) (*Descriptor, error) {
	if ctx == nil {
		return nil, errors.New("descriptor: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, errors.New("descriptor: document payload is empty")
	}

	cfg := config{labeler: model.DefaultLabeler, widgets: widgets.NewRegistry()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("descriptor: load document: %w", err)
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("descriptor: validate document: %w", err)
	}

	method, path, op := findOperation(spec, operationID)
	if op == nil {
		return nil, fmt.Errorf("descriptor: operation %q not found", operationID)
	}

	schema, err := requestSchema(op)
	if err != nil {
		return nil, fmt.Errorf("descriptor: operation %q: %w", operationID, err)
	}

	form := model.FormModel{
		OperationID: operationID,
		Endpoint:    path,
		Method:      method,
		Summary:     op.Summary,
		Description: op.Description,
		Fields:      buildFields(schema, cfg.labeler),
		UIHints:     hintsFromExtensions(op.Extensions),
	}

	if err := cfg.widgets.Decorate(&form); err != nil {
		return nil, fmt.Errorf("descriptor: resolve widgets: %w", err)
	}
	for _, decorator := range cfg.decorators {
		if err := decorator.Decorate(&form); err != nil {
			return nil, fmt.Errorf("descriptor: decorate: %w", err)
		}
	}

	return &Descriptor{form: form, schema: schema}, nil
}

// Form returns a copy of the form model.
func (d *Descriptor) Form() model.FormModel {
	if d == nil {
		return model.FormModel{}
	}
	return d.form.Clone()
}

// Localized returns a copy of the form model with `*Key` hints resolved
// through loc.
func (d *Descriptor) Localized(loc model.Localizer) model.FormModel {
	form := d.Form()
	model.LocalizeFormModel(&form, loc)
	return form
}

func findOperation(spec *openapi3.T, operationID string) (string, string, *openapi3.Operation) {
	if spec == nil || spec.Paths == nil {
		return "", "", nil
	}
	paths := spec.Paths.Map()
	keys := make([]string, 0, len(paths))
	for path := range paths {
		keys = append(keys, path)
	}
	sort.Strings(keys)

	for _, path := range keys {
		item := paths[path]
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op != nil && op.OperationID == operationID {
				return strings.ToUpper(method), path, op
			}
		}
	}
	return "", "", nil
}

func requestSchema(op *openapi3.Operation) (*openapi3.Schema, error) {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil, errors.New("request body is missing")
	}
	media := op.RequestBody.Value.Content.Get(requestContentType)
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, fmt.Errorf("request body has no %s schema", requestContentType)
	}
	schema := media.Schema.Value
	if !schema.Type.Is(openapi3.TypeObject) {
		return nil, errors.New("request schema must be an object")
	}
	return schema, nil
}

func buildFields(schema *openapi3.Schema, labeler func(string) string) []model.Field {
	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	fields := make([]model.Field, 0, len(schema.Properties))
	for name, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		_, isRequired := required[name]
		fields = append(fields, fieldFromPrimitive(name, ref.Value, isRequired, labeler))
	}

	sort.SliceStable(fields, func(i, j int) bool {
		if fields[i].Order != fields[j].Order {
			return fields[i].Order < fields[j].Order
		}
		return fields[i].Name < fields[j].Name
	})
	return fields
}

func fieldFromPrimitive(name string, schema *openapi3.Schema, required bool, labeler func(string) string) model.Field {
	hints := hintsFromExtensions(schema.Extensions)
	field := model.Field{
		Name:        name,
		Type:        mapType(schema.Type),
		Format:      schema.Format,
		Required:    required,
		Label:       labeler(name),
		Description: schema.Description,
		Default:     schema.Default,
	}
	if len(schema.Enum) > 0 {
		field.Enum = append([]any(nil), schema.Enum...)
	}
	if order, ok := hints["order"]; ok {
		if n, err := strconv.Atoi(order); err == nil {
			field.Order = n
		}
		delete(hints, "order")
	}
	if strings.EqualFold(hints["trimmed"], "true") {
		field.Validations = append(field.Validations, model.ValidationRule{Kind: model.ValidationRuleTrimmed})
		delete(hints, "trimmed")
	}
	applyValidations(&field, schema)
	if len(hints) > 0 {
		field.UIHints = hints
	}
	return field
}

func mapType(types *openapi3.Types) model.FieldType {
	switch {
	case types.Is(openapi3.TypeInteger):
		return model.FieldTypeInteger
	case types.Is(openapi3.TypeNumber):
		return model.FieldTypeNumber
	case types.Is(openapi3.TypeBoolean):
		return model.FieldTypeBoolean
	default:
		return model.FieldTypeString
	}
}

func applyValidations(field *model.Field, schema *openapi3.Schema) {
	if schema.Min != nil {
		params := map[string]string{"value": formatFloat(*schema.Min)}
		if schema.ExclusiveMin {
			params["exclusive"] = "true"
		}
		field.Validations = append(field.Validations, model.ValidationRule{Kind: model.ValidationRuleMin, Params: params})
	}
	if schema.Max != nil {
		params := map[string]string{"value": formatFloat(*schema.Max)}
		if schema.ExclusiveMax {
			params["exclusive"] = "true"
		}
		field.Validations = append(field.Validations, model.ValidationRule{Kind: model.ValidationRuleMax, Params: params})
	}
	if schema.MinLength > 0 {
		field.Validations = append(field.Validations, model.ValidationRule{
			Kind:   model.ValidationRuleMinLength,
			Params: map[string]string{"value": strconv.FormatUint(schema.MinLength, 10)},
		})
	}
	if schema.MaxLength != nil {
		field.Validations = append(field.Validations, model.ValidationRule{
			Kind:   model.ValidationRuleMaxLength,
			Params: map[string]string{"value": strconv.FormatUint(*schema.MaxLength, 10)},
		})
	}
	if schema.Pattern != "" {
		field.Validations = append(field.Validations, model.ValidationRule{
			Kind:   model.ValidationRulePattern,
			Params: map[string]string{"pattern": schema.Pattern},
		})
	}
	if len(field.Validations) == 0 {
		field.Validations = nil
	}
}

// hintsFromExtensions lifts `x-formscreen-<name>` extensions into a flat
// string map keyed by <name>.
func hintsFromExtensions(ext map[string]any) map[string]string {
	if len(ext) == 0 {
		return nil
	}
	prefix := extensionNamespace + "-"
	out := make(map[string]string)
	for key, value := range ext {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		name := strings.TrimPrefix(key, prefix)
		if name == "" {
			continue
		}
		if str, ok := toString(value); ok {
			out[name] = str
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func toString(value any) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case bool:
		return strconv.FormatBool(typed), true
	case float64:
		return formatFloat(typed), true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case nil:
		return "", false
	default:
		return fmt.Sprint(typed), true
	}
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
