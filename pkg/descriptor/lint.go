package descriptor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

var (
	operationHintKeys = []string{"titleKey"}
	fieldHintKeys     = []string{
		"errorKey", "helpTextKey", "labelKey", "optionKeys", "order",
		"placeholderKey", "step", "trimmed", "widget",
	}
)

// Violation is one unsupported or malformed extension found by Lint.
type Violation struct {
	Location string
	Message  string
}

func (v Violation) String() string {
	return v.Location + " -> " + v.Message
}

// AllowedHintKeys lists the `x-formscreen-<key>` extensions understood on
// operations and on request schema properties.
func AllowedHintKeys() (operation, field []string) {
	return append([]string(nil), operationHintKeys...), append([]string(nil), fieldHintKeys...)
}

// Lint loads raw and reports every `x-formscreen-*` extension the descriptor
// builder would ignore or misread. The document must be a valid OpenAPI 3
// description; structural errors are returned as err, not as violations.
func Lint(ctx context.Context, raw []byte) ([]Violation, error) {
	if ctx == nil {
		return nil, errors.New("descriptor: context is required")
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, errors.New("descriptor: document payload is empty")
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("descriptor: load document: %w", err)
	}
	if spec.Paths == nil {
		return nil, nil
	}

	var result []Violation
	paths := spec.Paths.Map()
	pathKeys := make([]string, 0, len(paths))
	for path := range paths {
		pathKeys = append(pathKeys, path)
	}
	sort.Strings(pathKeys)

	for _, path := range pathKeys {
		item := paths[path]
		if item == nil {
			continue
		}
		operations := item.Operations()
		methods := make([]string, 0, len(operations))
		for method := range operations {
			methods = append(methods, method)
		}
		sort.Strings(methods)

		for _, method := range methods {
			op := operations[method]
			id := op.OperationID
			if id == "" {
				id = strings.ToUpper(method) + " " + path
			}
			base := []string{"operation", id}
			result = append(result, lintExtensions(base, op.Extensions, operationHintKeys)...)

			if op.RequestBody == nil || op.RequestBody.Value == nil {
				continue
			}
			media := op.RequestBody.Value.Content.Get(requestContentType)
			if media == nil || media.Schema == nil || media.Schema.Value == nil {
				continue
			}
			result = append(result, lintSchema(appendPath(base, "requestBody"), media.Schema.Value)...)
		}
	}
	return result, nil
}

func lintSchema(path []string, schema *openapi3.Schema) []Violation {
	keys := make([]string, 0, len(schema.Properties))
	for key := range schema.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var result []Violation
	for _, key := range keys {
		ref := schema.Properties[key]
		if ref == nil || ref.Value == nil {
			continue
		}
		next := appendPath(path, "properties."+key)
		result = append(result, lintExtensions(next, ref.Value.Extensions, fieldHintKeys)...)
		if len(ref.Value.Properties) > 0 {
			result = append(result, Violation{
				Location: formatLocation(next),
				Message:  "nested objects are not rendered",
			})
		}
	}
	return result
}

func lintExtensions(path []string, extensions map[string]any, allowed []string) []Violation {
	prefix := extensionNamespace + "-"
	keys := make([]string, 0, len(extensions))
	for key := range extensions {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var result []Violation
	for _, key := range keys {
		hint := strings.TrimPrefix(key, prefix)
		switch {
		case hint == "":
			result = append(result, Violation{Location: formatLocation(path), Message: "extension key is empty"})
		case !contains(allowed, hint):
			result = append(result, Violation{
				Location: formatLocation(path),
				Message:  fmt.Sprintf("unsupported extension %q (supported: %s)", hint, strings.Join(allowed, ", ")),
			})
		default:
			if !isScalar(extensions[key]) {
				result = append(result, Violation{
					Location: formatLocation(path),
					Message:  fmt.Sprintf("value for %q must be a string, number, or boolean (got %T)", hint, extensions[key]),
				})
			}
		}
	}
	return result
}

func isScalar(value any) bool {
	switch value.(type) {
	case string, bool, float64, int, int64:
		return true
	default:
		return false
	}
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	return append(next, segment)
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}
