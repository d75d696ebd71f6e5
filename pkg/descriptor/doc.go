// Package descriptor loads the OpenAPI description of the profile submit
// operation and turns its request schema into a model.FormModel. The same
// schema validates decoded submissions before they reach the form model, so
// the HTTP binding and the renderers agree on field names, types, bounds and
// defaults.
//
// kin-openapi types stay inside this package; callers only see model types
// and ValidationError.
package descriptor
