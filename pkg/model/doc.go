// Package model defines the field descriptor renderers consume alongside the
// live form state. A FormModel lists the screen's inputs in display order
// with their types, defaults, enum options and validation rules. Validation
// rules use canonical identifiers (min/max, minLength/maxLength, pattern)
// with string parameters so renderers can map them onto HTML attributes or
// prompt validators without losing deterministic JSON snapshots. UIHints
// carry renderer-facing directives (`widget`, `labelKey`, `placeholderKey`,
// `helpTextKey`, `step`) lifted from `x-formscreen-*` schema extensions.
package model
