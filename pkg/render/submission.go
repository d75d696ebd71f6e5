package render

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-formscreen/pkg/form"
)

// SnapshotFieldName is the hidden input carrying the encoded form snapshot
// between HTML round trips.
const SnapshotFieldName = "_snapshot"

// HiddenField represents a hidden form input emitted alongside the visible
// controls.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// SnapshotField encodes s as URL-safe base64 JSON.
func SnapshotField(s form.Snapshot) (HiddenField, error) {
	payload, err := form.EncodeSnapshot(s)
	if err != nil {
		return HiddenField{}, err
	}
	return HiddenField{
		Name:  SnapshotFieldName,
		Value: base64.RawURLEncoding.EncodeToString(payload),
	}, nil
}

// DecodeSnapshotField reverses SnapshotField.
func DecodeSnapshotField(value string) (form.Snapshot, error) {
	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(value))
	if err != nil {
		return form.Snapshot{}, fmt.Errorf("render: decode snapshot field: %w", err)
	}
	return form.DecodeSnapshot(payload)
}

// MergeHiddenFields returns a copy of base with fields applied. Empty names
// are ignored; later fields win on name collisions.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	if len(base) == 0 && len(fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(fields))
	for key, value := range base {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			out[trimmed] = value
		}
	}
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		out[name] = field.Value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedHiddenFields sorts hidden fields by name for deterministic output.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		if strings.TrimSpace(name) != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out := make([]HiddenField, 0, len(names))
	for _, name := range names {
		out = append(out, HiddenField{Name: strings.TrimSpace(name), Value: fields[name]})
	}
	return out
}
