package render_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formscreen/pkg/form"
	"github.com/goliatone/go-formscreen/pkg/render"
)

func TestMergeAndSortHiddenFields(t *testing.T) {
	base := map[string]string{
		" existing ": "keep",
		"":           "ignored",
	}

	merged := render.MergeHiddenFields(base,
		render.Hidden("_csrf", "token123"),
		render.Hidden("version", 4),
		render.Hidden("  ", "skip"),
	)

	wantMerged := map[string]string{
		"existing": "keep",
		"_csrf":    "token123",
		"version":  "4",
	}
	if diff := cmp.Diff(wantMerged, merged); diff != "" {
		t.Fatalf("merged hidden fields mismatch (-want +got):\n%s", diff)
	}

	wantSorted := []render.HiddenField{
		{Name: "_csrf", Value: "token123"},
		{Name: "existing", Value: "keep"},
		{Name: "version", Value: "4"},
	}
	if diff := cmp.Diff(wantSorted, render.SortedHiddenFields(merged)); diff != "" {
		t.Fatalf("sorted hidden fields mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotField_RoundTrip(t *testing.T) {
	m := form.New(form.WithLocalizer(form.KeyLocalizer))
	m.SetName("Alice")
	if _, err := m.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	field, err := render.SnapshotField(m.Snapshot())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if field.Name != render.SnapshotFieldName {
		t.Fatalf("field name: got %q", field.Name)
	}
	if strings.ContainsAny(field.Value, "+/=") {
		t.Fatalf("value is not URL safe: %q", field.Value)
	}

	decoded, err := render.DecodeSnapshotField(field.Value)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.State != m.State() || !decoded.Result.Equal(m.Snapshot().Result) {
		t.Fatalf("snapshot mismatch: %#v", decoded)
	}

	if _, err := render.DecodeSnapshotField("%%%"); err == nil {
		t.Fatalf("expected decode error")
	}
}
