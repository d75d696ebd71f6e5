package pongo_test

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formscreen/pkg/render/template/pongo"
	"github.com/goliatone/go-formscreen/pkg/testsupport"
)

func newEngine(t *testing.T, options ...pongo.Option) *pongo.Engine {
	t.Helper()
	files := fstest.MapFS{
		"hello.tmpl":      {Data: []byte("Hello {{ name }}!")},
		"use-global.tmpl": {Data: []byte("env={{ settings.env }}")},
		"escape.tmpl":     {Data: []byte("<p>{{ html }}</p>")},
		"call.tmpl":       {Data: []byte("{{ greet(name) }}")},
		"filter.tmpl":     {Data: []byte("{{ name|formscreen_shout }}")},
	}
	engine, err := pongo.New(append([]pongo.Option{pongo.WithFS(files)}, options...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderWritesToOutputs(t *testing.T) {
	engine := newEngine(t)

	got, written := testsupport.CaptureOutput(t, func(w io.Writer) (string, error) {
		return engine.Render("hello", map[string]any{"name": "Ada"}, w)
	})
	if got != "Hello Ada!" || written != got {
		t.Fatalf("unexpected output %q %q", got, written)
	}

	again, err := engine.Render("hello.tmpl", map[string]any{"name": "Bob"})
	if err != nil || again != "Hello Bob!" {
		t.Fatalf("cached render: %q %v", again, err)
	}
}

func TestEngine_AutoescapesValues(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.Render("escape", map[string]any{"html": "<script>x</script>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Fatalf("value was not escaped: %q", got)
	}
}

func TestEngine_GlobalContextAndFuncs(t *testing.T) {
	engine := newEngine(t,
		pongo.WithGlobalData(map[string]any{"settings": map[string]any{"env": "staging"}}),
		pongo.WithTemplateFuncs(map[string]any{"greet": func(name string) string { return "hi " + name }}),
	)

	got, err := engine.Render("use-global", nil)
	if err != nil || got != "env=staging" {
		t.Fatalf("global render: %q %v", got, err)
	}
	got, err = engine.Render("call", map[string]any{"name": "Ada"})
	if err != nil || got != "hi Ada" {
		t.Fatalf("func render: %q %v", got, err)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	shout := func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	}
	if err := engine.RegisterFilter("formscreen_shout", shout); err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("formscreen_shout", shout); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	got, err := engine.Render("filter", map[string]any{"name": "ada"})
	if err != nil || got != "ADA!" {
		t.Fatalf("filter render: %q %v", got, err)
	}
}

func TestEngine_Errors(t *testing.T) {
	if _, err := pongo.New(); err == nil {
		t.Fatalf("expected error without template source")
	}
	engine := newEngine(t)
	if _, err := engine.Render("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
	if _, err := engine.RenderString("{% if %}", nil); err == nil {
		t.Fatalf("expected parse error")
	}
	got, err := engine.RenderString("{{ a }}-{{ b }}", map[string]any{"a": 1, "b": "x"})
	if err != nil || got != "1-x" {
		t.Fatalf("render string: %q %v", got, err)
	}
}
