// Package formscreen is the entry point for embedding the profile screen:
// it wires the bundled descriptor, catalog and renderers together.
package formscreen

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-formscreen/pkg/descriptor"
	"github.com/goliatone/go-formscreen/pkg/form"
	"github.com/goliatone/go-formscreen/pkg/i18n"
	"github.com/goliatone/go-formscreen/pkg/render"
	"github.com/goliatone/go-formscreen/pkg/renderers/live"
	"github.com/goliatone/go-formscreen/pkg/renderers/tui"
	"github.com/goliatone/go-formscreen/pkg/renderers/vanilla"
	"github.com/goliatone/go-formscreen/pkg/screen"
)

// RenderOptions describes per-request overrides renderers use to surface
// server-side validation errors and hidden state.
type RenderOptions = render.RenderOptions

// Theme aliases render.Theme.
type Theme = render.Theme

// NewScreen builds a screen over the bundled descriptor, localized through
// the embedded catalog for locale.
func NewScreen(ctx context.Context, locale string, options ...form.Option) (*screen.Screen, error) {
	catalog, err := i18n.DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return screen.New(ctx,
		screen.WithLocalizer(i18n.Bind(catalog, catalog.Match(locale))),
		screen.WithModelOptions(options...),
	)
}

// LoadDescriptor builds a descriptor from an OpenAPI document.
func LoadDescriptor(ctx context.Context, raw []byte, operationID string, options ...descriptor.Option) (*descriptor.Descriptor, error) {
	return descriptor.Load(ctx, raw, operationID, options...)
}

// NewRegistry returns a registry holding the bundled renderers. The HTML
// renderer is the default.
func NewRegistry(options ...vanilla.Option) (*render.Registry, error) {
	html, err := vanilla.New(options...)
	if err != nil {
		return nil, err
	}
	text, err := tui.New()
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(html, text, live.New())
}

// RenderHTML renders s as a standalone page carrying its snapshot in a hidden
// field, so a later POST can resume from it.
func RenderHTML(ctx context.Context, s *screen.Screen, opts RenderOptions) ([]byte, error) {
	renderer, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	snapshot, err := render.SnapshotField(s.Snapshot())
	if err != nil {
		return nil, err
	}
	opts.Hidden = render.MergeHiddenFields(opts.Hidden, snapshot)
	return renderer.Render(ctx, s.View(), opts)
}

// EmbeddedTemplates exposes the built-in HTML templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedAssets exposes the stylesheet shipped with the HTML renderer.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(formscreen.EmbeddedAssets()),
//	  ),
//	)
func EmbeddedAssets() fs.FS {
	return vanilla.AssetsFS()
}
