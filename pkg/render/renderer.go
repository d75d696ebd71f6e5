package render

import (
	"context"

	"github.com/goliatone/go-formscreen/pkg/screen"
)

// Renderer turns a screen.View into bytes (HTML, terminal text, JSON).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view screen.View, options RenderOptions) ([]byte, error)
}
