package template

import "io"

// TemplateRenderer is the seam between renderers and a template engine.
// Render writes the output to every writer in out and also returns it.
type TemplateRenderer interface {
	Render(name string, data map[string]any, out ...io.Writer) (string, error)
	RenderString(content string, data map[string]any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data map[string]any) error
}
