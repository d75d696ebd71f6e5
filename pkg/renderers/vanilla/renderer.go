// Package vanilla renders the profile screen as a standalone HTML page that
// works without client-side frameworks.
package vanilla

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/goliatone/go-formscreen/pkg/i18n"
	"github.com/goliatone/go-formscreen/pkg/render"
	rendertemplate "github.com/goliatone/go-formscreen/pkg/render/template"
	"github.com/goliatone/go-formscreen/pkg/render/template/pongo"
	"github.com/goliatone/go-formscreen/pkg/screen"
)

const templateName = "screen"

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	stylesheet       string
	stylesheetSet    bool
	icon             string
	iconSet          bool
	translator       i18n.Translator
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// screen.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStylesheet replaces the inline stylesheet. An empty string drops it.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = css
		cfg.stylesheetSet = true
	}
}

// WithDefaultIcon replaces DefaultIcon. An empty string hides the icon
// unless a request supplies one.
func WithDefaultIcon(svg string) Option {
	return func(cfg *config) {
		cfg.icon = svg
		cfg.iconSet = true
	}
}

// WithTranslator sets the catalog behind the template translate helper. It
// defaults to the embedded catalog and has no effect with
// WithTemplateRenderer.
func WithTranslator(t i18n.Translator) Option {
	return func(cfg *config) {
		if t != nil {
			cfg.translator = t
		}
	}
}

// Renderer produces HTML through a template engine.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	stylesheet string
	icon       string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if !cfg.stylesheetSet {
		cfg.stylesheet = defaultStylesheet()
	}
	if !cfg.iconSet {
		cfg.icon = DefaultIcon
	}

	engine := cfg.templateRenderer
	if engine == nil {
		if cfg.translator == nil {
			catalog, err := i18n.DefaultCatalog()
			if err != nil {
				return nil, fmt.Errorf("vanilla renderer: load catalog: %w", err)
			}
			cfg.translator = catalog
		}
		// translate(page, key) reads the locale from page.lang.
		funcs := i18n.TemplateFuncs(cfg.translator, i18n.TemplateConfig{LocaleKey: "lang"})
		built, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
			pongo.WithTemplateFuncs(funcs),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		engine = built
	}

	return &Renderer{
		templates:  engine,
		stylesheet: cfg.stylesheet,
		icon:       SanitizeIcon(cfg.icon),
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes screen.tmpl for view.
func (r *Renderer) Render(ctx context.Context, view screen.View, opts render.RenderOptions) ([]byte, error) {
	if r == nil || r.templates == nil {
		return nil, errors.New("vanilla renderer: template renderer is nil")
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	result, err := r.templates.Render(templateName, map[string]any{
		"page": r.pageContext(view, opts),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) pageContext(view screen.View, opts render.RenderOptions) map[string]any {
	theme := opts.ResolvedTheme()

	icon := r.icon
	if strings.TrimSpace(opts.Icon) != "" {
		icon = SanitizeIcon(opts.Icon)
	}

	method := strings.ToLower(strings.TrimSpace(opts.Method))
	if method == "" {
		method = "post"
	}

	lang := strings.TrimSpace(opts.Locale)
	if lang == "" {
		lang = "en"
	}

	hidden := make([]map[string]any, 0, len(opts.Hidden))
	for _, field := range render.SortedHiddenFields(opts.Hidden) {
		hidden = append(hidden, map[string]any{"name": field.Name, "value": field.Value})
	}

	fields := make([]map[string]any, 0, len(view.Fields))
	for _, field := range view.Fields {
		fields = append(fields, fieldContext(field, opts.Errors[field.Name]))
	}

	page := map[string]any{
		"lang":        lang,
		"title":       view.Title,
		"theme":       theme.Name,
		"variant":     theme.Variant,
		"theme_vars":  theme.CSSVarsStyle(),
		"styles":      r.stylesheet,
		"icon":        icon,
		"method":      method,
		"action":      opts.Action,
		"hidden":      hidden,
		"form_errors": opts.FormErrors,
		"fields":      fields,
		"submit": map[string]any{
			"label":   view.Submit.Label,
			"enabled": view.Submit.Enabled,
		},
	}
	if view.HasResult && len(view.Result) > 0 {
		page["result"] = map[string]any{
			"title": view.Result[0],
			"lines": view.Result[1:],
		}
	}
	return page
}

func fieldContext(field screen.FieldView, serverErrors []string) map[string]any {
	var errs []string
	if field.Error != "" {
		errs = append(errs, field.Error)
	}
	for _, message := range serverErrors {
		if message != field.Error {
			errs = append(errs, message)
		}
	}

	options := make([]map[string]any, 0, len(field.Options))
	for _, option := range field.Options {
		options = append(options, map[string]any{
			"value":    option.Value,
			"label":    option.Label,
			"selected": option.Selected,
		})
	}

	return map[string]any{
		"id":          "fs-" + field.Name,
		"name":        field.Name,
		"widget":      field.Widget,
		"label":       field.Label,
		"required":    field.Required,
		"text":        field.Text,
		"placeholder": field.Placeholder,
		"errors":      errs,
		"invalid":     len(errs) > 0,
		"value":       formatNumber(field.Value),
		"display":     field.Display,
		"min":         formatNumber(field.Min),
		"max":         formatNumber(field.Max),
		"step":        formatNumber(field.Step),
		"options":     options,
		"checked":     field.Checked,
	}
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
