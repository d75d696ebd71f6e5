package profileform

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-formscreen/pkg/descriptor"
	"github.com/goliatone/go-formscreen/pkg/i18n"
	"github.com/goliatone/go-formscreen/pkg/render"
)

const (
	defaultRoutePath   = "/profile"
	defaultLocaleParam = "lang"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath   string
	LocaleParam string
	// Locale is used when neither the query nor Accept-Language match a
	// catalog locale.
	Locale string
	Strict bool
	Guard  GuardFunc

	Logger     *zap.Logger
	Renderer   render.Renderer
	Theme      render.Theme
	Icon       string
	Catalog    *i18n.Catalog
	Descriptor *descriptor.Descriptor
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:   defaultRoutePath,
		LocaleParam: defaultLocaleParam,
		Logger:      zap.NewNop(),
		Theme:       render.DefaultTheme(),
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.LocaleParam == "" {
		opts.LocaleParam = defaultLocaleParam
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Theme.Name == "" {
		opts.Theme = render.DefaultTheme()
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithLocaleParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LocaleParam = name
	}
}

func WithLocale(locale string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Locale = locale
	}
}

// WithStrict makes a blank-name submit answer 422 instead of being ignored.
func WithStrict(strict bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Strict = strict
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

// WithRenderer replaces the default vanilla HTML renderer.
func WithRenderer(renderer render.Renderer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = renderer
	}
}

func WithTheme(theme render.Theme) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Theme = theme
	}
}

func WithIcon(svg string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Icon = svg
	}
}

func WithCatalog(catalog *i18n.Catalog) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Catalog = catalog
	}
}

func WithDescriptor(d *descriptor.Descriptor) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Descriptor = d
	}
}
