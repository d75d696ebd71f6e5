package profileform

import (
	"errors"
	"net/http"
	"path"
	"strings"

	"github.com/goliatone/go-formscreen/pkg/renderers/vanilla"
)

const assetsSegment = "/assets/"

// Mux is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Routes lists the patterns registered for one profile screen.
type Routes struct {
	// Form serves GET, HEAD and POST for the screen.
	Form string
	// Assets serves the HTML stylesheet, for example Assets+"formscreen.css".
	Assets string
}

// MountPath returns the form pattern for the screen under basePath.
func MountPath(basePath string, fns ...OptionFn) string {
	return routesFor(basePath, NewOptions(fns...)).Form
}

// RegisterRoutes mounts the screen and its stylesheet under basePath.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (Routes, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions is RegisterRoutes for a pre-built Options value.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (Routes, error) {
	if mux == nil {
		return Routes{}, errors.New("profileform: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })

	routes := routesFor(basePath, opts)
	mux.Handle(routes.Form, HandlerWithOptions(opts))
	mux.Handle(routes.Assets, http.StripPrefix(routes.Assets, http.FileServer(http.FS(vanilla.AssetsFS()))))
	return routes, nil
}

func routesFor(basePath string, opts Options) Routes {
	form := path.Join("/", strings.TrimSpace(basePath), strings.TrimSpace(opts.RoutePath))
	return Routes{
		Form:   form,
		Assets: strings.TrimRight(form, "/") + assetsSegment,
	}
}
