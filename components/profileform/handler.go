package profileform

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formscreen/pkg/form"
	"github.com/goliatone/go-formscreen/pkg/i18n"
	"github.com/goliatone/go-formscreen/pkg/render"
	"github.com/goliatone/go-formscreen/pkg/renderers/vanilla"
	"github.com/goliatone/go-formscreen/pkg/screen"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a handler from a pre-constructed Options value.
// Missing collaborators (renderer, catalog) fall back to the bundled ones; if
// those cannot be built every request answers 500.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	h := &handler{opts: opts, logger: opts.Logger}

	if err := h.init(); err != nil {
		h.logger.Error("profileform: setup failed", zap.Error(err))
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		})
	}
	return h
}

type handler struct {
	opts     Options
	logger   *zap.Logger
	renderer render.Renderer
	catalog  *i18n.Catalog
}

func (h *handler) init() error {
	h.catalog = h.opts.Catalog
	if h.catalog == nil {
		catalog, err := i18n.DefaultCatalog()
		if err != nil {
			return err
		}
		h.catalog = catalog
	}

	h.renderer = h.opts.Renderer
	if h.renderer == nil {
		renderer, err := vanilla.New(vanilla.WithTranslator(h.catalog))
		if err != nil {
			return err
		}
		h.renderer = renderer
	}
	return nil
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r == nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodPost:
	default:
		w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodHead, http.MethodPost}, ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if h.opts.Guard != nil {
		if err := h.opts.Guard(r); err != nil {
			writeGuardError(w, err)
			return
		}
	}

	locale := h.negotiateLocale(r)
	s, err := h.newScreen(r.Context(), locale)
	if err != nil {
		h.logger.Error("profileform: build screen", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	renderOpts := render.RenderOptions{}
	if r.Method == http.MethodPost {
		if err := h.submit(r, s, &renderOpts); err != nil {
			status = statusFor(err)
			if status >= http.StatusInternalServerError {
				h.logger.Error("profileform: submit failed", zap.Error(err))
				http.Error(w, http.StatusText(status), status)
				return
			}
		}
	}

	h.write(w, r, s, locale, status, renderOpts)
}

func (h *handler) newScreen(ctx context.Context, locale string) (*screen.Screen, error) {
	policy := form.PolicyIgnore
	if h.opts.Strict {
		policy = form.PolicyStrict
	}
	options := []screen.Option{
		screen.WithLocalizer(i18n.Bind(h.catalog, locale)),
		screen.WithModelOptions(form.WithSubmitPolicy(policy)),
	}
	if h.opts.Descriptor != nil {
		options = append(options, screen.WithDescriptor(h.opts.Descriptor))
	}
	return screen.New(ctx, options...)
}

// submit runs one POST through s. Feedback for the page goes into opts; the
// returned error carries the status code.
func (h *handler) submit(r *http.Request, s *screen.Screen, opts *render.RenderOptions) error {
	if err := r.ParseForm(); err != nil {
		h.logger.Info("profileform: unreadable form body", zap.Error(err))
		opts.FormErrors = render.MergeFormErrors(opts.FormErrors, "The form could not be read.")
		return StatusError{Code: http.StatusBadRequest, Err: err}
	}

	if raw := r.PostForm.Get(render.SnapshotFieldName); strings.TrimSpace(raw) != "" {
		snapshot, err := render.DecodeSnapshotField(raw)
		if err == nil {
			err = s.Restore(snapshot)
		}
		if err != nil {
			h.logger.Info("profileform: rejected snapshot", zap.Error(err))
			opts.FormErrors = render.MergeFormErrors(opts.FormErrors, "The saved form state is invalid.")
			return StatusError{Code: http.StatusBadRequest, Err: err}
		}
	}

	d := s.Descriptor()
	payload, err := d.Decode(r.PostForm)
	if err == nil {
		err = d.Validate(payload)
	}
	if err != nil {
		h.logger.Info("profileform: rejected payload", zap.Error(err))
		render.MapError(err).Apply(opts)
		return StatusError{Code: http.StatusBadRequest, Err: err}
	}

	if err := s.Apply(payload); err != nil {
		h.logger.Info("profileform: apply payload", zap.Error(err))
		render.MapError(err).Apply(opts)
		return StatusError{Code: http.StatusBadRequest, Err: err}
	}

	result, err := s.Submit()
	switch {
	case errors.Is(err, form.ErrInvalidState):
		h.logger.Info("profileform: submit with invalid name", zap.Error(err))
		return StatusError{Code: http.StatusUnprocessableEntity, Err: err}
	case err != nil:
		return StatusError{Code: http.StatusInternalServerError, Err: err}
	case result.IsZero():
		h.logger.Debug("profileform: blank name, submit ignored")
		return nil
	}

	state := s.Model().State()
	h.logger.Info("profileform: profile submitted",
		zap.Int("age", state.Derive().AgeInteger),
		zap.String("gender", string(state.Gender)),
		zap.Bool("subscribed", state.Subscribed),
	)
	return nil
}

func (h *handler) write(w http.ResponseWriter, r *http.Request, s *screen.Screen, locale string, status int, opts render.RenderOptions) {
	snapshot, err := render.SnapshotField(s.Snapshot())
	if err != nil {
		h.logger.Error("profileform: encode snapshot", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	opts.Locale = locale
	opts.Theme = h.opts.Theme
	opts.Icon = h.opts.Icon
	opts.Method = http.MethodPost
	opts.Action = r.URL.Path
	opts.Hidden = render.MergeHiddenFields(opts.Hidden, snapshot)

	body, err := h.renderer.Render(r.Context(), s.View(), opts)
	if err != nil {
		h.logger.Error("profileform: render", zap.String("renderer", h.renderer.Name()), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	header := w.Header()
	header.Set("Content-Type", h.renderer.ContentType())
	header.Set("Content-Language", locale)
	header.Set("Cache-Control", "no-store")
	header.Set("Vary", "Accept-Language")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(body); err != nil {
		h.logger.Debug("profileform: write response", zap.Error(err))
	}
}

func (h *handler) negotiateLocale(r *http.Request) string {
	if h.opts.LocaleParam != "" {
		if requested := strings.TrimSpace(r.URL.Query().Get(h.opts.LocaleParam)); requested != "" {
			return h.catalog.Match(requested)
		}
	}
	if header := r.Header.Get("Accept-Language"); strings.TrimSpace(header) != "" {
		return h.catalog.MatchAcceptLanguage(header)
	}
	if h.opts.Locale != "" && h.catalog.Has(h.opts.Locale) {
		return h.opts.Locale
	}
	return h.catalog.DefaultLocale()
}

func statusFor(err error) int {
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		return httpErr.StatusCode()
	}
	return http.StatusInternalServerError
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}

