package live

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-formscreen/pkg/render"
	"github.com/goliatone/go-formscreen/pkg/screen"
)

// ErrNoScreen is returned by Run without a screen.
var ErrNoScreen = errors.New("live: screen is required")

// Option configures a Renderer.
type Option func(*Renderer)

// WithInput reads key presses from r instead of the terminal.
func WithInput(r io.Reader) Option {
	return func(rr *Renderer) {
		rr.in = r
	}
}

// WithOutput writes frames to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(rr *Renderer) {
		rr.out = w
	}
}

// WithAltScreen runs the program in the terminal's alternate screen.
func WithAltScreen() Option {
	return func(rr *Renderer) {
		rr.programOptions = append(rr.programOptions, tea.WithAltScreen())
	}
}

// WithProgramOptions forwards extra bubbletea options.
func WithProgramOptions(options ...tea.ProgramOption) Option {
	return func(rr *Renderer) {
		rr.programOptions = append(rr.programOptions, options...)
	}
}

// Renderer runs interactive sessions and renders static frames.
type Renderer struct {
	in             io.Reader
	out            io.Writer
	programOptions []tea.ProgramOption
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a live renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "live"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render draws one unfocused frame of view.
func (r *Renderer) Render(ctx context.Context, view screen.View, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("live: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := renderFrame(frame{
		view:        view,
		cursor:      -1,
		fieldErrors: opts.Errors,
		formErrors:  opts.FormErrors,
	}, NewStyles(opts.ResolvedTheme()))
	return []byte(out + "\n"), nil
}

// Run drives s interactively until the user quits or ctx ends. It returns
// the result summary when one was produced.
func (r *Renderer) Run(ctx context.Context, s *screen.Screen, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("live: context is required")
	}
	if s == nil {
		return nil, ErrNoScreen
	}

	m := NewModel(s, NewStyles(opts.ResolvedTheme()))
	defer m.Close()

	programOptions := []tea.ProgramOption{tea.WithContext(ctx)}
	if r.in != nil {
		programOptions = append(programOptions, tea.WithInput(r.in))
	}
	if r.out != nil {
		programOptions = append(programOptions, tea.WithOutput(r.out))
	}
	programOptions = append(programOptions, r.programOptions...)

	if _, err := tea.NewProgram(m, programOptions...).Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("live: %w", err)
	}

	result, ok := s.Model().Result()
	if !ok {
		return nil, nil
	}
	return []byte(result.String()), nil
}
