// Package tui renders the profile screen as a line-oriented prompt session
// driven by survey.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goliatone/go-formscreen/pkg/form"
	"github.com/goliatone/go-formscreen/pkg/render"
	"github.com/goliatone/go-formscreen/pkg/screen"
)

// Renderer prints views as text or JSON and runs interactive prompt
// sessions.
type Renderer struct {
	driver       PromptDriver
	out          io.Writer
	outputFormat OutputFormat
	theme        Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, pretty output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatPrettyText,
		theme:        DefaultTheme(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}

	switch r.outputFormat {
	case OutputFormatPrettyText, OutputFormatJSON:
	default:
		return nil, fmt.Errorf("tui: unknown output format %q", r.outputFormat)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatJSON {
		return "application/json"
	}
	return "text/plain; charset=utf-8"
}

// Render prints view without prompting.
func (r *Renderer) Render(ctx context.Context, view screen.View, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.outputFormat == OutputFormatJSON {
		return jsonView(view)
	}
	return []byte(prettyView(view, opts)), nil
}

// Run prompts for every field in view order, applies the answers to s and
// submits. The returned bytes are the result summary (pretty) or the
// snapshot (json).
func (r *Renderer) Run(ctx context.Context, s *screen.Screen, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if s == nil {
		return nil, ErrNoScreen
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view := s.View()
	state := NewState(nil, opts.Errors)
	loc := s.Localizer()

	if view.Title != "" {
		if err := r.driver.Info(ctx, r.theme.InfoPrefix+view.Title); err != nil {
			return nil, err
		}
	}
	for _, field := range view.Fields {
		if err := r.promptField(ctx, loc, field, state); err != nil {
			return nil, err
		}
	}

	if err := s.Apply(state.Values()); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	result, err := s.Submit()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	if !result.IsZero() {
		if err := r.driver.Info(ctx, strings.TrimRight(result.String(), "\n")); err != nil {
			return nil, err
		}
	}

	if r.outputFormat == OutputFormatJSON {
		return form.EncodeSnapshot(s.Snapshot())
	}
	return []byte(result.String()), nil
}

func (r *Renderer) promptField(ctx context.Context, loc form.Localizer, field screen.FieldView, state *State) error {
	for _, message := range state.ErrorsFor(field.Name) {
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+message); err != nil {
			return err
		}
	}
	state.ClearErrors(field.Name)

	switch field.Widget {
	case "radio":
		return r.promptChoice(ctx, field, state)
	case "slider":
		return r.promptNumber(ctx, loc.Localize(form.KeyAgeErrorRange), field, state)
	case "checkbox":
		return r.promptBoolean(ctx, field, state)
	default:
		return r.promptText(ctx, loc.Localize(form.KeyNameErrorEmpty), field, state)
	}
}

func (r *Renderer) promptText(ctx context.Context, invalid string, field screen.FieldView, state *State) error {
	for {
		response, err := r.driver.Input(ctx, InputConfig{
			Message: field.Label,
			Default: field.Text,
			Help:    field.Placeholder,
		})
		if err != nil {
			return err
		}
		if field.Required && !form.NameValid(response) {
			if err := r.driver.Info(ctx, r.theme.ErrorPrefix+invalid); err != nil {
				return err
			}
			continue
		}
		state.SetValue(field.Name, response)
		return nil
	}
}

func (r *Renderer) promptNumber(ctx context.Context, invalid string, field screen.FieldView, state *State) error {
	for {
		input, err := r.driver.Input(ctx, InputConfig{
			Message: field.Label,
			Default: strconv.FormatFloat(field.Value, 'f', -1, 64),
		})
		if err != nil {
			return err
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
		if err != nil || value < field.Min || value > field.Max || !form.AgeInDomain(value) {
			if err := r.driver.Info(ctx, r.theme.ErrorPrefix+invalid); err != nil {
				return err
			}
			continue
		}
		state.SetValue(field.Name, value)
		return nil
	}
}

func (r *Renderer) promptChoice(ctx context.Context, field screen.FieldView, state *State) error {
	labels := make([]string, len(field.Options))
	selected := -1
	for i, option := range field.Options {
		labels[i] = option.Label
		if option.Selected {
			selected = i
		}
	}
	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      field.Label,
			Options:      labels,
			DefaultIndex: selected,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(field.Options) {
			if err := r.driver.Info(ctx, fmt.Sprintf("%sinvalid %s selection", r.theme.ErrorPrefix, field.Name)); err != nil {
				return err
			}
			continue
		}
		state.SetValue(field.Name, field.Options[idx].Value)
		return nil
	}
}

func (r *Renderer) promptBoolean(ctx context.Context, field screen.FieldView, state *State) error {
	answer, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: field.Label,
		Default: field.Checked,
	})
	if err != nil {
		return err
	}
	state.SetValue(field.Name, answer)
	return nil
}

func prettyView(view screen.View, opts render.RenderOptions) string {
	var b strings.Builder
	if view.Title != "" {
		b.WriteString(view.Title)
		b.WriteString("\n")
	}
	for _, field := range view.Fields {
		b.WriteString(field.Label)
		b.WriteString(": ")
		b.WriteString(fieldValue(field))
		b.WriteString("\n")
		for _, message := range append(errorLines(field), opts.Errors[field.Name]...) {
			b.WriteString("  ")
			b.WriteString(message)
			b.WriteString("\n")
		}
	}
	submit := "[" + view.Submit.Label + "]"
	if !view.Submit.Enabled {
		submit = "(" + view.Submit.Label + ")"
	}
	b.WriteString(submit)
	b.WriteString("\n")

	if view.HasResult {
		b.WriteString("\n")
		for _, line := range view.Result {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func fieldValue(field screen.FieldView) string {
	switch field.Widget {
	case "radio":
		for _, option := range field.Options {
			if option.Selected {
				return option.Label
			}
		}
		return ""
	case "slider":
		return field.Display
	case "checkbox":
		if field.Checked {
			return "[x]"
		}
		return "[ ]"
	default:
		return field.Text
	}
}

func errorLines(field screen.FieldView) []string {
	if field.Error == "" {
		return nil
	}
	return []string{field.Error}
}

type viewPayload struct {
	Title      string     `json:"title"`
	State      form.State `json:"state"`
	NameValid  bool       `json:"nameValid"`
	AgeInteger int        `json:"ageInteger"`
	CanSubmit  bool       `json:"canSubmit"`
	Result     []string   `json:"result"`
}

func jsonView(view screen.View) ([]byte, error) {
	payload := viewPayload{
		Title:      view.Title,
		State:      view.State,
		NameValid:  view.Derived.NameValid,
		AgeInteger: view.Derived.AgeInteger,
		CanSubmit:  view.Submit.Enabled,
		Result:     view.Result,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("tui: encode view: %w", err)
	}
	return append(data, '\n'), nil
}
