package render

// RenderOptions carry per-request data that renderers use without touching
// the screen state.
type RenderOptions struct {
	// Locale is echoed into markup (for example the html lang attribute).
	Locale string
	// Theme selects colors. The zero value means DefaultTheme.
	Theme Theme
	// Icon is an optional inline SVG shown in the header. HTML renderers
	// sanitize it before output.
	Icon string
	// Action and Method override the form target declared by the descriptor.
	Action string
	Method string
	// Hidden fields are emitted verbatim, sorted by name.
	Hidden map[string]string
	// Errors holds server-side validation feedback keyed by field name.
	Errors map[string][]string
	// FormErrors holds messages that belong to no single field.
	FormErrors []string
}

// ResolvedTheme returns Theme, or DefaultTheme when unset.
func (o RenderOptions) ResolvedTheme() Theme {
	if o.Theme.Name == "" {
		return DefaultTheme()
	}
	return o.Theme
}
