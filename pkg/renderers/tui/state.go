package tui

// State holds the answers collected during a session plus field errors
// supplied by the caller. It is keyed by descriptor field name.
type State struct {
	values map[string]any
	errors map[string][]string
}

// NewState seeds the state with prefilled values and errors.
func NewState(prefill map[string]any, errs map[string][]string) *State {
	s := &State{
		values: make(map[string]any, len(prefill)),
		errors: make(map[string][]string, len(errs)),
	}
	for key, value := range prefill {
		s.values[key] = value
	}
	for key, messages := range errs {
		s.errors[key] = append([]string(nil), messages...)
	}
	return s
}

// Values returns a copy of the collected answers.
func (s *State) Values() map[string]any {
	out := make(map[string]any, len(s.values))
	for key, value := range s.values {
		out[key] = value
	}
	return out
}

// Value returns the answer for name.
func (s *State) Value(name string) (any, bool) {
	value, ok := s.values[name]
	return value, ok
}

// SetValue records an answer.
func (s *State) SetValue(name string, value any) {
	s.values[name] = value
}

// ErrorsFor returns the errors attached to name.
func (s *State) ErrorsFor(name string) []string {
	return s.errors[name]
}

// ClearErrors drops the errors attached to name once they were shown.
func (s *State) ClearErrors(name string) {
	delete(s.errors, name)
}
