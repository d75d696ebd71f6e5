package form

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Result is the summary produced by a successful Submit. It is immutable; the
// zero value means "no result".
type Result struct {
	lines []string
	// source is the state the lines were built from. Decoded results have
	// no source.
	source *State
}

// BuildResult assembles the five summary lines for s using loc for every
// label. It does not check the name; Model.Submit enforces that.
func BuildResult(s State, loc Localizer) Result {
	if loc == nil {
		loc = KeyLocalizer
	}

	subscribed := loc.Localize(KeyNo)
	if s.Subscribed {
		subscribed = loc.Localize(KeyYes)
	}

	source := s
	return Result{source: &source, lines: []string{
		loc.Localize(KeyResultTitle),
		summaryLine(loc.Localize(KeyResultName), s.Name),
		summaryLine(loc.Localize(KeyResultAge), strconv.Itoa(AgeInteger(s.Age))),
		summaryLine(loc.Localize(KeyResultGender), loc.Localize(s.Gender.LabelKey())),
		summaryLine(loc.Localize(KeyResultSubscribed), subscribed),
	}}
}

func summaryLine(label, value string) string {
	return label + " " + value
}

// Source returns the state the summary was built from. It reports false for
// results that were decoded rather than built.
func (r Result) Source() (State, bool) {
	if r.source == nil {
		return State{}, false
	}
	return *r.source, true
}

// IsZero reports whether r carries no summary.
func (r Result) IsZero() bool {
	return len(r.lines) == 0
}

// Lines returns a copy of the summary lines.
func (r Result) Lines() []string {
	if len(r.lines) == 0 {
		return nil
	}
	return append([]string(nil), r.lines...)
}

// Title returns the header line.
func (r Result) Title() string {
	if len(r.lines) == 0 {
		return ""
	}
	return r.lines[0]
}

// String renders the summary with every line newline-terminated.
func (r Result) String() string {
	if len(r.lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, line := range r.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Equal reports whether r and other hold the same lines.
func (r Result) Equal(other Result) bool {
	if len(r.lines) != len(other.lines) {
		return false
	}
	for i := range r.lines {
		if r.lines[i] != other.lines[i] {
			return false
		}
	}
	return true
}

func (r Result) MarshalJSON() ([]byte, error) {
	if r.lines == nil {
		return []byte("null"), nil
	}
	return json.Marshal(r.lines)
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}
	if len(lines) == 0 {
		r.lines = nil
		return nil
	}
	r.lines = lines
	return nil
}
