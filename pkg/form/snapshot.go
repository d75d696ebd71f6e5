package form

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Snapshot captures everything needed to re-create a screen after its binding
// is torn down and rebuilt (for example across HTTP round-trips).
//
// Submitted is the state the last successful Submit ran on. Restore rebuilds
// the Result from it; Result only mirrors the summary for readers of the
// encoded form and is never trusted on the way back in.
type Snapshot struct {
	State     State  `json:"state"`
	Submitted *State `json:"submitted,omitempty"`
	Result    Result `json:"result"`
}

// Snapshot returns the current state and result.
func (m *Model) Snapshot() Snapshot {
	s := Snapshot{State: m.state, Result: m.result}
	if source, ok := m.result.Source(); ok {
		s.Submitted = &source
	}
	return s
}

// Restore adopts s wholesale, rebuilding any result from s.Submitted with the
// model's localizer. The snapshot is validated first; on error the model is
// unchanged.
func (m *Model) Restore(s Snapshot) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("form: restore: %w", err)
	}
	m.state = s.State
	m.result = Result{}
	if s.Submitted != nil {
		m.result = BuildResult(*s.Submitted, m.localizer)
	}
	m.notify(FieldRestore)
	return nil
}

// Validate checks the current state and, when present, the submitted state.
// A submitted state must satisfy the submit precondition, and summary lines
// without one are rejected.
func (s Snapshot) Validate() error {
	if err := s.State.Validate(); err != nil {
		return err
	}
	if s.Submitted == nil {
		if !s.Result.IsZero() {
			return contractViolation("result", s.Result.Title(), "has no submitted state")
		}
		return nil
	}
	if err := s.Submitted.Validate(); err != nil {
		return err
	}
	if !NameValid(s.Submitted.Name) {
		return contractViolation("submitted.name", s.Submitted.Name, "must not be blank")
	}
	return nil
}

// EncodeSnapshot serialises s as JSON.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("form: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a payload produced by EncodeSnapshot and validates it.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Snapshot{}, fmt.Errorf("form: decode snapshot: empty payload")
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("form: decode snapshot: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Snapshot{}, fmt.Errorf("form: decode snapshot: %w", err)
	}
	return s, nil
}
