package form

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState signals a submit attempted while the name is blank.
	ErrInvalidState = errors.New("form: invalid state")
	// ErrContractViolation signals a caller passed a value outside a
	// setter's domain.
	ErrContractViolation = errors.New("form: contract violation")
)

// InvalidStateError is returned by Submit under PolicyStrict.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	if e == nil || e.Reason == "" {
		return ErrInvalidState.Error()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidState.Error(), e.Reason)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

// ContractViolationError describes a rejected setter argument. The model state
// is left untouched when one is returned.
type ContractViolationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ContractViolationError) Error() string {
	if e == nil {
		return ErrContractViolation.Error()
	}
	return fmt.Sprintf("%s: %s %v %s", ErrContractViolation.Error(), e.Field, e.Value, e.Reason)
}

func (e *ContractViolationError) Unwrap() error { return ErrContractViolation }

func contractViolation(field string, value any, reason string) error {
	return &ContractViolationError{Field: field, Value: value, Reason: reason}
}
