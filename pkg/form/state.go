package form

import (
	"math"
	"strings"
)

const (
	MinAge     = 1.0
	MaxAge     = 100.0
	DefaultAge = 25.0
)

// State is the user-editable part of the screen.
type State struct {
	Name       string  `json:"name" yaml:"name"`
	Age        float64 `json:"age" yaml:"age"`
	Gender     Gender  `json:"gender" yaml:"gender"`
	Subscribed bool    `json:"subscribed" yaml:"subscribed"`
}

// DefaultState returns the state a freshly mounted screen starts with.
func DefaultState() State {
	return State{
		Name:       "",
		Age:        DefaultAge,
		Gender:     GenderMale,
		Subscribed: false,
	}
}

// Validate checks the domain constraints a State must satisfy before it can be
// adopted by a Model.
func (s State) Validate() error {
	if err := checkAge(s.Age); err != nil {
		return err
	}
	if !s.Gender.Valid() {
		return contractViolation("gender", string(s.Gender), "must be one of male, female")
	}
	return nil
}

// Derived holds values computed from State on every read.
type Derived struct {
	NameValid  bool `json:"nameValid"`
	AgeInteger int  `json:"ageInteger"`
}

// Derive computes the derived values for s.
func (s State) Derive() Derived {
	return Derived{
		NameValid:  NameValid(s.Name),
		AgeInteger: AgeInteger(s.Age),
	}
}

// NameValid reports whether name has any non-whitespace content.
func NameValid(name string) bool {
	return strings.TrimSpace(name) != ""
}

// AgeInteger truncates age toward zero.
func AgeInteger(age float64) int {
	return int(age)
}

// AgeInDomain reports whether age lies in [MinAge, MaxAge].
func AgeInDomain(age float64) bool {
	if math.IsNaN(age) {
		return false
	}
	return age >= MinAge && age <= MaxAge
}

// ClampAge pins age into the domain. Bindings that map free-form input (a
// slider, a numeric field) onto the model use it before calling SetAge.
func ClampAge(age float64) float64 {
	switch {
	case math.IsNaN(age):
		return DefaultAge
	case age < MinAge:
		return MinAge
	case age > MaxAge:
		return MaxAge
	default:
		return age
	}
}

func checkAge(age float64) error {
	if !AgeInDomain(age) {
		return contractViolation("age", age, "must be within [1, 100]")
	}
	return nil
}
