package form

import "strings"

// Gender is the closed set of values the gender radio group offers.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Genders lists the accepted values in display order.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

// Valid reports whether g is one of the accepted values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}

// LabelKey returns the resource key for the gender's display label.
func (g Gender) LabelKey() string {
	if g == GenderFemale {
		return KeyGenderFemale
	}
	return KeyGenderMale
}

// ParseGender accepts the canonical values, ignoring surrounding whitespace and
// case. Anything else is a contract violation.
func ParseGender(raw string) (Gender, error) {
	g := Gender(strings.ToLower(strings.TrimSpace(raw)))
	if !g.Valid() {
		return "", contractViolation("gender", raw, "must be one of male, female")
	}
	return g, nil
}
