package form

// Symbolic resource keys resolved through a Localizer.
const (
	KeyGenderMale   = "gender.male"
	KeyGenderFemale = "gender.female"
	KeyYes          = "common.yes"
	KeyNo           = "common.no"

	KeyResultTitle      = "result.title"
	KeyResultName       = "result.name"
	KeyResultAge        = "result.age"
	KeyResultGender     = "result.gender"
	KeyResultSubscribed = "result.subscribed"

	KeyNameHint       = "field.name.hint"
	KeyNameLabel      = "field.name.label"
	KeyNameErrorEmpty = "field.name.error.empty"
	KeyGenderLabel    = "field.gender.label"
	KeyAgeLabel       = "field.age.label"
	KeyAgeErrorRange  = "field.age.error.range"
	KeySubscribeLabel = "field.subscribed.label"
	KeySubmit         = "action.submit"
)

// Localizer resolves a symbolic key into display text for the active locale.
type Localizer interface {
	Localize(key string) string
}

// LocalizerFunc adapts a plain function into a Localizer.
type LocalizerFunc func(key string) string

// Localize implements Localizer.
func (fn LocalizerFunc) Localize(key string) string {
	if fn == nil {
		return key
	}
	return fn(key)
}

// KeyLocalizer echoes keys back. It is the fallback when no Localizer is
// configured.
var KeyLocalizer Localizer = LocalizerFunc(func(key string) string { return key })
