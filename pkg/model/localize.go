package model

import "strings"

const (
	formTitleKeyHint = "titleKey"

	fieldLabelKeyHint       = "labelKey"
	fieldPlaceholderKeyHint = "placeholderKey"
	fieldHelpTextKeyHint    = "helpTextKey"
	fieldErrorKeyHint       = "errorKey"
)

// LocalizeFormModel mutates form in place, replacing label, placeholder, help
// and error text with the localised value of the matching `*Key` hint. A
// lookup that echoes the key back keeps the existing text.
func LocalizeFormModel(form *FormModel, loc Localizer) {
	if form == nil || loc == nil {
		return
	}

	if key := strings.TrimSpace(form.UIHints[formTitleKeyHint]); key != "" {
		form.UIHints["title"] = localize(loc, key, form.UIHints["title"])
	}

	for i := range form.Fields {
		localizeField(&form.Fields[i], loc)
	}
}

func localizeField(field *Field, loc Localizer) {
	if key := strings.TrimSpace(field.Hint(fieldLabelKeyHint)); key != "" {
		field.Label = localize(loc, key, field.Label)
	}
	if key := strings.TrimSpace(field.Hint(fieldPlaceholderKeyHint)); key != "" {
		field.Placeholder = localize(loc, key, field.Placeholder)
	}
	if key := strings.TrimSpace(field.Hint(fieldHelpTextKeyHint)); key != "" {
		field.UIHints["helpText"] = localize(loc, key, field.UIHints["helpText"])
	}
	if key := strings.TrimSpace(field.Hint(fieldErrorKeyHint)); key != "" {
		field.UIHints["errorText"] = localize(loc, key, field.UIHints["errorText"])
	}
}

func localize(loc Localizer, key, fallback string) string {
	msg := loc.Localize(key)
	if strings.TrimSpace(msg) == "" || msg == key {
		if strings.TrimSpace(fallback) != "" {
			return fallback
		}
		return key
	}
	return msg
}
