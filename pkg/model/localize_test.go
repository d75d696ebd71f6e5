package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formscreen/pkg/model"
)

type stubLocalizer map[string]string

func (l stubLocalizer) Localize(key string) string {
	if msg, ok := l[key]; ok {
		return msg
	}
	return key
}

func TestLocalizeFormModel_UsesKeysAndFallbacks(t *testing.T) {
	form := model.FormModel{
		UIHints: map[string]string{"title": "Profile", "titleKey": "screen.title"},
		Fields: []model.Field{
			{
				Name:        "name",
				Label:       "Name",
				Placeholder: "",
				UIHints: map[string]string{
					"labelKey":       "field.name.label",
					"placeholderKey": "field.name.hint",
					"errorKey":       "field.name.error.empty",
					"helpTextKey":    "field.name.help",
					"helpText":       "Shown on the summary",
				},
			},
		},
	}
	original := form.Clone()

	model.LocalizeFormModel(&form, stubLocalizer{
		"field.name.label":       "Имя",
		"field.name.hint":        "Введите имя",
		"field.name.error.empty": "Имя не может быть пустым",
	})

	if form.UIHints["title"] != "Profile" {
		t.Fatalf("expected title fallback, got %q", form.UIHints["title"])
	}
	field := form.Fields[0]
	if field.Label != "Имя" || field.Placeholder != "Введите имя" {
		t.Fatalf("unexpected localized field %+v", field)
	}
	if field.UIHints["errorText"] != "Имя не может быть пустым" {
		t.Fatalf("unexpected error text %q", field.UIHints["errorText"])
	}
	if field.UIHints["helpText"] != "Shown on the summary" {
		t.Fatalf("expected help text fallback, got %q", field.UIHints["helpText"])
	}

	if diff := cmp.Diff("Name", original.Fields[0].Label); diff != "" {
		t.Fatalf("clone was mutated (-want +got):\n%s", diff)
	}
}

func TestLocalizeDecorator(t *testing.T) {
	form := model.FormModel{Fields: []model.Field{{Name: "age", UIHints: map[string]string{"labelKey": "field.age.label"}}}}
	if err := model.LocalizeDecorator(stubLocalizer{"field.age.label": "Age"}).Decorate(&form); err != nil {
		t.Fatal(err)
	}
	if form.Fields[0].Label != "Age" {
		t.Fatalf("got %q", form.Fields[0].Label)
	}
}

func TestDefaultLabeler(t *testing.T) {
	cases := map[string]string{
		"name":         "Name",
		"isSubscribed": "Is Subscribed",
		"age_in_years": "Age In Years",
		"field2-value": "Field 2 Value",
		"  ageYears ":  "Age Years",
		"имяПолный":    "Имя Полный",
		"":             "",
	}
	for in, want := range cases {
		if got := model.DefaultLabeler(in); got != want {
			t.Errorf("DefaultLabeler(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLocalizeFormModel_EmptyTextFallsBackToKey(t *testing.T) {
	form := model.FormModel{Fields: []model.Field{{
		Name:    "nickname",
		UIHints: map[string]string{"labelKey": "field.nickname.label", "placeholderKey": "field.nickname.hint"},
	}}}

	model.LocalizeFormModel(&form, stubLocalizer{})

	field := form.Fields[0]
	if field.Label != "field.nickname.label" {
		t.Fatalf("expected key fallback for label, got %q", field.Label)
	}
	if field.Placeholder != "field.nickname.hint" {
		t.Fatalf("expected key fallback for placeholder, got %q", field.Placeholder)
	}
}
