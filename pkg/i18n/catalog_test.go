package i18n_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formscreen/pkg/form"
	"github.com/goliatone/go-formscreen/pkg/i18n"
)

func TestDefaultCatalog_CoversEveryFormKey(t *testing.T) {
	catalog, err := i18n.DefaultCatalog()
	if err != nil {
		t.Fatalf("load default catalog: %v", err)
	}

	if diff := cmp.Diff([]string{"en", "ru"}, catalog.Locales()); diff != "" {
		t.Fatalf("locales mismatch (-want +got):\n%s", diff)
	}

	keys := []string{
		form.KeyGenderMale, form.KeyGenderFemale, form.KeyYes, form.KeyNo,
		form.KeyResultTitle, form.KeyResultName, form.KeyResultAge,
		form.KeyResultGender, form.KeyResultSubscribed,
		form.KeyNameHint, form.KeyNameLabel, form.KeyNameErrorEmpty,
		form.KeyGenderLabel, form.KeyAgeLabel, form.KeyAgeErrorRange, form.KeySubscribeLabel, form.KeySubmit,
	}
	for _, locale := range catalog.Locales() {
		for _, key := range keys {
			msg, err := catalog.Translate(locale, key)
			if err != nil || msg == "" {
				t.Errorf("%s: missing %q (%v)", locale, key, err)
			}
		}
	}
}

func TestCatalog_FallbackChain(t *testing.T) {
	catalog, err := i18n.NewCatalog(map[string]map[string]string{
		"en":    {"greeting": "Hello", "only.en": "English"},
		"en_GB": {"greeting": "Hiya"},
		"ru":    {"greeting": "Привет"},
	}, "en")
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		locale, key, want string
	}{
		{"en-GB", "greeting", "Hiya"},
		{"en-gb", "only.en", "English"},
		{"ru-RU", "greeting", "Привет"},
		{"ru", "only.en", "English"},
		{"fr", "greeting", "Hello"},
		{"", "greeting", "Hello"},
	}
	for _, tc := range cases {
		got, err := catalog.Translate(tc.locale, tc.key)
		if err != nil {
			t.Fatalf("Translate(%q, %q): %v", tc.locale, tc.key, err)
		}
		if got != tc.want {
			t.Errorf("Translate(%q, %q) = %q, want %q", tc.locale, tc.key, got, tc.want)
		}
	}

	if _, err := catalog.Translate("en", "nope"); !errors.Is(err, i18n.ErrMissingTranslation) {
		t.Fatalf("expected ErrMissingTranslation, got %v", err)
	}
}

func TestCatalog_TranslateFormatsArgs(t *testing.T) {
	catalog, err := i18n.NewCatalog(map[string]map[string]string{
		"en": {"age.value": "%d years"},
	}, "en")
	if err != nil {
		t.Fatal(err)
	}
	got, err := catalog.Translate("en", "age.value", 30)
	if err != nil || got != "30 years" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestCatalog_Match(t *testing.T) {
	catalog := i18n.MustDefaultCatalog()

	cases := map[string][]string{
		"en": {"fr-FR"},
		"ru": {"ru-RU"},
	}
	for want, prefs := range cases {
		if got := catalog.Match(prefs...); got != want {
			t.Errorf("Match(%v) = %q, want %q", prefs, got, want)
		}
	}
	if got := catalog.Match("not a locale!!"); got != "en" {
		t.Errorf("unparseable preference should fall back, got %q", got)
	}
	if got := catalog.Match("de", "ru"); got != "ru" {
		t.Errorf("expected second preference to win, got %q", got)
	}
	if got := catalog.MatchAcceptLanguage("ru-RU,ru;q=0.9,en;q=0.8"); got != "ru" {
		t.Errorf("accept-language match = %q, want ru", got)
	}
	if got := catalog.MatchAcceptLanguage(""); got != "en" {
		t.Errorf("empty accept-language = %q, want en", got)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := map[string]fstest.MapFS{
		"empty file": {
			"en.yaml": {Data: []byte("  ")},
		},
		"duplicate": {
			"a/en.yaml": {Data: []byte("messages:\n  a: b\n")},
			"b/en.json": {Data: []byte(`{"messages":{"a":"c"}}`)},
		},
		"missing default": {
			"ru.yaml": {Data: []byte("messages:\n  a: b\n")},
		},
		"bad yaml": {
			"en.yaml": {Data: []byte("messages: [")},
		},
	}
	for name, fsys := range cases {
		if _, err := i18n.LoadFS(fsys); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadFS_FileNameLocaleAndNesting(t *testing.T) {
	fsys := fstest.MapFS{
		"de.json":   {Data: []byte(`{"messages":{"result":{"title":"Ihre Daten"}}}`)},
		"en.yml":    {Data: []byte("messages:\n  result:\n    title: Your details\n")},
		"README.md": {Data: []byte("ignored")},
	}
	catalog, err := i18n.LoadFS(fsys)
	if err != nil {
		t.Fatal(err)
	}
	got, err := catalog.Translate("de", form.KeyResultTitle)
	if err != nil || got != "Ihre Daten" {
		t.Fatalf("got %q, %v", got, err)
	}
	if !catalog.Has("de") || catalog.Has("fr") {
		t.Fatalf("unexpected locale set %v", catalog.Locales())
	}
}
