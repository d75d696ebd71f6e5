package profileform

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-formscreen/pkg/form"
	"github.com/goliatone/go-formscreen/pkg/render"
	"github.com/goliatone/go-formscreen/pkg/renderers/tui"
	"github.com/goliatone/go-formscreen/pkg/screen"
)

var snapshotPattern = regexp.MustCompile(`name="_snapshot" value="([^"]+)"`)

func serve(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func profileValues(name string) url.Values {
	return url.Values{
		"name":       {name},
		"gender":     {"female"},
		"age":        {"30.7"},
		"subscribed": {"on"},
	}
}

func assertBody(t *testing.T, rec *httptest.ResponseRecorder, fragments ...string) {
	t.Helper()
	body := rec.Body.String()
	for _, fragment := range fragments {
		if !strings.Contains(body, fragment) {
			t.Fatalf("expected body to contain %q\n%s", fragment, body)
		}
	}
}

func snapshotFrom(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	match := snapshotPattern.FindStringSubmatch(rec.Body.String())
	if match == nil {
		t.Fatalf("snapshot field missing:\n%s", rec.Body.String())
	}
	return match[1]
}

func TestHandler_GetRendersPage(t *testing.T) {
	h := NewHandler()

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/profile", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected HTML content-type, got %q", ct)
	}
	if got := rec.Header().Get("Content-Language"); got != "en" {
		t.Fatalf("expected en, got %q", got)
	}
	assertBody(t, rec, "<title>Profile</title>", `action="/profile"`, `class="fs-submit" disabled`, "Name must not be empty")
	if strings.Contains(rec.Body.String(), `<section class="fs-result"`) {
		t.Fatalf("fresh page should not show a result")
	}

	snapshot, err := render.DecodeSnapshotField(snapshotFrom(t, rec))
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snapshot.State != form.DefaultState() {
		t.Fatalf("unexpected initial state: %#v", snapshot.State)
	}
}

func TestHandler_LocaleNegotiation(t *testing.T) {
	h := NewHandler(WithLocale("ru"))

	cases := []struct {
		name   string
		target string
		header string
		want   string
	}{
		{name: "query", target: "/profile?lang=ru", want: "ru"},
		{name: "query beats header", target: "/profile?lang=en", header: "ru-RU", want: "en"},
		{name: "accept-language", target: "/profile", header: "ru-RU,ru;q=0.9", want: "ru"},
		{name: "fallback option", target: "/profile", want: "ru"},
		{name: "unknown query", target: "/profile?lang=de", want: "en"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.header != "" {
				req.Header.Set("Accept-Language", tc.header)
			}
			rec := serve(t, h, req)
			if got := rec.Header().Get("Content-Language"); got != tc.want {
				t.Fatalf("expected locale %q, got %q", tc.want, got)
			}
		})
	}

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/profile?lang=ru", nil))
	assertBody(t, rec, `lang="ru"`, "Профиль", "Мужской")
}

func TestHandler_HeadOmitsBody(t *testing.T) {
	rec := serve(t, NewHandler(), httptest.NewRequest(http.MethodHead, "/profile", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("HEAD should not write a body")
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	rec := serve(t, NewHandler(), httptest.NewRequest(http.MethodPut, "/profile", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD, POST" {
		t.Fatalf("unexpected Allow header %q", allow)
	}
}

func TestHandler_PostSubmits(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := NewHandler(WithLogger(zap.New(core)))

	rec := serve(t, h, postForm("/profile", profileValues("Alice")))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d\n%s", rec.Code, rec.Body.String())
	}
	assertBody(t, rec,
		`<section class="fs-result"`,
		"Your details",
		"<li>Name: Alice</li>",
		"<li>Age: 30</li>",
		"<li>Gender: Female</li>",
		"<li>Subscribed: Yes</li>",
	)

	entries := logs.FilterMessage("profileform: profile submitted").All()
	if len(entries) != 1 {
		t.Fatalf("expected one submission log, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["age"]; got != int64(30) {
		t.Fatalf("unexpected logged age %v", got)
	}
}

func TestHandler_PostLongNameAccepted(t *testing.T) {
	name := strings.Repeat("Alice", 100)
	rec := serve(t, NewHandler(), postForm("/profile", profileValues(name)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	assertBody(t, rec, "<li>Name: "+name+"</li>")
}

func TestHandler_PostBlankNameIgnored(t *testing.T) {
	rec := serve(t, NewHandler(), postForm("/profile", profileValues("   ")))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	assertBody(t, rec, "Name must not be empty")
	if strings.Contains(rec.Body.String(), `<section class="fs-result"`) {
		t.Fatalf("ignored submit should not produce a result")
	}
}

func TestHandler_PostBlankNameStrict(t *testing.T) {
	rec := serve(t, NewHandler(WithStrict(true)), postForm("/profile", profileValues("")))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}
	assertBody(t, rec, "Name must not be empty", `<form class="fs-form"`)
}

func TestHandler_PostSchemaViolations(t *testing.T) {
	cases := map[string]url.Values{
		"age out of range": {"name": {"Bob"}, "gender": {"male"}, "age": {"150"}},
		"age not a number": {"name": {"Bob"}, "gender": {"male"}, "age": {"abc"}},
		"unknown gender":   {"name": {"Bob"}, "gender": {"other"}, "age": {"20"}},
		"missing name":     {"gender": {"male"}, "age": {"20"}},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			rec := serve(t, NewHandler(), postForm("/profile", values))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", rec.Code)
			}
			if strings.Contains(rec.Body.String(), `<section class="fs-result"`) {
				t.Fatalf("rejected payload should not produce a result")
			}
			if !strings.Contains(rec.Body.String(), `class="fs-error"`) && !strings.Contains(rec.Body.String(), "fs-form-errors") {
				t.Fatalf("expected validation feedback in page")
			}
		})
	}
}

func TestHandler_SnapshotRoundTrip(t *testing.T) {
	h := NewHandler()

	first := serve(t, h, postForm("/profile", profileValues("Alice")))
	if first.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", first.Code)
	}

	values := profileValues("")
	values.Set(render.SnapshotFieldName, snapshotFrom(t, first))
	second := serve(t, h, postForm("/profile", values))
	if second.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", second.Code)
	}
	// The blank-name submit is ignored, so the restored result survives.
	assertBody(t, second, "<li>Name: Alice</li>", "Name must not be empty")

	snapshot, err := render.DecodeSnapshotField(snapshotFrom(t, second))
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snapshot.State.Name != "" || snapshot.Result.IsZero() {
		t.Fatalf("unexpected snapshot after ignored submit: %#v", snapshot)
	}
}

func TestHandler_CorruptSnapshot(t *testing.T) {
	values := profileValues("Alice")
	values.Set(render.SnapshotFieldName, "%%%not-base64")

	rec := serve(t, NewHandler(), postForm("/profile", values))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	assertBody(t, rec, "The saved form state is invalid.")
}

func TestHandler_SnapshotCannotInjectResult(t *testing.T) {
	forged := `{"state":{"name":"","age":25,"gender":"male","subscribed":false},"result":["Hacked","Name: Mallory"]}`
	values := profileValues("")
	values.Set(render.SnapshotFieldName, base64.RawURLEncoding.EncodeToString([]byte(forged)))

	rec := serve(t, NewHandler(), postForm("/profile", values))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "Mallory") {
		t.Fatalf("forged result rendered:\n%s", rec.Body.String())
	}
}

func TestHandler_GuardRejects(t *testing.T) {
	h := NewHandler(WithGuard(func(r *http.Request) error {
		return StatusError{Code: http.StatusUnauthorized}
	}))

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/profile", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestHandler_CustomRenderer(t *testing.T) {
	renderer, err := tui.New(tui.WithOutputFormat(tui.OutputFormatJSON))
	if err != nil {
		t.Fatalf("tui renderer: %v", err)
	}

	rec := serve(t, NewHandler(WithRenderer(renderer)), postForm("/profile", profileValues("Alice")))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content-type %q", ct)
	}
	assertBody(t, rec, `"canSubmit": true`, `"Name: Alice"`)
}

type failingRenderer struct{}

func (failingRenderer) Name() string        { return "failing" }
func (failingRenderer) ContentType() string { return "text/plain" }
func (failingRenderer) Render(context.Context, screen.View, render.RenderOptions) ([]byte, error) {
	return nil, errors.New("boom")
}

func TestHandler_RenderFailure(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	h := NewHandler(WithRenderer(failingRenderer{}), WithLogger(zap.New(core)))

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/profile", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if logs.FilterMessage("profileform: render").Len() != 1 {
		t.Fatalf("expected render failure to be logged")
	}
}

func TestStatusFor(t *testing.T) {
	if got := statusFor(StatusError{Code: http.StatusTeapot}); got != http.StatusTeapot {
		t.Fatalf("unexpected status %d", got)
	}
	if got := statusFor(errors.New("plain")); got != http.StatusInternalServerError {
		t.Fatalf("unexpected status %d", got)
	}
	if got := (StatusError{}).StatusCode(); got != http.StatusInternalServerError {
		t.Fatalf("zero code should map to 500, got %d", got)
	}
}
