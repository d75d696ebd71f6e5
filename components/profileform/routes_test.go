package profileform

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-formscreen/pkg/renderers/vanilla"
)

func TestMountPath_JoinsBasePath(t *testing.T) {
	if got := MountPath("/app"); got != "/app/profile" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("app"); got != "/app/profile" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("/app/", WithRoutePath("me")); got != "/app/me" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath(""); got != "/profile" {
		t.Fatalf("unexpected mount path: %q", got)
	}
}

func TestComponent_RegisterRoutes(t *testing.T) {
	mux := http.NewServeMux()
	c := New(WithStrict(true))
	routes, err := c.RegisterRoutes(mux, "/app")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := Routes{Form: "/app/profile", Assets: "/app/profile/assets/"}
	if routes != want {
		t.Fatalf("unexpected routes: %#v", routes)
	}
	pattern := routes.Form
	if !c.Options().Strict {
		t.Fatalf("options should carry strict mode")
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, pattern, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, routes.Assets+vanilla.StylesheetName, nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), ".fs-result") {
		t.Fatalf("expected stylesheet, got %d", rec.Code)
	}
}

func TestRegisterRoutes_RootRoute(t *testing.T) {
	routes, err := RegisterRoutes(http.NewServeMux(), "/", WithRoutePath("/"))
	if err != nil {
		t.Fatal(err)
	}
	if routes.Form != "/" || routes.Assets != "/assets/" {
		t.Fatalf("unexpected routes: %#v", routes)
	}
}

func TestRegisterRoutes_MissingMux(t *testing.T) {
	if _, err := RegisterRoutes(nil, "/"); err == nil {
		t.Fatalf("expected error for nil mux")
	}
}
