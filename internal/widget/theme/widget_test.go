package theme

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bornholm/scaffold/internal/widget"
	"github.com/pkg/errors"
)

func TestToggle(t *testing.T) {
	w, err := widget.New(Type, map[string]any{
		"keys": []any{"0123456789abcdef0123456789abcdef"},
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	handler := w.Handler(widget.Prefix(Type))

	req := httptest.NewRequest(http.MethodGet, "/pools", nil)

	data, err := w.Data(req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := Light, data.(TemplateData).Theme; e != g {
		t.Errorf("data.Theme: expected '%v', got '%v'", e, g)
	}

	var cookies []*http.Cookie

	for _, expected := range []string{Dark, Light, Dark} {
		req := httptest.NewRequest(http.MethodPost, widget.Prefix(Type)+"/toggle", nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		if e, g := http.StatusOK, res.Code; e != g {
			t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
		}

		if e, g := `data-theme-current="`+expected+`"`, res.Body.String(); !strings.Contains(g, e) {
			t.Errorf("res.Body: expected '%v' to be contained in '%v'", e, g)
		}

		if e, g := expected, res.Header().Get("HX-Trigger"); !strings.Contains(g, e) {
			t.Errorf("HX-Trigger: expected '%v' to be contained in '%v'", e, g)
		}

		cookies = res.Result().Cookies()
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	data, err = w.Data(req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := Dark, data.(TemplateData).Theme; e != g {
		t.Errorf("data.Theme: expected '%v', got '%v'", e, g)
	}
}

func TestInvalidDefault(t *testing.T) {
	if _, err := widget.New(Type, map[string]any{"default": "sepia"}); err == nil {
		t.Errorf("expected an error for an invalid default theme")
	}
}

func TestSecretSurvivesRestart(t *testing.T) {
	options := map[string]any{"secret": "not so secret"}

	first, err := widget.New(Type, options)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	res := httptest.NewRecorder()
	first.Handler(widget.Prefix(Type)).ServeHTTP(res, httptest.NewRequest(http.MethodPost, widget.Prefix(Type)+"/toggle", nil))

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	// Same secret, new process
	second, err := widget.New(Type, options)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range res.Result().Cookies() {
		req.AddCookie(c)
	}

	data, err := second.Data(req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := Dark, data.(TemplateData).Theme; e != g {
		t.Errorf("data.Theme: expected '%v', got '%v'", e, g)
	}
}
