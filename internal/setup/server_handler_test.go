package setup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bornholm/scaffold/internal/config"
	"github.com/bornholm/scaffold/internal/widget"
	"github.com/pkg/errors"
)

func TestNewHandlerFromConfig(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.NewDefaultConfig()

	if err := config.Interpolate(conf); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	handler, closer, err := NewHandlerFromConfig(ctx, conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer func() {
		if err := closer.Close(); err != nil {
			t.Errorf("%+v", errors.WithStack(err))
		}
	}()

	for _, path := range []string{"/", "/pools", "/hooks", "/debug"} {
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, path, nil))

		if e, g := http.StatusOK, res.Code; e != g {
			t.Errorf("GET %s: expected status '%v', got '%v'", path, e, g)
		}
	}
}

func TestNewWidgetsFromConfig(t *testing.T) {
	conf := config.NewDefaultConfig()
	conf.Widgets = []config.Widget{{Type: "unknown"}}

	if _, err := NewWidgetsFromConfig(context.Background(), conf); !errors.Is(err, widget.ErrNotRegistered) {
		t.Errorf("err: expected '%v', got '%v'", widget.ErrNotRegistered, err)
	}
}

func TestWidgetRule(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.NewDefaultConfig()
	conf.Widgets = []config.Widget{
		{Type: "theme", When: `path != "/debug"`},
	}

	handler, _, err := NewHandlerFromConfig(ctx, conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	type testCase struct {
		Path    string
		Visible bool
	}

	testCases := []testCase{
		{Path: "/pools", Visible: true},
		{Path: "/debug", Visible: false},
	}

	for _, tc := range testCases {
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, tc.Path, nil))

		if e, g := http.StatusOK, res.Code; e != g {
			t.Fatalf("GET %s: expected status '%v', got '%v'", tc.Path, e, g)
		}

		if e, g := tc.Visible, strings.Contains(res.Body.String(), "data-theme-current"); e != g {
			t.Errorf("GET %s: expected theme widget visibility '%v', got '%v'", tc.Path, e, g)
		}
	}

	conf.Widgets = []config.Widget{
		{Type: "theme", When: `path ==`},
	}

	if _, err := NewWidgetsFromConfig(ctx, conf); err == nil {
		t.Errorf("expected an error for an invalid rule")
	}
}
