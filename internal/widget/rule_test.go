package widget

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
)

func TestRule(t *testing.T) {
	type testCase struct {
		Script      string
		URL         string
		Expected    bool
		ShouldError bool
	}

	testCases := []testCase{
		{Script: `path != "/debug"`, URL: "/pools", Expected: true},
		{Script: `path != "/debug"`, URL: "/debug", Expected: false},
		{Script: `under(path, "/pools")`, URL: "/pools/42", Expected: true},
		{Script: `under(path, "/pools")`, URL: "/poolside", Expected: false},
		{Script: `"dev" in query["mode"]`, URL: "/?mode=dev", Expected: true},
		{Script: `method == "GET" && host == "example.com"`, URL: "/", Expected: true},
		{Script: `path`, URL: "/", ShouldError: true},
		{Script: `path ==`, URL: "/", ShouldError: true},
	}

	for idx, tc := range testCases {
		rule := NewRule(tc.Script)
		req := httptest.NewRequest(http.MethodGet, tc.URL, nil)

		visible, err := rule.Exec(req)
		if tc.ShouldError {
			if err == nil {
				t.Errorf("testCases[%d]: expected an error for rule '%s'", idx, tc.Script)
			}
			continue
		}

		if err != nil {
			t.Fatalf("testCases[%d]: %+v", idx, errors.WithStack(err))
		}

		if e, g := tc.Expected, visible; e != g {
			t.Errorf("testCases[%d]: rule '%s' on '%s': expected '%v', got '%v'", idx, tc.Script, tc.URL, e, g)
		}
	}
}

func TestVisible(t *testing.T) {
	w := &testWidget{}
	req := httptest.NewRequest(http.MethodGet, "/debug", nil)

	visible, err := Visible(w, req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !visible {
		t.Errorf("widget without rule should be visible")
	}

	visible, err = Visible(When(w, NewRule(`path != "/debug"`)), req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if visible {
		t.Errorf("widget should be hidden on '/debug'")
	}
}
