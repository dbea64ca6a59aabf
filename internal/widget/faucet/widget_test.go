package faucet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bornholm/scaffold/internal/widget"
	"github.com/pkg/errors"
)

func TestRequest(t *testing.T) {
	w := NewWidget(Options{
		Amount: 0.5,
		Unit:   "ETH",
		Rate:   0,
		Burst:  3,
	}, NewMemoryStore())

	now := time.Now()
	w.now = func() time.Time { return now }

	handler := w.Handler(widget.Prefix(Type))

	type request struct {
		Address      string
		Expected     int
		BodyContains []string
	}

	requests := []request{
		{Address: "0xABC", Expected: http.StatusOK, BodyContains: []string{"recorded for <code>0xabc</code>", "Previous request: never"}},
		{Address: "0xabc", Expected: http.StatusOK, BodyContains: []string{"Previous request: now"}},
		{Address: "  ", Expected: http.StatusBadRequest, BodyContains: []string{"missing address"}},
		{Address: "0xdef", Expected: http.StatusTooManyRequests},
	}

	for idx, req := range requests {
		form := url.Values{"address": []string{req.Address}}

		r := httptest.NewRequest(http.MethodPost, widget.Prefix(Type)+"/request", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.RemoteAddr = "192.0.2.1:4242"

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, r)

		if e, g := req.Expected, res.Code; e != g {
			t.Errorf("requests[%d]: expected status '%v', got '%v'", idx, e, g)
		}

		for _, expected := range req.BodyContains {
			if !strings.Contains(res.Body.String(), expected) {
				t.Errorf("requests[%d]: expected body to contain '%v', got '%v'", idx, expected, res.Body.String())
			}
		}
	}

	last, err := w.store.LastGrant(context.Background(), "0xabc")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := now, last; !e.Equal(g) {
		t.Errorf("last grant of '0xabc': expected '%v', got '%v'", e, g)
	}
}

func TestCreateWidgetFromOptions(t *testing.T) {
	if _, err := widget.New(Type, map[string]any{"amount": "0"}); err == nil {
		t.Errorf("expected an error for a zero amount")
	}

	w, err := widget.New(Type, map[string]any{"amount": "2.5", "unit": "GO"})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	data, err := w.Data(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := 2.5, data.(TemplateData).Amount; e != g {
		t.Errorf("data.Amount: expected '%v', got '%v'", e, g)
	}
}

func TestCloseStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grants.sqlite")

	w, err := widget.New(Type, map[string]any{"storePath": path})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	faucet := w.(*Widget)

	if err := faucet.store.RecordGrant(context.Background(), "0xabc", time.Now()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := faucet.Close(); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := NewWidget(Options{Burst: 1}, NewMemoryStore()).Close(); err != nil {
		t.Errorf("%+v", errors.WithStack(err))
	}
}
