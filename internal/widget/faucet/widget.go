// Package faucet provides the button requesting test funds for an
// address on the local network.
package faucet

import (
	"embed"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bornholm/scaffold/internal/ratelimit"
	"github.com/bornholm/scaffold/internal/ui"
	"github.com/bornholm/scaffold/internal/widget"
	"github.com/bornholm/scaffold/pkg/log"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const Type widget.Type = "faucet"

//go:embed templates/**
var templateFs embed.FS

var templates = ui.MustTemplates(templateFs)

func init() {
	widget.Register(Type, CreateWidgetFromOptions)
}

type Options struct {
	Amount float64 `mapstructure:"amount"`
	Unit   string  `mapstructure:"unit"`
	Rate   float64 `mapstructure:"rate"`
	Burst  int     `mapstructure:"burst"`

	// StorePath is the SQLite database recording the grants. Grants are
	// kept in memory when empty.
	StorePath string `mapstructure:"storePath"`
}

type TemplateData struct {
	Amount float64
	Unit   string
	Action string
}

type GrantTemplateData struct {
	Amount        float64
	Unit          string
	Address       string
	PreviousGrant time.Time
}

type Widget struct {
	opts    Options
	limiter *ratelimit.RateLimiter
	store   GrantStore
	now     func() time.Time
}

func CreateWidgetFromOptions(options any) (widget.Widget, error) {
	opts := Options{
		Amount: 1,
		Unit:   "ETH",
		Rate:   0.2,
		Burst:  3,
	}

	if err := widget.DecodeOptions(Type, options, &opts); err != nil {
		return nil, errors.WithStack(err)
	}

	if opts.Amount <= 0 {
		return nil, errors.Errorf("invalid faucet amount '%v'", opts.Amount)
	}

	if opts.Burst <= 0 {
		return nil, errors.Errorf("invalid faucet burst '%d'", opts.Burst)
	}

	var store GrantStore
	if opts.StorePath != "" {
		store = NewSQLiteStore(opts.StorePath)
	} else {
		store = NewMemoryStore()
	}

	return NewWidget(opts, store), nil
}

func NewWidget(opts Options, store GrantStore) *Widget {
	return &Widget{
		opts:    opts,
		limiter: ratelimit.New(rate.Limit(opts.Rate), opts.Burst),
		store:   store,
		now:     time.Now,
	}
}

// Type implements widget.Widget.
func (w *Widget) Type() widget.Type {
	return Type
}

// Template implements widget.Widget.
func (w *Widget) Template() string {
	return "widget-faucet"
}

// TemplateFS implements widget.Widget.
func (w *Widget) TemplateFS() fs.FS {
	return templateFs
}

// Data implements widget.Widget.
func (w *Widget) Data(r *http.Request) (any, error) {
	return TemplateData{
		Amount: w.opts.Amount,
		Unit:   w.opts.Unit,
		Action: widget.Prefix(Type) + "/request",
	}, nil
}

// Handler implements widget.Widget.
func (w *Widget) Handler(prefix string) http.Handler {
	mux := http.NewServeMux()

	throttle := w.limiter.Middleware(ratelimit.RemoteIP)
	mux.Handle("POST "+prefix+"/request", throttle(http.HandlerFunc(w.handleRequest)))

	return mux
}

func (w *Widget) handleRequest(res http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(res, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	address := strings.ToLower(strings.TrimSpace(r.PostFormValue("address")))
	if address == "" {
		http.Error(res, "missing address", http.StatusBadRequest)
		return
	}

	previous, err := w.store.LastGrant(ctx, address)
	if err != nil {
		slog.ErrorContext(ctx, "could not retrieve last grant", log.Error(errors.WithStack(err)))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := w.store.RecordGrant(ctx, address, w.now()); err != nil {
		slog.ErrorContext(ctx, "could not record grant", log.Error(errors.WithStack(err)))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	slog.InfoContext(ctx, "faucet request granted",
		slog.String("address", address),
		slog.Float64("amount", w.opts.Amount),
		slog.String("unit", w.opts.Unit),
	)

	data := GrantTemplateData{
		Amount:        w.opts.Amount,
		Unit:          w.opts.Unit,
		Address:       address,
		PreviousGrant: previous,
	}

	if err := templates.ExecuteTemplate(res, "widget-faucet-grant", data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
		return
	}
}

// Close releases the grant store.
func (w *Widget) Close() error {
	closer, ok := w.store.(io.Closer)
	if !ok {
		return nil
	}

	if err := closer.Close(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

var (
	_ widget.Widget = &Widget{}
	_ io.Closer     = &Widget{}
)
