// Package wallet provides the wallet connection button of the site.
// The connection itself happens in the browser wallet.
package wallet

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/bornholm/scaffold/internal/widget"
	"github.com/bornholm/scaffold/pkg/log"
	"github.com/pkg/errors"
)

const Type widget.Type = "wallet"

//go:embed templates/**
var templateFs embed.FS

func init() {
	widget.Register(Type, CreateWidgetFromOptions)
}

type Options struct {
	NetworkName string `mapstructure:"networkName"`
	ChainID     int64  `mapstructure:"chainId"`
	RPCURL      string `mapstructure:"rpcUrl"`
}

type TemplateData struct {
	NetworkName string
	ChainID     int64
	RPCURL      string
}

type Widget struct {
	opts Options
}

func CreateWidgetFromOptions(options any) (widget.Widget, error) {
	opts := Options{
		NetworkName: "Hardhat",
		ChainID:     31337,
		RPCURL:      "http://127.0.0.1:8545",
	}

	if err := widget.DecodeOptions(Type, options, &opts); err != nil {
		return nil, errors.WithStack(err)
	}

	if opts.ChainID <= 0 {
		return nil, errors.Errorf("invalid chain id '%d'", opts.ChainID)
	}

	slog.DebugContext(context.Background(), "wallet widget configured",
		slog.String("network", opts.NetworkName),
		slog.Int64("chainId", opts.ChainID),
		log.ScrubbedURL("rpcUrl", opts.RPCURL),
	)

	return &Widget{opts}, nil
}

// Type implements widget.Widget.
func (w *Widget) Type() widget.Type {
	return Type
}

// Template implements widget.Widget.
func (w *Widget) Template() string {
	return "widget-wallet"
}

// TemplateFS implements widget.Widget.
func (w *Widget) TemplateFS() fs.FS {
	return templateFs
}

// Handler implements widget.Widget.
func (w *Widget) Handler(prefix string) http.Handler {
	return nil
}

// Data implements widget.Widget.
func (w *Widget) Data(r *http.Request) (any, error) {
	return TemplateData{
		NetworkName: w.opts.NetworkName,
		ChainID:     w.opts.ChainID,
		RPCURL:      w.opts.RPCURL,
	}, nil
}

var _ widget.Widget = &Widget{}
