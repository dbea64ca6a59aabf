// Package theme provides the light/dark theme switch of the site.
package theme

import (
	"crypto/rand"
	"crypto/sha256"
	"embed"
	"io"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/bornholm/scaffold/internal/ui"
	"github.com/bornholm/scaffold/internal/widget"
	"github.com/bornholm/scaffold/pkg/log"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
)

const Type widget.Type = "theme"

const (
	Light = "light"
	Dark  = "dark"
)

const sessionKeyTheme = "theme"

//go:embed templates/**
var templateFs embed.FS

var templates = ui.MustTemplates(templateFs)

func init() {
	widget.Register(Type, CreateWidgetFromOptions)
}

type Options struct {
	SessionName string   `mapstructure:"sessionName"`
	Keys        []string `mapstructure:"keys"`
	Default     string   `mapstructure:"default"`

	// Secret derives the cookie keys when no keys are given, so that the
	// theme survives restarts.
	Secret string `mapstructure:"secret"`
}

type TemplateData struct {
	Theme  string
	Action string
}

type Widget struct {
	store        sessions.Store
	sessionName  string
	defaultTheme string
	prefix       string
}

func CreateWidgetFromOptions(options any) (widget.Widget, error) {
	opts := Options{
		SessionName: "scaffold_theme",
		Default:     Light,
	}

	if err := widget.DecodeOptions(Type, options, &opts); err != nil {
		return nil, errors.WithStack(err)
	}

	if opts.Default != Light && opts.Default != Dark {
		return nil, errors.Errorf("invalid default theme '%s'", opts.Default)
	}

	keyPairs := make([][]byte, 0, len(opts.Keys))
	for _, k := range opts.Keys {
		keyPairs = append(keyPairs, []byte(k))
	}

	if len(keyPairs) == 0 && opts.Secret != "" {
		derived, err := deriveKeyPair(opts.Secret)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		keyPairs = append(keyPairs, derived...)
	}

	if len(keyPairs) == 0 {
		key := make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, errors.Wrap(err, "could not generate cookie signing key")
		}

		keyPairs = append(keyPairs, key)
	}

	store := sessions.NewCookieStore(keyPairs...)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	// One year
	store.MaxAge(60 * 60 * 24 * 365)

	return NewWidget(store, opts.SessionName, opts.Default), nil
}

// deriveKeyPair returns a 64 bytes hash key and a 32 bytes block key
// derived from the given secret.
func deriveKeyPair(secret string) ([][]byte, error) {
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte("scaffold theme cookie"))

	hashKey := make([]byte, 64)
	if _, err := io.ReadFull(kdf, hashKey); err != nil {
		return nil, errors.Wrap(err, "could not derive cookie hash key")
	}

	blockKey := make([]byte, 32)
	if _, err := io.ReadFull(kdf, blockKey); err != nil {
		return nil, errors.Wrap(err, "could not derive cookie block key")
	}

	return [][]byte{hashKey, blockKey}, nil
}

func NewWidget(store sessions.Store, sessionName string, defaultTheme string) *Widget {
	return &Widget{
		store:        store,
		sessionName:  sessionName,
		defaultTheme: defaultTheme,
		prefix:       widget.Prefix(Type),
	}
}

// Type implements widget.Widget.
func (w *Widget) Type() widget.Type {
	return Type
}

// Template implements widget.Widget.
func (w *Widget) Template() string {
	return "widget-theme"
}

// TemplateFS implements widget.Widget.
func (w *Widget) TemplateFS() fs.FS {
	return templateFs
}

// Data implements widget.Widget.
func (w *Widget) Data(r *http.Request) (any, error) {
	theme, err := w.current(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return TemplateData{
		Theme:  theme,
		Action: w.prefix + "/toggle",
	}, nil
}

// Handler implements widget.Widget.
func (w *Widget) Handler(prefix string) http.Handler {
	w.prefix = prefix

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+prefix+"/toggle", w.handleToggle)

	return mux
}

func (w *Widget) handleToggle(res http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, err := w.store.Get(r, w.sessionName)
	if err != nil {
		// Cookies signed with a previous key are replaced
		slog.DebugContext(ctx, "could not decode theme session", log.Error(errors.WithStack(err)))
	}

	theme := w.themeOf(sess)
	if theme == Light {
		theme = Dark
	} else {
		theme = Light
	}

	sess.Values[sessionKeyTheme] = theme

	if err := sess.Save(r, res); err != nil {
		slog.ErrorContext(ctx, "could not save theme session", log.Error(errors.WithStack(err)))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res.Header().Set("HX-Trigger", `{"themeChanged":"`+theme+`"}`)

	data := TemplateData{
		Theme:  theme,
		Action: w.prefix + "/toggle",
	}

	if err := templates.ExecuteTemplate(res, w.Template(), data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
		return
	}
}

func (w *Widget) current(r *http.Request) (string, error) {
	sess, err := w.store.Get(r, w.sessionName)
	if err != nil {
		slog.DebugContext(r.Context(), "could not decode theme session", log.Error(errors.WithStack(err)))
	}

	if sess == nil {
		return "", errors.New("could not retrieve theme session")
	}

	return w.themeOf(sess), nil
}

func (w *Widget) themeOf(sess *sessions.Session) string {
	theme, ok := sess.Values[sessionKeyTheme].(string)
	if !ok || (theme != Light && theme != Dark) {
		return w.defaultTheme
	}

	return theme
}

var _ widget.Widget = &Widget{}
