package ui

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/dustin/go-humanize"
	"github.com/laher/mergefs"
	"github.com/pkg/errors"
)

//go:embed templates/**
var commonFs embed.FS

//go:embed icons/*.svg
var iconFs embed.FS

//go:embed static
var staticFs embed.FS

var commonFuncs = template.FuncMap{
	"humanizeTime": func(t time.Time) string {
		if t.IsZero() {
			return "never"
		}

		return humanize.Time(t)
	},
	"humanizeFloat": func(f float64) string {
		return humanize.Ftoa(f)
	},
	"icon": Icon,
}

// Templates parses the common layouts and views merged with the ones
// of the given filesystems. Later filesystems cannot shadow a file of
// an earlier one.
func Templates(funcs template.FuncMap, filesystems ...fs.FS) (*template.Template, error) {
	filesystems = append([]fs.FS{commonFs}, filesystems...)
	merged := mergefs.Merge(filesystems...)

	views, err := fs.Glob(merged, "**/views/*.gohtml")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	layouts, err := fs.Glob(merged, "**/layouts/*.gohtml")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	templates := append(views, layouts...)

	var tmpl *template.Template

	tmpl = template.New("").Funcs(sprig.FuncMap()).Funcs(commonFuncs).Funcs(template.FuncMap{
		// widget renders a delegated control through its own template
		"widget": func(w WidgetTemplateData) (template.HTML, error) {
			var buff bytes.Buffer
			if err := tmpl.ExecuteTemplate(&buff, w.Template, w.Data); err != nil {
				return "", errors.Wrapf(err, "could not render widget '%s'", w.Type)
			}

			return template.HTML(buff.String()), nil
		},
	})

	if funcs != nil {
		tmpl = tmpl.Funcs(funcs)
	}

	tmpl, err = tmpl.ParseFS(merged, templates...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return tmpl, nil
}

// Icon returns the inline svg of the named icon, or nothing for an
// unknown name.
func Icon(name string) template.HTML {
	if name == "" || strings.ContainsAny(name, "/.") {
		return ""
	}

	data, err := iconFs.ReadFile("icons/" + name + ".svg")
	if err != nil {
		return ""
	}

	return template.HTML(data)
}

// StaticFS returns the site static assets, rooted at the assets directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFs, "static")
	if err != nil {
		panic(errors.WithStack(err))
	}

	return sub
}

type HeadTemplateData struct {
	PageTitle string
}

// MustTemplates is like Templates without custom funcs but panics on
// error. It is intended for package level template sets.
func MustTemplates(filesystems ...fs.FS) *template.Template {
	tmpl, err := Templates(nil, filesystems...)
	if err != nil {
		panic(errors.WithStack(err))
	}

	return tmpl
}
