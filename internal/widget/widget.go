// Package widget holds the registry of the self-contained controls the
// site header mounts without exchanging data with them.
package widget

import (
	"io/fs"
	"net/http"
)

type Type string

type Widget interface {
	Type() Type
	// Template is the name of the template rendering the widget.
	Template() string
	// TemplateFS embeds the widget templates.
	TemplateFS() fs.FS
	// Handler serves the widget routes, relative to its prefix. It
	// can be nil.
	Handler(prefix string) http.Handler
	// Data returns the template data of the widget for the request.
	Data(r *http.Request) (any, error)
}

// Prefix is the path under which the routes of a widget are mounted.
func Prefix(t Type) string {
	return "/widgets/" + string(t)
}
