package site

import (
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/bornholm/scaffold/internal/instance"
	"github.com/bornholm/scaffold/internal/menu"
	"github.com/bornholm/scaffold/internal/ui"
	"github.com/bornholm/scaffold/internal/widget"
	"github.com/bornholm/scaffold/pkg/log"
	"github.com/pkg/errors"
)

type Handler struct {
	mux       *http.ServeMux
	registry  *instance.Registry
	widgets   []widget.Widget
	templates *template.Template
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(registry *instance.Registry, widgets ...widget.Widget) (*Handler, error) {
	filesystems := []fs.FS{templateFs}
	for _, w := range widgets {
		filesystems = append(filesystems, w.TemplateFS())
	}

	tmpl, err := ui.Templates(nil, filesystems...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	handler := &Handler{
		mux:       &http.ServeMux{},
		registry:  registry,
		widgets:   widgets,
		templates: tmpl,
	}

	// Register routes
	handler.mux.HandleFunc("GET /{$}", handler.servePage(homePage))
	for _, l := range menu.Links() {
		handler.mux.HandleFunc("GET "+l.Href, handler.servePage(newPage(l)))
	}

	handler.mux.HandleFunc("POST /header/{id}/events", handler.handleHeaderEvent)
	handler.mux.HandleFunc("POST /header/{id}/unmount", handler.handleHeaderUnmount)

	handler.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(ui.StaticFS())))

	for _, w := range widgets {
		prefix := widget.Prefix(w.Type())

		widgetHandler := w.Handler(prefix)
		if widgetHandler == nil {
			continue
		}

		handler.mux.Handle(prefix+"/", widgetHandler)
	}

	return handler, nil
}

// navbar returns the template data of the given header instance,
// completed with its delegated widgets.
func (h *Handler) navbar(r *http.Request, inst *instance.Instance) ui.NavbarTemplateData {
	data := inst.Shell.View(inst.Path)
	data.InstanceID = inst.ID
	data.Widgets = make([]ui.WidgetTemplateData, 0, len(h.widgets))

	// Header events are posted to their own endpoint, rules apply to
	// the page displaying the header.
	page := r.Clone(r.Context())
	page.URL.Path = inst.Path
	page.URL.RawPath = ""

	for _, w := range h.widgets {
		visible, err := widget.Visible(w, page)
		if err != nil {
			slog.ErrorContext(r.Context(), "could not evaluate widget visibility", slog.String("widget", string(w.Type())), log.Error(errors.WithStack(err)))
			continue
		}

		if !visible {
			continue
		}

		widgetData, err := w.Data(r)
		if err != nil {
			slog.ErrorContext(r.Context(), "could not retrieve widget data", slog.String("widget", string(w.Type())), log.Error(errors.WithStack(err)))
			continue
		}

		data.Widgets = append(data.Widgets, ui.WidgetTemplateData{
			Type:     string(w.Type()),
			Template: w.Template(),
			Data:     widgetData,
		})
	}

	return data
}

// Close releases the resources held by the widgets. Every widget is
// closed, the first error is returned.
func (h *Handler) Close() error {
	var first error

	for _, w := range h.widgets {
		closer, ok := w.(io.Closer)
		if !ok {
			continue
		}

		if err := closer.Close(); err != nil {
			err = errors.Wrapf(err, "could not close widget '%s'", w.Type())
			if first == nil {
				first = err
			}
		}
	}

	return first
}

var (
	_ http.Handler = &Handler{}
	_ io.Closer    = &Handler{}
)
