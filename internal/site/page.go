package site

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/scaffold/internal/menu"
	"github.com/bornholm/scaffold/pkg/log"
	"github.com/pkg/errors"
)

type Page struct {
	Title       string
	Heading     string
	Description string
}

var homePage = Page{
	Title:       "Scaffold Balancer",
	Heading:     "Scaffold Balancer",
	Description: "Prototype custom pools and hooks, then test them against a local network.",
}

var descriptions = map[string]string{
	"/pools": "Browse the deployed pools and their tokens.",
	"/hooks": "Browse the deployed hooks and the pools they are attached to.",
	"/debug": "Read and write the deployed contracts.",
}

func newPage(l menu.MenuLink) Page {
	return Page{
		Title:       l.Label + " | " + homePage.Title,
		Heading:     l.Label,
		Description: descriptions[l.Href],
	}
}

// servePage mounts a fresh header instance for every page load.
func (h *Handler) servePage(page Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		inst, err := h.registry.Mount(r.URL.Path)
		if err != nil {
			slog.ErrorContext(ctx, "could not mount header", log.Error(errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctx = log.WithAttrs(ctx, slog.String("instance", inst.ID))
		slog.DebugContext(ctx, "header mounted", slog.String("path", inst.Path))

		data := PageTemplateData{
			HeadTemplateData:   newHeadTemplateData(page),
			NavbarTemplateData: h.navbar(r, inst),
			Page:               page,
		}

		if err := h.templates.ExecuteTemplate(w, "page", data); err != nil {
			slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
			return
		}
	}
}
