package site

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/scaffold/internal/dom"
	"github.com/bornholm/scaffold/internal/instance"
	"github.com/bornholm/scaffold/pkg/log"
	"github.com/pkg/errors"
)

// handleHeaderEvent dispatches an interaction reported by the browser
// and answers with the re-rendered header.
func (h *Handler) handleHeaderEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ctx := log.WithAttrs(r.Context(), slog.String("instance", id))

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	kind, err := dom.ParseEventKind(r.PostFormValue("kind"))
	if err != nil {
		slog.DebugContext(ctx, "invalid header event", log.Error(err))
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	inst, err := h.registry.Dispatch(id, kind, r.PostFormValue("target"))
	if err != nil {
		if errors.Is(err, instance.ErrNotFound) {
			// The page outlived its header instance and has to be reloaded
			http.Error(w, http.StatusText(http.StatusGone), http.StatusGone)
			return
		}

		slog.ErrorContext(ctx, "could not dispatch header event", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	slog.DebugContext(ctx, "header event dispatched",
		slog.String("kind", string(kind)),
		slog.String("target", r.PostFormValue("target")),
		slog.String("drawer", inst.Shell.State().String()),
	)

	if err := h.templates.ExecuteTemplate(w, "navbar", h.navbar(r, inst)); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
		return
	}
}

func (h *Handler) handleHeaderUnmount(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	h.registry.Unmount(id)

	slog.DebugContext(r.Context(), "header unmounted", slog.String("instance", id))

	w.WriteHeader(http.StatusNoContent)
}
