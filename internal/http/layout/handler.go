// Package layout exposes the popover positioner to browser clients.
package layout

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/molog/internal/popover"
)

type Handler struct {
	opts popover.Options
}

func NewHandler(opts popover.Options) *Handler {
	return &Handler{opts: opts}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/popover", h.placePopover)
}

type placeRequest struct {
	Trigger  popover.Rect `json:"trigger"`
	Viewport popover.Size `json:"viewport"`
	Popover  popover.Size `json:"popover"`
}

// placePopover answers 422 while either size is still unmeasured so the
// client keeps the card hidden and asks again after layout.
func (h *Handler) placePopover(w http.ResponseWriter, r *http.Request) {
	var req placeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := popover.Place(req.Trigger, req.Viewport, req.Popover, h.opts)
	if err != nil {
		if errors.Is(err, popover.ErrLayoutUnready) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
