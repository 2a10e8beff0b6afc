package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Patch("/{id}", h.update)
	r.Post("/{id}/move", h.move)
}

type createTransactionRequest struct {
	Date   string           `json:"date"`
	Title  string           `json:"title"`
	Amount int64            `json:"amount"`
	Type   transaction.Type `json:"type"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := transaction.CreateParams{
		Title:  transaction.SanitizeTitle(req.Title),
		Amount: req.Amount,
		Type:   req.Type,
	}

	if req.Date != "" {
		date, err := transaction.ParseDay(req.Date)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}

		params.Date = date
	}

	tx, err := h.svc.Create(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var rng transaction.DateRange

	if s := r.URL.Query().Get("start_date"); s != "" {
		t, err := transaction.ParseDay(s)
		if err != nil {
			http.Error(w, "invalid start_date", http.StatusBadRequest)
			return
		}

		rng.Start = t
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		t, err := transaction.ParseDay(s)
		if err != nil {
			http.Error(w, "invalid end_date", http.StatusBadRequest)
			return
		}

		rng.End = t
	}

	txs, err := h.svc.List(r.Context(), rng)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	tx, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// delete answers 204 for unknown ids too.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type updateTransactionRequest struct {
	Title  *string           `json:"title,omitempty"`
	Amount *int64            `json:"amount,omitempty"`
	Type   *transaction.Type `json:"type,omitempty"`
	Date   *string           `json:"date,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	patch := transaction.Patch{
		Amount: req.Amount,
		Type:   req.Type,
	}

	if req.Title != nil {
		patch.Title = new(transaction.SanitizeTitle(*req.Title))
	}

	if req.Date != nil {
		date, err := transaction.ParseDay(*req.Date)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}

		patch.Date = &date
	}

	tx, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type moveMode string

const (
	modeMove moveMode = "move"
	modeCopy moveMode = "copy"
)

type moveRequest struct {
	Date string   `json:"date"`
	Mode moveMode `json:"mode"`
}

// move reassigns the entry's date, or with mode "copy" stores a duplicate on
// the target date. The response is the entry now on the target date.
func (h *Handler) move(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := transaction.ParseDay(req.Date)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	var (
		tx     *transaction.Transaction
		status = http.StatusOK
		id     = chi.URLParam(r, "id")
	)

	switch req.Mode {
	case "", modeMove:
		tx, err = h.svc.Move(r.Context(), id, date)
	case modeCopy:
		tx, err = h.svc.Copy(r.Context(), id, date)
		status = http.StatusCreated
	default:
		http.Error(w, "mode must be move or copy", http.StatusBadRequest)
		return
	}

	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, transaction.ErrNotFound):
		http.Error(w, "transaction not found", http.StatusNotFound)
	case errors.Is(err, transaction.ErrInvalidAmount), errors.Is(err, transaction.ErrInvalidType):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("transaction request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
