package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/molog/internal/export"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.download)
}

func parseDayParam(r *http.Request, name string) (time.Time, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return time.Time{}, nil
	}

	return transaction.ParseDay(s)
}

// download sends the CSV for ?start_date=&end_date=. A UTF-8 byte order mark
// is written unless ?bom=false.
func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	var (
		rng transaction.DateRange
		err error
	)

	if rng.Start, err = parseDayParam(r, "start_date"); err != nil {
		http.Error(w, "invalid start_date", http.StatusBadRequest)
		return
	}

	if rng.End, err = parseDayParam(r, "end_date"); err != nil {
		http.Error(w, "invalid end_date", http.StatusBadRequest)
		return
	}

	opts := export.Options{BOM: true}

	if s := r.URL.Query().Get("bom"); s != "" {
		if opts.BOM, err = strconv.ParseBool(s); err != nil {
			http.Error(w, "invalid bom", http.StatusBadRequest)
			return
		}
	}

	var buf bytes.Buffer

	n, err := h.svc.WriteCSV(r.Context(), rng, &buf, opts)
	if err != nil {
		slog.Error("failed to write export", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(rng)))
	w.Header().Set("X-Entry-Count", strconv.Itoa(n))

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to send export", "error", err)
	}
}
