// Package ledger serves the month grid and day view projections.
package ledger

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/molog/internal/calendar"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

type Options struct {
	WeekStart time.Weekday
	// Capacity is the per-cell item limit used when the request gives neither
	// a capacity nor cell measurements.
	Capacity int
}

type Handler struct {
	svc  *transaction.Service
	opts Options
	now  func() time.Time
}

func NewHandler(svc *transaction.Service, opts Options) *Handler {
	if opts.Capacity <= 0 {
		opts.Capacity = calendar.FixedCapacity
	}

	return &Handler{svc: svc, opts: opts, now: time.Now}
}

func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/month", h.month)
	r.Get("/day", h.day)
	r.Get("/latest", h.latest)
}

// dateParam reads ?date=, defaulting to today.
func (h *Handler) dateParam(r *http.Request) (time.Time, error) {
	s := r.URL.Query().Get("date")
	if s == "" {
		return calendar.Today(h.now), nil
	}

	return transaction.ParseDay(s)
}

// capacityFunc resolves the cell limit. An explicit ?capacity= wins; with
// ?cell_height=&item_height= (and optional header_height) the limit is
// computed per cell from its item count.
func (h *Handler) capacityFunc(r *http.Request) (func(total int) int, error) {
	q := r.URL.Query()

	if s := q.Get("capacity"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return nil, errors.New("invalid capacity")
		}

		return func(int) int { return n }, nil
	}

	if q.Get("cell_height") == "" || q.Get("item_height") == "" {
		return func(int) int { return h.opts.Capacity }, nil
	}

	var heights [3]int

	for i, name := range []string{"cell_height", "header_height", "item_height"} {
		s := q.Get(name)
		if s == "" {
			continue
		}

		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return nil, errors.New("invalid " + name)
		}

		heights[i] = n
	}

	return func(total int) int {
		return calendar.Capacity(heights[0], heights[1], heights[2], total)
	}, nil
}

func (h *Handler) month(w http.ResponseWriter, r *http.Request) {
	anchor, err := h.dateParam(r)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	capacity, err := h.capacityFunc(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.svc.List(r.Context(), calendar.MonthRange(anchor, h.opts.WeekStart))
	if err != nil {
		slog.Error("failed to list month", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	m := calendar.BuildMonth(anchor, txs, calendar.Options{
		WeekStart: h.opts.WeekStart,
		Today:     calendar.Today(h.now),
	})

	resp := monthResponse{
		Title:    calendar.Title(anchor, calendar.ViewMonth),
		Anchor:   anchor.Format(time.DateOnly),
		Weekdays: calendar.WeekdayHeader(h.opts.WeekStart),
		Days:     make([]cellResponse, len(m.Days)),
		Summary:  toSummary(calendar.Summarize(txs, calendar.MonthBounds(anchor))),
	}

	for i, d := range m.Days {
		cell := d.Cell(capacity(len(d.Items)))
		resp.Days[i] = cellResponse{
			Date:          d.Key(),
			InMonth:       d.InMonth,
			IsToday:       d.IsToday,
			Items:         toItems(cell.Visible),
			Total:         len(d.Items),
			Overflow:      cell.Overflow,
			OverflowLabel: cell.OverflowLabel(),
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) day(w http.ResponseWriter, r *http.Request) {
	date, err := h.dateParam(r)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	week := transaction.DateRange{
		Start: calendar.StartOfWeek(date, h.opts.WeekStart),
		End:   calendar.EndOfWeek(date, h.opts.WeekStart),
	}

	txs, err := h.svc.List(r.Context(), week)
	if err != nil {
		slog.Error("failed to list week", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	v := calendar.BuildDay(date, txs)
	strip := calendar.WeekStrip(date, txs, h.opts.WeekStart, calendar.Today(h.now))

	resp := dayResponse{
		Date:       v.Date.Format(time.DateOnly),
		Title:      calendar.Title(v.Date, calendar.ViewDay),
		Items:      toItems(v.Items),
		Summary:    toSummary(v.Summary),
		Strip:      make([]stripResponse, len(strip)),
		ShowLatest: v.Empty(),
	}

	for i, s := range strip {
		resp.Strip[i] = stripResponse{
			Date:     s.Date.Format(time.DateOnly),
			Weekday:  calendar.WeekdayName(s.Date.Weekday()),
			Selected: s.Selected,
			IsToday:  s.IsToday,
			HasData:  s.HasData,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) latest(w http.ResponseWriter, r *http.Request) {
	date, err := h.svc.Latest(r.Context())
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, "ledger is empty", http.StatusNotFound)
			return
		}

		slog.Error("failed to find latest entry", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(latestResponse{Date: date.Format(time.DateOnly)}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
