package http_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/molog/internal/export"
	molhttp "github.com/MrJamesThe3rd/molog/internal/http"
	exportHandler "github.com/MrJamesThe3rd/molog/internal/http/export"
	importHandler "github.com/MrJamesThe3rd/molog/internal/http/importcsv"
	layoutHandler "github.com/MrJamesThe3rd/molog/internal/http/layout"
	ledgerHandler "github.com/MrJamesThe3rd/molog/internal/http/ledger"
	txHandler "github.com/MrJamesThe3rd/molog/internal/http/transaction"
	"github.com/MrJamesThe3rd/molog/internal/importer"
	"github.com/MrJamesThe3rd/molog/internal/popover"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
	"github.com/MrJamesThe3rd/molog/internal/transaction/memory"
)

const secret = "test-secret"

var now = time.Date(2026, 1, 21, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func newRouter(t *testing.T, opts molhttp.Options) http.Handler {
	t.Helper()

	svc := transaction.NewService(memory.NewSeeded()).WithClock(clock)

	return molhttp.New(
		opts,
		txHandler.NewHandler(svc),
		ledgerHandler.NewHandler(svc, ledgerHandler.Options{WeekStart: time.Sunday, Capacity: 3}).WithClock(clock),
		layoutHandler.NewHandler(popover.DefaultOptions()),
		importHandler.NewHandler(importer.NewService(), svc),
		exportHandler.NewHandler(export.NewService(svc)),
	)
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)

		req = httptest.NewRequest(method, target, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))

	return v
}

type txJSON struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Title  string `json:"title"`
	Amount int64  `json:"amount"`
	Type   string `json:"type"`
}

func TestHealthz(t *testing.T) {
	rec := do(t, newRouter(t, molhttp.Options{}), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestTransactions_CRUD(t *testing.T) {
	h := newRouter(t, molhttp.Options{})

	rec := do(t, h, http.MethodPost, "/api/v1/transactions", map[string]any{"title": "  택시  ", "amount": 8000})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[txJSON](t, rec)
	assert.Equal(t, "택시", created.Title)
	assert.Equal(t, "2026-01-21", created.Date)
	assert.Equal(t, "expense", created.Type)

	rec = do(t, h, http.MethodPatch, "/api/v1/transactions/"+created.ID, map[string]any{"amount": 9000, "type": "income"})
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decode[txJSON](t, rec)
	assert.Equal(t, int64(9000), updated.Amount)
	assert.Equal(t, "income", updated.Type)
	assert.Equal(t, "택시", updated.Title)

	rec = do(t, h, http.MethodGet, "/api/v1/transactions/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/v1/transactions/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/v1/transactions/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/transactions/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTransactions_Validation(t *testing.T) {
	h := newRouter(t, molhttp.Options{})

	tests := []struct {
		name   string
		method string
		target string
		body   any
		want   int
	}{
		{"NegativeAmount", http.MethodPost, "/api/v1/transactions", map[string]any{"amount": -1}, http.StatusBadRequest},
		{"UnknownType", http.MethodPost, "/api/v1/transactions", map[string]any{"type": "transfer"}, http.StatusBadRequest},
		{"BadDate", http.MethodPost, "/api/v1/transactions", map[string]any{"date": "21/01/2026"}, http.StatusBadRequest},
		{"PatchMissing", http.MethodPatch, "/api/v1/transactions/nope", map[string]any{"amount": 1}, http.StatusNotFound},
		{"MoveMissing", http.MethodPost, "/api/v1/transactions/nope/move", map[string]any{"date": "2026-01-22"}, http.StatusNotFound},
		{"MoveBadMode", http.MethodPost, "/api/v1/transactions/1/move", map[string]any{"date": "2026-01-22", "mode": "swap"}, http.StatusBadRequest},
		{"ListBadRange", http.MethodGet, "/api/v1/transactions?start_date=jan", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestTransactions_MoveAndCopy(t *testing.T) {
	h := newRouter(t, molhttp.Options{})

	rec := do(t, h, http.MethodPost, "/api/v1/transactions/5/move", map[string]any{"date": "2026-01-25"})
	require.Equal(t, http.StatusOK, rec.Code)

	moved := decode[txJSON](t, rec)
	assert.Equal(t, "5", moved.ID)
	assert.Equal(t, "2026-01-25", moved.Date)
	assert.Equal(t, "관리비", moved.Title)

	rec = do(t, h, http.MethodPost, "/api/v1/transactions/7/move", map[string]any{"date": "2026-02-05", "mode": "copy"})
	require.Equal(t, http.StatusCreated, rec.Code)

	copied := decode[txJSON](t, rec)
	assert.NotEqual(t, "7", copied.ID)
	assert.Equal(t, "2026-02-05", copied.Date)

	rec = do(t, h, http.MethodGet, "/api/v1/transactions/7", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-01-05", decode[txJSON](t, rec).Date)
}

func TestTransactions_ListRange(t *testing.T) {
	h := newRouter(t, molhttp.Options{})

	rec := do(t, h, http.MethodGet, "/api/v1/transactions?start_date=2026-01-21&end_date=2026-01-21", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]txJSON](t, rec), 13)
}

type monthJSON struct {
	Title    string   `json:"title"`
	Weekdays []string `json:"weekdays"`
	Days     []struct {
		Date          string   `json:"date"`
		InMonth       bool     `json:"in_month"`
		IsToday       bool     `json:"is_today"`
		Items         []txJSON `json:"items"`
		Total         int      `json:"total"`
		Overflow      int      `json:"overflow"`
		OverflowLabel string   `json:"overflow_label"`
	} `json:"days"`
	Summary struct {
		Income  int64 `json:"income"`
		Expense int64 `json:"expense"`
		Net     int64 `json:"net"`
	} `json:"summary"`
}

func TestLedger_Month(t *testing.T) {
	h := newRouter(t, molhttp.Options{})

	rec := do(t, h, http.MethodGet, "/api/v1/ledger/month?date=2026-01-10", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	m := decode[monthJSON](t, rec)
	assert.Equal(t, "2026년 1월", m.Title)
	assert.Equal(t, []string{"일", "월", "화", "수", "목", "금", "토"}, m.Weekdays)
	require.Len(t, m.Days, 35)
	assert.Equal(t, "2025-12-28", m.Days[0].Date)
	assert.False(t, m.Days[0].InMonth)

	busy := m.Days[24]
	assert.Equal(t, "2026-01-21", busy.Date)
	assert.True(t, busy.IsToday)
	assert.Equal(t, 13, busy.Total)
	assert.Equal(t, 10, busy.Overflow)
	assert.Equal(t, "+10건", busy.OverflowLabel)
	require.Len(t, busy.Items, 3)
	assert.Equal(t, []string{"1", "extra-10", "extra-9"}, []string{busy.Items[0].ID, busy.Items[1].ID, busy.Items[2].ID})

	assert.Equal(t, int64(3700000), m.Summary.Income)
	assert.Equal(t, int64(476500), m.Summary.Expense)
	assert.Equal(t, int64(3223500), m.Summary.Net)
}

func TestLedger_MonthMeasuredCapacity(t *testing.T) {
	h := newRouter(t, molhttp.Options{})

	rec := do(t, h, http.MethodGet, "/api/v1/ledger/month?date=2026-01-21&cell_height=120&header_height=20&item_height=20", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	busy := decode[monthJSON](t, rec).Days[24]
	assert.Len(t, busy.Items, 4)
	assert.Equal(t, "+9건", busy.OverflowLabel)

	rec = do(t, h, http.MethodGet, "/api/v1/ledger/month?capacity=-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLedger_Day(t *testing.T) {
	h := newRouter(t, molhttp.Options{})

	rec := do(t, h, http.MethodGet, "/api/v1/ledger/day", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var v struct {
		Date    string   `json:"date"`
		Title   string   `json:"title"`
		Items   []txJSON `json:"items"`
		Summary struct {
			Income  int64 `json:"income"`
			Expense int64 `json:"expense"`
		} `json:"summary"`
		Strip []struct {
			Date     string `json:"date"`
			Selected bool   `json:"selected"`
			HasData  bool   `json:"has_data"`
		} `json:"strip"`
		ShowLatest bool `json:"show_latest"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))

	assert.Equal(t, "2026-01-21", v.Date)
	assert.Equal(t, "1월 21일 (수)", v.Title)
	assert.Len(t, v.Items, 13)
	assert.Equal(t, int64(76500), v.Summary.Expense)
	assert.Zero(t, v.Summary.Income)
	assert.False(t, v.ShowLatest)

	require.Len(t, v.Strip, 7)
	assert.Equal(t, "2026-01-18", v.Strip[0].Date)
	assert.True(t, v.Strip[3].Selected)
	assert.True(t, v.Strip[2].HasData)
	assert.False(t, v.Strip[6].HasData)

	rec = do(t, h, http.MethodGet, "/api/v1/ledger/day?date=2026-03-01", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"show_latest":true`)
}

func TestLedger_Latest(t *testing.T) {
	rec := do(t, newRouter(t, molhttp.Options{}), http.MethodGet, "/api/v1/ledger/latest", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2026-01-21"}`, rec.Body.String())
}

func TestLayout_Popover(t *testing.T) {
	h := newRouter(t, molhttp.Options{})

	rec := do(t, h, http.MethodPost, "/api/v1/layout/popover", map[string]any{
		"trigger":  map[string]int{"x": 100, "y": 100, "width": 40, "height": 40},
		"viewport": map[string]int{"width": 1280, "height": 800},
		"popover":  map[string]int{"width": 300, "height": 200},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"x":150,"y":100,"width":300,"height":200,"arrow":"left","arrow_offset":10}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/v1/layout/popover", map[string]any{
		"trigger":  map[string]int{"x": 100, "y": 100, "width": 40, "height": 40},
		"viewport": map[string]int{"width": 1280, "height": 800},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestImportExport(t *testing.T) {
	h := newRouter(t, molhttp.Options{})

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("format", "molog"))

	fw, err := mw.CreateFormFile("file", "ledger.csv")
	require.NoError(t, err)

	_, err = fw.Write([]byte("날짜;내용;금액;구분\n2026.02.03;세탁소;15000;지출\n2026.02.04;환급;30000;수입\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"imported":2`)

	rec = do(t, h, http.MethodGet, "/api/v1/export?start_date=2026-02-01&end_date=2026-02-28&bom=false", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="molog_20260201_20260228.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "2", rec.Header().Get("X-Entry-Count"))

	want := "date,title,amount,type\n2026-02-03,세탁소,15000,expense\n2026-02-04,환급,30000,income\n"
	assert.Equal(t, want, rec.Body.String())
}

func TestImport_MissingFile(t *testing.T) {
	var body bytes.Buffer

	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("format", "molog"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	newRouter(t, molhttp.Options{}).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJWT(t *testing.T) {
	h := newRouter(t, molhttp.Options{JWTSecret: secret})

	rec := do(t, h, http.MethodGet, "/api/v1/ledger/latest", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	valid, err := molhttp.SignToken([]byte(secret), "me", time.Hour, time.Now())
	require.NoError(t, err)

	expired, err := molhttp.SignToken([]byte(secret), "me", time.Hour, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	forged, err := molhttp.SignToken([]byte("other"), "me", time.Hour, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  int
		body  string
	}{
		{"Valid", valid, http.StatusOK, ""},
		{"Expired", expired, http.StatusUnauthorized, "token expired"},
		{"WrongKey", forged, http.StatusUnauthorized, "invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger/latest", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			assert.True(t, strings.Contains(rec.Body.String(), tt.body))
		})
	}
}

func TestRequireJWT_StoresSubject(t *testing.T) {
	token, err := molhttp.SignToken([]byte(secret), "owner", time.Minute, time.Now())
	require.NoError(t, err)

	var got string

	h := molhttp.RequireJWT([]byte(secret))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, _ = molhttp.Subject(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "owner", got)
}

func TestCORS(t *testing.T) {
	h := newRouter(t, molhttp.Options{CORSOrigins: []string{"http://localhost:5173"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/ledger/latest", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
