package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/molog/internal/importer"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

const maxUploadSize = 10 << 20

type Handler struct {
	importSvc *importer.Service
	txSvc     *transaction.Service
}

func NewHandler(importSvc *importer.Service, txSvc *transaction.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		txSvc:     txSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type transactionResponse struct {
	ID     string           `json:"id"`
	Date   string           `json:"date"`
	Title  string           `json:"title"`
	Amount int64            `json:"amount"`
	Type   transaction.Type `json:"type"`
}

type importResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []transactionResponse `json:"transactions"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(importer.Format(r.FormValue("format")), file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.txSvc.CreateBatch(r.Context(), params)
	if err != nil {
		slog.Error("failed to store imported entries", "error", err, "stored", len(txs))
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	slog.Info("imported ledger entries", "count", len(txs))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toImportResponse(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toImportResponse(txs []*transaction.Transaction) importResponse {
	responses := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, transactionResponse{
			ID:     tx.ID,
			Date:   tx.Key(),
			Title:  tx.Title,
			Amount: tx.Amount,
			Type:   tx.Type,
		})
	}

	return importResponse{
		Imported:     len(txs),
		Transactions: responses,
	}
}
