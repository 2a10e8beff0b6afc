package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/molog/internal/calendar"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

// Header is the column row written first; the importer reads it back.
var Header = []string{"date", "title", "amount", "type"}

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// Options controls the CSV output.
type Options struct {
	// BOM prefixes the file with a UTF-8 byte order mark so spreadsheet
	// applications pick the right charset for Hangul titles.
	BOM bool
}

// Service exports ledger entries.
type Service struct {
	transactions *transaction.Service
}

func NewService(txService *transaction.Service) *Service {
	return &Service{transactions: txService}
}

// Export returns the entries inside r ordered by date, then grid order.
func (s *Service) Export(ctx context.Context, r transaction.DateRange) ([]*transaction.Transaction, error) {
	txs, err := s.transactions.List(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	calendar.SortByDate(txs)

	return txs, nil
}

// WriteCSV writes the entries inside r to w and returns how many rows it wrote.
func (s *Service) WriteCSV(ctx context.Context, r transaction.DateRange, w io.Writer, opts Options) (int, error) {
	txs, err := s.Export(ctx, r)
	if err != nil {
		return 0, err
	}

	if opts.BOM {
		if _, err := w.Write(bomUTF8); err != nil {
			return 0, fmt.Errorf("writing bom: %w", err)
		}
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range txs {
		record := []string{
			tx.Date.Format(time.DateOnly),
			tx.Title,
			strconv.FormatInt(tx.Amount, 10),
			string(tx.Type),
		}

		if err := cw.Write(record); err != nil {
			return 0, fmt.Errorf("writing %s: %w", tx.ID, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flushing csv: %w", err)
	}

	return len(txs), nil
}

// Filename names the export file after its range, e.g. molog_20260101_20260131.csv.
func Filename(r transaction.DateRange) string {
	name := "molog"

	if !r.Start.IsZero() {
		name += "_" + r.Start.Format("20060102")
	}

	if !r.End.IsZero() {
		name += "_" + r.End.Format("20060102")
	}

	return name + ".csv"
}

// GenerateSummary renders one line per entry followed by the range totals.
func GenerateSummary(txs []*transaction.Transaction) string {
	var sb strings.Builder

	for _, tx := range txs {
		fmt.Fprintf(&sb, "* %s | %s | %s원\n",
			tx.Date.Format(time.DateOnly),
			calendar.DisplayTitle(tx),
			calendar.FormatSigned(tx.Type, tx.Amount),
		)
	}

	sum := calendar.Summarize(txs, transaction.DateRange{})
	fmt.Fprintf(&sb, "수입 %s원 / 지출 %s원\n", calendar.FormatAmount(sum.Income), calendar.FormatAmount(sum.Expense))

	return sb.String()
}
