package molog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/MrJamesThe3rd/molog/internal/encoding"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

var dateLayouts = []string{
	time.DateOnly,
	"2006.01.02",
	"2006/01/02",
	"20060102",
	"2006. 1. 2.",
}

// Parser reads ledger CSV files written by Molog's own export or by a
// spreadsheet. The header is matched against known profiles; a file whose
// first row is already data is read as date,title,amount,type.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		if _, ok := parseDate(rows[0], 0); !ok {
			return nil, fmt.Errorf("no matching ledger format found: expected date, title and amount columns")
		}

		return parseRows(&positional, nil, rows, -1)
	}

	return parseRows(profile, cols, rows[headerIdx+1:], headerIdx)
}

// detectDelimiter picks ';' when the first line has more semicolons than commas.
func detectDelimiter(data []byte) rune {
	line, _, _ := bytes.Cut(data, []byte("\n"))
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}

	return ','
}

// colIndex maps lower-cased column names to their index in the row.
type colIndex map[string]int

func (c colIndex) lookup(name string) int {
	if name == "" {
		return -1
	}

	idx, ok := c[strings.ToLower(name)]
	if !ok {
		return -1
	}

	return idx
}

func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if cols.lookup(name) < 0 {
			return false
		}
	}

	return true
}

// columns resolves the profile's names to indices. The positional profile
// uses the fixed date,title,amount,type order.
type columns struct {
	date, title, amount, kind, income, expense int
}

func resolve(p *Profile, cols colIndex) columns {
	if p == &positional {
		return columns{date: 0, title: 1, amount: 2, kind: 3, income: -1, expense: -1}
	}

	return columns{
		date:    cols.lookup(p.DateCol),
		title:   cols.lookup(p.TitleCol),
		amount:  cols.lookup(p.AmountCol),
		kind:    cols.lookup(p.TypeCol),
		income:  cols.lookup(p.IncomeCol),
		expense: cols.lookup(p.ExpenseCol),
	}
}

// parseRows turns data rows into create params. headerIdx is the 0-based
// index of the header row, -1 when there is none; it only feeds error messages.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerIdx int) ([]transaction.CreateParams, error) {
	c := resolve(p, cols)

	var params []transaction.CreateParams

	for i, row := range rows {
		rowNum := headerIdx + i + 2 // 1-based

		date, ok := parseDate(row, c.date)
		if !ok {
			continue
		}

		var (
			amount int64
			txType transaction.Type
			err    error
		)

		switch p.AmountMode {
		case amountSingle:
			amount, txType, err = parseSingleAmount(row, c.amount, c.kind)
		case amountSplit:
			amount, txType, ok = parseSplitAmount(row, c.income, c.expense)
			if !ok {
				continue
			}
		}

		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		params = append(params, transaction.CreateParams{
			Date:   date,
			Title:  transaction.SanitizeTitle(cellValue(row, c.title)),
			Amount: amount,
			Type:   txType,
		})
	}

	return params, nil
}

// parseDate returns false for empty or unparseable cells so that footer and
// blank rows are skipped.
func parseDate(row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return transaction.Day(t), true
		}
	}

	return time.Time{}, false
}

func parseSingleAmount(row []string, amountIdx, typeIdx int) (int64, transaction.Type, error) {
	raw := cellValue(row, amountIdx)
	amount := transaction.SanitizeAmount(raw)

	txType, err := parseType(cellValue(row, typeIdx))
	if err != nil {
		return 0, "", err
	}

	if txType == "" {
		txType = signType(raw)
	}

	return amount, txType, nil
}

func parseSplitAmount(row []string, incomeIdx, expenseIdx int) (int64, transaction.Type, bool) {
	if n := transaction.SanitizeAmount(cellValue(row, expenseIdx)); n != 0 {
		return n, transaction.TypeExpense, true
	}

	if n := transaction.SanitizeAmount(cellValue(row, incomeIdx)); n != 0 {
		return n, transaction.TypeIncome, true
	}

	return 0, "", false
}

// parseType accepts the English names, the Korean labels and a bare sign.
// An empty cell yields an empty type.
func parseType(s string) (transaction.Type, error) {
	switch strings.ToLower(s) {
	case "":
		return "", nil
	case "income", "수입", "+":
		return transaction.TypeIncome, nil
	case "expense", "지출", "-":
		return transaction.TypeExpense, nil
	}

	return "", fmt.Errorf("unknown type %q", s)
}

// signType is used when no type column is given. Only an explicit "+"
// marks income.
func signType(raw string) transaction.Type {
	if strings.HasPrefix(raw, "+") {
		return transaction.TypeIncome
	}

	return transaction.TypeExpense
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
