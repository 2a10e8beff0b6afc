package molog

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSingle means one amount column, optionally signed, plus an optional type column.
	amountSingle amountMode = iota
	// amountSplit means separate income and expense columns.
	amountSplit
)

// Profile describes the column layout of a ledger CSV.
type Profile struct {
	Name       string
	DateCol    string
	TitleCol   string
	AmountMode amountMode
	AmountCol  string // amountSingle
	TypeCol    string // amountSingle, optional
	IncomeCol  string // amountSplit
	ExpenseCol string // amountSplit
}

func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.TitleCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.IncomeCol, p.ExpenseCol)
	}

	return cols
}

// profiles is tried in order; split layouts come first because a header
// carrying 수입/지출 may also carry a 금액 balance column.
var profiles = []Profile{
	{
		Name:       "가계부 (수입/지출)",
		DateCol:    "날짜",
		TitleCol:   "내용",
		AmountMode: amountSplit,
		IncomeCol:  "수입",
		ExpenseCol: "지출",
	},
	{
		Name:       "가계부",
		DateCol:    "날짜",
		TitleCol:   "내용",
		AmountMode: amountSingle,
		AmountCol:  "금액",
		TypeCol:    "구분",
	},
	{
		Name:       "molog",
		DateCol:    "date",
		TitleCol:   "title",
		AmountMode: amountSingle,
		AmountCol:  "amount",
		TypeCol:    "type",
	},
}

// positional is used when the file has no header row at all.
var positional = Profile{
	Name:       "positional",
	AmountMode: amountSingle,
}
