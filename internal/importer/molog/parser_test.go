package molog_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"

	"github.com/MrJamesThe3rd/molog/internal/importer/molog"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_Parse(t *testing.T) {
	type testCase struct {
		name    string
		csv     string
		want    []transaction.CreateParams
		wantErr string
	}

	tests := []testCase{
		{
			name: "MologExport",
			csv: `date,title,amount,type
2026-01-21,점심 식사,12000,expense
2026-01-25,정기 월급,3500000,income
`,
			want: []transaction.CreateParams{
				{Date: date(2026, 1, 21), Title: "점심 식사", Amount: 12000, Type: transaction.TypeExpense},
				{Date: date(2026, 1, 25), Title: "정기 월급", Amount: 3500000, Type: transaction.TypeIncome},
			},
		},
		{
			name: "KoreanHeaderSemicolon",
			csv: `날짜;내용;금액;구분
2026.01.05;통신비;"65,000원";지출
2026.01.10;용돈;50000;수입
`,
			want: []transaction.CreateParams{
				{Date: date(2026, 1, 5), Title: "통신비", Amount: 65000, Type: transaction.TypeExpense},
				{Date: date(2026, 1, 10), Title: "용돈", Amount: 50000, Type: transaction.TypeIncome},
			},
		},
		{
			name: "SplitColumns",
			csv: `가계부 2026년 1월
날짜,내용,수입,지출,잔액
2026/01/03,커피,,4500,995500
2026/01/04,환불,20000,,1015500
2026/01/05,합계,,,
`,
			want: []transaction.CreateParams{
				{Date: date(2026, 1, 3), Title: "커피", Amount: 4500, Type: transaction.TypeExpense},
				{Date: date(2026, 1, 4), Title: "환불", Amount: 20000, Type: transaction.TypeIncome},
			},
		},
		{
			name: "SignedAmountWithoutType",
			csv: `Date,Title,Amount
2026-01-21,택시,-8000
2026-01-22,중고 판매,+30000
2026-01-23,간식,3000
`,
			want: []transaction.CreateParams{
				{Date: date(2026, 1, 21), Title: "택시", Amount: 8000, Type: transaction.TypeExpense},
				{Date: date(2026, 1, 22), Title: "중고 판매", Amount: 30000, Type: transaction.TypeIncome},
				{Date: date(2026, 1, 23), Title: "간식", Amount: 3000, Type: transaction.TypeExpense},
			},
		},
		{
			name: "NoHeader",
			csv: `2026-01-21,점심,12000,expense
2026-01-21,,0,
`,
			want: []transaction.CreateParams{
				{Date: date(2026, 1, 21), Title: "점심", Amount: 12000, Type: transaction.TypeExpense},
				{Date: date(2026, 1, 21), Title: "", Amount: 0, Type: transaction.TypeExpense},
			},
		},
		{
			name: "FooterRowsSkipped",
			csv: `date,title,amount,type
2026-01-21,점심,12000,expense
,,12000,
합계,,12000,
`,
			want: []transaction.CreateParams{
				{Date: date(2026, 1, 21), Title: "점심", Amount: 12000, Type: transaction.TypeExpense},
			},
		},
		{
			name:    "UnknownType",
			csv:     "date,title,amount,type\n2026-01-21,이체,1000,transfer\n",
			wantErr: `row 2: unknown type "transfer"`,
		},
		{
			name:    "Unrecognized",
			csv:     "a,b,c\n1,2,3\n",
			wantErr: "no matching ledger format",
		},
		{
			name:    "Empty",
			csv:     "",
			wantErr: "empty file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := molog.NewParser().Parse(strings.NewReader(tt.csv))
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParser_HeaderOnly(t *testing.T) {
	got, err := molog.NewParser().Parse(strings.NewReader("날짜,내용,금액"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParser_EUCKREncoding(t *testing.T) {
	line := "2026-01-15,이번 달 관리비와 정기 월급을 정리한 가계부 내역입니다,250000,지출\n"
	utf8CSV := "날짜,내용,금액,구분\n" + strings.Repeat(line, 20)

	encoded, err := korean.EUCKR.NewEncoder().String(utf8CSV)
	require.NoError(t, err)

	got, err := molog.NewParser().Parse(strings.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, got, 20)

	assert.Equal(t, "이번 달 관리비와 정기 월급을 정리한 가계부 내역입니다", got[0].Title)
	assert.Equal(t, transaction.TypeExpense, got[0].Type)
}
