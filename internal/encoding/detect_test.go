package encoding_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"

	"github.com/MrJamesThe3rd/molog/internal/encoding"
)

func readAll(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "날짜,내용,금액,구분\n2026-01-21,점심 식사,12000,지출\n"
	assert.Equal(t, input, readAll(t, []byte(input)))
}

func TestNewUTF8Reader_EUCKR(t *testing.T) {
	line := "2026-01-21,이번 달 관리비와 정기 월급을 정리한 가계부 내역입니다,250000,지출\n"
	utf8CSV := "날짜,내용,금액,구분\n" + strings.Repeat(line, 20)

	encoded, err := korean.EUCKR.NewEncoder().Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	assert.Equal(t, utf8CSV, readAll(t, encoded))
}

func TestNewUTF8Reader_Latin1(t *testing.T) {
	// Windows-1252: ç = 0xE7, ã = 0xE3
	latin1Bytes := []byte{
		'D', 'e', 's', 'c', 'r', 'i', 0xE7, 0xE3, 'o', ';',
		'M', 'o', 'n', 't', 'a', 'n', 't', 'e', '\n',
	}

	assert.Equal(t, "Descrição;Montante\n", readAll(t, latin1Bytes))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("날짜,내용\n")...)
	assert.Equal(t, "날짜,내용\n", readAll(t, input))
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	assert.Empty(t, readAll(t, nil))
}
