package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/molog/internal/importer"
)

func TestService_Import(t *testing.T) {
	svc := importer.NewService()

	params, err := svc.Import(importer.FormatMolog, strings.NewReader("date,title,amount,type\n2026-01-21,점심,12000,expense\n"))
	require.NoError(t, err)
	assert.Len(t, params, 1)

	params, err = svc.Import("", strings.NewReader("date,title,amount\n2026-01-21,점심,12000\n"))
	require.NoError(t, err)
	assert.Len(t, params, 1)
}

func TestService_Import_UnknownFormat(t *testing.T) {
	_, err := importer.NewService().Import("cgd", strings.NewReader(""))
	assert.ErrorContains(t, err, "unknown format")
}

func TestService_Formats(t *testing.T) {
	assert.Equal(t, []importer.Format{importer.FormatMolog}, importer.NewService().Formats())
}
