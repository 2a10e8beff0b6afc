package importer

import (
	"io"

	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

// Format names a CSV layout the service knows how to read.
type Format string

const (
	FormatMolog Format = "molog"
)

type Importer interface {
	Parse(r io.Reader) ([]transaction.CreateParams, error)
}
