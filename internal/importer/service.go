package importer

import (
	"fmt"
	"io"
	"slices"

	"github.com/MrJamesThe3rd/molog/internal/importer/molog"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

type Service struct {
	importers map[Format]Importer
}

func NewService() *Service {
	return &Service{
		importers: map[Format]Importer{
			FormatMolog: molog.NewParser(),
		},
	}
}

// Import parses r in the given format. An empty format means FormatMolog.
func (s *Service) Import(format Format, r io.Reader) ([]transaction.CreateParams, error) {
	if format == "" {
		format = FormatMolog
	}

	importer, ok := s.importers[format]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	return importer.Parse(r)
}

// Formats lists the known formats in name order.
func (s *Service) Formats() []Format {
	formats := make([]Format, 0, len(s.importers))
	for f := range s.importers {
		formats = append(formats, f)
	}

	slices.Sort(formats)

	return formats
}
