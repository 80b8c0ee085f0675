package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/velora-commerce/backoffice-manager/internal/entity"
)

// CSV encodes an export document as RFC 4180 CSV: a title row, the date
// range, a blank separator, then headers and data rows.
type CSV struct{}

func NewCSV() *CSV { return &CSV{} }

func (e *CSV) Encode(w io.Writer, doc *entity.ExportDocument) error {
	cw := csv.NewWriter(w)
	preamble := [][]string{
		{doc.Title},
		{doc.Range.From.Format("2006-01-02"), doc.Range.To.Format("2006-01-02")},
		{},
		doc.Headers,
	}
	for _, row := range preamble {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write csv row: %w", err)
		}
	}
	for _, row := range doc.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (e *CSV) ContentType() string { return "text/csv" }

func (e *CSV) FileExtension() string { return "csv" }
