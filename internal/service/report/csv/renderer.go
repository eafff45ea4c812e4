package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/sheetworks/cut-estimator/internal/service/report/types"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatCSV
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	if data == nil || data.Record == nil {
		return nil, fmt.Errorf("no record to render")
	}

	cells := data.Record.Cells()
	header := make([]string, 0, len(cells))
	row := make([]string, 0, len(cells))
	for _, c := range cells {
		header = append(header, c.Header)
		row = append(row, types.FormatValue(c.Value))
	}

	return r.convertRowsToCSV([][]string{header, row})
}

func (r *Renderer) convertRowsToCSV(csvRows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	for _, row := range csvRows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return buf.Bytes(), nil
}
