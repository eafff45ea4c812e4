package xlsx

import (
	"bytes"
	"fmt"

	"github.com/sheetworks/cut-estimator/internal/service/report/types"
	"github.com/xuri/excelize/v2"
)

// SheetName the sheet holding the report table.
const SheetName = "report"

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatXLSX
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	if data == nil || data.Record == nil {
		return nil, fmt.Errorf("no record to render")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name report sheet: %w", err)
	}

	for i, c := range data.Record.Cells() {
		headerRef, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		valueRef, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, headerRef, c.Header); err != nil {
			return nil, fmt.Errorf("failed to write header %q: %w", c.Header, err)
		}
		if err := f.SetCellValue(SheetName, valueRef, c.Value); err != nil {
			return nil, fmt.Errorf("failed to write value of %q: %w", c.Header, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
