package dataset

import (
	"fmt"
	"io"
	"slices"

	"github.com/xuri/excelize/v2"
)

func readXLSX(r io.Reader, sheet string) ([][]string, error) {
	excelFile, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("error opening Excel file: %w", err)
	}
	defer excelFile.Close()

	if !slices.Contains(excelFile.GetSheetList(), sheet) {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}

	rows, err := excelFile.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("could not read %s sheet: %w", sheet, err)
	}
	return rows, nil
}
