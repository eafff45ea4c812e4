package dataset_test

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
)

var referenceHeader = []string{"Material", "Espesor", "CW ", "1", "2", "Costo", "Duracion"}

var referenceRows = [][]any{
	{"Steel", 3, 500, 0.01, 0.02, 2.5, 10},
	{"Steel", 5, 300, 0.02, 0.03, 4, 8},
	{"Aluminium", 2, 800, 0.005, 0.01, 6, 12},
	{"Steel", 3, 450, 0.01, 0.02, 2.5, 10},
	{"Inox", 1.5, 0, 0.01, 0.01, 9, 6},
}

// Helper functions for Excel operations
func setCellValue(f *excelize.File, sheet, ref string, value any) {
	Expect(f.SetCellValue(sheet, ref, value)).To(Succeed())
}

// Helper function to convert column index to Excel column letter
func columnToLetter(col int) string {
	name, _ := excelize.ColumnNumberToName(col + 1)
	return name
}

func createReferenceExcel(sheet string, header []string, rows [][]any) []byte {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	Expect(err).To(Succeed())
	f.SetActiveSheet(index)
	if sheet != "Sheet1" {
		Expect(f.DeleteSheet("Sheet1")).To(Succeed())
	}

	for colIndex, h := range header {
		setCellValue(f, sheet, columnToLetter(colIndex)+"1", h)
	}
	for rowIndex, row := range rows {
		for colIndex, value := range row {
			setCellValue(f, sheet, columnToLetter(colIndex)+fmt.Sprintf("%d", rowIndex+2), value)
		}
	}

	var buf bytes.Buffer
	_, err = f.WriteTo(&buf)
	Expect(err).To(Succeed())
	return buf.Bytes()
}

func odsCellXML(value any) string {
	switch v := value.(type) {
	case nil:
		return `<table:table-cell/>`
	case string:
		return fmt.Sprintf(`<table:table-cell office:value-type="string"><text:p>%s</text:p></table:table-cell>`, v)
	default:
		return fmt.Sprintf(`<table:table-cell office:value-type="float" office:value="%v" calcext:value-type="float"><text:p>%v</text:p></table:table-cell>`, v, v)
	}
}

func createReferenceODS(sheet string, header []string, rows [][]any) []byte {
	var body strings.Builder
	body.WriteString(`<table:table-row>`)
	for _, h := range header {
		body.WriteString(odsCellXML(h))
	}
	body.WriteString(`<table:table-cell table:number-columns-repeated="1017"/></table:table-row>`)
	for _, row := range rows {
		body.WriteString(`<table:table-row>`)
		for _, v := range row {
			body.WriteString(odsCellXML(v))
		}
		body.WriteString(`</table:table-row>`)
	}
	body.WriteString(`<table:table-row table:number-rows-repeated="1048570"><table:table-cell table:number-columns-repeated="1024"/></table:table-row>`)

	content := `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content
  xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
  xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0"
  xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"
  xmlns:calcext="urn:org:documentfoundation:names:experimental:calc:xmlns:calcext:1.0"
  office:version="1.3">
<office:body><office:spreadsheet>
<table:table table:name="other"><table:table-row><table:table-cell office:value-type="string"><text:p>ignored</text:p></table:table-cell></table:table-row></table:table>
<table:table table:name="` + sheet + `">` + body.String() + `</table:table>
</office:spreadsheet></office:body>
</office:document-content>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	mimetype, err := zw.Create("mimetype")
	Expect(err).To(Succeed())
	_, err = mimetype.Write([]byte("application/vnd.oasis.opendocument.spreadsheet"))
	Expect(err).To(Succeed())
	w, err := zw.Create("content.xml")
	Expect(err).To(Succeed())
	_, err = w.Write([]byte(content))
	Expect(err).To(Succeed())
	Expect(zw.Close()).To(Succeed())
	return buf.Bytes()
}

func createReferenceCSV(header []string, rows [][]any) []byte {
	var sb strings.Builder
	sb.WriteString(strings.Join(header, ",") + "\n")
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			if v != nil {
				cells[i] = fmt.Sprint(v)
			}
		}
		sb.WriteString(strings.Join(cells, ",") + "\n")
	}
	return []byte(sb.String())
}

func writeTempFile(dir, name string, content []byte) string {
	path := filepath.Join(dir, name)
	Expect(os.WriteFile(path, content, 0o600)).To(Succeed())
	return path
}
