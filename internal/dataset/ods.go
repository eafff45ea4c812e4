package dataset

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const (
	odsContentFile = "content.xml"
	// maxRepeatedRows bounds the expansion of repeated non empty rows.
	maxRepeatedRows = 10000
)

type odsDocument struct {
	Tables []odsTable `xml:"body>spreadsheet>table"`
}

type odsTable struct {
	Name       string   `xml:"name,attr"`
	HeaderRows []odsRow `xml:"table-header-rows>table-row"`
	Rows       []odsRow `xml:"table-row"`
}

type odsRow struct {
	Repeated int       `xml:"number-rows-repeated,attr"`
	Cells    []odsCell `xml:",any"`
}

// odsCell covers both table:table-cell and table:covered-table-cell.
type odsCell struct {
	XMLName    xml.Name
	Repeated   int            `xml:"number-columns-repeated,attr"`
	ValueType  string         `xml:"value-type,attr"`
	Value      string         `xml:"value,attr"`
	Paragraphs []odsParagraph `xml:"p"`
}

type odsParagraph struct {
	Text  string         `xml:",chardata"`
	Spans []odsParagraph `xml:"span"`
}

func (p odsParagraph) String() string {
	var sb strings.Builder
	sb.WriteString(p.Text)
	for _, span := range p.Spans {
		sb.WriteString(span.String())
	}
	return sb.String()
}

func (c odsCell) String() string {
	switch c.ValueType {
	case "float", "percentage", "currency":
		if c.Value != "" {
			return c.Value
		}
	}
	lines := make([]string, 0, len(c.Paragraphs))
	for _, p := range c.Paragraphs {
		lines = append(lines, p.String())
	}
	return strings.Join(lines, "\n")
}

// readODS extracts the named table of an OpenDocument spreadsheet as rows of strings.
func readODS(r io.ReaderAt, size int64, sheet string) ([][]string, error) {
	archive, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("error opening ODS archive: %w", err)
	}

	content, err := archive.Open(odsContentFile)
	if err != nil {
		return nil, fmt.Errorf("ODS archive has no %s: %w", odsContentFile, err)
	}
	defer content.Close()

	var doc odsDocument
	if err := xml.NewDecoder(content).Decode(&doc); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", odsContentFile, err)
	}

	for _, table := range doc.Tables {
		if table.Name != sheet {
			continue
		}
		rows := make([][]string, 0, len(table.HeaderRows)+len(table.Rows))
		for _, row := range append(table.HeaderRows, table.Rows...) {
			values := row.values()
			if len(values) == 0 {
				continue
			}
			repeat := max(row.Repeated, 1)
			for i := 0; i < repeat && i < maxRepeatedRows; i++ {
				rows = append(rows, values)
			}
		}
		return rows, nil
	}
	return nil, fmt.Errorf("sheet %q not found", sheet)
}

// values expands repeated cells, dropping trailing blanks.
func (r odsRow) values() []string {
	values := make([]string, 0, len(r.Cells))
	pendingBlanks := 0
	for _, cell := range r.Cells {
		if cell.XMLName.Local != "table-cell" && cell.XMLName.Local != "covered-table-cell" {
			continue
		}
		v := cell.String()
		repeat := max(cell.Repeated, 1)
		if v == "" {
			pendingBlanks += repeat
			continue
		}
		for ; pendingBlanks > 0; pendingBlanks-- {
			values = append(values, "")
		}
		for i := 0; i < repeat; i++ {
			values = append(values, v)
		}
	}
	return values
}
