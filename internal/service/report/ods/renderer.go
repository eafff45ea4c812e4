package ods

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/sheetworks/cut-estimator/internal/service/report/types"
)

// SheetName the table holding the report row.
const SheetName = "report"

const (
	mimeType = "application/vnd.oasis.opendocument.spreadsheet"

	manifestXML = `<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
 <manifest:file-entry manifest:full-path="/" manifest:version="1.2" manifest:media-type="` + mimeType + `"/>
 <manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
</manifest:manifest>
`

	contentHeader = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0" xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0" office:version="1.2">
<office:body><office:spreadsheet>
`
	contentFooter = `</office:spreadsheet></office:body></office:document-content>
`
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatODS
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	if data == nil || data.Record == nil {
		return nil, fmt.Errorf("no record to render")
	}

	content, err := r.content(data.Record.Cells())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)

	// the mimetype entry must come first and be stored uncompressed
	for _, entry := range []struct {
		name   string
		method uint16
		body   string
	}{
		{"mimetype", zip.Store, mimeType},
		{"META-INF/manifest.xml", zip.Deflate, manifestXML},
		{"content.xml", zip.Deflate, content},
	} {
		w, err := archive.CreateHeader(&zip.FileHeader{Name: entry.name, Method: entry.method})
		if err != nil {
			return nil, fmt.Errorf("failed to add %s: %w", entry.name, err)
		}
		if _, err := io.WriteString(w, entry.body); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", entry.name, err)
		}
	}

	if err := archive.Close(); err != nil {
		return nil, fmt.Errorf("failed to close ODS archive: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) content(cells []types.Cell) (string, error) {
	var sb strings.Builder
	sb.WriteString(contentHeader)
	fmt.Fprintf(&sb, "<table:table table:name=%q>\n", SheetName)

	sb.WriteString("<table:table-row>")
	for _, c := range cells {
		if err := writeStringCell(&sb, c.Header); err != nil {
			return "", err
		}
	}
	sb.WriteString("</table:table-row>\n<table:table-row>")
	for _, c := range cells {
		if v, ok := c.Value.(float64); ok {
			writeFloatCell(&sb, types.FormatValue(v))
			continue
		}
		if err := writeStringCell(&sb, types.FormatValue(c.Value)); err != nil {
			return "", err
		}
	}
	sb.WriteString("</table:table-row>\n</table:table>\n")

	sb.WriteString(contentFooter)
	return sb.String(), nil
}

func writeStringCell(sb *strings.Builder, text string) error {
	if text == "" {
		sb.WriteString("<table:table-cell/>")
		return nil
	}
	sb.WriteString(`<table:table-cell office:value-type="string"><text:p>`)
	if err := xml.EscapeText(sb, []byte(text)); err != nil {
		return fmt.Errorf("failed to escape %q: %w", text, err)
	}
	sb.WriteString("</text:p></table:table-cell>")
	return nil
}

func writeFloatCell(sb *strings.Builder, value string) {
	fmt.Fprintf(sb, `<table:table-cell office:value-type="float" office:value="%s"><text:p>%s</text:p></table:table-cell>`, value, value)
}
