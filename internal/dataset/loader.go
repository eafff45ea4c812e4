package dataset

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Format is a tabular source format, inferred from the file suffix.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatODS  Format = "ods"
	FormatCSV  Format = "csv"

	// DefaultSheet is the sheet holding the reference table in spreadsheet sources.
	DefaultSheet = "date"
)

var suffixFormats = map[string]Format{
	".xlsx": FormatXLSX,
	".ods":  FormatODS,
	".csv":  FormatCSV,
}

func supportedSuffixes() []string {
	return []string{".xlsx", ".ods", ".csv"}
}

// FormatFromPath infers the source format from the suffix of path.
func FormatFromPath(path string) (Format, error) {
	format, ok := suffixFormats[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", NewErrUnsupportedFormat(path)
	}
	return format, nil
}

// Loader reads reference datasets from tabular sources.
type Loader struct {
	sheet string
}

// LoaderOption configuration option for the loader
type LoaderOption func(*Loader)

// WithSheet sets the spreadsheet sheet holding the reference table. Empty names are ignored.
func WithSheet(sheet string) LoaderOption {
	return func(l *Loader) {
		if sheet != "" {
			l.sheet = sheet
		}
	}
}

// NewLoader creates a Loader reading the DefaultSheet unless overridden by options.
func NewLoader(opts ...LoaderOption) *Loader {
	l := Loader{
		sheet: DefaultSheet,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return &l
}

// Load reads the dataset stored at path. The format is inferred from the suffix.
func (l *Loader) Load(path string) (*Dataset, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, NewErrIOFailure(path, err)
	}
	defer f.Close()

	ds, err := l.load(path, f, format)
	if err != nil {
		return nil, err
	}
	zap.S().Named("dataset").Infow("dataset loaded", "path", path, "format", format, "rows", ds.Len())
	return ds, nil
}

// LoadReader reads a dataset of the given format from r.
func (l *Loader) LoadReader(r io.Reader, format Format) (*Dataset, error) {
	return l.load(string(format), r, format)
}

func (l *Loader) load(source string, r io.Reader, format Format) (*Dataset, error) {
	var (
		table [][]string
		err   error
	)
	switch format {
	case FormatXLSX:
		table, err = readXLSX(r, l.sheet)
	case FormatODS:
		// zip archives need random access
		var content []byte
		content, err = io.ReadAll(r)
		if err == nil {
			table, err = readODS(bytes.NewReader(content), int64(len(content)), l.sheet)
		}
	case FormatCSV:
		table, err = readCSV(r)
	default:
		return nil, NewErrUnsupportedFormat(source)
	}
	if err != nil {
		return nil, NewErrIOFailure(source, err)
	}

	return New(source, parseTable(table)), nil
}

// parseTable maps the header row of table onto Row fields and converts the data rows.
func parseTable(table [][]string) []Row {
	header, data := splitSheet(table)
	colMap := buildColumnMap(header)
	logger := zap.S().Named("dataset")

	rows := make([]Row, 0, len(data))
	for i, record := range data {
		material := getColumnValue(record, colMap, columnMaterial)
		if material == "" {
			continue
		}
		row := Row{Material: material}
		for _, target := range []struct {
			column string
			field  **float64
		}{
			{columnThickness, &row.Thickness},
			{columnCuttingRate, &row.CuttingRate},
			{columnPierceTimePrimary, &row.PierceTimePrimary},
			{columnPierceTimeSecondary, &row.PierceTimeSecondary},
			{columnMaterialUnitCost, &row.MaterialUnitCost},
			{columnPackDuration, &row.PackDuration},
		} {
			raw := getColumnValue(record, colMap, target.column)
			v, ok := parseNumber(raw)
			if !ok && raw != "" {
				logger.Warnf("row %d: column %s value %q is not numeric, treated as absent", i+2, target.column, raw)
			}
			if ok {
				*target.field = &v
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func (f Format) String() string {
	return string(f)
}
