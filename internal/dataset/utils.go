package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Canonical column keys of the reference table.
const (
	columnMaterial            = "material"
	columnThickness           = "thickness"
	columnCuttingRate         = "cutting_rate"
	columnPierceTimePrimary   = "pierce_time_primary"
	columnPierceTimeSecondary = "pierce_time_secondary"
	columnMaterialUnitCost    = "material_cost"
	columnPackDuration        = "pack_duration"
)

// columnAliases maps a normalized header to its canonical column.
var columnAliases = map[string]string{
	"material":              columnMaterial,
	"espesor":               columnThickness,
	"thickness":             columnThickness,
	"cw":                    columnCuttingRate,
	"cutting rate":          columnCuttingRate,
	"cutting_rate":          columnCuttingRate,
	"1":                     columnPierceTimePrimary,
	"pierce time 1":         columnPierceTimePrimary,
	"pierce_time_primary":   columnPierceTimePrimary,
	"2":                     columnPierceTimeSecondary,
	"pierce time 2":         columnPierceTimeSecondary,
	"pierce_time_secondary": columnPierceTimeSecondary,
	"costo":                 columnMaterialUnitCost,
	"cost":                  columnMaterialUnitCost,
	"material cost":         columnMaterialUnitCost,
	"material_cost":         columnMaterialUnitCost,
	"duracion":              columnPackDuration,
	"duración":              columnPackDuration,
	"duration":              columnPackDuration,
	"pack duration":         columnPackDuration,
	"pack_duration":         columnPackDuration,
}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

// buildColumnMap returns the index of every known column. When a column
// appears twice the first occurrence wins.
func buildColumnMap(headers []string) map[string]int {
	colMap := make(map[string]int)
	for i, header := range headers {
		column, ok := columnAliases[normalizeHeader(header)]
		if !ok {
			continue
		}
		if _, exists := colMap[column]; !exists {
			colMap[column] = i
		}
	}
	return colMap
}

func getColumnValue(row []string, colMap map[string]int, key string) string {
	if idx, exists := colMap[key]; exists && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func splitSheet(rows [][]string) (header []string, data [][]string) {
	if len(rows) == 0 {
		return []string{}, [][]string{}
	}
	return rows[0], rows[1:]
}

// parseNumber parses a finite number, accepting a comma as decimal separator.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		v, err = strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	}
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
