// Package selection narrows a reference dataset down to the single row used by a calculation.
package selection

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sheetworks/cut-estimator/internal/dataset"
	"github.com/sheetworks/cut-estimator/internal/estimation"
)

// Resolve returns the reference row for material and the optional thickness.
// When several rows match, the first one in dataset order is selected.
func Resolve(ds *dataset.Dataset, material string, thickness *float64) (dataset.Row, error) {
	rows := ds.FindRows(material, thickness)
	if len(rows) == 0 {
		return dataset.Row{}, NewErrNoMatch(material, thickness)
	}
	if len(rows) > 1 {
		zap.S().Named("selection").Debugf("%d rows match material %q, using the first one", len(rows), material)
	}

	row := rows[0]
	if err := CheckUsable(row); err != nil {
		return dataset.Row{}, err
	}
	return row, nil
}

// CheckUsable verifies the row carries the constants every calculation needs.
func CheckUsable(row dataset.Row) error {
	missing := make([]string, 0)
	if row.CuttingRate == nil {
		missing = append(missing, "cutting rate")
	}
	if row.PierceTimePrimary == nil {
		missing = append(missing, "primary pierce time")
	}
	if row.PierceTimeSecondary == nil {
		missing = append(missing, "secondary pierce time")
	}
	if len(missing) > 0 {
		return NewErrUnusableRow(row.Material, "missing "+strings.Join(missing, ", "))
	}
	if *row.CuttingRate == 0 {
		return NewErrUnusableRow(row.Material, "cutting rate is zero")
	}
	return nil
}

// ParseThickness converts the optional thickness supplied by the caller.
// An empty string means no thickness was selected.
func ParseThickness(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := estimation.ParseNumber("thickness", s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
