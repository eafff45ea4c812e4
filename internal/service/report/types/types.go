package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReportRenderer interface {
	Render(data *ReportData) ([]byte, error)
	SupportedFormat() ReportFormat
}

type ReportFormat string

const (
	ReportFormatXLSX ReportFormat = "xlsx"
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatODS  ReportFormat = "ods"
)

// Extension returns the file suffix of the format, dot included.
func (f ReportFormat) Extension() string {
	return "." + string(f)
}

// Record one estimation run flattened for export.
type Record struct {
	RunID        uuid.UUID `json:"run_id"`
	GeneratedAt  time.Time `json:"generated_at"`
	Material     string    `json:"material"`
	Thickness    *float64  `json:"thickness,omitempty"`
	CuttingHours float64   `json:"cutting_hours"`
	PierceHours  float64   `json:"pierce_hours"`
	TotalHours   float64   `json:"total_hours"`
	TotalMinutes float64   `json:"total_minutes"`
	AreaM2       float64   `json:"area_m2"`
	GasVolume    float64   `json:"gas_volume"`
	GasCost      float64   `json:"gas_cost"`
	MachineCost  float64   `json:"machine_cost"`
	MaterialCost float64   `json:"material_cost"`
	OperatorCost float64   `json:"operator_cost"`
	TotalCost    float64   `json:"total_cost"`
}

type ReportData struct {
	Record *Record
}

// Cell a single column of the report table. Value is a string or a float64.
type Cell struct {
	Header string
	Value  any
}

// Cells lays the record out as the columns of the single row report table.
func (r *Record) Cells() []Cell {
	var thickness any = ""
	if r.Thickness != nil {
		thickness = *r.Thickness
	}
	return []Cell{
		{"Run ID", r.RunID.String()},
		{"Generated", r.GeneratedAt.Format(time.RFC3339)},
		{"Material", r.Material},
		{"Thickness", thickness},
		{"Gas Cost", r.GasCost},
		{"Machine Cost", r.MachineCost},
		{"Material Cost", r.MaterialCost},
		{"Operator Cost", r.OperatorCost},
		{"Total Cost", r.TotalCost},
		{"Gas Volume (m3)", r.GasVolume},
		{"Area (m2)", r.AreaM2},
		{"Cutting Hours", r.CuttingHours},
		{"Pierce Hours", r.PierceHours},
		{"Total Hours", r.TotalHours},
		{"Total Minutes", r.TotalMinutes},
	}
}

// FormatValue renders a cell value as text, numbers in their shortest decimal form.
func FormatValue(v any) string {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n).String()
	case string:
		return n
	default:
		return ""
	}
}
