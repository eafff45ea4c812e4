package calculators

import (
	"fmt"

	"github.com/sheetworks/cut-estimator/internal/dataset"
	"github.com/sheetworks/cut-estimator/internal/estimation"
)

// Param prefix = parameter keys in the params map given to the calculator
// Output prefix = keys of the values produced for the following calculators
// Field prefix = reference row constants named in errors
const (
	// ParamPerimeter cut length of the piece in millimetres.
	ParamPerimeter = "perimeter"
	// ParamHoleCount number of holes to pierce.
	ParamHoleCount = "hole_count"

	OutputCuttingHours = "cutting_hours"
	OutputPierceHours  = "pierce_hours"
	OutputTotalHours   = "total_hours"
	OutputTotalMinutes = "total_minutes"

	FieldCuttingRate         = "cutting_rate"
	FieldPierceTimePrimary   = "pierce_time_primary"
	FieldPierceTimeSecondary = "pierce_time_secondary"
)

// TimeResult machine time needed to cut one piece.
type TimeResult struct {
	CuttingHours float64 `json:"cutting_hours"`
	PierceHours  float64 `json:"pierce_hours"`
	TotalHours   float64 `json:"total_hours"`
	TotalMinutes float64 `json:"total_minutes"`
}

// ComputeTime derives the cutting and piercing time of a piece from the rate constants of row.
func ComputeTime(row dataset.Row, perimeter, holeCount float64) (TimeResult, error) {
	if err := requireFinite(ParamPerimeter, perimeter); err != nil {
		return TimeResult{}, err
	}
	if err := requireFinite(ParamHoleCount, holeCount); err != nil {
		return TimeResult{}, err
	}
	if perimeter <= 0 {
		return TimeResult{}, estimation.NewErrMustBePositive(ParamPerimeter, perimeter)
	}
	if holeCount < 0 {
		return TimeResult{}, estimation.NewErrMustBeNonNegative(ParamHoleCount, holeCount)
	}

	rate, err := rowConstant(row.CuttingRate, FieldCuttingRate)
	if err != nil {
		return TimeResult{}, err
	}
	// rejected by the resolver already, a zero here means the row bypassed it
	if rate == 0 {
		return TimeResult{}, estimation.NewErrZeroConstant(FieldCuttingRate)
	}
	pierce1, err := rowConstant(row.PierceTimePrimary, FieldPierceTimePrimary)
	if err != nil {
		return TimeResult{}, err
	}
	pierce2, err := rowConstant(row.PierceTimeSecondary, FieldPierceTimeSecondary)
	if err != nil {
		return TimeResult{}, err
	}

	cuttingHours := perimeter / rate
	pierceHours := holeCount * (pierce1 + pierce2)
	totalHours := cuttingHours + pierceHours

	return TimeResult{
		CuttingHours: cuttingHours,
		PierceHours:  pierceHours,
		TotalHours:   totalHours,
		TotalMinutes: totalHours * 60,
	}, nil
}

// NameCuttingTime the name results are keyed by in an engine run.
const NameCuttingTime = "Cutting Time"

// Compile-time assertion that CuttingTime implements the Calculator interface.
var _ estimation.Calculator = (*CuttingTime)(nil)

// CuttingTime estimates the machine time of a piece for one reference row.
type CuttingTime struct {
	row dataset.Row
}

// NewCuttingTime creates a CuttingTime calculator bound to row.
func NewCuttingTime(row dataset.Row) *CuttingTime {
	return &CuttingTime{row: row}
}

// Name returns the human-readable name of this calculator.
func (c *CuttingTime) Name() string { return NameCuttingTime }

// Keys returns the list of parameter keys required by this calculator.
func (c *CuttingTime) Keys() []string {
	return []string{ParamPerimeter, ParamHoleCount}
}

// Calculate parses the perimeter and hole count and runs ComputeTime.
func (c *CuttingTime) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	perimeter, err := requireFloat(params, ParamPerimeter)
	if err != nil {
		return estimation.Estimation{}, err
	}
	holeCount, err := requireFloat(params, ParamHoleCount)
	if err != nil {
		return estimation.Estimation{}, err
	}

	t, err := ComputeTime(c.row, perimeter, holeCount)
	if err != nil {
		return estimation.Estimation{}, err
	}

	return estimation.Estimation{
		Outputs: outputs(
			OutputCuttingHours, t.CuttingHours,
			OutputPierceHours, t.PierceHours,
			OutputTotalHours, t.TotalHours,
			OutputTotalMinutes, t.TotalMinutes,
		),
		Reason: fmt.Sprintf("%.0f mm at %g mm/h + %g holes", perimeter, *c.row.CuttingRate, holeCount),
	}, nil
}
