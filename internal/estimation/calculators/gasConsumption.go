package calculators

import (
	"fmt"

	"github.com/sheetworks/cut-estimator/internal/dataset"
	"github.com/sheetworks/cut-estimator/internal/estimation"
)

const (
	// ParamPackNetContent net volume of one gas pack in cubic metres.
	ParamPackNetContent = "pack_net_content"

	OutputGasVolume = "gas_volume"

	FieldPackDuration = "pack_duration"
)

// ComputeGas prorates the gas pack content over the job time: a pack lasts row.PackDuration hours.
func ComputeGas(t TimeResult, packNetContent float64, row dataset.Row) (float64, error) {
	if err := requireFinite(OutputTotalHours, t.TotalHours); err != nil {
		return 0, err
	}
	if err := requireFinite(ParamPackNetContent, packNetContent); err != nil {
		return 0, err
	}
	if packNetContent <= 0 {
		return 0, estimation.NewErrMustBePositive(ParamPackNetContent, packNetContent)
	}
	duration, err := rowConstant(row.PackDuration, FieldPackDuration)
	if err != nil {
		return 0, err
	}
	if duration == 0 {
		return 0, estimation.NewErrZeroConstant(FieldPackDuration)
	}

	return (t.TotalHours * packNetContent) / duration, nil
}

// NameGasConsumption the name results are keyed by in an engine run.
const NameGasConsumption = "Gas Consumption"

// Compile-time assertion that GasConsumption implements the Calculator interface.
var _ estimation.Calculator = (*GasConsumption)(nil)

// GasConsumption estimates the gas volume used while cutting a piece.
type GasConsumption struct {
	row dataset.Row
}

// NewGasConsumption creates a GasConsumption calculator bound to row.
func NewGasConsumption(row dataset.Row) *GasConsumption {
	return &GasConsumption{row: row}
}

// Name returns the human-readable name of this calculator.
func (c *GasConsumption) Name() string { return NameGasConsumption }

// Keys returns the list of parameter keys required by this calculator.
// OutputTotalHours is produced by CuttingTime.
func (c *GasConsumption) Keys() []string {
	return []string{OutputTotalHours, ParamPackNetContent}
}

// Calculate runs ComputeGas on the total hours of a previous CuttingTime run.
func (c *GasConsumption) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	packNetContent, err := requireFloat(params, ParamPackNetContent)
	if err != nil {
		return estimation.Estimation{}, err
	}
	totalHours, err := requireFloat(params, OutputTotalHours)
	if err != nil {
		return estimation.Estimation{}, err
	}

	volume, err := ComputeGas(TimeResult{TotalHours: totalHours}, packNetContent, c.row)
	if err != nil {
		return estimation.Estimation{}, err
	}

	return estimation.Estimation{
		Outputs: outputs(OutputGasVolume, volume),
		Reason:  fmt.Sprintf("%.3f h with a %g m3 pack lasting %g h", totalHours, packNetContent, *c.row.PackDuration),
	}, nil
}
