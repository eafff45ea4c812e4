package calculators

import (
	"fmt"

	"github.com/sheetworks/cut-estimator/internal/dataset"
	"github.com/sheetworks/cut-estimator/internal/estimation"
)

const (
	ParamPackCost         = "pack_cost"
	ParamMachineHourCost  = "machine_hour_cost"
	ParamPieceWidth       = "piece_width"
	ParamPieceLength      = "piece_length"
	ParamOperatorHourCost = "operator_hour_cost"

	OutputAreaM2       = "area_m2"
	OutputMaterialCost = "material_cost"
	OutputGasCost      = "gas_cost"
	OutputMachineCost  = "machine_cost"
	OutputOperatorCost = "operator_cost"
	OutputTotalCost    = "total_cost"

	FieldMaterialUnitCost = "material_unit_cost"

	mm2PerM2 = 1_000_000
)

// CostInputs user supplied prices and piece dimensions (mm).
type CostInputs struct {
	PackCost         float64
	MachineHourCost  float64
	PieceWidth       float64
	PieceLength      float64
	OperatorHourCost float64
}

// CostResult the full estimate of one cutting job.
type CostResult struct {
	Material     string     `json:"material"`
	Thickness    *float64   `json:"thickness,omitempty"`
	AreaM2       float64    `json:"area_m2"`
	GasVolume    float64    `json:"gas_volume"`
	GasCost      float64    `json:"gas_cost"`
	MachineCost  float64    `json:"machine_cost"`
	MaterialCost float64    `json:"material_cost"`
	OperatorCost float64    `json:"operator_cost"`
	TotalCost    float64    `json:"total_cost"`
	Time         TimeResult `json:"time"`
}

func (in CostInputs) validate() error {
	for _, scalar := range []struct {
		field string
		value float64
	}{
		{ParamPackCost, in.PackCost},
		{ParamMachineHourCost, in.MachineHourCost},
		{ParamPieceWidth, in.PieceWidth},
		{ParamPieceLength, in.PieceLength},
		{ParamOperatorHourCost, in.OperatorHourCost},
	} {
		if err := requireFinite(scalar.field, scalar.value); err != nil {
			return err
		}
	}
	for _, positive := range []struct {
		field string
		value float64
	}{
		{ParamPieceWidth, in.PieceWidth},
		{ParamPieceLength, in.PieceLength},
	} {
		if positive.value <= 0 {
			return estimation.NewErrMustBePositive(positive.field, positive.value)
		}
	}
	for _, nonNegative := range []struct {
		field string
		value float64
	}{
		{ParamPackCost, in.PackCost},
		{ParamMachineHourCost, in.MachineHourCost},
		{ParamOperatorHourCost, in.OperatorHourCost},
	} {
		if nonNegative.value < 0 {
			return estimation.NewErrMustBeNonNegative(nonNegative.field, nonNegative.value)
		}
	}
	return nil
}

// ComputeCost combines gas, machine time, material and operator costs into the job total.
// The operator cost is added as given, it is not scaled by the job time.
func ComputeCost(row dataset.Row, gasVolume float64, t TimeResult, in CostInputs) (CostResult, error) {
	if err := in.validate(); err != nil {
		return CostResult{}, err
	}
	if err := requireFinite(OutputGasVolume, gasVolume); err != nil {
		return CostResult{}, err
	}
	if err := requireFinite(OutputTotalHours, t.TotalHours); err != nil {
		return CostResult{}, err
	}
	unitCost, err := rowConstant(row.MaterialUnitCost, FieldMaterialUnitCost)
	if err != nil {
		return CostResult{}, err
	}

	areaM2 := (in.PieceWidth * in.PieceLength) / mm2PerM2
	materialCost := areaM2 * unitCost
	gasCost := gasVolume * in.PackCost
	machineCost := t.TotalHours * in.MachineHourCost

	return CostResult{
		Material:     row.Material,
		Thickness:    row.Thickness,
		AreaM2:       areaM2,
		GasVolume:    gasVolume,
		GasCost:      gasCost,
		MachineCost:  machineCost,
		MaterialCost: materialCost,
		OperatorCost: in.OperatorHourCost,
		TotalCost:    gasCost + machineCost + materialCost + in.OperatorHourCost,
		Time:         t,
	}, nil
}

// NameCost the name results are keyed by in an engine run.
const NameCost = "Cost"

// Compile-time assertion that CostAggregate implements the Calculator interface.
var _ estimation.Calculator = (*CostAggregate)(nil)

// CostAggregate turns the time and gas estimates into money.
type CostAggregate struct {
	row dataset.Row
}

// NewCostAggregate creates a CostAggregate calculator bound to row.
func NewCostAggregate(row dataset.Row) *CostAggregate {
	return &CostAggregate{row: row}
}

// Name returns the human-readable name of this calculator.
func (c *CostAggregate) Name() string { return NameCost }

// Keys returns the list of parameter keys required by this calculator.
func (c *CostAggregate) Keys() []string {
	return []string{
		OutputGasVolume, OutputTotalHours,
		ParamPackCost, ParamMachineHourCost, ParamPieceWidth, ParamPieceLength, ParamOperatorHourCost,
	}
}

// Calculate parses the user prices and dimensions and runs ComputeCost on the
// outputs of the CuttingTime and GasConsumption calculators.
func (c *CostAggregate) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	var in CostInputs
	for _, field := range []struct {
		key   string
		value *float64
	}{
		{ParamPackCost, &in.PackCost},
		{ParamMachineHourCost, &in.MachineHourCost},
		{ParamPieceWidth, &in.PieceWidth},
		{ParamPieceLength, &in.PieceLength},
		{ParamOperatorHourCost, &in.OperatorHourCost},
	} {
		v, err := requireFloat(params, field.key)
		if err != nil {
			return estimation.Estimation{}, err
		}
		*field.value = v
	}

	gasVolume, err := requireFloat(params, OutputGasVolume)
	if err != nil {
		return estimation.Estimation{}, err
	}
	var t TimeResult
	for _, field := range []struct {
		key   string
		value *float64
	}{
		{OutputCuttingHours, &t.CuttingHours},
		{OutputPierceHours, &t.PierceHours},
		{OutputTotalHours, &t.TotalHours},
		{OutputTotalMinutes, &t.TotalMinutes},
	} {
		v, err := requireFloat(params, field.key)
		if err != nil {
			return estimation.Estimation{}, err
		}
		*field.value = v
	}

	res, err := ComputeCost(c.row, gasVolume, t, in)
	if err != nil {
		return estimation.Estimation{}, err
	}

	return estimation.Estimation{
		Outputs: outputs(
			OutputAreaM2, res.AreaM2,
			OutputMaterialCost, res.MaterialCost,
			OutputGasCost, res.GasCost,
			OutputMachineCost, res.MachineCost,
			OutputOperatorCost, res.OperatorCost,
			OutputTotalCost, res.TotalCost,
		),
		Reason: fmt.Sprintf("gas %.2f + machine %.2f + material %.2f + operator %.2f",
			res.GasCost, res.MachineCost, res.MaterialCost, res.OperatorCost),
	}, nil
}
