package service

import (
	"context"
	"errors"
	"time"

	"github.com/sheetworks/cut-estimator/internal/dataset"
	"github.com/sheetworks/cut-estimator/internal/estimation"
	"github.com/sheetworks/cut-estimator/internal/estimation/calculators"
	"github.com/sheetworks/cut-estimator/internal/selection"
	"github.com/sheetworks/cut-estimator/pkg/metrics"
	"go.uber.org/zap"
)

// JobRequest the raw values entered for one piece, as typed by the user.
type JobRequest struct {
	Material         string
	Thickness        string
	Perimeter        string
	HoleCount        string
	PieceWidth       string
	PieceLength      string
	PackNetContent   string
	PackCost         string
	MachineHourCost  string
	OperatorHourCost string
}

// EstimationService runs the cutting cost pipeline: it resolves the reference
// row of the requested material and thickness and runs it through the time,
// gas and cost calculators.
type EstimationService struct {
	logger *zap.SugaredLogger
}

// NewEstimationService creates an EstimationService.
func NewEstimationService() *EstimationService {
	return &EstimationService{
		logger: zap.S().Named("estimation_service"),
	}
}

// Calculate estimates the cost of req against the dataset snapshot ds.
// The first failing stage ends the run and its error is returned as is.
func (es *EstimationService) Calculate(ctx context.Context, ds *dataset.Dataset, req JobRequest) (*calculators.CostResult, error) {
	start := time.Now()
	res, err := es.calculate(ctx, ds, req)
	metrics.ObserveCalculationDuration(time.Since(start).Seconds())
	metrics.IncreaseCalculationsTotalMetric(resultLabel(err))
	return res, err
}

func (es *EstimationService) calculate(ctx context.Context, ds *dataset.Dataset, req JobRequest) (*calculators.CostResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ds == nil {
		return nil, NewErrNoDataset()
	}

	logger := es.logger.With("material", req.Material, "thickness", req.Thickness, "dataset", ds.Source())

	thickness, err := selection.ParseThickness(req.Thickness)
	if err != nil {
		logger.Debugw("invalid thickness", "error", err)
		return nil, err
	}

	row, err := selection.Resolve(ds, req.Material, thickness)
	if err != nil {
		logger.Debugw("selection failed", "error", err)
		return nil, err
	}

	engine := estimation.NewEngine()
	engine.Register(calculators.NewCuttingTime(row))
	engine.Register(calculators.NewGasConsumption(row))
	engine.Register(calculators.NewCostAggregate(row))

	params := es.mapRequestToParams(req)
	logger.Debugw("mapped params", "param_count", len(params))

	results, err := engine.Run(params)
	if err != nil {
		logger.Debugw("estimation failed", "error", err)
		return nil, err
	}

	res, err := es.mapResultsToCost(row, results)
	if err != nil {
		return nil, err
	}

	logger.Infow("estimation completed", "total_hours", res.Time.TotalHours, "total_cost", res.TotalCost)
	return res, nil
}

// mapRequestToParams hands the raw strings to the calculators, which parse them.
func (es *EstimationService) mapRequestToParams(req JobRequest) []estimation.Param {
	return []estimation.Param{
		{Key: calculators.ParamPerimeter, Value: req.Perimeter},
		{Key: calculators.ParamHoleCount, Value: req.HoleCount},
		{Key: calculators.ParamPackNetContent, Value: req.PackNetContent},
		{Key: calculators.ParamPackCost, Value: req.PackCost},
		{Key: calculators.ParamMachineHourCost, Value: req.MachineHourCost},
		{Key: calculators.ParamPieceWidth, Value: req.PieceWidth},
		{Key: calculators.ParamPieceLength, Value: req.PieceLength},
		{Key: calculators.ParamOperatorHourCost, Value: req.OperatorHourCost},
	}
}

// mapResultsToCost collects the calculator outputs into a CostResult.
func (es *EstimationService) mapResultsToCost(row dataset.Row, results map[string]estimation.Estimation) (*calculators.CostResult, error) {
	res := &calculators.CostResult{
		Material:  row.Material,
		Thickness: row.Thickness,
	}

	for _, out := range []struct {
		calculator string
		key        string
		value      *float64
	}{
		{calculators.NameCuttingTime, calculators.OutputCuttingHours, &res.Time.CuttingHours},
		{calculators.NameCuttingTime, calculators.OutputPierceHours, &res.Time.PierceHours},
		{calculators.NameCuttingTime, calculators.OutputTotalHours, &res.Time.TotalHours},
		{calculators.NameCuttingTime, calculators.OutputTotalMinutes, &res.Time.TotalMinutes},
		{calculators.NameGasConsumption, calculators.OutputGasVolume, &res.GasVolume},
		{calculators.NameCost, calculators.OutputAreaM2, &res.AreaM2},
		{calculators.NameCost, calculators.OutputMaterialCost, &res.MaterialCost},
		{calculators.NameCost, calculators.OutputGasCost, &res.GasCost},
		{calculators.NameCost, calculators.OutputMachineCost, &res.MachineCost},
		{calculators.NameCost, calculators.OutputOperatorCost, &res.OperatorCost},
		{calculators.NameCost, calculators.OutputTotalCost, &res.TotalCost},
	} {
		v, ok := results[out.calculator].Output(out.key)
		if !ok {
			return nil, NewErrMissingOutput(out.calculator, out.key)
		}
		*out.value = v
	}

	return res, nil
}

func resultLabel(err error) string {
	var (
		inputErr     *estimation.ErrInput
		selectionErr *selection.ErrSelection
	)
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.As(err, &inputErr):
		return metrics.ResultInputError
	case errors.As(err, &selectionErr):
		return metrics.ResultSelectionError
	default:
		return metrics.ResultError
	}
}
