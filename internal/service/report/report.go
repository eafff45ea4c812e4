package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sheetworks/cut-estimator/internal/estimation"
	"github.com/sheetworks/cut-estimator/internal/estimation/calculators"
	"github.com/sheetworks/cut-estimator/internal/service/report/csv"
	"github.com/sheetworks/cut-estimator/internal/service/report/ods"
	"github.com/sheetworks/cut-estimator/internal/service/report/types"
	"github.com/sheetworks/cut-estimator/internal/service/report/xlsx"
	"go.uber.org/zap"
)

// Assemble flattens a cost result into a report record. A nil result means no
// calculation completed yet. The record gets a fresh run id and generation time,
// so assembling the same result twice yields two distinct records.
func Assemble(res *calculators.CostResult) (*types.Record, error) {
	if res == nil {
		return nil, estimation.NewErrNoResult()
	}

	return &types.Record{
		RunID:        uuid.New(),
		GeneratedAt:  time.Now(),
		Material:     res.Material,
		Thickness:    res.Thickness,
		CuttingHours: res.Time.CuttingHours,
		PierceHours:  res.Time.PierceHours,
		TotalHours:   res.Time.TotalHours,
		TotalMinutes: res.Time.TotalMinutes,
		AreaM2:       res.AreaM2,
		GasVolume:    res.GasVolume,
		GasCost:      res.GasCost,
		MachineCost:  res.MachineCost,
		MaterialCost: res.MaterialCost,
		OperatorCost: res.OperatorCost,
		TotalCost:    res.TotalCost,
	}, nil
}

// Exporter writes report records to files in a directory.
type Exporter struct {
	dir           string
	defaultFormat types.ReportFormat
	renderers     map[types.ReportFormat]types.ReportRenderer
}

// NewExporter creates an Exporter writing into dir. Names without a known
// suffix are written as defaultFormat.
func NewExporter(dir string, defaultFormat types.ReportFormat) *Exporter {
	e := &Exporter{
		dir:           dir,
		defaultFormat: defaultFormat,
		renderers:     make(map[types.ReportFormat]types.ReportRenderer),
	}
	for _, r := range []types.ReportRenderer{xlsx.NewRenderer(), csv.NewRenderer(), ods.NewRenderer()} {
		e.renderers[r.SupportedFormat()] = r
	}
	return e
}

// Export renders rec and writes it as name, returning the written path.
func (e *Exporter) Export(rec *types.Record, name string) (string, error) {
	if rec == nil {
		return "", estimation.NewErrNoResult()
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", estimation.NewErrMissingReportName()
	}

	format, fileName := e.resolveFormat(name)
	renderer, ok := e.renderers[format]
	if !ok {
		return "", fmt.Errorf("unsupported report format %q", format)
	}

	content, err := renderer.Render(&types.ReportData{Record: rec})
	if err != nil {
		return "", fmt.Errorf("failed to render %s report: %w", format, err)
	}

	path := fileName
	if !filepath.IsAbs(path) {
		path = filepath.Join(e.dir, fileName)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	zap.S().Named("report").Infow("report exported", "path", path, "format", format, "run_id", rec.RunID)
	return path, nil
}

func (e *Exporter) resolveFormat(name string) (types.ReportFormat, string) {
	ext := strings.ToLower(filepath.Ext(name))
	for format := range e.renderers {
		if ext == format.Extension() {
			return format, name
		}
	}
	return e.defaultFormat, name + e.defaultFormat.Extension()
}
