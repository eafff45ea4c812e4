package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sheetworks/cut-estimator/internal/dataset"
	"github.com/sheetworks/cut-estimator/internal/estimation/calculators"
	"github.com/sheetworks/cut-estimator/internal/service"
	"github.com/sheetworks/cut-estimator/internal/service/report"
	"github.com/sheetworks/cut-estimator/internal/service/report/types"
	"github.com/sheetworks/cut-estimator/pkg/metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	legalReportFormats = []string{string(types.ReportFormatXLSX), string(types.ReportFormatCSV), string(types.ReportFormatODS)}
)

type CalculateOptions struct {
	GlobalOptions

	Request    service.JobRequest
	ReportName string
	Output     string

	out io.Writer
}

type calculateResult struct {
	Result     *calculators.CostResult `json:"result"`
	ReportPath string                  `json:"report_path,omitempty"`
}

func DefaultCalculateOptions() *CalculateOptions {
	return &CalculateOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdCalculate() *cobra.Command {
	o := DefaultCalculateOptions()
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Estimate cutting time, gas consumption and cost of a piece.",
		Example: `  cut-estimator calculate -d date.ods --material Steel --thickness 3 \
    --perimeter 1000 --holes 4 --width 200 --length 300 \
    --pack-content 5 --pack-cost 20 --machine-cost 15 --operator-cost 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *CalculateOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVar(&o.Request.Material, "material", o.Request.Material, "Material of the piece")
	fs.StringVar(&o.Request.Thickness, "thickness", o.Request.Thickness, "Sheet thickness (first matching row when omitted)")
	fs.StringVar(&o.Request.Perimeter, "perimeter", o.Request.Perimeter, "Cut length in mm")
	fs.StringVar(&o.Request.HoleCount, "holes", o.Request.HoleCount, "Number of holes to pierce")
	fs.StringVar(&o.Request.PieceWidth, "width", o.Request.PieceWidth, "Piece width in mm")
	fs.StringVar(&o.Request.PieceLength, "length", o.Request.PieceLength, "Piece length in mm")
	fs.StringVar(&o.Request.PackNetContent, "pack-content", o.Request.PackNetContent, "Net gas content of a pack in m3")
	fs.StringVar(&o.Request.PackCost, "pack-cost", o.Request.PackCost, "Price of a gas pack")
	fs.StringVar(&o.Request.MachineHourCost, "machine-cost", o.Request.MachineHourCost, "Machine cost per hour")
	fs.StringVar(&o.Request.OperatorHourCost, "operator-cost", o.Request.OperatorHourCost, "Operator cost")

	fs.StringVar(&o.ReportName, "report-name", o.ReportName, "Export the result as this report file")
	fs.StringVar(&o.Config.Report.Format, "report-format", o.Config.Report.Format, fmt.Sprintf("Report format when the name has no suffix. One of: (%s).", strings.Join(legalReportFormats, ", ")))
	fs.StringVar(&o.Config.Report.Dir, "report-dir", o.Config.Report.Dir, "Directory the report is written to")
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *CalculateOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.out = cmd.OutOrStdout()
	return nil
}

func (o *CalculateOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	return validateOutput(o.Output)
}

func (o *CalculateOptions) Run(ctx context.Context, args []string) error {
	return o.withDataset(func(ds *dataset.Dataset) error {
		res, err := service.NewEstimationService().Calculate(ctx, ds, o.Request)
		if err != nil {
			return err
		}

		out := calculateResult{Result: res}
		if o.ReportName != "" {
			if out.ReportPath, err = o.export(res); err != nil {
				return err
			}
		}

		return o.print(out)
	})
}

func (o *CalculateOptions) export(res *calculators.CostResult) (string, error) {
	rec, err := report.Assemble(res)
	if err != nil {
		return "", err
	}

	exporter := report.NewExporter(o.Config.Report.Dir, types.ReportFormat(o.Config.Report.Format))
	path, err := exporter.Export(rec, o.ReportName)
	if err != nil {
		return "", err
	}

	metrics.IncreaseReportExportsTotalMetric(strings.TrimPrefix(filepath.Ext(path), "."))
	return path, nil
}

func (o *CalculateOptions) print(out calculateResult) error {
	if done, err := printStructured(o.out, o.Output, out); done {
		return err
	}

	res := out.Result
	w := newTabWriter(o.out)
	fmt.Fprintln(w, "FIELD\tVALUE")
	fmt.Fprintf(w, "Material\t%s\n", res.Material)
	if res.Thickness != nil {
		fmt.Fprintf(w, "Thickness\t%s\n", formatQuantity(*res.Thickness))
	}
	fmt.Fprintf(w, "Cutting hours\t%s\n", formatQuantity(res.Time.CuttingHours))
	fmt.Fprintf(w, "Pierce hours\t%s\n", formatQuantity(res.Time.PierceHours))
	fmt.Fprintf(w, "Total hours\t%s\n", formatQuantity(res.Time.TotalHours))
	fmt.Fprintf(w, "Total minutes\t%s\n", formatQuantity(res.Time.TotalMinutes))
	fmt.Fprintf(w, "Gas volume (m3)\t%s\n", formatQuantity(res.GasVolume))
	fmt.Fprintf(w, "Area (m2)\t%s\n", formatQuantity(res.AreaM2))
	fmt.Fprintf(w, "Gas cost\t%s\n", formatAmount(res.GasCost))
	fmt.Fprintf(w, "Machine cost\t%s\n", formatAmount(res.MachineCost))
	fmt.Fprintf(w, "Material cost\t%s\n", formatAmount(res.MaterialCost))
	fmt.Fprintf(w, "Operator cost\t%s\n", formatAmount(res.OperatorCost))
	fmt.Fprintf(w, "Total cost\t%s\n", formatAmount(res.TotalCost))
	if out.ReportPath != "" {
		fmt.Fprintf(w, "Report\t%s\n", out.ReportPath)
	}
	return w.Flush()
}
