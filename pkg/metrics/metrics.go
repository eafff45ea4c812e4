package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	cutEstimator = "cut_estimator"

	// Calculation metrics
	calculationsTotal  = "calculations_total"
	calculationSeconds = "calculation_duration_seconds"

	// Dataset metrics
	DatasetRows = "dataset_rows"

	// Report metrics
	reportExportsTotal = "report_exports_total"

	// Labels
	resultLabel = "result"
	sourceLabel = "source"
	formatLabel = "format"
)

// Calculation outcomes
const (
	ResultSuccess        = "success"
	ResultInputError     = "input_error"
	ResultSelectionError = "selection_error"
	ResultError          = "error"
)

var calculationsTotalLabels = []string{
	resultLabel,
}

var datasetRowsLabels = []string{
	sourceLabel,
}

var reportExportsTotalLabels = []string{
	formatLabel,
}

/**
* Metrics definition
**/
var calculationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: cutEstimator,
		Name:      calculationsTotal,
		Help:      "number of cost calculations partitioned by result",
	},
	calculationsTotalLabels,
)

var calculationSecondsMetric = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Subsystem: cutEstimator,
		Name:      calculationSeconds,
		Help:      "time spent running the estimation pipeline",
		Buckets:   []float64{0.0001, 0.001, 0.01, 0.1},
	},
)

var datasetRowsMetric = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Subsystem: cutEstimator,
		Name:      DatasetRows,
		Help:      "metrics to record the number of reference rows of the loaded dataset",
	},
	datasetRowsLabels,
)

var reportExportsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: cutEstimator,
		Name:      reportExportsTotal,
		Help:      "number of exported reports partitioned by format",
	},
	reportExportsTotalLabels,
)

func IncreaseCalculationsTotalMetric(result string) {
	labels := prometheus.Labels{
		resultLabel: result,
	}
	calculationsTotalMetric.With(labels).Inc()
}

func ObserveCalculationDuration(seconds float64) {
	calculationSecondsMetric.Observe(seconds)
}

func UpdateDatasetRowsMetric(source string, count int) {
	labels := prometheus.Labels{
		sourceLabel: source,
	}
	datasetRowsMetric.With(labels).Set(float64(count))
}

func IncreaseReportExportsTotalMetric(format string) {
	labels := prometheus.Labels{
		formatLabel: format,
	}
	reportExportsTotalMetric.With(labels).Inc()
}

// WriteTextfile dumps the registered metrics in the node exporter textfile format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(calculationsTotalMetric)
	prometheus.MustRegister(calculationSecondsMetric)
	prometheus.MustRegister(datasetRowsMetric)
	prometheus.MustRegister(reportExportsTotalMetric)
}
