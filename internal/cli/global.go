package cli

import (
	"fmt"

	"github.com/sheetworks/cut-estimator/internal/config"
	"github.com/sheetworks/cut-estimator/internal/dataset"
	"github.com/sheetworks/cut-estimator/pkg/log"
	"github.com/sheetworks/cut-estimator/pkg/metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type GlobalOptions struct {
	Config *config.Config

	envErr error
}

// DefaultGlobalOptions takes its defaults from the CUT_ESTIMATOR_* environment.
func DefaultGlobalOptions() GlobalOptions {
	cfg, err := config.New()
	if err != nil {
		// reported by Validate, flags still need somewhere to bind
		cfg = config.Defaults()
	}
	return GlobalOptions{Config: cfg, envErr: err}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Config.Dataset.Path, "dataset", "d", o.Config.Dataset.Path, "Reference dataset (.ods, .xlsx or .csv)")
	fs.StringVar(&o.Config.Dataset.Sheet, "sheet", o.Config.Dataset.Sheet, "Sheet holding the reference table")
	fs.StringVar(&o.Config.Service.LogLevel, "log-level", o.Config.Service.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&o.Config.Service.MetricsFile, "metrics-file", o.Config.Service.MetricsFile, "Write run metrics to this node exporter textfile")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	if o.envErr != nil {
		return fmt.Errorf("reading environment: %w", o.envErr)
	}
	return o.Config.Validate()
}

// withDataset loads the configured dataset and hands it to fn. Logging is set
// up for the duration of the call and metrics are flushed when fn returns.
func (o *GlobalOptions) withDataset(fn func(ds *dataset.Dataset) error) (err error) {
	restore, err := log.Setup(o.Config.Service.LogLevel)
	if err != nil {
		return err
	}
	defer restore()

	defer func() {
		if o.Config.Service.MetricsFile == "" {
			return
		}
		if mErr := metrics.WriteTextfile(o.Config.Service.MetricsFile); mErr != nil {
			zap.S().Named("cli").Warnw("failed to write metrics", "error", mErr)
		}
	}()

	store := dataset.NewStore(dataset.NewLoader(dataset.WithSheet(o.Config.Dataset.Sheet)))
	if _, err := store.Load(o.Config.Dataset.Path); err != nil {
		return err
	}
	ds, err := store.Snapshot()
	if err != nil {
		return err
	}
	return fn(ds)
}
