package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sheetworks/cut-estimator/internal/dataset"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type MaterialsOptions struct {
	GlobalOptions

	Output string

	out io.Writer
}

func DefaultMaterialsOptions() *MaterialsOptions {
	return &MaterialsOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdMaterials() *cobra.Command {
	o := DefaultMaterialsOptions()
	cmd := &cobra.Command{
		Use:   "materials",
		Short: "List the materials of the reference dataset.",
		Args:  cobra.NoArgs,
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

func (o *MaterialsOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *MaterialsOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.out = cmd.OutOrStdout()
	return nil
}

func (o *MaterialsOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	return validateOutput(o.Output)
}

func (o *MaterialsOptions) Run(ctx context.Context, args []string) error {
	return o.withDataset(func(ds *dataset.Dataset) error {
		materials := ds.ListMaterials()
		if done, err := printStructured(o.out, o.Output, materials); done {
			return err
		}

		w := newTabWriter(o.out)
		fmt.Fprintln(w, "MATERIAL\tTHICKNESSES")
		for _, m := range materials {
			fmt.Fprintf(w, "%s\t%d\n", m, len(ds.ListThicknesses(m)))
		}
		return w.Flush()
	})
}
