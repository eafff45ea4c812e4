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

type ThicknessesOptions struct {
	GlobalOptions

	Output string

	out io.Writer
}

func DefaultThicknessesOptions() *ThicknessesOptions {
	return &ThicknessesOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdThicknesses() *cobra.Command {
	o := DefaultThicknessesOptions()
	cmd := &cobra.Command{
		Use:   "thicknesses MATERIAL",
		Short: "List the thicknesses available for a material.",
		Args:  cobra.ExactArgs(1),
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

func (o *ThicknessesOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *ThicknessesOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.out = cmd.OutOrStdout()
	return nil
}

func (o *ThicknessesOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	return validateOutput(o.Output)
}

// Run prints the thicknesses of args[0]. An unknown material has none.
func (o *ThicknessesOptions) Run(ctx context.Context, args []string) error {
	return o.withDataset(func(ds *dataset.Dataset) error {
		thicknesses := ds.ListThicknesses(args[0])
		if done, err := printStructured(o.out, o.Output, thicknesses); done {
			return err
		}

		w := newTabWriter(o.out)
		fmt.Fprintln(w, "THICKNESS")
		for _, t := range thicknesses {
			fmt.Fprintln(w, formatQuantity(t))
		}
		return w.Flush()
	})
}
