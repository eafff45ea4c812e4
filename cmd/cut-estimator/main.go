package main

import (
	"os"

	"github.com/sheetworks/cut-estimator/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	command := NewCutEstimatorCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewCutEstimatorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cut-estimator [flags] [options]",
		Short: "cut-estimator prices sheet cutting jobs from a reference rate table.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdCalculate())
	cmd.AddCommand(cli.NewCmdMaterials())
	cmd.AddCommand(cli.NewCmdThicknesses())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
