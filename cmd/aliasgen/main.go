package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "0.0.1"
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "aliasgen [flags] <source-dir>...",
		Short:         "Generate strong alias types from //go:strongalias: directives",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), opts, args)
		},
	}
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "",
		"Path to a file where logs should be written. If empty, logs go to stderr.")
	cmd.PersistentFlags().StringVar(&opts.output, "output", "",
		"Output file name for the generated code. Defaults to <package_name>.gen.go.")
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "",
		"Path to a YAML declaration file. Defaults to aliasgen.yaml in the source directory.")
	cmd.AddCommand(newVersionCmd(), newWatchCmd(opts))
	return cmd
}
