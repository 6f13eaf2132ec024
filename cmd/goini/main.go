package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	a := newApp()

	rootCmd := &cobra.Command{
		Use:           "goini",
		Short:         "Parse, query and reformat INI files",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	a.bindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newGetCmd(a))
	rootCmd.AddCommand(newFmtCmd(a))
	rootCmd.AddCommand(newExportCmd(a))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
