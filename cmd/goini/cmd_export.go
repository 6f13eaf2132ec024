package main

import (
	"github.com/spf13/cobra"

	"github.com/muja/goini/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Convert an INI file to JSON, YAML or TOML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ft, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			f, _, err := a.parse(cmd, path)
			if err != nil {
				return err
			}
			out, err := export.Encode(f, ft)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.JSON), "output format: json, yaml or toml")

	return cmd
}
