package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Report whether INI files parse",
		Long: `Parse each file and print "ok" or the position of the first error.

With no files, reads from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			ok := color.New(color.FgGreen).SprintFunc()
			bad := color.New(color.FgRed).SprintFunc()

			failed := 0
			for _, path := range args {
				f, _, err := a.parse(cmd, path)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, bad(err))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d sections)\n", path, ok("ok"), f.Len())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed to parse", failed, len(args))
			}
			return nil
		},
	}
}
