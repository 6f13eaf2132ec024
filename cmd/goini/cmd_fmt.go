package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

func newFmtCmd(a *app) *cobra.Command {
	var (
		fmtOverwrite bool
		fmtDiff      bool
	)

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Print an INI file in canonical form",
		Long: `Print an INI file in canonical form to stdout.

Comments are dropped, and entries are written as key=value under their
section header. If no file is provided, reads from stdin.

Use -w to overwrite the file in place (requires a file argument) and
--diff to show what would change.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			if fmtOverwrite && (path == "" || path == "-") {
				return fmt.Errorf("-w requires a file argument")
			}

			f, source, err := a.parse(cmd, path)
			if err != nil {
				return err
			}
			var buf strings.Builder
			if _, err := f.WriteTo(&buf); err != nil {
				return err
			}
			output := buf.String()

			if fmtDiff {
				writeDiff(cmd.OutOrStdout(), string(source), output)
				return nil
			}
			if fmtOverwrite {
				return os.WriteFile(path, []byte(output), 0644)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")
	cmd.Flags().BoolVar(&fmtDiff, "diff", false, "print a line diff instead of the result")

	return cmd
}

// writeDiff prints a line oriented diff from a to b.
func writeDiff(w io.Writer, a, b string) {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				del.Fprintln(w, "-"+line)
			case diffmatchpatch.DiffInsert:
				ins.Fprintln(w, "+"+line)
			default:
				fmt.Fprintln(w, " "+line)
			}
		}
	}
}
