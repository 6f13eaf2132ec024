package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNotFound = errors.New("not found")

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get file [section] key",
		Short: "Print the value of a key",
		Long: `Print the value stored under key.

With a section, only that section is searched. Without one, the first
section holding the key wins.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, _, err := a.parse(cmd, args[0])
			if err != nil {
				return err
			}

			var value string
			if len(args) == 2 {
				e, ok := f.GetEntry(args[1])
				if !ok {
					return fmt.Errorf("key %q: %w", args[1], errNotFound)
				}
				value = e.Value()
			} else {
				s, ok := f.GetSection(args[1])
				if !ok {
					return fmt.Errorf("section %q: %w", args[1], errNotFound)
				}
				v, ok := s.GetValue(args[2])
				if !ok {
					return fmt.Errorf("key %q in section %q: %w", args[2], args[1], errNotFound)
				}
				value = v
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}
