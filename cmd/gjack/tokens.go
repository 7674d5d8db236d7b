package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ltungv/jack/gjack/internal/jack"
	"github.com/ltungv/jack/gjack/internal/tokenfile"
)

func newTokensCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Scan a .jack source and write its token stream as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return &exitError{exitIOErr, err}
			}
			reporter := jack.NewSimpleReporter(cmd.ErrOrStderr())
			tokens := jack.NewScanner([]rune(string(source)), reporter).Scan()
			if reporter.HadError() {
				return &exitError{exitDataErr, fmt.Errorf("scanning %s failed", args[0])}
			}
			if opts.verbose {
				reporter.Printf("scanned %d tokens from %s", len(tokens), args[0])
			}
			if err := tokenfile.Write(cmd.OutOrStdout(), tokens); err != nil {
				return &exitError{exitIOErr, err}
			}
			return nil
		},
	}
}
