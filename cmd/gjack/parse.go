package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ltungv/jack/gjack/internal/jack"
	"github.com/ltungv/jack/gjack/internal/tokenfile"
)

func newParseCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Parse .jack sources or YAML token streams and print their trees",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			printer, err := jack.NewPrinter(cfg.Output.Format, cfg.Output.Indent)
			if err != nil {
				return &exitError{exitUsage, err}
			}

			reporter := jack.NewSimpleReporter(cmd.ErrOrStderr())
			failed := false
			for _, path := range args {
				reporter.Reset()
				tokens, err := loadTokens(path, reporter)
				if err != nil {
					return &exitError{exitIOErr, err}
				}
				if reporter.HadError() {
					failed = true
					continue
				}
				if opts.verbose {
					reporter.Printf("parsing %d tokens from %s", len(tokens), path)
				}

				tree, err := jack.Parse(tokens, cfg.ParserOptions()...)
				if err != nil {
					reporter.Report(fmt.Errorf("%s: %w", path, err))
					failed = true
					continue
				}
				if err := printer.Print(cmd.OutOrStdout(), tree); err != nil {
					return &exitError{exitIOErr, err}
				}
				if cfg.Output.Format == jack.FormatSExpr {
					fmt.Fprintln(cmd.OutOrStdout())
				}
			}
			if failed {
				return &exitError{exitDataErr, fmt.Errorf("parsing failed")}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", jack.FormatXML, "output format: xml, sexpr or yaml")
	cmd.Flags().IntVar(&opts.indent, "indent", 2, "indentation width of the output")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", jack.DefaultMaxDepth, "maximum nesting depth of the input")
	return cmd
}

// loadTokens reads a YAML token stream, or scans a source file. Scan errors
// go to reporter.
func loadTokens(path string, reporter jack.Reporter) ([]*jack.Token, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return tokenfile.ReadFile(path)
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return jack.NewScanner([]rune(string(source)), reporter).Scan(), nil
}
