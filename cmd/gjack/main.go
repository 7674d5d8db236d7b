package main

// This is the command line driver of the Jack parser.

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ltungv/jack/gjack/internal/config"
)

const (
	exitUsage   = 64
	exitDataErr = 65
	exitIOErr   = 74
)

var version = "dev"

// exitError carries the status the process should exit with.
type exitError struct {
	status int
	err    error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// exitStatus maps an error returned by a command to a process status.
func exitStatus(err error) int {
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.status
	}
	return exitUsage
}

type options struct {
	configFile string
	verbose    bool
	format     string
	indent     int
	maxDepth   int
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitStatus(err))
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "gjack",
		Short:         "Parse Jack programs into parse trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: ./"+config.DefaultFile+" if present)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newParseCmd(opts))
	root.AddCommand(newTokensCmd(opts))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "gjack", version)
		},
	})
	return root
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, &exitError{exitUsage, err}
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if flags.Changed("indent") {
		cfg.Output.Indent = opts.indent
	}
	if flags.Changed("max-depth") {
		cfg.Parser.MaxDepth = opts.maxDepth
	}
	if err := cfg.Validate(); err != nil {
		return nil, &exitError{exitUsage, err}
	}
	return cfg, nil
}
