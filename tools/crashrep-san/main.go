// Copyright 2026 crashrep project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// crashrep-san runs a sanitizer-instrumented target, analyzes its crash
// and emits a severity-classified .casrep report.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crashrep/crashrep/pkg/config"
	"github.com/crashrep/crashrep/pkg/debug"
	"github.com/crashrep/crashrep/pkg/gdb"
	"github.com/crashrep/crashrep/pkg/log"
	"github.com/crashrep/crashrep/pkg/osutil"
	"github.com/crashrep/crashrep/pkg/report"
)

var (
	flagOutput   string
	flagStdout   bool
	flagStdin    string
	flagConfig   string
	flagLogLevel string
)

func main() {
	cmd := &cobra.Command{
		Use:           "crashrep-san [flags] -- ./binary <arguments>",
		Short:         "Create crash reports (.casrep) from sanitizer output",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE:          run,
	}
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "path to save the report (a directory generates the name)")
	cmd.Flags().BoolVar(&flagStdout, "stdout", false, "print the report to stdout")
	cmd.Flags().StringVar(&flagStdin, "stdin", "", "stdin file for the target")
	cmd.Flags().StringVar(&flagConfig, "config", "", "config file")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log verbosity (debug, info, warn, error)")
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	argv := args
	if at := cmd.ArgsLenAtDash(); at > 0 {
		argv = args[at:]
	}
	if len(argv) == 0 {
		return fmt.Errorf("no target command line, add \"-- ./binary <arguments>\"")
	}
	cfg := config.Default()
	if flagConfig != "" {
		var err error
		if cfg, err = config.Load(flagConfig); err != nil {
			return err
		}
	}
	if !flagStdout && flagOutput == "" {
		if cfg.OutputDir == "" {
			return fmt.Errorf("either --output or --stdout is required")
		}
		flagOutput = cfg.OutputDir
	}
	if flagStdin != "" && !osutil.IsExist(flagStdin) {
		return fmt.Errorf("stdin file not found: %v", flagStdin)
	}
	logger, err := log.New(flagLogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	asanOpts := osutil.PrepareASANOptions(os.Getenv("ASAN_OPTIONS"))
	if cfg.ASANOptions != "" {
		asanOpts += "," + cfg.ASANOptions
	}
	logger.Info("running target", zap.Strings("argv", argv), zap.String("asan_options", asanOpts))
	res, err := osutil.RunTarget(cfg.Timeout, argv, flagStdin, []string{"ASAN_OPTIONS=" + asanOpts})
	if err != nil {
		return fmt.Errorf("couldn't run target program: %w", err)
	}
	if report.OutOfMemory(res.Stderr) {
		return fmt.Errorf("out of memory: hard_rss_limit_mb exhausted")
	}

	analyzer := &report.Analyzer{
		Debugger: &gdb.Command{
			GDB:     cfg.GDB,
			Argv:    argv,
			Stdin:   flagStdin,
			Timeout: cfg.Timeout,
			Log:     logger,
		},
		Resolver: &debug.LineResolver{
			Addr2line: cfg.Addr2line,
			Timeout:   cfg.Timeout,
			Log:       logger,
		},
		Log: logger,
	}
	rep, err := analyzer.Analyze(report.Target{Argv: argv}, res.Stderr, res.Status)
	if err != nil {
		return err
	}

	if flagStdout {
		data, err := rep.Marshal()
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", data)
	}
	if flagOutput != "" {
		path := rep.OutputPath(flagOutput, argv)
		if err := rep.Save(path); err != nil {
			return err
		}
		logger.Info("report saved", zap.String("path", path))
	}
	return nil
}
