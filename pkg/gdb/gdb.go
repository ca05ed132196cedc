// Copyright 2026 crashrep project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package gdb drives a batch-mode gdb session over the crashed target
// to obtain a backtrace and the process memory mappings.
package gdb

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/crashrep/crashrep/pkg/osutil"
)

// separator is echoed between gdb commands so their outputs can be
// split apart afterwards.
const separator = "----gdb-command-separator----"

// Command describes one local debugger invocation of the target.
type Command struct {
	// GDB is the debugger binary, "gdb" when empty.
	GDB string
	// Argv is the full target command line.
	Argv []string
	// Stdin is an optional file fed to the target's stdin.
	Stdin string
	// Timeout bounds the whole debugger run.
	Timeout time.Duration
	Log     *zap.Logger
}

// Backtrace reruns the target under the debugger and returns the raw
// backtrace text and the raw memory-map text, in that order. The
// memory-map text keeps the debugger's 4-line header.
func (c *Command) Backtrace() (string, string, error) {
	if len(c.Argv) == 0 {
		return "", "", fmt.Errorf("no target command line")
	}
	bin := c.GDB
	if bin == "" {
		bin = "gdb"
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = 5 * time.Minute
	}
	run := "run"
	if c.Stdin != "" {
		run = fmt.Sprintf("run < %v", c.Stdin)
	}
	args := []string{
		"--batch",
		"-ex", fmt.Sprintf("set args %v", strings.Join(c.Argv[1:], " ")),
		"-ex", run,
		"-ex", fmt.Sprintf("echo \\n%v\\n", separator),
		"-ex", "bt",
		"-ex", fmt.Sprintf("echo \\n%v\\n", separator),
		"-ex", "info proc mappings",
		c.Argv[0],
	}
	if c.Log != nil {
		c.Log.Debug("running debugger",
			zap.String("gdb", bin), zap.Strings("target", c.Argv))
	}
	output, err := osutil.Run(timeout, bin, args...)
	if err != nil {
		return "", "", fmt.Errorf("debugger failed: %w", err)
	}
	blobs, err := splitOutput(string(output))
	if err != nil {
		return "", "", err
	}
	return blobs[0], blobs[1], nil
}

// splitOutput cuts the raw session transcript on the separator lines.
// The part before the first separator is the target's own output and is
// discarded; the remaining parts are the command outputs in order.
func splitOutput(raw string) ([]string, error) {
	var parts []string
	cur := new(strings.Builder)
	seps := 0
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == separator {
			if seps > 0 {
				parts = append(parts, strings.TrimSuffix(cur.String(), "\n"))
			}
			cur.Reset()
			seps++
			continue
		}
		cur.WriteString(line)
		cur.WriteString("\n")
	}
	if seps > 0 {
		parts = append(parts, strings.TrimSuffix(cur.String(), "\n"))
	}
	if len(parts) != 2 {
		return nil, fmt.Errorf("unexpected debugger output: %v command outputs instead of 2", len(parts))
	}
	return parts, nil
}
