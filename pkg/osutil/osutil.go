// Copyright 2026 crashrep project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package osutil runs the instrumented target and captures everything
// the analysis pipeline needs: stderr text and the termination status.
package osutil

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

const (
	DefaultDirPerm  = 0755
	DefaultFilePerm = 0644
)

// TermStatus describes how the target process terminated.
type TermStatus struct {
	ExitCode int
	Signal   int
	Signaled bool
}

// ExecResult is the captured outcome of one target run.
type ExecResult struct {
	Stdout []byte
	Stderr []byte
	Status TermStatus
}

// RunTarget runs the target with the given argv, feeding stdinFile to
// its stdin if non-empty. A crashing target is not an error here: the
// termination status is captured in the result. An error is returned
// only when the process could not be run at all.
func RunTarget(timeout time.Duration, argv []string, stdinFile string, env []string) (*ExecResult, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty target command line")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if len(env) != 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	if stdinFile != "" {
		f, err := os.Open(stdinFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open stdin file: %w", err)
		}
		defer f.Close()
		cmd.Stdin = f
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %v: %w", argv[0], err)
	}
	done := make(chan bool)
	timer := time.NewTimer(timeout)
	go func() {
		select {
		case <-timer.C:
			cmd.Process.Kill()
		case <-done:
			timer.Stop()
		}
	}()
	err := cmd.Wait()
	close(done)
	res := &ExecResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return nil, fmt.Errorf("failed to run %q: %w", argv, err)
		}
		status, ok := exitErr.Sys().(syscall.WaitStatus)
		if !ok {
			return nil, fmt.Errorf("failed to run %q: no wait status: %w", argv, err)
		}
		res.Status.ExitCode = status.ExitStatus()
		if status.Signaled() {
			res.Status.Signaled = true
			res.Status.Signal = int(status.Signal())
		}
	}
	return res, nil
}

// Run runs an auxiliary tool (debugger, symbolizer) with a timeout and
// returns its combined output. A non-zero exit makes Run fail.
func Run(timeout time.Duration, bin string, args ...string) ([]byte, error) {
	cmd := exec.Command(bin, args...)
	output := new(bytes.Buffer)
	cmd.Stdout = output
	cmd.Stderr = output
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %v %+v: %w", bin, args, err)
	}
	done := make(chan bool)
	timedout := make(chan bool, 1)
	timer := time.NewTimer(timeout)
	go func() {
		select {
		case <-timer.C:
			timedout <- true
			cmd.Process.Kill()
		case <-done:
			timedout <- false
			timer.Stop()
		}
	}()
	err := cmd.Wait()
	close(done)
	if err != nil {
		text := fmt.Sprintf("failed to run %q: %v", cmd.Args, err)
		if <-timedout {
			text = fmt.Sprintf("timedout %q", cmd.Args)
		}
		return output.Bytes(), &VerboseError{
			Title:  text,
			Output: output.Bytes(),
		}
	}
	return output.Bytes(), nil
}

type VerboseError struct {
	Title  string
	Output []byte
}

func (err *VerboseError) Error() string {
	if len(err.Output) == 0 {
		return err.Title
	}
	return fmt.Sprintf("%v\n%s", err.Title, err.Output)
}

// PrepareASANOptions returns the ASAN_OPTIONS value for the target run:
// a hard rss limit is enforced unless the caller already set one, and
// symbolization is forced on so reports carry file:line frames.
func PrepareASANOptions(existing string) string {
	opts := existing
	if !strings.Contains(opts, "hard_rss_limit_mb") {
		if opts != "" {
			opts += ","
		}
		opts += "hard_rss_limit_mb=2048"
	}
	opts = strings.ReplaceAll(opts, "symbolize=0", "symbolize=1")
	return strings.TrimPrefix(opts, ",")
}

// IsExist returns true if the file name exists.
func IsExist(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

// WriteFile writes data to the file, truncating it if it exists.
func WriteFile(filename string, data []byte) error {
	return os.WriteFile(filename, data, DefaultFilePerm)
}
