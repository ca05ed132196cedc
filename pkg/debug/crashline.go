// Copyright 2026 crashrep project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package debug resolves the crash location of a report to a source
// file/line or a binary module+offset, and fetches the surrounding
// source text when available.
package debug

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ianlancetaylor/demangle"
	"go.uber.org/zap"

	"github.com/crashrep/crashrep/pkg/osutil"
	"github.com/crashrep/crashrep/pkg/report"
)

// CrashLine is the best-known location of the fault: source-level when
// File/Line are set, binary-level otherwise.
type CrashLine struct {
	Function string
	File     string
	Line     int
	Column   int
	Module   string
	Offset   uint64
}

func (cl *CrashLine) HasSource() bool {
	return cl.File != "" && cl.Line > 0
}

func (cl *CrashLine) String() string {
	if cl.HasSource() {
		if cl.Column > 0 {
			return fmt.Sprintf("%v:%v:%v", cl.File, cl.Line, cl.Column)
		}
		return fmt.Sprintf("%v:%v", cl.File, cl.Line)
	}
	return fmt.Sprintf("%v+0x%x", cl.Module, cl.Offset)
}

var (
	// Sanitizer or debugger frame with a source location, e.g.
	// "#0 0x55e5 in foo /src/lib.c:12:5" or "#0  0x55e5 in main () at crash.c:5".
	sourceFrame = regexp.MustCompile(`#\d+\s+0x[0-9a-f]+\s+in\s+(\S+).*?\s([^\s:]+):(\d+)(?::(\d+))?\s*$`)
	// Frame pointing into a binary module, e.g.
	// "#1 0x7f3a in bar (/usr/lib/libc.so.6+0x27083)".
	moduleFrame = regexp.MustCompile(`#\d+\s+0x[0-9a-f]+\s+in\s+.*\((\S+)\+0x([0-9a-f]+)\)`)
)

// LineResolver resolves crash lines with the help of addr2line for
// frames that carry only a module+offset.
type LineResolver struct {
	// Addr2line is the symbolizer binary, "addr2line" when empty.
	Addr2line string
	Timeout   time.Duration
	Log       *zap.Logger
}

// CrashLine implements report.Resolver. It walks the stack trace from
// the innermost frame and returns the first location it can make sense
// of, together with the surrounding source text when the location is
// source-level.
func (r *LineResolver) CrashLine(rep *report.CrashReport) (string, []string, error) {
	cl, err := r.resolve(rep.Stacktrace)
	if err != nil {
		return "", nil, err
	}
	var source []string
	if cl.HasSource() {
		source, err = Sources(cl.File, cl.Line)
		if err != nil && r.Log != nil {
			r.Log.Debug("no sources for crash line", zap.String("file", cl.File), zap.Error(err))
		}
	}
	return cl.String(), source, nil
}

func (r *LineResolver) resolve(stacktrace []string) (*CrashLine, error) {
	for _, frame := range stacktrace {
		if cl := parseSourceFrame(frame); cl != nil {
			return cl, nil
		}
		if cl := parseModuleFrame(frame); cl != nil {
			// Try to upgrade the binary location to a source one; the
			// module+offset form is still a valid answer on failure.
			if err := r.addr2line(cl); err != nil && r.Log != nil {
				r.Log.Debug("addr2line failed", zap.String("module", cl.Module), zap.Error(err))
			}
			return cl, nil
		}
	}
	return nil, fmt.Errorf("couldn't find crash line in stack trace")
}

func parseSourceFrame(frame string) *CrashLine {
	caps := sourceFrame.FindStringSubmatch(frame)
	if caps == nil {
		return nil
	}
	line, err := strconv.Atoi(caps[3])
	if err != nil || line <= 0 {
		return nil
	}
	cl := &CrashLine{Function: caps[1], File: caps[2], Line: line}
	if caps[4] != "" {
		cl.Column, _ = strconv.Atoi(caps[4])
	}
	return cl
}

func parseModuleFrame(frame string) *CrashLine {
	caps := moduleFrame.FindStringSubmatch(frame)
	if caps == nil {
		return nil
	}
	offset, err := strconv.ParseUint(caps[2], 16, 64)
	if err != nil {
		return nil
	}
	return &CrashLine{Module: caps[1], Offset: offset}
}

// addr2line fills in File/Line of a binary-level location by asking the
// external symbolizer, demangling the function name it reports.
func (r *LineResolver) addr2line(cl *CrashLine) error {
	bin := r.Addr2line
	if bin == "" {
		bin = "addr2line"
	}
	timeout := r.Timeout
	if timeout == 0 {
		timeout = time.Minute
	}
	output, err := osutil.Run(timeout, bin, "-e", cl.Module, "-f", fmt.Sprintf("0x%x", cl.Offset))
	if err != nil {
		return err
	}
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	if len(lines) < 2 {
		return fmt.Errorf("unexpected addr2line output: %q", output)
	}
	cl.Function = lines[0]
	if name, err := demangle.ToString(lines[0]); err == nil {
		cl.Function = name
	}
	file, lineStr, ok := strings.Cut(lines[1], ":")
	if !ok || file == "??" {
		return fmt.Errorf("addr2line couldn't resolve 0x%x in %v", cl.Offset, cl.Module)
	}
	// addr2line may append " (discriminator N)".
	lineStr, _, _ = strings.Cut(lineStr, " ")
	line, err := strconv.Atoi(lineStr)
	if err != nil || line <= 0 {
		return fmt.Errorf("unexpected addr2line line: %q", lines[1])
	}
	cl.File = file
	cl.Line = line
	return nil
}
