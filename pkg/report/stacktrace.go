// Copyright 2026 crashrep project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package report

import (
	"errors"
	"strings"
)

var (
	// ErrStackTraceNotFound means the sanitizer report carries no
	// frame-zero marker; the analysis cannot proceed without a trace.
	ErrStackTraceNotFound = errors.New("couldn't find stack trace in sanitizer's report")
	// ErrStackTraceEndNotFound means the frames are not followed by an
	// empty line before the report ends.
	ErrStackTraceEndNotFound = errors.New("couldn't find stack trace end in sanitizer's report")
)

// frameZero marks the innermost (faulting) frame in a sanitizer report.
const frameZero = " #0 "

// ExtractSanitizerTrace returns the stack trace lines of a sanitizer
// report: from the frame-zero line up to (not including) the first
// empty line after it. Lines are trimmed, order is preserved as
// emitted, innermost frame first.
func ExtractSanitizerTrace(asanReport []string) ([]string, error) {
	first := -1
	for i, line := range asanReport {
		if strings.Contains(line, frameZero) {
			first = i
			break
		}
	}
	if first == -1 {
		return nil, ErrStackTraceNotFound
	}
	last := -1
	for i := first; i < len(asanReport); i++ {
		if asanReport[i] == "" {
			last = i
			break
		}
	}
	if last == -1 {
		return nil, ErrStackTraceEndNotFound
	}
	trace := make([]string, 0, last-first)
	for _, line := range asanReport[first:last] {
		trace = append(trace, strings.TrimSpace(line))
	}
	return trace, nil
}

// SplitDebuggerTrace splits a debugger backtrace blob into lines
// verbatim. Downstream consumers are order-sensitive, so nothing is
// trimmed or reordered.
func SplitDebuggerTrace(backtrace string) []string {
	return strings.Split(backtrace, "\n")
}

// mapsHeaderLines is the fixed header the debugger prints before the
// actual mapping rows.
const mapsHeaderLines = 4

// SplitMemoryMaps splits the debugger's memory-map blob into lines,
// discarding the fixed header regardless of its content.
func SplitMemoryMaps(maps string) []string {
	lines := strings.Split(maps, "\n")
	if len(lines) <= mapsHeaderLines {
		return []string{}
	}
	return lines[mapsHeaderLines:]
}
