// Copyright 2026 crashrep project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package report

import (
	"regexp"
	"strings"
)

// sanReportStart matches the first line of a sanitizer self-report:
// a pid between == delimiters, then ERROR: and the tool name.
var sanReportStart = regexp.MustCompile(`==\d+==\s*ERROR: (LeakSanitizer|AddressSanitizer|libFuzzer):`)

// oomMarker is printed by ASAN when the configured rss limit is hit;
// such runs are aborted before any report is built.
var oomMarker = "AddressSanitizer: hard rss limit exhausted"

// SplitLines splits captured stderr into lines. Only the terminator is
// stripped, the rest of the text is left untouched.
func SplitLines(output []byte) []string {
	return strings.Split(string(output), "\n")
}

// FindSanitizerReport locates the sanitizer report within the captured
// lines. It returns the report slice (start line through the last
// non-empty line, inclusive) and whether a report is present at all.
func FindSanitizerReport(lines []string) ([]string, bool) {
	start := -1
	for i, line := range lines {
		if sanReportStart.MatchString(line) {
			start = i
			break
		}
	}
	if start == -1 {
		return nil, false
	}
	end := len(lines) - 1
	for end > start && lines[end] == "" {
		end--
	}
	return lines[start : end+1], true
}

// OutOfMemory reports whether the run died on the sanitizer rss limit
// rather than on a genuine memory-safety fault.
func OutOfMemory(output []byte) bool {
	return strings.Contains(string(output), oomMarker)
}
