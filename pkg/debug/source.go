// Copyright 2026 crashrep project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package debug

import (
	"fmt"
	"os"
	"strings"
)

// sourceContext is how many lines are shown on each side of the crash line.
const sourceContext = 5

// Sources returns the numbered source text surrounding the crash line,
// with the crash line itself marked.
func Sources(file string, line int) ([]string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}
	lines := strings.Split(string(data), "\n")
	if line < 1 || line > len(lines) {
		return nil, fmt.Errorf("crash line %v is out of range for %v", line, file)
	}
	start := line - sourceContext
	if start < 1 {
		start = 1
	}
	end := line + sourceContext
	if end > len(lines) {
		end = len(lines)
	}
	var excerpt []string
	for n := start; n <= end; n++ {
		marker := "    "
		if n == line {
			marker = "--->"
		}
		excerpt = append(excerpt, fmt.Sprintf("%v%5d: %v", marker, n, lines[n-1]))
	}
	return excerpt, nil
}
