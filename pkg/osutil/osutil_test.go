// Copyright 2026 crashrep project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package osutil

import (
	"testing"
)

func TestPrepareASANOptions(t *testing.T) {
	tests := []struct {
		existing string
		want     string
	}{
		{"", "hard_rss_limit_mb=2048"},
		{"detect_leaks=1", "detect_leaks=1,hard_rss_limit_mb=2048"},
		{"hard_rss_limit_mb=512", "hard_rss_limit_mb=512"},
		{"symbolize=0", "symbolize=1,hard_rss_limit_mb=2048"},
		{"hard_rss_limit_mb=512,symbolize=0", "hard_rss_limit_mb=512,symbolize=1"},
	}
	for _, test := range tests {
		if got := PrepareASANOptions(test.existing); got != test.want {
			t.Errorf("PrepareASANOptions(%q) = %q, want %q", test.existing, got, test.want)
		}
	}
}
