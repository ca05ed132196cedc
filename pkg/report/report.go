// Copyright 2026 crashrep project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package report assembles severity-classified crash reports from raw
// sanitizer output or debugger transcripts.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"github.com/crashrep/crashrep/pkg/execclass"
)

// CrashReport is the aggregate produced by one analysis. Field names
// follow the casrep schema and must stay stable; empty sequences
// serialize as empty arrays, never as null.
type CrashReport struct {
	Date           string                   `json:"Date"`
	Uname          string                   `json:"Uname"`
	OS             string                   `json:"OS"`
	OSRelease      string                   `json:"OSRelease"`
	Architecture   string                   `json:"Architecture"`
	ExecutablePath string                   `json:"ExecutablePath"`
	ProcCmdline    string                   `json:"ProcCmdline"`
	ProcEnviron    []string                 `json:"ProcEnviron"`
	ProcMaps       []string                 `json:"ProcMaps"`
	Severity       execclass.ExecutionClass `json:"CrashSeverity"`
	Stacktrace     []string                 `json:"Stacktrace"`
	AsanReport     []string                 `json:"AsanReport"`
	CrashLine      string                   `json:"CrashLine"`
	Source         []string                 `json:"Source"`
}

// New returns an empty report with the default Undefined classification
// and all sequences initialized, so that the serialized schema is
// identical across both analysis paths.
func New() *CrashReport {
	return &CrashReport{
		Date:        time.Now().Format(time.RFC3339),
		Severity:    execclass.Default(),
		ProcEnviron: []string{},
		ProcMaps:    []string{},
		Stacktrace:  []string{},
		AsanReport:  []string{},
		Source:      []string{},
	}
}

// AddOSInfo fills in uname and distribution fields. Failures are not
// fatal: a report without OS metadata is still useful.
func (rep *CrashReport) AddOSInfo() error {
	rep.Architecture = runtime.GOARCH
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return fmt.Errorf("uname failed: %w", err)
	}
	rep.Uname = fmt.Sprintf("%v %v %v %v", utsString(uts.Sysname[:]),
		utsString(uts.Nodename[:]), utsString(uts.Release[:]), utsString(uts.Version[:]))
	name, version, err := readOSRelease("/etc/os-release")
	if err != nil {
		return err
	}
	rep.OS = name
	rep.OSRelease = version
	return nil
}

func utsString(field []byte) string {
	for i, b := range field {
		if b == 0 {
			return string(field[:i])
		}
	}
	return string(field)
}

func readOSRelease(file string) (name, version string, err error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", "", fmt.Errorf("failed to read os-release: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"`)
		switch key {
		case "NAME":
			name = value
		case "VERSION_ID":
			version = value
		}
	}
	return name, version, nil
}

// Marshal serializes the report as stable pretty-printed JSON suitable
// for storage as a .casrep artifact.
func (rep *CrashReport) Marshal() ([]byte, error) {
	return json.MarshalIndent(rep, "", "    ")
}

// Parse deserializes a report previously produced by Marshal.
func Parse(data []byte) (*CrashReport, error) {
	rep := New()
	if err := json.Unmarshal(data, rep); err != nil {
		return nil, fmt.Errorf("failed to parse crash report: %w", err)
	}
	return rep, nil
}

// Save writes the serialized report to file.
func (rep *CrashReport) Save(file string) error {
	data, err := rep.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(file, data, 0644); err != nil {
		return fmt.Errorf("failed to save report to %v: %w", file, err)
	}
	return nil
}

// OutputPath resolves the requested output argument to a report file
// name. When out is a directory the name is derived from the executable
// and the first existing input file argument, falling back to the
// report date.
func (rep *CrashReport) OutputPath(out string, argv []string) string {
	info, err := os.Stat(out)
	if err != nil || !info.IsDir() {
		return out
	}
	input := rep.Date
	for _, arg := range argv[1:] {
		if _, err := os.Stat(arg); err == nil {
			base := filepath.Base(arg)
			input = strings.TrimSuffix(base, filepath.Ext(base))
			break
		}
	}
	return filepath.Join(out, fmt.Sprintf("%v_%v.casrep", filepath.Base(argv[0]), input))
}
