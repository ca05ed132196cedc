// Copyright 2026 crashrep project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package report

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/crashrep/crashrep/pkg/execclass"
	"github.com/crashrep/crashrep/pkg/osutil"
)

// ErrNoCrashDetected means the target exited cleanly: no fatal signal
// and no sanitizer report, so there is nothing to report.
var ErrNoCrashDetected = errors.New("program terminated (no crash)")

// Debugger obtains a backtrace and memory mappings for crashes that
// produce no sanitizer report. Implementations run an external tool;
// tests inject canned text.
type Debugger interface {
	// Backtrace returns the raw backtrace text and the raw memory-map
	// text (with its fixed 4-line header still attached).
	Backtrace() (backtrace, mappings string, err error)
}

// Resolver locates the crash line for an assembled report and, when the
// location is source-level, fetches the surrounding source text.
// Resolution is best-effort: a failure leaves the fields empty.
type Resolver interface {
	CrashLine(rep *CrashReport) (line string, source []string, err error)
}

// Analyzer drives one crash analysis from captured output to a
// finalized report. It is single-threaded and runs to completion.
type Analyzer struct {
	Debugger Debugger
	Resolver Resolver
	Log      *zap.Logger
}

// Target describes the analyzed program invocation.
type Target struct {
	Argv []string
}

var (
	sanSummary = regexp.MustCompile(`SUMMARY: *(AddressSanitizer|libFuzzer): (\S+)`)
	sanAccess  = regexp.MustCompile(`(READ|WRITE|ACCESS)`)
	faultAddr  = regexp.MustCompile(`address 0x([0-9a-f]+)`)
)

// nearNullBound: faulting addresses below it are treated as plain NULL
// dereferences rather than controlled-address faults.
const nearNullBound = 0x10000

// Analyze converts the target's captured stderr and termination status
// into a crash report. Hard failures abort with an error and no report;
// classification and crash-line resolution failures are absorbed.
func (a *Analyzer) Analyze(target Target, stderr []byte, status osutil.TermStatus) (*CrashReport, error) {
	if len(target.Argv) == 0 {
		return nil, fmt.Errorf("no target command line")
	}
	log := a.Log
	if log == nil {
		log = zap.NewNop()
	}
	rep := New()
	rep.ExecutablePath = target.Argv[0]
	rep.ProcCmdline = strings.Join(target.Argv, " ")
	if err := rep.AddOSInfo(); err != nil {
		log.Warn("failed to collect os info", zap.Error(err))
	}

	asan, found := FindSanitizerReport(SplitLines(stderr))
	if found {
		rep.AsanReport = asan
		a.classifySanitizer(rep, log)
		trace, err := ExtractSanitizerTrace(asan)
		if err != nil {
			return nil, err
		}
		rep.Stacktrace = trace
	} else {
		if !status.Signaled {
			return nil, ErrNoCrashDetected
		}
		backtrace, mappings, err := a.Debugger.Backtrace()
		if err != nil {
			return nil, fmt.Errorf("unable to get results from debugger: %w", err)
		}
		a.classifySignal(rep, status.Signal, backtrace, log)
		rep.Stacktrace = SplitDebuggerTrace(backtrace)
		rep.ProcMaps = SplitMemoryMaps(mappings)
	}

	if a.Resolver != nil {
		line, source, err := a.Resolver.CrashLine(rep)
		if err != nil {
			log.Debug("crash line is not resolved", zap.Error(err))
		} else {
			rep.CrashLine = line
			if len(source) != 0 {
				rep.Source = source
			}
		}
	}
	return rep, nil
}

// classifySanitizer resolves the severity class from the sanitizer
// report. An unclassifiable report keeps the default Undefined class.
func (a *Analyzer) classifySanitizer(rep *CrashReport, log *zap.Logger) {
	if strings.Contains(rep.AsanReport[0], "LeakSanitizer") {
		rep.Severity, _ = execclass.Find("memory-leaks")
		return
	}
	var caps []string
	for _, line := range rep.AsanReport {
		if caps = sanSummary.FindStringSubmatch(line); caps != nil {
			break
		}
	}
	if caps == nil {
		log.Warn("no summary line in sanitizer report")
		return
	}
	tool, check := caps[1], caps[2]
	access := execclass.AccessUndef
	nearNull := false
	if tool == "AddressSanitizer" {
		if len(rep.AsanReport) > 1 {
			switch sanAccess.FindString(rep.AsanReport[1]) {
			case "READ":
				access = execclass.AccessRead
			case "WRITE":
				access = execclass.AccessWrite
			}
		}
		nearNull = nearNullAddress(rep.AsanReport[0])
	}
	class, err := execclass.Derive(check, access, nearNull)
	if err != nil {
		log.Warn("failed to classify sanitizer report", zap.String("check", check), zap.Error(err))
		return
	}
	rep.Severity = class
}

// classifySignal resolves the severity class from the fatal signal,
// refining SEGV with hints from the debugger's backtrace text.
func (a *Analyzer) classifySignal(rep *CrashReport, signal int, backtrace string, log *zap.Logger) {
	// The backtrace text mentions the faulting address when the
	// debugger could read siginfo ("Cannot access memory at address ...").
	nearNull := false
	for _, line := range SplitDebuggerTrace(backtrace) {
		if faultAddr.MatchString(strings.ToLower(line)) {
			nearNull = nearNullAddress(line)
			break
		}
	}
	class, err := execclass.FromSignal(signal, execclass.AccessUndef, nearNull)
	if err != nil {
		log.Warn("failed to classify signal", zap.Int("signal", signal), zap.Error(err))
		return
	}
	rep.Severity = class
}

// nearNullAddress reports whether the first faulting address mentioned
// on the line lies in the first pages of the address space.
func nearNullAddress(line string) bool {
	caps := faultAddr.FindStringSubmatch(strings.ToLower(line))
	if caps == nil {
		return false
	}
	addr, err := strconv.ParseUint(caps[1], 16, 64)
	if err != nil {
		return false
	}
	return addr < nearNullBound
}
