// Copyright 2026 crashrep project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/crashrep/crashrep/pkg/execclass"
	"github.com/crashrep/crashrep/pkg/osutil"
)

type mockDebugger struct {
	mock.Mock
}

func (m *mockDebugger) Backtrace() (string, string, error) {
	ret := m.Called()
	return ret.String(0), ret.String(1), ret.Error(2)
}

type resolverFunc func(rep *CrashReport) (string, []string, error)

func (f resolverFunc) CrashLine(rep *CrashReport) (string, []string, error) {
	return f(rep)
}

var target = Target{Argv: []string{"/bin/target", "input.bin"}}

const asanHeapWrite = `benign target output
==1234==ERROR: AddressSanitizer: heap-buffer-overflow on address 0x602000000014
WRITE of size 4 at 0x602000000014 thread T0
    #0 0x4f2d27 in foo /src/a.cc:12:5
    #1 0x4f2e44 in main /src/main.cc:7:3

0x602000000014 is located 0 bytes to the right of a 4-byte region
SUMMARY: AddressSanitizer: heap-buffer-overflow /src/a.cc:12:5 in foo
`

func TestAnalyzeSanitizerPath(t *testing.T) {
	a := &Analyzer{}
	rep, err := a.Analyze(target, []byte(asanHeapWrite), osutil.TermStatus{})
	require.NoError(t, err)
	assert.Equal(t, "/bin/target", rep.ExecutablePath)
	assert.Equal(t, "/bin/target input.bin", rep.ProcCmdline)
	assert.Equal(t, "heap-buffer-overflow(write)", rep.Severity.ShortName)
	assert.Equal(t, execclass.Exploitable, rep.Severity.Severity)
	require.NotEmpty(t, rep.Stacktrace)
	assert.Equal(t, "#0 0x4f2d27 in foo /src/a.cc:12:5", rep.Stacktrace[0])
	assert.True(t, strings.HasPrefix(rep.AsanReport[0], "==1234==ERROR:"))
	// Signal-path fields stay empty but serialized.
	assert.Empty(t, rep.ProcMaps)
	assert.NotNil(t, rep.ProcMaps)
}

func TestAnalyzeSegvNearNull(t *testing.T) {
	text := `==55==ERROR: AddressSanitizer: SEGV on unknown address 0x000000000008 (pc 0x55e5 bp 0x7ffd sp 0x7ffd T0)
==55==The signal is caused by a WRITE memory access.
==55==Hint: address points to the zero page.
    #0 0x55e5 in store /src/npd.c:3
    #1 0x55f0 in main /src/npd.c:9

AddressSanitizer can not provide additional info.
SUMMARY: AddressSanitizer: SEGV /src/npd.c:3 in store
`
	a := &Analyzer{}
	rep, err := a.Analyze(target, []byte(text), osutil.TermStatus{})
	require.NoError(t, err)
	assert.Equal(t, "DestAvNearNull", rep.Severity.ShortName)
}

func TestAnalyzeLeakSanitizer(t *testing.T) {
	text := `==77==ERROR: LeakSanitizer: detected memory leaks

Direct leak of 7 byte(s) in 1 object(s) allocated from:
    #0 0x49 in malloc (/bin/target+0x49)
    #1 0x52 in main /src/leak.c:4

SUMMARY: AddressSanitizer: 7 byte(s) leaked in 1 allocation(s).
`
	a := &Analyzer{}
	rep, err := a.Analyze(target, []byte(text), osutil.TermStatus{})
	require.NoError(t, err)
	assert.Equal(t, "memory-leaks", rep.Severity.ShortName)
	assert.Equal(t, execclass.NotExploitable, rep.Severity.Severity)
}

func TestAnalyzeLibFuzzer(t *testing.T) {
	text := `INFO: Seed: 1
==99==ERROR: libFuzzer: deadly signal
    #0 0x55 in handler /src/fuzz.cc:20
    #1 0x58 in main /src/fuzz.cc:40

SUMMARY: libFuzzer: deadly signal
`
	a := &Analyzer{}
	rep, err := a.Analyze(target, []byte(text), osutil.TermStatus{})
	require.NoError(t, err)
	assert.Equal(t, "AbortSignal", rep.Severity.ShortName)
}

func TestAnalyzeUnknownCheckKeepsDefault(t *testing.T) {
	text := `==5==ERROR: AddressSanitizer: brand-new-check on address 0x100000
READ of size 1 at 0x100000 thread T0
    #0 0x55 in foo /src/a.cc:1

SUMMARY: AddressSanitizer: brand-new-check /src/a.cc:1 in foo
`
	a := &Analyzer{}
	rep, err := a.Analyze(target, []byte(text), osutil.TermStatus{})
	require.NoError(t, err)
	// Classification failure is recoverable: default class, full report.
	assert.Equal(t, execclass.Undefined, rep.Severity.Severity)
	assert.NotEmpty(t, rep.Stacktrace)
}

func TestAnalyzeTraceErrors(t *testing.T) {
	noFrames := `==5==ERROR: AddressSanitizer: SEGV on unknown address 0x000000000000
==5==corrupted, no frames follow
`
	a := &Analyzer{}
	_, err := a.Analyze(target, []byte(noFrames), osutil.TermStatus{})
	require.ErrorIs(t, err, ErrStackTraceNotFound)

	noEnd := "==5==ERROR: AddressSanitizer: SEGV on unknown address 0x000000000000\n" +
		"    #0 0x55 in foo /src/a.cc:1"
	_, err = a.Analyze(target, []byte(noEnd), osutil.TermStatus{})
	require.ErrorIs(t, err, ErrStackTraceEndNotFound)
}

const gdbBacktrace = "#0  0x0000555555555131 in main () at crash.c:5\n" +
	"#1  0x00007ffff7dba083 in __libc_start_main ()"

const gdbMappings = "process 1337\nMapped address spaces:\n\n" +
	"          Start Addr           End Addr       Size     Offset objfile\n" +
	"      0x555555554000     0x555555555000     0x1000        0x0 /bin/target\n" +
	"      0x7ffff7db8000     0x7ffff7ddd000    0x25000        0x0 /usr/lib/libc.so.6"

func TestAnalyzeSignalPath(t *testing.T) {
	dbg := new(mockDebugger)
	dbg.On("Backtrace").Return(gdbBacktrace, gdbMappings, nil)
	a := &Analyzer{Debugger: dbg}
	rep, err := a.Analyze(target, []byte("no sanitizer output here"), osutil.TermStatus{Signaled: true, Signal: 11})
	require.NoError(t, err)
	dbg.AssertExpectations(t)
	assert.Equal(t, "AccessViolation", rep.Severity.ShortName)
	require.Len(t, rep.Stacktrace, 2)
	assert.Equal(t, "#0  0x0000555555555131 in main () at crash.c:5", rep.Stacktrace[0])
	require.Len(t, rep.ProcMaps, 2)
	assert.Contains(t, rep.ProcMaps[0], "/bin/target")
	assert.Empty(t, rep.AsanReport)
}

func TestAnalyzeSignalNearNull(t *testing.T) {
	bt := "Cannot access memory at address 0x10\n" + gdbBacktrace
	dbg := new(mockDebugger)
	dbg.On("Backtrace").Return(bt, gdbMappings, nil)
	a := &Analyzer{Debugger: dbg}
	rep, err := a.Analyze(target, nil, osutil.TermStatus{Signaled: true, Signal: 11})
	require.NoError(t, err)
	// Near-null without a known access direction still maps to the
	// generic arm of the SEGV table.
	assert.Equal(t, "AccessViolation", rep.Severity.ShortName)
}

func TestAnalyzeSignalKinds(t *testing.T) {
	tests := []struct {
		signal int
		want   string
	}{
		{4, "BadInstruction"},
		{6, "AbortSignal"},
		{11, "AccessViolation"},
		{8, "Undefined"}, // SIGFPE has no mapping, default stays
	}
	for _, test := range tests {
		dbg := new(mockDebugger)
		dbg.On("Backtrace").Return(gdbBacktrace, gdbMappings, nil)
		a := &Analyzer{Debugger: dbg}
		rep, err := a.Analyze(target, nil, osutil.TermStatus{Signaled: true, Signal: test.signal})
		require.NoError(t, err)
		assert.Equal(t, test.want, rep.Severity.ShortName, "signal %v", test.signal)
	}
}

func TestAnalyzeNoCrash(t *testing.T) {
	a := &Analyzer{}
	_, err := a.Analyze(target, []byte("clean run\n"), osutil.TermStatus{ExitCode: 0})
	require.ErrorIs(t, err, ErrNoCrashDetected)
}

func TestAnalyzeDebuggerFailure(t *testing.T) {
	dbg := new(mockDebugger)
	dbg.On("Backtrace").Return("", "", errors.New("gdb not found"))
	a := &Analyzer{Debugger: dbg}
	_, err := a.Analyze(target, nil, osutil.TermStatus{Signaled: true, Signal: 6})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "debugger")
}

func TestAnalyzeCrashLineResolution(t *testing.T) {
	a := &Analyzer{
		Resolver: resolverFunc(func(rep *CrashReport) (string, []string, error) {
			return "/src/a.cc:12:5", []string{"--->   12: buf[i] = 0;"}, nil
		}),
	}
	rep, err := a.Analyze(target, []byte(asanHeapWrite), osutil.TermStatus{})
	require.NoError(t, err)
	assert.Equal(t, "/src/a.cc:12:5", rep.CrashLine)
	require.Len(t, rep.Source, 1)
}

func TestAnalyzeCrashLineBestEffort(t *testing.T) {
	a := &Analyzer{
		Resolver: resolverFunc(func(rep *CrashReport) (string, []string, error) {
			return "", nil, errors.New("no usable frames")
		}),
	}
	rep, err := a.Analyze(target, []byte(asanHeapWrite), osutil.TermStatus{})
	require.NoError(t, err)
	assert.Empty(t, rep.CrashLine)
	assert.Empty(t, rep.Source)
	assert.NotNil(t, rep.Source)
}
