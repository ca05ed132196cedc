// Copyright 2026 crashrep project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package execclass holds the exploitability taxonomy and the rules that
// map raw sanitizer check names and termination signals onto it.
package execclass

import (
	"errors"
	"fmt"
)

// Severity is the exploitability tier of an execution class.
type Severity string

const (
	Exploitable         = Severity("EXPLOITABLE")
	ProbablyExploitable = Severity("PROBABLY_EXPLOITABLE")
	NotExploitable      = Severity("NOT_EXPLOITABLE")
	Undefined           = Severity("UNDEFINED")
)

// ExecutionClass is one entry of the taxonomy: classified information
// about a program's abnormal termination. JSON field names follow the
// casrep schema and must stay stable.
type ExecutionClass struct {
	Severity    Severity `json:"Type"`
	ShortName   string   `json:"ShortDescription"`
	Description string   `json:"Description"`
	Explanation string   `json:"Explanation"`
}

func (c ExecutionClass) String() string {
	s := fmt.Sprintf("Severity: %v\nShort description: %v\nDescription: %v",
		c.Severity, c.ShortName, c.Description)
	if c.Explanation != "" {
		s += fmt.Sprintf("\nExplanation: %v", c.Explanation)
	}
	return s
}

// AccessKind describes the direction of the faulting memory access,
// when the upstream diagnostic reveals it.
type AccessKind int

const (
	AccessUndef AccessKind = iota
	AccessRead
	AccessWrite
)

func (a AccessKind) String() string {
	switch a {
	case AccessRead:
		return "READ"
	case AccessWrite:
		return "WRITE"
	default:
		return "UNDEF"
	}
}

// ErrClassNotFound means no taxonomy entry matched the queried name.
// Callers keep the default Undefined class and continue.
var ErrClassNotFound = errors.New("execution class not found")

// Find returns the taxonomy entry with the given short name.
func Find(shortName string) (ExecutionClass, error) {
	for _, class := range classes {
		if class.ShortName == shortName {
			return class, nil
		}
	}
	return Default(), fmt.Errorf("%w: %q", ErrClassNotFound, shortName)
}

// Default returns the Undefined class used until classification succeeds.
func Default() ExecutionClass {
	return ExecutionClass{
		Severity:    Undefined,
		ShortName:   "Undefined",
		Description: "Undefined class",
		Explanation: "There is no execution class for this type of exception.",
	}
}

// deriveRule resolves check names that need contextual refinement
// before an exact table lookup applies. Rules are evaluated in order,
// first match wins.
type deriveRule struct {
	applies func(shortName string) bool
	resolve func(shortName string, access AccessKind, nearNull bool) (ExecutionClass, error)
}

var deriveRules = []deriveRule{
	{
		applies: func(name string) bool { return name == "SEGV" },
		resolve: func(_ string, access AccessKind, nearNull bool) (ExecutionClass, error) {
			switch {
			case access == AccessRead && !nearNull:
				return Find("SourceAv")
			case access == AccessRead && nearNull:
				return Find("SourceAvNearNull")
			case access == AccessWrite && !nearNull:
				return Find("DestAv")
			case access == AccessWrite && nearNull:
				return Find("DestAvNearNull")
			default:
				return Find("AccessViolation")
			}
		},
	},
	{
		applies: func(name string) bool { return name == "stack-overflow" },
		resolve: func(string, AccessKind, bool) (ExecutionClass, error) {
			return Find("StackOverflow")
		},
	},
	{
		// "deadly" is an artifact of upstream reports where the signal
		// name loses its surrounding spacing ("deadly signal").
		applies: func(name string) bool { return name == "deadly" },
		resolve: func(string, AccessKind, bool) (ExecutionClass, error) {
			return Find("AbortSignal")
		},
	},
	{
		applies: func(string) bool { return true },
		resolve: func(name string, access AccessKind, _ bool) (ExecutionClass, error) {
			// Part of the table carries (read)/(write) qualified
			// variants; try the refined name first, then the bare one.
			switch access {
			case AccessRead:
				if class, err := Find(name + "(read)"); err == nil {
					return class, nil
				}
			case AccessWrite:
				if class, err := Find(name + "(write)"); err == nil {
					return class, nil
				}
			}
			return Find(name)
		},
	},
}

// Derive resolves a sanitizer/signal check name together with access
// direction and the near-null heuristic into a taxonomy entry.
func Derive(shortName string, access AccessKind, nearNull bool) (ExecutionClass, error) {
	for _, rule := range deriveRules {
		if rule.applies(shortName) {
			return rule.resolve(shortName, access, nearNull)
		}
	}
	return Default(), fmt.Errorf("%w: %q", ErrClassNotFound, shortName)
}

// FromSignal classifies a crash by its fatal signal number. Access
// direction and near-null may come from debugger output when available.
func FromSignal(sig int, access AccessKind, nearNull bool) (ExecutionClass, error) {
	switch sig {
	case 4: // SIGILL
		return Find("BadInstruction")
	case 6: // SIGABRT
		return Find("AbortSignal")
	case 11: // SIGSEGV
		return Derive("SEGV", access, nearNull)
	default:
		return Default(), fmt.Errorf("%w: signal %v", ErrClassNotFound, sig)
	}
}
