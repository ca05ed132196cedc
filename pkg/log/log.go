// Copyright 2026 crashrep project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package log builds the zap logger used across the tool. Logging is
// silent unless a level is requested, so report output on stdout stays
// machine-readable.
package log

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelEnvVar overrides the log level when no flag is given.
const LevelEnvVar = "CRASHREP_LOG_LEVEL"

// New returns a logger for the requested level. An empty level falls
// back to CRASHREP_LOG_LEVEL, and then to a nop logger.
func New(level string) (*zap.Logger, error) {
	if level == "" {
		level = os.Getenv(LevelEnvVar)
	}
	if level == "" {
		return zap.NewNop(), nil
	}
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level %q (use debug, info, warn or error)", level)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
