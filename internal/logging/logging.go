// Package logging wraps zap for fman's debug logging. Logging is off by
// default; commands run inside editor keybindings, so nothing may be
// written to the terminal unless asked for.
package logging

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const stateDir = "~/.local/state/fman"

// New creates a logger writing to file at the given level. An empty file
// path yields a no-op logger.
func New(level, file string) (*zap.Logger, error) {
	if file == "" {
		return zap.NewNop(), nil
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{file},
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, err := cfg.Build()
	if err != nil {
		// Never let logging setup break a file operation.
		return zap.NewNop(), err
	}
	return logger, nil
}

// DefaultFile returns the log path used by --debug.
func DefaultFile() string {
	dir, err := homedir.Expand(stateDir)
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "fman.log")
}
