// Package logging builds the console logger used by the typescale CLI.
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level selects how much the CLI logs.
type Level int

const (
	LevelQuiet  Level = iota // nothing
	LevelNormal              // info and above
	LevelDebug               // everything
)

// LevelFor maps the --quiet and --verbose flags to a Level. Quiet wins.
func LevelFor(quiet, verbose bool) Level {
	switch {
	case quiet:
		return LevelQuiet
	case verbose:
		return LevelDebug
	default:
		return LevelNormal
	}
}

// New returns a console logger writing to stderr.
func New(level Level) *zap.Logger {
	return NewWithWriter(os.Stderr, level, colorEnabled(os.Stderr))
}

// NewWithWriter returns a console logger writing to w. Timestamps and caller
// info are omitted; the output is meant for people, not log shippers.
func NewWithWriter(w io.Writer, level Level, color bool) *zap.Logger {
	if level == LevelQuiet {
		return zap.NewNop()
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	if color {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	threshold := zapcore.InfoLevel
	if level == LevelDebug {
		threshold = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(w), zap.NewAtomicLevelAt(threshold))
	return zap.New(core)
}

func colorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
