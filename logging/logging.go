// Package logging builds the zap loggers used by the CLI, the HTTP server
// and the analysis service. Graph and algorithm packages never log.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/socialgraph/config"
)

// Logger is a zap logger whose level can be changed at runtime.
type Logger struct {
	*zap.Logger
	level zap.AtomicLevel
}

// New writes JSON to stderr, or console output when cfg.Development is set.
func New(cfg config.Log, fields ...zap.Field) (*Logger, error) {
	return NewWithWriter(os.Stderr, cfg, fields...)
}

// NewWithWriter is New with an explicit sink.
func NewWithWriter(w io.Writer, cfg config.Log, fields ...zap.Field) (*Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	atom := zap.NewAtomicLevelAt(lvl)

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	var enc zapcore.Encoder
	if cfg.Development {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), atom)
	opts := []zap.Option{zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)}
	if cfg.Development {
		opts = append(opts, zap.Development())
	}

	return &Logger{Logger: zap.New(core, opts...).With(fields...), level: atom}, nil
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop(), level: zap.NewAtomicLevelAt(zapcore.FatalLevel)}
}

// SetLevel changes the minimum level of this logger and every child.
func (l *Logger) SetLevel(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	l.level.SetLevel(lvl)

	return nil
}

// Level reports the current minimum level.
func (l *Logger) Level() zapcore.Level { return l.level.Level() }

// ParseLevel accepts debug, info, warn and error; "" means info.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return lvl, fmt.Errorf("logging: level %q: %w", s, err)
	}

	return lvl, nil
}
