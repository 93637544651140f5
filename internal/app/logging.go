package app

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a console logger writing to stderr at the given level.
// "off" and "" return a no-op logger.
func NewLogger(level string) (*zap.Logger, error) {
	return newLogger(zapcore.Lock(os.Stderr), level)
}

// NewFileLogger builds a console logger appending to path, for sessions
// that own the terminal. The returned func closes the file.
func NewFileLogger(path, level string) (*zap.Logger, func(), error) {
	sink, closeSink, err := zap.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	logger, err := newLogger(sink, level)
	if err != nil {
		closeSink()
		return nil, nil, err
	}
	return logger, func() {
		_ = logger.Sync()
		closeSink()
	}, nil
}

func newLogger(w zapcore.WriteSyncer, level string) (*zap.Logger, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" || level == "off" {
		return zap.NewNop(), nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), w, lvl)
	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel)), nil
}
