// Package logger builds the zap logger used across reliefplan.
package logger

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/reliefplan/config"
)

// New returns a production zap logger for cfg: level parsed from
// cfg.Level, json or console encoding, timestamps in cfg.TimeFormat.
func New(cfg config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	enc := zap.NewProductionEncoderConfig()
	layout := cfg.TimeFormat
	if layout == "" {
		layout = time.RFC3339Nano
	}
	enc.EncodeTime = zapcore.TimeEncoderOfLayout(layout)

	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         cfg.Format,
		EncoderConfig:    enc,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return zc.Build()
}
