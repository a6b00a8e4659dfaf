// Package logger builds the zap logger shared by the server components.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger suited to the deployment profile: JSON for prod,
// console output for dev, and a no-op logger for test.
func New(deployment string, level string) (*zap.Logger, error) {
	var cfg zap.Config

	switch strings.TrimSpace(deployment) {
	case "test":
		return zap.NewNop(), nil
	case "prod":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if lvl := strings.TrimSpace(level); lvl != "" {
		parsed, err := zapcore.ParseLevel(lvl)
		if err != nil {
			return nil, err
		}
		cfg.Level = zap.NewAtomicLevelAt(parsed)
	}

	return cfg.Build(zap.Fields(zap.String("deployment", deployment)))
}
