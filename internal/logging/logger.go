// Package logging builds the zap logger used by the infnum command.
package logging

import (
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.Logger
	level zap.AtomicLevel
}

// Config is read from INFNUM_LOG_LEVEL and INFNUM_LOG_DEV.
type Config struct {
	Level       string `envconfig:"LEVEL" default:"warn"`
	Development bool   `envconfig:"DEV" default:"false"`
}

// ConfigFromEnv loads Config from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("infnum_log", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func New(cfg Config) (*Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	atom := zap.NewAtomicLevelAt(level)
	zapCfg := zap.Config{
		Level:             atom,
		Development:       cfg.Development,
		Encoding:          encodingFormat(cfg.Development),
		EncoderConfig:     encoderConfig(cfg.Development),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: !cfg.Development,
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{Logger: logger, level: atom}, nil
}

// NewDefault builds a logger from the environment, falling back to a no-op
// logger if the environment is unusable.
func NewDefault() *Logger {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return Nop()
	}
	logger, err := New(cfg)
	if err != nil {
		return Nop()
	}
	return logger
}

func Nop() *Logger {
	return &Logger{Logger: zap.NewNop(), level: zap.NewAtomicLevelAt(zapcore.FatalLevel)}
}

// SetLevel changes the minimum enabled level of l and every logger
// derived from it.
func (l *Logger) SetLevel(level zapcore.Level) { l.level.SetLevel(level) }

func (l *Logger) Level() zapcore.Level { return l.level.Level() }

func parseLevel(level string) (zapcore.Level, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel, err
	}
	return l, nil
}

func encodingFormat(development bool) string {
	if development {
		return "console"
	}
	return "json"
}

func encoderConfig(development bool) zapcore.EncoderConfig {
	if development {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg
	}
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.MessageKey = "message"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}
