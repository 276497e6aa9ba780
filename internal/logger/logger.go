package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "storytrip"

// Config holds logger settings.
type Config struct {
	Level      string // debug, info, warn, error
	Encoding   string // json or console; console by default in development
	OutputPath string // stdout when empty
	Env        string
	Component  string // server, cli
}

func (c Config) encoding() string {
	switch enc := strings.ToLower(c.Encoding); enc {
	case "console", "json":
		return enc
	case "":
		if c.Env == "development" {
			return "console"
		}
	}
	return "json"
}

func (c Config) level() zap.AtomicLevel {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if c.Level == "" {
		return level
	}
	if err := level.UnmarshalText([]byte(strings.ToLower(c.Level))); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q, using info: %v\n", c.Level, err)
		level.SetLevel(zap.InfoLevel)
	}
	return level
}

// New builds the process logger. Every entry carries service, env and
// component fields so server and CLI output can be told apart.
func New(cfg Config) (*zap.Logger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	encoding := cfg.encoding()
	if encoding == "console" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	outputPath := cfg.OutputPath
	if outputPath == "" {
		outputPath = "stdout"
	}

	fields := map[string]interface{}{"service": serviceName}
	if cfg.Env != "" {
		fields["env"] = cfg.Env
	}
	if cfg.Component != "" {
		fields["component"] = cfg.Component
	}

	zapConfig := zap.Config{
		Level:             cfg.level(),
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{outputPath},
		ErrorOutputPaths:  []string{"stderr"},
		InitialFields:     fields,
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
