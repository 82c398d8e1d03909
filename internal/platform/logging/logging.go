package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ogurasousui/codex-grpc-hr/internal/platform/config"
	"github.com/sirupsen/logrus"
)

// New は設定に従って logrus.Logger を構築します。出力先は標準エラーです。
func New(cfg config.LogConfig) (*logrus.Logger, error) {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput は出力先を指定して logrus.Logger を構築します。
func NewWithOutput(cfg config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: parse level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)

	switch cfg.Format {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	default:
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	}

	return logger, nil
}
