// Package logging builds the process logger. The terminal belongs to the
// game while it runs, so records only ever go to a rotating file.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-term/internal/config"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 14
)

func Level(cfg config.Logging) (logrus.Level, error) {
	if cfg.Level == "" {
		if cfg.Development {
			return logrus.DebugLevel, nil
		}
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return 0, fmt.Errorf("invalid log level: %w", err)
	}
	return level, nil
}

func New(cfg config.Logging) (*logrus.Logger, error) {
	level, err := Level(cfg)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true})

	if cfg.File == "" {
		return log, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.File,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Level:      level,
		Formatter: &logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open log file %s: %w", cfg.File, err)
	}
	log.AddHook(hook)

	return log, nil
}
