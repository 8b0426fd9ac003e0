package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds a logrus logger from the log section. When File is set the
// output rotates through lumberjack; otherwise it goes to fallback.
func (c LogConfig) NewLogger(fallback io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	l := logrus.New()
	l.SetLevel(level)

	switch c.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("log format %q: want text or json", c.Format)
	}

	if c.File != "" {
		l.SetOutput(&lumberjack.Logger{
			Filename:   c.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	} else if fallback != nil {
		l.SetOutput(fallback)
	} else {
		l.SetOutput(os.Stderr)
	}
	return l, nil
}
