package config

import (
	"context"
	"io"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init configures the standard logrus logger. It must run before any
// request is served.
func Init(s *Settings) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	var out io.Writer = os.Stdout
	if s.LogFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   s.LogFile,
			MaxSize:    s.LogMaxSizeMB,
			MaxBackups: 3,
			Compress:   true,
		})
	}
	logrus.SetOutput(out)
}

// WithContext returns a logger entry tagged with the request id set by
// chi's middleware.RequestID, when there is one.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(logrus.StandardLogger())
	if id := middleware.GetReqID(ctx); id != "" {
		entry = entry.WithField("request_id", id)
	}
	return entry
}
