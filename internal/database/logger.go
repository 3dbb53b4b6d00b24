package database

import (
	"context"
	"errors"
	"time"

	"github.com/saulo-duarte/acervo-api/internal/config"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Logger routes gorm's SQL log through logrus. Failed statements are
// logged at error level, slow ones at warn, the rest at debug.
type Logger struct {
	SlowThreshold time.Duration
	Level         logger.LogLevel
}

func NewLogger(slow time.Duration, level logger.LogLevel) *Logger {
	return &Logger{SlowThreshold: slow, Level: level}
}

func (l *Logger) LogMode(level logger.LogLevel) logger.Interface {
	cp := *l
	cp.Level = level
	return &cp
}

func (l *Logger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.Level >= logger.Info {
		config.WithContext(ctx).Infof(msg, args...)
	}
}

func (l *Logger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.Level >= logger.Warn {
		config.WithContext(ctx).Warnf(msg, args...)
	}
}

func (l *Logger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.Level >= logger.Error {
		config.WithContext(ctx).Errorf(msg, args...)
	}
}

func (l *Logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.Level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"sql":        sql,
		"rows":       rows,
		"elapsed_ms": elapsed.Milliseconds(),
	})

	switch {
	case err != nil && l.Level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		log.WithError(err).Error("Falha ao executar SQL")
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold && l.Level >= logger.Warn:
		log.Warn("SQL lento")
	case l.Level >= logger.Info:
		log.Debug("SQL executado")
	}
}
