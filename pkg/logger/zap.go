package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
	debug bool
}

// NewZapLogger — создаёт логгер: prod/dev-конфигурация zap,
// debug=true опускает уровень до Debug (детальная диагностика выгрузки).
func NewZapLogger(isProd, debug bool) (*ZapLogger, func() error, error) {
	var cfg zap.Config
	if isProd {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}

	loggerWrap := &ZapLogger{
		base:  logger,
		sugar: logger.Sugar(),
		debug: debug,
	}

	cleanup := func() error { return loggerWrap.base.Sync() }
	return loggerWrap, cleanup, nil
}

func (z *ZapLogger) Infof(_ context.Context, format string, args ...any) {
	z.sugar.Infof(format, args...)
}
func (z *ZapLogger) Warnf(_ context.Context, format string, args ...any) {
	z.sugar.Warnf(format, args...)
}
func (z *ZapLogger) Errorf(_ context.Context, format string, args ...any) {
	z.sugar.Errorf(format, args...)
}

// Debugf — пишет только при включённом debug-флаге: подробности
// выгрузки (payload, шаги транзакции) не должны попадать в обычные логи.
func (z *ZapLogger) Debugf(_ context.Context, format string, args ...any) {
	if !z.debug {
		return
	}
	z.sugar.Debugf(format, args...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
