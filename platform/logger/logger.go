package logger

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxFieldsKey struct{}

// Logger wraps zap and pulls extra fields out of the context on every call.
type Logger struct {
	zl *zap.Logger
}

var global atomic.Pointer[Logger]

func init() {
	global.Store(&Logger{zl: zap.NewNop()})
}

// Init replaces the global logger. Until it is called every log call is a no-op.
func Init(level string, asJSON bool, outputs ...string) error {
	const op = "logger.Init"

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}
	sink, _, err := zap.Open(outputs...)
	if err != nil {
		return fmt.Errorf("%s: open outputs: %w", op, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if asJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, sink, zap.NewAtomicLevelAt(lvl))
	global.Store(&Logger{zl: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))})

	return nil
}

func L() *Logger { return global.Load() }

// Sync flushes buffered entries of the global logger.
func Sync() error { return L().zl.Sync() }

// WithFields returns a context carrying fields that every log call made
// with it will include.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	prev, _ := ctx.Value(ctxFieldsKey{}).([]Field)
	merged := make([]Field, 0, len(prev)+len(fields))
	merged = append(merged, prev...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, ctxFieldsKey{}, merged)
}

func With(fields ...Field) *Logger { return L().With(fields...) }

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{zl: l.zl.With(fields...)}
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zl.Debug(msg, withContext(ctx, fields)...)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zl.Info(msg, withContext(ctx, fields)...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zl.Error(msg, withContext(ctx, fields)...)
}

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { L().Info(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }

func withContext(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	extra, ok := ctx.Value(ctxFieldsKey{}).([]Field)
	if !ok || len(extra) == 0 {
		return fields
	}
	return append(append(make([]Field, 0, len(extra)+len(fields)), extra...), fields...)
}

// NoopLogger discards everything.
type NoopLogger struct{}

func (NoopLogger) Info(context.Context, string, ...Field)  {}
func (NoopLogger) Error(context.Context, string, ...Field) {}
