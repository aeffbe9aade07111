package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/you-humble/rocket-maintenance/autoparts/platform/console"
	"github.com/you-humble/rocket-maintenance/autoparts/platform/logger"
)

type InfoLogger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
}

func Logging(log InfoLogger) console.Middleware {
	return func(next console.ActionHandler) console.ActionHandler {
		return func(ctx context.Context, action console.Action) error {
			ctx = logger.WithFields(ctx,
				zap.Int("option", action.Option),
				zap.String("action", action.Name),
			)
			start := time.Now()

			err := next(ctx, action)

			fields := []zap.Field{zap.Duration("dur", time.Since(start))}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}
			log.Info(ctx, "menu action handled", fields...)
			return err
		}
	}
}
