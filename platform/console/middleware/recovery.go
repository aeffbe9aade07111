package middleware

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/you-humble/rocket-maintenance/autoparts/platform/console"
)

type ErrorLogger interface {
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

// Recovery turns a panic inside an action into an error so the menu loop survives it.
func Recovery(log ErrorLogger) console.Middleware {
	return func(next console.ActionHandler) console.ActionHandler {
		return func(ctx context.Context, action console.Action) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error(ctx, "Recovered from panic in menu action", zap.Any("error", r))
					err = fmt.Errorf("%v", r)
				}
			}()
			return next(ctx, action)
		}
	}
}
