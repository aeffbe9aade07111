package console

import (
	"context"
)

type (
	Middleware    func(next ActionHandler) ActionHandler
	ActionHandler func(ctx context.Context, action Action) error
)

// Action is one menu selection being executed.
type Action struct {
	Option int
	Name   string
}

// Chain wraps handler so that middlewares[0] runs first.
func Chain(handler ActionHandler, middlewares ...Middleware) ActionHandler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}
