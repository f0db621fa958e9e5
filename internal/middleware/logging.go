package middleware

import (
	"log/slog"

	"github.com/mcoot/blockdrop/internal/dependencies/clock"
	"github.com/mcoot/blockdrop/internal/model"
	"github.com/mcoot/blockdrop/internal/services/engine"
)

// Middleware wraps an engine event listener
type Middleware func(next engine.Listener) engine.Listener

// Chain wraps listener so that the first middleware sees each event first
func Chain(listener engine.Listener, middlewares ...Middleware) engine.Listener {
	for i := len(middlewares) - 1; i >= 0; i-- {
		listener = middlewares[i](listener)
	}
	return listener
}

// Logging creates middleware that logs each event and how long the listener took
func Logging(logger *slog.Logger, clk clock.Clock) Middleware {
	return func(next engine.Listener) engine.Listener {
		return engine.ListenerFunc(func(event model.Event) {
			start := clk.Now()

			next.OnEvent(event)

			logger.Debug("engine event",
				slog.String("type", string(event.Type)),
				slog.Duration("duration", clk.Now().Sub(start)),
			)
		})
	}
}
