package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/mcoot/blockdrop/internal/model"
	"github.com/mcoot/blockdrop/internal/services/engine"
)

// PanicHandler is called with the event whose listener panicked
type PanicHandler func(event model.Event, err any)

// Recovery creates middleware that stops a panicking listener from unwinding
// into the engine. handler may be nil.
func Recovery(logger *slog.Logger, handler PanicHandler) Middleware {
	return func(next engine.Listener) engine.Listener {
		return engine.ListenerFunc(func(event model.Event) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
						slog.String("event", string(event.Type)),
					)

					if handler != nil {
						handler(event, err)
					}
				}
			}()

			next.OnEvent(event)
		})
	}
}
