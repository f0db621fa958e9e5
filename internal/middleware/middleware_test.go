package middleware

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/blockdrop/internal/dependencies/mocks"
	"github.com/mcoot/blockdrop/internal/model"
	"github.com/mcoot/blockdrop/internal/services/engine"
	"github.com/mcoot/blockdrop/internal/testutil"
)

func TestChainOrder(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next engine.Listener) engine.Listener {
			return engine.ListenerFunc(func(event model.Event) {
				order = append(order, name)
				next.OnEvent(event)
			})
		}
	}
	listener := Chain(engine.ListenerFunc(func(model.Event) {
		order = append(order, "listener")
	}), tag("outer"), tag("inner"))

	listener.OnEvent(model.Event{Type: model.EventPieceLocked})

	assert.Equal(t, []string{"outer", "inner", "listener"}, order)
}

func TestLoggingRecordsEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	listener := Logging(logger, clk)(engine.ListenerFunc(func(model.Event) {
		clk.Advance(5 * time.Millisecond)
	}))
	listener.OnEvent(model.Event{Type: model.EventRowsCleared})

	assert.Contains(t, buf.String(), `"type":"rows_cleared"`)
	assert.Contains(t, buf.String(), `"duration":5000000`)
}

func TestRecoveryCatchesPanic(t *testing.T) {
	var recovered any
	var seen model.Event
	listener := Recovery(testutil.NopLogger(), func(event model.Event, err any) {
		seen, recovered = event, err
	})(engine.ListenerFunc(func(model.Event) {
		panic("render failed")
	}))

	assert.NotPanics(t, func() {
		listener.OnEvent(model.Event{Type: model.EventGameOver})
	})
	assert.Equal(t, "render failed", recovered)
	assert.Equal(t, model.EventGameOver, seen.Type)
}

func TestRecoveryNilHandler(t *testing.T) {
	listener := Recovery(testutil.NopLogger(), nil)(engine.ListenerFunc(func(model.Event) {
		panic("boom")
	}))

	assert.NotPanics(t, func() {
		listener.OnEvent(model.Event{Type: model.EventGameOver})
	})
}
