package factory

import (
	"time"

	"github.com/mcoot/blockdrop/internal/dependencies/mocks"
	"github.com/mcoot/blockdrop/internal/model"
	"github.com/mcoot/blockdrop/internal/services/engine"
	"github.com/mcoot/blockdrop/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// tags are queued before the engine starts, so the first is the active piece
// and the second is next. Further draws default to T unless queued.
func NewTestApp(tags ...model.PieceTag) *TestApp {
	return NewTestAppWithConfig(engine.DefaultConfig(), tags...)
}

// NewTestAppWithConfig is NewTestApp with a custom engine config
func NewTestAppWithConfig(cfg engine.Config, tags ...model.PieceTag) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockRandom.QueueTags(tags...)

	app, err := newWithDependencies(mockClock, mockRandom, cfg, testutil.NopLogger())
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// SetBoard replaces the engine's settled blocks with rows (bottom-aligned)
func (t *TestApp) SetBoard(rows ...string) {
	cfg := t.Engine.Config()
	if err := t.Engine.SetBoard(testutil.BoardFromRows(cfg.Width, cfg.Height, rows...)); err != nil {
		panic(err)
	}
}

// Drop soft-drops the active piece as far as it goes, then ticks gravity once
// so it locks. Returns the number of rows dropped.
func (t *TestApp) Drop() int {
	drops := 0
	for t.Engine.ApplyCommand(model.CommandSoftDrop) {
		drops++
	}
	t.Engine.Tick(t.Engine.Config().DropInterval + time.Millisecond)
	return drops
}
