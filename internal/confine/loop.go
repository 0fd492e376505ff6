package confine

import (
	"context"
	"log/slog"
	"time"

	"github.com/1broseidon/cursorlock/internal/platform"
)

// TickInterval is the confinement poll period: one cursor/key poll and one
// state-machine step every 16ms (~60 checks per second).
const TickInterval = 16 * time.Millisecond

// Loop drives the confinement state machine at a fixed cadence.
type Loop struct {
	backend  platform.Backend
	state    *State
	logger   *slog.Logger
	interval time.Duration
}

// NewLoop creates a polling loop around an initialized state.
func NewLoop(backend platform.Backend, state *State, logger *slog.Logger) *Loop {
	return &Loop{
		backend:  backend,
		state:    state,
		logger:   logger,
		interval: TickInterval,
	}
}

// Run polls until the context is cancelled. The clip is not cleared here;
// the caller owns release-on-exit.
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger.Info("confinement loop started", "interval", l.interval)

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("confinement loop stopped")
			return
		case <-ticker.C:
			l.tick()
		}
	}
}

// tick performs a single poll-and-step pass. A failed cursor query skips the
// whole tick; state is unchanged and the next cycle retries.
func (l *Loop) tick() {
	cursor, ok := l.backend.CursorPosition()
	if !ok {
		return
	}

	in := Input{
		Cursor: cursor,
		ReleaseDown: l.backend.KeyIsDown(platform.KeyReleasePrimary) ||
			l.backend.KeyIsDown(platform.KeyReleaseSecondary),
		ReassignDown: l.backend.KeyIsDown(platform.KeyReassign),
	}
	Step(l.state, in, l.backend, l.logger)
}
