package confine

import (
	"log/slog"

	"github.com/1broseidon/cursorlock/internal/platform"
)

// State is the mutable confinement core. It is created once after the
// initial monitor selection, owned by a single polling goroutine, and
// mutated exclusively by Step.
type State struct {
	// Active is the rectangle currently intended for confinement.
	Active platform.Rect
	// Clipped reports whether the platform is configured to restrict the
	// cursor to Active.
	Clipped bool
	// PendingRelease is set when a release was requested and is waiting for
	// the cursor to reach the rectangle edge.
	PendingRelease bool

	prevReleaseDown bool
}

// Input is one tick's observed cursor position and key states.
type Input struct {
	Cursor       platform.Point
	ReleaseDown  bool
	ReassignDown bool
}

// Step advances the state machine by one poll tick. The order of the phases
// matters: reapplication precedes new-input handling so that external
// interference (a focus change can silently drop an active clip) is undone
// before this tick's input is acted on.
//
// Platform command failures are logged and leave the prior confinement state
// in place rather than assuming success.
func Step(st *State, in Input, backend platform.Backend, logger *slog.Logger) {
	// Reapply the clip unconditionally while locked.
	if st.Clipped && !st.PendingRelease {
		if err := backend.SetClip(st.Active); err != nil {
			logger.Warn("failed to reapply clip", "error", err)
		}
	}

	// Rising edge of either release key arms the pending release.
	if in.ReleaseDown && !st.prevReleaseDown {
		st.PendingRelease = true
		logger.Info("release key pressed; will unlock when the cursor reaches the monitor edge")
	}
	st.prevReleaseDown = in.ReleaseDown

	switch {
	case st.Clipped && st.PendingRelease && st.Active.AtEdge(in.Cursor):
		// The only path that lifts confinement: a request alone does not
		// release, the cursor must reach the boundary first.
		if err := backend.ClearClip(); err != nil {
			logger.Warn("failed to clear clip", "error", err)
		} else {
			st.Clipped = false
			logger.Info("clip released; cursor can move to other monitors")
		}
	case !st.Clipped && st.Active.Contains(in.Cursor):
		if err := backend.SetClip(st.Active); err != nil {
			logger.Warn("failed to re-lock", "error", err)
		} else {
			st.Clipped = true
			st.PendingRelease = false
			logger.Info("cursor returned to monitor; re-locked", "rect", st.Active)
		}
	}

	// Reassignment is level-triggered: it fires every tick the key is held,
	// but becomes a no-op once the target rectangle matches Active.
	if in.ReassignDown {
		rect, ok := backend.MonitorRectAtPoint(in.Cursor)
		if ok && rect != st.Active {
			if err := backend.SetClip(rect); err != nil {
				logger.Warn("failed to move clip to monitor under cursor", "error", err)
			} else {
				st.Active = rect
				st.Clipped = true
				st.PendingRelease = false
				logger.Info("lock moved to monitor under cursor", "rect", rect)
			}
		}
	}
}
