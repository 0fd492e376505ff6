package platform

// MonitorID is an opaque platform-provided display identifier. It is a weak
// reference into display-server state and may go stale if the monitor
// topology changes; a topology change requires a restart.
type MonitorID uint32

// Monitor describes a physical display and its bounding rectangle.
type Monitor struct {
	ID     MonitorID
	Name   string
	Bounds Rect
}

// Key identifies one of the tracked control keys.
type Key int

const (
	// KeyReleasePrimary requests a release of the lock (Control).
	KeyReleasePrimary Key = iota
	// KeyReleaseSecondary requests a release of the lock (left Alt).
	KeyReleaseSecondary
	// KeyReassign moves the lock to the monitor under the cursor (F11).
	KeyReassign
)

// Backend abstracts the display-server operations the confinement loop needs.
type Backend interface {
	// Monitors returns all active displays.
	Monitors() ([]Monitor, error)

	// CursorPosition returns the pointer position in virtual-screen
	// coordinates, or false when the query fails this instant.
	CursorPosition() (Point, bool)

	// MonitorRectAtPoint resolves the bounding rectangle of the monitor
	// containing (or nearest to) p, or false when none resolves.
	MonitorRectAtPoint(p Point) (Rect, bool)

	// SetClip restricts the cursor's reachable area to r.
	SetClip(r Rect) error

	// ClearClip lifts any active restriction.
	ClearClip() error

	// KeyIsDown reports whether the given control key is currently held.
	KeyIsDown(k Key) bool

	// Close releases the display-server connection.
	Close()
}
