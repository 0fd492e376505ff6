package monitors

import (
	"errors"
	"fmt"
	"sort"

	"github.com/1broseidon/cursorlock/internal/platform"
)

// ErrNoMonitors is returned when the display server reports zero monitors.
var ErrNoMonitors = errors.New("no monitors detected")

// Catalog is an ordered, immutable list of monitor geometries. Entries are
// sorted ascending by the left coordinate so numbering stays stable across
// runs on an unchanged topology. Built once at startup; a topology change
// requires a restart.
type Catalog struct {
	entries []platform.Monitor
}

// New builds a catalog from an enumeration result. The sort is stable so
// monitors sharing a left coordinate keep their enumeration order.
func New(list []platform.Monitor) Catalog {
	entries := make([]platform.Monitor, len(list))
	copy(entries, list)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Bounds.Left < entries[j].Bounds.Left
	})
	return Catalog{entries: entries}
}

// Enumerate queries the backend for all active monitors and builds the
// catalog. Zero monitors is fatal to the caller.
func Enumerate(backend platform.Backend) (Catalog, error) {
	list, err := backend.Monitors()
	if err != nil {
		return Catalog{}, fmt.Errorf("enumerate monitors: %w", err)
	}
	if len(list) == 0 {
		return Catalog{}, ErrNoMonitors
	}
	return New(list), nil
}

// Len returns the number of monitors.
func (c Catalog) Len() int {
	return len(c.entries)
}

// Get returns the monitor at catalog position i.
func (c Catalog) Get(i int) platform.Monitor {
	return c.entries[i]
}

// All returns the catalog entries in order.
func (c Catalog) All() []platform.Monitor {
	return c.entries
}

// IndexAt returns the catalog position of the monitor whose rectangle
// contains p (half-open containment), or false if p lies on no monitor.
func (c Catalog) IndexAt(p platform.Point) (int, bool) {
	for i, m := range c.entries {
		if m.Bounds.Contains(p) {
			return i, true
		}
	}
	return 0, false
}
