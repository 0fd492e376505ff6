package monitors

import (
	"errors"
	"testing"

	"github.com/1broseidon/cursorlock/internal/platform"
)

func mon(id uint32, name string, left, top, right, bottom int) platform.Monitor {
	return platform.Monitor{
		ID:     platform.MonitorID(id),
		Name:   name,
		Bounds: platform.Rect{Left: left, Top: top, Right: right, Bottom: bottom},
	}
}

func TestNew_SortsAscendingByLeft(t *testing.T) {
	cat := New([]platform.Monitor{
		mon(3, "DP-2", 1920, 0, 3840, 1080),
		mon(1, "eDP-1", -1280, 0, 0, 720),
		mon(2, "DP-1", 0, 0, 1920, 1080),
	})

	wantNames := []string{"eDP-1", "DP-1", "DP-2"}
	if cat.Len() != len(wantNames) {
		t.Fatalf("Len() = %d, want %d", cat.Len(), len(wantNames))
	}
	for i, want := range wantNames {
		if got := cat.Get(i).Name; got != want {
			t.Errorf("catalog[%d] = %s, want %s", i, got, want)
		}
	}
}

func TestNew_StableSortKeepsEnumerationOrderOnTies(t *testing.T) {
	// Two monitors stacked vertically share the same left coordinate.
	cat := New([]platform.Monitor{
		mon(1, "top", 0, 0, 1920, 1080),
		mon(2, "bottom", 0, 1080, 1920, 2160),
	})

	if cat.Get(0).Name != "top" || cat.Get(1).Name != "bottom" {
		t.Fatalf("tie order changed: got [%s, %s]", cat.Get(0).Name, cat.Get(1).Name)
	}
}

func TestIndexAt(t *testing.T) {
	cat := New([]platform.Monitor{
		mon(1, "left", 0, 0, 1920, 1080),
		mon(2, "right", 1920, 0, 3840, 1080),
	})

	if i, ok := cat.IndexAt(platform.Point{X: 500, Y: 500}); !ok || i != 0 {
		t.Fatalf("IndexAt(500,500) = %d,%v, want 0,true", i, ok)
	}
	// The shared boundary column belongs to the right monitor (half-open).
	if i, ok := cat.IndexAt(platform.Point{X: 1920, Y: 500}); !ok || i != 1 {
		t.Fatalf("IndexAt(1920,500) = %d,%v, want 1,true", i, ok)
	}
	if _, ok := cat.IndexAt(platform.Point{X: 5000, Y: 5000}); ok {
		t.Fatal("IndexAt outside all monitors should not resolve")
	}
}

func TestResolve(t *testing.T) {
	cat := New([]platform.Monitor{
		mon(1, "left", 0, 0, 1920, 1080),
		mon(2, "right", 1920, 0, 3840, 1080),
	})

	t.Run("empty input picks current monitor", func(t *testing.T) {
		m, err := Resolve("\n", cat, 1, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Name != "right" {
			t.Fatalf("resolved %s, want right", m.Name)
		}
	})

	t.Run("empty input without current monitor is fatal", func(t *testing.T) {
		_, err := Resolve("", cat, 0, false)
		if !errors.Is(err, ErrNoCurrentMonitor) {
			t.Fatalf("err = %v, want ErrNoCurrentMonitor", err)
		}
	})

	t.Run("in-range index is one-based", func(t *testing.T) {
		m, err := Resolve("2", cat, 0, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Name != "right" {
			t.Fatalf("resolved %s, want right", m.Name)
		}
	})

	for _, input := range []string{"0", "3", "-1", "abc", "1.5"} {
		t.Run("invalid input "+input, func(t *testing.T) {
			_, err := Resolve(input, cat, 0, true)
			if !errors.Is(err, ErrInvalidSelection) {
				t.Fatalf("Resolve(%q) err = %v, want ErrInvalidSelection", input, err)
			}
		})
	}
}

func TestEnumerate_ZeroMonitorsIsFatal(t *testing.T) {
	_, err := Enumerate(emptyBackend{})
	if !errors.Is(err, ErrNoMonitors) {
		t.Fatalf("err = %v, want ErrNoMonitors", err)
	}
}

type emptyBackend struct{}

func (emptyBackend) Monitors() ([]platform.Monitor, error)                   { return nil, nil }
func (emptyBackend) CursorPosition() (platform.Point, bool)                  { return platform.Point{}, false }
func (emptyBackend) MonitorRectAtPoint(platform.Point) (platform.Rect, bool) { return platform.Rect{}, false }
func (emptyBackend) SetClip(platform.Rect) error                             { return nil }
func (emptyBackend) ClearClip() error                                        { return nil }
func (emptyBackend) KeyIsDown(platform.Key) bool                             { return false }
func (emptyBackend) Close()                                                  {}
