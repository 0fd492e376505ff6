//go:build linux

package platform

import (
	"fmt"

	"github.com/1broseidon/cursorlock/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
)

// X11Backend implements Backend against an X11 display server.
//
// The X11 core protocol has no direct cursor-clip primitive, so confinement
// is enforced by clamping: while a clip rectangle is set, the backend warps
// the pointer back to the nearest interior point whenever it is found
// outside. The confinement loop reapplies the clip every tick, which makes
// enforcement continuous at the poll rate.
type X11Backend struct {
	conn *x11.Connection
	keys map[Key][]xproto.Keycode
	clip *Rect
}

var _ Backend = (*X11Backend)(nil)

// keysyms are the X11 names behind each control key. Control maps to both
// physical keys; the secondary release key is left Alt only, so right Alt
// (often AltGr) stays free for typing.
var keysyms = map[Key][]string{
	KeyReleasePrimary:   {"Control_L", "Control_R"},
	KeyReleaseSecondary: {"Alt_L"},
	KeyReassign:         {"F11"},
}

// NewLinuxBackendFromDisplay creates a new backend by opening a fresh X11
// connection and resolving the control-key keycodes once.
func NewLinuxBackendFromDisplay() (*X11Backend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}

	b := &X11Backend{
		conn: conn,
		keys: make(map[Key][]xproto.Keycode, len(keysyms)),
	}
	for key, syms := range keysyms {
		var codes []xproto.Keycode
		for _, sym := range syms {
			codes = append(codes, conn.Keycodes(sym)...)
		}
		if len(codes) == 0 {
			conn.Close()
			return nil, fmt.Errorf("keyboard mapping has no keycode for any of %v", syms)
		}
		b.keys[key] = codes
	}
	return b, nil
}

// Close disconnects from the X11 server.
func (b *X11Backend) Close() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// Monitors returns all active displays, unordered.
func (b *X11Backend) Monitors() ([]Monitor, error) {
	mons, err := b.conn.Monitors()
	if err != nil {
		return nil, err
	}

	out := make([]Monitor, 0, len(mons))
	for _, m := range mons {
		out = append(out, Monitor{
			ID:   MonitorID(m.CRTC),
			Name: m.Name,
			Bounds: Rect{
				Left:   m.X,
				Top:    m.Y,
				Right:  m.X + m.Width,
				Bottom: m.Y + m.Height,
			},
		})
	}
	return out, nil
}

// CursorPosition returns the pointer position on the virtual screen.
func (b *X11Backend) CursorPosition() (Point, bool) {
	x, y, ok := b.conn.PointerPosition()
	if !ok {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

// MonitorRectAtPoint resolves the monitor containing p, falling back to the
// nearest monitor when p lies outside every rectangle (matching the usual
// point-to-monitor resolution on other platforms).
func (b *X11Backend) MonitorRectAtPoint(p Point) (Rect, bool) {
	mons, err := b.Monitors()
	if err != nil || len(mons) == 0 {
		return Rect{}, false
	}

	best := 0
	bestDist := -1
	for i, m := range mons {
		if m.Bounds.Contains(p) {
			return m.Bounds, true
		}
		d := distanceSquared(p, m.Bounds)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return mons[best].Bounds, true
}

// SetClip stores r as the active clip rectangle and enforces it immediately.
func (b *X11Backend) SetClip(r Rect) error {
	b.clip = &r
	return b.enforceClip()
}

// ClearClip drops the active clip rectangle.
func (b *X11Backend) ClearClip() error {
	b.clip = nil
	return nil
}

// KeyIsDown reports whether any keycode bound to k is currently depressed.
func (b *X11Backend) KeyIsDown(k Key) bool {
	keymap, ok := b.conn.Keymap()
	if !ok {
		return false
	}
	for _, code := range b.keys[k] {
		if x11.KeycodeDown(keymap, code) {
			return true
		}
	}
	return false
}

// enforceClip warps the pointer back inside the active clip rectangle when
// it has escaped.
func (b *X11Backend) enforceClip() error {
	if b.clip == nil {
		return nil
	}
	x, y, ok := b.conn.PointerPosition()
	if !ok {
		return fmt.Errorf("pointer position unavailable")
	}

	r := *b.clip
	cx := clamp(x, r.Left, r.Right-1)
	cy := clamp(y, r.Top, r.Bottom-1)
	if cx == x && cy == y {
		return nil
	}
	if err := b.conn.WarpPointer(cx, cy); err != nil {
		return fmt.Errorf("warp pointer to %d,%d: %w", cx, cy, err)
	}
	return nil
}

// distanceSquared is the squared distance from p to the closest point of r.
func distanceSquared(p Point, r Rect) int {
	dx := p.X - clamp(p.X, r.Left, r.Right-1)
	dy := p.Y - clamp(p.Y, r.Top, r.Bottom-1)
	return dx*dx + dy*dy
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
