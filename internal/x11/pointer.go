package x11

import (
	"github.com/BurntSushi/xgb/xproto"
)

// PointerPosition returns the cursor position relative to the root window.
// ok is false when the query fails (e.g. the server is momentarily grabbed).
func (c *Connection) PointerPosition() (x, y int, ok bool) {
	pointer, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return 0, 0, false
	}
	return int(pointer.RootX), int(pointer.RootY), true
}

// WarpPointer moves the cursor to absolute root-window coordinates.
func (c *Connection) WarpPointer(x, y int) error {
	return xproto.WarpPointerChecked(
		c.XUtil.Conn(),
		xproto.WindowNone, // no source confinement
		c.Root,
		0, 0, 0, 0,
		int16(x), int16(y),
	).Check()
}
