package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
)

// Keycodes resolves a keysym name (e.g. "Control_L", "F11") to the keycodes
// bound to it in the current keyboard mapping. The result may be empty.
func (c *Connection) Keycodes(keysym string) []xproto.Keycode {
	return keybind.StrToKeycodes(c.XUtil, keysym)
}

// Keymap returns the server's bitmask of currently depressed keycodes
// (32 bytes, one bit per keycode). ok is false when the query fails.
func (c *Connection) Keymap() ([]byte, bool) {
	reply, err := xproto.QueryKeymap(c.XUtil.Conn()).Reply()
	if err != nil {
		return nil, false
	}
	return reply.Keys, true
}

// KeycodeDown reports whether keycode kc is set in a Keymap bitmask.
func KeycodeDown(keymap []byte, kc xproto.Keycode) bool {
	idx := int(kc) / 8
	if idx >= len(keymap) {
		return false
	}
	return keymap[idx]&(1<<(uint(kc)%8)) != 0
}
