package platform

import "fmt"

// Point is a position in virtual-screen coordinates. Coordinates can be
// negative (e.g. a monitor placed left of or above the primary).
type Point struct {
	X int
	Y int
}

// Rect describes a rectangular region in virtual-screen coordinates.
// Right and Bottom are exclusive. A valid Rect has Right > Left and
// Bottom > Top.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Width returns the horizontal extent in pixels.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the vertical extent in pixels.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Contains reports whether p lies inside r, half-open on all four sides.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// edgeMargin is the tolerance used to decide the cursor has reached a
// rectangle boundary.
const edgeMargin = 1

// AtEdge reports whether p is within one unit of any of r's four sides.
func (r Rect) AtEdge(p Point) bool {
	return p.X <= r.Left+edgeMargin || p.X >= r.Right-edgeMargin ||
		p.Y <= r.Top+edgeMargin || p.Y >= r.Bottom-edgeMargin
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}
