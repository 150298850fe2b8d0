package gridLayout

// Rect is an axis-aligned rectangle in pixels
type Rect struct {
	X, Y, W, H int32
}

// Contains reports whether the point lies inside r. The right and bottom
// edges are exclusive.
func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the middle point of r
func (r Rect) Center() (int32, int32) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Layout places uniform square tiles row by row
type Layout struct {
	Columns int
	Rows    int
	Rects   []Rect
}

// Compute lays out count square tiles of tileSize starting at (x, y),
// fitting as many columns into width as possible (at least one).
func Compute(count int, x, y, width, tileSize, gap int32) Layout {
	cols := int((width + gap) / (tileSize + gap))
	if cols < 1 {
		cols = 1
	}

	l := Layout{Columns: cols, Rects: make([]Rect, count)}
	if count > 0 {
		l.Rows = (count + cols - 1) / cols
	}

	for i := range l.Rects {
		row := int32(i / cols)
		col := int32(i % cols)
		l.Rects[i] = Rect{
			X: x + col*(tileSize+gap),
			Y: y + row*(tileSize+gap),
			W: tileSize,
			H: tileSize,
		}
	}

	return l
}

// HitTest returns the index of the tile under (x, y), or -1 for gaps and
// points outside the grid
func (l Layout) HitTest(x, y int32) int {
	for i, r := range l.Rects {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Height returns the total height the rows occupy
func (l Layout) Height() int32 {
	if len(l.Rects) == 0 {
		return 0
	}
	last := l.Rects[len(l.Rects)-1]
	return last.Y + last.H - l.Rects[0].Y
}
