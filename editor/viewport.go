package editor

import "pocketedit/buffer"

// Viewport is the visible window onto the buffer.
type Viewport struct {
	OriginRow, OriginCol int
	Rows, Cols           int
}

// ScrollIndicator is the thumb of the scroll bar, in track cells. A zero
// Size means everything fits and the indicator is hidden.
type ScrollIndicator struct {
	Offset, Size int
}

func NewViewport(rows, cols int) Viewport {
	v := Viewport{}
	v.Resize(rows, cols)
	return v
}

func (v *Viewport) Resize(rows, cols int) {
	v.Rows = max(rows, 1)
	v.Cols = max(cols, 1)
}

// Reframe moves the origin the minimum distance needed for cur to fall
// inside [origin, origin+size) on both axes.
func (v *Viewport) Reframe(cur buffer.Position) {
	if cur.Row < v.OriginRow {
		v.OriginRow = cur.Row
	} else if cur.Row > v.OriginRow+v.Rows-1 {
		v.OriginRow = cur.Row - v.Rows + 1
	}

	if cur.Col-v.OriginCol > v.Cols-1 {
		v.OriginCol = cur.Col - (v.Cols - 1)
	} else if cur.Col-v.OriginCol < 0 {
		v.OriginCol = cur.Col
	}
}

// Contains reports whether pos is on screen.
func (v *Viewport) Contains(pos buffer.Position) bool {
	return pos.Row >= v.OriginRow && pos.Row < v.OriginRow+v.Rows &&
		pos.Col >= v.OriginCol && pos.Col < v.OriginCol+v.Cols
}

// ScrollIndicator maps the visible rows onto a track of the given length.
func (v *Viewport) ScrollIndicator(totalLines, track int) ScrollIndicator {
	if track <= 0 || totalLines <= 0 || v.Rows >= totalLines {
		return ScrollIndicator{}
	}
	size := track * v.Rows / totalLines
	if size < 1 {
		size = 1
	}
	offset := track * v.OriginRow / totalLines
	if offset+size > track {
		offset = track - size
	}
	if offset < 0 {
		offset = 0
	}
	return ScrollIndicator{Offset: offset, Size: size}
}
