package buffer

// Selection is an anchor/extent pair. Either endpoint may be unset; a
// selection only exists once both are. The endpoints are kept in the order
// they were set and normalized on every query.
type Selection struct {
	anchor  *Position
	extent  *Position
	holding bool
}

// LinePartition splits one visible line into unselected, selected and
// unselected spans, counted in characters.
type LinePartition struct {
	Before, Selected, After int
}

// Start drops any previous selection and anchors a new one at pos.
func (s *Selection) Start(pos Position) {
	p := pos
	s.anchor = &p
	s.extent = nil
	s.holding = true
}

// Extend moves the extent to pos. The anchor is left where it is, and may
// still be unset.
func (s *Selection) Extend(pos Position) {
	p := pos
	s.extent = &p
}

// Release ends the extend gesture; the selected range stays visible.
func (s *Selection) Release() {
	s.holding = false
}

func (s *Selection) Clear() {
	s.anchor = nil
	s.extent = nil
	s.holding = false
}

// Holding reports whether moves should extend the selection.
func (s *Selection) Holding() bool {
	return s.holding
}

func (s *Selection) Active() bool {
	return s.anchor != nil && s.extent != nil
}

func (s *Selection) Anchor() (Position, bool) {
	if s.anchor == nil {
		return Position{}, false
	}
	return *s.anchor, true
}

func (s *Selection) Extent() (Position, bool) {
	if s.extent == nil {
		return Position{}, false
	}
	return *s.extent, true
}

// Bounds returns the normalized start and end of the selection.
func (s *Selection) Bounds() (start, end Position, ok bool) {
	if !s.Active() {
		return Position{}, Position{}, false
	}
	if s.extent.Before(*s.anchor) {
		return *s.extent, *s.anchor, true
	}
	return *s.anchor, *s.extent, true
}

// Contains reports whether pos lies in [start, end).
func (s *Selection) Contains(pos Position) bool {
	start, end, ok := s.Bounds()
	if !ok {
		return false
	}
	return !pos.Before(start) && pos.Before(end)
}

// Len counts the selected bytes in b, line breaks included.
func (s *Selection) Len(b *Buffer) int {
	start, end, ok := s.Bounds()
	if !ok {
		return 0
	}
	if start.Row == end.Row {
		return end.Col - start.Col
	}
	n := b.LineLen(start.Row) - start.Col + 1
	for row := start.Row + 1; row < end.Row; row++ {
		n += b.LineLen(row) + 1
	}
	return n + end.Col
}

// Partition computes how many of the length visible characters of line row
// fall before, inside and after the selection when the view is scrolled
// right by scroll columns. The three counts are never negative and always sum
// to length.
func (s *Selection) Partition(row, length, scroll int) LinePartition {
	start, end, ok := s.Bounds()
	if !ok || row < start.Row || row > end.Row {
		return LinePartition{Before: length}
	}

	var before, selected int
	switch {
	case start.Row < row && row < end.Row:
		selected = length
	case row == start.Row && row < end.Row:
		before = clamp(start.Col-scroll, 0, length)
		selected = length - before
	case start.Row < row && row == end.Row:
		selected = clamp(end.Col-scroll, 0, length)
	default:
		before = clamp(start.Col-scroll, 0, length)
		selected = clamp(end.Col-start.Col-max(0, scroll-start.Col), 0, length-before)
	}
	return LinePartition{Before: before, Selected: selected, After: length - before - selected}
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
