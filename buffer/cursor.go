package buffer

type Position struct {
	Row, Col int
}

func (p Position) Before(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

func (p Position) Equal(other Position) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// Cursor tracks the insertion point and the column to return to when moving
// vertically across shorter lines.
//
// The loop argument of the move methods is accepted for callers that may
// one day want wrap-around; moves never wrap past the buffer extremes.
type Cursor struct {
	Pos          Position
	preferredCol int
}

func (c *Cursor) Row() int { return c.Pos.Row }
func (c *Cursor) Col() int { return c.Pos.Col }

func (c *Cursor) PreferredCol() int { return c.preferredCol }

// Set places the cursor and records its column as the preferred one.
func (c *Cursor) Set(pos Position) {
	c.Pos = pos
	c.preferredCol = pos.Col
}

// Clamp pulls the cursor back inside b after lines were removed or replaced.
func (c *Cursor) Clamp(b *Buffer) {
	if c.Pos.Row >= b.LineCount() {
		c.Pos.Row = b.LineCount() - 1
	}
	if c.Pos.Row < 0 {
		c.Pos.Row = 0
	}
	if n := b.LineLen(c.Pos.Row); c.Pos.Col > n {
		c.Pos.Col = n
	}
	if c.Pos.Col < 0 {
		c.Pos.Col = 0
	}
}

func (c *Cursor) MoveUp(b *Buffer, step int, loop bool) bool {
	if c.Pos.Row <= 0 {
		return false
	}
	c.Pos.Row -= step
	if c.Pos.Row < 0 {
		c.Pos.Row = 0
	}
	c.restorePreferredCol(b)
	return true
}

func (c *Cursor) MoveDown(b *Buffer, step int, loop bool) bool {
	last := b.LineCount() - 1
	if c.Pos.Row >= last {
		return false
	}
	c.Pos.Row += step
	if c.Pos.Row > last {
		c.Pos.Row = last
	}
	c.restorePreferredCol(b)
	return true
}

func (c *Cursor) MoveLeft(b *Buffer, step int, loop bool) bool {
	if c.Pos.Col <= 0 {
		if c.Pos.Row <= 0 {
			return false
		}
		c.Pos.Row--
		c.Pos.Col = b.LineLen(c.Pos.Row)
	} else {
		c.Pos.Col -= step
		if c.Pos.Col < 0 {
			c.Pos.Col = 0
		}
	}
	c.preferredCol = c.Pos.Col
	return true
}

func (c *Cursor) MoveRight(b *Buffer, step int, loop bool) bool {
	n := b.LineLen(c.Pos.Row)
	if c.Pos.Col >= n {
		if c.Pos.Row >= b.LineCount()-1 {
			return false
		}
		c.Pos.Row++
		c.Pos.Col = 0
	} else {
		c.Pos.Col += step
		if c.Pos.Col > n {
			c.Pos.Col = n
		}
	}
	c.preferredCol = c.Pos.Col
	return true
}

func (c *Cursor) restorePreferredCol(b *Buffer) {
	c.Pos.Col = c.preferredCol
	if n := b.LineLen(c.Pos.Row); c.Pos.Col > n {
		c.Pos.Col = n
	}
}
