package core

import "unicode"

// Cursor represents the current position for editing operations
type Cursor struct {
	Position  Position // Current position (row, column)
	Preferred int      // Preferred column for vertical movement (sticky column)
}

// clampCol ensures the column stays within the valid range for the given line.
// The column may sit one past the last rune so text can be appended.
func (c *Cursor) clampCol(buffer Buffer) {
	lineLen := buffer.LineRuneCount(c.Position.Row)
	if c.Position.Col > lineLen {
		c.Position.Col = lineLen
	}
	if c.Position.Col < 0 {
		c.Position.Col = 0
	}
}

// MoveLeftOrUp moves left by count runes, continuing at the end of the
// previous line when the start of a line is reached.
func (c *Cursor) MoveLeftOrUp(buffer Buffer, count int) error {
	for range count {
		if c.Position.Col > 0 {
			c.Position.Col--
			continue
		}
		if c.Position.Row == 0 {
			c.Preferred = c.Position.Col
			return ErrStartOfBuffer
		}
		c.Position.Row--
		c.Position.Col = buffer.LineRuneCount(c.Position.Row)
	}
	c.Preferred = c.Position.Col
	return nil
}

// MoveRightOrDown moves right by count runes, continuing at the start of the
// next line when the end of a line is reached.
func (c *Cursor) MoveRightOrDown(buffer Buffer, count int) error {
	for range count {
		if c.Position.Col < buffer.LineRuneCount(c.Position.Row) {
			c.Position.Col++
			continue
		}
		if c.Position.Row >= buffer.LineCount()-1 {
			c.Preferred = c.Position.Col
			return ErrEndOfBuffer
		}
		c.Position.Row++
		c.Position.Col = 0
	}
	c.Preferred = c.Position.Col
	return nil
}

// MoveUp moves the cursor up by count lines
func (c *Cursor) MoveUp(buffer Buffer, count int) error {
	if c.Position.Row <= 0 {
		return ErrStartOfBuffer
	}
	c.Position.Row = max(c.Position.Row-count, 0)
	c.Position.Col = c.Preferred
	c.clampCol(buffer)
	return nil
}

// MoveDown moves the cursor down by count lines
func (c *Cursor) MoveDown(buffer Buffer, count int) error {
	last := buffer.LineCount() - 1
	if c.Position.Row >= last {
		return ErrEndOfBuffer
	}
	c.Position.Row = min(c.Position.Row+count, last)
	c.Position.Col = c.Preferred
	c.clampCol(buffer)
	return nil
}

// MoveToLineStart toggles between the first non-blank rune and column 0.
func (c *Cursor) MoveToLineStart(buffer Buffer) {
	first := 0
	for _, r := range buffer.GetLineRunes(c.Position.Row) {
		if !unicode.IsSpace(r) {
			break
		}
		first++
	}
	if c.Position.Col == first {
		first = 0
	}
	c.Position.Col = first
	c.Preferred = first
}

// MoveToLineEnd moves past the last rune of the line.
func (c *Cursor) MoveToLineEnd(buffer Buffer) {
	c.Position.Col = buffer.LineRuneCount(c.Position.Row)
	c.Preferred = c.Position.Col
}

// MoveTo places the cursor at p, clamped to the buffer.
func (c *Cursor) MoveTo(buffer Buffer, p Position) {
	c.Position = p
	if c.Position.Row < 0 {
		c.Position.Row = 0
	} else if last := buffer.LineCount() - 1; c.Position.Row > last {
		c.Position.Row = max(last, 0)
	}
	c.clampCol(buffer)
	c.Preferred = c.Position.Col
}
