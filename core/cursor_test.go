package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorHorizontal(t *testing.T) {
	b := NewBufferFromString("ab\nc")
	c := Cursor{Position: Position{0, 1}}

	assert.NoError(t, c.MoveRightOrDown(b, 2))
	assert.Equal(t, Position{1, 0}, c.Position)

	assert.ErrorIs(t, c.MoveRightOrDown(b, 5), ErrEndOfBuffer)
	assert.Equal(t, Position{1, 1}, c.Position)

	assert.NoError(t, c.MoveLeftOrUp(b, 2))
	assert.Equal(t, Position{0, 2}, c.Position)
	assert.Equal(t, 2, c.Preferred)

	assert.ErrorIs(t, c.MoveLeftOrUp(b, 3), ErrStartOfBuffer)
	assert.Equal(t, Position{0, 0}, c.Position)
}

func TestCursorVerticalKeepsPreferredColumn(t *testing.T) {
	b := NewBufferFromString("abcdef\nab\nabcdef")
	c := Cursor{Position: Position{0, 5}, Preferred: 5}

	assert.NoError(t, c.MoveDown(b, 1))
	assert.Equal(t, Position{1, 2}, c.Position)
	assert.NoError(t, c.MoveDown(b, 1))
	assert.Equal(t, Position{2, 5}, c.Position)
	assert.ErrorIs(t, c.MoveDown(b, 1), ErrEndOfBuffer)

	assert.NoError(t, c.MoveUp(b, 10))
	assert.Equal(t, Position{0, 5}, c.Position)
	assert.ErrorIs(t, c.MoveUp(b, 1), ErrStartOfBuffer)
}

func TestCursorLineStartToggles(t *testing.T) {
	b := NewBufferFromString("\t  x")
	c := Cursor{Position: Position{0, 4}}

	c.MoveToLineStart(b)
	assert.Equal(t, 3, c.Position.Col)
	c.MoveToLineStart(b)
	assert.Equal(t, 0, c.Position.Col)
	c.MoveToLineEnd(b)
	assert.Equal(t, 4, c.Position.Col)
	assert.Equal(t, 4, c.Preferred)
}

func TestCursorMoveToClamps(t *testing.T) {
	b := NewBufferFromString("abc\nde")
	c := Cursor{}
	c.MoveTo(b, Position{Row: 4, Col: 9})
	assert.Equal(t, Position{1, 2}, c.Position)
	assert.Equal(t, 2, c.Preferred)
}
