package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 1, b.LineCount())
	assert.False(t, b.IsModified())
}

func TestSetContentStripsCarriageReturns(t *testing.T) {
	b := NewBufferFromString("a\r\nbc\r\n")
	if diff := cmp.Diff([]string{"a", "bc", ""}, b.GetLines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, b.IsModified())
	assert.Equal(t, "a\nbc\n", b.GetSavedContent())
}

func TestLineAccessOutOfRange(t *testing.T) {
	b := NewBufferFromString("héllo")
	assert.Equal(t, 5, b.LineRuneCount(0))
	assert.Equal(t, 0, b.LineRuneCount(3))
	assert.Nil(t, b.GetLineRunes(-1))
	assert.Equal(t, "", b.Line(9))
}

func TestReplaceRange(t *testing.T) {
	tests := []struct {
		name    string
		content string
		r       Range
		text    string
		want    []string
		end     Position
	}{
		{
			name:    "insert in line",
			content: "ac",
			r:       NewRange(0, 1, 0, 1),
			text:    "b",
			want:    []string{"abc"},
			end:     Position{0, 2},
		},
		{
			name:    "split line",
			content: "if (x) {}",
			r:       NewRange(0, 8, 0, 8),
			text:    "\n    \n",
			want:    []string{"if (x) {", "    ", "}"},
			end:     Position{2, 0},
		},
		{
			name:    "join lines",
			content: "ab\ncd\nef",
			r:       NewRange(0, 1, 2, 1),
			text:    "",
			want:    []string{"af"},
			end:     Position{0, 1},
		},
		{
			name:    "reversed range is normalized",
			content: "abcd",
			r:       NewRange(0, 3, 0, 1),
			text:    "X",
			want:    []string{"aXd"},
			end:     Position{0, 2},
		},
		{
			name:    "replace across lines with lines",
			content: "one\ntwo",
			r:       NewRange(0, 1, 1, 2),
			text:    "1\n2",
			want:    []string{"o1", "2o"},
			end:     Position{1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.content)
			end, err := b.ReplaceRange(tt.r, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.end, end)
			if diff := cmp.Diff(tt.want, b.GetLines()); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
			assert.True(t, b.IsModified())
		})
	}
}

func TestReplaceRangeInvalid(t *testing.T) {
	b := NewBufferFromString("abc")
	_, err := b.ReplaceRange(NewRange(0, 0, 0, 4), "")
	assert.ErrorIs(t, err, ErrInvalidPosition)
	_, err = b.ReplaceRange(NewRange(1, 0, 1, 0), "")
	assert.ErrorIs(t, err, ErrInvalidPosition)
	assert.Equal(t, "abc", b.GetCurrentContent())
}

func TestTextRange(t *testing.T) {
	b := NewBufferFromString("one\ntwo\nthree")
	assert.Equal(t, "ne", b.TextRange(NewRange(0, 1, 0, 3)))
	assert.Equal(t, "e\ntwo\nth", b.TextRange(NewRange(0, 2, 2, 2)))
	assert.Equal(t, "", b.TextRange(NewRange(0, 0, 5, 0)))
}

func TestInsertAndDeleteRunes(t *testing.T) {
	b := NewBufferFromString("ab\ncd")
	require.NoError(t, b.InsertRunesAt(0, 1, []rune("X\nY")))
	assert.Equal(t, []string{"aX", "Yb", "cd"}, b.GetLines())

	require.NoError(t, b.DeleteRunesAt(0, 1, 3))
	assert.Equal(t, []string{"ab", "cd"}, b.GetLines())

	require.NoError(t, b.DeleteRunesAt(1, 1, 10))
	assert.Equal(t, []string{"ab", "c"}, b.GetLines())

	err := b.DeleteRunesAt(5, 0, 1)
	var editorErr *EditorError
	require.ErrorAs(t, err, &editorErr)
	assert.Equal(t, ErrInvalidPositionId, editorErr.ID())
}

func TestSaveContent(t *testing.T) {
	b := NewBufferFromString("x")
	require.NoError(t, b.InsertRunesAt(0, 1, []rune("y")))
	assert.True(t, b.IsModified())
	b.SaveContent()
	assert.False(t, b.IsModified())
	assert.Equal(t, "xy", b.GetSavedContent())
}

func TestSetCursorClamps(t *testing.T) {
	b := NewBufferFromString("abc\nd")
	b.SetCursor(Cursor{Position: Position{Row: 7, Col: 9}})
	assert.Equal(t, Position{Row: 1, Col: 1}, b.GetCursor().Position)
	b.SetCursor(Cursor{Position: Position{Row: -1, Col: -1}})
	assert.Equal(t, Position{Row: 0, Col: 0}, b.GetCursor().Position)
}
