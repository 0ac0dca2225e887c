package core

import (
	"fmt"
	"strings"
)

// Buffer represents the text content being edited (Using Runes)
type Buffer interface {
	// Content access
	GetLines() []string              // Get lines as strings (for saving/display)
	GetLineRunes(lineNum int) []rune // Get specific line as runes (for editing)
	LineRuneCount(lineNum int) int   // Get rune count for a line
	Line(lineNum int) string         // Get specific line as a string
	TextRange(r Range) string        // Get the text covered by r, newlines included
	GetSavedContent() string         // Get saved buffer content as a string
	GetCurrentContent() string       // Get entire buffer content as a string
	LineCount() int                  // Get number of lines

	// Modification
	ReplaceRange(r Range, text string) (Position, error) // Replace r with text, returns the end of the new text
	InsertRunesAt(row, col int, runes []rune) error      // Insert runes (handles newlines)
	DeleteRunesAt(row, col int, count int) error         // Delete runes (handles newlines)

	// Cursor
	GetCursor() Cursor
	SetCursor(Cursor)

	IsModified() bool          // Check if buffer has been modified
	SaveContent()              // Save content
	SetContent(content []byte) // Set content (from file or other source)
	IsEmpty() bool             // Check if buffer is empty
}

// textBuffer implementation using runes for better unicode handling
type textBuffer struct {
	lines        [][]rune // Store lines as slices of runes
	cursor       Cursor
	savedContent string
}

// NewBuffer creates a new empty buffer
func NewBuffer() Buffer {
	return &textBuffer{
		lines:  [][]rune{{}}, // Start with one empty line
		cursor: Cursor{Position: Position{0, 0}, Preferred: 0},
	}
}

func NewBufferFromBytes(content []byte) Buffer {
	b := textBuffer{
		lines:  [][]rune{{}},
		cursor: Cursor{Position: Position{0, 0}, Preferred: 0},
	}

	b.SetContent(content)
	b.SaveContent()
	return &b
}

// NewBufferFromString is a convenience for tests and tools.
func NewBufferFromString(content string) Buffer {
	return NewBufferFromBytes([]byte(content))
}

func (b *textBuffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

func (b *textBuffer) SetContent(content []byte) {
	parts := strings.Split(string(content), "\n")
	lines := make([][]rune, len(parts))
	for i, part := range parts {
		lines[i] = []rune(strings.TrimSuffix(part, "\r"))
	}
	b.lines = lines
	b.SetCursor(b.cursor)
}

func (b *textBuffer) GetLines() []string {
	linesStr := make([]string, len(b.lines))
	for i, r := range b.lines {
		linesStr[i] = string(r)
	}
	return linesStr
}

func (b *textBuffer) GetLineRunes(lineNum int) []rune {
	if lineNum < 0 || lineNum >= len(b.lines) {
		return nil
	}
	return b.lines[lineNum]
}

func (b *textBuffer) LineRuneCount(lineNum int) int {
	if lineNum < 0 || lineNum >= len(b.lines) {
		return 0
	}
	return len(b.lines[lineNum])
}

func (b *textBuffer) Line(lineNum int) string {
	return string(b.GetLineRunes(lineNum))
}

func (b *textBuffer) IsModified() bool {
	return b.savedContent != b.GetCurrentContent()
}

func (b *textBuffer) SaveContent() {
	b.savedContent = b.GetCurrentContent()
}

// GetCurrentContent returns the entire buffer content as a string
func (b *textBuffer) GetCurrentContent() string {
	return strings.Join(b.GetLines(), "\n")
}

// GetSavedContent returns the saved content as a string
func (b *textBuffer) GetSavedContent() string {
	return b.savedContent
}

func (b *textBuffer) LineCount() int {
	return len(b.lines)
}

func (b *textBuffer) GetCursor() Cursor {
	return b.cursor
}

// SetCursor sets the cursor position, validating and clamping it.
func (b *textBuffer) SetCursor(cursor Cursor) {
	if cursor.Position.Row < 0 {
		cursor.Position.Row = 0
	} else if cursor.Position.Row >= len(b.lines) {
		cursor.Position.Row = max(len(b.lines)-1, 0)
	}

	// Allow cursor to be one position *past* the end of the line
	lineLen := b.LineRuneCount(cursor.Position.Row)
	if cursor.Position.Col < 0 {
		cursor.Position.Col = 0
	} else if cursor.Position.Col > lineLen {
		cursor.Position.Col = lineLen
	}

	b.cursor = cursor
}

func (b *textBuffer) checkPosition(p Position) error {
	if p.Row < 0 || p.Row >= len(b.lines) {
		return fmt.Errorf("%w: row %d out of bounds [0, %d)", ErrInvalidPosition, p.Row, len(b.lines))
	}
	if p.Col < 0 || p.Col > len(b.lines[p.Row]) {
		return fmt.Errorf("%w: col %d out of bounds [0, %d]", ErrInvalidPosition, p.Col, len(b.lines[p.Row]))
	}
	return nil
}

// TextRange returns the text covered by r. Invalid ranges yield "".
func (b *textBuffer) TextRange(r Range) string {
	r = r.Normalized()
	if b.checkPosition(r.Start) != nil || b.checkPosition(r.End) != nil {
		return ""
	}
	if !r.IsMultiLine() {
		return string(b.lines[r.Start.Row][r.Start.Col:r.End.Col])
	}

	var sb strings.Builder
	sb.WriteString(string(b.lines[r.Start.Row][r.Start.Col:]))
	for row := r.Start.Row + 1; row < r.End.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[row]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[r.End.Row][:r.End.Col]))
	return sb.String()
}

// ReplaceRange swaps the text in r for text in one step and returns the
// position just after the inserted text.
func (b *textBuffer) ReplaceRange(r Range, text string) (Position, error) {
	r = r.Normalized()
	if err := b.checkPosition(r.Start); err != nil {
		return Position{}, fmt.Errorf("ReplaceRange: %w", err)
	}
	if err := b.checkPosition(r.End); err != nil {
		return Position{}, fmt.Errorf("ReplaceRange: %w", err)
	}

	head := b.lines[r.Start.Row][:r.Start.Col]
	tail := b.lines[r.End.Row][r.End.Col:]

	parts := strings.Split(text, "\n")
	inserted := make([][]rune, len(parts))
	for i, part := range parts {
		inserted[i] = []rune(part)
	}

	last := len(inserted) - 1
	end := Position{Row: r.Start.Row + last, Col: len(inserted[last])}
	if last == 0 {
		end.Col += len(head)
	}

	first := make([]rune, 0, len(head)+len(inserted[0]))
	first = append(first, head...)
	inserted[0] = append(first, inserted[0]...)
	inserted[last] = append(inserted[last], tail...)

	lines := make([][]rune, 0, len(b.lines)-(r.End.Row-r.Start.Row)+last)
	lines = append(lines, b.lines[:r.Start.Row]...)
	lines = append(lines, inserted...)
	lines = append(lines, b.lines[r.End.Row+1:]...)
	b.lines = lines

	return end, nil
}

// InsertRunesAt inserts runes at the specified position. Handles newlines correctly.
func (b *textBuffer) InsertRunesAt(row, col int, runes []rune) error {
	p := Position{Row: row, Col: col}
	if _, err := b.ReplaceRange(PointRange(p), string(runes)); err != nil {
		return fmt.Errorf("InsertRunesAt: %w", err)
	}
	return nil
}

// DeleteRunesAt deletes count runes starting at the specified position.
// A line break counts as one rune.
func (b *textBuffer) DeleteRunesAt(row, col int, count int) error {
	if count <= 0 {
		return nil
	}

	start := Position{Row: row, Col: col}
	if err := b.checkPosition(start); err != nil {
		return NewEditorError(ErrInvalidPositionId, fmt.Errorf("DeleteRunesAt: %w", err))
	}

	end := start
	for remaining := count; remaining > 0; {
		lineLen := len(b.lines[end.Row])
		available := lineLen - end.Col
		if remaining <= available {
			end.Col += remaining
			break
		}
		remaining -= available
		end.Col = lineLen
		if end.Row == len(b.lines)-1 {
			break
		}
		// consume the line break
		end = Position{Row: end.Row + 1, Col: 0}
		remaining--
	}

	if _, err := b.ReplaceRange(Range{Start: start, End: end}, ""); err != nil {
		return NewEditorError(ErrDeleteRunesId, err)
	}
	return nil
}
