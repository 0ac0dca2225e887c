package core

import "fmt"

// Position represents a specific location in the text buffer
type Position struct {
	Row int // Zero-indexed row (line number)
	Col int // Zero-indexed column (rune offset in the line)
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Range is a half-open span [Start, End) over the buffer.
type Range struct {
	Start Position
	End   Position
}

// NewRange creates a range from its four coordinates.
func NewRange(startRow, startCol, endRow, endCol int) Range {
	return Range{
		Start: Position{Row: startRow, Col: startCol},
		End:   Position{Row: endRow, Col: endCol},
	}
}

// PointRange returns the empty range located at p.
func PointRange(p Position) Range {
	return Range{Start: p, End: p}
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsMultiLine returns true if the range spans more than one row.
func (r Range) IsMultiLine() bool {
	return r.Start.Row != r.End.Row
}

// Normalized returns the range with Start before End.
func (r Range) Normalized() Range {
	if r.End.Before(r.Start) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

func (r Range) String() string {
	return fmt.Sprintf("[%s-%s)", r.Start, r.End)
}

// Selection is an anchored selection; Head is where the caret is drawn.
type Selection struct {
	Anchor Position
	Head   Position
}

// Caret returns a collapsed selection at p.
func Caret(p Position) Selection {
	return Selection{Anchor: p, Head: p}
}

// Range returns the normalized range covered by the selection.
func (s Selection) Range() Range {
	return Range{Start: s.Anchor, End: s.Head}.Normalized()
}

// IsEmpty reports whether the selection is just a caret.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// LineReader is read access to a sequence of lines.
type LineReader interface {
	Line(row int) string
	LineCount() int
}

// StringLines adapts a plain slice of lines to LineReader.
type StringLines []string

func (l StringLines) Line(row int) string {
	if row < 0 || row >= len(l) {
		return ""
	}
	return l[row]
}

func (l StringLines) LineCount() int { return len(l) }
