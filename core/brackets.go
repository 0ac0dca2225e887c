package core

// BracePair returns the matching brace-like punctuation for given rune,
// which must be a left or right brace {}, bracket [] or paren ().
// Also returns true if it is *right*
func BracePair(r rune) (match rune, right bool) {
	switch r {
	case '{':
		match = '}'
	case '}':
		right = true
		match = '{'
	case '(':
		match = ')'
	case ')':
		right = true
		match = '('
	case '[':
		match = ']'
	case ']':
		right = true
		match = '['
	}
	return
}

// BracketMatcher finds partner delimiters by counting nesting depth over
// plain characters. Strings and comments are not skipped.
type BracketMatcher struct {
	lines LineReader
}

// NewBracketMatcher creates a matcher reading from lines. A Buffer is a
// LineReader.
func NewBracketMatcher(lines LineReader) *BracketMatcher {
	return &BracketMatcher{lines: lines}
}

// FindOpeningBracket searches backward from the closer located at at and
// returns the position of its opening partner.
func (m *BracketMatcher) FindOpeningBracket(closer rune, at Position) (Position, bool) {
	opener, right := BracePair(closer)
	if opener == 0 || !right {
		return Position{}, false
	}
	if at.Row < 0 || at.Row >= m.lines.LineCount() {
		return Position{}, false
	}

	depth := 1
	col := at.Col - 1
	for row := at.Row; row >= 0; row-- {
		runes := []rune(m.lines.Line(row))
		if row != at.Row {
			col = len(runes) - 1
		}
		col = min(col, len(runes)-1)
		for ; col >= 0; col-- {
			switch runes[col] {
			case closer:
				depth++
			case opener:
				depth--
				if depth == 0 {
					return Position{Row: row, Col: col}, true
				}
			}
		}
	}
	return Position{}, false
}
