package cstyle

import (
	"regexp"
	"strings"
)

var complements = map[rune]rune{
	'{': '}', '}': '{',
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'<': '>', '>': '<',
}

// Complement returns the partner of a tracked delimiter.
func Complement(r rune) (rune, bool) {
	c, ok := complements[r]
	return c, ok
}

// FindOpenerRow walks upward from row from, adding the count of closer and
// subtracting the count of its complement on every line, and returns the
// first row where the running balance drops to zero or below. It returns -1
// when row 0 is passed without resolving. Counting is done on plain
// characters; strings and comments are not recognised.
func FindOpenerRow(closer rune, lines Lines, from, balance int) int {
	opener, ok := Complement(closer)
	if !ok || lines == nil {
		return -1
	}
	if from >= lines.LineCount() {
		from = lines.LineCount() - 1
	}
	for row := from; row >= 0; row-- {
		line := lines.Line(row)
		balance += strings.Count(line, string(closer)) - strings.Count(line, string(opener))
		if balance <= 0 {
			return row
		}
	}
	return -1
}

var (
	reDefine        = regexp.MustCompile(`#\s*define\b`)
	reEndsBackslash = regexp.MustCompile(`\\\s*$`)
)

// MacroStart returns the row of the #define whose backslash-continued body
// contains row, or -1 when row is not part of a macro definition.
func MacroStart(lines Lines, row int) int {
	if lines == nil {
		return -1
	}
	for r := row; r >= 0; r-- {
		if reDefine.MatchString(lines.Line(r)) {
			return r
		}
		if r == 0 || !reEndsBackslash.MatchString(lines.Line(r-1)) {
			return -1
		}
	}
	return -1
}
