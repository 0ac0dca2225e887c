package cstyle

import (
	"regexp"

	"github.com/ionut-t/cppmode/core"
)

var (
	reAccessWord  = regexp.MustCompile(`^\s*(public|private|protected)\s*$`)
	reAccessLabel = regexp.MustCompile(`^(\s*)(public|private|protected)\s*:\s*$`)
	reCloserLine  = regexp.MustCompile(`^(\s*)\}`)
	reClassHead   = regexp.MustCompile(`\b(class|struct)\b`)
	reBlockStart  = regexp.MustCompile(`^\s*\}`)
)

// Outdenter pulls the current line to the left after a character that ends
// a block or an access specifier has been typed.
type Outdenter struct{}

func NewOutdenter() *Outdenter {
	return &Outdenter{}
}

// ShouldOutdent reports whether typing input on a line whose text before the
// caret is line calls for AutoOutdent.
func (o *Outdenter) ShouldOutdent(state State, line, input string) bool {
	if state != StateStart {
		return false
	}
	if input == ":" {
		return reAccessWord.MatchString(line)
	}
	return isBlank(line) && reBlockStart.MatchString(input)
}

// AutoOutdent builds the edit that realigns row. An access specifier takes
// the indent of the enclosing class or struct; a line starting with } takes
// the indent of the line holding its opener. It returns false when the line
// needs no change or its anchor cannot be found.
func (o *Outdenter) AutoOutdent(lines Lines, row int, matcher BracketMatcher) (EditAction, bool) {
	if lines == nil || row < 0 || row >= lines.LineCount() {
		return None(), false
	}
	line := stripLineComment(lines.Line(row))

	var ws, target string
	switch m := reAccessLabel.FindStringSubmatch(line); {
	case m != nil:
		ws = m[1]
		classRow := enclosingClass(lines, row)
		if classRow < 0 {
			return None(), false
		}
		target = indentOf(lines.Line(classRow))
	default:
		m := reCloserLine.FindStringSubmatch(line)
		if m == nil {
			return None(), false
		}
		ws = m[1]
		if matcher == nil {
			matcher = core.NewBracketMatcher(lines)
		}
		open, ok := matcher.FindOpeningBracket('}', core.Position{Row: row, Col: runeLen(ws)})
		if !ok {
			return None(), false
		}
		target = indentOf(lines.Line(open.Row))
	}

	if target == ws {
		return None(), false
	}
	return Replace(core.NewRange(row, 0, row, runeLen(ws)), target), true
}

// enclosingClass returns the row of the class or struct head whose body holds
// row, or -1. The head may sit on the line with the { or the line above it.
func enclosingClass(lines Lines, row int) int {
	if row == 0 {
		return -1
	}
	open := FindOpenerRow('}', lines, row-1, 1)
	if open < 0 {
		return -1
	}
	for r := open; r >= max(open-1, 0); r-- {
		if reClassHead.MatchString(stripLineComment(lines.Line(r))) {
			return r
		}
	}
	return -1
}
