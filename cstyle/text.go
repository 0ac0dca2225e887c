package cstyle

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reLeadingSpace = regexp.MustCompile(`^\s*`)
	reBlank        = regexp.MustCompile(`^\s*$`)
)

// IndentUnit returns the whitespace for one nesting level.
func IndentUnit(tabSize int) string {
	if tabSize <= 0 {
		return "\t"
	}
	return strings.Repeat(" ", tabSize)
}

func indentOf(line string) string {
	return reLeadingSpace.FindString(line)
}

func isBlank(s string) bool {
	return reBlank.MatchString(s)
}

// stripLineComment cuts a trailing // comment. A // inside a string literal
// is cut as well.
func stripLineComment(line string) string {
	if i := strings.Index(line, "//"); i >= 0 {
		return line[:i]
	}
	return line
}

// unindent drops one unit from indent, never going below zero width.
func unindent(indent, tab string) string {
	switch {
	case tab != "" && strings.HasSuffix(indent, tab):
		return indent[:len(indent)-len(tab)]
	case strings.HasSuffix(indent, "\t"):
		return indent[:len(indent)-1]
	case len(indent) > len(tab):
		return indent[:len(indent)-len(tab)]
	}
	return ""
}

// alignTo builds whitespace reaching col on line, keeping the line's own tabs
// so the result lines up regardless of tab width.
func alignTo(line string, col int) string {
	runes := []rune(line)
	var sb strings.Builder
	for i := 0; i < col; i++ {
		if i < len(runes) && runes[i] == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// cutAt returns the part of line left of rune column col.
func cutAt(line string, col int) string {
	runes := []rune(line)
	if col < 0 {
		return ""
	}
	if col >= len(runes) {
		return line
	}
	return string(runes[:col])
}

// runeAt returns the rune at column col, or 0 outside the line.
func runeAt(line string, col int) rune {
	if col < 0 {
		return 0
	}
	runes := []rune(line)
	if col >= len(runes) {
		return 0
	}
	return runes[col]
}

// unclosedOpener returns the column of the innermost opener on line that is
// not closed later on the same line, or -1.
func unclosedOpener(line string) int {
	var stack []int
	for i, r := range []rune(line) {
		switch r {
		case '{', '(', '[':
			stack = append(stack, i)
		case '}', ')', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	if len(stack) == 0 {
		return -1
	}
	return stack[len(stack)-1]
}
