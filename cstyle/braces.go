package cstyle

import (
	"regexp"
	"strings"

	"github.com/ionut-t/cppmode/core"
)

var (
	reQualifiers    = regexp.MustCompile(`\b(const|noexcept)\b`)
	reNamedNS       = regexp.MustCompile(`\bnamespace\s+(\w+(?:::\w+)*)\s*$`)
	reAnonNS        = regexp.MustCompile(`\bnamespace\s*$`)
	reAssignment    = regexp.MustCompile(`=\s*$`)
	reDefineHead    = regexp.MustCompile(`#\s*define\s+\w+`)
	reAggregateTail = regexp.MustCompile(`[\w>]\s*$`)
	reBlockKeyword  = regexp.MustCompile(`\b(else|do|try)\s*$`)
	reSingleColon   = regexp.MustCompile(`(^|[^:]):([^:]|$)`)
	reQuoted        = regexp.MustCompile(`"[^"]*"`)
	reSpaces        = regexp.MustCompile(`\s+`)
	reFunctionTail  = regexp.MustCompile(`\)[^()]*\{\s*$`)
)

func (b *Behaviour) braceInsertion(ctx Context, text string) EditAction {
	switch text {
	case "{":
		if sel := ctx.selected(); sel != "" {
			return Insert("{" + sel + "}")
		}
		return InsertWithCaret(braceText(ctx), core.Position{Col: 1})
	case "}":
		return skipOver(ctx, '}')
	case "\n":
		if ctx.rightChar() == '}' {
			return b.splitBraces(ctx)
		}
	}
	return None()
}

// braceText classifies the code left of the caret and picks what a typed {
// expands to.
func braceText(ctx Context) string {
	shape := func(s string) string {
		return reQualifiers.ReplaceAllString(stripLineComment(s), "")
	}
	line := shape(cutAt(ctx.line(), ctx.Cursor.Col))
	if isBlank(line) && ctx.Cursor.Row > 0 && ctx.Lines != nil {
		line = shape(ctx.Lines.Line(ctx.Cursor.Row-1)) + line
	}

	if m := reNamedNS.FindStringSubmatch(line); m != nil {
		return "{} // end namespace " + m[1]
	}
	switch {
	case reAnonNS.MatchString(line):
		return "{} // end anonymous namespace"
	case reAssignment.MatchString(line):
		return "{};"
	case strings.Contains(line, ")"):
		return "{}"
	case reDefineHead.MatchString(line):
		return "{}"
	case reAggregateTail.MatchString(line) && !reBlockKeyword.MatchString(line):
		return "{};"
	}
	return "{}"
}

// splitBraces handles Enter between { and }: the closer moves to its own line
// and the caret lands on an indented blank line between them.
func (b *Behaviour) splitBraces(ctx Context) EditAction {
	row := ctx.Cursor.Row
	before := cutAt(ctx.line(), ctx.Cursor.Col)
	lines := overlay{base: ctx.Lines, row: row, text: before}

	base, found := b.classBase(lines, row)
	if !found {
		base = indentOf(before)
		if reFunctionTail.MatchString(stripLineComment(before)) {
			if open := FindOpenerRow(')', lines, row, 0); open >= 0 {
				base = indentOf(lines.Line(open))
			}
		}
	}

	inner := base + b.tab
	return InsertWithCaret("\n"+inner+"\n"+base, core.Position{Row: 1, Col: runeLen(inner)})
}

// classBase walks upward looking for a line with a single colon, such as a
// class head with base classes or a constructor initializer list. The walk
// gives up once a line ends a statement or block, or once the lines seen
// hold more than two words beyond their commas.
func (b *Behaviour) classBase(lines Lines, row int) (string, bool) {
	tokens, commas := 0, 0
	for r := row; r >= 0; r-- {
		line := stripLineComment(lines.Line(r))
		trimmed := strings.TrimSpace(line)
		if r < row && trimmed != "" && strings.ContainsAny(trimmed[len(trimmed)-1:], ";{}") {
			break
		}
		if reSingleColon.MatchString(line) && !reLabel.MatchString(line) {
			return indentOf(line), true
		}

		words := trimmed
		for _, kw := range []string{"public ", "private ", "virtual "} {
			words = strings.ReplaceAll(words, kw, "")
		}
		words = reQuoted.ReplaceAllString(words, "")
		words = reSpaces.ReplaceAllString(words, " ")
		tokens += strings.Count(words, " ")
		commas += strings.Count(words, ",")
		if tokens-commas > 2 {
			break
		}
	}
	return "", false
}
