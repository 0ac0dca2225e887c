package cstyle

import (
	"regexp"
	"strings"

	"github.com/ionut-t/cppmode/core"
)

// MacroColumn is where a continuation backslash typed inside a #define is
// placed.
const MacroColumn = 59

var (
	reOpensComment = regexp.MustCompile(`/\*$`)
	reLineComment  = regexp.MustCompile(`^(\s*)//`)
)

// commentInsertion expands /* into a block comment skeleton when * is typed
// at the end of the line.
func commentInsertion(ctx Context, text string) EditAction {
	if text != "*" {
		return None()
	}
	line := ctx.line()
	before := cutAt(line, ctx.Cursor.Col)
	if !reOpensComment.MatchString(before) || !isBlank(string([]rune(line)[runeLen(before):])) {
		return None()
	}
	pad := alignTo(line, runeLen(before)-2)
	return InsertWithCaret("*\n"+pad+" * \n"+pad+" */", core.Position{Row: 1, Col: runeLen(pad) + 3})
}

// macroInsertion pushes a continuation backslash typed at the end of a macro
// line out to MacroColumn.
func macroInsertion(ctx Context, text string) EditAction {
	if text != `\` || ctx.Lines == nil {
		return None()
	}
	line := ctx.line()
	if !isBlank(string([]rune(line)[min(ctx.Cursor.Col, runeLen(line)):])) {
		return None()
	}
	if MacroStart(ctx.Lines, ctx.Cursor.Row) < 0 {
		return None()
	}
	body := strings.TrimRight(cutAt(line, ctx.Cursor.Col), " \t")
	width := runeLen(body)
	if width >= MacroColumn {
		return None()
	}
	r := core.NewRange(ctx.Cursor.Row, width, ctx.Cursor.Row, runeLen(line))
	return Replace(r, strings.Repeat(" ", MacroColumn-width)+`\`)
}

// ToggleComment comments out rows startRow..endRow with a leading //, or
// removes the // when every row already has one. The edits are ordered by
// row and do not overlap.
func ToggleComment(lines Lines, startRow, endRow int) []EditAction {
	if lines == nil || lines.LineCount() == 0 {
		return nil
	}
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	startRow = max(startRow, 0)
	endRow = min(endRow, lines.LineCount()-1)

	uncomment := true
	for row := startRow; row <= endRow; row++ {
		if !reLineComment.MatchString(lines.Line(row)) {
			uncomment = false
			break
		}
	}

	var edits []EditAction
	for row := startRow; row <= endRow; row++ {
		if !uncomment {
			edits = append(edits, Replace(core.NewRange(row, 0, row, 0), "//"))
			continue
		}
		m := reLineComment.FindStringSubmatch(lines.Line(row))
		ws := runeLen(m[1])
		edits = append(edits, Replace(core.NewRange(row, ws, row, ws+2), ""))
	}
	return edits
}
