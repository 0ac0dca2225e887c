package cppmode

import (
	"strings"

	"github.com/ionut-t/cppmode/core"
)

// Reindent retypes src into an empty buffer, dropping each line's leading
// whitespace and letting the indent predictor and outdenter supply it. No
// brackets are completed, so the text itself is unchanged. Trailing
// whitespace is removed.
func (m *Mode) Reindent(src string) (core.Buffer, error) {
	buf := core.NewBuffer()
	sel := core.Caret(core.Position{})

	var err error
	for i, line := range strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n") {
		if i > 0 {
			if sel, err = m.insert(buf, sel, "\n", false); err != nil {
				return nil, err
			}
		}

		text := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(text, "*") {
			sel = m.dropStar(buf, sel)
		}
		for _, r := range text {
			if sel, err = m.insert(buf, sel, string(r), false); err != nil {
				return nil, err
			}
		}
	}

	for row := range buf.LineCount() {
		line := buf.Line(row)
		if trimmed := strings.TrimRight(line, " \t"); trimmed != line {
			r := core.NewRange(row, len([]rune(trimmed)), row, len([]rune(line)))
			if _, err := buf.ReplaceRange(r, ""); err != nil {
				return nil, err
			}
		}
	}
	buf.SaveContent()
	return buf, nil
}

// dropStar removes the "* " continuation the predictor put on a comment line
// that brings its own star.
func (m *Mode) dropStar(buf core.Buffer, sel core.Selection) core.Selection {
	line := buf.Line(sel.Head.Row)
	if !strings.HasSuffix(line, "* ") || strings.TrimSpace(line) != "*" {
		return sel
	}
	col := len([]rune(line))
	r := core.NewRange(sel.Head.Row, col-2, sel.Head.Row, col)
	if _, err := buf.ReplaceRange(r, ""); err != nil {
		return sel
	}
	return m.collapse(buf, r.Start)
}
