package cppmode

import (
	"github.com/ionut-t/cppmode/core"
	"github.com/ionut-t/cppmode/cstyle"
)

// HandleKey applies one key press to buf and returns the new selection.
// Characters go through bracket completion and outdenting, Enter through
// newline handling and indent prediction, Backspace and Delete through pair
// deletion. Arrow keys move the caret and extend the selection with Shift.
func (m *Mode) HandleKey(buf core.Buffer, sel core.Selection, key core.KeyEvent) (core.Selection, error) {
	switch key.Key {
	case core.KeyEscape:
		return m.collapse(buf, sel.Head), nil

	case core.KeyEnter:
		return m.insert(buf, sel, "\n", true)

	case core.KeyTab:
		return m.insert(buf, sel, m.tab, false)

	case core.KeyBackspace:
		return m.deleteBackward(buf, sel)

	case core.KeyDelete:
		return m.deleteForward(buf, sel)

	case core.KeyLeft, core.KeyRight, core.KeyUp, core.KeyDown, core.KeyHome, core.KeyEnd:
		return m.move(buf, sel, key), nil

	default:
		if key.Rune != 0 && key.Modifiers&(core.ModCtrl|core.ModAlt) == 0 {
			return m.insert(buf, sel, string(key.Rune), true)
		}
		// Ignore unknown special keys or modifiers without runes
		return sel, nil
	}
}

// Type feeds text to HandleKey one rune at a time.
func (m *Mode) Type(buf core.Buffer, sel core.Selection, text string) (core.Selection, error) {
	var err error
	for _, r := range text {
		if sel, err = m.HandleKey(buf, sel, core.RuneKey(r)); err != nil {
			return sel, err
		}
	}
	return sel, nil
}

func (m *Mode) deleteBackward(buf core.Buffer, sel core.Selection) (core.Selection, error) {
	if !sel.IsEmpty() {
		return m.remove(buf, sel.Range(), false)
	}

	row, col := sel.Head.Row, sel.Head.Col
	switch {
	case col > 0:
		return m.remove(buf, core.NewRange(row, col-1, row, col), true)
	case row > 0:
		// Merge with the previous line
		return m.remove(buf, core.NewRange(row-1, buf.LineRuneCount(row-1), row, 0), false)
	}
	return sel, core.NewEditorError(core.ErrStartOfBufferId, core.ErrStartOfBuffer)
}

func (m *Mode) deleteForward(buf core.Buffer, sel core.Selection) (core.Selection, error) {
	if !sel.IsEmpty() {
		return m.remove(buf, sel.Range(), false)
	}

	row, col := sel.Head.Row, sel.Head.Col
	switch {
	case col < buf.LineRuneCount(row):
		return m.remove(buf, core.NewRange(row, col, row, col+1), true)
	case row < buf.LineCount()-1:
		return m.remove(buf, core.NewRange(row, col, row+1, 0), false)
	}
	return sel, core.NewEditorError(core.ErrEndOfBufferId, core.ErrEndOfBuffer)
}

// remove deletes r, letting the behaviour engine widen it first when pair is
// set.
func (m *Mode) remove(buf core.Buffer, r core.Range, pair bool) (core.Selection, error) {
	if pair {
		ctx := m.context(buf, core.Caret(r.End))
		if action := m.behaviour.OnDelete(ctx, r); action.Kind == cstyle.ActionReplace {
			r = action.Range
		}
	}
	caret, err := apply(buf, core.Selection{Anchor: r.Start, Head: r.End}, cstyle.Insert(""))
	if err != nil {
		return core.Caret(r.End), err
	}
	return m.collapse(buf, caret), nil
}

func (m *Mode) move(buf core.Buffer, sel core.Selection, key core.KeyEvent) core.Selection {
	cursor := core.Cursor{Position: sel.Head, Preferred: buf.GetCursor().Preferred}
	if cursor.Position.Row != buf.GetCursor().Position.Row {
		cursor.Preferred = cursor.Position.Col
	}

	// Hitting either end of the buffer leaves the caret where it is.
	switch key.Key {
	case core.KeyLeft:
		_ = cursor.MoveLeftOrUp(buf, 1)
	case core.KeyRight:
		_ = cursor.MoveRightOrDown(buf, 1)
	case core.KeyUp:
		_ = cursor.MoveUp(buf, 1)
	case core.KeyDown:
		_ = cursor.MoveDown(buf, 1)
	case core.KeyHome:
		cursor.MoveToLineStart(buf)
	case core.KeyEnd:
		cursor.MoveToLineEnd(buf)
	}
	buf.SetCursor(cursor)

	if key.HasShift() {
		return core.Selection{Anchor: sel.Anchor, Head: cursor.Position}
	}
	return core.Caret(cursor.Position)
}
