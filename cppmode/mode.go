// Package cppmode wires the cstyle engine to a core.Buffer. It plays the part
// of an editor's insert mode for C and C++: typed keys go through bracket
// completion, new lines get predicted indentation and closers are outdented.
package cppmode

import (
	"fmt"
	"log"

	"github.com/ionut-t/cppmode/core"
	"github.com/ionut-t/cppmode/cstyle"
)

// Mode composes the predictor, outdenter and behaviour engine.
type Mode struct {
	tab       string
	tokenizer cstyle.Tokenizer
	predictor *cstyle.Predictor
	outdenter *cstyle.Outdenter
	behaviour *cstyle.Behaviour
}

// New creates a mode indenting by tabSize spaces. The tokenizer supplies
// lexical states and may be nil, in which case every line is treated as code.
func New(tabSize int, tokenizer cstyle.Tokenizer) *Mode {
	return &Mode{
		tab:       cstyle.IndentUnit(tabSize),
		tokenizer: tokenizer,
		predictor: cstyle.NewPredictor(),
		outdenter: cstyle.NewOutdenter(),
		behaviour: cstyle.NewBehaviour(tabSize, tokenizer),
	}
}

// Tab returns one indent unit.
func (m *Mode) Tab() string {
	return m.tab
}

// Behaviour exposes the engine so hosts can register extra handlers.
func (m *Mode) Behaviour() *cstyle.Behaviour {
	return m.behaviour
}

// StateAt returns the tokenizer state at the start of row.
func (m *Mode) StateAt(lines cstyle.Lines, row int) cstyle.State {
	state := cstyle.StateStart
	if m.tokenizer == nil {
		return state
	}
	for r := 0; r < row && r < lines.LineCount(); r++ {
		_, state = m.tokenizer.LineTokens(lines.Line(r), state)
	}
	return state
}

// stateAfter returns the state at the end of text when it starts row.
func (m *Mode) stateAfter(lines cstyle.Lines, row int, text string) cstyle.State {
	state := m.StateAt(lines, row)
	if m.tokenizer != nil {
		_, state = m.tokenizer.LineTokens(text, state)
	}
	return state
}

func (m *Mode) context(buf core.Buffer, sel core.Selection) cstyle.Context {
	return cstyle.Context{
		Lines:     buf,
		Cursor:    sel.Head,
		Selection: sel.Range(),
		State:     m.StateAt(buf, sel.Head.Row),
		Matcher:   core.NewBracketMatcher(buf),
	}
}

// NextLineIndent returns the indentation a new line inserted at p gets.
func (m *Mode) NextLineIndent(buf core.Buffer, p core.Position) string {
	before := string(buf.GetLineRunes(p.Row)[:min(p.Col, buf.LineRuneCount(p.Row))])
	prior := ""
	if p.Row > 0 {
		prior = buf.Line(p.Row - 1)
	}
	return m.predictor.NextLineIndent(cstyle.IndentRequest{
		State:     m.stateAfter(buf, p.Row, before),
		Line:      before,
		PriorLine: prior,
		Tab:       m.tab,
		Row:       p.Row,
		Lines:     buf,
	})
}

// apply performs a non-skip action and returns the resulting caret.
func apply(buf core.Buffer, sel core.Selection, action cstyle.EditAction) (core.Position, error) {
	r := sel.Range()
	if action.Kind == cstyle.ActionReplace {
		r = action.Range
	}
	if _, err := buf.ReplaceRange(r, action.Text); err != nil {
		return sel.Head, core.NewEditorError(core.ErrFailedToApplyId, fmt.Errorf("%w: %s: %w", core.ErrFailedToApply, action, err))
	}
	return action.CaretAfter(r.Start), nil
}

// insert types text at the selection. Bracket completion runs when complete
// is set; indentation and outdenting always do.
func (m *Mode) insert(buf core.Buffer, sel core.Selection, text string, complete bool) (core.Selection, error) {
	row := sel.Range().Start.Row
	checkOutdent := text != "\n" && m.outdenter.ShouldOutdent(
		m.stateAfter(buf, row, buf.Line(row)), buf.Line(row), text)

	action := cstyle.None()
	if complete {
		action = m.behaviour.OnInsert(m.context(buf, sel), text)
	}

	var caret core.Position
	var err error
	switch action.Kind {
	case cstyle.ActionSkip:
		return m.collapse(buf, core.Position{Row: sel.Head.Row, Col: sel.Head.Col + 1}), nil
	case cstyle.ActionNone:
		if text == "\n" {
			text += m.NextLineIndent(buf, sel.Range().Start)
		}
		caret, err = apply(buf, sel, cstyle.Insert(text))
	default:
		caret, err = apply(buf, sel, action)
	}
	if err != nil {
		return sel, err
	}

	if checkOutdent {
		caret = m.outdent(buf, row, caret)
	}
	return m.collapse(buf, caret), nil
}

// outdent realigns row and shifts caret with the line's text. A failed edit
// is logged and left out; typing carries on.
func (m *Mode) outdent(buf core.Buffer, row int, caret core.Position) core.Position {
	action, ok := m.outdenter.AutoOutdent(buf, row, core.NewBracketMatcher(buf))
	if !ok {
		return caret
	}
	if _, err := buf.ReplaceRange(action.Range, action.Text); err != nil {
		log.Printf("cppmode: outdent row %d: %v", row, err)
		return caret
	}
	return shift(caret, action)
}

// shift moves p to follow a single-line edit made on its row.
func shift(p core.Position, action cstyle.EditAction) core.Position {
	r := action.Range
	if p.Row != r.Start.Row || p.Col < r.End.Col {
		return p
	}
	p.Col += len([]rune(action.Text)) - (r.End.Col - r.Start.Col)
	return p
}

func (m *Mode) collapse(buf core.Buffer, p core.Position) core.Selection {
	cursor := buf.GetCursor()
	cursor.MoveTo(buf, p)
	buf.SetCursor(cursor)
	return core.Caret(cursor.Position)
}

// InsertText places text at the selection without bracket completion or
// indentation, as a paste does.
func (m *Mode) InsertText(buf core.Buffer, sel core.Selection, text string) (core.Selection, error) {
	caret, err := apply(buf, sel, cstyle.Insert(text))
	if err != nil {
		return sel, err
	}
	return m.collapse(buf, caret), nil
}

// ToggleComment comments or uncomments the rows covered by sel.
func (m *Mode) ToggleComment(buf core.Buffer, sel core.Selection) (core.Selection, error) {
	r := sel.Range()
	for _, action := range cstyle.ToggleComment(buf, r.Start.Row, r.End.Row) {
		if _, err := buf.ReplaceRange(action.Range, action.Text); err != nil {
			return sel, core.NewEditorError(core.ErrFailedToApplyId, fmt.Errorf("%w: %s: %w", core.ErrFailedToApply, action, err))
		}
		sel.Anchor = shift(sel.Anchor, action)
		sel.Head = shift(sel.Head, action)
	}
	cursor := buf.GetCursor()
	cursor.MoveTo(buf, sel.Head)
	buf.SetCursor(cursor)
	return sel, nil
}
