package cstyle

import (
	"fmt"
	"strings"

	"github.com/ionut-t/cppmode/core"
)

// ActionKind identifies what the host should do with an EditAction.
type ActionKind int

const (
	// ActionNone lets the default insertion or deletion proceed.
	ActionNone ActionKind = iota
	// ActionInsert inserts Text at the caret, replacing any selection.
	ActionInsert
	// ActionReplace replaces Range with Text.
	ActionReplace
	// ActionSkip consumes the keystroke and moves the caret one column right.
	ActionSkip
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionInsert:
		return "insert"
	case ActionReplace:
		return "replace"
	case ActionSkip:
		return "skip"
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// EditAction describes a single edit proposed by the engine. Nothing in this
// package applies it.
//
// Caret is relative to where Text is placed: on row 0 Col counts runes from
// the insertion point, on later rows Col is the absolute column.
type EditAction struct {
	Kind     ActionKind
	Text     string
	Range    core.Range
	Caret    core.Position
	HasCaret bool
}

func None() EditAction {
	return EditAction{Kind: ActionNone}
}

func Insert(text string) EditAction {
	return EditAction{Kind: ActionInsert, Text: text}
}

func InsertWithCaret(text string, caret core.Position) EditAction {
	return EditAction{Kind: ActionInsert, Text: text, Caret: caret, HasCaret: true}
}

func Replace(r core.Range, text string) EditAction {
	return EditAction{Kind: ActionReplace, Text: text, Range: r}
}

func Skip() EditAction {
	return EditAction{Kind: ActionSkip}
}

// IsNone reports whether the action defers to default handling.
func (a EditAction) IsNone() bool {
	return a.Kind == ActionNone
}

// CaretAfter returns the caret position once the action's text has been
// placed at start. Without an explicit caret the caret ends up after the
// text.
func (a EditAction) CaretAfter(start core.Position) core.Position {
	if a.HasCaret {
		if a.Caret.Row == 0 {
			return core.Position{Row: start.Row, Col: start.Col + a.Caret.Col}
		}
		return core.Position{Row: start.Row + a.Caret.Row, Col: a.Caret.Col}
	}

	parts := strings.Split(a.Text, "\n")
	last := runeLen(parts[len(parts)-1])
	if len(parts) == 1 {
		return core.Position{Row: start.Row, Col: start.Col + last}
	}
	return core.Position{Row: start.Row + len(parts) - 1, Col: last}
}

func (a EditAction) String() string {
	switch a.Kind {
	case ActionReplace:
		return fmt.Sprintf("replace %s with %q", a.Range, a.Text)
	case ActionInsert:
		return fmt.Sprintf("insert %q", a.Text)
	}
	return a.Kind.String()
}
