package cstyle

import (
	"github.com/ionut-t/cppmode/core"
)

// Context is the editor state a behaviour handler reads. It is passed
// explicitly on every call.
type Context struct {
	Lines  Lines
	Cursor core.Position
	// Selection is the selected range, empty when nothing is selected.
	Selection core.Range
	// State is the tokenizer state at the start of the cursor row.
	State State
	// Matcher finds opening brackets. When nil a plain character scan over
	// Lines is used.
	Matcher BracketMatcher
}

func (c Context) line() string {
	if c.Lines == nil || c.Cursor.Row < 0 || c.Cursor.Row >= c.Lines.LineCount() {
		return ""
	}
	return c.Lines.Line(c.Cursor.Row)
}

func (c Context) matcher() BracketMatcher {
	if c.Matcher != nil {
		return c.Matcher
	}
	return core.NewBracketMatcher(c.Lines)
}

func (c Context) selected() string {
	if c.Selection.IsEmpty() || c.Lines == nil {
		return ""
	}
	return textIn(c.Lines, c.Selection)
}

func (c Context) rightChar() rune {
	return runeAt(c.line(), c.Cursor.Col)
}

func (c Context) leftChar() rune {
	return runeAt(c.line(), c.Cursor.Col-1)
}

// InsertionFunc proposes an edit for typed text.
type InsertionFunc func(ctx Context, text string) EditAction

// DeletionFunc proposes an edit for the deletion of r.
type DeletionFunc func(ctx Context, r core.Range) EditAction

type insertion struct {
	family string
	fn     InsertionFunc
}

type deletion struct {
	family string
	fn     DeletionFunc
}

// Behaviour holds the insertion and deletion handlers, grouped by delimiter
// family and evaluated in registration order. The first handler returning
// something other than ActionNone wins.
type Behaviour struct {
	tab        string
	tokenizer  Tokenizer
	insertions []insertion
	deletions  []deletion
}

// NewBehaviour creates the engine with the C-style handlers registered. The
// tokenizer drives quote handling and may be nil, in which case quotes are
// always paired.
func NewBehaviour(tabSize int, tokenizer Tokenizer) *Behaviour {
	b := &Behaviour{tab: IndentUnit(tabSize), tokenizer: tokenizer}

	b.AddInsertion("braces", b.braceInsertion)
	b.AddDeletion("braces", pairDeletion('{', '}'))
	b.AddInsertion("parens", pairInsertion('(', ')'))
	b.AddDeletion("parens", pairDeletion('(', ')'))
	b.AddInsertion("brackets", pairInsertion('[', ']'))
	b.AddDeletion("brackets", pairDeletion('[', ']'))
	b.AddInsertion("string_dquotes", b.quoteInsertion)
	b.AddDeletion("string_dquotes", quoteDeletion)
	b.AddInsertion("comment", commentInsertion)
	b.AddInsertion("punctuation.operator", semicolonInsertion)
	b.AddInsertion("macro", macroInsertion)
	return b
}

// AddInsertion appends an insertion handler for family.
func (b *Behaviour) AddInsertion(family string, fn InsertionFunc) {
	b.insertions = append(b.insertions, insertion{family: family, fn: fn})
}

// AddDeletion appends a deletion handler for family.
func (b *Behaviour) AddDeletion(family string, fn DeletionFunc) {
	b.deletions = append(b.deletions, deletion{family: family, fn: fn})
}

// Families lists the registered families in evaluation order, without
// duplicates.
func (b *Behaviour) Families() []string {
	seen := make(map[string]bool)
	var families []string
	add := func(f string) {
		if !seen[f] {
			seen[f] = true
			families = append(families, f)
		}
	}
	for _, h := range b.insertions {
		add(h.family)
	}
	for _, h := range b.deletions {
		add(h.family)
	}
	return families
}

// OnInsert asks the handlers what typing text should do.
func (b *Behaviour) OnInsert(ctx Context, text string) EditAction {
	for _, h := range b.insertions {
		if a := h.fn(ctx, text); !a.IsNone() {
			return a
		}
	}
	return None()
}

// OnDelete asks the handlers what deleting r should do. A Replace result
// widens the deletion.
func (b *Behaviour) OnDelete(ctx Context, r core.Range) EditAction {
	for _, h := range b.deletions {
		if a := h.fn(ctx, r); !a.IsNone() {
			return a
		}
	}
	return None()
}

// skipOver consumes a typed closer when the same closer already sits right
// of the caret and has an opener.
func skipOver(ctx Context, closer rune) EditAction {
	if ctx.rightChar() != closer {
		return None()
	}
	at := core.Position{Row: ctx.Cursor.Row, Col: ctx.Cursor.Col}
	if _, ok := ctx.matcher().FindOpeningBracket(closer, at); !ok {
		return None()
	}
	return Skip()
}

func pairInsertion(open, close rune) InsertionFunc {
	return func(ctx Context, text string) EditAction {
		switch text {
		case string(open):
			if sel := ctx.selected(); sel != "" {
				return Insert(string(open) + sel + string(close))
			}
			return InsertWithCaret(string(open)+string(close), core.Position{Col: 1})
		case string(close):
			return skipOver(ctx, close)
		}
		return None()
	}
}

// pairDeletion deletes an auto-inserted closer together with its opener.
func pairDeletion(open, close rune) DeletionFunc {
	return func(ctx Context, r core.Range) EditAction {
		if r.IsMultiLine() || ctx.Lines == nil || textIn(ctx.Lines, r) != string(open) {
			return None()
		}
		line := ctx.Lines.Line(r.Start.Row)
		if runeAt(line, r.End.Col) != close {
			return None()
		}
		wide := r
		wide.End.Col++
		return Replace(wide, "")
	}
}

func semicolonInsertion(ctx Context, text string) EditAction {
	if text == ";" && ctx.rightChar() == ';' {
		return Skip()
	}
	return None()
}

// textIn returns the text covered by r, lines joined with \n.
func textIn(lines Lines, r core.Range) string {
	r = r.Normalized()
	if r.Start.Row < 0 || r.End.Row >= lines.LineCount() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		runes := []rune(lines.Line(r.Start.Row))
		s, e := min(r.Start.Col, len(runes)), min(r.End.Col, len(runes))
		if s >= e {
			return ""
		}
		return string(runes[s:e])
	}
	out := string([]rune(lines.Line(r.Start.Row))[min(r.Start.Col, runeLen(lines.Line(r.Start.Row))):])
	for row := r.Start.Row + 1; row < r.End.Row; row++ {
		out += "\n" + lines.Line(row)
	}
	return out + "\n" + cutAt(lines.Line(r.End.Row), r.End.Col)
}
