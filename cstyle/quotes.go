package cstyle

import (
	"strings"

	"github.com/ionut-t/cppmode/core"
)

func (b *Behaviour) quoteInsertion(ctx Context, text string) EditAction {
	if text != `"` && text != "'" {
		return None()
	}
	pair := InsertWithCaret(text+text, core.Position{Col: 1})

	if sel := ctx.selected(); sel != "" {
		return Insert(text + sel + text)
	}
	if ctx.leftChar() == '\\' {
		return None()
	}
	if b.tokenizer == nil {
		return pair
	}

	tokens, _ := b.tokenizer.LineTokens(ctx.line(), ctx.State)
	if len(tokens) == 0 {
		return pair
	}

	// Find the token holding the caret, noting whether a bare quote of the
	// same kind appeared in code before it.
	col, start, quotePos := 0, 0, -1
	var tok Token
	for _, t := range tokens {
		tok, start = t, col
		if t.Type == TokenString {
			quotePos = -1
		} else if quotePos < 0 {
			quotePos = strings.Index(t.Value, text)
		}
		col += runeLen(t.Value)
		if col > ctx.Cursor.Col {
			break
		}
	}

	switch {
	case tok.Type == TokenComment:
		return pair
	case tok.Type == TokenString:
		closed := strings.HasSuffix(tok.Value, text) && runeLen(tok.Value) > 1
		atClosing := ctx.Cursor.Col == start+runeLen(tok.Value)-1
		if closed && !atClosing {
			return pair
		}
		if ctx.rightChar() == rune(text[0]) {
			return Skip()
		}
		return None()
	case quotePos >= 0:
		return None()
	}
	return pair
}

func quoteDeletion(ctx Context, r core.Range) EditAction {
	if r.IsMultiLine() || ctx.Lines == nil {
		return None()
	}
	q := textIn(ctx.Lines, r)
	if q != `"` && q != "'" {
		return None()
	}
	return pairDeletion(rune(q[0]), rune(q[0]))(ctx, r)
}
