// Package cstyle implements smart indentation, outdenting and bracket
// completion for C-like source text.
//
// Three independent components make up the engine:
//
//   - Predictor computes the leading whitespace of the line that follows a
//     finished line.
//   - Outdenter decides whether a just-typed character should pull the
//     current line to the left and builds the edit that does so.
//   - Behaviour intercepts insertion and deletion of delimiters, quotes,
//     semicolons and newlines and proposes richer edits.
//
// None of them mutate anything. They read lines through the Lines interface
// and return whitespace strings or EditAction values that the host applies.
package cstyle

import "github.com/ionut-t/cppmode/core"

// State is the lexical state a tokenizer reports at a line boundary.
type State string

const (
	StateStart    State = "start"
	StateComment  State = "comment"
	StateRdStart  State = "rd-start"
	StateDocStart State = "doc-start"
)

// InComment reports whether s is one of the block comment states.
func (s State) InComment() bool {
	return s == StateComment || s == StateRdStart || s == StateDocStart
}

// Token types the engine inspects. Tokenizers may report other types; they
// are treated as code.
const (
	TokenComment      = "comment"
	TokenString       = "string"
	TokenKeyword      = "keyword"
	TokenPreprocessor = "preprocessor"
	TokenNumber       = "number"
	TokenOperator     = "operator"
	TokenPunctuation  = "punctuation"
	TokenIdentifier   = "identifier"
	TokenText         = "text"
)

// Token is one lexical unit of a line.
type Token struct {
	Type  string
	Value string
}

// Tokenizer splits a line into tokens given the state at the start of the
// line and reports the state at its end. Implementations must be
// deterministic for a given (line, state) pair.
type Tokenizer interface {
	LineTokens(line string, state State) ([]Token, State)
}

// Lines is read access to the buffer.
type Lines interface {
	Line(row int) string
	LineCount() int
}

// BracketMatcher locates the opening partner of the closer at a position.
type BracketMatcher interface {
	FindOpeningBracket(closer rune, at core.Position) (core.Position, bool)
}

// overlay replaces one row of a Lines with different text, typically the
// part of the cursor row left of the caret.
type overlay struct {
	base Lines
	row  int
	text string
}

func (o overlay) Line(row int) string {
	if row == o.row {
		return o.text
	}
	if o.base == nil {
		return ""
	}
	return o.base.Line(row)
}

func (o overlay) LineCount() int {
	n := o.row + 1
	if o.base != nil {
		n = max(n, o.base.LineCount())
	}
	return n
}
