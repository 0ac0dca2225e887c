package highlighter

import (
	"regexp"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/cppmode/cstyle"
)

// Highlighter tokenizes C++ one line at a time. It styles tokens for display
// and implements cstyle.Tokenizer for the editing engine.
type Highlighter struct {
	lexer      chroma.Lexer
	style      *chroma.Style
	cache      map[cacheKey]lineTokens
	cacheLimit int
	styleCache map[chroma.TokenType]lipgloss.Style
	cacheMutex sync.RWMutex
}

// maxCachedLines bounds the token cache. Every edited version of a line gets
// its own entry, so the cache is dropped once it grows past this.
const maxCachedLines = 4096

type cacheKey struct {
	line  string
	state cstyle.State
}

type lineTokens struct {
	tokens []chroma.Token
	state  cstyle.State
}

// TokenPosition represents a token's position in the original line
type TokenPosition struct {
	Token    chroma.Token
	StartCol int
	EndCol   int
}

// New creates a C++ highlighter using the named chroma style.
func New(theme string) *Highlighter {
	lexer := lexers.Get("cpp")
	if lexer == nil {
		lexer = lexers.Fallback
	}

	lexer = chroma.Coalesce(lexer)

	return &Highlighter{
		lexer:      lexer,
		style:      styles.Get(theme),
		cache:      make(map[cacheKey]lineTokens),
		cacheLimit: maxCachedLines,
		styleCache: make(map[chroma.TokenType]lipgloss.Style),
	}
}

// InvalidateCache clears the token cache
func (sh *Highlighter) InvalidateCache() {
	sh.cacheMutex.Lock()
	defer sh.cacheMutex.Unlock()
	sh.cache = make(map[cacheKey]lineTokens)
	sh.styleCache = make(map[chroma.TokenType]lipgloss.Style)
}

// StyledTokens returns the chroma tokens of line when it is entered in state,
// and the state at its end.
func (sh *Highlighter) StyledTokens(line string, state cstyle.State) ([]chroma.Token, cstyle.State) {
	key := cacheKey{line: line, state: state}

	sh.cacheMutex.RLock()
	cached, ok := sh.cache[key]
	sh.cacheMutex.RUnlock()
	if ok {
		return cached.tokens, cached.state
	}

	segs, end := splitLine(line, state)
	var tokens []chroma.Token
	for i, seg := range segs {
		if seg.comment {
			typ := chroma.CommentMultiline
			if strings.HasPrefix(seg.text, "//") {
				typ = chroma.CommentSingle
			}
			tokens = append(tokens, chroma.Token{Type: typ, Value: seg.text})
			continue
		}
		if i == 0 && state == cstyle.StateStart {
			tokens = append(tokens, sh.lexLineStart(seg.text)...)
			continue
		}
		tokens = append(tokens, sh.lexCode(seg.text)...)
	}

	sh.cacheMutex.Lock()
	if len(sh.cache) >= sh.cacheLimit {
		sh.cache = make(map[cacheKey]lineTokens)
	}
	sh.cache[key] = lineTokens{tokens: tokens, state: end}
	sh.cacheMutex.Unlock()

	return tokens, end
}

// reDefineHead matches a #define directive up to the end of the macro name
// and its parameter list.
var reDefineHead = regexp.MustCompile(`^\s*#\s*define\s+\w+(\([^)]*\))?`)

// lexLineStart lexes code that begins a line. chroma reports everything
// after a preprocessor directive as one token, so the replacement text of a
// #define is lexed as code to expose its literals.
func (sh *Highlighter) lexLineStart(code string) []chroma.Token {
	loc := reDefineHead.FindStringIndex(code)
	if loc == nil || loc[1] == len(code) {
		return sh.lexCode(code)
	}
	return append(sh.lexCode(code[:loc[1]]), sh.lexCode(code[loc[1]:])...)
}

func (sh *Highlighter) lexCode(code string) []chroma.Token {
	iterator, err := sh.lexer.Tokenise(nil, code)
	if err != nil {
		return []chroma.Token{{Type: chroma.Text, Value: code}}
	}

	var tokens []chroma.Token
	for _, token := range iterator.Tokens() {
		value := strings.ReplaceAll(token.Value, "\n", "")
		if value == "" {
			continue
		}
		tokens = append(tokens, chroma.Token{Type: token.Type, Value: value})
	}
	return tokens
}

// LineTokens implements cstyle.Tokenizer. Adjacent tokens of the same kind
// are merged so a string literal is reported as one token.
func (sh *Highlighter) LineTokens(line string, state cstyle.State) ([]cstyle.Token, cstyle.State) {
	styled, end := sh.StyledTokens(line, state)

	tokens := make([]cstyle.Token, 0, len(styled))
	for _, t := range styled {
		kind := Kind(t.Type)
		if n := len(tokens); n > 0 && tokens[n-1].Type == kind {
			tokens[n-1].Value += t.Value
			continue
		}
		tokens = append(tokens, cstyle.Token{Type: kind, Value: t.Value})
	}
	return tokens, end
}

// Lines tokenizes consecutive lines, threading the state from the first.
func (sh *Highlighter) Lines(lines []string) [][]chroma.Token {
	out := make([][]chroma.Token, len(lines))
	state := cstyle.StateStart
	for i, line := range lines {
		out[i], state = sh.StyledTokens(line, state)
	}
	return out
}

// Kind maps a chroma token type onto the token types the engine inspects.
func Kind(t chroma.TokenType) string {
	switch {
	case t == chroma.CommentPreprocFile:
		// quoted include paths behave as strings while typing
		return cstyle.TokenString
	case t.InSubCategory(chroma.CommentPreproc):
		return cstyle.TokenPreprocessor
	case t.InCategory(chroma.Comment):
		return cstyle.TokenComment
	case t.InSubCategory(chroma.LiteralString):
		return cstyle.TokenString
	case t.InSubCategory(chroma.LiteralNumber):
		return cstyle.TokenNumber
	case t.InCategory(chroma.Keyword):
		return cstyle.TokenKeyword
	case t.InCategory(chroma.Operator):
		return cstyle.TokenOperator
	case t.InCategory(chroma.Punctuation):
		return cstyle.TokenPunctuation
	case t.InCategory(chroma.Name):
		return cstyle.TokenIdentifier
	}
	return cstyle.TokenText
}

// GetStyleForToken converts a Chroma token type to a lipgloss style.
func (sh *Highlighter) GetStyleForToken(tokenType chroma.TokenType) lipgloss.Style {
	sh.cacheMutex.RLock()
	style, ok := sh.styleCache[tokenType]
	sh.cacheMutex.RUnlock()
	if ok {
		return style
	}

	entry := sh.style.Get(tokenType)

	style = lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}

	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	sh.cacheMutex.Lock()
	sh.styleCache[tokenType] = style
	sh.cacheMutex.Unlock()

	return style
}

// GetTokenPositions converts tokens to positions in the logical line.
func GetTokenPositions(tokens []chroma.Token) []TokenPosition {
	positions := make([]TokenPosition, 0, len(tokens))
	currentCol := 0

	for _, token := range tokens {
		tokenLen := len([]rune(token.Value))

		positions = append(positions, TokenPosition{
			Token:    token,
			StartCol: currentCol,
			EndCol:   currentCol + tokenLen,
		})

		currentCol += tokenLen
	}

	return positions
}

// FindTokenAtPosition finds which token contains the given column position.
func FindTokenAtPosition(positions []TokenPosition, col int) (chroma.Token, bool) {
	for _, pos := range positions {
		if col >= pos.StartCol && col < pos.EndCol {
			return pos.Token, true
		}
	}
	return chroma.Token{}, false
}
