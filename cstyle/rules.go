package cstyle

import (
	"regexp"
	"strings"
)

// lineContext is what every indent rule sees.
type lineContext struct {
	state  State
	raw    string // line as written
	line   string // line without its trailing // comment
	prior  string // previous line without its trailing // comment
	indent string
	tab    string
	row    int
	lines  Lines // buffer view whose row holds raw
}

func (c *lineContext) trimmed() string {
	return strings.TrimSpace(c.line)
}

func (c *lineContext) endsWith(chars string) bool {
	t := strings.TrimRight(c.line, " \t")
	return t != "" && strings.ContainsRune(chars, rune(t[len(t)-1]))
}

// indentRule is one entry of the predictor table. apply returns false when
// the rule does not match, in which case evaluation moves on.
type indentRule struct {
	name    string
	comment bool // evaluated in block comment states instead of start
	apply   func(c *lineContext) (string, bool)
}

var (
	reLabel        = regexp.MustCompile(`(^|[^:]):\s*$`)
	reNakedCase    = regexp.MustCompile(`\b(case\s+[\w:']+|default)\s*:\s*$`)
	reNoNesting    = regexp.MustCompile(`\b(namespace|switch)\b.*\{\s*$`)
	reCommentedFn  = regexp.MustCompile(`\)\s*\{\s*//`)
	reNakedElse    = regexp.MustCompile(`\belse\s*$`)
	reNakedIf      = regexp.MustCompile(`\bif\b.*\)\s*$`)
	reCloseStmt    = regexp.MustCompile(`([)}\]])\s*;\s*$`)
	reFunctionOpen = regexp.MustCompile(`\)\s*\{\s*$`)
	reOpenBracket  = regexp.MustCompile(`[{(\[]\s*$`)
	reCommentClose = regexp.MustCompile(`\*/\s*$`)
	reOpensBrace   = regexp.MustCompile(`\{\s*$`)
)

// defaultRules is the predictor's evaluation order. More specific shapes
// come before the general ones that would otherwise shadow them.
func defaultRules() []indentRule {
	return []indentRule{
		{name: "comment-continuation", comment: true, apply: commentContinuation},
		{name: "macro", apply: macroRule},
		{name: "template-close", apply: templateClose},
		{name: "comma-align", apply: commaAlign},
		{name: "comment-close", apply: commentClose},
		{name: "label", apply: func(c *lineContext) (string, bool) {
			return c.indent + c.tab, reLabel.MatchString(c.line)
		}},
		{name: "after-case", apply: afterNaked(reNakedCase)},
		{name: "namespace-switch", apply: func(c *lineContext) (string, bool) {
			return c.indent, reNoNesting.MatchString(c.line)
		}},
		{name: "commented-function", apply: func(c *lineContext) (string, bool) {
			return c.indent + c.tab, reCommentedFn.MatchString(c.raw)
		}},
		{name: "operator", apply: func(c *lineContext) (string, bool) {
			return c.indent + c.tab, c.endsWith("+-/*<>|&^%=")
		}},
		{name: "naked-else", apply: naked(reNakedElse)},
		{name: "after-else", apply: afterNaked(reNakedElse)},
		{name: "naked-if", apply: naked(reNakedIf)},
		{name: "after-if", apply: afterNaked(reNakedIf)},
		{name: "close-statement", apply: closeStatement},
		{name: "function-open", apply: functionOpen},
		{name: "open-bracket", apply: func(c *lineContext) (string, bool) {
			return c.indent + c.tab, reOpenBracket.MatchString(c.line)
		}},
		{name: "default", apply: func(c *lineContext) (string, bool) {
			return c.indent, true
		}},
	}
}

func commentContinuation(c *lineContext) (string, bool) {
	if i := strings.Index(c.raw, "/*"); i >= 0 {
		return alignTo(c.raw, runeLen(c.raw[:i])+1) + "* ", true
	}
	if strings.HasPrefix(strings.TrimSpace(c.raw), "*") {
		return c.indent + "* ", true
	}
	return c.indent + " * ", true
}

func macroRule(c *lineContext) (string, bool) {
	start := MacroStart(c.lines, c.row)
	if start < 0 {
		return "", false
	}
	base := indentOf(c.lines.Line(start))
	if reEndsBackslash.MatchString(c.line) {
		return base + c.tab, true
	}
	return base, true
}

func templateClose(c *lineContext) (string, bool) {
	if !c.endsWith(">") {
		return "", false
	}
	if FindOpenerRow('>', c.lines, c.row, 0) >= 0 {
		return c.indent, true
	}
	return c.indent + c.tab, true
}

func commaAlign(c *lineContext) (string, bool) {
	if !c.endsWith(",") {
		return "", false
	}
	open := unclosedOpener(c.line)
	if open < 0 {
		return "", false
	}
	runes := []rune(c.line)
	col := open + 1
	for col < len(runes) && (runes[col] == ' ' || runes[col] == '\t') {
		col++
	}
	return alignTo(c.line, col), true
}

// commentClose restores the indent of the line that opened the comment,
// undoing the one column shift of the star continuation.
func commentClose(c *lineContext) (string, bool) {
	if !reCommentClose.MatchString(c.line) {
		return "", false
	}
	for row := c.row; row >= 0; row-- {
		if strings.Contains(c.lines.Line(row), "/*") {
			return indentOf(c.lines.Line(row)), true
		}
	}
	if strings.HasPrefix(c.trimmed(), "*") && c.indent != "" {
		return c.indent[:len(c.indent)-1], true
	}
	return c.indent, true
}

func naked(re *regexp.Regexp) func(c *lineContext) (string, bool) {
	return func(c *lineContext) (string, bool) {
		return c.indent + c.tab, re.MatchString(c.line)
	}
}

// afterNaked unindents the line following a body-less control line. A line
// that opens a block is left to the later rules.
func afterNaked(re *regexp.Regexp) func(c *lineContext) (string, bool) {
	return func(c *lineContext) (string, bool) {
		if reOpensBrace.MatchString(c.line) || !re.MatchString(c.prior) {
			return "", false
		}
		return unindent(c.indent, c.tab), true
	}
}

func closeStatement(c *lineContext) (string, bool) {
	m := reCloseStmt.FindStringSubmatch(c.line)
	if m == nil {
		return "", false
	}
	row := FindOpenerRow(rune(m[1][0]), c.lines, c.row, 0)
	if row < 0 {
		return "", false
	}
	return indentOf(c.lines.Line(row)), true
}

func functionOpen(c *lineContext) (string, bool) {
	if !reFunctionOpen.MatchString(c.line) {
		return "", false
	}
	row := FindOpenerRow(')', c.lines, c.row, 0)
	if row < 0 {
		return "", false
	}
	return indentOf(c.lines.Line(row)) + c.tab, true
}
