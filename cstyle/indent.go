package cstyle

// IndentRequest carries everything the predictor needs to know about the
// line that was just finished.
type IndentRequest struct {
	// State is the tokenizer state at the end of Line.
	State State
	// Line is the text of the finished line, up to the caret.
	Line string
	// PriorLine is the line above it, or "" on the first row.
	PriorLine string
	// Tab is one indent unit.
	Tab string
	// Row is Line's row in Lines.
	Row int
	// Lines is used for upward searches. It may be nil, in which case only
	// Line and PriorLine are known.
	Lines Lines
}

// Predictor computes the indentation of the line following a finished line
// by evaluating an ordered rule table. The first matching rule wins.
type Predictor struct {
	rules []indentRule
}

func NewPredictor() *Predictor {
	return &Predictor{rules: defaultRules()}
}

// RuleNames returns the names of the rules in evaluation order.
func (p *Predictor) RuleNames() []string {
	names := make([]string, len(p.rules))
	for i, r := range p.rules {
		names[i] = r.name
	}
	return names
}

// NextLineIndent returns the whitespace prefix for the line after req.Line.
func (p *Predictor) NextLineIndent(req IndentRequest) string {
	_, indent := p.evaluate(req)
	return indent
}

// Explain returns the name of the rule that decides req, alongside its result.
func (p *Predictor) Explain(req IndentRequest) (string, string) {
	return p.evaluate(req)
}

func (p *Predictor) evaluate(req IndentRequest) (string, string) {
	line := stripLineComment(req.Line)
	c := &lineContext{
		state:  req.State,
		raw:    req.Line,
		line:   line,
		prior:  stripLineComment(req.PriorLine),
		indent: indentOf(req.Line),
		tab:    req.Tab,
		row:    max(req.Row, 0),
	}
	ov := overlay{base: req.Lines, row: c.row, text: line}
	c.lines = ov
	if req.Lines == nil && c.row > 0 {
		c.lines = priorOverlay{overlay: ov, prior: req.PriorLine}
	}

	inComment := req.State.InComment()
	if !inComment && req.State != StateStart {
		return "", c.indent
	}
	for _, r := range p.rules {
		if r.comment != inComment {
			continue
		}
		if indent, ok := r.apply(c); ok {
			return r.name, indent
		}
	}
	return "", c.indent
}

// priorOverlay exposes PriorLine when no buffer is attached to a request.
type priorOverlay struct {
	overlay
	prior string
}

func (o priorOverlay) Line(row int) string {
	if row == o.row-1 {
		return o.prior
	}
	return o.overlay.Line(row)
}
