package cstyle

import (
	"testing"

	"github.com/ionut-t/cppmode/core"
	"github.com/stretchr/testify/assert"
)

func TestUnindent(t *testing.T) {
	tests := []struct {
		indent, tab, want string
	}{
		{"        ", "    ", "    "},
		{"    ", "    ", ""},
		{"", "    ", ""},
		{"  ", "    ", ""},
		{"\t\t", "    ", "\t"},
		{"      ", "    ", "  "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, unindent(tt.indent, tt.tab), "unindent(%q)", tt.indent)
	}
}

func TestAlignTo(t *testing.T) {
	assert.Equal(t, "   ", alignTo("abc", 3))
	assert.Equal(t, "\t  ", alignTo("\tab", 3))
	assert.Equal(t, "     ", alignTo("ab", 5))
	assert.Equal(t, "", alignTo("ab", 0))
}

func TestUnclosedOpener(t *testing.T) {
	assert.Equal(t, 5, unclosedOpener("int f(int a,"))
	assert.Equal(t, 8, unclosedOpener("f(a(b), {x,"))
	assert.Equal(t, -1, unclosedOpener("f(a, b),"))
	assert.Equal(t, 1, unclosedOpener("a[b(c)"))
}

func TestStripLineComment(t *testing.T) {
	assert.Equal(t, "x = 1; ", stripLineComment("x = 1; // one"))
	assert.Equal(t, "no comment", stripLineComment("no comment"))
	// A // inside a literal is treated as a comment too.
	assert.Equal(t, `url = "http:`, stripLineComment(`url = "http://x";`))
}

func TestIndentUnit(t *testing.T) {
	assert.Equal(t, "    ", IndentUnit(4))
	assert.Equal(t, "  ", IndentUnit(2))
	assert.Equal(t, "\t", IndentUnit(0))
}

func TestOverlay(t *testing.T) {
	o := overlay{base: core.StringLines{"a", "b"}, row: 1, text: "B"}
	assert.Equal(t, "a", o.Line(0))
	assert.Equal(t, "B", o.Line(1))
	assert.Equal(t, 2, o.LineCount())

	lone := overlay{row: 3, text: "x"}
	assert.Equal(t, "", lone.Line(0))
	assert.Equal(t, 4, lone.LineCount())
}

func TestTextIn(t *testing.T) {
	lines := core.StringLines{"hello", "big", "world"}
	assert.Equal(t, "ell", textIn(lines, core.NewRange(0, 1, 0, 4)))
	assert.Equal(t, "llo\nbig\nwo", textIn(lines, core.NewRange(0, 2, 2, 2)))
	assert.Equal(t, "llo\nbig\nwo", textIn(lines, core.NewRange(2, 2, 0, 2)))
	assert.Equal(t, "", textIn(lines, core.NewRange(0, 9, 0, 12)))
}
