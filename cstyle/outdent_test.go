package cstyle_test

import (
	"testing"

	"github.com/ionut-t/cppmode/core"
	"github.com/ionut-t/cppmode/cstyle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldOutdent(t *testing.T) {
	tests := []struct {
		name  string
		state cstyle.State
		line  string
		input string
		want  bool
	}{
		{"closing brace on blank line", cstyle.StateStart, "        ", "}", true},
		{"closing brace on empty line", cstyle.StateStart, "", "}", true},
		{"closing brace after code", cstyle.StateStart, "  x", "}", false},
		{"other input on blank line", cstyle.StateStart, "    ", "x", false},
		{"inside a comment", cstyle.StateComment, "    ", "}", false},
		{"access specifier colon", cstyle.StateStart, "    public", ":", true},
		{"protected colon", cstyle.StateStart, "  protected", ":", true},
		{"identifier colon", cstyle.StateStart, "    publicity", ":", false},
		{"case colon", cstyle.StateStart, "    case 1", ":", false},
	}

	o := cstyle.NewOutdenter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, o.ShouldOutdent(tt.state, tt.line, tt.input))
		})
	}
}

func TestAutoOutdent(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		row   int
		want  cstyle.EditAction
		ok    bool
	}{
		{
			name:  "brace returns to column zero",
			lines: []string{"int main() {", "    }"},
			row:   1,
			want:  cstyle.Replace(core.NewRange(1, 0, 1, 4), ""),
			ok:    true,
		},
		{
			name:  "brace copies opener indent",
			lines: []string{"  if (x) {", "      foo();", "      }"},
			row:   2,
			want:  cstyle.Replace(core.NewRange(2, 0, 2, 6), "  "),
			ok:    true,
		},
		{
			name:  "brace already aligned",
			lines: []string{"if (x) {", "}"},
			row:   1,
			ok:    false,
		},
		{
			name:  "brace without opener",
			lines: []string{"    }"},
			row:   0,
			ok:    false,
		},
		{
			name:  "access specifier to class indent",
			lines: []string{"class A {", "    int x;", "    public:"},
			row:   2,
			want:  cstyle.Replace(core.NewRange(2, 0, 2, 4), ""),
			ok:    true,
		},
		{
			name:  "access specifier with brace on its own line",
			lines: []string{"  struct B", "  {", "      void f() {}", "      protected:"},
			row:   3,
			want:  cstyle.Replace(core.NewRange(3, 0, 3, 6), "  "),
			ok:    true,
		},
		{
			name:  "access specifier outside a class",
			lines: []string{"    private:"},
			row:   0,
			ok:    false,
		},
		{
			name:  "ordinary line",
			lines: []string{"    x = 1;"},
			row:   0,
			ok:    false,
		},
		{
			name:  "row out of range",
			lines: []string{"}"},
			row:   3,
			ok:    false,
		},
	}

	o := cstyle.NewOutdenter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := o.AutoOutdent(core.StringLines(tt.lines), tt.row, nil)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			} else {
				assert.True(t, got.IsNone())
			}
		})
	}
}

type stubMatcher struct {
	pos core.Position
	ok  bool
}

func (m stubMatcher) FindOpeningBracket(rune, core.Position) (core.Position, bool) {
	return m.pos, m.ok
}

func TestAutoOutdentUsesMatcher(t *testing.T) {
	lines := core.StringLines{"namespace n {", "    void f() {", "        }"}

	got, ok := cstyle.NewOutdenter().AutoOutdent(lines, 2, stubMatcher{pos: core.Position{Row: 0, Col: 12}, ok: true})
	require.True(t, ok)
	assert.Equal(t, cstyle.Replace(core.NewRange(2, 0, 2, 8), ""), got)

	_, ok = cstyle.NewOutdenter().AutoOutdent(lines, 2, stubMatcher{})
	assert.False(t, ok)
}
