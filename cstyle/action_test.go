package cstyle_test

import (
	"testing"

	"github.com/ionut-t/cppmode/core"
	"github.com/ionut-t/cppmode/cstyle"
	"github.com/stretchr/testify/assert"
)

func TestCaretAfter(t *testing.T) {
	start := core.Position{Row: 2, Col: 3}

	tests := []struct {
		name   string
		action cstyle.EditAction
		want   core.Position
	}{
		{"plain text", cstyle.Insert("ab"), core.Position{Row: 2, Col: 5}},
		{"multi-line text", cstyle.Insert("a\nbc"), core.Position{Row: 3, Col: 2}},
		{"multibyte text", cstyle.Insert("é€"), core.Position{Row: 2, Col: 5}},
		{"caret between pair", cstyle.InsertWithCaret("{}", core.Position{Col: 1}), core.Position{Row: 2, Col: 4}},
		{"caret on later row", cstyle.InsertWithCaret("\n    \n", core.Position{Row: 1, Col: 4}), core.Position{Row: 3, Col: 4}},
		{"empty replacement", cstyle.Replace(core.NewRange(2, 3, 2, 5), ""), start},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.action.CaretAfter(start))
		})
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "none", cstyle.None().String())
	assert.Equal(t, "skip", cstyle.Skip().String())
	assert.Equal(t, `insert "{}"`, cstyle.InsertWithCaret("{}", core.Position{Col: 1}).String())
	assert.Equal(t, `replace [1:0-1:4) with ""`, cstyle.Replace(core.NewRange(1, 0, 1, 4), "").String())
	assert.Equal(t, "ActionKind(9)", cstyle.ActionKind(9).String())
}
