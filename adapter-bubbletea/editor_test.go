package adapter_bubbletea

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/cppmode/config"
	"github.com/ionut-t/cppmode/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memClipboard struct {
	text string
	err  error
}

func (c *memClipboard) Write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func (c *memClipboard) Read() (string, error) {
	return c.text, c.err
}

func newTestModel(t *testing.T, content string) (Model, *memClipboard) {
	t.Helper()
	m := New(60, 12, config.Default())
	cb := &memClipboard{}
	m.WithClipboard(cb)
	m.SetContent(content)
	m.Focus()
	return m, cb
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConvertBubbleKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.KeyEvent
	}{
		{"rune", runes("{"), core.KeyEvent{Rune: '{'}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, core.KeyEvent{Rune: 'x', Modifiers: core.ModAlt}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.KeyEvent{Rune: ' ', Key: core.KeySpace}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEvent{Key: core.KeyEnter}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.KeyEvent{Key: core.KeyTab, Rune: '\t'}},
		{"shift left", tea.KeyMsg{Type: tea.KeyShiftLeft}, core.KeyEvent{Key: core.KeyLeft, Modifiers: core.ModShift}},
		{"ctrl key", tea.KeyMsg{Type: tea.KeyCtrlB}, core.KeyEvent{Modifiers: core.ModCtrl}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertBubbleKey(tt.msg))
		})
	}
}

func TestTypingIndents(t *testing.T) {
	m, _ := newTestModel(t, "")

	m, cmd := press(t, m,
		runes("i"), runes("f"), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")},
		runes("("), runes("x"), runes(")"),
		tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, runes("{"),
		tea.KeyMsg{Type: tea.KeyEnter}, runes("y"), runes(";"),
	)
	assert.Nil(t, cmd)
	assert.Equal(t, "if (x) {\n    y;\n}", m.GetCurrentContent())
	assert.Equal(t, core.Caret(core.Position{Row: 1, Col: 6}), m.Selection())
	assert.True(t, m.HasChanges())
}

func TestBlurredModelIgnoresKeys(t *testing.T) {
	m, _ := newTestModel(t, "x")
	m.Blur()
	m, _ = press(t, m, runes("y"))
	assert.Equal(t, "x", m.GetCurrentContent())
}

func TestMultiRuneMessageIsTyped(t *testing.T) {
	m, _ := newTestModel(t, "")
	m, _ = press(t, m, runes("f("))
	assert.Equal(t, "f()", m.GetCurrentContent())
}

func TestBracketedPasteSkipsCompletion(t *testing.T) {
	m, _ := newTestModel(t, "")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f(\n"), Paste: true})
	assert.Equal(t, "f(\n", m.GetCurrentContent())
}

func TestSave(t *testing.T) {
	m, _ := newTestModel(t, "a")
	m.SetPath("a.cpp")
	m, _ = press(t, m, runes("b"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.Equal(t, SaveMsg{Path: "a.cpp", Content: "ba"}, cmd())
	assert.False(t, m.HasChanges())
	assert.Equal(t, "ba", m.GetSavedContent())
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t, "a")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.NotNil(t, cmd)
	assert.Equal(t, QuitMsg{}, cmd())
	assert.Equal(t, "a", m.GetCurrentContent())
}

func TestYankAndPaste(t *testing.T) {
	m, cb := newTestModel(t, "int x;")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	assert.Equal(t, YankMsg{Content: "int x;\n"}, cmd())
	assert.Equal(t, "int x;\n", cb.text)

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlV})
	require.NotNil(t, cmd)
	assert.Equal(t, PasteMsg{Content: "int x;\n"}, cmd())
	assert.Equal(t, "int x;\nint x;", m.GetCurrentContent())
}

func TestYankSelection(t *testing.T) {
	m, cb := newTestModel(t, "abc")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftRight}, tea.KeyMsg{Type: tea.KeyShiftRight})
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	assert.Equal(t, "ab", cb.text)
}

func TestClipboardFailure(t *testing.T) {
	m, cb := newTestModel(t, "abc")
	cb.err = errors.New("no clipboard")

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	msg, ok := cmd().(ErrorMsg)
	require.True(t, ok)
	assert.Equal(t, core.ErrFailedToYankId, msg.ID)
}

func TestToggleCommentKey(t *testing.T) {
	m, _ := newTestModel(t, "x;")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlUnderscore})
	assert.Equal(t, "//x;", m.GetCurrentContent())
}

func TestBackspaceAtStartReportsError(t *testing.T) {
	m, _ := newTestModel(t, "x")
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	require.NotNil(t, cmd)
	msg, ok := cmd().(ErrorMsg)
	require.True(t, ok)
	assert.Equal(t, core.ErrStartOfBufferId, msg.ID)
}

func TestSetCursorPosition(t *testing.T) {
	m, _ := newTestModel(t, "ab\ncd")
	require.NoError(t, m.SetCursorPosition(1, 2))
	assert.Equal(t, core.Caret(core.Position{Row: 1, Col: 2}), m.Selection())
	assert.ErrorIs(t, m.SetCursorPosition(3, 0), core.ErrInvalidPosition)
}

func TestScrollFollowsCursor(t *testing.T) {
	m, _ := newTestModel(t, "a\nb\nc\nd\ne\nf\ng\nh\ni\nj\nk\nl\nm\nn")
	require.NoError(t, m.SetCursorPosition(13, 0))
	assert.Equal(t, 4, m.topLine)
	require.NoError(t, m.SetCursorPosition(2, 0))
	assert.Equal(t, 2, m.topLine)
}

func TestViewShowsStatus(t *testing.T) {
	m, _ := newTestModel(t, "int x;")
	m.SetPath("main.cpp")
	view := m.View()
	assert.Contains(t, view, "C++")
	assert.Contains(t, view, "main.cpp")
	assert.Contains(t, view, "1/1")
}

func TestDisplayColumnCountsWideRunes(t *testing.T) {
	m, _ := newTestModel(t, "世界x")
	require.NoError(t, m.SetCursorPosition(0, 2))
	assert.Equal(t, 4, m.displayColumn())
}
