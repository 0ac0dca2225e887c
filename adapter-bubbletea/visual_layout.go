package adapter_bubbletea

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/cppmode/adapter-bubbletea/highlighter"
	"github.com/ionut-t/cppmode/core"
	"github.com/rivo/uniseg"
)

func (m *Model) calculateLineNumberWidth(totalLines int) int {
	if !m.showLineNumbers {
		return 0
	}
	maxWidth := len(strconv.Itoa(max(1, totalLines)))
	return min(max(4, maxWidth)+1, 10)
}

// scrollToCursor keeps the caret's row inside the viewport. Lines are not
// wrapped, so buffer rows and screen rows coincide.
func (m *Model) scrollToCursor() {
	row := m.selection.Head.Row
	height := m.viewport.Height

	if row < m.topLine {
		m.topLine = row
	} else if row >= m.topLine+height {
		m.topLine = row - height + 1
	}

	maxTop := max(0, m.buffer.LineCount()-height)
	m.topLine = max(0, min(m.topLine, maxTop))
}

func (m *Model) getCursorStyles() lipgloss.Style {
	return lipgloss.NewStyle().Reverse(true)
}

func (m *Model) isSelected(p core.Position) bool {
	r := m.selection.Range()
	return !r.IsEmpty() && !p.Before(r.Start) && p.Before(r.End)
}

// renderVisibleSlice renders the rows between topLine and the bottom of the
// viewport with syntax colours, selection and caret.
func (m *Model) renderVisibleSlice() {
	lines := m.buffer.GetLines()
	tokens := m.highlighter.Lines(lines)
	lineNumWidth := m.calculateLineNumberWidth(len(lines))
	tabWidth := len(m.mode.Tab())

	var contentBuilder strings.Builder
	end := min(m.topLine+m.viewport.Height, len(lines))
	for row := m.topLine; row < end; row++ {
		if row > m.topLine {
			contentBuilder.WriteByte('\n')
		}

		if m.showLineNumbers {
			lineNumberStyle := m.theme.LineNumberStyle
			if row == m.selection.Head.Row {
				lineNumberStyle = m.theme.CurrentLineNumberStyle
			}
			contentBuilder.WriteString(lineNumberStyle.Width(lineNumWidth-1).Render(strconv.Itoa(row+1)) + " ")
		}

		contentBuilder.WriteString(m.renderLineWithSyntax(row, tokens[row], tabWidth))
	}

	m.viewport.SetContent(contentBuilder.String())
}

func (m *Model) renderLineWithSyntax(row int, tokens []chroma.Token, tabWidth int) string {
	var styledLine strings.Builder
	cursor := m.selection.Head
	col := 0

	for _, token := range tokens {
		tokenStyle := m.highlighter.GetStyleForToken(token.Type)
		for _, r := range token.Value {
			pos := core.Position{Row: row, Col: col}
			style := tokenStyle
			if m.isSelected(pos) {
				style = style.Background(m.theme.SelectionStyle.GetBackground())
			}
			if pos == cursor && m.isFocused {
				style = m.getCursorStyles()
			}

			text := string(r)
			if r == '\t' {
				text = strings.Repeat(" ", max(tabWidth, 1))
			}
			styledLine.WriteString(style.Render(text))
			col++
		}
	}

	if cursor.Row == row && cursor.Col >= col && m.isFocused {
		styledLine.WriteString(m.getCursorStyles().Render(" "))
	}
	return styledLine.String()
}

// displayColumn is the screen column of the caret, counting wide graphemes
// as two cells.
func (m *Model) displayColumn() int {
	runes := m.buffer.GetLineRunes(m.selection.Head.Row)
	prefix := string(runes[:min(m.selection.Head.Col, len(runes))])
	return uniseg.StringWidth(prefix)
}

// tokenUnderCursor names the lexical class of the text at the caret.
func (m *Model) tokenUnderCursor() string {
	row := m.selection.Head.Row
	state := m.mode.StateAt(m.buffer, row)
	tokens, _ := m.highlighter.StyledTokens(m.buffer.Line(row), state)
	positions := highlighter.GetTokenPositions(tokens)
	if token, ok := highlighter.FindTokenAtPosition(positions, m.selection.Head.Col); ok {
		return highlighter.Kind(token.Type)
	}
	return string(state)
}

func (m *Model) getStatusLine() string {
	if m.StatusLineFunc != nil {
		return m.StatusLineFunc()
	}

	statusLine := m.theme.ModeStyle.Render(" C++ ")

	name := m.path
	if name == "" {
		name = "[No Name]"
	}
	if m.buffer.IsModified() {
		name += " [+]"
	}

	cursor := m.selection.Head
	cursorInfo := fmt.Sprintf("%s  %d/%d ", m.tokenUnderCursor(), cursor.Row+1, m.displayColumn()+1)

	left := " " + name
	width := m.width - (lipgloss.Width(statusLine) + lipgloss.Width(left) + lipgloss.Width(cursorInfo))
	gap := strings.Repeat(" ", max(0, width))

	statusLine += m.theme.StatusLineStyle.Render(left + gap + cursorInfo)
	return statusLine
}
