package adapter_bubbletea

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/cppmode/adapter-bubbletea/highlighter"
	"github.com/ionut-t/cppmode/config"
	"github.com/ionut-t/cppmode/core"
	"github.com/ionut-t/cppmode/cppmode"
)

type Theme struct {
	ModeStyle              lipgloss.Style
	StatusLineStyle        lipgloss.Style
	CommandLineStyle       lipgloss.Style
	MessageStyle           lipgloss.Style
	LineNumberStyle        lipgloss.Style
	CurrentLineNumberStyle lipgloss.Style
	SelectionStyle         lipgloss.Style
	ErrorStyle             lipgloss.Style
}

var DefaultTheme = Theme{
	ModeStyle:              lipgloss.NewStyle().Background(lipgloss.Color("26")).Foreground(lipgloss.Color("255")),
	CommandLineStyle:       lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	StatusLineStyle:        lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	MessageStyle:           lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:             lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	LineNumberStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right),
	CurrentLineNumberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Align(lipgloss.Right),
	SelectionStyle:         lipgloss.NewStyle().Background(lipgloss.Color("237")),
}

// Clipboard is where yanked text goes and pasted text comes from.
type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}

type atottoClipboard struct{}

func (c *atottoClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (c *atottoClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}

type Model struct {
	mode            *cppmode.Mode
	buffer          core.Buffer
	selection       core.Selection
	highlighter     *highlighter.Highlighter
	clipboard       Clipboard
	viewport        viewport.Model
	width           int
	height          int
	topLine         int
	showLineNumbers bool
	showStatusLine  bool
	theme           Theme
	StatusLineFunc  func() string
	err             error
	message         string
	isFocused       bool
	path            string
}

type ErrorMsg struct {
	ID    core.ErrorId
	Error error
}

type SaveMsg struct {
	Path    string
	Content string
}

type YankMsg struct {
	Content string
}

type PasteMsg struct {
	Content string
}

type QuitMsg struct{}

type clearMsg struct{}

// New creates a C/C++ editor sized width x height, the last two rows being
// the status and command lines.
func New(width, height int, settings config.Settings) Model {
	hl := highlighter.New(settings.Theme)

	m := Model{
		mode:            cppmode.New(settings.TabSize, hl),
		buffer:          core.NewBuffer(),
		highlighter:     hl,
		clipboard:       &atottoClipboard{},
		viewport:        viewport.New(width, max(height-2, 1)),
		showLineNumbers: settings.LineNumbers,
		showStatusLine:  true,
		theme:           DefaultTheme,
	}

	m.SetSize(width, height)
	return m
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-2, 1)
	m.scrollToCursor()
	m.renderVisibleSlice()
}

// SetBytes replaces the buffer content and moves the caret to the start.
func (m *Model) SetBytes(content []byte) {
	m.buffer = core.NewBufferFromBytes(content)
	m.selection = core.Caret(core.Position{})
	m.topLine = 0
	m.highlighter.InvalidateCache()
	m.renderVisibleSlice()
}

func (m *Model) SetContent(content string) {
	m.SetBytes([]byte(content))
}

// SetPath sets the file name reported in SaveMsg and the status line.
func (m *Model) SetPath(path string) {
	m.path = path
}

func (m *Model) WithTheme(theme Theme) {
	m.theme = theme
}

// WithClipboard replaces the system clipboard.
func (m *Model) WithClipboard(c Clipboard) {
	m.clipboard = c
}

func (m *Model) HideLineNumbers(hide bool) {
	m.showLineNumbers = !hide
}

func (m *Model) HideStatusLine(hide bool) {
	m.showStatusLine = !hide
}

// SetCursorPosition collapses the selection at row, col.
func (m *Model) SetCursorPosition(row, col int) error {
	if row < 0 || row >= m.buffer.LineCount() || col < 0 || col > m.buffer.LineRuneCount(row) {
		return core.NewEditorError(core.ErrInvalidPositionId,
			fmt.Errorf("%w: %d:%d", core.ErrInvalidPosition, row, col))
	}
	p := core.Position{Row: row, Col: col}
	m.buffer.SetCursor(core.Cursor{Position: p, Preferred: col})
	m.selection = core.Caret(p)
	m.scrollToCursor()
	m.renderVisibleSlice()
	return nil
}

// GetSavedContent returns the content as of the last save.
func (m *Model) GetSavedContent() string {
	return m.buffer.GetSavedContent()
}

func (m *Model) GetCurrentContent() string {
	return m.buffer.GetCurrentContent()
}

func (m *Model) HasChanges() bool {
	return m.buffer.IsModified()
}

func (m *Model) Selection() core.Selection {
	return m.selection
}

func (m *Model) Focus() {
	m.isFocused = true
}

func (m *Model) Blur() {
	m.isFocused = false
}

func (m *Model) IsFocused() bool {
	return m.isFocused
}

// DispatchMessage shows message on the command line for duration.
func (m *Model) DispatchMessage(message string, duration time.Duration) tea.Cmd {
	m.message = message
	m.err = nil
	return dispatchClearMsg(duration)
}

// DispatchError shows err on the command line for duration.
func (m *Model) DispatchError(err error, duration time.Duration) tea.Cmd {
	m.message = ""
	m.err = err
	return dispatchClearMsg(duration)
}

func dispatchClearMsg(duration time.Duration) tea.Cmd {
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return clearMsg{}
	})
}

func errorCmd(id core.ErrorId, err error) tea.Cmd {
	var editorErr *core.EditorError
	if errors.As(err, &editorErr) {
		id = editorErr.ID()
	}
	return func() tea.Msg {
		return ErrorMsg{ID: id, Error: err}
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.IsFocused() {
			break
		}
		cmd = m.handleKey(msg)
		m.scrollToCursor()

	case clearMsg:
		m.message = ""
		m.err = nil
	}

	m.renderVisibleSlice()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	var err error

	switch msg.String() {
	case "ctrl+s":
		m.buffer.SaveContent()
		saved := SaveMsg{Path: m.path, Content: m.buffer.GetSavedContent()}
		return func() tea.Msg { return saved }

	case "ctrl+q":
		return func() tea.Msg { return QuitMsg{} }

	case "ctrl+y":
		return m.yank()

	case "ctrl+v":
		text, err := m.clipboard.Read()
		if err != nil {
			return errorCmd(core.ErrFailedToPasteId, err)
		}
		if m.selection, err = m.mode.InsertText(m.buffer, m.selection, text); err != nil {
			return errorCmd(core.ErrFailedToPasteId, err)
		}
		return func() tea.Msg { return PasteMsg{Content: text} }

	case "ctrl+_":
		m.selection, err = m.mode.ToggleComment(m.buffer, m.selection)

	default:
		switch {
		case msg.Paste:
			m.selection, err = m.mode.InsertText(m.buffer, m.selection, string(msg.Runes))
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 1:
			m.selection, err = m.mode.Type(m.buffer, m.selection, string(msg.Runes))
		default:
			m.selection, err = m.mode.HandleKey(m.buffer, m.selection, convertBubbleKey(msg))
		}
	}

	if err != nil {
		return errorCmd(core.ErrFailedToApplyId, err)
	}
	return nil
}

// yank copies the selection, or the caret's line when nothing is selected.
func (m *Model) yank() tea.Cmd {
	text := m.buffer.TextRange(m.selection.Range())
	if m.selection.IsEmpty() {
		text = m.buffer.Line(m.selection.Head.Row) + "\n"
	}
	if err := m.clipboard.Write(text); err != nil {
		return errorCmd(core.ErrFailedToYankId, err)
	}
	return func() tea.Msg { return YankMsg{Content: text} }
}

func (m Model) View() string {
	content := m.viewport.View()
	if !m.showStatusLine {
		return content
	}

	var commandLine string
	if m.message != "" {
		commandLine = m.theme.MessageStyle.
			Background(m.theme.CommandLineStyle.GetBackground()).
			Render(m.message)
	}
	if m.err != nil {
		commandLine = m.theme.ErrorStyle.
			Background(m.theme.CommandLineStyle.GetBackground()).
			Render(m.err.Error())
	}

	statusLine := m.getStatusLine()

	paddingWidth := m.width - lipgloss.Width(statusLine)
	if paddingWidth > 0 {
		statusLine += m.theme.StatusLineStyle.Render(strings.Repeat(" ", paddingWidth))
	}

	paddingWidth = m.width - lipgloss.Width(commandLine)
	if paddingWidth > 0 {
		commandLine += m.theme.CommandLineStyle.Render(strings.Repeat(" ", paddingWidth))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		statusLine,
		commandLine,
	)
}
