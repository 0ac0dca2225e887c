package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	editor "github.com/ionut-t/cppmode/adapter-bubbletea"
	"github.com/ionut-t/cppmode/adapter-bubbletea/highlighter"
	"github.com/ionut-t/cppmode/config"
	"github.com/ionut-t/cppmode/cppmode"
)

const messageDuration = 3 * time.Second

type Model struct {
	editor editor.Model
	file   string
}

func (m Model) Init() tea.Cmd {
	return m.editor.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor.SetSize(msg.Width-4, msg.Height-2)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

	case editor.ErrorMsg:
		return m, m.editor.DispatchError(msg.Error, messageDuration)

	case editor.YankMsg:
		return m, m.editor.DispatchMessage(fmt.Sprintf("%d bytes yanked", len(msg.Content)), messageDuration)

	case editor.PasteMsg:
		return m, m.editor.DispatchMessage(fmt.Sprintf("%d bytes pasted", len(msg.Content)), messageDuration)

	case editor.SaveMsg:
		filePath := m.file
		if strings.HasPrefix(filePath, "~/") {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return m, m.editor.DispatchError(err, messageDuration)
			}
			filePath = filepath.Join(homeDir, filePath[2:])
		}

		if err := os.WriteFile(filePath, []byte(msg.Content), 0644); err != nil {
			return m, m.editor.DispatchError(err, messageDuration)
		}

		return m, m.editor.DispatchMessage(fmt.Sprintf("file saved to %s", m.file), messageDuration)

	case editor.QuitMsg:
		return m, tea.Quit
	}

	editorModel, cmd := m.editor.Update(msg)
	m.editor = editorModel.(editor.Model)

	return m, cmd
}

func (m Model) View() string {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(m.editor.View())
}

func main() {
	configPath := flag.String("config", "cppmode.toml", "settings file")
	reindent := flag.Bool("reindent", false, "print the file reindented and exit")
	flag.Parse()

	file := "main.cpp"
	if flag.NArg() > 0 {
		file = flag.Arg(0)
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}

	if *reindent {
		content, err := os.ReadFile(file)
		if err != nil {
			log.Fatalf("Error reading %s: %v", file, err)
		}
		mode := cppmode.New(settings.TabSize, highlighter.New(settings.Theme))
		buf, err := mode.Reindent(string(content))
		if err != nil {
			log.Fatalf("Error reindenting %s: %v", file, err)
		}
		fmt.Println(buf.GetCurrentContent())
		return
	}

	if os.Getenv("CPPMODE_DEBUG") != "" {
		f, err := tea.LogToFile("cppmode-debug.log", "cppmode")
		if err != nil {
			log.Fatalf("Error opening debug log: %v", err)
		}
		defer f.Close()
	}

	textEditor := editor.New(80, 20, settings)
	textEditor.Focus()
	textEditor.SetPath(file)

	if content, err := os.ReadFile(file); err == nil {
		textEditor.SetBytes(content)
	}

	m := Model{
		editor: textEditor,
		file:   file,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running Bubble Tea program: %v", err)
	}
}
