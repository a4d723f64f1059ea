// preview is an interactive terminal playground for the pig latin
// transformer: it shows the rewritten text live as you type.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/LeopoldTal/porcus/internal/logger"
	"github.com/LeopoldTal/porcus/internal/piglatin"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type model struct {
	transformer piglatin.Transformer
	textInput   textinput.Model
	width       int
}

func initialModel(transformer piglatin.Transformer) model {
	ti := textinput.New()
	ti.Placeholder = "Type something…"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return model{
		transformer: transformer,
		textInput:   ti,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("porcus - pig latin preview"))
	s.WriteString("\n")
	s.WriteString(labelStyle.Render("Input:"))
	s.WriteString("\n")
	s.WriteString(m.textInput.View())
	s.WriteString("\n\n")
	s.WriteString(labelStyle.Render("Pig latin:"))
	s.WriteString("\n")
	s.WriteString(outputStyle.Render(m.transformer.Transform(m.textInput.Value())))
	s.WriteString("\n\n")
	s.WriteString(dimStyle.Render("Esc or Ctrl+C to quit"))

	return boxStyle.Render(s.String()) + "\n"
}

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()
	logger.Init()

	fs := ff.NewFlagSet("preview")
	var (
		consonantSuffix = fs.StringLong("consonant", piglatin.DefaultConsonantSuffix, "suffix for words starting with a consonant")
		vowelSuffix     = fs.StringLong("vowel", piglatin.DefaultVowelSuffix, "suffix for words starting with a vowel")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("PORCUS")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	transformer := piglatin.New(*consonantSuffix, *vowelSuffix)

	p := tea.NewProgram(initialModel(transformer))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running preview: %w", err)
	}
	return nil
}
