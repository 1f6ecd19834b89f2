package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	robot "github.com/iwtcode/robotAdapter"
)

// pollInterval - период обновления карты.
const pollInterval = 500 * time.Millisecond

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type mapMsg struct {
	content string
	err     error
}

type model struct {
	client  *robot.Client
	content string
	err     error
}

func (m model) Init() tea.Cmd {
	return m.fetchCmd()
}

func (m model) fetchCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pollInterval)
		defer cancel()
		content, err := m.client.GetMap(ctx)
		return mapMsg{content: content, err: err}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case mapMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.content = msg.content
		}
		return m, m.fetchCmd()
	}
	return m, nil
}

func (m model) View() string {
	body := m.content
	if body == "" {
		body = "waiting for map..."
	}
	if m.err != nil {
		body += "\n" + errStyle.Render("error: "+m.err.Error())
	}

	return titleStyle.Render("Workspace map") + "\n" +
		frameStyle.Render(body) + "\n" +
		hintStyle.Render("q to quit") + "\n"
}

func main() {
	_ = godotenv.Load()

	cfg := robot.Load()
	cfg.LogLevel = "off"
	client := robot.New(cfg)

	p := tea.NewProgram(model{client: client})
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "watchmap:", err)
		os.Exit(1)
	}
}
