package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"logcat/internal/colorize"
	"logcat/internal/watch"
)

// ModelConfig wires the line source into the UI.
type ModelConfig struct {
	Events     <-chan watch.LogEvent
	Colorizer  *colorize.Colorizer
	ThemeName  string
	Scrollback int
	Source     string
}

// Model is a scrollback viewer over the colorized stream. Lines are
// formatted inside Update, which Bubble Tea runs on a single goroutine.
type Model struct {
	cfg          ModelConfig
	viewport     viewport.Model
	theme        Theme
	events       <-chan watch.LogEvent
	colorizer    *colorize.Colorizer
	lines        []string
	scrollback   int
	paused       bool
	follow       bool
	received     int
	dropped      int
	notification string
	closed       bool
	windowWidth  int
	windowHeight int
}

type logMsg watch.LogEvent
type streamClosedMsg struct{}

// NewModel returns a configured Bubble Tea model.
func NewModel(cfg ModelConfig) Model {
	scrollback := cfg.Scrollback
	if scrollback <= 0 {
		scrollback = 5000
	}
	vp := viewport.New(80, 20)
	vp.SetContent("waiting for logcat…")
	return Model{
		cfg:          cfg,
		viewport:     vp,
		theme:        themeByName(cfg.ThemeName),
		events:       cfg.Events,
		colorizer:    cfg.Colorizer,
		scrollback:   scrollback,
		follow:       true,
		windowWidth:  80,
		windowHeight: 24,
	}
}

func (m Model) Init() tea.Cmd {
	return m.listen()
}

func (m Model) listen() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return func() tea.Msg {
		evt, ok := <-m.events
		if !ok {
			return streamClosedMsg{}
		}
		return logMsg(evt)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "p":
			m.paused = !m.paused
			if !m.paused {
				m.refresh()
			}
			return m, nil
		case "f":
			m.follow = !m.follow
			if m.follow {
				m.viewport.GotoBottom()
			}
			return m, nil
		case "t":
			m.theme = themeByName(nextTheme(m.theme.Name))
			m.resize(m.windowWidth, m.windowHeight)
			return m, nil
		case "c":
			m.lines = nil
			m.refresh()
			return m, nil
		case "g", "home":
			m.follow = false
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.follow = true
			m.viewport.GotoBottom()
			return m, nil
		}
	case logMsg:
		return m.consumeLog(msg)
	case streamClosedMsg:
		m.closed = true
		m.notification = "stream closed"
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) resize(width, height int) {
	if width < 10 {
		width = 80
	}
	if height < 5 {
		height = 24
	}
	m.windowWidth = width
	m.windowHeight = height

	frameW, frameH := m.theme.Pane.GetFrameSize()
	chrome := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderStatus())
	m.viewport.Width = max(width-frameW, 1)
	m.viewport.Height = max(height-chrome-frameH, 1)
	if m.colorizer != nil {
		m.colorizer.SetWidth(m.viewport.Width)
	}
	m.refresh()
}

func (m Model) consumeLog(evt logMsg) (tea.Model, tea.Cmd) {
	if evt.Err != nil {
		m.notification = evt.Err.Error()
		return m, m.listen()
	}
	m.received++

	text := evt.Line
	if m.colorizer != nil {
		var keep bool
		text, keep = m.colorizer.Format(evt.Line)
		if !keep {
			m.dropped++
			return m, m.listen()
		}
	}

	m.lines = append(m.lines, text)
	if len(m.lines) > m.scrollback {
		m.lines = m.lines[len(m.lines)-m.scrollback:]
	}
	if !m.paused {
		m.refresh()
	}
	return m, m.listen()
}

func (m *Model) refresh() {
	if len(m.lines) == 0 {
		m.viewport.SetContent("waiting for logcat…")
		return
	}
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	if m.follow {
		m.viewport.GotoBottom()
	}
}

func (m Model) View() string {
	pane := m.theme.Pane.Render(m.viewport.View())
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), pane, m.renderStatus())
}

func (m Model) renderHeader() string {
	source := m.cfg.Source
	if source == "" {
		source = "logcat"
	}
	return m.theme.Header.Render("logcat") + " " + m.theme.Muted.Render(source)
}

func (m Model) renderStatus() string {
	state := "streaming"
	switch {
	case m.closed:
		state = "ended"
	case m.paused:
		state = "paused"
	}
	follow := "follow"
	if !m.follow {
		follow = "scroll"
	}
	content := fmt.Sprintf("%s · %s · %d lines · %d dropped · p pause · f follow · t theme · c clear · q quit",
		state, follow, m.received, m.dropped)
	if m.notification != "" {
		content += " · " + m.theme.Alert.Render(m.notification)
	}
	return m.theme.StatusBar.Width(max(m.windowWidth, 10)).Render(content)
}
