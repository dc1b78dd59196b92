package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme describes the chrome around the log pane. The log lines carry their
// own colors.
type Theme struct {
	Name      string
	Pane      lipgloss.Style
	StatusBar lipgloss.Style
	Header    lipgloss.Style
	Muted     lipgloss.Style
	Alert     lipgloss.Style
}

func themeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "midnight":
		return midnightTheme()
	case "dusk":
		return duskTheme()
	default:
		return vaporTheme()
	}
}

func nextTheme(current string) string {
	order := []string{"vapor", "midnight", "dusk"}
	for i, theme := range order {
		if theme == strings.ToLower(current) {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

func vaporTheme() Theme {
	return Theme{
		Name:      "vapor",
		Pane:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#9F7AEA")),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("#1B1C30")).Background(lipgloss.Color("#FF61D8")).Padding(0, 1),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF61D8")).Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("#A4A9FF")),
		Alert:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8B5D")).Bold(true),
	}
}

func midnightTheme() Theme {
	return Theme{
		Name:      "midnight",
		Pane:      lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("#00C9A7")),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("#02070D")).Background(lipgloss.Color("#00E6D2")).Padding(0, 1),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("#00E6D2")).Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7A89")),
		Alert:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Bold(true),
	}
}

func duskTheme() Theme {
	return Theme{
		Name:      "dusk",
		Pane:      lipgloss.NewStyle().Border(lipgloss.HiddenBorder()),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("#211830")).Background(lipgloss.Color("#FFB4A2")).Padding(0, 1),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB4A2")).Bold(true).Italic(true),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("#C7CEEA")),
		Alert:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5E5B")).Bold(true),
	}
}
