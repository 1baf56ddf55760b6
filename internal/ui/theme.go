package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, symbols and panel border.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Header                              lipgloss.Style

	Border       lipgloss.Border
	BorderColor  lipgloss.Color
	SymOK        string
	SymFail      string
	SymSelected  string
	BarFilled    string
	BarRemaining string
}

var current = classic()

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:         "neon",
			Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Selected:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("13"),
			SymOK:        "✔",
			SymFail:      "✖",
			SymSelected:  "▸",
			BarFilled:    "◼",
			BarRemaining: "◻",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain, Pending: plain,
			Selected: plain, Header: plain,
			Border:       lipgloss.ASCIIBorder(),
			SymOK:        "ok",
			SymFail:      "x",
			SymSelected:  ">",
			BarFilled:    "#",
			BarRemaining: "-",
		}
	default:
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Name:         "classic",
		Title:        lipgloss.NewStyle().Bold(true),
		Muted:        lipgloss.NewStyle().Faint(true),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		Header:       lipgloss.NewStyle().Bold(true),
		Border:       lipgloss.RoundedBorder(),
		BorderColor:  lipgloss.Color("8"),
		SymOK:        "✔",
		SymFail:      "✖",
		SymSelected:  ">",
		BarFilled:    "█",
		BarRemaining: "░",
	}
}

// Expose what renderers need
func Current() Theme { return current }
