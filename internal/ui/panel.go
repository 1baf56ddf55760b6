package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CapacityBar renders how full the dataset is, e.g. "███░░ 3/5".
func CapacityBar(n, capacity, width int) string {
	if capacity <= 0 {
		capacity = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(n) / float64(capacity) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat(current.BarFilled, filled) + strings.Repeat(current.BarRemaining, width-filled)
	return fmt.Sprintf("%s %d/%d", bar, n, capacity)
}

// Panel frames lines with the current theme's border.
func Panel(lines []string) string {
	st := lipgloss.NewStyle().
		Border(current.Border).
		Padding(0, 1)
	if colorOn() && current.BorderColor != "" {
		st = st.BorderForeground(current.BorderColor)
	}
	return st.Render(strings.Join(lines, "\n"))
}
