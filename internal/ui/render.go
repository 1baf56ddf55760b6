package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/idilsaglam/freefire/internal/model"
	"github.com/idilsaglam/freefire/internal/session"
)

// Table renders components as a bordered grid with a 1-based index column.
func Table(items []model.Component) string {
	if len(items) == 0 {
		return C(current.Muted, "no components registered")
	}
	rows := make([][]string, 0, len(items))
	for i, it := range items {
		rows = append(rows, []string{strconv.Itoa(i + 1), it.Name, it.Category, strconv.Itoa(it.Priority)})
	}
	t := table.New().
		Border(current.Border).
		Headers("#", "Name", "Category", "Priority").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			st := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow && colorOn() {
				st = st.Inherit(current.Header)
			}
			return st
		})
	if colorOn() && current.BorderColor != "" {
		t = t.BorderStyle(lipgloss.NewStyle().Foreground(current.BorderColor))
	}
	return t.String()
}

// Report renders the performance summary of a sort run.
func Report(r session.Report) string {
	lines := []string{
		C(current.Title, "Performance report: "+r.Algorithm),
		"",
		fmt.Sprintf("%s %s", C(current.Accent, "Algorithm:  "), r.Algorithm),
		fmt.Sprintf("%s %d", C(current.Accent, "Comparisons:"), r.Comparisons),
		fmt.Sprintf("%s %s", C(current.Accent, "Elapsed:    "), r.Elapsed),
	}
	return Panel(lines)
}

// SearchOutcome renders a search hit or miss.
func SearchOutcome(r session.SearchResult) string {
	if !r.Found {
		return fmt.Sprintf("%s\n  comparisons: %d",
			C(current.Error, fmt.Sprintf("%s %q not found", current.SymFail, r.Key)),
			r.Comparisons)
	}
	return fmt.Sprintf("%s\n  category: %s | priority: %d\n  comparisons: %d",
		C(current.Success, fmt.Sprintf("%s %q found at index %d", current.SymOK, r.Key, r.Index)),
		r.Component.Category, r.Component.Priority, r.Comparisons)
}

// Header is the one-line session summary shown above menus.
func Header(n, capacity int, state session.State) string {
	st := current.Pending
	if state == session.StateSortedByName {
		st = current.Success
	}
	return fmt.Sprintf("%s  %s  %s",
		C(current.Title, "Rescue Tower components"),
		C(current.Muted, CapacityBar(n, capacity, 20)),
		C(st, state.String()),
	)
}
