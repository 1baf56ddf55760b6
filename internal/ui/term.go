package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	forceColor   bool
	disableColor bool
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func colorOn() bool {
	if disableColor || current.Name == "mono" {
		return false
	}
	return forceColor || isTTY()
}

// C paints s with st when colors are on and returns s untouched otherwise.
func C(st lipgloss.Style, s string) string {
	if !colorOn() {
		return s
	}
	return st.Render(s)
}

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, C(current.Success, current.SymOK+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, C(current.Error, current.SymFail+" "+msg))
}
