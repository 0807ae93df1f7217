package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	Secondary = lipgloss.Color("#10B981") // Green
	Error     = lipgloss.Color("#EF4444") // Red

	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// PrintStatus writes a styled status line
func PrintStatus(w io.Writer, msg string, isErr bool) {
	style := Success
	if isErr {
		style = ErrorMsg
	}
	fmt.Fprintln(w, style.Render(msg))
}
