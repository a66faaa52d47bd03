package output

import "github.com/charmbracelet/lipgloss"

var (
	groupHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("6"))

	dayLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4"))

	mutedStyle = lipgloss.NewStyle().
			Faint(true)
)

// GroupHeader styles a listing group header for human output. Styling is a
// no-op when color is off (plain mode, --no-color, non-TTY).
func GroupHeader(text string, color bool) string {
	if !color {
		return text
	}
	return groupHeaderStyle.Render(text)
}

func DayLabel(text string, color bool) string {
	if !color {
		return text
	}
	return dayLabelStyle.Render(text)
}

func Muted(text string, color bool) string {
	if !color {
		return text
	}
	return mutedStyle.Render(text)
}
