package terminal

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Static styles for the console chrome around the game text
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// ConfigureColor picks the colour profile for styled output. Colour is
// disabled when noColor is set or when out is not a terminal.
func ConfigureColor(out io.Writer, noColor bool) termenv.Profile {
	profile := termenv.Ascii
	if f, ok := out.(*os.File); ok && !noColor {
		profile = termenv.NewOutput(f).EnvColorProfile()
	}
	lipgloss.SetColorProfile(profile)
	return profile
}

// Banner renders the title line shown when the program starts
func Banner(title string) string {
	return TitleStyle.Render(title) + "\n\n"
}

// Profit renders a profit figure, green when positive and red when negative
func Profit(text string, amount int) string {
	switch {
	case amount > 0:
		return SuccessStyle.Render(text)
	case amount < 0:
		return ErrorStyle.Render(text)
	default:
		return InfoStyle.Render(text)
	}
}
