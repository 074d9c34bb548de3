package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent = colorPink
	colorBrand  = colorPink
	colorFocus  = colorLavender
	colorError  = colorRed
)

var (
	// Page title
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	// Header bar (spans full width)
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	// Prompt body container
	bodyBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(1, 2)

	// Prompt description text
	descStyle = lipgloss.NewStyle().Foreground(colorSubtext1)

	// Hint line under a prompt
	hintStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	// Error line under a prompt
	errorStyle = lipgloss.NewStyle().Foreground(colorError)

	// Confirm buttons
	buttonStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 3)

	buttonFocusStyle = lipgloss.NewStyle().
				Foreground(colorMantle).
				Background(colorAccent).
				Bold(true).
				Padding(0, 3)

	// Consent table titles
	tableTitleStyle = lipgloss.NewStyle().Foreground(colorTeal).Bold(true)

	// Progress footer
	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	progressDoneStyle = lipgloss.NewStyle().Foreground(colorGreen)
	progressRestStyle = lipgloss.NewStyle().Foreground(colorSurface1)

	// Status bar (above footer)
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0).
				Bold(true).
				Padding(0, 2)

	// Spinner card
	spinnerStyle     = lipgloss.NewStyle().Foreground(colorMauve)
	spinnerTextStyle = lipgloss.NewStyle().Foreground(colorText)
)
