package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/narabid/bidassist/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StageStyle returns the style used to render a pipeline stage.
func StageStyle(stage domain.BidStage) lipgloss.Style {
	switch stage {
	case domain.StageWon:
		return StyleGreen
	case domain.StageLost:
		return StyleRed
	case domain.StageSubmitted:
		return StyleBlue
	case domain.StageDocPrep, domain.StageDecided:
		return StyleYellow
	case domain.StageReview:
		return StylePurple
	default:
		return StyleFg
	}
}

// Stage renders a stage label in its color.
func Stage(stage domain.BidStage) string {
	return StageStyle(stage).Render(stage.Label())
}

// Dim renders text in the dim style.
func Dim(s string) string { return StyleDim.Render(s) }

// Err renders an error line in red.
func Err(s string) string { return StyleRed.Render(s) }

// OK renders a success line in green.
func OK(s string) string { return StyleGreen.Render(s) }
