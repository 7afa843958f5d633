package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/narabid/bidassist/internal/cli/formatter"
	"github.com/narabid/bidassist/internal/domain"
)

// bidassistHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func bidassistHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardSelectStage creates a huh form to pick a pipeline stage for an item.
func wizardSelectStage(current domain.BidStage, result *string) *huh.Form {
	*result = string(current)

	options := make([]huh.Option[string], 0, len(domain.BidStages))
	for _, s := range domain.BidStages {
		label := s.Label()
		if s == current {
			label += " (current)"
		}
		options = append(options, huh.NewOption(label, string(s)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Move to stage").
				Options(options...).
				Value(result),
		),
	).WithTheme(bidassistHuhTheme()).WithShowHelp(false)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(bidassistHuhTheme()).WithShowHelp(false)
}

// wizardInputText creates a huh form for a single text input.
func wizardInputText(title, placeholder string, required bool, result *string) *huh.Form {
	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(result)

	if required {
		input = input.Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s is required", title)
			}
			return nil
		})
	}

	return huh.NewForm(
		huh.NewGroup(input),
	).WithTheme(bidassistHuhTheme()).WithShowHelp(false)
}

// validateBirthDate accepts a YYYY-MM-DD date string.
func validateBirthDate(s string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
