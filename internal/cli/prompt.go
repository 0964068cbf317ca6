package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/advisor/internal/cli/formatter"
	"github.com/alexanderramin/advisor/internal/contract"
)

var errInvalidName = errors.New(contract.InvalidNameMessage)

// advisorHuhTheme returns a huh theme using the formatter palette.
func advisorHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errInvalidName
	}
	return nil
}

// studentNameForm collects a student name into value.
func studentNameForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Student Name").
				Description("As it appears in the academic records").
				Placeholder("Jane Doe").
				Value(value).
				Validate(validateName),
		),
	).WithTheme(advisorHuhTheme()).WithShowHelp(false)
}

func promptStudentName() (string, error) {
	var name string
	if err := studentNameForm(&name).Run(); err != nil {
		return "", err
	}
	return name, nil
}
