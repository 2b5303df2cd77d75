package ui

import "github.com/charmbracelet/lipgloss"

// Theme is the set of styles the view renders with. Light and dark
// variants mirror the toggleable page themes; the active name is
// persisted to the config file.
type Theme struct {
	Name string

	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Cursor   lipgloss.Style
	Done     lipgloss.Style
	Overdue  lipgloss.Style
	DueMeta  lipgloss.Style
	Today    lipgloss.Style
	Status   lipgloss.Style
	ErrorMsg lipgloss.Style
	Help     lipgloss.Style

	PriorityLow    lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityHigh   lipgloss.Style
}

func LightTheme() Theme {
	return Theme{
		Name:     "light",
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Done:     lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("245")),
		Overdue:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		DueMeta:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Today:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("28")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		ErrorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("246")),

		PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("172")),
		PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	}
}

func DarkTheme() Theme {
	return Theme{
		Name:     "dark",
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111")),
		Subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true),
		Done:     lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("240")),
		Overdue:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		DueMeta:  lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
		Today:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("84")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ErrorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("242")),

		PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("84")),
		PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// themeByName resolves a persisted theme name, defaulting to light.
func themeByName(name string) Theme {
	if name == "dark" {
		return DarkTheme()
	}
	return LightTheme()
}
