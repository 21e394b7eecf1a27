package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the interface.
type Theme struct {
	List   ListTheme
	Tabs   TabsTheme
	Modal  ModalTheme
	Footer FooterTheme
}

// ListTheme styles the framed task list.
type ListTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
}

// TabsTheme styles the tab header row.
type TabsTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// ModalTheme styles centered prompt overlays.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
}

// FooterTheme styles the bottom status line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		List: ListTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("252")),
			Title: lipgloss.NewStyle().Bold(true),
			Item:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Selected: lipgloss.NewStyle().
				Foreground(lipgloss.Color("232")).
				Background(lipgloss.Color("33")).
				Bold(true),
		},
		Tabs: TabsTheme{
			Active: lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true).
				Underline(true),
			Inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("212")).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		},
	}
}
