package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the chrome around the widgets. Slice and tab colors come from the
// widgets themselves.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Faint   lipgloss.Color
	Accent  lipgloss.Color
}

var (
	ThemeHolo = Theme{
		Name:    "holo",
		Primary: lipgloss.Color("#33b5e5"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#8a8a8a"),
		Faint:   lipgloss.Color("#444444"),
		Accent:  lipgloss.Color("#ffbb33"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#00aa00"),
		Faint:   lipgloss.Color("#005500"),
		Accent:  lipgloss.Color("#88ff88"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Faint:   lipgloss.Color("#444444"),
		Accent:  lipgloss.Color("#0088ff"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Primary: lipgloss.Color("#ff6b6b"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Faint:   lipgloss.Color("#4b2b4c"),
		Accent:  lipgloss.Color("#feca57"),
	}

	Themes = []Theme{ThemeHolo, ThemeRetroGreen, ThemeMinimal, ThemeSunset}
)

// GetTheme returns the named theme, falling back to holo.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeHolo
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

type styles struct {
	title lipgloss.Style
	text  lipgloss.Style
	dim   lipgloss.Style
	faint lipgloss.Style
	hot   lipgloss.Style
}

func (t Theme) styles() styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		text:  lipgloss.NewStyle().Foreground(t.Text),
		dim:   lipgloss.NewStyle().Foreground(t.Muted),
		faint: lipgloss.NewStyle().Foreground(t.Faint),
		hot:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
	}
}
