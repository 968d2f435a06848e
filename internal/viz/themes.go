package viz

import "github.com/charmbracelet/lipgloss"

// Theme pairs a colormap with the colors of the surrounding chrome.
type Theme struct {
	Name     string
	Colormap string
	Primary  lipgloss.Color
	Accent   lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Error    lipgloss.Color
}

var (
	ThemeEmber = Theme{
		Name:     "ember",
		Colormap: "inferno",
		Primary:  lipgloss.Color("#fca50a"),
		Accent:   lipgloss.Color("#dd513a"),
		Text:     lipgloss.Color("#fcffa4"),
		Muted:    lipgloss.Color("#6a6a6a"),
		Error:    lipgloss.Color("#ff4444"),
	}

	ThemeDusk = Theme{
		Name:     "dusk",
		Colormap: "cividis",
		Primary:  lipgloss.Color("#ffe945"),
		Accent:   lipgloss.Color("#7c7b78"),
		Text:     lipgloss.Color("#e0e0e0"),
		Muted:    lipgloss.Color("#575d6d"),
		Error:    lipgloss.Color("#ff6b6b"),
	}

	ThemeMono = Theme{
		Name:     "mono",
		Colormap: "gray",
		Primary:  lipgloss.Color("#ffffff"),
		Accent:   lipgloss.Color("#bbbbbb"),
		Text:     lipgloss.Color("#dddddd"),
		Muted:    lipgloss.Color("#777777"),
		Error:    lipgloss.Color("#ff0000"),
	}

	Themes = []Theme{ThemeEmber, ThemeDusk, ThemeMono}
)

// GetTheme returns the named theme, falling back to the first one.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

type styles struct {
	title, label, value, hint, err lipgloss.Style
}

func (t Theme) styles() styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		label: lipgloss.NewStyle().Foreground(t.Muted),
		value: lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		hint:  lipgloss.NewStyle().Italic(true).Foreground(t.Muted),
		err:   lipgloss.NewStyle().Bold(true).Foreground(t.Error),
	}
}
