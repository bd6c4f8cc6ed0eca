package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme maps glyphs to colors. A theme with no Palette draws plain text.
type Theme struct {
	Name    string
	Palette []lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
}

// glyphOrder fixes which palette slot each known glyph uses. Unknown glyphs
// take the first slot.
var glyphOrder = map[rune]int{
	'.': 0, '$': 1, '~': 2, '#': 3, ';': 4, '-': 5,
	'o': 0, '|': 1, '○': 2, '&': 4,
}

// Available themes
var (
	ThemePlain = Theme{
		Name:   "plain",
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
		Accent: lipgloss.Color("#ffffff"),
	}

	ThemeCyberpunk = Theme{
		Name: "cyberpunk",
		Palette: []lipgloss.Color{
			"#ff00ff", // Magenta
			"#00ffff", // Cyan
			"#ffff00", // Yellow
			"#ff8800",
			"#00ff00",
			"#ffffff",
		},
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Accent: lipgloss.Color("#ffff00"),
	}

	ThemeRetroGreen = Theme{
		Name: "retro",
		Palette: []lipgloss.Color{
			"#00ff00", // Green phosphor
			"#00cc00",
			"#88ff88",
			"#005500",
			"#00aa00",
			"#ccffcc",
		},
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Accent: lipgloss.Color("#88ff88"),
	}

	ThemeOcean = Theme{
		Name: "ocean",
		Palette: []lipgloss.Color{
			"#0077be", // Ocean blue
			"#00a8cc",
			"#ffd700",
			"#4488aa",
			"#00ff88",
			"#e0f0ff",
		},
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Accent: lipgloss.Color("#ffd700"),
	}

	ThemeSunset = Theme{
		Name: "sunset",
		Palette: []lipgloss.Color{
			"#ff6b6b", // Coral
			"#feca57",
			"#ff9ff3",
			"#5fd068",
			"#ffc048",
			"#fff5f5",
		},
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Accent: lipgloss.Color("#ff9ff3"),
	}

	// All available themes
	Themes = []Theme{
		ThemePlain,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to plain.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemePlain
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Next returns the theme after t in Themes, wrapping around.
func (t Theme) Next() Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemePlain
}

func (t Theme) style(g rune) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Palette[glyphOrder[g]%len(t.Palette)])
}

// Paint renders glyphs, coloring runs of equal glyphs with one style.
// Background cells are left unstyled.
func (t Theme) Paint(glyphs []rune, background rune) string {
	if len(t.Palette) == 0 {
		return string(glyphs)
	}
	var b strings.Builder
	for start := 0; start < len(glyphs); {
		g := glyphs[start]
		end := start + 1
		for end < len(glyphs) && glyphs[end] == g {
			end++
		}
		run := string(glyphs[start:end])
		if g == background {
			b.WriteString(run)
		} else {
			b.WriteString(t.style(g).Render(run))
		}
		start = end
	}
	return b.String()
}
