package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App         lipgloss.Style
	Clock       lipgloss.Style
	Date        lipgloss.Style
	Tile        lipgloss.Style // resting dial tile
	TileCursor  lipgloss.Style // tile under the keyboard cursor
	TileDragged lipgloss.Style // tile being dragged
	TileMerge   lipgloss.Style // tile a drop would merge into
	TileTitle   lipgloss.Style
	TileIcon    lipgloss.Style
	URL         lipgloss.Style
	FolderCount lipgloss.Style
	InsertMark  lipgloss.Style // bar shown where a drop would reorder to
	Panel       lipgloss.Style
	PanelTitle  lipgloss.Style
	Modal       lipgloss.Style
	ModalTitle  lipgloss.Style
	Label       lipgloss.Style
	Selected    lipgloss.Style // selected row in list views
	Match       lipgloss.Style // matched characters in search results
	Status      lipgloss.Style
	Error       lipgloss.Style
	Empty       lipgloss.Style
	HintKey     lipgloss.Style // Key portion of hints (e.g., "Enter", "j/k")
	HintDesc    lipgloss.Style // Description portion of hints (e.g., "confirm", "move")
}

// palette holds the adaptive colors one theme is built from.
type palette struct {
	primary lipgloss.AdaptiveColor // main text
	subtle  lipgloss.AdaptiveColor // secondary text
	accent  lipgloss.AdaptiveColor // theme accent
	border  lipgloss.AdaptiveColor // resting borders
	danger  lipgloss.AdaptiveColor // errors
}

// themePalette returns the palette for a named theme. Unknown names
// fall back to the teal default. The grayscale base is shared, only
// the accent changes.
func themePalette(theme string) palette {
	p := palette{
		primary: lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"},
		subtle:  lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"},
		accent:  lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}, // desaturated teal
		border:  lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"},
		danger:  lipgloss.AdaptiveColor{Light: "#8B4A4A", Dark: "#A05F5F"},
	}

	switch theme {
	case "rose":
		p.accent = lipgloss.AdaptiveColor{Light: "#8A5A6A", Dark: "#A07585"}
	case "amber":
		p.accent = lipgloss.AdaptiveColor{Light: "#8A7040", Dark: "#A08850"}
	case "mono":
		p.accent = p.primary
	}

	return p
}

// ThemeNames lists the selectable themes in settings order.
func ThemeNames() []string {
	return []string{"teal", "rose", "amber", "mono"}
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	return StylesForTheme("teal")
}

// StylesForTheme returns the style configuration for a named theme.
func StylesForTheme(theme string) Styles {
	p := themePalette(theme)

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1),

		Clock: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),

		Date: lipgloss.NewStyle().
			Foreground(p.subtle),

		Tile: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.border).
			Padding(0, 1),

		TileCursor: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),

		TileDragged: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.subtle).
			Faint(true).
			Padding(0, 1),

		TileMerge: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),

		TileTitle: lipgloss.NewStyle().
			Foreground(p.primary),

		TileIcon: lipgloss.NewStyle().
			Foreground(p.accent),

		URL: lipgloss.NewStyle().
			Foreground(p.subtle),

		FolderCount: lipgloss.NewStyle().
			Foreground(p.subtle),

		InsertMark: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),

		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.border).
			Padding(1, 2),

		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),

		Label: lipgloss.NewStyle().
			Foreground(p.subtle),

		Selected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(p.accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		Match: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),

		Status: lipgloss.NewStyle().
			Foreground(p.accent),

		Error: lipgloss.NewStyle().
			Foreground(p.danger),

		Empty: lipgloss.NewStyle().
			Foreground(p.subtle),

		HintKey: lipgloss.NewStyle().
			Foreground(p.subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(p.subtle),
	}
}
