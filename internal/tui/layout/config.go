package layout

// LayoutConfig holds all layout-related configuration values.
// These values control tile dimensions, spacing, panel sizing, and
// text truncation behavior throughout the TUI.
type LayoutConfig struct {
	Grid  GridConfig
	Panel PanelConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// GridConfig holds dial grid configuration.
type GridConfig struct {
	// TileWidth: full tile width in cells, borders included.
	TileWidth int

	// TileHeight: full tile height in rows, borders included.
	TileHeight int

	// GapX: blank columns between adjacent tiles.
	GapX int

	// GapY: blank rows between tile rows.
	GapY int

	// MaxColumns: column cap regardless of terminal width.
	MaxColumns int

	// HeaderReduction: rows above the grid (clock, date, padding).
	HeaderReduction int
}

// PanelConfig holds folder panel configuration.
type PanelConfig struct {
	// WidthPercent: percentage of terminal width for the panel.
	WidthPercent int

	// MinWidth: minimum panel width.
	MinWidth int

	// MaxWidth: maximum panel width.
	MaxWidth int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// WidthPercent: percentage of terminal width for modals.
	WidthPercent int

	// MinWidth: minimum modal width.
	MinWidth int

	// MaxWidth: maximum modal width.
	MaxWidth int

	// SearchMaxVisible: max results shown in the search view.
	SearchMaxVisible int

	// SettingsMaxVisible: max rows shown in the settings view.
	SettingsMaxVisible int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	// Character limits
	TitleCharLimit int
	URLCharLimit   int
	IconCharLimit  int

	// Display widths
	StandardWidth int // Used for title, URL, and search inputs
	IconWidth     int // Used for the icon input (narrower)
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Grid: GridConfig{
			TileWidth:       20,
			TileHeight:      5,
			GapX:            2,
			GapY:            1,
			MaxColumns:      6,
			HeaderReduction: 6, // top padding (1) + clock (2) + date (1) + padding (2)
		},
		Panel: PanelConfig{
			WidthPercent: 60,
			MinWidth:     48,
			MaxWidth:     90,
		},
		Modal: ModalConfig{
			WidthPercent:       40,
			MinWidth:           50,
			MaxWidth:           80,
			SearchMaxVisible:   10,
			SettingsMaxVisible: 8,
		},
		Input: InputConfig{
			TitleCharLimit: 100,
			URLCharLimit:   500,
			IconCharLimit:  8,
			StandardWidth:  40,
			IconWidth:      12,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
