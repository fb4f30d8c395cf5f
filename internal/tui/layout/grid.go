package layout

// GridLayout holds one calculated dial grid: how many tiles fit, where
// the grid starts, and the tile geometry used to map terminal cells
// back to tile indices.
type GridLayout struct {
	Columns    int
	Rows       int
	Count      int
	OriginX    int
	OriginY    int
	TileWidth  int
	TileHeight int
	GapX       int
	GapY       int
}

// CalculateGrid computes the dial grid for a terminal of the given
// width. count is the number of tiles to place. columns forces a fixed
// column count when positive; zero means fit as many as the width
// allows. originY is the first terminal row of the grid.
func CalculateGrid(terminalWidth, count, columns, originY int, cfg GridConfig) GridLayout {
	cols := columns
	if cols <= 0 {
		// Each column after the first costs TileWidth+GapX cells.
		cols = (terminalWidth + cfg.GapX) / (cfg.TileWidth + cfg.GapX)
	}
	if cols > cfg.MaxColumns {
		cols = cfg.MaxColumns
	}
	if count > 0 && cols > count {
		cols = count
	}
	if cols < 1 {
		cols = 1
	}

	rows := 0
	if count > 0 {
		rows = (count + cols - 1) / cols
	}

	gridWidth := cols*cfg.TileWidth + (cols-1)*cfg.GapX
	originX := (terminalWidth - gridWidth) / 2
	if originX < 0 {
		originX = 0
	}

	return GridLayout{
		Columns:    cols,
		Rows:       rows,
		Count:      count,
		OriginX:    originX,
		OriginY:    originY,
		TileWidth:  cfg.TileWidth,
		TileHeight: cfg.TileHeight,
		GapX:       cfg.GapX,
		GapY:       cfg.GapY,
	}
}

// CellOrigin returns the top-left terminal cell of tile i.
func (g GridLayout) CellOrigin(i int) (x, y int) {
	col := i % g.Columns
	row := i / g.Columns
	x = g.OriginX + col*(g.TileWidth+g.GapX)
	y = g.OriginY + row*(g.TileHeight+g.GapY)
	return x, y
}

// CellAt maps a terminal position to the tile under it. ok is false
// when the position falls in a gap, outside the grid, or past the
// last tile.
func (g GridLayout) CellAt(x, y int) (index int, ok bool) {
	if g.Columns < 1 || g.Count < 1 {
		return 0, false
	}

	dx := x - g.OriginX
	dy := y - g.OriginY
	if dx < 0 || dy < 0 {
		return 0, false
	}

	strideX := g.TileWidth + g.GapX
	strideY := g.TileHeight + g.GapY

	col := dx / strideX
	row := dy / strideY
	if col >= g.Columns {
		return 0, false
	}
	if dx%strideX >= g.TileWidth {
		return 0, false // in the gap right of a tile
	}
	if dy%strideY >= g.TileHeight {
		return 0, false // in the gap below a tile row
	}

	index = row*g.Columns + col
	if index >= g.Count {
		return 0, false
	}
	return index, true
}

// CellOffset returns the given terminal position relative to the
// top-left corner of tile i.
func (g GridLayout) CellOffset(i, x, y int) (relX, relY int) {
	ox, oy := g.CellOrigin(i)
	return x - ox, y - oy
}

// Width returns the full grid width in terminal cells.
func (g GridLayout) Width() int {
	if g.Columns < 1 {
		return 0
	}
	return g.Columns*g.TileWidth + (g.Columns-1)*g.GapX
}

// Height returns the full grid height in terminal rows.
func (g GridLayout) Height() int {
	if g.Rows < 1 {
		return 0
	}
	return g.Rows*g.TileHeight + (g.Rows-1)*g.GapY
}

// Bottom returns the first terminal row below the grid.
func (g GridLayout) Bottom() int {
	return g.OriginY + g.Height()
}

// PanelLayout holds the calculated folder panel: its outer rectangle
// and the child grid placed inside it.
type PanelLayout struct {
	X      int
	Y      int
	Width  int
	Height int
	Grid   GridLayout
}

// CalculatePanel computes the centered folder panel for a terminal of
// the given size. count is the number of child tiles inside the panel.
func CalculatePanel(terminalWidth, terminalHeight, count int, cfg LayoutConfig) PanelLayout {
	width := terminalWidth * cfg.Panel.WidthPercent / 100
	if width < cfg.Panel.MinWidth {
		width = cfg.Panel.MinWidth
	}
	if width > cfg.Panel.MaxWidth {
		width = cfg.Panel.MaxWidth
	}
	if width > terminalWidth-4 {
		width = terminalWidth - 4
	}
	if width < 1 {
		width = 1
	}

	// Inner width excludes the border and one cell of padding per side.
	innerWidth := width - 4
	grid := CalculateGrid(innerWidth, count, 0, 0, cfg.Grid)

	// Border (1) + title row (1) + blank (1) above the grid,
	// blank (1) + border (1) below.
	height := grid.Height() + 5

	x := (terminalWidth - width) / 2
	if x < 0 {
		x = 0
	}
	y := (terminalHeight - height) / 2
	if y < 0 {
		y = 0
	}

	grid.OriginX += x + 2
	grid.OriginY = y + 3

	return PanelLayout{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Grid:   grid,
	}
}

// Contains reports whether the terminal position falls inside the
// panel rectangle, borders included.
func (p PanelLayout) Contains(x, y int) bool {
	return x >= p.X && x < p.X+p.Width && y >= p.Y && y < p.Y+p.Height
}

// CalculateModalWidth computes responsive modal width based on a
// percentage of the terminal width, clamped between MinWidth and
// MaxWidth.
func CalculateModalWidth(terminalWidth int, cfg ModalConfig) int {
	width := terminalWidth * cfg.WidthPercent / 100

	if width < cfg.MinWidth {
		width = cfg.MinWidth
	}
	if width > cfg.MaxWidth {
		width = cfg.MaxWidth
	}

	// Don't exceed terminal width
	if width > terminalWidth-4 {
		width = terminalWidth - 4
	}
	if width < 1 {
		return 1
	}

	return width
}

// CalculateVisibleListItems computes the start and end indices for a
// scrollable list. Returns (start, end) where items[start:end] should
// be displayed.
func CalculateVisibleListItems(maxVisible, selectedIdx, totalItems int) (start, end int) {
	if totalItems <= maxVisible {
		return 0, totalItems
	}

	if selectedIdx >= maxVisible {
		start = selectedIdx - maxVisible + 1
	}

	end = start + maxVisible
	if end > totalItems {
		end = totalItems
	}

	return start, end
}
