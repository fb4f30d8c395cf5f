package tui

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/nt/internal/drag"
	"github.com/nikbrunner/nt/internal/model"
	"github.com/nikbrunner/nt/internal/tui/layout"
)

// renderView renders the full screen for the current mode.
func (a App) renderView() string {
	switch a.mode {
	case ModeFolder:
		return a.renderFolderPanel()
	case ModeSearch:
		return a.renderSearch()
	case ModeAddLink, ModeAddFolder, ModeEdit:
		return a.renderForm()
	case ModeConfirmDelete:
		return a.renderConfirm()
	case ModeSettings:
		return a.renderSettings()
	case ModeHelp:
		return a.renderHelp()
	default:
		return a.renderDial()
	}
}

// renderDial renders the start page: clock header and the tile grid.
// The canvas is composed line by line so tile positions match the
// calculated grid exactly, which the mouse hit testing relies on.
func (a App) renderDial() string {
	grid := a.dialGrid()
	lines := a.headerLines(grid.OriginY)

	if len(a.entries) == 0 {
		empty := a.styles.Empty.Render("Empty dial. Press a to add a link, A to add a folder.")
		lines = append(lines, centerLine(empty, a.width))
	} else {
		lines = append(lines, a.composeGrid(a.entries, grid, grid.OriginX, a.dialTileStyle, a.gapMark(a.entries))...)
	}

	return a.finishCanvas(lines)
}

// headerLines renders the clock block padded to exactly originY rows.
func (a App) headerLines(originY int) []string {
	clock := a.now.Format("15:04")
	if a.settings.ClockFormat == "12" {
		clock = a.now.Format("3:04 PM")
	}
	date := a.now.Format("Monday, January 2")

	lines := []string{
		"",
		centerLine(a.styles.Clock.Render(clock), a.width),
		"",
		centerLine(a.styles.Date.Render(date), a.width),
	}
	for len(lines) < originY {
		lines = append(lines, "")
	}
	if len(lines) > originY {
		lines = lines[:originY]
	}
	return lines
}

// composeGrid renders entries as a tile grid, one string per terminal
// row, left-padded so columns line up with the calculated layout.
// styleFor picks the style of tile i; gapLeftOf fills the gap column
// left of tile i, which is where the insert marker shows up.
func (a App) composeGrid(entries []model.Entry, grid layout.GridLayout, leftPad int, styleFor func(int) lipgloss.Style, gapLeftOf func(int) string) []string {
	pad := strings.Repeat(" ", leftPad)
	var lines []string

	for row := 0; row < grid.Rows; row++ {
		start := row * grid.Columns
		end := start + grid.Columns
		if end > len(entries) {
			end = len(entries)
		}

		blocks := make([][]string, 0, end-start)
		for i := start; i < end; i++ {
			blocks = append(blocks, a.tileBlock(entries[i], styleFor(i)))
		}

		for lineIdx := 0; lineIdx < grid.TileHeight; lineIdx++ {
			var b strings.Builder
			b.WriteString(pad)
			for col, block := range blocks {
				if col > 0 {
					b.WriteString(gapLeftOf(start + col))
				}
				if lineIdx < len(block) {
					b.WriteString(block[lineIdx])
				}
			}
			lines = append(lines, b.String())
		}

		if row < grid.Rows-1 {
			for g := 0; g < grid.GapY; g++ {
				lines = append(lines, "")
			}
		}
	}

	return lines
}

// tileBlock renders one tile as a block of TileHeight lines.
func (a App) tileBlock(entry model.Entry, style lipgloss.Style) []string {
	rendered := style.
		Width(a.cfg.Grid.TileWidth - 2).
		Height(a.cfg.Grid.TileHeight - 2).
		Render(a.tileContent(entry))
	return strings.Split(rendered, "\n")
}

// tileContent renders the three content lines of a tile: icon glyph,
// title, and either the link host or the folder's link count.
func (a App) tileContent(entry model.Entry) string {
	textWidth := a.cfg.Grid.TileWidth - 4

	glyph := entry.Icon
	if glyph == "" {
		if entry.IsFolder() {
			glyph = "▣"
		} else {
			glyph = "·"
		}
	}

	title := layout.TruncateText(entry.Title, textWidth, a.cfg.Text)

	var sub string
	if entry.IsFolder() {
		sub = countLabel(len(entry.Children))
	} else {
		sub = hostOf(entry.URL)
	}
	sub = layout.TruncateText(sub, textWidth, a.cfg.Text)

	return a.styles.TileIcon.Render(glyph) + "\n" +
		a.styles.TileTitle.Render(title) + "\n" +
		a.styles.FolderCount.Render(sub)
}

// dialTileStyle picks the style of dial tile i. During a drag the
// dragged tile fades and a merge target gets the double border.
func (a App) dialTileStyle(i int) lipgloss.Style {
	entry := a.entries[i]
	d := a.dragState
	if d.Session.Active() {
		if entry.ID == d.Session.DraggedID {
			return a.styles.TileDragged
		}
		if entry.ID == d.Session.TargetID && d.Session.Intent == drag.IntentMerge {
			return a.styles.TileMerge
		}
		return a.styles.Tile
	}
	if i == a.cursor {
		return a.styles.TileCursor
	}
	return a.styles.Tile
}

// gapMark returns a gap filler that draws the insert marker on the
// boundary a reorder drop would land on.
func (a App) gapMark(entries []model.Entry) func(int) string {
	gap := strings.Repeat(" ", a.cfg.Grid.GapX)
	return func(index int) string {
		d := a.dragState
		if !d.Session.Active() || d.Session.TargetID == "" {
			return gap
		}
		targetIdx := model.IndexOf(entries, d.Session.TargetID)
		if targetIdx < 0 {
			return gap
		}

		mark := a.styles.InsertMark.Render("▌")
		rest := strings.Repeat(" ", a.cfg.Grid.GapX-1)
		switch d.Session.Intent {
		case drag.IntentBefore:
			if targetIdx == index {
				return rest + mark
			}
		case drag.IntentAfter:
			if targetIdx == index-1 {
				return mark + rest
			}
		}
		return gap
	}
}

// renderFolderPanel renders the open folder as a centered panel with
// its children in a smaller grid.
func (a App) renderFolderPanel() string {
	folder, ok := a.currentFolder()
	if !ok {
		return a.renderDial()
	}
	panel := a.panelLayout(folder)
	children := folder.Children

	innerWidth := panel.Width - 4
	titleText := layout.TruncateWithPrefixSuffix(folder.Title, "", fmt.Sprintf(" (%d)", len(children)), innerWidth, a.cfg.Text)

	content := []string{a.styles.PanelTitle.Render(titleText), ""}
	if len(children) == 0 {
		content = append(content, a.styles.Empty.Render("Empty folder."))
	} else {
		styleFor := func(i int) lipgloss.Style {
			d := a.dragState
			if d.Session.Active() {
				if children[i].ID == d.Session.DraggedID {
					return a.styles.TileDragged
				}
				return a.styles.Tile
			}
			if i == a.folderState.Cursor {
				return a.styles.TileCursor
			}
			return a.styles.Tile
		}
		innerPad := panel.Grid.OriginX - panel.X - 2
		content = append(content, a.composeGrid(children, panel.Grid, innerPad, styleFor, a.gapMark(children))...)
		content = append(content, "")
	}

	box := a.styles.Panel.
		Width(panel.Width - 2).
		Render(strings.Join(content, "\n"))

	lines := make([]string, panel.Y)
	leftPad := strings.Repeat(" ", panel.X)
	for _, line := range strings.Split(box, "\n") {
		lines = append(lines, leftPad+line)
	}

	return a.finishCanvas(lines)
}

// renderSearch renders the fuzzy search view.
func (a App) renderSearch() string {
	var b strings.Builder
	b.WriteString(a.styles.ModalTitle.Render("Search") + "\n\n")
	b.WriteString(a.searchState.Input.View() + "\n\n")

	results := a.searchState.Results
	if len(results) == 0 {
		query := strings.TrimSpace(a.searchState.Input.Value())
		if query != "" && a.settings.SearchURL != "" {
			b.WriteString(a.styles.Empty.Render("No matches. Enter searches the web.") + "\n")
		} else {
			b.WriteString(a.styles.Empty.Render("No links yet.") + "\n")
		}
	} else {
		start, end := layout.CalculateVisibleListItems(a.cfg.Modal.SearchMaxVisible, a.searchState.Cursor, len(results))
		for i := start; i < end; i++ {
			b.WriteString(a.renderSearchResult(i) + "\n")
		}
	}

	b.WriteString("\n" + a.renderHints(a.getContextualHints()))
	return a.styles.App.Render(b.String())
}

// renderSearchResult renders one search hit with its matched
// characters highlighted. Match indexes are byte offsets.
func (a App) renderSearchResult(index int) string {
	r := a.searchState.Results[index]
	matched := make(map[int]bool, len(r.MatchedIndexes))
	for _, mi := range r.MatchedIndexes {
		matched[mi] = true
	}

	var title strings.Builder
	for bi, ch := range r.Hit.Link.Title {
		s := string(ch)
		if matched[bi] {
			title.WriteString(a.styles.Match.Render(s))
		} else {
			title.WriteString(a.styles.TileTitle.Render(s))
		}
	}

	line := title.String()
	if r.Hit.Folder != "" {
		line += a.styles.FolderCount.Render("  in " + r.Hit.Folder)
	}
	line += a.styles.URL.Render("  " + r.Hit.Link.URL)
	line = layout.TruncateANSIAware(line, a.width-6, a.cfg.Text)

	if index == a.searchState.Cursor {
		return a.styles.Match.Render("> ") + line
	}
	return "  " + line
}

// renderForm renders the add or edit modal.
func (a App) renderForm() string {
	var title string
	switch {
	case a.mode == ModeAddLink:
		title = "Add Link"
	case a.mode == ModeAddFolder:
		title = "Add Folder"
	case a.formIsFolder():
		title = "Edit Folder"
	default:
		title = "Edit Link"
	}

	var b strings.Builder
	b.WriteString(a.styles.ModalTitle.Render(title) + "\n\n")
	b.WriteString(a.styles.Label.Render("Title") + "\n")
	b.WriteString(a.formState.TitleInput.View() + "\n\n")
	if !a.formIsFolder() {
		b.WriteString(a.styles.Label.Render("URL") + "\n")
		b.WriteString(a.formState.URLInput.View() + "\n\n")
	}
	b.WriteString(a.styles.Label.Render("Icon") + "\n")
	b.WriteString(a.formState.IconInput.View() + "\n\n")
	b.WriteString(a.renderHintsInline(a.getContextualHints().All()))

	return a.centerModal(b.String())
}

// renderConfirm renders the delete confirmation modal.
func (a App) renderConfirm() string {
	var b strings.Builder
	b.WriteString(a.styles.ModalTitle.Render("Delete") + "\n\n")
	b.WriteString("Delete " + a.styles.TileTitle.Render(a.confirmState.TargetTitle) + "?\n")
	if a.confirmState.ChildCount > 0 {
		b.WriteString(a.styles.Error.Render(countLabel(a.confirmState.ChildCount)+" inside will be deleted too") + "\n")
	}
	b.WriteString("\n" + a.renderHintsInline(a.getContextualHints().All()))
	return a.centerModal(b.String())
}

// renderSettings renders the settings view.
func (a App) renderSettings() string {
	rows := []struct {
		name  string
		value string
	}{
		{"Theme", a.settings.Theme},
		{"Columns", columnsLabel(a.settings.Columns)},
		{"Clock", a.settings.ClockFormat + "h"},
		{"Top offset", strconv.Itoa(a.settings.TopOffset)},
		{"Search URL", a.settings.SearchURL},
	}

	var b strings.Builder
	b.WriteString(a.styles.ModalTitle.Render("Settings") + "\n\n")
	for i, row := range rows {
		name := fmt.Sprintf("%-12s", row.name)
		value := row.value
		if i == settingsRowCount-1 && a.settingsState.Editing {
			value = a.settingsState.URLInput.View()
		}

		switch {
		case i == a.settingsState.Cursor && a.settingsState.Editing:
			b.WriteString(a.styles.Match.Render("> ") + a.styles.Label.Render(name) + " " + value + "\n")
		case i == a.settingsState.Cursor:
			b.WriteString(a.styles.Selected.Render(" "+name+" "+value+" ") + "\n")
		default:
			b.WriteString("  " + a.styles.Label.Render(name) + " " + value + "\n")
		}
	}

	b.WriteString("\n" + a.renderHints(a.getContextualHints()))
	return a.styles.App.Render(b.String())
}

// renderHelp renders the help overlay.
func (a App) renderHelp() string {
	groups := []struct {
		title string
		keys  []key.Binding
	}{
		{"Navigate", []key.Binding{a.keys.Up, a.keys.Down, a.keys.Left, a.keys.Right, a.keys.Top, a.keys.Bottom, a.keys.Open}},
		{"Arrange", []key.Binding{a.keys.MoveLeft, a.keys.MoveRight, a.keys.Undo}},
		{"Edit", []key.Binding{a.keys.AddLink, a.keys.AddFolder, a.keys.Edit, a.keys.Delete, a.keys.Extract}},
		{"Other", []key.Binding{a.keys.Search, a.keys.YankURL, a.keys.Settings, a.keys.Help, a.keys.Quit}},
	}

	var b strings.Builder
	b.WriteString(a.styles.ModalTitle.Render("Help") + "\n")
	for _, group := range groups {
		b.WriteString("\n" + a.styles.PanelTitle.Render(group.title) + "\n")
		for _, binding := range group.keys {
			h := binding.Help()
			b.WriteString("  " + a.styles.HintKey.Render(fmt.Sprintf("%-12s", h.Key)) + " " + a.styles.HintDesc.Render(h.Desc) + "\n")
		}
	}
	b.WriteString("\n" + a.styles.Label.Render("Drag a tile onto another tile: the edges reorder, the center merges."))

	return a.styles.App.Render(b.String())
}

// centerModal wraps content in the modal border and centers it.
func (a App) centerModal(content string) string {
	box := a.styles.Modal.
		Width(layout.CalculateModalWidth(a.width, a.cfg.Modal)).
		Render(content)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}

// finishCanvas pads the canvas to the bottom of the terminal and adds
// the status and hint lines.
func (a App) finishCanvas(lines []string) string {
	for len(lines) < a.height-3 {
		lines = append(lines, "")
	}

	status := ""
	if a.statusMessage != "" {
		st := a.styles.Status
		if a.statusIsError {
			st = a.styles.Error
		}
		status = " " + st.Render(a.statusMessage)
	}
	hints := " " + a.renderHints(a.getContextualHints())

	lines = append(lines, status, hints)
	return strings.Join(lines, "\n")
}

// centerLine pads a styled line so its visible text is centered.
func centerLine(s string, width int) string {
	pad := (width - layout.VisibleLength(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}

// countLabel formats a folder's link count.
func countLabel(n int) string {
	if n == 1 {
		return "1 link"
	}
	return fmt.Sprintf("%d links", n)
}

// columnsLabel formats the columns setting, where zero means fit.
func columnsLabel(n int) string {
	if n == 0 {
		return "auto"
	}
	return strconv.Itoa(n)
}

// hostOf strips the scheme and path from a URL for the tile subtitle.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return strings.TrimPrefix(u.Host, "www.")
}
