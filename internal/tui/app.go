package tui

import (
	"net/url"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/nt/internal/drag"
	"github.com/nikbrunner/nt/internal/model"
	"github.com/nikbrunner/nt/internal/search"
	"github.com/nikbrunner/nt/internal/storage"
	"github.com/nikbrunner/nt/internal/tui/layout"
)

// Mode represents the current input mode of the application.
type Mode int

const (
	ModeNormal Mode = iota
	ModeFolder
	ModeSearch
	ModeAddLink
	ModeAddFolder
	ModeEdit
	ModeConfirmDelete
	ModeSettings
	ModeHelp
)

// undoDepth caps how many dial snapshots the undo stack keeps.
const undoDepth = 50

// statusTimeout is how long a transient status message stays visible.
const statusTimeout = 3 * time.Second

// tickMsg advances the clock.
type tickMsg time.Time

// clearStatusMsg clears the transient status line.
type clearStatusMsg struct{}

// App is the main bubbletea model for the start page.
type App struct {
	entries  []model.Entry
	settings storage.Settings
	store    storage.Storage
	keys     KeyMap
	styles   Styles
	cfg      layout.LayoutConfig
	dragCfg  drag.Config

	openURL      func(string) error
	saveSettings func(storage.Settings) error

	mode   Mode
	cursor int // selected tile index in the dial

	dragState     DragState
	searchState   SearchState
	formState     FormState
	confirmState  ConfirmState
	folderState   FolderState
	settingsState SettingsState

	// Undo stack of previous dials. Every mutation goes through the
	// pure dial operations, so old slices can be kept as-is.
	undo [][]model.Entry

	now           time.Time
	statusMessage string
	statusIsError bool

	// For gg command
	lastKeyWasG bool

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Entries      []model.Entry
	Settings     *storage.Settings            // optional, uses defaults if nil
	Store        storage.Storage              // optional, nil disables persistence
	Keys         *KeyMap                      // optional, uses default if nil
	Styles       *Styles                      // optional, derived from the theme if nil
	Layout       *layout.LayoutConfig         // optional, uses default if nil
	Drag         *drag.Config                 // optional, uses default if nil
	OpenURL      func(string) error           // optional, nil disables opening
	SaveSettings func(storage.Settings) error // optional, nil disables persistence
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	settings := storage.DefaultSettings()
	if params.Settings != nil {
		settings = *params.Settings
	}

	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := StylesForTheme(settings.Theme)
	if params.Styles != nil {
		styles = *params.Styles
	}

	cfg := layout.DefaultConfig()
	if params.Layout != nil {
		cfg = *params.Layout
	}

	dragCfg := drag.DefaultConfig()
	if params.Drag != nil {
		dragCfg = *params.Drag
	}

	entries := params.Entries
	if entries == nil {
		entries = []model.Entry{}
	}

	return App{
		entries:       entries,
		settings:      settings,
		store:         params.Store,
		keys:          keys,
		styles:        styles,
		cfg:           cfg,
		dragCfg:       dragCfg,
		openURL:       params.OpenURL,
		saveSettings:  params.SaveSettings,
		dragState:     NewDragState(),
		searchState:   NewSearchState(cfg),
		formState:     NewFormState(cfg),
		settingsState: NewSettingsState(cfg),
		now:           time.Now(),
		width:         80,
		height:        24,
	}
}

// Entries returns the current dial.
func (a App) Entries() []model.Entry {
	return a.entries
}

// Cursor returns the selected tile index.
func (a App) Cursor() int {
	return a.cursor
}

// Mode returns the current input mode.
func (a App) Mode() Mode {
	return a.mode
}

// StatusMessage returns the transient status line.
func (a App) StatusMessage() string {
	return a.statusMessage
}

// Drag returns the in-flight drag state.
func (a App) Drag() DragState {
	return a.dragState
}

// OpenFolderID returns the ID of the open folder panel, "" when closed.
func (a App) OpenFolderID() string {
	return a.folderState.FolderID
}

// Settings returns the live settings.
func (a App) Settings() storage.Settings {
	return a.settings
}

// WithDimensions returns a copy of the app with fixed dimensions, for
// deterministic rendering in tests.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd schedules the next clock tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tickMsg:
		a.now = time.Time(msg)
		return a, tickCmd()

	case clearStatusMsg:
		a.statusMessage = ""
		a.statusIsError = false
		return a, nil

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.KeyMsg:
		return a.handleKeys(msg)
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}

// handleKeys dispatches a key press to the handler for the current mode.
func (a App) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.mode {
	case ModeNormal:
		return a.handleNormalKeys(msg)
	case ModeFolder:
		return a.handleFolderKeys(msg)
	case ModeSearch:
		return a.handleSearchKeys(msg)
	case ModeAddLink, ModeAddFolder, ModeEdit:
		return a.handleFormKeys(msg)
	case ModeConfirmDelete:
		return a.handleConfirmKeys(msg)
	case ModeSettings:
		return a.handleSettingsKeys(msg)
	case ModeHelp:
		switch msg.String() {
		case "?", "q", "esc", "enter":
			a.mode = ModeNormal
		}
		return a, nil
	}
	return a, nil
}

// handleNormalKeys handles keys on the dial grid.
func (a App) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.cursor = 0
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Back):
		if a.dragState.Session.Active() {
			a.dragState.Reset()
			return a, a.flash("Drag cancelled")
		}

	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Bottom):
		if len(a.entries) > 0 {
			a.cursor = len(a.entries) - 1
		}

	case key.Matches(msg, a.keys.Left):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Right):
		if a.cursor < len(a.entries)-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Up):
		cols := a.dialGrid().Columns
		if a.cursor-cols >= 0 {
			a.cursor -= cols
		}

	case key.Matches(msg, a.keys.Down):
		cols := a.dialGrid().Columns
		if a.cursor+cols < len(a.entries) {
			a.cursor += cols
		}

	case key.Matches(msg, a.keys.MoveLeft):
		if a.cursor > 0 && a.cursor < len(a.entries) {
			dragged := a.entries[a.cursor]
			target := a.entries[a.cursor-1]
			if a.commit(model.MoveBefore(a.entries, dragged.ID, target.ID)) {
				a.cursor--
			}
		}

	case key.Matches(msg, a.keys.MoveRight):
		if a.cursor < len(a.entries)-1 {
			dragged := a.entries[a.cursor]
			target := a.entries[a.cursor+1]
			if a.commit(model.MoveAfter(a.entries, dragged.ID, target.ID)) {
				a.cursor++
			}
		}

	case key.Matches(msg, a.keys.Open):
		return a, a.openEntry(a.cursor)

	case key.Matches(msg, a.keys.AddLink):
		a.formState.Reset()
		a.formState.Return = ModeNormal
		a.mode = ModeAddLink
		a.focusField(0)
		return a, textinput.Blink

	case key.Matches(msg, a.keys.AddFolder):
		a.formState.Reset()
		a.formState.Return = ModeNormal
		a.mode = ModeAddFolder
		a.focusField(0)
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Edit):
		if a.cursor < len(a.entries) {
			a.beginEdit(a.entries[a.cursor], ModeNormal)
			return a, textinput.Blink
		}

	case key.Matches(msg, a.keys.Delete):
		if a.cursor < len(a.entries) {
			a.beginDelete(a.entries[a.cursor], ModeNormal)
		}

	case key.Matches(msg, a.keys.Undo):
		return a, a.undoLast()

	case key.Matches(msg, a.keys.Search):
		a.searchState.Reset()
		a.searchState.Input.Focus()
		a.searchState.Results = search.FuzzySearchLinks(a.entries, "")
		a.mode = ModeSearch
		return a, textinput.Blink

	case key.Matches(msg, a.keys.YankURL):
		return a, a.yankEntry(a.cursor, a.entries)

	case key.Matches(msg, a.keys.Settings):
		a.settingsState.Reset()
		a.mode = ModeSettings

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp
	}

	return a, nil
}

// handleFolderKeys handles keys while a folder panel is open.
func (a App) handleFolderKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	folder, ok := a.currentFolder()
	if !ok {
		a.mode = ModeNormal
		a.folderState.Reset()
		return a, nil
	}
	children := folder.Children

	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.folderState.Cursor = 0
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Back):
		if a.dragState.Session.Active() {
			a.dragState.Reset()
			return a, a.flash("Drag cancelled")
		}
		a.mode = ModeNormal
		a.folderState.Reset()

	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Bottom):
		if len(children) > 0 {
			a.folderState.Cursor = len(children) - 1
		}

	case key.Matches(msg, a.keys.Left):
		if a.folderState.Cursor > 0 {
			a.folderState.Cursor--
		}

	case key.Matches(msg, a.keys.Right):
		if a.folderState.Cursor < len(children)-1 {
			a.folderState.Cursor++
		}

	case key.Matches(msg, a.keys.Up):
		cols := a.panelLayout(folder).Grid.Columns
		if a.folderState.Cursor-cols >= 0 {
			a.folderState.Cursor -= cols
		}

	case key.Matches(msg, a.keys.Down):
		cols := a.panelLayout(folder).Grid.Columns
		if a.folderState.Cursor+cols < len(children) {
			a.folderState.Cursor += cols
		}

	case key.Matches(msg, a.keys.MoveLeft):
		c := a.folderState.Cursor
		if c > 0 && c < len(children) {
			next := a.replaceChildren(folder, model.MoveBefore(children, children[c].ID, children[c-1].ID))
			if a.commit(next) {
				a.folderState.Cursor--
			}
		}

	case key.Matches(msg, a.keys.MoveRight):
		c := a.folderState.Cursor
		if c < len(children)-1 {
			next := a.replaceChildren(folder, model.MoveAfter(children, children[c].ID, children[c+1].ID))
			if a.commit(next) {
				a.folderState.Cursor++
			}
		}

	case key.Matches(msg, a.keys.Open):
		return a, a.openChild(folder, a.folderState.Cursor)

	case key.Matches(msg, a.keys.Extract):
		c := a.folderState.Cursor
		if c < len(children) {
			child := children[c]
			next := model.RemoveFromFolder(a.entries, folder.ID, child.ID)
			next = model.AppendToTopLevel(next, child)
			if a.commit(next) {
				a.clampCursors()
				return a, a.flash("Moved " + child.Title + " to top level")
			}
		}

	case key.Matches(msg, a.keys.Edit):
		if a.folderState.Cursor < len(children) {
			a.beginEdit(children[a.folderState.Cursor], ModeFolder)
			return a, textinput.Blink
		}

	case key.Matches(msg, a.keys.Delete):
		if a.folderState.Cursor < len(children) {
			a.beginDelete(children[a.folderState.Cursor], ModeFolder)
		}

	case key.Matches(msg, a.keys.Undo):
		return a, a.undoLast()

	case key.Matches(msg, a.keys.YankURL):
		return a, a.yankEntry(a.folderState.Cursor, children)
	}

	return a, nil
}

// handleSearchKeys handles keys in the fuzzy search view. Navigation
// uses raw key names so letters still reach the text input.
func (a App) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = ModeNormal
		a.searchState.Reset()
		return a, nil

	case "enter":
		s := a.searchState
		if len(s.Results) > 0 && s.Cursor < len(s.Results) {
			hit := s.Results[s.Cursor].Hit
			a.mode = ModeNormal
			a.searchState.Reset()
			return a, a.openLink(hit.Link)
		}
		if query := strings.TrimSpace(s.Input.Value()); query != "" && a.settings.SearchURL != "" {
			a.mode = ModeNormal
			a.searchState.Reset()
			return a, a.openWebSearch(query)
		}
		return a, nil

	case "up", "ctrl+p":
		if a.searchState.Cursor > 0 {
			a.searchState.Cursor--
		}
		return a, nil

	case "down", "ctrl+n":
		if a.searchState.Cursor < len(a.searchState.Results)-1 {
			a.searchState.Cursor++
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.searchState.Input, cmd = a.searchState.Input.Update(msg)
	a.searchState.Results = search.FuzzySearchLinks(a.entries, a.searchState.Input.Value())
	if a.searchState.Cursor >= len(a.searchState.Results) {
		a.searchState.Cursor = 0
	}
	return a, cmd
}

// handleFormKeys handles keys in the add and edit modals.
func (a App) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Back):
		a.mode = a.formState.Return
		a.formState.Reset()
		return a, nil

	case key.Matches(msg, a.keys.Confirm):
		return a.submitForm()

	case key.Matches(msg, a.keys.NextField):
		a.focusField(a.formState.Focused + 1)
		return a, textinput.Blink

	case key.Matches(msg, a.keys.PrevField):
		a.focusField(a.formState.Focused - 1)
		return a, textinput.Blink
	}

	fields := a.formFields()
	if a.formState.Focused < len(fields) {
		var cmd tea.Cmd
		*fields[a.formState.Focused], cmd = fields[a.formState.Focused].Update(msg)
		return a, cmd
	}
	return a, nil
}

// handleConfirmKeys handles keys in the delete confirmation modal.
func (a App) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		title := a.confirmState.TargetTitle
		changed := a.commit(model.Remove(a.entries, a.confirmState.TargetID))
		a.mode = a.confirmState.Return
		a.confirmState.Reset()
		a.clampCursors()
		if changed {
			return a, a.flash("Deleted " + title)
		}
		return a, nil

	case "n", "esc", "q":
		a.mode = a.confirmState.Return
		a.confirmState.Reset()
		return a, nil
	}
	return a, nil
}

// settingsRowCount is the number of rows in the settings view:
// theme, columns, clock format, top offset, search url.
const settingsRowCount = 5

// handleSettingsKeys handles keys in the settings view.
func (a App) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.settingsState.Editing {
		switch {
		case key.Matches(msg, a.keys.Back):
			a.settingsState.Editing = false
			a.settingsState.URLInput.Blur()
			return a, nil

		case key.Matches(msg, a.keys.Confirm):
			a.settings.SearchURL = strings.TrimSpace(a.settingsState.URLInput.Value())
			a.settingsState.Editing = false
			a.settingsState.URLInput.Blur()
			return a, a.persistSettings()
		}

		var cmd tea.Cmd
		a.settingsState.URLInput, cmd = a.settingsState.URLInput.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.Back), key.Matches(msg, a.keys.Quit):
		a.mode = ModeNormal
		a.settingsState.Reset()

	case key.Matches(msg, a.keys.Up):
		if a.settingsState.Cursor > 0 {
			a.settingsState.Cursor--
		}

	case key.Matches(msg, a.keys.Down):
		if a.settingsState.Cursor < settingsRowCount-1 {
			a.settingsState.Cursor++
		}

	case key.Matches(msg, a.keys.Left):
		return a, a.adjustSetting(-1)

	case key.Matches(msg, a.keys.Right):
		return a, a.adjustSetting(1)

	case key.Matches(msg, a.keys.Confirm):
		if a.settingsState.Cursor == settingsRowCount-1 {
			a.settingsState.Editing = true
			a.settingsState.URLInput.SetValue(a.settings.SearchURL)
			a.settingsState.URLInput.Focus()
			return a, textinput.Blink
		}
	}

	return a, nil
}

// adjustSetting cycles the value of the selected settings row.
func (a *App) adjustSetting(delta int) tea.Cmd {
	switch a.settingsState.Cursor {
	case 0: // theme
		names := ThemeNames()
		idx := 0
		for i, n := range names {
			if n == a.settings.Theme {
				idx = i
			}
		}
		idx = (idx + delta + len(names)) % len(names)
		a.settings.Theme = names[idx]
		a.styles = StylesForTheme(a.settings.Theme)

	case 1: // columns, 0 = auto
		cols := a.settings.Columns + delta
		if cols < 0 {
			cols = a.cfg.Grid.MaxColumns
		}
		if cols > a.cfg.Grid.MaxColumns {
			cols = 0
		}
		a.settings.Columns = cols

	case 2: // clock format
		if a.settings.ClockFormat == "24" {
			a.settings.ClockFormat = "12"
		} else {
			a.settings.ClockFormat = "24"
		}

	case 3: // top offset
		offset := a.settings.TopOffset + delta
		if offset < 0 {
			offset = 0
		}
		if offset > 10 {
			offset = 10
		}
		a.settings.TopOffset = offset

	default:
		return nil
	}

	return a.persistSettings()
}

// persistSettings saves the live settings if a saver is wired.
func (a *App) persistSettings() tea.Cmd {
	if a.saveSettings == nil {
		return nil
	}
	if err := a.saveSettings(a.settings); err != nil {
		return a.flashError("Settings save failed: " + err.Error())
	}
	return nil
}

// beginEdit opens the edit modal prefilled with the entry.
func (a *App) beginEdit(entry model.Entry, returnMode Mode) {
	a.formState.Reset()
	a.formState.EditID = entry.ID
	a.formState.Return = returnMode
	a.formState.TitleInput.SetValue(entry.Title)
	a.formState.URLInput.SetValue(entry.URL)
	a.formState.IconInput.SetValue(entry.Icon)
	a.mode = ModeEdit
	a.focusField(0)
}

// beginDelete opens the delete confirmation modal for the entry.
func (a *App) beginDelete(entry model.Entry, returnMode Mode) {
	a.confirmState.Reset()
	a.confirmState.TargetID = entry.ID
	a.confirmState.TargetTitle = entry.Title
	a.confirmState.Return = returnMode
	if entry.IsFolder() {
		a.confirmState.ChildCount = len(entry.Children)
	}
	a.mode = ModeConfirmDelete
}

// submitForm validates the open form and commits the add or edit.
func (a App) submitForm() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(a.formState.TitleInput.Value())
	rawURL := strings.TrimSpace(a.formState.URLInput.Value())
	icon := strings.TrimSpace(a.formState.IconInput.Value())
	isFolder := a.formIsFolder()

	if title == "" {
		return a, a.flashError("Title is required")
	}
	if !isFolder && a.mode != ModeEdit && rawURL == "" {
		return a, a.flashError("URL is required")
	}

	returnMode := a.formState.Return
	var next []model.Entry
	var verb string

	switch {
	case a.formState.EditID != "":
		current, ok := model.FindByID(a.entries, a.formState.EditID)
		if !ok {
			a.mode = returnMode
			a.formState.Reset()
			return a, a.flashError("Entry no longer exists")
		}
		if !current.IsFolder() && rawURL == "" {
			return a, a.flashError("URL is required")
		}
		updated := current
		updated.Title = title
		updated.Icon = icon
		if !current.IsFolder() {
			updated.URL = normalizeURL(rawURL)
		}
		next = model.Replace(a.entries, updated)
		verb = "Updated "

	case a.mode == ModeAddFolder:
		folder := model.NewFolder(model.NewFolderParams{Title: title, Icon: icon})
		next = model.AppendToTopLevel(a.entries, folder)
		verb = "Added "

	default:
		link := model.NewLink(model.NewLinkParams{Title: title, URL: normalizeURL(rawURL), Icon: icon})
		next = model.AppendToTopLevel(a.entries, link)
		verb = "Added "
	}

	a.commit(next)
	a.mode = returnMode
	a.formState.Reset()
	a.clampCursors()
	return a, a.flash(verb + title)
}

// formIsFolder reports whether the open form edits or adds a folder.
func (a *App) formIsFolder() bool {
	if a.mode == ModeAddFolder {
		return true
	}
	if a.formState.EditID != "" {
		if entry, ok := model.FindByID(a.entries, a.formState.EditID); ok {
			return entry.IsFolder()
		}
	}
	return false
}

// formFields returns the editable inputs of the open form in focus
// order. Folders have no URL field.
func (a *App) formFields() []*textinput.Model {
	f := &a.formState
	if a.formIsFolder() {
		return []*textinput.Model{&f.TitleInput, &f.IconInput}
	}
	return []*textinput.Model{&f.TitleInput, &f.URLInput, &f.IconInput}
}

// focusField moves form focus to field i, wrapping at both ends.
func (a *App) focusField(i int) {
	fields := a.formFields()
	if len(fields) == 0 {
		return
	}
	if i < 0 {
		i = len(fields) - 1
	}
	if i >= len(fields) {
		i = 0
	}
	a.formState.Focused = i
	for j, field := range fields {
		if j == i {
			field.Focus()
		} else {
			field.Blur()
		}
	}
}

// openEntry opens the dial entry at index: links go to the browser,
// folders open their panel.
func (a *App) openEntry(index int) tea.Cmd {
	if index < 0 || index >= len(a.entries) {
		return nil
	}
	entry := a.entries[index]
	if entry.IsFolder() {
		a.folderState.Reset()
		a.folderState.FolderID = entry.ID
		a.mode = ModeFolder
		return nil
	}
	return a.openLink(entry)
}

// openChild opens the folder child at index.
func (a *App) openChild(folder model.Entry, index int) tea.Cmd {
	if index < 0 || index >= len(folder.Children) {
		return nil
	}
	return a.openLink(folder.Children[index])
}

// openLink hands a link URL to the configured opener.
func (a *App) openLink(link model.Entry) tea.Cmd {
	if a.openURL == nil {
		return a.flash(link.Title)
	}
	if err := a.openURL(link.URL); err != nil {
		return a.flashError("Open failed: " + err.Error())
	}
	return a.flash("Opened " + link.Title)
}

// openWebSearch sends the query to the configured search engine.
func (a *App) openWebSearch(query string) tea.Cmd {
	target := a.settings.SearchURL + url.QueryEscape(query)
	if a.openURL == nil {
		return a.flash("Searched " + query)
	}
	if err := a.openURL(target); err != nil {
		return a.flashError("Open failed: " + err.Error())
	}
	return a.flash("Searched " + query)
}

// yankEntry copies the URL of the entry at index to the clipboard.
func (a *App) yankEntry(index int, entries []model.Entry) tea.Cmd {
	if index < 0 || index >= len(entries) {
		return nil
	}
	entry := entries[index]
	if entry.IsFolder() {
		return a.flashError("Folders have no URL")
	}
	if err := clipboard.WriteAll(entry.URL); err != nil {
		return a.flashError("Yank failed: " + err.Error())
	}
	return a.flash("Yanked " + entry.URL)
}

// currentFolder returns the folder backing the open panel.
func (a App) currentFolder() (model.Entry, bool) {
	entry, ok := model.FindByID(a.entries, a.folderState.FolderID)
	if !ok || !entry.IsFolder() {
		return model.Entry{}, false
	}
	return entry, true
}

// replaceChildren returns the dial with the folder's children swapped.
func (a App) replaceChildren(folder model.Entry, children []model.Entry) []model.Entry {
	updated := folder
	updated.Children = children
	return model.Replace(a.entries, updated)
}

// dialGrid returns the grid layout for the current terminal size.
func (a App) dialGrid() layout.GridLayout {
	originY := a.cfg.Grid.HeaderReduction + a.settings.TopOffset
	return layout.CalculateGrid(a.width, len(a.entries), a.settings.Columns, originY, a.cfg.Grid)
}

// panelLayout returns the folder panel layout for the current size.
func (a App) panelLayout(folder model.Entry) layout.PanelLayout {
	return layout.CalculatePanel(a.width, a.height, len(folder.Children), a.cfg)
}

// dialChanged reports whether an operation produced a new dial. The
// pure dial operations hand back the input slice untouched when they
// degrade to a no-op.
func dialChanged(before, after []model.Entry) bool {
	if len(before) != len(after) {
		return true
	}
	if len(before) == 0 {
		return false
	}
	return &before[0] != &after[0]
}

// commit replaces the dial with the result of an operation, recording
// the old dial for undo and persisting the new one. Returns false when
// the operation degraded and nothing changed.
func (a *App) commit(next []model.Entry) bool {
	if !dialChanged(a.entries, next) {
		return false
	}
	a.undo = append(a.undo, a.entries)
	if len(a.undo) > undoDepth {
		a.undo = a.undo[len(a.undo)-undoDepth:]
	}
	a.entries = next
	a.persist()
	return true
}

// undoLast restores the previous dial from the undo stack.
func (a *App) undoLast() tea.Cmd {
	if len(a.undo) == 0 {
		return a.flash("Nothing to undo")
	}
	a.entries = a.undo[len(a.undo)-1]
	a.undo = a.undo[:len(a.undo)-1]
	a.persist()
	a.clampCursors()
	return a.flash("Undone")
}

// persist saves the dial if a store is wired. Save errors land on the
// status line and stay until the next action.
func (a *App) persist() {
	if a.store == nil {
		return
	}
	if err := a.store.Save(a.entries); err != nil {
		a.statusMessage = "Save failed: " + err.Error()
		a.statusIsError = true
	}
}

// clampCursors keeps the dial and panel cursors on existing entries
// after the dial shrank, and closes the panel if its folder is gone.
func (a *App) clampCursors() {
	if a.cursor >= len(a.entries) {
		a.cursor = len(a.entries) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}

	if a.folderState.FolderID == "" {
		return
	}
	folder, ok := model.FindByID(a.entries, a.folderState.FolderID)
	if !ok || !folder.IsFolder() {
		if a.mode == ModeFolder {
			a.mode = ModeNormal
		}
		a.folderState.Reset()
		return
	}
	if a.folderState.Cursor >= len(folder.Children) {
		a.folderState.Cursor = len(folder.Children) - 1
	}
	if a.folderState.Cursor < 0 {
		a.folderState.Cursor = 0
	}
}

// flash shows a transient status message.
func (a *App) flash(msg string) tea.Cmd {
	a.statusMessage = msg
	a.statusIsError = false
	return clearStatusLater()
}

// flashError shows a transient error message.
func (a *App) flashError(msg string) tea.Cmd {
	a.statusMessage = msg
	a.statusIsError = true
	return clearStatusLater()
}

// clearStatusLater schedules the status line to clear.
func clearStatusLater() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// normalizeURL prefixes bare hosts with https so typed entries like
// "example.com" still open in a browser.
func normalizeURL(raw string) string {
	if raw == "" || strings.Contains(raw, "://") {
		return raw
	}
	return "https://" + raw
}
