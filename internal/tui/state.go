package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/nikbrunner/nt/internal/drag"
	"github.com/nikbrunner/nt/internal/search"
	"github.com/nikbrunner/nt/internal/tui/layout"
)

// DragState tracks one mouse gesture from press to release.
type DragState struct {
	Session    drag.Session // resolver session, active while dragging
	PressX     int          // terminal cell of the initial press
	PressY     int
	PressIndex int  // tile index under the press (-1 = none)
	Moved      bool // true once the pointer left the press cell
}

// NewDragState creates an idle DragState.
func NewDragState() DragState {
	return DragState{PressIndex: -1}
}

// Reset returns the drag state to idle between gestures.
func (d *DragState) Reset() {
	d.Session.Reset()
	d.PressX = 0
	d.PressY = 0
	d.PressIndex = -1
	d.Moved = false
}

// SearchState holds state for the fuzzy search view.
type SearchState struct {
	Input   textinput.Model       // Search input
	Results []search.SearchResult // Current fuzzy match results
	Cursor  int                   // Selected index in results
}

// NewSearchState creates a new SearchState with initialized input.
func NewSearchState(cfg layout.LayoutConfig) SearchState {
	input := textinput.New()
	input.Placeholder = "Search links..."
	input.CharLimit = cfg.Input.TitleCharLimit
	input.Width = cfg.Input.StandardWidth
	return SearchState{Input: input}
}

// Reset clears the search state for a new session.
func (s *SearchState) Reset() {
	s.Input.Reset()
	s.Results = nil
	s.Cursor = 0
}

// FormState holds state for the add/edit modals (link or folder).
type FormState struct {
	TitleInput textinput.Model // Title input for links and folders
	URLInput   textinput.Model // URL input for links
	IconInput  textinput.Model // Icon glyph input
	Focused    int             // Index of the focused input
	EditID     string          // ID of the entry being edited ("" = adding)
	Return     Mode            // Mode to restore when the form closes
}

// NewFormState creates a new FormState with initialized inputs.
func NewFormState(cfg layout.LayoutConfig) FormState {
	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.CharLimit = cfg.Input.TitleCharLimit
	titleInput.Width = cfg.Input.StandardWidth

	urlInput := textinput.New()
	urlInput.Placeholder = "https://..."
	urlInput.CharLimit = cfg.Input.URLCharLimit
	urlInput.Width = cfg.Input.StandardWidth

	iconInput := textinput.New()
	iconInput.Placeholder = "Icon (optional)"
	iconInput.CharLimit = cfg.Input.IconCharLimit
	iconInput.Width = cfg.Input.IconWidth

	return FormState{
		TitleInput: titleInput,
		URLInput:   urlInput,
		IconInput:  iconInput,
	}
}

// Reset clears the form state for a new session.
func (f *FormState) Reset() {
	f.TitleInput.Reset()
	f.URLInput.Reset()
	f.IconInput.Reset()
	f.Focused = 0
	f.EditID = ""
	f.Return = ModeNormal
}

// ConfirmState holds state for the delete confirmation modal.
type ConfirmState struct {
	TargetID    string // ID of the entry to delete
	TargetTitle string // Title shown in the prompt
	ChildCount  int    // Number of children when deleting a folder
	Return      Mode   // Mode to restore when the modal closes
}

// Reset clears the confirm state.
func (c *ConfirmState) Reset() {
	c.TargetID = ""
	c.TargetTitle = ""
	c.ChildCount = 0
	c.Return = ModeNormal
}

// FolderState holds state for the open folder panel.
type FolderState struct {
	FolderID string // ID of the open folder
	Cursor   int    // Selected child index
}

// Reset closes the folder panel.
func (f *FolderState) Reset() {
	f.FolderID = ""
	f.Cursor = 0
}

// SettingsState holds state for the settings view.
type SettingsState struct {
	Cursor   int             // Selected settings row
	Editing  bool            // true while the search URL is being edited
	URLInput textinput.Model // Search URL input
}

// NewSettingsState creates a new SettingsState with initialized input.
func NewSettingsState(cfg layout.LayoutConfig) SettingsState {
	input := textinput.New()
	input.Placeholder = "https://duckduckgo.com/?q="
	input.CharLimit = cfg.Input.URLCharLimit
	input.Width = cfg.Input.StandardWidth
	return SettingsState{URLInput: input}
}

// Reset clears the settings state for a new session.
func (s *SettingsState) Reset() {
	s.Cursor = 0
	s.Editing = false
	s.URLInput.Reset()
}
