package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "open")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for the bottom bar:
// "j/k:move l:open a:add".
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for modals:
// "Enter confirm  Esc cancel".
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints (j/k, h/l, etc.)
	Edit   []Hint // Edit hints (a, e, d, etc.)
	Action []Hint // Action hints (Enter, drag, etc.)
	System []Hint // System hints (?, q, Esc)
}

// All returns all hints flattened in display order: Nav + Action + Edit + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.Edit)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.Edit...)
	result = append(result, h.System...)
	return result
}

// getContextualHints returns the appropriate hints for the current mode.
func (a App) getContextualHints() HintSet {
	switch a.mode {
	case ModeNormal:
		return a.getNormalModeHints()
	case ModeFolder:
		return a.getFolderModeHints()
	case ModeSearch:
		return a.getSearchModeHints()
	case ModeAddLink, ModeEdit:
		return a.getLinkFormHints()
	case ModeAddFolder:
		return a.getFolderFormHints()
	case ModeConfirmDelete:
		return a.getConfirmDeleteHints()
	case ModeSettings:
		return a.getSettingsHints()
	case ModeHelp:
		// Help overlay covers screen, minimal hints
		return HintSet{
			System: []Hint{{Key: "?/q/Esc", Desc: "close"}},
		}
	default:
		return HintSet{}
	}
}

// getNormalModeHints returns hints for ModeNormal (the dial grid).
func (a App) getNormalModeHints() HintSet {
	return HintSet{
		Nav: []Hint{
			{Key: "h/j/k/l", Desc: "move"},
			{Key: "Enter", Desc: "open"},
		},
		Action: []Hint{
			{Key: "drag", Desc: "arrange"},
			{Key: "s", Desc: "search"},
		},
		Edit: []Hint{
			{Key: "a", Desc: "add"},
			{Key: "e", Desc: "edit"},
			{Key: "d", Desc: "del"},
			{Key: "u", Desc: "undo"},
		},
		System: []Hint{
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// getFolderModeHints returns hints for ModeFolder (folder panel open).
func (a App) getFolderModeHints() HintSet {
	return HintSet{
		Nav: []Hint{
			{Key: "h/l", Desc: "move"},
			{Key: "Enter", Desc: "open"},
		},
		Action: []Hint{
			{Key: "x", Desc: "move out"},
		},
		Edit: []Hint{
			{Key: "e", Desc: "edit"},
			{Key: "d", Desc: "del"},
		},
		System: []Hint{
			{Key: "Esc", Desc: "close"},
		},
	}
}

// getSearchModeHints returns hints for ModeSearch (fuzzy finder).
func (a App) getSearchModeHints() HintSet {
	return HintSet{
		Nav: []Hint{
			{Key: "↑/↓", Desc: "move"},
		},
		Action: []Hint{
			{Key: "Enter", Desc: "open"},
		},
		System: []Hint{
			{Key: "Esc", Desc: "cancel"},
		},
	}
}

// getLinkFormHints returns hints for ModeAddLink and ModeEdit.
func (a App) getLinkFormHints() HintSet {
	return HintSet{
		Nav: []Hint{
			{Key: "Tab", Desc: "next"},
		},
		Action: []Hint{
			{Key: "Enter", Desc: "save"},
		},
		System: []Hint{
			{Key: "Esc", Desc: "cancel"},
		},
	}
}

// getFolderFormHints returns hints for ModeAddFolder.
func (a App) getFolderFormHints() HintSet {
	return HintSet{
		Action: []Hint{
			{Key: "Enter", Desc: "save"},
		},
		System: []Hint{
			{Key: "Esc", Desc: "cancel"},
		},
	}
}

// getConfirmDeleteHints returns hints for ModeConfirmDelete.
func (a App) getConfirmDeleteHints() HintSet {
	return HintSet{
		Action: []Hint{
			{Key: "y/Enter", Desc: "delete"},
		},
		System: []Hint{
			{Key: "n/Esc", Desc: "cancel"},
		},
	}
}

// getSettingsHints returns hints for ModeSettings.
func (a App) getSettingsHints() HintSet {
	return HintSet{
		Nav: []Hint{
			{Key: "j/k", Desc: "move"},
			{Key: "h/l", Desc: "change"},
		},
		Action: []Hint{
			{Key: "Enter", Desc: "edit"},
		},
		System: []Hint{
			{Key: "Esc", Desc: "close"},
		},
	}
}
