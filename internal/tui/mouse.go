package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/nt/internal/drag"
	"github.com/nikbrunner/nt/internal/model"
	"github.com/nikbrunner/nt/internal/tui/layout"
)

// handleMouse dispatches mouse events for the modes that use them.
func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch a.mode {
	case ModeNormal:
		return a.handleDialMouse(msg)
	case ModeFolder:
		return a.handlePanelMouse(msg)
	}
	return a, nil
}

// handleDialMouse runs the drag gesture over the dial grid. A press
// arms the gesture, the first motion into another cell starts the
// drag, and release either opens the tile (click) or drops at the
// final pointer position.
func (a App) handleDialMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	grid := a.dialGrid()

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		a.dragState.Reset()
		if index, ok := grid.CellAt(msg.X, msg.Y); ok {
			a.dragState.PressX = msg.X
			a.dragState.PressY = msg.Y
			a.dragState.PressIndex = index
			a.cursor = index
		}
		return a, nil

	case msg.Action == tea.MouseActionMotion:
		a.observeDialDrag(msg, grid)
		return a, nil

	case msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft:
		return a.dropOnDial(msg, grid)
	}

	return a, nil
}

// observeDialDrag tracks pointer motion while the button is held,
// starting the drag session once the pointer leaves the press cell.
func (a *App) observeDialDrag(msg tea.MouseMsg, grid layout.GridLayout) {
	d := &a.dragState
	if d.PressIndex < 0 {
		return
	}

	if !d.Moved {
		if msg.X == d.PressX && msg.Y == d.PressY {
			return
		}
		d.Moved = true
		if d.PressIndex < len(a.entries) {
			d.Session = drag.NewSession(a.entries[d.PressIndex].ID)
		}
	}
	if !d.Session.Active() {
		return
	}

	dragged, ok := model.FindByID(a.entries, d.Session.DraggedID)
	if !ok {
		d.Reset()
		return
	}

	index, ok := grid.CellAt(msg.X, msg.Y)
	if !ok {
		d.Session.Leave()
		return
	}

	target := a.entries[index]
	relX, relY := grid.CellOffset(index, msg.X, msg.Y)
	sample := drag.Sample{X: relX, Y: relY, Width: grid.TileWidth, Height: grid.TileHeight}
	d.Session.Observe(dragged, target, sample, a.dragCfg)
}

// dropOnDial finishes the gesture on the dial: a click opens the tile
// under the pointer, a drag commits at the release geometry. Releasing
// over empty space cancels and the dial stays as it was.
func (a App) dropOnDial(msg tea.MouseMsg, grid layout.GridLayout) (tea.Model, tea.Cmd) {
	d := a.dragState
	a.dragState.Reset()

	if !d.Moved || !d.Session.Active() {
		if index, ok := grid.CellAt(msg.X, msg.Y); ok && index == d.PressIndex {
			a.cursor = index
			return a, a.openEntry(index)
		}
		return a, nil
	}

	index, ok := grid.CellAt(msg.X, msg.Y)
	if !ok {
		return a, nil
	}

	dragged, ok := model.FindByID(a.entries, d.Session.DraggedID)
	if !ok {
		return a, nil
	}
	target := a.entries[index]
	relX, relY := grid.CellOffset(index, msg.X, msg.Y)
	sample := drag.Sample{X: relX, Y: relY, Width: grid.TileWidth, Height: grid.TileHeight}

	intent := drag.Classify(dragged, target, sample, a.dragCfg)
	if !a.commit(d.Session.Drop(a.entries, target, sample, a.dragCfg)) {
		return a, nil
	}

	a.clampCursors()
	if idx := topIndexOf(a.entries, d.Session.DraggedID); idx >= 0 {
		a.cursor = idx
	}

	if intent == drag.IntentMerge {
		return a, a.flash("Merged " + dragged.Title + " with " + target.Title)
	}
	return a, a.flash("Moved " + dragged.Title)
}

// handlePanelMouse runs the drag gesture inside the folder panel.
// Children only reorder; dragging one out of the panel moves it back
// to the top level.
func (a App) handlePanelMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	folder, ok := a.currentFolder()
	if !ok {
		a.mode = ModeNormal
		a.folderState.Reset()
		return a, nil
	}
	panel := a.panelLayout(folder)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		a.dragState.Reset()
		if !panel.Contains(msg.X, msg.Y) {
			a.mode = ModeNormal
			a.folderState.Reset()
			return a, nil
		}
		if index, ok := panel.Grid.CellAt(msg.X, msg.Y); ok {
			a.dragState.PressX = msg.X
			a.dragState.PressY = msg.Y
			a.dragState.PressIndex = index
			a.folderState.Cursor = index
		}
		return a, nil

	case msg.Action == tea.MouseActionMotion:
		a.observePanelDrag(msg, folder, panel)
		return a, nil

	case msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft:
		return a.dropOnPanel(msg, folder, panel)
	}

	return a, nil
}

// observePanelDrag tracks pointer motion inside the panel. Merging is
// structurally impossible there, so only reorder intents show up.
func (a *App) observePanelDrag(msg tea.MouseMsg, folder model.Entry, panel layout.PanelLayout) {
	d := &a.dragState
	if d.PressIndex < 0 {
		return
	}

	if !d.Moved {
		if msg.X == d.PressX && msg.Y == d.PressY {
			return
		}
		d.Moved = true
		if d.PressIndex < len(folder.Children) {
			d.Session = drag.NewSession(folder.Children[d.PressIndex].ID)
		}
	}
	if !d.Session.Active() {
		return
	}

	index, ok := panel.Grid.CellAt(msg.X, msg.Y)
	if !ok {
		d.Session.Leave()
		return
	}

	target := folder.Children[index]
	if target.ID == d.Session.DraggedID {
		d.Session.Leave()
		return
	}

	relX, relY := panel.Grid.CellOffset(index, msg.X, msg.Y)
	d.Session.TargetID = target.ID
	d.Session.Intent = drag.ClassifyReorder(drag.Sample{
		X: relX, Y: relY,
		Width: panel.Grid.TileWidth, Height: panel.Grid.TileHeight,
	})
}

// dropOnPanel finishes the gesture in the folder panel: click opens,
// a drop over a sibling reorders, a drop outside the panel moves the
// child back to the top level.
func (a App) dropOnPanel(msg tea.MouseMsg, folder model.Entry, panel layout.PanelLayout) (tea.Model, tea.Cmd) {
	d := a.dragState
	a.dragState.Reset()
	children := folder.Children

	if !d.Moved || !d.Session.Active() {
		if index, ok := panel.Grid.CellAt(msg.X, msg.Y); ok && index == d.PressIndex {
			a.folderState.Cursor = index
			return a, a.openChild(folder, index)
		}
		return a, nil
	}

	child, ok := model.FindByID(children, d.Session.DraggedID)
	if !ok {
		return a, nil
	}

	if !panel.Contains(msg.X, msg.Y) {
		next := model.RemoveFromFolder(a.entries, folder.ID, child.ID)
		next = model.AppendToTopLevel(next, child)
		if a.commit(next) {
			a.clampCursors()
			return a, a.flash("Moved " + child.Title + " to top level")
		}
		return a, nil
	}

	index, ok := panel.Grid.CellAt(msg.X, msg.Y)
	if !ok || children[index].ID == child.ID {
		return a, nil
	}
	target := children[index]

	relX, relY := panel.Grid.CellOffset(index, msg.X, msg.Y)
	intent := drag.ClassifyReorder(drag.Sample{
		X: relX, Y: relY,
		Width: panel.Grid.TileWidth, Height: panel.Grid.TileHeight,
	})

	var reordered []model.Entry
	if intent == drag.IntentAfter {
		reordered = model.MoveAfter(children, child.ID, target.ID)
	} else {
		reordered = model.MoveBefore(children, child.ID, target.ID)
	}

	if a.commit(a.replaceChildren(folder, reordered)) {
		if idx := model.IndexOf(reordered, child.ID); idx >= 0 {
			a.folderState.Cursor = idx
		}
		return a, a.flash("Moved " + child.Title)
	}
	return a, nil
}

// topIndexOf returns the top-level index of the entry with the given
// id, or of the folder that contains it. Returns -1 when absent.
func topIndexOf(entries []model.Entry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
		for _, c := range e.Children {
			if c.ID == id {
				return i
			}
		}
	}
	return -1
}
