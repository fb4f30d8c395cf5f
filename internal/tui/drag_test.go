package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/nt/internal/drag"
	"github.com/nikbrunner/nt/internal/model"
	"github.com/nikbrunner/nt/internal/tui"
)

// Grid geometry at 80x24 with the default config and settings: three
// columns starting at x=8, tiles 20x5 with a 2 cell gap, first row at
// y=7. Tile 0 spans (8,7)-(27,11), tile 1 starts at x=30, tile 2 at
// x=52, tile 3 at (8,13).

// mouse sends one left-button mouse event and returns the updated app.
func mouse(t *testing.T, app tui.App, action tea.MouseAction, x, y int) tui.App {
	t.Helper()
	updated, _ := app.Update(tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft})
	return updated.(tui.App)
}

func TestDrag_MergeTwoLinks(t *testing.T) {
	app := createTestApp(testEntries())

	app = mouse(t, app, tea.MouseActionPress, 10, 8)
	app = mouse(t, app, tea.MouseActionMotion, 40, 9) // center of tile 1

	if !app.Drag().Session.Active() {
		t.Fatal("motion should start a drag session")
	}
	if app.Drag().Session.Intent != drag.IntentMerge {
		t.Fatalf("expected merge preview, got %v", app.Drag().Session.Intent)
	}

	app = mouse(t, app, tea.MouseActionRelease, 40, 9)

	entries := app.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries after merge, got %d", len(entries))
	}
	merged := entries[0]
	if !merged.IsFolder() {
		t.Fatal("merged entry should be a folder")
	}
	if merged.Title != model.DefaultFolderTitle {
		t.Errorf("expected default folder title, got %q", merged.Title)
	}
	if len(merged.Children) != 2 || merged.Children[0].ID != "b" || merged.Children[1].ID != "a" {
		t.Errorf("expected children [b a], got %v", merged.Children)
	}
	if merged.ID == "a" || merged.ID == "b" {
		t.Error("merged folder should get a fresh id")
	}
	if app.Drag().Session.Active() {
		t.Error("session should reset after the drop")
	}
	if err := model.Validate(app.Entries()); err != nil {
		t.Errorf("dial invalid after merge: %v", err)
	}
}

func TestDrag_ReorderBefore(t *testing.T) {
	app := createTestApp(testEntries())

	// Drag tile 3 (c) onto the left edge of tile 1 (b).
	app = mouse(t, app, tea.MouseActionPress, 10, 14)
	app = mouse(t, app, tea.MouseActionMotion, 32, 8)

	if app.Drag().Session.Intent != drag.IntentBefore {
		t.Fatalf("expected before preview, got %v", app.Drag().Session.Intent)
	}

	app = mouse(t, app, tea.MouseActionRelease, 32, 8)
	assertOrder(t, app.Entries(), "a", "c", "b", "f")
}

func TestDrag_ReorderAfter(t *testing.T) {
	app := createTestApp(testEntries())

	// Drag tile 0 (a) onto the right edge of tile 1 (b).
	app = mouse(t, app, tea.MouseActionPress, 10, 8)
	app = mouse(t, app, tea.MouseActionMotion, 46, 11)

	if app.Drag().Session.Intent != drag.IntentAfter {
		t.Fatalf("expected after preview, got %v", app.Drag().Session.Intent)
	}

	app = mouse(t, app, tea.MouseActionRelease, 46, 11)
	assertOrder(t, app.Entries(), "b", "a", "f", "c")
}

func TestDrag_ClickOpensTile(t *testing.T) {
	var opened []string
	app := tui.NewApp(tui.AppParams{
		Entries: testEntries(),
		OpenURL: func(u string) error {
			opened = append(opened, u)
			return nil
		},
	}).WithDimensions(80, 24)

	app = mouse(t, app, tea.MouseActionPress, 10, 8)
	app = mouse(t, app, tea.MouseActionRelease, 10, 8)

	if len(opened) != 1 || opened[0] != "https://github.com" {
		t.Errorf("click should open the tile, got %v", opened)
	}
	if app.Cursor() != 0 {
		t.Errorf("click should move the cursor, got %d", app.Cursor())
	}
}

func TestDrag_ClickOnFolderOpensPanel(t *testing.T) {
	app := createTestApp(testEntries())

	app = mouse(t, app, tea.MouseActionPress, 55, 8)
	app = mouse(t, app, tea.MouseActionRelease, 55, 8)

	if app.Mode() != tui.ModeFolder {
		t.Fatalf("expected ModeFolder, got %v", app.Mode())
	}
	if app.OpenFolderID() != "f" {
		t.Errorf("expected folder f open, got %q", app.OpenFolderID())
	}
}

func TestDrag_EscCancels(t *testing.T) {
	app := createTestApp(testEntries())

	app = mouse(t, app, tea.MouseActionPress, 10, 8)
	app = mouse(t, app, tea.MouseActionMotion, 40, 9)
	app = pressKey(t, app, "esc")

	assertOrder(t, app.Entries(), "a", "b", "f", "c")
	if app.Drag().Session.Active() {
		t.Error("esc should reset the session")
	}
	if app.StatusMessage() != "Drag cancelled" {
		t.Errorf("unexpected status %q", app.StatusMessage())
	}

	// The release after a cancelled drag is a no-op.
	app = mouse(t, app, tea.MouseActionRelease, 40, 9)
	assertOrder(t, app.Entries(), "a", "b", "f", "c")
}

func TestDrag_ReleaseOverGapCancels(t *testing.T) {
	app := createTestApp(testEntries())

	app = mouse(t, app, tea.MouseActionPress, 10, 8)
	app = mouse(t, app, tea.MouseActionMotion, 40, 9)
	app = mouse(t, app, tea.MouseActionRelease, 28, 8) // gap between tiles 0 and 1

	assertOrder(t, app.Entries(), "a", "b", "f", "c")
	if app.Drag().Session.Active() {
		t.Error("session should reset after release")
	}
}

func TestDrag_FolderOntoFolderNeverMerges(t *testing.T) {
	entries := []model.Entry{
		{ID: "fa", Kind: model.KindFolder, Title: "Work", Children: []model.Entry{
			{ID: "w1", Kind: model.KindLink, Title: "Mail", URL: "https://mail.example.com"},
		}},
		{ID: "fb", Kind: model.KindFolder, Title: "Play", Children: []model.Entry{
			{ID: "p1", Kind: model.KindLink, Title: "Games", URL: "https://games.example.com"},
		}},
		{ID: "x", Kind: model.KindLink, Title: "News", URL: "https://news.example.com"},
	}
	app := createTestApp(entries)

	// Drop folder fb onto the center of folder fa: reorder, not merge.
	app = mouse(t, app, tea.MouseActionPress, 32, 8)
	app = mouse(t, app, tea.MouseActionMotion, 18, 9)

	if app.Drag().Session.Intent != drag.IntentBefore {
		t.Fatalf("two folders should preview a reorder, got %v", app.Drag().Session.Intent)
	}

	app = mouse(t, app, tea.MouseActionRelease, 18, 9)
	assertOrder(t, app.Entries(), "fb", "fa", "x")
	if !app.Entries()[0].IsFolder() || !app.Entries()[1].IsFolder() {
		t.Error("both folders should survive as folders")
	}
	if err := model.Validate(app.Entries()); err != nil {
		t.Errorf("dial invalid: %v", err)
	}
}

func TestDrag_FolderOntoLinkStaysFlat(t *testing.T) {
	entries := []model.Entry{
		{ID: "fa", Kind: model.KindFolder, Title: "Work", Children: []model.Entry{
			{ID: "w1", Kind: model.KindLink, Title: "Mail", URL: "https://mail.example.com"},
		}},
		{ID: "x", Kind: model.KindLink, Title: "News", URL: "https://news.example.com"},
	}
	app := createTestApp(entries)

	// Two entries center as a two column grid starting at x=19.
	// Dropping a folder onto a link's center would nest it, so the
	// drop degrades and nothing moves.
	app = mouse(t, app, tea.MouseActionPress, 24, 8)
	app = mouse(t, app, tea.MouseActionMotion, 51, 9)
	app = mouse(t, app, tea.MouseActionRelease, 51, 9)

	assertOrder(t, app.Entries(), "fa", "x")
	if err := model.Validate(app.Entries()); err != nil {
		t.Errorf("dial invalid: %v", err)
	}
}

// Panel geometry at 80x24 for a folder with two children: the panel
// spans (16,7)-(63,16), child tiles sit at x=19 and x=41 on rows
// 10-14.

func openTestPanel(t *testing.T, app tui.App) tui.App {
	t.Helper()
	app = pressKey(t, app, "l")
	app = pressKey(t, app, "l")
	app = pressKey(t, app, "enter")
	if app.Mode() != tui.ModeFolder {
		t.Fatalf("expected ModeFolder, got %v", app.Mode())
	}
	return app
}

func TestDrag_PanelReorder(t *testing.T) {
	app := openTestPanel(t, createTestApp(testEntries()))

	app = mouse(t, app, tea.MouseActionPress, 20, 11)
	app = mouse(t, app, tea.MouseActionMotion, 55, 12) // right half of child 1

	if app.Drag().Session.Intent != drag.IntentAfter {
		t.Fatalf("expected after preview, got %v", app.Drag().Session.Intent)
	}

	app = mouse(t, app, tea.MouseActionRelease, 55, 12)

	folder := app.Entries()[2]
	if folder.Children[0].ID != "f2" || folder.Children[1].ID != "f1" {
		t.Errorf("expected children swapped, got %v", folder.Children)
	}
	if app.Mode() != tui.ModeFolder {
		t.Errorf("panel should stay open, got %v", app.Mode())
	}
}

func TestDrag_PanelDragOutExtracts(t *testing.T) {
	app := openTestPanel(t, createTestApp(testEntries()))

	app = mouse(t, app, tea.MouseActionPress, 20, 11)
	app = mouse(t, app, tea.MouseActionMotion, 5, 20)
	app = mouse(t, app, tea.MouseActionRelease, 5, 20)

	assertOrder(t, app.Entries(), "a", "b", "f", "c", "f1")
	folder := app.Entries()[2]
	if len(folder.Children) != 1 || folder.Children[0].ID != "f2" {
		t.Errorf("folder should keep only f2, got %v", folder.Children)
	}
}

func TestDrag_PanelClickOpensChild(t *testing.T) {
	var opened []string
	app := tui.NewApp(tui.AppParams{
		Entries: testEntries(),
		OpenURL: func(u string) error {
			opened = append(opened, u)
			return nil
		},
	}).WithDimensions(80, 24)
	app = openTestPanel(t, app)

	app = mouse(t, app, tea.MouseActionPress, 20, 11)
	app = mouse(t, app, tea.MouseActionRelease, 20, 11)

	if len(opened) != 1 || opened[0] != "https://tanstack.com" {
		t.Errorf("click should open the child, got %v", opened)
	}
}

func TestDrag_PanelClickOutsideCloses(t *testing.T) {
	app := openTestPanel(t, createTestApp(testEntries()))

	app = mouse(t, app, tea.MouseActionPress, 2, 2)

	if app.Mode() != tui.ModeNormal {
		t.Errorf("click outside the panel should close it, got %v", app.Mode())
	}
}

func TestDrag_DropIsDeterministic(t *testing.T) {
	// The same gesture from the same dial always lands the same way.
	for i := 0; i < 3; i++ {
		app := createTestApp(testEntries())
		app = mouse(t, app, tea.MouseActionPress, 10, 8)
		app = mouse(t, app, tea.MouseActionMotion, 40, 9)
		app = mouse(t, app, tea.MouseActionRelease, 40, 9)

		entries := app.Entries()
		if len(entries) != 3 || !entries[0].IsFolder() {
			t.Fatalf("run %d: expected a merge, got %v", i, entries)
		}
	}
}
