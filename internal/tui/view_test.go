package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/nt/internal/model"
	"github.com/nikbrunner/nt/internal/tui"
	"github.com/nikbrunner/nt/internal/tui/layout"
)

func render(app tui.App) string {
	return layout.StripANSI(app.View())
}

func assertContains(t *testing.T, view string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q\n%s", want, view)
		}
	}
}

func TestView_Dial(t *testing.T) {
	app := createTestApp(testEntries())
	view := render(app)

	assertContains(t, view,
		"GitHub", "Go Docs", "Development", "Hacker News",
		"2 links",    // folder subtitle
		"github.com", // link subtitle is the host
		"drag:arrange", "?:help", "q:quit",
	)

	lines := strings.Split(view, "\n")
	if len(lines) != 23 {
		t.Fatalf("expected 23 canvas lines at height 24, got %d", len(lines))
	}
	// First tile row starts at the computed origin (8,7).
	if !strings.HasPrefix(lines[7], "        ┏") {
		t.Errorf("expected tile border at (8,7), got %q", lines[7])
	}
}

func TestView_EmptyDial(t *testing.T) {
	app := createTestApp(nil)
	assertContains(t, render(app), "Empty dial. Press a to add a link, A to add a folder.")
}

func TestView_StatusLine(t *testing.T) {
	var opened []string
	app := tui.NewApp(tui.AppParams{
		Entries: testEntries(),
		OpenURL: func(u string) error {
			opened = append(opened, u)
			return nil
		},
	}).WithDimensions(80, 24)

	app = pressKey(t, app, "enter")
	assertContains(t, render(app), "Opened GitHub")
}

func TestView_FolderPanel(t *testing.T) {
	app := openTestPanel(t, createTestApp(testEntries()))
	view := render(app)

	assertContains(t, view,
		"Development (2)",
		"TanStack", "Hono",
		"tanstack.com", "hono.dev",
		"x:move out", "Esc:close",
	)

	// The panel box starts at the computed origin (16,7).
	lines := strings.Split(view, "\n")
	if !strings.HasPrefix(lines[7], strings.Repeat(" ", 16)+"┏") {
		t.Errorf("expected panel border at (16,7), got %q", lines[7])
	}
}

func TestView_EmptyFolderPanel(t *testing.T) {
	entries := []model.Entry{
		{ID: "arc", Kind: model.KindFolder, Title: "Archive"},
	}
	app := createTestApp(entries)
	app = pressKey(t, app, "enter")
	if app.Mode() != tui.ModeFolder {
		t.Fatalf("expected ModeFolder, got %v", app.Mode())
	}
	assertContains(t, render(app), "Archive (0)", "Empty folder.")
}

func TestView_MergePreview(t *testing.T) {
	app := createTestApp(testEntries())
	if strings.Contains(render(app), "╔") {
		t.Fatal("no double border expected before a drag")
	}

	app = mouse(t, app, tea.MouseActionPress, 10, 8)
	app = mouse(t, app, tea.MouseActionMotion, 40, 9)

	// The merge target swaps to a double border while hovered.
	assertContains(t, render(app), "╔", "╚")
}

func TestView_ReorderPreviewShowsInsertMark(t *testing.T) {
	app := createTestApp(testEntries())
	if strings.Contains(render(app), "▌") {
		t.Fatal("no insert mark expected before a drag")
	}

	app = mouse(t, app, tea.MouseActionPress, 10, 8)
	app = mouse(t, app, tea.MouseActionMotion, 46, 11) // right edge of tile 1

	view := render(app)
	assertContains(t, view, "▌")

	// After-intent on tile 1 draws the mark in the gap at x=50.
	row := []rune(strings.Split(view, "\n")[7])
	if len(row) <= 50 || row[50] != '▌' {
		t.Errorf("expected insert mark at column 50, got %q", string(row))
	}
}

func TestView_SearchView(t *testing.T) {
	app := createTestApp(testEntries())
	app = pressKey(t, app, "s")

	view := render(app)
	assertContains(t, view,
		"Search",
		"GitHub", "Go Docs", "Hacker News",
		"TanStack", "in Development",
		"Esc:cancel",
	)

	app = typeString(t, app, "zzqq")
	assertContains(t, render(app), "No matches. Enter searches the web.")
}

func TestView_AddLinkForm(t *testing.T) {
	app := createTestApp(testEntries())
	app = pressKey(t, app, "a")

	assertContains(t, render(app),
		"Add Link", "Title", "URL", "Icon",
		"Enter save", "Esc cancel",
	)
}

func TestView_EditFolderFormHasNoURLField(t *testing.T) {
	app := createTestApp(testEntries())
	app = pressKey(t, app, "l")
	app = pressKey(t, app, "l")
	app = pressKey(t, app, "e")

	view := render(app)
	assertContains(t, view, "Edit Folder", "Title", "Icon")
	if strings.Contains(view, "URL") {
		t.Error("folder form should not show a URL field")
	}
}

func TestView_ConfirmDelete(t *testing.T) {
	app := createTestApp(testEntries())
	app = pressKey(t, app, "l")
	app = pressKey(t, app, "l")
	app = pressKey(t, app, "d")

	assertContains(t, render(app),
		"Delete", "Development",
		"2 links inside will be deleted too",
		"y/Enter delete", "n/Esc cancel",
	)
}

func TestView_Settings(t *testing.T) {
	app := createTestApp(testEntries())
	app = pressKey(t, app, "c")

	assertContains(t, render(app),
		"Settings",
		"Theme", "teal",
		"Columns", "auto",
		"Clock", "24h",
		"Top offset   1",
		"Search URL", "duckduckgo",
	)
}

func TestView_Help(t *testing.T) {
	app := createTestApp(testEntries())
	app = pressKey(t, app, "?")

	assertContains(t, render(app),
		"Help",
		"Navigate", "Arrange",
		"move to top level",
		"Drag a tile onto another tile: the edges reorder, the center merges.",
	)
}
