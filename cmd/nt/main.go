package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/nt/internal/checker"
	"github.com/nikbrunner/nt/internal/exporter"
	"github.com/nikbrunner/nt/internal/importer"
	"github.com/nikbrunner/nt/internal/model"
	"github.com/nikbrunner/nt/internal/picker"
	"github.com/nikbrunner/nt/internal/search"
	"github.com/nikbrunner/nt/internal/storage"
	"github.com/nikbrunner/nt/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "import":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: nt import <file.html>\n")
				os.Exit(1)
			}
			runImport(os.Args[2])
			return
		case "export":
			// Export with optional path
			var outputPath string
			if len(os.Args) >= 3 {
				outputPath = os.Args[2]
			}
			runExport(outputPath)
			return
		case "backup":
			var dir string
			if len(os.Args) >= 3 {
				dir = os.Args[2]
			}
			runBackup(dir)
			return
		case "restore":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: nt restore <file.json>\n")
				os.Exit(1)
			}
			runRestore(os.Args[2])
			return
		case "backups":
			var dir string
			if len(os.Args) >= 3 {
				dir = os.Args[2]
			}
			runListBackups(dir)
			return
		case "check":
			runCheck(os.Args[2:])
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickSearch(query)
			return
		}
	}

	// No args - run the full start page
	runTUI()
}

func printHelp() {
	help := `nt - terminal start page

Usage:
  nt                    Open the start page
  nt <query>            Quick search → select → open
  nt import <file>      Import links from bookmark HTML
  nt export [path]      Export the dial to bookmark HTML
  nt backup [dir]       Write a snapshot of dial and settings
  nt restore <file>     Restore a snapshot
  nt backups [dir]      List snapshots, newest first
  nt check [domain...]  Probe every link, report dead ones
  nt help               Show this help

Keybindings:
  Navigation:
    h/j/k/l     Move between tiles
    gg/G        First/last tile
    Enter       Open link / open folder

  Mouse:
    Click       Open the tile under the pointer
    Drag        Drop on a tile edge to reorder, on the center to merge
    Drag out    Pull a link out of an open folder

  Editing:
    a/A         Add link/folder
    e           Edit selected tile
    d           Delete
    H/L         Move tile left/right
    x           Move link out of folder
    u           Undo
    y           Copy URL

  Other:
    s or /      Search links
    c           Settings
    ?           Help overlay
    q           Quit

Data Storage:
  ~/.config/nt/dial.json
  ~/.config/nt/settings.json
`
	fmt.Print(help)
}

// runTUI runs the full interactive start page.
func runTUI() {
	settingsPath, err := storage.DefaultSettingsPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting settings path: %v\n", err)
		os.Exit(1)
	}
	settings, err := storage.LoadSettings(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}
	defer closeStorage(store)

	entries, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dial: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(tui.AppParams{
		Entries:  entries,
		Settings: settings,
		Store:    store,
		OpenURL:  openURL,
		SaveSettings: func(s storage.Settings) error {
			return storage.SaveSettings(settingsPath, &s)
		},
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// runQuickSearch performs a fuzzy search and opens the selected link.
func runQuickSearch(query string) {
	store, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}
	defer closeStorage(store)

	entries, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dial: %v\n", err)
		os.Exit(1)
	}

	results := search.FuzzySearchLinks(entries, query)
	if len(results) == 0 {
		fmt.Printf("No links found for '%s'\n", query)
		return
	}

	var link model.Entry
	if len(results) == 1 {
		// Single result - open it directly
		link = results[0].Hit.Link
		fmt.Printf("Opening: %s\n", link.Title)
	} else {
		// Multiple results - show picker
		p := picker.New(results, query)
		program := tea.NewProgram(p)
		finalModel, err := program.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			os.Exit(1)
		}

		finalPicker := finalModel.(picker.Picker)
		selected, ok := finalPicker.SelectedLink()
		if !ok {
			return
		}
		link = selected
	}

	if err := openURL(link.URL); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", link.URL, err)
		os.Exit(1)
	}
}

// runImport handles the import subcommand.
func runImport(filePath string) {
	store, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}
	defer closeStorage(store)

	entries, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dial: %v\n", err)
		os.Exit(1)
	}

	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	parsed, err := importer.ParseHTMLDial(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	merged, added, skipped := importer.Merge(entries, parsed)

	if err := store.Save(merged); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving dial: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d links", added)
	if skipped > 0 {
		fmt.Printf(" (%d duplicates skipped)", skipped)
	}
	fmt.Println()
}

// runExport handles the export subcommand.
func runExport(outputPath string) {
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting default export path: %v\n", err)
			os.Exit(1)
		}
	}

	store, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}
	defer closeStorage(store)

	entries, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dial: %v\n", err)
		os.Exit(1)
	}

	html := exporter.ExportHTML(entries)
	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d links to %s\n", countLinks(entries), outputPath)
}

// runBackup writes a snapshot of the dial and settings.
func runBackup(dir string) {
	if dir == "" {
		var err error
		dir, err = storage.DefaultBackupDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting backup dir: %v\n", err)
			os.Exit(1)
		}
	}

	store, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}
	defer closeStorage(store)

	entries, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dial: %v\n", err)
		os.Exit(1)
	}

	settingsPath, err := storage.DefaultSettingsPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting settings path: %v\n", err)
		os.Exit(1)
	}
	settings, err := storage.LoadSettings(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	path, err := storage.Backup(dir, entries, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing backup: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Backed up %d links to %s\n", countLinks(entries), path)
}

// runRestore loads a snapshot back into storage.
func runRestore(path string) {
	entries, settings, err := storage.Restore(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading snapshot: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}
	defer closeStorage(store)

	if err := store.Save(entries); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving dial: %v\n", err)
		os.Exit(1)
	}

	if settings != nil {
		settingsPath, err := storage.DefaultSettingsPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting settings path: %v\n", err)
			os.Exit(1)
		}
		if err := storage.SaveSettings(settingsPath, settings); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Restored %d links from %s\n", countLinks(entries), path)
}

// runCheck probes every link on the dial and reports the unhealthy
// ones. Extra args are domains whose 404s count as private, not dead.
func runCheck(excludeDomains []string) {
	store, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}
	defer closeStorage(store)

	entries, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dial: %v\n", err)
		os.Exit(1)
	}

	total := countLinks(entries)
	if total == 0 {
		fmt.Println("No links to check.")
		return
	}

	cfg := checker.DefaultConfig()
	cfg.ExcludeDomains = excludeDomains

	fmt.Printf("Checking %d links...\n", total)
	results := checker.CheckDial(entries, cfg, func(done, total int) {
		fmt.Printf("\r%d/%d", done, total)
	})
	fmt.Println()

	for _, r := range results {
		if r.Status == checker.Healthy {
			continue
		}

		label := "DEAD"
		if r.Status == checker.Unreachable {
			label = "UNREACHABLE"
		}
		title := r.Link.Title
		if r.Folder != "" {
			title += " (in " + r.Folder + ")"
		}

		fmt.Printf("  %-12s %s\n", label, title)
		fmt.Printf("               %s", r.Link.URL)
		if r.Detail != "" {
			fmt.Printf(" (%s)", r.Detail)
		} else if r.StatusCode != 0 {
			fmt.Printf(" (HTTP %d)", r.StatusCode)
		}
		fmt.Println()
	}

	healthy, dead, unreachable := checker.Summarize(results)
	fmt.Printf("%d healthy, %d dead, %d unreachable\n", healthy, dead, unreachable)
}

// runListBackups prints the snapshots in dir, newest first.
func runListBackups(dir string) {
	if dir == "" {
		var err error
		dir, err = storage.DefaultBackupDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting backup dir: %v\n", err)
			os.Exit(1)
		}
	}

	paths, err := storage.ListBackups(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing backups: %v\n", err)
		os.Exit(1)
	}

	if len(paths) == 0 {
		fmt.Println("No backups found.")
		return
	}
	for _, p := range paths {
		fmt.Println(p)
	}
}

// countLinks counts the links on the dial, folder children included.
func countLinks(entries []model.Entry) int {
	n := 0
	for _, e := range entries {
		if e.Kind == model.KindLink {
			n++
		}
		n += len(e.Children)
	}
	return n
}

// closeStorage closes storage backends that hold a connection.
func closeStorage(store storage.Storage) {
	if closer, ok := store.(io.Closer); ok {
		_ = closer.Close()
	}
}

// openURL opens a URL in the default browser.
func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
