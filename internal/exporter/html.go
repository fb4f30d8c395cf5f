package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/nt/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/nt-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("nt-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML exports the dial to Netscape bookmark HTML format.
// Entries carry no timestamps, so ADD_DATE is left out.
func ExportHTML(entries []model.Entry) string {
	var b strings.Builder

	// Header
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	for _, e := range entries {
		if e.Kind == model.KindFolder {
			fmt.Fprintf(&b, "    <DT><H3>%s</H3>\n", html.EscapeString(e.Title))
			b.WriteString("    <DL><p>\n")
			for _, c := range e.Children {
				writeLink(&b, c, 2)
			}
			b.WriteString("    </DL><p>\n")
			continue
		}
		writeLink(&b, e, 1)
	}

	// Footer
	b.WriteString("</DL><p>\n")

	return b.String()
}

// writeLink writes one bookmark line at the given indent level.
func writeLink(b *strings.Builder, link model.Entry, indent int) {
	prefix := strings.Repeat("    ", indent)
	fmt.Fprintf(b,
		"%s<DT><A HREF=\"%s\">%s</A>\n",
		prefix,
		html.EscapeString(link.URL),
		html.EscapeString(link.Title),
	)
}
