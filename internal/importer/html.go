package importer

import (
	"io"
	"strings"

	"github.com/nikbrunner/nt/internal/model"
	"golang.org/x/net/html"
)

// ParseHTMLDial parses Netscape bookmark HTML into dial entries.
// Browser exports nest folders arbitrarily deep; the dial holds one
// level, so every folder surfaces at the top and each link attaches to
// its nearest enclosing folder. A URL imports only once.
func ParseHTMLDial(r io.Reader) ([]model.Entry, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	entries := []model.Entry{}
	seen := make(map[string]bool)

	// Track enclosing folders as indices into entries
	var folderStack []int
	pending := -1 // folder waiting to be pushed on next DL

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				// Folder definition - get title from text content
				title := getTextContent(n)
				if title != "" {
					folder := model.NewFolder(model.NewFolderParams{Title: title})
					entries = append(entries, folder)
					pending = len(entries) - 1
				}
				return // Don't recurse into H3

			case "a":
				// Link definition
				href := getAttr(n, "href")
				if href == "" || seen[href] {
					return
				}
				seen[href] = true

				title := getTextContent(n)
				if title == "" {
					title = href // fallback to URL as title
				}

				link := model.NewLink(model.NewLinkParams{
					Title: title,
					URL:   href,
				})
				if len(folderStack) > 0 {
					at := folderStack[len(folderStack)-1]
					entries[at].Children = append(entries[at].Children, link)
				} else {
					entries = append(entries, link)
				}
				return // Don't recurse into A

			case "dl":
				// Definition list - marks folder contents
				// If we have a pending folder, push it now
				pushed := false
				if pending != -1 {
					folderStack = append(folderStack, pending)
					pending = -1
					pushed = true
				}

				// Process children
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				// Pop if we pushed
				if pushed {
					folderStack = folderStack[:len(folderStack)-1]
				}
				return // Don't recurse further, we handled children
			}
		}

		// Recurse into children
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return entries, nil
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
