package model

// Kind discriminates the two entry variants on the dial.
type Kind string

const (
	KindLink   Kind = "link"
	KindFolder Kind = "folder"
)

// DefaultFolderTitle names folders synthesized by a merge.
const DefaultFolderTitle = "New Folder"

// Entry is one tile on the dial: a link, or a folder of links.
// Folders hold links only; a folder never appears in Children.
type Entry struct {
	ID       string  `json:"id"`
	Kind     Kind    `json:"type"`
	Title    string  `json:"title"`
	URL      string  `json:"url,omitempty"`      // links only
	Icon     string  `json:"icon,omitempty"`     // optional glyph override
	Children []Entry `json:"children,omitempty"` // folders only
}

// IsFolder reports whether the entry is a folder.
func (e Entry) IsFolder() bool {
	return e.Kind == KindFolder
}

// NewLinkParams holds parameters for creating a new link entry.
type NewLinkParams struct {
	Title string
	URL   string
	Icon  string
}

// NewLink creates a link Entry with a generated UUID.
func NewLink(params NewLinkParams) Entry {
	return Entry{
		ID:    newID(),
		Kind:  KindLink,
		Title: params.Title,
		URL:   params.URL,
		Icon:  params.Icon,
	}
}

// NewFolderParams holds parameters for creating a new folder entry.
type NewFolderParams struct {
	Title    string
	Icon     string
	Children []Entry
}

// NewFolder creates a folder Entry with a generated UUID.
func NewFolder(params NewFolderParams) Entry {
	children := params.Children
	if children == nil {
		children = []Entry{}
	}

	return Entry{
		ID:       newID(),
		Kind:     KindFolder,
		Title:    params.Title,
		Icon:     params.Icon,
		Children: children,
	}
}
