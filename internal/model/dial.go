package model

import "fmt"

// IndexOf returns the top level position of id, or -1 if not present.
func IndexOf(entries []Entry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}

// FindByID finds an entry by ID at the top level or inside a folder.
func FindByID(entries []Entry, id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
		for _, c := range e.Children {
			if c.ID == id {
				return c, true
			}
		}
	}
	return Entry{}, false
}

// IDSet collects every id on the dial, folder children included.
func IDSet(entries []Entry) map[string]bool {
	ids := make(map[string]bool)
	for _, e := range entries {
		ids[e.ID] = true
		for _, c := range e.Children {
			ids[c.ID] = true
		}
	}
	return ids
}

// MoveBefore reorders the dial so the entry draggedID sits immediately
// before targetID. Both ids must name distinct top level entries; any
// other input returns the list unchanged.
func MoveBefore(entries []Entry, draggedID, targetID string) []Entry {
	return moveRelative(entries, draggedID, targetID, false)
}

// MoveAfter reorders the dial so the entry draggedID sits immediately
// after targetID. Both ids must name distinct top level entries; any
// other input returns the list unchanged.
func MoveAfter(entries []Entry, draggedID, targetID string) []Entry {
	return moveRelative(entries, draggedID, targetID, true)
}

// moveRelative removes the dragged entry, re-finds the target in the
// shortened list and splices the dragged entry back in next to it.
func moveRelative(entries []Entry, draggedID, targetID string, after bool) []Entry {
	if draggedID == targetID {
		return entries
	}
	from := IndexOf(entries, draggedID)
	if from == -1 || IndexOf(entries, targetID) == -1 {
		return entries
	}
	dragged := entries[from]

	rest := make([]Entry, 0, len(entries)-1)
	rest = append(rest, entries[:from]...)
	rest = append(rest, entries[from+1:]...)

	at := IndexOf(rest, targetID)
	if after {
		at++
	}

	out := make([]Entry, 0, len(entries))
	out = append(out, rest[:at]...)
	out = append(out, dragged)
	out = append(out, rest[at:]...)
	return out
}

// MergeIntoFolder drops the entry draggedID onto targetID. A folder
// target absorbs the dragged link at the end of its children. A link
// target is replaced, at its position, by a synthesized folder holding
// [target, dragged]. Folders never nest: when the dragged entry is a
// folder the list is returned unchanged, as it is when either id is
// missing from the top level or the ids are equal.
func MergeIntoFolder(entries []Entry, draggedID, targetID string) []Entry {
	if draggedID == targetID {
		return entries
	}
	from := IndexOf(entries, draggedID)
	if from == -1 || IndexOf(entries, targetID) == -1 {
		return entries
	}
	dragged := entries[from]
	if dragged.Kind == KindFolder {
		return entries
	}

	out := make([]Entry, 0, len(entries)-1)
	for i, e := range entries {
		if i == from {
			continue
		}
		if e.ID == targetID {
			e = absorb(e, dragged, entries)
		}
		out = append(out, e)
	}
	return out
}

// absorb returns the entry that takes the target's position after a
// merge: the target folder with the dragged link appended, or a fresh
// folder wrapping [target, dragged] when the target is a link.
func absorb(target, dragged Entry, entries []Entry) Entry {
	if target.Kind == KindFolder {
		children := make([]Entry, 0, len(target.Children)+1)
		children = append(children, target.Children...)
		children = append(children, dragged)
		target.Children = children
		return target
	}

	folder := NewFolder(NewFolderParams{
		Title:    DefaultFolderTitle,
		Children: []Entry{target, dragged},
	})
	taken := IDSet(entries)
	for taken[folder.ID] {
		folder.ID = newID()
	}
	return folder
}

// RemoveFromFolder deletes the child childID from the folder folderID.
// The folder stays on the dial even when the removal empties it. Unknown
// ids, or a folderID naming a link, return the list unchanged.
func RemoveFromFolder(entries []Entry, folderID, childID string) []Entry {
	at := IndexOf(entries, folderID)
	if at == -1 || entries[at].Kind != KindFolder {
		return entries
	}
	folder := entries[at]
	child := -1
	for i := range folder.Children {
		if folder.Children[i].ID == childID {
			child = i
			break
		}
	}
	if child == -1 {
		return entries
	}

	children := make([]Entry, 0, len(folder.Children)-1)
	children = append(children, folder.Children[:child]...)
	children = append(children, folder.Children[child+1:]...)
	folder.Children = children

	out := append([]Entry{}, entries...)
	out[at] = folder
	return out
}

// AppendToTopLevel adds an entry to the end of the dial. Used when a
// child is pulled out of a folder. Ids stay unique: an entry whose id is
// already taken anywhere on the dial is not added again.
func AppendToTopLevel(entries []Entry, entry Entry) []Entry {
	if entry.ID == "" || IDSet(entries)[entry.ID] {
		return entries
	}
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, entries...)
	out = append(out, entry)
	return out
}

// AppendChild adds a link to the end of the folder folderID's children.
// Nothing changes when the folder is missing, the child is itself a
// folder, or the child's id is already taken.
func AppendChild(entries []Entry, folderID string, child Entry) []Entry {
	at := IndexOf(entries, folderID)
	if at == -1 || entries[at].Kind != KindFolder {
		return entries
	}
	if child.ID == "" || child.Kind == KindFolder || IDSet(entries)[child.ID] {
		return entries
	}

	folder := entries[at]
	children := make([]Entry, 0, len(folder.Children)+1)
	children = append(children, folder.Children...)
	children = append(children, child)
	folder.Children = children

	out := append([]Entry{}, entries...)
	out[at] = folder
	return out
}

// Replace swaps the entry matching updated.ID for updated, wherever it
// lives, keeping its position. The list is unchanged when the id is
// unknown or when the replacement would nest a folder inside a folder.
func Replace(entries []Entry, updated Entry) []Entry {
	for i, e := range entries {
		if e.ID == updated.ID {
			out := append([]Entry{}, entries...)
			out[i] = updated
			return out
		}
		for j := range e.Children {
			if e.Children[j].ID != updated.ID {
				continue
			}
			if updated.Kind == KindFolder {
				return entries
			}
			children := append([]Entry{}, e.Children...)
			children[j] = updated
			e.Children = children
			out := append([]Entry{}, entries...)
			out[i] = e
			return out
		}
	}
	return entries
}

// Remove deletes the entry with the given id from the top level (a
// folder goes with its children) or from inside a folder.
func Remove(entries []Entry, id string) []Entry {
	for i, e := range entries {
		if e.ID == id {
			out := make([]Entry, 0, len(entries)-1)
			out = append(out, entries[:i]...)
			out = append(out, entries[i+1:]...)
			return out
		}
		for j := range e.Children {
			if e.Children[j].ID != id {
				continue
			}
			children := make([]Entry, 0, len(e.Children)-1)
			children = append(children, e.Children[:j]...)
			children = append(children, e.Children[j+1:]...)
			e.Children = children
			out := append([]Entry{}, entries...)
			out[i] = e
			return out
		}
	}
	return entries
}

// Validate checks the dial invariants: ids unique and non empty, links
// carry URLs, folder children hold links only, nesting one level deep.
func Validate(entries []Entry) error {
	seen := make(map[string]bool)
	for _, e := range entries {
		if err := validateEntry(e, seen); err != nil {
			return err
		}
		if e.Kind == KindLink && len(e.Children) > 0 {
			return fmt.Errorf("link %q has children", e.ID)
		}
		for _, c := range e.Children {
			if c.Kind == KindFolder {
				return fmt.Errorf("folder %q nests folder %q", e.ID, c.ID)
			}
			if err := validateEntry(c, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateEntry checks one entry and records its id.
func validateEntry(e Entry, seen map[string]bool) error {
	if e.ID == "" {
		return fmt.Errorf("entry %q has no id", e.Title)
	}
	if seen[e.ID] {
		return fmt.Errorf("duplicate entry id %q", e.ID)
	}
	seen[e.ID] = true

	switch e.Kind {
	case KindLink:
		if e.URL == "" {
			return fmt.Errorf("link %q has no url", e.ID)
		}
	case KindFolder:
	default:
		return fmt.Errorf("entry %q has unknown kind %q", e.ID, e.Kind)
	}
	return nil
}
