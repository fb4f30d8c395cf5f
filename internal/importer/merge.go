package importer

import "github.com/nikbrunner/nt/internal/model"

// Merge appends parsed entries to the dial, skipping links whose URL
// is already present anywhere on it. A folder whose links all turn out
// to be duplicates is dropped entirely. Returns the merged dial, the
// number of links added and the number skipped.
func Merge(entries, parsed []model.Entry) ([]model.Entry, int, int) {
	seen := make(map[string]bool)
	for _, e := range entries {
		if e.URL != "" {
			seen[e.URL] = true
		}
		for _, c := range e.Children {
			seen[c.URL] = true
		}
	}

	added, skipped := 0, 0
	for _, p := range parsed {
		if p.Kind == model.KindLink {
			if seen[p.URL] {
				skipped++
				continue
			}
			seen[p.URL] = true
			entries = model.AppendToTopLevel(entries, p)
			added++
			continue
		}

		kept := make([]model.Entry, 0, len(p.Children))
		for _, c := range p.Children {
			if seen[c.URL] {
				skipped++
				continue
			}
			seen[c.URL] = true
			kept = append(kept, c)
		}
		if len(kept) == 0 {
			continue
		}
		p.Children = kept
		entries = model.AppendToTopLevel(entries, p)
		added += len(kept)
	}

	return entries, added, skipped
}
