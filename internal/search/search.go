package search

import (
	"github.com/nikbrunner/nt/internal/model"
	"github.com/sahilm/fuzzy"
)

// Hit is one searchable link: a top level link or a folder child.
type Hit struct {
	Link   model.Entry
	Folder string // title of the containing folder, "" at top level
}

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Hit            Hit
	MatchedIndexes []int
	Score          int
}

// hitTitles implements fuzzy.Source over the flattened links.
type hitTitles []Hit

func (h hitTitles) String(i int) string {
	return h[i].Link.Title
}

func (h hitTitles) Len() int {
	return len(h)
}

// Flatten collects every link on the dial in display order, folder
// children tucked in behind their folder.
func Flatten(entries []model.Entry) []Hit {
	var hits []Hit
	for _, e := range entries {
		if e.Kind == model.KindFolder {
			for _, c := range e.Children {
				hits = append(hits, Hit{Link: c, Folder: e.Title})
			}
			continue
		}
		hits = append(hits, Hit{Link: e})
	}
	return hits
}

// FuzzySearchLinks searches all links by title using fuzzy matching.
// Returns results sorted by match score (best first). An empty query
// returns every link in dial order, so the launcher has something to
// show before the first keystroke.
func FuzzySearchLinks(entries []model.Entry, query string) []SearchResult {
	hits := hitTitles(Flatten(entries))

	if query == "" {
		results := make([]SearchResult, len(hits))
		for i, h := range hits {
			results[i] = SearchResult{Hit: h}
		}
		return results
	}

	matches := fuzzy.FindFrom(query, hits)

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Hit:            hits[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}
