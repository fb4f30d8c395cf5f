package drag

import "github.com/nikbrunner/nt/internal/model"

// Intent is the resolved meaning of a pointer position over a target.
type Intent int

const (
	IntentNone Intent = iota
	IntentBefore
	IntentAfter
	IntentMerge
)

// String returns the intent name for hints and debugging.
func (i Intent) String() string {
	switch i {
	case IntentBefore:
		return "reorder-before"
	case IntentAfter:
		return "reorder-after"
	case IntentMerge:
		return "merge"
	default:
		return "none"
	}
}

// Sample is one pointer reading over a candidate drop target: the
// pointer offset relative to the target's top left corner, plus the
// rendered size of the target's box, all in terminal cells.
type Sample struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Config holds the merge zone bounds.
type Config struct {
	// MergeZoneLow is the lower bound of the central merge region,
	// as a percentage of the target box on each axis.
	MergeZoneLow int

	// MergeZoneHigh is the upper bound of the central merge region.
	MergeZoneHigh int
}

// DefaultConfig returns the standard merge zone: the central half of
// the target box on both axes (25% to 75%).
func DefaultConfig() Config {
	return Config{
		MergeZoneLow:  25,
		MergeZoneHigh: 75,
	}
}

// Classify resolves a pointer sample over a target into an intent.
// Dropping an entry onto itself means nothing. Inside the central merge
// zone the intent is merge, unless both entries are folders. Everywhere
// else the target's left half means before, its right half after.
// Same inputs always classify the same way.
func Classify(dragged, target model.Entry, s Sample, cfg Config) Intent {
	if dragged.ID == target.ID {
		return IntentNone
	}
	if s.Width <= 0 || s.Height <= 0 {
		return IntentBefore
	}
	if inMergeZone(s, cfg) && canMerge(dragged, target) {
		return IntentMerge
	}
	return ClassifyReorder(s)
}

// ClassifyReorder resolves a sample into before or after by the half of
// the target box the pointer is in. Used directly where merging is
// structurally impossible, such as inside an open folder.
func ClassifyReorder(s Sample) Intent {
	if s.Width <= 0 || s.Height <= 0 {
		return IntentBefore
	}
	if s.X*2 > s.Width {
		return IntentAfter
	}
	return IntentBefore
}

// inMergeZone reports whether the pointer sits strictly inside the
// central merge region on both axes. The bounds are strict: a pointer
// exactly on the zone edge reorders. Scaling by 100 keeps the
// percentage comparison in integers.
func inMergeZone(s Sample, cfg Config) bool {
	return s.X*100 > s.Width*cfg.MergeZoneLow &&
		s.X*100 < s.Width*cfg.MergeZoneHigh &&
		s.Y*100 > s.Height*cfg.MergeZoneLow &&
		s.Y*100 < s.Height*cfg.MergeZoneHigh
}

// canMerge reports whether dropping dragged onto target may merge them.
// Two folders never merge.
func canMerge(dragged, target model.Entry) bool {
	return !(dragged.IsFolder() && target.IsFolder())
}

// Apply commits a resolved intent against the dial. IntentNone, like
// every degraded case below it, leaves the list unchanged.
func Apply(entries []model.Entry, intent Intent, draggedID, targetID string) []model.Entry {
	switch intent {
	case IntentBefore:
		return model.MoveBefore(entries, draggedID, targetID)
	case IntentAfter:
		return model.MoveAfter(entries, draggedID, targetID)
	case IntentMerge:
		return model.MergeIntoFolder(entries, draggedID, targetID)
	default:
		return entries
	}
}
