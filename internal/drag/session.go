package drag

import "github.com/nikbrunner/nt/internal/model"

// Session tracks one drag gesture from pickup to drop. It only ever
// describes the gesture; the dial is untouched until Drop commits.
type Session struct {
	DraggedID string // entry being dragged
	TargetID  string // candidate target under the pointer, "" when none
	Intent    Intent // live intent for TargetID, for the drop preview
}

// NewSession starts a drag gesture for the given entry.
func NewSession(draggedID string) Session {
	return Session{DraggedID: draggedID}
}

// Active reports whether a gesture is in flight.
func (s Session) Active() bool {
	return s.DraggedID != ""
}

// Observe records the pointer over a candidate target and refreshes the
// live intent backing the drop preview.
func (s *Session) Observe(dragged, target model.Entry, sample Sample, cfg Config) {
	s.TargetID = target.ID
	s.Intent = Classify(dragged, target, sample, cfg)
}

// Leave clears the candidate once the pointer exits its box.
func (s *Session) Leave() {
	s.TargetID = ""
	s.Intent = IntentNone
}

// Drop classifies the final pointer sample and commits the result. The
// preview intent is not trusted; the drop position decides.
func (s Session) Drop(entries []model.Entry, target model.Entry, sample Sample, cfg Config) []model.Entry {
	dragged, ok := model.FindByID(entries, s.DraggedID)
	if !ok {
		return entries
	}
	intent := Classify(dragged, target, sample, cfg)
	return Apply(entries, intent, s.DraggedID, target.ID)
}

// Reset ends the gesture. A cancelled drag is just a Reset without a
// Drop, so the dial never changes.
func (s *Session) Reset() {
	s.DraggedID = ""
	s.TargetID = ""
	s.Intent = IntentNone
}
