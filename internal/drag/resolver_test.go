package drag_test

import (
	"testing"

	"github.com/nikbrunner/nt/internal/drag"
	"github.com/nikbrunner/nt/internal/model"
)

func link(id string) model.Entry {
	return model.Entry{ID: id, Kind: model.KindLink, Title: id, URL: "https://example.com/" + id}
}

func folder(id string, children ...model.Entry) model.Entry {
	return model.Entry{ID: id, Kind: model.KindFolder, Title: id, Children: children}
}

func TestClassify(t *testing.T) {
	cfg := drag.DefaultConfig()
	a, b := link("a"), link("b")
	f, g := folder("f"), folder("g")

	tests := []struct {
		name    string
		dragged model.Entry
		target  model.Entry
		sample  drag.Sample
		want    drag.Intent
	}{
		// 100x100 box, merge zone is 25..75 exclusive on both axes.
		{"dead center", a, b, drag.Sample{X: 50, Y: 50, Width: 100, Height: 100}, drag.IntentMerge},
		{"zone corner inside", a, b, drag.Sample{X: 26, Y: 26, Width: 100, Height: 100}, drag.IntentMerge},
		{"left of zone", a, b, drag.Sample{X: 24, Y: 50, Width: 100, Height: 100}, drag.IntentBefore},
		{"far left", a, b, drag.Sample{X: 10, Y: 50, Width: 100, Height: 100}, drag.IntentBefore},
		{"far right", a, b, drag.Sample{X: 90, Y: 50, Width: 100, Height: 100}, drag.IntentAfter},
		{"on lower zone edge", a, b, drag.Sample{X: 25, Y: 50, Width: 100, Height: 100}, drag.IntentBefore}, // strict: 25 is outside
		{"on upper zone edge", a, b, drag.Sample{X: 75, Y: 50, Width: 100, Height: 100}, drag.IntentAfter},  // strict: 75 is outside
		{"centered but high", a, b, drag.Sample{X: 50, Y: 10, Width: 100, Height: 100}, drag.IntentBefore},  // x on the midline falls left
		{"centered but low", a, b, drag.Sample{X: 51, Y: 95, Width: 100, Height: 100}, drag.IntentAfter},
		{"small box center", a, b, drag.Sample{X: 10, Y: 2, Width: 20, Height: 5}, drag.IntentMerge}, // 10/20 and 2/5 both inside 25..75
		{"folder onto folder center", f, g, drag.Sample{X: 50, Y: 50, Width: 100, Height: 100}, drag.IntentBefore},
		{"folder onto folder right", f, g, drag.Sample{X: 90, Y: 50, Width: 100, Height: 100}, drag.IntentAfter},
		{"link onto folder center", a, f, drag.Sample{X: 50, Y: 50, Width: 100, Height: 100}, drag.IntentMerge},
		{"folder onto link center", f, a, drag.Sample{X: 50, Y: 50, Width: 100, Height: 100}, drag.IntentMerge},
		{"dragged is target", a, a, drag.Sample{X: 50, Y: 50, Width: 100, Height: 100}, drag.IntentNone},
		{"zero size box", a, b, drag.Sample{X: 0, Y: 0, Width: 0, Height: 0}, drag.IntentBefore},
		{"negative size box", a, b, drag.Sample{X: 5, Y: 5, Width: -1, Height: -1}, drag.IntentBefore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drag.Classify(tt.dragged, tt.target, tt.sample, cfg)
			if got != tt.want {
				t.Errorf("Classify(%+v) = %v, want %v", tt.sample, got, tt.want)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	cfg := drag.DefaultConfig()
	a, b := link("a"), link("b")
	sample := drag.Sample{X: 40, Y: 40, Width: 100, Height: 100}

	first := drag.Classify(a, b, sample, cfg)
	for i := 0; i < 3; i++ {
		if got := drag.Classify(a, b, sample, cfg); got != first {
			t.Fatalf("classification drifted on repeat %d: %v then %v", i, first, got)
		}
	}
}

func TestClassifyReorder(t *testing.T) {
	tests := []struct {
		name   string
		sample drag.Sample
		want   drag.Intent
	}{
		{"left half", drag.Sample{X: 3, Y: 2, Width: 20, Height: 5}, drag.IntentBefore},
		{"right half", drag.Sample{X: 15, Y: 2, Width: 20, Height: 5}, drag.IntentAfter},
		{"exact midline", drag.Sample{X: 10, Y: 2, Width: 20, Height: 5}, drag.IntentBefore}, // 10*2 = 20, not greater
		{"zero size box", drag.Sample{}, drag.IntentBefore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drag.ClassifyReorder(tt.sample)
			if got != tt.want {
				t.Errorf("ClassifyReorder(%+v) = %v, want %v", tt.sample, got, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	dial := func() []model.Entry {
		return []model.Entry{link("a"), link("b"), link("c")}
	}

	tests := []struct {
		name   string
		intent drag.Intent
		want   []string
	}{
		{"before", drag.IntentBefore, []string{"c", "a", "b"}},
		{"after", drag.IntentAfter, []string{"a", "c", "b"}},
		{"none", drag.IntentNone, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drag.Apply(dial(), tt.intent, "c", "a")
			if len(got) != len(tt.want) {
				t.Fatalf("length mismatch: got %d, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("index %d: got %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}

	t.Run("merge", func(t *testing.T) {
		got := drag.Apply(dial(), drag.IntentMerge, "c", "a")
		if len(got) != 2 {
			t.Fatalf("expected 2 entries after merge, got %d", len(got))
		}
		if got[0].Kind != model.KindFolder || len(got[0].Children) != 2 {
			t.Errorf("merge did not fold a and c: %+v", got[0])
		}
	})
}

func TestSession(t *testing.T) {
	cfg := drag.DefaultConfig()
	entries := []model.Entry{link("a"), link("b")}

	s := drag.NewSession("a")
	if !s.Active() {
		t.Fatal("fresh session not active")
	}

	s.Observe(entries[0], entries[1], drag.Sample{X: 50, Y: 50, Width: 100, Height: 100}, cfg)
	if s.TargetID != "b" || s.Intent != drag.IntentMerge {
		t.Errorf("observe: target %q intent %v, want b merge", s.TargetID, s.Intent)
	}

	// Drifting to the right edge downgrades the preview to reorder.
	s.Observe(entries[0], entries[1], drag.Sample{X: 95, Y: 50, Width: 100, Height: 100}, cfg)
	if s.Intent != drag.IntentAfter {
		t.Errorf("observe after drift: intent %v, want %v", s.Intent, drag.IntentAfter)
	}

	s.Leave()
	if s.TargetID != "" || s.Intent != drag.IntentNone {
		t.Errorf("leave left residue: target %q intent %v", s.TargetID, s.Intent)
	}

	s.Reset()
	if s.Active() {
		t.Error("session active after reset")
	}
}

func TestSession_Drop(t *testing.T) {
	cfg := drag.DefaultConfig()
	entries := []model.Entry{link("a"), link("b")}

	s := drag.NewSession("a")
	got := s.Drop(entries, entries[1], drag.Sample{X: 50, Y: 50, Width: 100, Height: 100}, cfg)

	if len(got) != 1 || got[0].Kind != model.KindFolder {
		t.Fatalf("center drop did not merge: %+v", got)
	}
	if len(entries) != 2 {
		t.Errorf("input mutated by drop: %d entries", len(entries))
	}
}

func TestSession_CancelLeavesDialAlone(t *testing.T) {
	entries := []model.Entry{link("a"), link("b"), link("c")}

	s := drag.NewSession("a")
	s.Observe(entries[0], entries[2], drag.Sample{X: 50, Y: 50, Width: 100, Height: 100}, drag.DefaultConfig())
	s.Reset()

	if s.Active() {
		t.Fatal("session survived cancel")
	}
	for i, id := range []string{"a", "b", "c"} {
		if entries[i].ID != id {
			t.Errorf("dial changed by cancelled drag at %d: %q", i, entries[i].ID)
		}
	}
}

func TestSession_DropUnknownDragged(t *testing.T) {
	entries := []model.Entry{link("a"), link("b")}

	s := drag.NewSession("ghost")
	got := s.Drop(entries, entries[1], drag.Sample{X: 50, Y: 50, Width: 100, Height: 100}, drag.DefaultConfig())

	if len(got) != 2 || got[0].ID != "a" {
		t.Errorf("expected no-op for unknown dragged id, got %d entries", len(got))
	}
}
