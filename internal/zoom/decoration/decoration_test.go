package decoration

import (
	"testing"

	"github.com/dshills/zoomfold/internal/engine/buffer"
	"github.com/dshills/zoomfold/internal/engine/tracking"
)

func TestSetAddKeepsOrder(t *testing.T) {
	s := NewSet(
		NewHidden(buffer.NewRange(40, 60)),
		NewHeader(buffer.NewRange(0, 19), "notes.md > Title"),
	)

	markers := s.Markers()
	if len(markers) != 2 {
		t.Fatalf("Len() = %d, want 2", len(markers))
	}
	if markers[0].Kind != KindHeader || markers[0].Range.Start != 0 {
		t.Errorf("first marker = %v, want header at 0", markers[0])
	}
	if markers[1].Range.Start != 40 {
		t.Errorf("second marker = %v, want start 40", markers[1])
	}
}

func TestSetAddDoesNotMutateReceiver(t *testing.T) {
	s := NewSet(NewHidden(buffer.NewRange(10, 20)))
	_ = s.Add(NewHidden(buffer.NewRange(30, 40)))

	if s.Len() != 1 {
		t.Errorf("Add mutated the receiver: Len() = %d, want 1", s.Len())
	}
}

func TestSetHeader(t *testing.T) {
	s := NewSet(NewHidden(buffer.NewRange(40, 60)))

	if _, ok := s.Header(); ok {
		t.Error("Header() found a header in a hidden-only set")
	}

	s = s.Add(NewHeader(buffer.NewRange(0, 19), "label"))
	h, ok := s.Header()
	if !ok {
		t.Fatal("Header() not found after adding one")
	}
	if h.Label != "label" {
		t.Errorf("Label = %q, want %q", h.Label, "label")
	}
}

func TestSetRemove(t *testing.T) {
	s := NewSet(
		NewHeader(buffer.NewRange(0, 19), "label"),
		NewHidden(buffer.NewRange(40, 60)),
	)

	s = s.Remove(func(m Marker) bool { return m.Kind == KindHeader })

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if _, ok := s.Header(); ok {
		t.Error("header should have been removed")
	}
}

func TestSetRemoveInRange(t *testing.T) {
	s := NewSet(
		NewHeader(buffer.NewRange(0, 19), "label"),
		NewHidden(buffer.NewRange(41, 60)),
	)

	// Partial cover removes nothing.
	if got := s.RemoveInRange(buffer.NewRange(0, 50)).Len(); got != 1 {
		t.Errorf("RemoveInRange partial: Len() = %d, want 1", got)
	}

	// Whole-document cover removes everything, regardless of kind.
	if got := s.RemoveInRange(buffer.NewRange(0, 60)).Len(); got != 0 {
		t.Errorf("RemoveInRange full: Len() = %d, want 0", got)
	}
}

func TestMapChangeInsertShiftsRange(t *testing.T) {
	rev := buffer.NewRevisionID()
	s := NewSet(NewHidden(buffer.NewRange(10, 50)))

	s = s.MapChange(tracking.NewInsertChange(5, "12345", rev))

	markers := s.Markers()
	if len(markers) != 1 {
		t.Fatalf("Len() = %d, want 1", len(markers))
	}
	if markers[0].Range != buffer.NewRange(15, 55) {
		t.Errorf("mapped range = %v, want [15:55)", markers[0].Range)
	}
}

func TestMapChangeDeleteDropsCollapsedMarker(t *testing.T) {
	rev := buffer.NewRevisionID()
	s := NewSet(NewHidden(buffer.NewRange(10, 50)))

	s = s.MapChange(tracking.NewDeleteChange(10, 50, string(make([]byte, 40)), rev))

	if !s.IsEmpty() {
		t.Errorf("fully deleted marker should be dropped, got %v", s.Markers())
	}
}

func TestMapChangeDeleteShrinksOverlappingMarker(t *testing.T) {
	rev := buffer.NewRevisionID()
	s := NewSet(NewHidden(buffer.NewRange(10, 50)))

	// Delete [30,60): marker end inside the deletion clamps to 30.
	s = s.MapChange(tracking.NewDeleteChange(30, 60, string(make([]byte, 30)), rev))

	markers := s.Markers()
	if len(markers) != 1 {
		t.Fatalf("Len() = %d, want 1", len(markers))
	}
	if markers[0].Range != buffer.NewRange(10, 30) {
		t.Errorf("mapped range = %v, want [10:30)", markers[0].Range)
	}
}

func TestMapChangeKeepsZeroWidthHeader(t *testing.T) {
	rev := buffer.NewRevisionID()
	s := NewSet(NewHeader(buffer.NewRange(0, 0), "breadcrumb"))

	s = s.MapChange(tracking.NewInsertChange(3, "xyz", rev))

	h, ok := s.Header()
	if !ok {
		t.Fatal("zero-width header must survive edits elsewhere")
	}
	if h.Range != buffer.NewRange(0, 0) {
		t.Errorf("header range = %v, want [0:0)", h.Range)
	}
}

func TestCovering(t *testing.T) {
	s := NewSet(
		NewHeader(buffer.NewRange(0, 19), "label"),
		NewHidden(buffer.NewRange(41, 60)),
	)

	tests := []struct {
		offset buffer.ByteOffset
		kind   Kind
		found  bool
	}{
		{0, KindHeader, true},
		{18, KindHeader, true},
		{19, 0, false},
		{25, 0, false},
		{41, KindHidden, true},
		{59, KindHidden, true},
		{60, 0, false},
	}

	for _, tt := range tests {
		m, ok := s.Covering(tt.offset)
		if ok != tt.found {
			t.Errorf("Covering(%d) found = %v, want %v", tt.offset, ok, tt.found)
			continue
		}
		if ok && m.Kind != tt.kind {
			t.Errorf("Covering(%d) kind = %v, want %v", tt.offset, m.Kind, tt.kind)
		}
	}
}
