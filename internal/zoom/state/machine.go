package state

import (
	"github.com/dshills/zoomfold/internal/engine/buffer"
	"github.com/dshills/zoomfold/internal/engine/tracking"
	"github.com/dshills/zoomfold/internal/event/events"
	"github.com/dshills/zoomfold/internal/zoom/decoration"
)

// Phase is the zoom state of the attached document.
type Phase uint8

const (
	// PhaseIdle means no hidden ranges; the decoration set is empty.
	PhaseIdle Phase = iota

	// PhaseZoomed means at least one hidden range or a header marker is
	// present.
	PhaseZoomed
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseZoomed:
		return "zoomed"
	default:
		return "unknown"
	}
}

// Machine owns the decoration set for the currently attached document.
//
// It is driven by the host's update cycle: document changes are applied
// before any zoom signals from the same batch, so marker positions are
// always current when a signal is interpreted. The machine is owned by a
// single update goroutine and is not internally locked.
type Machine struct {
	bufferID    string
	decorations decoration.Set
}

// NewMachine creates a machine with no attached document.
func NewMachine() *Machine {
	return &Machine{}
}

// BufferID returns the ID of the attached document.
func (m *Machine) BufferID() string {
	return m.bufferID
}

// Decorations returns the current decoration set.
func (m *Machine) Decorations() decoration.Set {
	return m.decorations
}

// Phase returns the current zoom phase.
func (m *Machine) Phase() Phase {
	if m.decorations.IsEmpty() {
		return PhaseIdle
	}
	return PhaseZoomed
}

// Attach binds the machine to a document and resets all zoom state.
// Zoom state never migrates across documents.
func (m *Machine) Attach(bufferID string) {
	m.bufferID = bufferID
	m.Reset()
}

// Reset discards the decoration set, returning to PhaseIdle.
func (m *Machine) Reset() {
	m.decorations = decoration.Set{}
}

// ApplyChange remaps every marker through a document edit. A marker can
// only move or be dropped, never corrupted, so this transition cannot
// fail; when every marker collapses the machine returns to PhaseIdle.
func (m *Machine) ApplyChange(c tracking.Change) {
	m.decorations = m.decorations.MapChange(c)
}

// ApplyZoomIn folds a batch of hide requests into the decoration set as
// one atomic update. Requests are consumed strictly in the supplied
// order, each fully applied before the next is considered.
//
// A request anchored at offset 0 denotes the breadcrumb region: any
// existing marker at 0 is removed first, then a header marker spanning
// [0, to) is added. All other requests add plain hidden markers. This
// ordering guarantees a batch carrying both a clear-at-0 and an add-at-0
// ends with exactly one header marker.
func (m *Machine) ApplyZoomIn(requests []events.ZoomRequest) {
	set := m.decorations
	for _, req := range requests {
		if req.Range.Start == 0 {
			set = set.Remove(func(mk decoration.Marker) bool {
				return mk.Range.Start == 0
			})
			set = set.Add(decoration.NewHeader(buffer.NewRange(0, req.Range.End), req.Label))
			continue
		}
		set = set.Add(decoration.NewHidden(req.Range))
	}
	m.decorations = set
}

// ApplyZoomOut removes every marker whose span lies within r (in
// practice the whole document), returning to PhaseIdle.
func (m *Machine) ApplyZoomOut(r buffer.Range) {
	m.decorations = m.decorations.RemoveInRange(r)
}
