package decoration

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/dshills/zoomfold/internal/engine/buffer"
	"github.com/dshills/zoomfold/internal/engine/tracking"
)

// Kind identifies the rendering treatment of a marker.
type Kind uint8

const (
	// KindHidden renders as nothing (zero height).
	KindHidden Kind = iota

	// KindHeader renders as the breadcrumb widget. At most one header
	// marker exists at a time and it is always anchored at offset 0.
	KindHeader
)

// String returns the string representation of the marker kind.
func (k Kind) String() string {
	switch k {
	case KindHidden:
		return "hidden"
	case KindHeader:
		return "header"
	default:
		return "unknown"
	}
}

// Marker is a tagged document span with a rendering treatment.
type Marker struct {
	// ID uniquely identifies the marker.
	ID string

	// Kind selects the rendering treatment.
	Kind Kind

	// Range is the document span the marker covers.
	Range buffer.Range

	// Label is the breadcrumb text for header markers; empty otherwise.
	Label string
}

// NewHidden creates a hidden-range marker.
func NewHidden(r buffer.Range) Marker {
	return Marker{ID: uuid.NewString(), Kind: KindHidden, Range: r}
}

// NewHeader creates a header (breadcrumb) marker.
func NewHeader(r buffer.Range, label string) Marker {
	return Marker{ID: uuid.NewString(), Kind: KindHeader, Range: r, Label: label}
}

// String returns a human-readable representation of the marker.
func (m Marker) String() string {
	return fmt.Sprintf("%s%v", m.Kind, m.Range)
}

// Set is an ordered collection of non-overlapping markers, sorted by
// range start. The zero value is an empty, usable set.
//
// All operations return a new Set; an existing Set is never mutated.
// A set survives document edits only through MapChange, which can move
// or drop markers but never corrupt them.
type Set struct {
	markers []Marker
}

// NewSet creates a set from the given markers, sorted by range start.
func NewSet(markers ...Marker) Set {
	return Set{}.Add(markers...)
}

// Len returns the number of markers in the set.
func (s Set) Len() int {
	return len(s.markers)
}

// IsEmpty returns true if the set contains no markers.
func (s Set) IsEmpty() bool {
	return len(s.markers) == 0
}

// Markers returns the markers in range order.
// The returned slice is a copy.
func (s Set) Markers() []Marker {
	out := make([]Marker, len(s.markers))
	copy(out, s.markers)
	return out
}

// Header returns the header marker, if present.
func (s Set) Header() (Marker, bool) {
	for _, m := range s.markers {
		if m.Kind == KindHeader {
			return m, true
		}
	}
	return Marker{}, false
}

// Covering returns the marker whose range contains the given offset.
func (s Set) Covering(offset buffer.ByteOffset) (Marker, bool) {
	for _, m := range s.markers {
		if m.Range.Contains(offset) {
			return m, true
		}
		if m.Range.Start > offset {
			break
		}
	}
	return Marker{}, false
}

// Add returns a set with the given markers inserted, re-sorted by range
// start. Avoiding duplicate or overlapping additions is the caller's
// responsibility.
func (s Set) Add(markers ...Marker) Set {
	if len(markers) == 0 {
		return s
	}
	out := make([]Marker, 0, len(s.markers)+len(markers))
	out = append(out, s.markers...)
	out = append(out, markers...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Range.Start < out[j].Range.Start
	})
	return Set{markers: out}
}

// Remove returns a set without the markers matching the predicate.
func (s Set) Remove(pred func(Marker) bool) Set {
	out := make([]Marker, 0, len(s.markers))
	for _, m := range s.markers {
		if !pred(m) {
			out = append(out, m)
		}
	}
	return Set{markers: out}
}

// RemoveInRange returns a set without the markers whose span lies
// entirely within r, regardless of kind.
func (s Set) RemoveInRange(r buffer.Range) Set {
	return s.Remove(func(m Marker) bool {
		return r.ContainsRange(m.Range)
	})
}

// MapChange returns a set with every marker translated through the edit.
// Insertions and deletions shift or shrink ranges; a marker whose span is
// fully deleted collapses to empty and is dropped. Markers that were
// already zero-width (the breadcrumb-only header) are kept.
func (s Set) MapChange(c tracking.Change) Set {
	out := make([]Marker, 0, len(s.markers))
	for _, m := range s.markers {
		wasEmpty := m.Range.IsEmpty()
		m.Range = buffer.Range{
			Start: c.MapOffset(m.Range.Start),
			End:   c.MapOffset(m.Range.End),
		}
		if m.Range.IsEmpty() && !wasEmpty {
			continue
		}
		out = append(out, m)
	}
	return Set{markers: out}
}
