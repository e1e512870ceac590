package tracking

import (
	"fmt"

	"github.com/dshills/zoomfold/internal/engine/buffer"
)

// ChangeType categorizes the type of a change.
type ChangeType uint8

const (
	// ChangeInsert indicates text was inserted (OldText is empty).
	ChangeInsert ChangeType = iota

	// ChangeDelete indicates text was deleted (NewText is empty).
	ChangeDelete

	// ChangeReplace indicates text was replaced (both OldText and NewText present).
	ChangeReplace
)

// String returns a human-readable representation of the change type.
func (ct ChangeType) String() string {
	switch ct {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Change represents a single change to the document.
// It captures both what changed and where, enabling positions recorded
// against the old revision to be remapped onto the new one.
type Change struct {
	// Type indicates whether this is an insert, delete, or replace.
	Type ChangeType

	// Range is the affected range in the OLD text (before the change).
	// For inserts, Start == End (point insertion).
	Range buffer.Range

	// NewRange is the affected range in the NEW text (after the change).
	// For deletes, Start == End.
	NewRange buffer.Range

	// OldText is the text that was removed (empty for inserts).
	OldText string

	// NewText is the text that was added (empty for deletes).
	NewText string

	// RevisionID is the revision after this change was applied.
	RevisionID buffer.RevisionID
}

// NewInsertChange creates a change representing an insertion.
func NewInsertChange(offset buffer.ByteOffset, text string, revID buffer.RevisionID) Change {
	return Change{
		Type:       ChangeInsert,
		Range:      buffer.Range{Start: offset, End: offset},
		NewRange:   buffer.Range{Start: offset, End: offset + buffer.ByteOffset(len(text))},
		NewText:    text,
		RevisionID: revID,
	}
}

// NewDeleteChange creates a change representing a deletion.
func NewDeleteChange(start, end buffer.ByteOffset, oldText string, revID buffer.RevisionID) Change {
	return Change{
		Type:       ChangeDelete,
		Range:      buffer.Range{Start: start, End: end},
		NewRange:   buffer.Range{Start: start, End: start},
		OldText:    oldText,
		RevisionID: revID,
	}
}

// NewReplaceChange creates a change representing a replacement.
func NewReplaceChange(start, end buffer.ByteOffset, oldText, newText string, revID buffer.RevisionID) Change {
	return Change{
		Type:       ChangeReplace,
		Range:      buffer.Range{Start: start, End: end},
		NewRange:   buffer.Range{Start: start, End: start + buffer.ByteOffset(len(newText))},
		OldText:    oldText,
		NewText:    newText,
		RevisionID: revID,
	}
}

// String returns a human-readable representation of the change.
func (c Change) String() string {
	switch c.Type {
	case ChangeInsert:
		return fmt.Sprintf("Insert %q at %d", clip(c.NewText), c.Range.Start)
	case ChangeDelete:
		return fmt.Sprintf("Delete %q at %v", clip(c.OldText), c.Range)
	case ChangeReplace:
		return fmt.Sprintf("Replace %q with %q at %v", clip(c.OldText), clip(c.NewText), c.Range)
	default:
		return "Unknown change"
	}
}

func clip(text string) string {
	if len(text) > 20 {
		return text[:17] + "..."
	}
	return text
}

// Delta returns the byte delta of this change.
// Positive means the document grew, negative means it shrank.
func (c Change) Delta() int64 {
	return int64(len(c.NewText)) - int64(len(c.OldText))
}

// MapOffset translates an offset recorded against the old revision onto
// the new revision. Offsets before the edit are unchanged, offsets after
// it shift by the delta, and offsets inside the edited region are clamped
// into the new range. Mapping never fails.
func (c Change) MapOffset(offset buffer.ByteOffset) buffer.ByteOffset {
	switch {
	case offset <= c.Range.Start:
		return offset
	case offset >= c.Range.End:
		return offset + c.Delta()
	default:
		mapped := c.NewRange.Start + (offset - c.Range.Start)
		if mapped > c.NewRange.End {
			mapped = c.NewRange.End
		}
		return mapped
	}
}

// ChangeSet represents a batch of related changes in application order.
type ChangeSet struct {
	// Changes in application order.
	Changes []Change

	// StartRevision is the revision before any changes.
	StartRevision buffer.RevisionID

	// EndRevision is the revision after all changes.
	EndRevision buffer.RevisionID
}

// NewChangeSet creates an empty change set starting at the given revision.
func NewChangeSet(startRevision buffer.RevisionID) *ChangeSet {
	return &ChangeSet{
		StartRevision: startRevision,
		EndRevision:   startRevision,
	}
}

// Add adds a change to the set.
func (cs *ChangeSet) Add(c Change) {
	cs.Changes = append(cs.Changes, c)
	cs.EndRevision = c.RevisionID
}

// Len returns the number of changes.
func (cs *ChangeSet) Len() int {
	return len(cs.Changes)
}

// IsEmpty returns true if there are no changes.
func (cs *ChangeSet) IsEmpty() bool {
	return len(cs.Changes) == 0
}
