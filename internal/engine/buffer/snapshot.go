package buffer

import "strings"

// Snapshot is an immutable view of a document at a single revision.
// It carries the text, a line index, and the current selections.
// Offsets read from a snapshot are valid only for its revision.
type Snapshot struct {
	// ID uniquely identifies the document this snapshot belongs to.
	ID string

	// Name is the human-readable document title (file name or buffer name).
	Name string

	// Revision is the document revision this snapshot was taken at.
	Revision RevisionID

	// Selections holds the active selections. The first entry is the
	// primary selection. An empty selection is a cursor.
	Selections []Range

	text       string
	lineStarts []ByteOffset
}

// NewSnapshot creates a snapshot for the given document text.
func NewSnapshot(id, name, text string) *Snapshot {
	return &Snapshot{
		ID:         id,
		Name:       name,
		Revision:   NewRevisionID(),
		text:       text,
		lineStarts: indexLines(text),
	}
}

// WithSelections returns a copy of the snapshot with the given selections.
func (s *Snapshot) WithSelections(sels ...Range) *Snapshot {
	out := *s
	out.Selections = append([]Range(nil), sels...)
	return &out
}

// WithCursor returns a copy of the snapshot with a single cursor at offset.
func (s *Snapshot) WithCursor(offset ByteOffset) *Snapshot {
	return s.WithSelections(Range{Start: offset, End: offset})
}

// Text returns the full document text.
func (s *Snapshot) Text() string {
	return s.text
}

// Len returns the document length in bytes.
func (s *Snapshot) Len() ByteOffset {
	return ByteOffset(len(s.text))
}

// LineCount returns the number of lines in the document.
// An empty document has one (empty) line.
func (s *Snapshot) LineCount() uint32 {
	return uint32(len(s.lineStarts))
}

// PrimarySelection returns the first selection, or a cursor at 0 if there
// are no selections.
func (s *Snapshot) PrimarySelection() Range {
	if len(s.Selections) == 0 {
		return Range{}
	}
	return s.Selections[0]
}

// LineContaining returns the line holding the given offset.
// Offsets past the end of the document map to the last line.
func (s *Snapshot) LineContaining(offset ByteOffset) uint32 {
	lo, hi := 0, len(s.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if s.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return uint32(lo)
}

// LineStart returns the byte offset of the first character of the line.
func (s *Snapshot) LineStart(line uint32) ByteOffset {
	if int(line) >= len(s.lineStarts) {
		return s.Len()
	}
	return s.lineStarts[line]
}

// LineEnd returns the byte offset just past the last character of the
// line, excluding the trailing newline.
func (s *Snapshot) LineEnd(line uint32) ByteOffset {
	if int(line)+1 < len(s.lineStarts) {
		return s.lineStarts[line+1] - 1
	}
	return s.Len()
}

// LineText returns the text of the line without its trailing newline.
func (s *Snapshot) LineText(line uint32) string {
	if int(line) >= len(s.lineStarts) {
		return ""
	}
	return s.text[s.LineStart(line):s.LineEnd(line)]
}

// indexLines computes the start offset of every line.
func indexLines(text string) []ByteOffset {
	starts := make([]ByteOffset, 1, strings.Count(text, "\n")+1)
	starts[0] = 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, ByteOffset(i+1))
		}
	}
	return starts
}
