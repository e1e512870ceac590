package section

import (
	"strings"

	"github.com/dshills/zoomfold/internal/engine/buffer"
)

// OutlineOracle resolves foldable ranges from document structure:
// markdown-style headings and indentation blocks.
//
// The returned range runs from the start of the query line to the end of
// the enclosing section; zoom only consumes the end boundary, but the
// start is kept meaningful for other folding consumers.
type OutlineOracle struct{}

// NewOutlineOracle creates a structure-based section oracle.
func NewOutlineOracle() *OutlineOracle {
	return &OutlineOracle{}
}

// SectionRange returns the foldable range containing the line spanning
// [lineStart, lineEnd], or false if the line is not inside any section.
func (o *OutlineOracle) SectionRange(snap *buffer.Snapshot, lineStart, _ buffer.ByteOffset) (buffer.Range, bool) {
	line := snap.LineContaining(lineStart)
	text := snap.LineText(line)

	if level := headingLevel(text); level > 0 {
		end := headingSectionEnd(snap, line, level)
		return buffer.NewRange(snap.LineStart(line), end), true
	}

	if end, ok := indentBlockEnd(snap, line); ok {
		return buffer.NewRange(snap.LineStart(line), end), true
	}

	// A body line belongs to the section of the nearest heading above.
	for l := int(line) - 1; l >= 0; l-- {
		if level := headingLevel(snap.LineText(uint32(l))); level > 0 {
			end := headingSectionEnd(snap, uint32(l), level)
			return buffer.NewRange(snap.LineStart(line), end), true
		}
	}

	return buffer.Range{}, false
}

// headingSectionEnd returns the end offset of the section opened by a
// heading: everything up to the next heading of the same or higher level.
func headingSectionEnd(snap *buffer.Snapshot, headingLine uint32, level int) buffer.ByteOffset {
	last := headingLine
	for l := headingLine + 1; l < snap.LineCount(); l++ {
		if next := headingLevel(snap.LineText(l)); next > 0 && next <= level {
			break
		}
		last = l
	}
	return snap.LineEnd(last)
}

// indentBlockEnd returns the end offset of the indentation block under a
// list item or indented line. A line only opens a block if at least one
// following line is indented deeper.
func indentBlockEnd(snap *buffer.Snapshot, line uint32) (buffer.ByteOffset, bool) {
	text := snap.LineText(line)
	if !isListItem(text) && indentWidth(text) == 0 {
		return 0, false
	}

	base := indentWidth(text)
	last := line
	for l := line + 1; l < snap.LineCount(); l++ {
		next := snap.LineText(l)
		if strings.TrimSpace(next) == "" {
			// Blank lines stay in the block unless it ends right after.
			continue
		}
		if indentWidth(next) <= base {
			break
		}
		last = l
	}
	if last == line {
		return 0, false
	}
	return snap.LineEnd(last), true
}

// headingLevel returns the heading level of a line, or 0 if the line is
// not a heading. A heading is a '#' run followed by a space.
func headingLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level >= len(line) || line[level] != ' ' {
		return 0
	}
	return level
}

// isListItem reports whether the line is a '-' or '*' bullet.
func isListItem(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ")
}

// indentWidth measures leading whitespace; tabs count as four columns.
func indentWidth(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += 4
		default:
			return width
		}
	}
	return width
}
