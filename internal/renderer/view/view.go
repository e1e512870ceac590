// Package view turns a buffer snapshot plus its zoom decorations into
// visual lines. Rendering is a pure function of its inputs so the same
// snapshot and decoration set always produce the same output.
package view

import (
	"github.com/dshills/zoomfold/internal/engine/buffer"
	"github.com/dshills/zoomfold/internal/renderer/core"
	"github.com/dshills/zoomfold/internal/zoom/decoration"
)

// LineKind identifies the source of a visual line.
type LineKind int

// Visual line kinds.
const (
	// LineText is a document line shown verbatim.
	LineText LineKind = iota

	// LineBreadcrumb is the synthetic context line shown while zoomed.
	LineBreadcrumb
)

// VisualLine is one row of rendered output.
type VisualLine struct {
	Kind LineKind

	// Line is the source line number. Only meaningful for LineText.
	Line uint32

	Text  string
	Style core.Style
}

// Options controls presentation details of rendered output.
type Options struct {
	// BreadcrumbMaxWidth caps the breadcrumb line width in columns.
	// Zero means unlimited.
	BreadcrumbMaxWidth int

	// BreadcrumbStyle is the style applied to the breadcrumb line.
	BreadcrumbStyle core.Style
}

// DefaultOptions returns rendering options with a dimmed italic
// breadcrumb.
func DefaultOptions() Options {
	fg := core.ColorFromRGB(0xe5, 0xe7, 0xeb).Blend(core.ColorFromRGB(0x37, 0x41, 0x51), 0.45)
	return Options{
		BreadcrumbMaxWidth: 0,
		BreadcrumbStyle:    core.NewStyle(fg).Italic().Dim(),
	}
}

// Render produces the visual lines for snap under the given decoration
// set. A line is suppressed when its start offset falls inside any
// marker range. When a header marker is present its label is emitted as
// a breadcrumb line above the remaining content.
func Render(snap *buffer.Snapshot, decs decoration.Set, opts Options) []VisualLine {
	out := make([]VisualLine, 0, snap.LineCount()+1)

	if header, ok := decs.Header(); ok {
		out = append(out, breadcrumbLine(header.Label, opts))
	}

	for line := uint32(0); line < snap.LineCount(); line++ {
		if _, covered := decs.Covering(snap.LineStart(line)); covered {
			continue
		}
		out = append(out, VisualLine{
			Kind:  LineText,
			Line:  line,
			Text:  snap.LineText(line),
			Style: core.DefaultStyle(),
		})
	}
	return out
}

func breadcrumbLine(label string, opts Options) VisualLine {
	text := label
	if opts.BreadcrumbMaxWidth > 0 {
		text = core.TruncateToWidth(text, opts.BreadcrumbMaxWidth, "…")
	}
	return VisualLine{Kind: LineBreadcrumb, Text: text, Style: opts.BreadcrumbStyle}
}
