package controller

import (
	"context"

	"github.com/dshills/zoomfold/internal/engine/buffer"
	"github.com/dshills/zoomfold/internal/event"
	"github.com/dshills/zoomfold/internal/event/events"
)

// controllerSource identifies controller events in bus metadata.
const controllerSource = "zoom.controller"

// CapabilityNotice is shown when the fold settings required to compute
// section boundaries are disabled.
const CapabilityNotice = "Zooming requires the fold.headings and fold.indent settings to be enabled"

// SectionOracle resolves the foldable range containing a line.
// Implementations are supplied by the host (see the section package).
type SectionOracle interface {
	// SectionRange returns the foldable range containing the line that
	// spans [lineStart, lineEnd], or false if the line is not inside any
	// section.
	SectionRange(snap *buffer.Snapshot, lineStart, lineEnd buffer.ByteOffset) (buffer.Range, bool)
}

// Capabilities reports whether the host settings needed for section
// lookup are enabled.
type Capabilities interface {
	FoldHeadingsEnabled() bool
	FoldIndentEnabled() bool
}

// Notifier surfaces user-facing notices. Notices are advisory; the
// operation has already aborted cleanly when one is emitted.
type Notifier interface {
	Notify(message string)
}

// LabelFormatter builds the breadcrumb text from the document display
// name and the zoomed section's heading.
type LabelFormatter func(displayName, heading string) string

// DefaultLabel is the breadcrumb format used when no formatter is set.
func DefaultLabel(displayName, heading string) string {
	if heading == "" {
		return displayName
	}
	return displayName + " > " + heading
}

// Controller computes the concrete ranges to hide or reveal for one
// editor and emits them as zoom signals. It owns that editor's visual
// zoom flag; the flag is per-instance state, never shared across panes.
type Controller struct {
	bus      event.Bus
	oracle   SectionOracle
	caps     Capabilities
	notifier Notifier
	format   LabelFormatter

	// visual is true while the editor is styled as zoomed. Styling only;
	// the decoration set is the logical state.
	visual bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLabelFormatter overrides the breadcrumb label format.
func WithLabelFormatter(f LabelFormatter) Option {
	return func(c *Controller) {
		if f != nil {
			c.format = f
		}
	}
}

// New creates a controller for one editor instance.
func New(bus event.Bus, oracle SectionOracle, caps Capabilities, notifier Notifier, opts ...Option) *Controller {
	c := &Controller{
		bus:      bus,
		oracle:   oracle,
		caps:     caps,
		notifier: notifier,
		format:   DefaultLabel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// VisualActive returns true while the editor is styled as zoomed.
func (c *Controller) VisualActive() bool {
	return c.visual
}

// ResetVisual clears the visual flag. Called when the editor attaches to
// a document, so stale styling from a prior document never survives.
func (c *Controller) ResetVisual() {
	c.visual = false
}

// ZoomIn hides everything outside the section enclosing the primary
// cursor. It returns false, with no state change, when the required fold
// capabilities are disabled, when the cursor is not inside any foldable
// section, or when there is nothing to hide.
//
// Only the first selection is honored; multi-region zoom is not
// supported.
func (c *Controller) ZoomIn(ctx context.Context, snap *buffer.Snapshot) bool {
	sel := snap.PrimarySelection()
	line := snap.LineContaining(sel.Start)
	heading := headingText(snap.LineText(line))

	if !c.caps.FoldHeadingsEnabled() || !c.caps.FoldIndentEnabled() {
		if c.notifier != nil {
			c.notifier.Notify(CapabilityNotice)
		}
		return false
	}

	lineStart := snap.LineStart(line)
	section, ok := c.oracle.SectionRange(snap, lineStart, snap.LineEnd(line))
	if !ok {
		return false
	}

	docEnd := snap.Len()
	label := c.format(snap.Name, heading)

	var requests []events.ZoomRequest
	if section.End != docEnd && section.End+1 <= docEnd {
		requests = append(requests, events.ZoomRequest{
			Range: buffer.NewRange(section.End+1, docEnd),
		})
	}
	switch {
	case lineStart > 0:
		requests = append(requests, events.ZoomRequest{
			Range: buffer.NewRange(0, lineStart-1),
			Label: label,
		})
	case !c.visual:
		// Nothing above to hide, but a breadcrumb should still appear
		// the first time: emit a zero-width header signal.
		requests = append(requests, events.ZoomRequest{
			Range: buffer.NewRange(0, 0),
			Label: label,
		})
	}

	if len(requests) == 0 {
		return false
	}

	c.visual = true
	_ = c.bus.Publish(ctx, event.NewEvent(events.TopicZoomIn, events.ZoomIn{
		BufferID: snap.ID,
		Requests: requests,
	}, controllerSource))
	return true
}

// ZoomOut restores full visibility. It always clears the visual flag and
// always returns true, even when nothing was zoomed.
func (c *Controller) ZoomOut(ctx context.Context, snap *buffer.Snapshot) bool {
	c.visual = false
	_ = c.bus.Publish(ctx, event.NewEvent(events.TopicZoomOut, events.ZoomOut{
		BufferID: snap.ID,
		Range:    buffer.NewRange(0, snap.Len()),
	}, controllerSource))
	return true
}
