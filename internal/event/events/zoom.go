package events

import (
	"github.com/dshills/zoomfold/internal/engine/buffer"
	"github.com/dshills/zoomfold/internal/event/topic"
)

// Zoom event topics.
const (
	// TopicZoomIn is published when a zoom-in has been computed for a buffer.
	TopicZoomIn topic.Topic = "zoom.in"

	// TopicZoomOut is published when a buffer should return to full
	// visibility.
	TopicZoomOut topic.Topic = "zoom.out"
)

// ZoomRequest is one hide instruction within a zoom-in batch.
//
// A request starting at offset 0 denotes the breadcrumb region: the state
// machine replaces any existing marker anchored at 0 and tags the new one
// as the header. All other requests become plain hidden ranges.
type ZoomRequest struct {
	// Range is the document span to hide.
	Range buffer.Range

	// Label is the breadcrumb text. Only meaningful for the request
	// anchored at offset 0.
	Label string
}

// ZoomIn is the payload for TopicZoomIn. The requests of one batch are
// applied atomically, in order.
type ZoomIn struct {
	// BufferID is the buffer being zoomed.
	BufferID string

	// Requests are the hide instructions, in application order.
	Requests []ZoomRequest
}

// ZoomOut is the payload for TopicZoomOut.
type ZoomOut struct {
	// BufferID is the buffer being restored.
	BufferID string

	// Range bounds the markers to clear; in practice the whole document.
	Range buffer.Range
}
