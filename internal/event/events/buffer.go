package events

import (
	"github.com/dshills/zoomfold/internal/engine/tracking"
	"github.com/dshills/zoomfold/internal/event/topic"
)

// Buffer event topics.
const (
	// TopicBufferContentInserted is published when text is inserted into a buffer.
	TopicBufferContentInserted topic.Topic = "buffer.content.inserted"

	// TopicBufferContentDeleted is published when text is deleted from a buffer.
	TopicBufferContentDeleted topic.Topic = "buffer.content.deleted"

	// TopicBufferContentReplaced is published when text is replaced in a buffer.
	TopicBufferContentReplaced topic.Topic = "buffer.content.replaced"

	// TopicBufferAttached is published when an editor attaches to a
	// (possibly new) document. Per-document state resets on this topic.
	TopicBufferAttached topic.Topic = "buffer.attached"
)

// DocumentChanged is the payload for all buffer.content.* topics.
// The change describes the edit against the prior revision; position
// holders remap through it before interpreting any signal from the same
// update batch.
type DocumentChanged struct {
	// BufferID is the unique identifier of the buffer.
	BufferID string

	// Change is the edit that was applied.
	Change tracking.Change
}

// BufferAttached is published when an editor attaches to a document.
type BufferAttached struct {
	// BufferID is the unique identifier of the newly attached buffer.
	BufferID string

	// Name is the human-readable document title.
	Name string
}

// TopicForChange returns the buffer.content topic for a change type.
func TopicForChange(ct tracking.ChangeType) topic.Topic {
	switch ct {
	case tracking.ChangeInsert:
		return TopicBufferContentInserted
	case tracking.ChangeDelete:
		return TopicBufferContentDeleted
	default:
		return TopicBufferContentReplaced
	}
}
