package event

import "errors"

// Sentinel errors returned by the bus.
var (
	// ErrInvalidEvent indicates the published value does not carry a topic.
	ErrInvalidEvent = errors.New("event: invalid event, no topic")

	// ErrInvalidTopic indicates a subscription used a malformed topic pattern.
	ErrInvalidTopic = errors.New("event: invalid topic pattern")

	// ErrNilHandler indicates a subscription was attempted with a nil handler.
	ErrNilHandler = errors.New("event: nil handler")

	// ErrSubscriptionNotFound indicates the subscription is not registered.
	ErrSubscriptionNotFound = errors.New("event: subscription not found")
)
