// Package event provides the typed message bus connecting the editor's
// subsystems.
//
// Publishers wrap payloads in [Event] values tagged with a hierarchical
// [topic.Topic]; subscribers register against exact topics or wildcard
// patterns and type-assert the payload they care about. The host delivers
// every update to everyone, so listeners filter by topic rather than by
// inspecting payload types they do not own.
//
// Delivery is synchronous and FIFO within a publish call, matching the
// single-update-goroutine model of the editor: a publisher's handlers have
// all run by the time Publish returns, in subscription priority order.
// Handler panics are recovered per-handler so one faulty subscriber cannot
// take down the update cycle.
package event
