package state

import (
	"context"

	"github.com/dshills/zoomfold/internal/event"
	"github.com/dshills/zoomfold/internal/event/events"
)

// Subscribe wires the machine to a bus. The machine listens only to
// zoom.in, zoom.out, buffer.attached, and the buffer.content family,
// and ignores everything else the host broadcasts. Subscriptions run at
// critical priority so the decoration set is current before any other
// listener reacts to the same event.
//
// The returned subscriptions can be passed to bus.Unsubscribe to detach.
func Subscribe(bus event.Bus, m *Machine) ([]event.Subscription, error) {
	var subs []event.Subscription

	add := func(sub event.Subscription, err error) error {
		if err != nil {
			for _, s := range subs {
				_ = bus.Unsubscribe(s)
			}
			return err
		}
		subs = append(subs, sub)
		return nil
	}

	if err := add(bus.SubscribeFunc(events.TopicBufferAttached, func(_ context.Context, ev any) error {
		if e, ok := ev.(event.Event[events.BufferAttached]); ok {
			m.Attach(e.Payload.BufferID)
		}
		return nil
	}, event.WithPriority(event.PriorityCritical))); err != nil {
		return nil, err
	}

	if err := add(bus.SubscribeFunc("buffer.content.*", func(_ context.Context, ev any) error {
		if e, ok := ev.(event.Event[events.DocumentChanged]); ok && e.Payload.BufferID == m.BufferID() {
			m.ApplyChange(e.Payload.Change)
		}
		return nil
	}, event.WithPriority(event.PriorityCritical))); err != nil {
		return nil, err
	}

	if err := add(bus.SubscribeFunc(events.TopicZoomIn, func(_ context.Context, ev any) error {
		if e, ok := ev.(event.Event[events.ZoomIn]); ok && e.Payload.BufferID == m.BufferID() {
			m.ApplyZoomIn(e.Payload.Requests)
		}
		return nil
	}, event.WithPriority(event.PriorityCritical))); err != nil {
		return nil, err
	}

	if err := add(bus.SubscribeFunc(events.TopicZoomOut, func(_ context.Context, ev any) error {
		if e, ok := ev.(event.Event[events.ZoomOut]); ok && e.Payload.BufferID == m.BufferID() {
			m.ApplyZoomOut(e.Payload.Range)
		}
		return nil
	}, event.WithPriority(event.PriorityCritical))); err != nil {
		return nil, err
	}

	return subs, nil
}
