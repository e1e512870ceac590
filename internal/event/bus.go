package event

import (
	"context"
	"sync/atomic"

	"github.com/dshills/zoomfold/internal/event/dispatch"
	"github.com/dshills/zoomfold/internal/event/topic"
)

// Bus is the central event bus interface.
//
// Delivery is synchronous and ordered: Publish blocks until every matching
// handler has run, in subscription priority order. Handlers therefore see
// events in exactly the order the host published them, which the zoom
// state machine relies on for batch consistency.
type Bus interface {
	// Publish delivers an event to all matching subscriptions.
	Publish(ctx context.Context, event any) error

	// Subscribe registers a handler for a topic pattern.
	Subscribe(pattern topic.Topic, handler Handler, opts ...SubscriptionOption) (Subscription, error)

	// SubscribeFunc registers a handler function for a topic pattern.
	SubscribeFunc(pattern topic.Topic, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error)

	// Unsubscribe removes a subscription.
	Unsubscribe(sub Subscription) error

	// Stats returns delivery statistics.
	Stats() Stats
}

// Stats contains bus delivery counters.
type Stats struct {
	EventsPublished  uint64
	EventsDelivered  uint64
	HandlersExecuted uint64
	HandlerErrors    uint64
	HandlerPanics    uint64
}

// bus is the default Bus implementation.
type bus struct {
	registry *Registry
	executor *dispatch.Executor

	eventsPublished  atomic.Uint64
	eventsDelivered  atomic.Uint64
	handlersExecuted atomic.Uint64
	handlerErrors    atomic.Uint64
	handlerPanics    atomic.Uint64
}

// BusOption configures a Bus.
type BusOption func(*busConfig)

type busConfig struct {
	panicHandler dispatch.PanicHandler
}

// WithPanicHandler sets the panic handler invoked when a subscriber panics.
func WithPanicHandler(h dispatch.PanicHandler) BusOption {
	return func(c *busConfig) {
		c.panicHandler = h
	}
}

// NewBus creates a new event bus.
func NewBus(opts ...BusOption) Bus {
	var config busConfig
	for _, opt := range opts {
		opt(&config)
	}

	var execOpts []dispatch.ExecutorOption
	if config.panicHandler != nil {
		execOpts = append(execOpts, dispatch.WithPanicHandler(config.panicHandler))
	}

	return &bus{
		registry: NewRegistry(),
		executor: dispatch.NewExecutor(execOpts...),
	}
}

// Publish delivers an event synchronously to all matching subscriptions.
func (b *bus) Publish(ctx context.Context, event any) error {
	eventTopic := b.extractTopic(event)
	if eventTopic == "" {
		return ErrInvalidEvent
	}

	b.eventsPublished.Add(1)

	subs := b.registry.MatchActive(eventTopic)
	for _, sub := range subs {
		if !sub.ShouldDeliver(event) {
			continue
		}

		result := b.executor.Execute(ctx, event, sub.Handler())
		b.handlersExecuted.Add(1)

		switch {
		case result.Panicked:
			b.handlerPanics.Add(1)
		case result.Error != nil:
			b.handlerErrors.Add(1)
		case result.Success:
			b.eventsDelivered.Add(1)
		}
	}

	return nil
}

// Subscribe registers a handler for a topic pattern.
func (b *bus) Subscribe(pattern topic.Topic, handler Handler, opts ...SubscriptionOption) (Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if !pattern.IsValid() {
		return nil, ErrInvalidTopic
	}

	config := SubscriptionConfig{Priority: PriorityNormal}
	for _, opt := range opts {
		opt(&config)
	}

	sub := newSubscription(pattern, handler, config)
	b.registry.Add(sub)
	return sub, nil
}

// SubscribeFunc registers a handler function for a topic pattern.
func (b *bus) SubscribeFunc(pattern topic.Topic, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return b.Subscribe(pattern, fn, opts...)
}

// Unsubscribe removes a subscription.
func (b *bus) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return ErrSubscriptionNotFound
	}
	sub.Cancel()
	if !b.registry.Remove(sub.ID()) {
		return ErrSubscriptionNotFound
	}
	return nil
}

// Stats returns delivery statistics.
func (b *bus) Stats() Stats {
	return Stats{
		EventsPublished:  b.eventsPublished.Load(),
		EventsDelivered:  b.eventsDelivered.Load(),
		HandlersExecuted: b.handlersExecuted.Load(),
		HandlerErrors:    b.handlerErrors.Load(),
		HandlerPanics:    b.handlerPanics.Load(),
	}
}

// extractTopic pulls the delivery topic from the event.
func (b *bus) extractTopic(event any) topic.Topic {
	if tp, ok := event.(TopicProvider); ok {
		return tp.EventTopic()
	}
	return ""
}
