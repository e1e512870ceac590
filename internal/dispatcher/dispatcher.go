// Package dispatcher routes actions to handlers and coordinates execution.
package dispatcher

import (
	"errors"
	"fmt"

	"github.com/dshills/zoomfold/internal/input"
)

// ErrNoHandler is returned when no handler is registered for an action.
var ErrNoHandler = errors.New("no handler for action")

// Dispatcher routes actions to handlers. Exact-name registrations take
// precedence over namespace routes.
type Dispatcher struct {
	registry *Registry
	router   *Router
}

// New creates a new dispatcher.
func New() *Dispatcher {
	return &Dispatcher{
		registry: NewRegistry(),
		router:   NewRouter(),
	}
}

// Register adds a handler for an exact action name.
func (d *Dispatcher) Register(actionName string, h Handler) {
	d.registry.Register(actionName, h)
}

// RegisterFunc adds a function handler for an exact action name.
func (d *Dispatcher) RegisterFunc(actionName string, fn func(action input.Action, ctx *Context) Result) {
	d.registry.Register(actionName, &SimpleHandler{ActionName: actionName, Fn: fn})
}

// RegisterNamespace adds a handler for all actions in a namespace.
func (d *Dispatcher) RegisterNamespace(h NamespaceHandler) {
	d.router.RegisterNamespace(h.Namespace(), h)
}

// Actions returns all exact-name registrations.
func (d *Dispatcher) Actions() []string {
	return d.registry.List()
}

// Dispatch routes an action to its handler and returns the result.
func (d *Dispatcher) Dispatch(action input.Action, ctx *Context) Result {
	if ctx == nil {
		ctx = &Context{}
	}

	if h := d.registry.Get(action.Name); h != nil {
		return h.Handle(action, ctx)
	}
	if h := d.router.Route(action.Name); h != nil {
		return h.Handle(action, ctx)
	}
	return Result{
		Status: StatusError,
		Error:  fmt.Errorf("%w: %s", ErrNoHandler, action.Name),
	}
}
