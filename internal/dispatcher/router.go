package dispatcher

import (
	"strings"
	"sync"
)

// Router routes actions to handlers using namespace prefixes.
// It provides O(1) lookup for namespaced actions like "zoom.in".
type Router struct {
	mu sync.RWMutex

	// Namespace handlers (e.g., "zoom" handles "zoom.*")
	namespaces map[string]NamespaceHandler

	// Fallback handler for unmatched actions
	fallback Handler
}

// NewRouter creates a new action router.
func NewRouter() *Router {
	return &Router{
		namespaces: make(map[string]NamespaceHandler),
	}
}

// RegisterNamespace registers a handler for all actions in a namespace.
// The namespace is the prefix before the first dot (e.g., "zoom" in "zoom.in").
func (r *Router) RegisterNamespace(namespace string, h NamespaceHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.namespaces[namespace] = h
}

// UnregisterNamespace removes a namespace handler.
func (r *Router) UnregisterNamespace(namespace string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.namespaces, namespace)
}

// SetFallback sets the fallback handler for unmatched actions.
func (r *Router) SetFallback(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = h
}

// Route finds the appropriate handler for an action.
// Returns nil if no handler is found.
func (r *Router) Route(actionName string) Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if namespace := extractNamespace(actionName); namespace != "" {
		if h, ok := r.namespaces[namespace]; ok && h.CanHandle(actionName) {
			return NewNamespaceAdapter(h)
		}
	}
	return r.fallback
}

// extractNamespace returns the prefix before the first dot.
func extractNamespace(actionName string) string {
	if i := strings.IndexByte(actionName, '.'); i > 0 {
		return actionName[:i]
	}
	return ""
}
