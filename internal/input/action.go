// Package input defines editor actions and the key bindings that
// produce them.
package input

// ActionSource indicates where an action originated.
type ActionSource int

const (
	// SourceKey is an action produced by a key binding.
	SourceKey ActionSource = iota

	// SourceCommand is an action invoked by name.
	SourceCommand

	// SourceScript is an action produced by plugin code.
	SourceScript
)

// Action represents a command to execute.
type Action struct {
	// Name is the command identifier (e.g., "zoom.in", "cursor.moveDown").
	Name string

	// Source indicates where this action originated.
	Source ActionSource

	// Count is the repeat count.
	Count int
}

// NewAction creates an action with a count of one.
func NewAction(name string) Action {
	return Action{Name: name, Count: 1}
}

// WithCount returns a copy of the action with the specified count.
func (a Action) WithCount(count int) Action {
	a.Count = count
	return a
}

// Namespace returns the prefix before the first dot, or "" when the
// name has no namespace.
func (a Action) Namespace() string {
	for i := 0; i < len(a.Name); i++ {
		if a.Name[i] == '.' {
			return a.Name[:i]
		}
	}
	return ""
}
