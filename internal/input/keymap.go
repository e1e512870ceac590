package input

import "github.com/dshills/zoomfold/internal/renderer/backend"

// Keymap translates terminal key events into actions.
type Keymap struct {
	runes map[rune]string
	keys  map[backend.Key]string
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{
		runes: make(map[rune]string),
		keys:  make(map[backend.Key]string),
	}
}

// BindRune binds a printable key to an action name.
func (k *Keymap) BindRune(r rune, action string) {
	k.runes[r] = action
}

// BindKey binds a special key to an action name.
func (k *Keymap) BindKey(key backend.Key, action string) {
	k.keys[key] = action
}

// Translate converts a key event into an action. The second return is
// false when the event is not a key event or has no binding.
func (k *Keymap) Translate(ev backend.Event) (Action, bool) {
	if ev.Type != backend.EventKey {
		return Action{}, false
	}
	if ev.Key == backend.KeyRune {
		if name, ok := k.runes[ev.Rune]; ok {
			return NewAction(name), true
		}
		return Action{}, false
	}
	if name, ok := k.keys[ev.Key]; ok {
		return NewAction(name), true
	}
	return Action{}, false
}

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() *Keymap {
	k := NewKeymap()
	k.BindRune('z', "zoom.in")
	k.BindRune('Z', "zoom.out")
	k.BindRune('q', "editor.quit")
	k.BindKey(backend.KeyEscape, "zoom.out")
	k.BindKey(backend.KeyCtrlC, "editor.quit")
	k.BindKey(backend.KeyUp, "cursor.moveUp")
	k.BindKey(backend.KeyDown, "cursor.moveDown")
	k.BindKey(backend.KeyLeft, "cursor.moveLeft")
	k.BindKey(backend.KeyRight, "cursor.moveRight")
	k.BindKey(backend.KeyHome, "cursor.lineStart")
	k.BindKey(backend.KeyEnd, "cursor.lineEnd")
	return k
}
