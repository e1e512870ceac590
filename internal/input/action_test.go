package input

import (
	"testing"

	"github.com/dshills/zoomfold/internal/renderer/backend"
)

func TestActionNamespace(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"zoom.in", "zoom"},
		{"cursor.moveDown", "cursor"},
		{"quit", ""},
	}
	for _, tt := range tests {
		if got := NewAction(tt.name).Namespace(); got != tt.want {
			t.Errorf("Namespace(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestKeymapTranslate(t *testing.T) {
	k := DefaultKeymap()

	tests := []struct {
		name   string
		ev     backend.Event
		want   string
		wantOK bool
	}{
		{"zoom in rune", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'z'}, "zoom.in", true},
		{"zoom out rune", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'Z'}, "zoom.out", true},
		{"escape", backend.Event{Type: backend.EventKey, Key: backend.KeyEscape}, "zoom.out", true},
		{"arrow", backend.Event{Type: backend.EventKey, Key: backend.KeyDown}, "cursor.moveDown", true},
		{"unbound rune", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'x'}, "", false},
		{"resize ignored", backend.Event{Type: backend.EventResize, Width: 80, Height: 24}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := k.Translate(tt.ev)
			if ok != tt.wantOK {
				t.Fatalf("Translate() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && action.Name != tt.want {
				t.Errorf("Translate() = %q, want %q", action.Name, tt.want)
			}
		})
	}
}
