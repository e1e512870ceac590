package dispatcher

import (
	"errors"
	"testing"

	"github.com/dshills/zoomfold/internal/input"
)

func TestDispatchExactName(t *testing.T) {
	d := New()
	called := false
	d.RegisterFunc("editor.quit", func(_ input.Action, _ *Context) Result {
		called = true
		return OK()
	})

	res := d.Dispatch(input.NewAction("editor.quit"), nil)
	if !called {
		t.Fatal("handler not invoked")
	}
	if !res.IsOK() {
		t.Errorf("status = %v, want ok", res.Status)
	}
}

func TestDispatchNamespaceRoute(t *testing.T) {
	d := New()
	ns := NewBaseNamespaceHandler("cursor")
	var got string
	ns.Register("cursor.moveDown", func(a input.Action, _ *Context) Result {
		got = a.Name
		return OK()
	})
	d.RegisterNamespace(ns)

	if res := d.Dispatch(input.NewAction("cursor.moveDown"), nil); !res.IsOK() {
		t.Fatalf("Dispatch error = %v", res.Error)
	}
	if got != "cursor.moveDown" {
		t.Errorf("handled action = %q, want cursor.moveDown", got)
	}

	// Unknown action within a known namespace is not routed.
	res := d.Dispatch(input.NewAction("cursor.teleport"), nil)
	if !res.IsError() {
		t.Errorf("status = %v, want error", res.Status)
	}
}

func TestDispatchExactBeatsNamespace(t *testing.T) {
	d := New()
	ns := NewBaseNamespaceHandler("zoom")
	ns.Register("zoom.in", func(_ input.Action, _ *Context) Result {
		return Errorf("namespace handler should not win")
	})
	d.RegisterNamespace(ns)
	d.RegisterFunc("zoom.in", func(_ input.Action, _ *Context) Result {
		return OK()
	})

	if res := d.Dispatch(input.NewAction("zoom.in"), nil); !res.IsOK() {
		t.Errorf("exact registration did not take precedence: %v", res.Error)
	}
}

func TestDispatchNoHandler(t *testing.T) {
	d := New()
	res := d.Dispatch(input.NewAction("nope.nothing"), nil)
	if !res.IsError() {
		t.Fatalf("status = %v, want error", res.Status)
	}
	if !errors.Is(res.Error, ErrNoHandler) {
		t.Errorf("error = %v, want ErrNoHandler", res.Error)
	}
}

func TestRegistryPriority(t *testing.T) {
	r := NewRegistry()
	r.Register("a", &SimpleHandler{ActionName: "a", Prio: 1})
	high := &SimpleHandler{ActionName: "a", Prio: 10}
	r.Register("a", high)

	if got := r.Get("a"); got != Handler(high) {
		t.Error("Get did not return highest priority handler")
	}
}
