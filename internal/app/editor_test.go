package app

import (
	"context"
	"testing"

	"github.com/dshills/zoomfold/internal/config"
	"github.com/dshills/zoomfold/internal/engine/buffer"
	"github.com/dshills/zoomfold/internal/input"
	"github.com/dshills/zoomfold/internal/renderer/backend"
	"github.com/dshills/zoomfold/internal/renderer/view"
	"github.com/dshills/zoomfold/internal/zoom/decoration"
)

// Line starts at 0, 8, 20, 28, 42, 49; 60 bytes total.
const docText = "# Intro\nprologue...\n# Title\nbody maybe...\n# Coda\nepilogue..."

func newEditor(t *testing.T) *Editor {
	t.Helper()
	e, err := New(config.Default())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e
}

func openDoc(t *testing.T, e *Editor, id string) {
	t.Helper()
	if err := e.OpenDocument(context.Background(), id, "notes.md", docText); err != nil {
		t.Fatalf("OpenDocument error = %v", err)
	}
}

func mustZoomIn(t *testing.T, e *Editor, cursor buffer.ByteOffset) {
	t.Helper()
	e.snapshot = e.snapshot.WithCursor(cursor)
	if res := e.Dispatch(context.Background(), input.NewAction("zoom.in")); !res.IsOK() {
		t.Fatalf("zoom.in result = %v (%v)", res.Status, res.Error)
	}
}

func TestZoomRoundTrip(t *testing.T) {
	e := newEditor(t)
	openDoc(t, e, "buf-a")

	mustZoomIn(t, e, 25)
	if !e.ZoomActive() {
		t.Error("visual flag not set after zoom.in")
	}
	if got := e.Decorations().Len(); got != 2 {
		t.Fatalf("decoration count = %d, want 2", got)
	}

	if res := e.Dispatch(context.Background(), input.NewAction("zoom.out")); !res.IsOK() {
		t.Fatalf("zoom.out result = %v (%v)", res.Status, res.Error)
	}
	if e.ZoomActive() {
		t.Error("visual flag still set after zoom.out")
	}
	if !e.Decorations().IsEmpty() {
		t.Errorf("decorations remain after zoom.out: %d", e.Decorations().Len())
	}
}

func TestZoomedRender(t *testing.T) {
	e := newEditor(t)
	openDoc(t, e, "buf-a")
	mustZoomIn(t, e, 25)

	lines := e.Render()
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, want 3", len(lines))
	}
	if lines[0].Kind != view.LineBreadcrumb || lines[0].Text != "notes.md > Title" {
		t.Errorf("breadcrumb = %q (kind %v), want notes.md > Title", lines[0].Text, lines[0].Kind)
	}
	if lines[1].Text != "# Title" || lines[2].Text != "body maybe..." {
		t.Errorf("visible lines = %q, %q", lines[1].Text, lines[2].Text)
	}
}

func TestSwitchDocumentDiscardsZoom(t *testing.T) {
	e := newEditor(t)
	openDoc(t, e, "buf-a")
	mustZoomIn(t, e, 25)

	openDoc(t, e, "buf-b")
	if e.ZoomActive() {
		t.Error("visual flag survived document switch")
	}
	if !e.Decorations().IsEmpty() {
		t.Errorf("decorations survived document switch: %d", e.Decorations().Len())
	}
	if len(e.Render()) != 6 {
		t.Errorf("fresh document rendered %d lines, want 6", len(e.Render()))
	}
}

func TestEditRemapsDecorations(t *testing.T) {
	e := newEditor(t)
	openDoc(t, e, "buf-a")
	mustZoomIn(t, e, 25)

	// Section is [20,41): hidden tail [42,60), header over head [0,19).
	if err := e.Insert(context.Background(), 0, "ab"); err != nil {
		t.Fatalf("Insert error = %v", err)
	}

	var hidden, header *decoration.Marker
	for _, m := range e.Decorations().Markers() {
		m := m
		switch m.Kind {
		case decoration.KindHidden:
			hidden = &m
		case decoration.KindHeader:
			header = &m
		}
	}
	if hidden == nil || header == nil {
		t.Fatalf("markers = %v", e.Decorations().Markers())
	}
	if hidden.Range != buffer.NewRange(44, 62) {
		t.Errorf("hidden range = %v, want 44:62", hidden.Range)
	}
	if header.Range.Start != 0 {
		t.Errorf("header start = %d, want 0", header.Range.Start)
	}
	if header.Range.End != 21 {
		t.Errorf("header end = %d, want 21", header.Range.End)
	}
}

func TestDeleteCollapsesZoom(t *testing.T) {
	e := newEditor(t)
	openDoc(t, e, "buf-a")
	mustZoomIn(t, e, 25)

	// Deleting the whole document removes every decoration.
	if err := e.Delete(context.Background(), buffer.NewRange(0, 60)); err != nil {
		t.Fatalf("Delete error = %v", err)
	}
	if !e.Decorations().IsEmpty() {
		t.Errorf("decorations remain after full delete: %d", e.Decorations().Len())
	}
}

func TestCapabilityNoticeBlocksZoom(t *testing.T) {
	cfg := config.Default()
	fold := cfg.Fold()
	fold.Headings = false
	cfg.SetFold(fold)

	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	openDoc(t, e, "buf-a")
	e.snapshot = e.snapshot.WithCursor(25)

	res := e.Dispatch(context.Background(), input.NewAction("zoom.in"))
	if res.IsOK() {
		t.Fatal("zoom.in succeeded with folding disabled")
	}
	notices := e.Notices()
	if len(notices) != 1 {
		t.Fatalf("notice count = %d, want 1", len(notices))
	}
	if notices[0] == "" {
		t.Error("empty capability notice")
	}
}

func TestHandleEventKeys(t *testing.T) {
	e := newEditor(t)
	openDoc(t, e, "buf-a")
	e.snapshot = e.snapshot.WithCursor(25)
	ctx := context.Background()

	key := func(r rune) backend.Event {
		return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r}
	}

	if res := e.HandleEvent(ctx, key('z')); !res.IsOK() {
		t.Fatalf("z result = %v (%v)", res.Status, res.Error)
	}
	if !e.ZoomActive() {
		t.Error("z did not zoom in")
	}

	if res := e.HandleEvent(ctx, backend.Event{Type: backend.EventKey, Key: backend.KeyEscape}); !res.IsOK() {
		t.Fatalf("escape result = %v (%v)", res.Status, res.Error)
	}
	if e.ZoomActive() {
		t.Error("escape did not zoom out")
	}

	e.HandleEvent(ctx, key('q'))
	if !e.ShouldQuit() {
		t.Error("q did not request quit")
	}
}

func TestCursorMovement(t *testing.T) {
	e := newEditor(t)
	openDoc(t, e, "buf-a")
	ctx := context.Background()

	cursor := func() buffer.ByteOffset { return e.snapshot.PrimarySelection().Start }

	e.Dispatch(ctx, input.NewAction("cursor.moveDown"))
	if got := cursor(); got != 8 {
		t.Errorf("after moveDown cursor = %d, want 8", got)
	}

	e.Dispatch(ctx, input.NewAction("cursor.lineEnd"))
	if got := cursor(); got != 19 {
		t.Errorf("after lineEnd cursor = %d, want 19", got)
	}

	// Moving down from a long line clamps to the shorter target line.
	e.Dispatch(ctx, input.NewAction("cursor.moveDown"))
	if got := cursor(); got != 27 {
		t.Errorf("after moveDown cursor = %d, want 27", got)
	}

	e.Dispatch(ctx, input.NewAction("cursor.moveUp").WithCount(2))
	if got := cursor(); got != 7 {
		t.Errorf("after moveUp x2 cursor = %d, want 7", got)
	}

	if res := e.Dispatch(ctx, input.NewAction("cursor.moveLeft").WithCount(100)); !res.IsOK() {
		t.Fatalf("moveLeft result = %v", res.Status)
	}
	if got := cursor(); got != 0 {
		t.Errorf("after moveLeft x100 cursor = %d, want 0", got)
	}
}
