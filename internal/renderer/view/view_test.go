package view

import (
	"reflect"
	"testing"

	"github.com/dshills/zoomfold/internal/engine/buffer"
	"github.com/dshills/zoomfold/internal/renderer/core"
	"github.com/dshills/zoomfold/internal/zoom/decoration"
)

// Layout: line starts at 0, 8, 20, 28, 42, 49; 60 bytes total.
const fixtureText = "# Intro\nprologue...\n# Title\nbody maybe...\n# Coda\nepilogue..."

func fixture(t *testing.T) *buffer.Snapshot {
	t.Helper()
	if len(fixtureText) != 60 {
		t.Fatalf("fixture length = %d, want 60", len(fixtureText))
	}
	return buffer.NewSnapshot("buf-a", "notes.md", fixtureText)
}

func textLines(lines []VisualLine) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Text)
	}
	return out
}

func TestRenderWithoutDecorations(t *testing.T) {
	lines := Render(fixture(t), decoration.NewSet(), DefaultOptions())

	want := []string{"# Intro", "prologue...", "# Title", "body maybe...", "# Coda", "epilogue..."}
	if got := textLines(lines); !reflect.DeepEqual(got, want) {
		t.Errorf("Render() = %v, want %v", got, want)
	}
	for i, l := range lines {
		if l.Kind != LineText {
			t.Errorf("line %d kind = %v, want LineText", i, l.Kind)
		}
		if l.Line != uint32(i) {
			t.Errorf("line %d source = %d, want %d", i, l.Line, i)
		}
	}
}

func TestRenderZoomed(t *testing.T) {
	decs := decoration.NewSet(
		decoration.NewHeader(buffer.NewRange(0, 19), "notes.md > Title"),
		decoration.NewHidden(buffer.NewRange(41, 60)),
	)

	lines := Render(fixture(t), decs, DefaultOptions())

	want := []string{"notes.md > Title", "# Title", "body maybe..."}
	if got := textLines(lines); !reflect.DeepEqual(got, want) {
		t.Errorf("Render() = %v, want %v", got, want)
	}
	if lines[0].Kind != LineBreadcrumb {
		t.Errorf("first line kind = %v, want LineBreadcrumb", lines[0].Kind)
	}
	if lines[1].Line != 2 || lines[2].Line != 3 {
		t.Errorf("visible source lines = %d, %d, want 2, 3", lines[1].Line, lines[2].Line)
	}
}

func TestRenderZeroWidthHeader(t *testing.T) {
	// A zero-width header hides nothing but still shows the breadcrumb.
	decs := decoration.NewSet(
		decoration.NewHeader(buffer.NewRange(0, 0), "notes.md > Intro"),
		decoration.NewHidden(buffer.NewRange(41, 60)),
	)

	lines := Render(fixture(t), decs, DefaultOptions())

	want := []string{"notes.md > Intro", "# Intro", "prologue...", "# Title", "body maybe..."}
	if got := textLines(lines); !reflect.DeepEqual(got, want) {
		t.Errorf("Render() = %v, want %v", got, want)
	}
}

func TestRenderBreadcrumbTruncation(t *testing.T) {
	decs := decoration.NewSet(
		decoration.NewHeader(buffer.NewRange(0, 0), "notes.md > A Very Long Heading"),
	)
	opts := DefaultOptions()
	opts.BreadcrumbMaxWidth = 12

	lines := Render(fixture(t), decs, opts)

	if lines[0].Text != "notes.md > …" {
		t.Errorf("breadcrumb = %q, want %q", lines[0].Text, "notes.md > …")
	}
	if w := core.StringWidth(lines[0].Text); w > 12 {
		t.Errorf("breadcrumb width = %d, want <= 12", w)
	}
}

func TestRenderIsPure(t *testing.T) {
	snap := fixture(t)
	decs := decoration.NewSet(decoration.NewHidden(buffer.NewRange(41, 60)))

	first := Render(snap, decs, DefaultOptions())
	second := Render(snap, decs, DefaultOptions())
	if !reflect.DeepEqual(first, second) {
		t.Error("Render is not deterministic for identical inputs")
	}
}
