package renderer

import (
	"testing"

	"github.com/dshills/zoomfold/internal/renderer/backend"
	"github.com/dshills/zoomfold/internal/renderer/core"
	"github.com/dshills/zoomfold/internal/renderer/view"
)

func readRow(t *testing.T, b *backend.NullBackend, y, width int) string {
	t.Helper()
	out := make([]rune, 0, width)
	for x := 0; x < width; {
		cell := b.GetCell(x, y)
		out = append(out, cell.Rune)
		if cell.Width > 1 {
			x += cell.Width
			continue
		}
		x++
	}
	return string(out)
}

func TestPainterDraw(t *testing.T) {
	b := backend.NewNullBackend(20, 4)
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	crumb := core.NewStyle(core.ColorFromRGB(0x80, 0x80, 0x80)).Italic()
	New(b).Draw([]view.VisualLine{
		{Kind: view.LineBreadcrumb, Text: "notes.md > Title", Style: crumb},
		{Kind: view.LineText, Line: 2, Text: "# Title", Style: core.DefaultStyle()},
	})

	if got := readRow(t, b, 0, 16); got != "notes.md > Title" {
		t.Errorf("row 0 = %q, want %q", got, "notes.md > Title")
	}
	if got := readRow(t, b, 1, 7); got != "# Title" {
		t.Errorf("row 1 = %q, want %q", got, "# Title")
	}
	if b.GetCell(0, 0).Style != crumb {
		t.Error("breadcrumb style not applied")
	}
	if got := b.GetCell(0, 2); got.Rune != ' ' {
		t.Errorf("row 2 should be blank, got %q", got.Rune)
	}
}

func TestPainterClipsToScreen(t *testing.T) {
	b := backend.NewNullBackend(5, 2)
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	lines := []view.VisualLine{
		{Kind: view.LineText, Text: "abcdefghij", Style: core.DefaultStyle()},
		{Kind: view.LineText, Text: "second", Style: core.DefaultStyle()},
		{Kind: view.LineText, Text: "never drawn", Style: core.DefaultStyle()},
	}
	New(b).Draw(lines)

	if got := readRow(t, b, 0, 5); got != "abcde" {
		t.Errorf("row 0 = %q, want %q", got, "abcde")
	}
	if got := readRow(t, b, 1, 5); got != "secon" {
		t.Errorf("row 1 = %q, want %q", got, "secon")
	}
}

func TestPainterWideRunes(t *testing.T) {
	b := backend.NewNullBackend(5, 1)
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	New(b).Draw([]view.VisualLine{
		{Kind: view.LineText, Text: "日本語", Style: core.DefaultStyle()},
	})

	// Two wide runes fit in 5 columns; the third would straddle the edge.
	if got := b.GetCell(0, 0); got.Rune != '日' || got.Width != 2 {
		t.Errorf("cell 0 = %q width %d, want 日 width 2", got.Rune, got.Width)
	}
	if got := b.GetCell(2, 0); got.Rune != '本' {
		t.Errorf("cell 2 = %q, want 本", got.Rune)
	}
	if got := b.GetCell(4, 0); got.Rune != ' ' {
		t.Errorf("cell 4 = %q, want blank", got.Rune)
	}
}
