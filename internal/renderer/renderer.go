// Package renderer paints visual lines onto a terminal backend.
package renderer

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/zoomfold/internal/renderer/backend"
	"github.com/dshills/zoomfold/internal/renderer/core"
	"github.com/dshills/zoomfold/internal/renderer/view"
)

// Painter draws rendered output to a backend, clipping to the terminal
// size.
type Painter struct {
	backend backend.Backend
}

// New creates a painter over the given backend.
func New(b backend.Backend) *Painter {
	return &Painter{backend: b}
}

// Draw paints the visual lines starting at the top of the screen and
// flushes the result. Lines beyond the terminal height and columns
// beyond the width are clipped.
func (p *Painter) Draw(lines []view.VisualLine) {
	width, height := p.backend.Size()
	p.backend.Clear()

	for y, line := range lines {
		if y >= height {
			break
		}
		drawLine(p.backend, y, width, line)
	}
	p.backend.Show()
}

// drawLine writes one line of text cell by cell. Wide graphemes occupy
// their full width and are dropped when they would straddle the right
// edge.
func drawLine(b backend.Backend, y, width int, line view.VisualLine) {
	x := 0
	g := uniseg.NewGraphemes(line.Text)
	for g.Next() {
		w := g.Width()
		if x+w > width {
			break
		}
		runes := g.Runes()
		b.SetCell(x, y, core.Cell{Rune: runes[0], Width: w, Style: line.Style})
		x += w
	}
}
