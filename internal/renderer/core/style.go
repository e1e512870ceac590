// Package core provides shared presentation types for the renderer
// subsystem. This package breaks import cycles between the view layer and
// terminal backends.
package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Attribute represents text attributes (bold, italic, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrDim                 // Faint/dim text
	AttrItalic              // Italic text
	AttrUnderline           // Underlined text
	AttrReverse             // Reverse video (swap fg/bg)
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Color represents an RGB color value.
type Color struct {
	R, G, B uint8

	// Default indicates this is the terminal's default color.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// ColorFromRGB creates a color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// String returns the color as a hex string.
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Blend mixes the color toward other by t in [0,1], interpolating in
// Lab space so midpoints stay perceptually even. Default colors pass
// through unchanged.
func (c Color) Blend(other Color, t float64) Color {
	if c.Default || other.Default {
		return c
	}
	from := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	to := colorful.Color{R: float64(other.R) / 255, G: float64(other.G) / 255, B: float64(other.B) / 255}
	mixed := from.BlendLab(to, t).Clamped()
	return Color{
		R: uint8(mixed.R*255 + 0.5),
		G: uint8(mixed.G*255 + 0.5),
		B: uint8(mixed.B*255 + 0.5),
	}
}

// Style describes the visual treatment of a span of text.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns the terminal's default style.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// NewStyle creates a style with the given foreground color.
func NewStyle(fg Color) Style {
	return Style{Foreground: fg, Background: ColorDefault}
}

// WithBackground returns a copy of the style with the background set.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Bold returns a copy of the style with the bold attribute.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Dim returns a copy of the style with the dim attribute.
func (s Style) Dim() Style {
	s.Attributes |= AttrDim
	return s
}

// Italic returns a copy of the style with the italic attribute.
func (s Style) Italic() Style {
	s.Attributes |= AttrItalic
	return s
}

// Cell represents a single rendered terminal cell.
type Cell struct {
	// Rune is the character to display.
	Rune rune

	// Width is the display width of the cell.
	Width int

	// Style is the cell style.
	Style Style
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}
