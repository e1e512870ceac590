package core

import "github.com/rivo/uniseg"

// StringWidth returns the number of terminal columns the string occupies.
// Grapheme clusters are measured as units so emoji and combining marks
// count once.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// TruncateToWidth shortens s so it fits in at most width columns,
// appending ellipsis when anything was cut. Truncation happens on
// grapheme cluster boundaries.
func TruncateToWidth(s string, width int, ellipsis string) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}
	budget := width - uniseg.StringWidth(ellipsis)
	if budget < 0 {
		budget = 0
	}
	var out []byte
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > budget {
			break
		}
		out = append(out, g.Bytes()...)
		used += w
	}
	return string(out) + ellipsis
}
