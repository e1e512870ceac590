package controller

import "strings"

// headingText derives the breadcrumb heading from a line of text by
// stripping a leading heading marker (a '#' run plus whitespace) or a
// leading list-bullet marker ('-' or '*' plus whitespace).
func headingText(line string) string {
	trimmed := strings.TrimLeft(line, " \t")

	if strings.HasPrefix(trimmed, "#") {
		rest := strings.TrimLeft(trimmed, "#")
		if stripped, ok := strings.CutPrefix(rest, " "); ok {
			return strings.TrimSpace(stripped)
		}
		// A '#' run without a following space is not a heading marker.
		return strings.TrimSpace(trimmed)
	}

	for _, bullet := range []string{"- ", "* "} {
		if stripped, ok := strings.CutPrefix(trimmed, bullet); ok {
			return strings.TrimSpace(stripped)
		}
	}

	return strings.TrimSpace(trimmed)
}
