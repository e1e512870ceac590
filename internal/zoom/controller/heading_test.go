package controller

import "testing"

func TestHeadingText(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"h1", "# Title", "Title"},
		{"h3", "### Deep Section", "Deep Section"},
		{"dash bullet", "- item one", "item one"},
		{"star bullet", "* item two", "item two"},
		{"indented bullet", "    - nested item", "nested item"},
		{"plain text", "just a line", "just a line"},
		{"hash without space", "#hashtag", "#hashtag"},
		{"trailing space", "# Title  ", "Title"},
		{"empty", "", ""},
		{"bullet only", "- ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := headingText(tt.line); got != tt.want {
				t.Errorf("headingText(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestDefaultLabel(t *testing.T) {
	if got := DefaultLabel("notes.md", "Title"); got != "notes.md > Title" {
		t.Errorf("DefaultLabel = %q", got)
	}
	if got := DefaultLabel("notes.md", ""); got != "notes.md" {
		t.Errorf("DefaultLabel with empty heading = %q", got)
	}
}
