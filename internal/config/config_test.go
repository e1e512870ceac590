package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultEnablesFolding(t *testing.T) {
	c := Default()

	if !c.FoldHeadingsEnabled() || !c.FoldIndentEnabled() {
		t.Error("defaults should enable both fold capabilities")
	}
	if c.UI().BreadcrumbSeparator != " > " {
		t.Errorf("separator = %q, want %q", c.UI().BreadcrumbSeparator, " > ")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.FoldHeadingsEnabled() {
		t.Error("missing file should fall back to defaults")
	}
}

func TestLoadParsesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoomfold.toml")
	content := `
[fold]
headings = true
indent = false

[ui]
breadcrumb_max_width = 40
breadcrumb_separator = " :: "

[plugin]
breadcrumb_script = "crumbs.lua"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !c.FoldHeadingsEnabled() {
		t.Error("fold.headings should be enabled")
	}
	if c.FoldIndentEnabled() {
		t.Error("fold.indent should be disabled")
	}
	if got := c.UI().BreadcrumbMaxWidth; got != 40 {
		t.Errorf("breadcrumb_max_width = %d, want 40", got)
	}
	if got := c.UI().BreadcrumbSeparator; got != " :: " {
		t.Errorf("breadcrumb_separator = %q, want ' :: '", got)
	}
	if got := c.Plugin().BreadcrumbScript; got != "crumbs.lua" {
		t.Errorf("breadcrumb_script = %q, want crumbs.lua", got)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[fold\nheadings ="), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should fail on malformed TOML")
	}
}

func TestReloadSwapsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoomfold.toml")
	if err := os.WriteFile(path, []byte("[fold]\nheadings = true\nindent = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !c.FoldIndentEnabled() {
		t.Fatal("precondition: indent enabled")
	}

	if err := os.WriteFile(path, []byte("[fold]\nheadings = true\nindent = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := c.Reload(path); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	if c.FoldIndentEnabled() {
		t.Error("reload should pick up the new indent value")
	}
}
