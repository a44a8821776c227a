package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Editor.MaxFileSizeKB != 4096 {
			t.Errorf("MaxFileSizeKB = %d, want 4096", cfg.Editor.MaxFileSizeKB)
		}
		if cfg.Editor.SnippetContextLines != 4 {
			t.Errorf("SnippetContextLines = %d, want 4", cfg.Editor.SnippetContextLines)
		}
		if cfg.View.DefaultMaxDepth != 1 {
			t.Errorf("DefaultMaxDepth = %d, want 1", cfg.View.DefaultMaxDepth)
		}
		if cfg.History.Enabled {
			t.Error("History.Enabled = true, want false")
		}
		if cfg.History.MaxSnapshots != 50 {
			t.Errorf("MaxSnapshots = %d, want 50", cfg.History.MaxSnapshots)
		}
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		data := `editor:
  max_file_size_kb: 128
  include_diff: true
view:
  default_max_depth: 3
history:
  enabled: true
log:
  file: /tmp/editor.log
`
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Editor.MaxFileSizeKB != 128 {
			t.Errorf("MaxFileSizeKB = %d, want 128", cfg.Editor.MaxFileSizeKB)
		}
		if !cfg.Editor.IncludeDiff {
			t.Error("IncludeDiff = false, want true")
		}
		if cfg.View.DefaultMaxDepth != 3 {
			t.Errorf("DefaultMaxDepth = %d, want 3", cfg.View.DefaultMaxDepth)
		}
		if !cfg.History.Enabled {
			t.Error("History.Enabled = false, want true")
		}
		if cfg.Log.File != "/tmp/editor.log" {
			t.Errorf("Log.File = %q", cfg.Log.File)
		}
		// Unset fields still get defaults.
		if cfg.Editor.SnippetContextLines != 4 {
			t.Errorf("SnippetContextLines = %d, want 4", cfg.Editor.SnippetContextLines)
		}
	})

	t.Run("invalid yaml rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("editor: [not a map"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected parse error")
		}
	})
}
