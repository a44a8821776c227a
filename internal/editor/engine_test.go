package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kvit-s/kvit-editor/internal/config"
	"github.com/kvit-s/kvit-editor/internal/history"
	"github.com/kvit-s/kvit-editor/internal/logging"
)

// newTestEngine creates an engine with defaults and no history store
func newTestEngine() *Engine {
	return NewEngine(config.Default(), logging.Nop(), nil)
}

// newTestEngineWithHistory creates an engine backed by a snapshot store
func newTestEngineWithHistory() (*Engine, *history.Store) {
	store := history.NewStore(50)
	return NewEngine(config.Default(), logging.Nop(), store), store
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestParseCommand(t *testing.T) {
	t.Run("known commands", func(t *testing.T) {
		for _, name := range []string{"view", "create", "str_replace", "insert", "delete", "undo_edit"} {
			cmd, err := ParseCommand(name)
			if err != nil {
				t.Errorf("ParseCommand(%q) error = %v, want nil", name, err)
			}
			if string(cmd) != name {
				t.Errorf("ParseCommand(%q) = %q", name, cmd)
			}
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		_, err := ParseCommand("replace")
		if err == nil {
			t.Fatal("expected error for unknown command")
		}
		want := "Unrecognized command replace. The allowed commands for the str_replace_editor tool are: view, create, str_replace, insert, delete, undo_edit"
		if err.Error() != want {
			t.Errorf("error = %q, want %q", err.Error(), want)
		}
	})

	t.Run("case sensitive", func(t *testing.T) {
		if _, err := ParseCommand("View"); err == nil {
			t.Error("expected error for capitalized command")
		}
	})
}

func TestEngine_ValidatePath(t *testing.T) {
	tmpDir := t.TempDir()
	e := newTestEngine()

	t.Run("relative path rejected", func(t *testing.T) {
		result := e.Handle(&Input{Command: "view", Path: "foo/bar.txt"})
		if !result.IsError {
			t.Fatal("expected error result")
		}
		want := "The path foo/bar.txt is not an absolute path, it should start with `/`. Maybe you meant /foo/bar.txt?"
		if result.Content != want {
			t.Errorf("content = %q, want %q", result.Content, want)
		}
	})

	t.Run("missing path rejected", func(t *testing.T) {
		missing := filepath.Join(tmpDir, "missing.txt")
		result := e.Handle(&Input{Command: "view", Path: missing})
		if !result.IsError {
			t.Fatal("expected error result")
		}
		if !strings.Contains(result.Content, "does not exist") {
			t.Errorf("content = %q, want a does-not-exist message", result.Content)
		}
	})

	t.Run("create on existing path rejected", func(t *testing.T) {
		path := writeTestFile(t, tmpDir, "exists.txt", "x\n")
		result := e.Handle(&Input{Command: "create", Path: path, FileText: strPtr("y\n")})
		if !result.IsError {
			t.Fatal("expected error result")
		}
		if !strings.Contains(result.Content, "Cannot overwrite files using command `create`") {
			t.Errorf("content = %q", result.Content)
		}
		if got := readTestFile(t, path); got != "x\n" {
			t.Errorf("file was modified: %q", got)
		}
	})

	t.Run("non-view command on directory rejected", func(t *testing.T) {
		for _, in := range []*Input{
			{Command: "str_replace", Path: tmpDir, OldStr: strPtr("a"), NewStr: strPtr("b")},
			{Command: "insert", Path: tmpDir, InsertLine: intPtr(0), NewStr: strPtr("x")},
			{Command: "delete", Path: tmpDir, DeleteRange: []int{1, 1}},
		} {
			result := e.Handle(in)
			if !result.IsError {
				t.Fatalf("%s on directory: expected error", in.Command)
			}
			if !strings.Contains(result.Content, "only the `view` command can be used on directories") {
				t.Errorf("%s content = %q", in.Command, result.Content)
			}
		}
	})
}

func TestEngine_MissingFields(t *testing.T) {
	tmpDir := t.TempDir()
	e := newTestEngine()
	path := writeTestFile(t, tmpDir, "f.txt", "one\ntwo\n")

	tests := []struct {
		name string
		in   *Input
		want string
	}{
		{"create without file_text", &Input{Command: "create", Path: filepath.Join(tmpDir, "new.txt")},
			"Parameter `file_text` is required for command: create"},
		{"str_replace without old_str", &Input{Command: "str_replace", Path: path},
			"Parameter `old_str` is required for command: str_replace"},
		{"insert without insert_line", &Input{Command: "insert", Path: path, NewStr: strPtr("x")},
			"Parameter `insert_line` is required for command: insert"},
		{"insert without new_str", &Input{Command: "insert", Path: path, InsertLine: intPtr(1)},
			"Parameter `new_str` is required for command: insert"},
		{"delete without delete_range", &Input{Command: "delete", Path: path},
			"Parameter `delete_range` is required for command: delete"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.Handle(tt.in)
			if !result.IsError {
				t.Fatal("expected error result")
			}
			if result.Content != tt.want {
				t.Errorf("content = %q, want %q", result.Content, tt.want)
			}
		})
	}
}

func TestEngine_Create(t *testing.T) {
	tmpDir := t.TempDir()
	e := newTestEngine()

	t.Run("creates file verbatim", func(t *testing.T) {
		path := filepath.Join(tmpDir, "new.txt")
		result := e.Handle(&Input{Command: "create", Path: path, FileText: strPtr("hello\nworld\n")})
		if result.IsError {
			t.Fatalf("unexpected error: %s", result.Content)
		}
		want := "File created successfully at: " + path
		if result.Content != want {
			t.Errorf("content = %q, want %q", result.Content, want)
		}
		if got := readTestFile(t, path); got != "hello\nworld\n" {
			t.Errorf("file content = %q", got)
		}
	})

	t.Run("creates missing parents", func(t *testing.T) {
		path := filepath.Join(tmpDir, "a", "b", "c.txt")
		result := e.Handle(&Input{Command: "create", Path: path, FileText: strPtr("deep\n")})
		if result.IsError {
			t.Fatalf("unexpected error: %s", result.Content)
		}
		if got := readTestFile(t, path); got != "deep\n" {
			t.Errorf("file content = %q", got)
		}
	})

	t.Run("no trailing newline preserved", func(t *testing.T) {
		path := filepath.Join(tmpDir, "raw.txt")
		result := e.Handle(&Input{Command: "create", Path: path, FileText: strPtr("no newline")})
		if result.IsError {
			t.Fatalf("unexpected error: %s", result.Content)
		}
		if got := readTestFile(t, path); got != "no newline" {
			t.Errorf("file content = %q", got)
		}
	})
}

func TestEngine_FileSizeLimit(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := config.Default()
	cfg.Editor.MaxFileSizeKB = 1
	e := NewEngine(cfg, logging.Nop(), nil)

	big := strings.Repeat("a", 2048) + "\n"
	path := writeTestFile(t, tmpDir, "big.txt", big)

	t.Run("view rejects oversized file", func(t *testing.T) {
		result := e.Handle(&Input{Command: "view", Path: path})
		if !result.IsError {
			t.Fatal("expected error result")
		}
		if !strings.Contains(result.Content, "too large") {
			t.Errorf("content = %q", result.Content)
		}
	})

	t.Run("edit rejects oversized file without writing", func(t *testing.T) {
		result := e.Handle(&Input{Command: "str_replace", Path: path, OldStr: strPtr("aaa"), NewStr: strPtr("b")})
		if !result.IsError {
			t.Fatal("expected error result")
		}
		if got := readTestFile(t, path); got != big {
			t.Error("file was modified")
		}
	})

	t.Run("create rejects oversized file_text", func(t *testing.T) {
		text := strings.Repeat("b", 2048)
		result := e.Handle(&Input{Command: "create", Path: filepath.Join(tmpDir, "big2.txt"), FileText: &text})
		if !result.IsError {
			t.Fatal("expected error result")
		}
	})
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"single line no newline", "abc", 1},
		{"single line with newline", "abc\n", 1},
		{"three lines", "a\nb\nc\n", 3},
		{"blank line in middle", "a\n\nc\n", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitLines(tt.content); len(got) != tt.want {
				t.Errorf("splitLines(%q) has %d lines, want %d", tt.content, len(got), tt.want)
			}
		})
	}
}
