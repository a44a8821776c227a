package editor

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kvit-s/kvit-editor/internal/config"
	"github.com/kvit-s/kvit-editor/internal/history"
	"github.com/kvit-s/kvit-editor/internal/logging"
)

// Engine executes editor commands. It holds no filesystem state between
// calls; the optional history store is the only cross-call state.
type Engine struct {
	cfg     *config.Config
	log     *logging.Logger
	history *history.Store
}

// NewEngine creates an engine. hist may be nil, in which case undo_edit
// reports that undo is not available in this deployment.
func NewEngine(cfg *config.Config, log *logging.Logger, hist *history.Store) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Engine{cfg: cfg, log: log, history: hist}
}

// Handle executes one request and always produces a result. Semantic
// failures surface as is_error results, never as process errors.
func (e *Engine) Handle(in *Input) Result {
	start := time.Now()
	content, err := e.dispatch(in)
	e.log.CommandExecuted(in.Command, in.Path, time.Since(start), err != nil)
	if err != nil {
		return errorResult(err)
	}
	return successResult(content)
}

func (e *Engine) dispatch(in *Input) (string, error) {
	cmd, err := ParseCommand(in.Command)
	if err != nil {
		return "", err
	}
	if err := e.validatePath(in.Path, cmd); err != nil {
		return "", err
	}

	switch cmd {
	case CommandView:
		return e.view(in)
	case CommandCreate:
		if in.FileText == nil {
			return "", errMissingField("file_text", cmd)
		}
		return e.create(in.Path, *in.FileText)
	case CommandStrReplace:
		if in.OldStr == nil {
			return "", errMissingField("old_str", cmd)
		}
		newStr := ""
		if in.NewStr != nil {
			newStr = *in.NewStr
		}
		return e.strReplace(in.Path, *in.OldStr, newStr, in.AllowMulti, in.patternMode())
	case CommandInsert:
		if in.InsertLine == nil {
			return "", errMissingField("insert_line", cmd)
		}
		if in.NewStr == nil {
			return "", errMissingField("new_str", cmd)
		}
		return e.insert(in.Path, *in.InsertLine, *in.NewStr)
	case CommandDelete:
		if in.DeleteRange == nil {
			return "", errMissingField("delete_range", cmd)
		}
		return e.delete(in.Path, in.DeleteRange)
	case CommandUndoEdit:
		return e.undoEdit(in.Path)
	}
	return "", errUnknownCommand(in.Command)
}

// validatePath enforces the per-command path preconditions. It is a pure
// predicate over filesystem metadata; the read-validate-write sequence is
// not isolated against concurrent external writers.
func (e *Engine) validatePath(path string, cmd Command) error {
	if !filepath.IsAbs(path) {
		return errNotAbsolute(path)
	}

	info, err := os.Stat(path)

	if cmd == CommandCreate {
		if err == nil {
			return errFileExists(path)
		}
		if os.IsNotExist(err) {
			return nil
		}
		return errIO(err)
	}

	if err != nil {
		if os.IsNotExist(err) {
			return errPathNotFound(path)
		}
		return errIO(err)
	}
	if info.IsDir() && cmd != CommandView {
		return errDirectoryNotAllowed(path)
	}
	return nil
}

// readFile loads the whole file, enforcing the configured size limit.
func (e *Engine) readFile(path string) (string, error) {
	maxBytes := int64(e.cfg.Editor.MaxFileSizeKB) * 1024
	if info, err := os.Stat(path); err == nil && maxBytes > 0 && info.Size() > maxBytes {
		return "", errFileTooLarge(path, int(info.Size()/1024), e.cfg.Editor.MaxFileSizeKB)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errIO(err)
	}
	return string(data), nil
}

// writeFile persists content atomically (temp file in the same directory,
// then rename) so a failed write never leaves the target half-written.
// Existing file permissions are preserved.
func (e *Engine) writeFile(path, content string) error {
	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, ".edit-*.tmp")
	if err != nil {
		return errIO(err)
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if _, err := tempFile.WriteString(content); err != nil {
		tempFile.Close()
		return errIO(err)
	}
	if err := tempFile.Close(); err != nil {
		return errIO(err)
	}

	if info, statErr := os.Stat(path); statErr == nil {
		_ = os.Chmod(tempPath, info.Mode())
	} else {
		_ = os.Chmod(tempPath, 0644)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return errIO(err)
	}
	return nil
}

// snapshot records the prior content of an existing file before a mutating
// write. With no store configured this is a no-op and undo_edit reports
// unavailable.
func (e *Engine) snapshot(path, content string) {
	if e.history != nil {
		e.history.Push(path, content)
	}
}

// splitLines breaks content into the lines the editor addresses. A trailing
// newline does not produce an empty final line, and empty content has no
// lines.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// joinLines is the inverse write form: lines joined with a single trailing
// newline. Mutating operations normalize files this way.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}

// maybeDiff appends a unified diff to msg when configured.
func (e *Engine) maybeDiff(msg, path, oldContent, newContent string) string {
	if !e.cfg.Editor.IncludeDiff {
		return msg
	}
	diff, err := unifiedDiff(oldContent, newContent, path)
	if err != nil || diff == "" {
		return msg
	}
	return msg + "\n\nDiff:\n" + diff
}
