package editor

import "fmt"

// undoEdit restores the most recent snapshot for path. The one-shot CLI
// runs without a history store and reports a fixed unavailable message;
// embedders that keep the engine alive across requests inject a store.
func (e *Engine) undoEdit(path string) (string, error) {
	if e.history == nil {
		return "", errUndoUnavailable("The undo_edit command is not implemented in this CLI. Please use git for version control.")
	}

	content, ok := e.history.Pop(path)
	if !ok {
		return "", errUndoUnavailable(fmt.Sprintf("No edit history found for %s.", path))
	}
	if err := e.writeFile(path, content); err != nil {
		return "", err
	}
	return fmt.Sprintf("Last edit to %s undone successfully.", path), nil
}
