package editor

import (
	"fmt"
	"os"
	"path/filepath"
)

// create writes file_text verbatim, creating missing parent directories.
// The path validator has already confirmed the target does not exist.
func (e *Engine) create(path, fileText string) (string, error) {
	maxBytes := int64(e.cfg.Editor.MaxFileSizeKB) * 1024
	if maxBytes > 0 && int64(len(fileText)) > maxBytes {
		return "", errFileTooLarge(path, len(fileText)/1024, e.cfg.Editor.MaxFileSizeKB)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errIO(err)
	}
	if err := os.WriteFile(path, []byte(fileText), 0644); err != nil {
		return "", errIO(err)
	}
	return fmt.Sprintf("File created successfully at: %s", path), nil
}
