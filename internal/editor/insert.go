package editor

import (
	"fmt"
	"strings"
)

// insert splices new_str at a zero-based line position: 0 is before the
// first line, the line count is after the last. The rewritten file ends in
// exactly one trailing newline.
func (e *Engine) insert(path string, insertLine int, newStr string) (string, error) {
	content, err := e.readFile(path)
	if err != nil {
		return "", err
	}

	lines := splitLines(content)
	if insertLine < 0 || insertLine > len(lines) {
		return "", errInvalidRange(path,
			"Invalid `insert_line` parameter: %d. It should be within the range of lines of the file: [0, %d]",
			insertLine, len(lines))
	}

	newLines := make([]string, 0, len(lines)+1)
	newLines = append(newLines, lines[:insertLine]...)
	newLines = append(newLines, newStr)
	newLines = append(newLines, lines[insertLine:]...)
	newContent := joinLines(newLines)

	e.snapshot(path, content)
	if err := e.writeFile(path, newContent); err != nil {
		return "", err
	}

	snippet := e.renderSnippet(newContent, insertLine+1, strings.Count(newStr, "\n"))
	msg := fmt.Sprintf("The file %s has been edited.\nHere's the result of running `cat -n` on a snippet:\n%s\nReview the changes and make sure they are as expected. Edit the file again if necessary.",
		path, snippet)
	return e.maybeDiff(msg, path, content, newContent), nil
}
