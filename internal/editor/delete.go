package editor

import (
	"fmt"
)

// delete removes a 1-based inclusive line range. An end beyond the final
// line is clamped rather than rejected.
func (e *Engine) delete(path string, deleteRange []int) (string, error) {
	if len(deleteRange) != 2 {
		return "", errInvalidRange(path, "Invalid `delete_range`. It should be a list of two integers.")
	}

	content, err := e.readFile(path)
	if err != nil {
		return "", err
	}

	lines := splitLines(content)
	start, end := deleteRange[0], deleteRange[1]
	if start < 1 || end < 1 || start > end || start > len(lines) {
		return "", errInvalidRange(path,
			"Invalid `delete_range`: [%d, %d]. Line numbers should be within the range of lines of the file: [1, %d], and the first element should not exceed the second.",
			start, end, len(lines))
	}
	endIdx := end
	if endIdx > len(lines) {
		endIdx = len(lines)
	}

	newLines := make([]string, 0, len(lines)-(endIdx-start+1))
	newLines = append(newLines, lines[:start-1]...)
	newLines = append(newLines, lines[endIdx:]...)
	newContent := joinLines(newLines)

	e.snapshot(path, content)
	if err := e.writeFile(path, newContent); err != nil {
		return "", err
	}

	snippet := e.renderSnippet(newContent, start, 0)
	msg := fmt.Sprintf("The file %s has been edited. Deleted lines %d-%d.\nHere's the result of running `cat -n` on a snippet around the edit:\n%s\nReview the changes and make sure they are as expected. Edit the file again if necessary.",
		path, start, end, snippet)
	return e.maybeDiff(msg, path, content, newContent), nil
}
