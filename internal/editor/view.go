package editor

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func (e *Engine) view(in *Input) (string, error) {
	info, err := os.Stat(in.Path)
	if err != nil {
		return "", errIO(err)
	}
	if info.IsDir() {
		if in.ViewRange != nil {
			return "", errViewRangeForDirectory(in.Path)
		}
		return e.viewDirectory(in.Path, in.MaxDepth)
	}
	return e.viewFile(in.Path, in.ViewRange)
}

// viewFile renders a file, either whole (trailing whitespace trimmed) or as
// a numbered line range.
func (e *Engine) viewFile(path string, viewRange []int) (string, error) {
	content, err := e.readFile(path)
	if err != nil {
		return "", err
	}
	if viewRange == nil {
		return strings.TrimRight(content, " \t\r\n"), nil
	}

	if len(viewRange) != 2 {
		return "", errInvalidRange(path, "Invalid `view_range`. It should be a list of two integers.")
	}
	lines := splitLines(content)
	start, end := viewRange[0], viewRange[1]
	if start < 1 || start > len(lines) {
		return "", errInvalidRange(path,
			"Invalid `view_range`: [%d, %d]. Its first element `%d` should be within the range of lines of the file: [1, %d]",
			start, end, start, len(lines))
	}
	if end != -1 {
		if end < start {
			return "", errInvalidRange(path,
				"Invalid `view_range`: [%d, %d]. Its second element `%d` should be larger or equal than its first `%d`",
				start, end, end, start)
		}
		if end > len(lines) {
			return "", errInvalidRange(path,
				"Invalid `view_range`: [%d, %d]. Its second element `%d` should be smaller than the number of lines in the file: `%d`",
				start, end, end, len(lines))
		}
	}

	endIdx := len(lines)
	if end != -1 {
		endIdx = end
	}
	var sb strings.Builder
	for i, line := range lines[start-1 : endIdx] {
		fmt.Fprintf(&sb, "%6d\t%s\n", start+i, line)
	}
	return fmt.Sprintf("Here's the result of running `cat -n` on %s:\n%s", path, sb.String()), nil
}

// viewDirectory lists entries up to maxDepth levels below root. Level 1 is
// the immediate children; a request value of 0 falls back to the configured
// default. Entries whose name starts with a dot are skipped along with
// their subtrees.
func (e *Engine) viewDirectory(root string, maxDepth int) (string, error) {
	if maxDepth <= 0 {
		maxDepth = e.cfg.View.DefaultMaxDepth
	}

	var entries []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		depth := strings.Count(rel, string(filepath.Separator)) + 1
		if depth > maxDepth {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		entries = append(entries, path)
		if d.IsDir() && depth == maxDepth {
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return "", errIO(err)
	}

	sort.Strings(entries)
	return fmt.Sprintf("Here's the files and directories up to %d levels deep in %s, excluding hidden items:\n%s\n",
		maxDepth, root, strings.Join(entries, "\n")), nil
}
