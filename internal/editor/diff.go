package editor

import (
	"github.com/pmezard/go-difflib/difflib"
)

// unifiedDiff renders a unified diff between two versions of a file.
func unifiedDiff(oldContent, newContent, filename string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(oldContent),
		B:        difflib.SplitLines(newContent),
		FromFile: filename,
		ToFile:   filename,
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}
