package editor

import (
	"fmt"
	"strings"
)

// renderSnippet produces the numbered excerpt returned after a mutating
// operation, in `cat -n` format. anchorLine is 1-based in the post-edit
// content; the window starts snippet_context_lines above it and spans twice
// that many lines plus one per extra line the edit introduced.
func (e *Engine) renderSnippet(content string, anchorLine, extraLines int) string {
	lines := splitLines(content)

	start := anchorLine - e.cfg.Editor.SnippetContextLines
	if start < 1 {
		start = 1
	}
	end := start + 2*e.cfg.Editor.SnippetContextLines + extraLines - 1
	if end > len(lines) {
		end = len(lines)
	}

	var sb strings.Builder
	for i := start; i <= end; i++ {
		fmt.Fprintf(&sb, "%6d\t%s\n", i, lines[i-1])
	}
	return sb.String()
}
