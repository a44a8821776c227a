package editor

import (
	"fmt"
	"regexp"
	"strings"
)

// strReplace performs literal or regex replacement with the
// single-match-by-default policy: zero matches is an error, multiple
// matches require allow_multi. The file is only written after the match
// count has been accepted.
func (e *Engine) strReplace(path, oldStr, newStr string, allowMulti, usePattern bool) (string, error) {
	content, err := e.readFile(path)
	if err != nil {
		return "", err
	}

	var (
		newContent string
		count      int
		firstMatch int
	)
	if usePattern {
		re, compileErr := regexp.Compile(oldStr)
		if compileErr != nil {
			return "", errInvalidPattern(compileErr.Error())
		}
		locs := re.FindAllStringIndex(content, -1)
		if len(locs) == 0 {
			return "", errNoMatch(path,
				"No replacement was performed, regex pattern `%s` did not match anything in %s", oldStr, path)
		}
		if len(locs) > 1 && !allowMulti {
			return "", errAmbiguousMatch(path, len(locs),
				"Multiple occurrences (%d) matching regex `%s` found. Use allow_multi=true to replace all occurrences.",
				len(locs), oldStr)
		}
		newContent = re.ReplaceAllString(content, newStr)
		count = len(locs)
		firstMatch = locs[0][0]
	} else {
		count = countMatches(content, oldStr)
		if count == 0 {
			return "", errNoMatch(path,
				"No replacement was performed, old_str `%s` did not appear verbatim in %s", oldStr, path)
		}
		if count > 1 && !allowMulti {
			return "", errAmbiguousMatch(path, count,
				"Multiple occurrences (%d) of old_str `%s` found. Use allow_multi=true to replace all occurrences.",
				count, oldStr)
		}
		newContent = strings.ReplaceAll(content, oldStr, newStr)
		firstMatch = strings.Index(content, oldStr)
	}

	e.snapshot(path, content)
	if err := e.writeFile(path, newContent); err != nil {
		return "", err
	}

	// The snippet is anchored at the line of the first match, located in the
	// pre-edit content, rendered over the post-edit content.
	matchLine := strings.Count(content[:firstMatch], "\n") + 1
	snippet := e.renderSnippet(newContent, matchLine, strings.Count(newStr, "\n"))

	var msg string
	switch {
	case count > 1 && usePattern:
		msg = fmt.Sprintf("The file %s has been edited. Made %d replacements matching regex `%s`.\nHere's the result of running `cat -n` on a snippet of the first replacement:\n%s\nReview the changes and make sure they are as expected. Edit the file again if necessary.",
			path, count, oldStr, snippet)
	case count > 1:
		msg = fmt.Sprintf("The file %s has been edited. Made %d replacements of \"%s\".\nHere's the result of running `cat -n` on a snippet of the first replacement:\n%s\nReview the changes and make sure they are as expected. Edit the file again if necessary.",
			path, count, oldStr, snippet)
	default:
		msg = fmt.Sprintf("The file %s has been edited.\nHere's the result of running `cat -n` on a snippet:\n%s\nReview the changes and make sure they are as expected. Edit the file again if necessary.",
			path, snippet)
	}
	return e.maybeDiff(msg, path, content, newContent), nil
}

// countMatches counts non-overlapping occurrences of search in content.
// The empty string matches at every position, including both ends.
func countMatches(content, search string) int {
	if search == "" {
		return len(content) + 1
	}
	count, pos := 0, 0
	for {
		idx := strings.Index(content[pos:], search)
		if idx == -1 {
			break
		}
		count++
		pos += idx + len(search)
	}
	return count
}
