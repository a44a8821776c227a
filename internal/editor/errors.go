package editor

import "fmt"

// Kind classifies editor errors. Payload fields on Error stay structured so
// callers and tests can branch on them; the text a client sees is rendered
// only in Error().
type Kind int

const (
	KindUnknownCommand Kind = iota
	KindNotAbsolutePath
	KindPathNotFound
	KindFileAlreadyExists
	KindDirectoryNotAllowed
	KindInvalidRange
	KindViewRangeForDirectory
	KindNoMatch
	KindAmbiguousMatch
	KindInvalidPattern
	KindMissingField
	KindUndoUnavailable
	KindFileTooLarge
	KindIO
)

// Error is the editor's structured error type. Every request failure is one
// of these; the engine never returns a bare error to the caller.
type Error struct {
	Kind    Kind
	Path    string
	Command string // the offending or resolved command name
	Field   string // missing request field
	Detail  string // pre-rendered message for kinds with variable shape
	Count   int    // occurrence count for AmbiguousMatch
	Err     error  // wrapped cause for KindIO
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnknownCommand:
		return fmt.Sprintf("Unrecognized command %s. The allowed commands for the str_replace_editor tool are: view, create, str_replace, insert, delete, undo_edit", e.Command)
	case KindNotAbsolutePath:
		return fmt.Sprintf("The path %s is not an absolute path, it should start with `/`. Maybe you meant /%s?", e.Path, e.Path)
	case KindPathNotFound:
		return fmt.Sprintf("The path %s does not exist. Please provide a valid path.", e.Path)
	case KindFileAlreadyExists:
		return fmt.Sprintf("File already exists at: %s. Cannot overwrite files using command `create`.", e.Path)
	case KindDirectoryNotAllowed:
		return fmt.Sprintf("The path %s is a directory and only the `view` command can be used on directories", e.Path)
	case KindViewRangeForDirectory:
		return "The `view_range` parameter is not allowed when `path` points to a directory."
	case KindMissingField:
		return fmt.Sprintf("Parameter `%s` is required for command: %s", e.Field, e.Command)
	case KindFileTooLarge:
		return e.Detail
	case KindIO:
		return fmt.Sprintf("IO error: %v", e.Err)
	default:
		// InvalidRange, NoMatch, AmbiguousMatch, InvalidPattern and
		// UndoUnavailable carry their full message in Detail.
		return e.Detail
	}
}

func (e *Error) Unwrap() error { return e.Err }

func errUnknownCommand(name string) *Error {
	return &Error{Kind: KindUnknownCommand, Command: name}
}

func errNotAbsolute(path string) *Error {
	return &Error{Kind: KindNotAbsolutePath, Path: path}
}

func errPathNotFound(path string) *Error {
	return &Error{Kind: KindPathNotFound, Path: path}
}

func errFileExists(path string) *Error {
	return &Error{Kind: KindFileAlreadyExists, Path: path}
}

func errDirectoryNotAllowed(path string) *Error {
	return &Error{Kind: KindDirectoryNotAllowed, Path: path}
}

func errViewRangeForDirectory(path string) *Error {
	return &Error{Kind: KindViewRangeForDirectory, Path: path}
}

func errMissingField(field string, cmd Command) *Error {
	return &Error{Kind: KindMissingField, Field: field, Command: string(cmd)}
}

func errInvalidRange(path, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidRange, Path: path, Detail: fmt.Sprintf(format, args...)}
}

func errNoMatch(path, format string, args ...any) *Error {
	return &Error{Kind: KindNoMatch, Path: path, Detail: fmt.Sprintf(format, args...)}
}

func errAmbiguousMatch(path string, count int, format string, args ...any) *Error {
	return &Error{Kind: KindAmbiguousMatch, Path: path, Count: count, Detail: fmt.Sprintf(format, args...)}
}

func errInvalidPattern(detail string) *Error {
	return &Error{Kind: KindInvalidPattern, Detail: fmt.Sprintf("Invalid regex pattern: %s", detail)}
}

func errUndoUnavailable(detail string) *Error {
	return &Error{Kind: KindUndoUnavailable, Detail: detail}
}

func errFileTooLarge(path string, sizeKB, maxKB int) *Error {
	return &Error{
		Kind:   KindFileTooLarge,
		Path:   path,
		Detail: fmt.Sprintf("File %s is too large (%d KB). Maximum allowed size is %d KB.", path, sizeKB, maxKB),
	}
}

func errIO(err error) *Error {
	return &Error{Kind: KindIO, Err: err}
}
