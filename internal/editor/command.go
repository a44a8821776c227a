package editor

// Command identifies one of the six editor operations.
type Command string

const (
	CommandView       Command = "view"
	CommandCreate     Command = "create"
	CommandStrReplace Command = "str_replace"
	CommandInsert     Command = "insert"
	CommandDelete     Command = "delete"
	CommandUndoEdit   Command = "undo_edit"
)

// ParseCommand resolves a command name. Matching is exact and
// case-sensitive; anything else is an UnknownCommand error whose message
// enumerates the allowed set.
func ParseCommand(name string) (Command, error) {
	switch cmd := Command(name); cmd {
	case CommandView, CommandCreate, CommandStrReplace, CommandInsert, CommandDelete, CommandUndoEdit:
		return cmd, nil
	}
	return "", errUnknownCommand(name)
}
