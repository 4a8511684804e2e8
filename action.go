package palet

// ActionType identifies what a dispatcher should do with an Action.
type ActionType string

// ActionType constants.
const (
	ActionSpawn     ActionType = "spawn"
	ActionClipboard ActionType = "clipboard"
	ActionOpenURL   ActionType = "open_url"
)

// Action describes how to execute a result. Executing it is left to the
// caller.
type Action struct {
	Type ActionType

	// Command is the shell command line for ActionSpawn.
	Command string
	// Terminal reports whether Command must run inside a terminal emulator.
	Terminal bool

	// Text is copied for ActionClipboard.
	Text string

	// URL is opened for ActionOpenURL.
	URL string
}
