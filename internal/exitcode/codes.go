// Package exitcode defines named exit codes for the can-exit CLI.
//
// Scripts can branch on the verdict without parsing output: 0 means the goal
// is reachable and 2 means it is not.
package exitcode

const (
	Reachable   = 0   // A path connects the start and goal corners
	Error       = 1   // Invalid args, unreadable file, misconfiguration
	Unreachable = 2   // No path exists
	InvalidMaze = 3   // The maze is empty, ragged, or has a blocked corner
	Interrupted = 130 // SIGINT/SIGTERM received or the user quit
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Reachable:
		return "Reachable"
	case Error:
		return "Error"
	case Unreachable:
		return "Unreachable"
	case InvalidMaze:
		return "InvalidMaze"
	case Interrupted:
		return "Interrupted"
	default:
		return "unknown"
	}
}
