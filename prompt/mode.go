package prompt

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// NonInteractiveEnv lists the environment variables which, when set to a
// truthy value, disable prompting altogether.
var NonInteractiveEnv = []string{"NO_INTERACTIVE", "CI"}

// fder is satisfied by *os.File.
type fder interface {
	Fd() uintptr
}

// IsInteractive reports whether the user can be prompted on in.
// It is false if any of NonInteractiveEnv is truthy, or if in is
// not a terminal.
func IsInteractive(in fder) bool {
	for _, name := range NonInteractiveEnv {
		if isTruthy(os.Getenv(name)) {
			return false
		}
	}

	return in != nil && isTerminal(in.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func isTruthy(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// Stdin reports whether the process standard input is interactive.
func Stdin() bool {
	return IsInteractive(os.Stdin)
}
