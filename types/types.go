// Package types provides ready-made flag values for generated commands.
package types

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Counter is a flag value incremented each time the flag appears on the
// command line: `-vvv` gives 3. An explicit count (`--verbose=2`) replaces
// the current one, and `--verbose=false` resets it.
type Counter int

// Set implements the flag value interface.
func (c *Counter) Set(val string) error {
	switch val {
	case "", "true":
		*c++
		return nil
	case "false":
		*c = 0
		return nil
	}

	parsed, err := strconv.Atoi(val)
	if err != nil || parsed < 0 {
		return fmt.Errorf("invalid value for counter: %q", val)
	}

	*c = Counter(parsed)

	return nil
}

// IsBoolFlag returns true, because a counter is given without value.
func (c *Counter) IsBoolFlag() bool { return true }

func (c *Counter) String() string { return strconv.Itoa(int(*c)) }

// Type implements the flag value interface.
func (c *Counter) Type() string { return "count" }

// LogLevel lowers base by one level per count, down to slog.LevelDebug:
// from warn, -v gives info and -vv gives debug.
func (c Counter) LogLevel(base slog.Level) slog.Level {
	level := base - slog.Level(4*int(c))
	if level < slog.LevelDebug {
		return slog.LevelDebug
	}

	return level
}
