package model

import "strings"

// Command is an abstract player input
type Command string

const (
	CommandMoveLeft        Command = "move_left"
	CommandMoveRight       Command = "move_right"
	CommandSoftDrop        Command = "soft_drop"
	CommandRotateClockwise Command = "rotate_clockwise"
	CommandRestart         Command = "restart"
)

// AllCommands lists every command the engine accepts
var AllCommands = []Command{
	CommandMoveLeft,
	CommandMoveRight,
	CommandSoftDrop,
	CommandRotateClockwise,
	CommandRestart,
}

var commandAliases = map[string]Command{
	"left":   CommandMoveLeft,
	"l":      CommandMoveLeft,
	"right":  CommandMoveRight,
	"r":      CommandMoveRight,
	"down":   CommandSoftDrop,
	"drop":   CommandSoftDrop,
	"d":      CommandSoftDrop,
	"rotate": CommandRotateClockwise,
	"rot":    CommandRotateClockwise,
	"u":      CommandRotateClockwise,
}

// Keys an input collaborator binds to commands
var keyCommands = map[string]Command{
	"ArrowLeft":  CommandMoveLeft,
	"ArrowRight": CommandMoveRight,
	"ArrowDown":  CommandSoftDrop,
	"ArrowUp":    CommandRotateClockwise,
	"Enter":      CommandRestart,
}

// ParseCommand accepts a command name ("move_left"), a short alias ("left")
// or a key name ("ArrowLeft"). Matching is case-insensitive.
func ParseCommand(s string) (Command, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, cmd := range AllCommands {
		if string(cmd) == name {
			return cmd, nil
		}
	}
	if cmd, ok := commandAliases[name]; ok {
		return cmd, nil
	}
	for key, cmd := range keyCommands {
		if strings.ToLower(key) == name {
			return cmd, nil
		}
	}
	return "", ErrUnknownCommand
}

// CommandForKey maps a key name to its command
func CommandForKey(key string) (Command, error) {
	cmd, ok := keyCommands[key]
	if !ok {
		return "", ErrUnknownKey
	}
	return cmd, nil
}
