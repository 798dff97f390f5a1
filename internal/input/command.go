// Package input translates what the player types into game commands.
package input

import (
	"strings"

	"github.com/samdwyer/dungeonwalk/internal/world"
)

// Command is a token the game loop understands.
type Command string

const (
	Unknown      Command = "unknown"
	Quit         Command = "player_quit"
	Up           Command = Command(world.Up)
	Down         Command = Command(world.Down)
	Left         Command = Command(world.Left)
	Right        Command = Command(world.Right)
	ShowBackpack Command = "show_backpack"
)

const (
	// Prompt is shown when waiting for a typed command.
	Prompt = "> "
	// NotUnderstood is shown when input does not map to a command.
	NotUnderstood = "I don't understand what you mean"
)

// keymap holds the single-letter scheme, lower case.
var keymap = map[string]Command{
	"w": Up,
	"s": Down,
	"a": Left,
	"d": Right,
	"b": ShowBackpack,
	"q": Quit,
}

// Translate maps raw player input to a command, ignoring case.
// Anything that is not one of the known letters is Unknown.
func Translate(raw string) Command {
	if cmd, ok := keymap[strings.ToLower(raw)]; ok {
		return cmd
	}
	return Unknown
}

// Direction returns the movement direction for the command.
// ok is false for commands that do not move the player.
func (c Command) Direction() (world.Direction, bool) {
	switch c {
	case Up, Down, Left, Right:
		return world.Direction(c), true
	default:
		return "", false
	}
}

// String returns the command token.
func (c Command) String() string {
	return string(c)
}
