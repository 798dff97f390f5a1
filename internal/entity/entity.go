// Package entity provides the things that occupy dungeon cells: walls, empty space and the player.
package entity

// Entity is anything that occupies a single grid cell.
// The set of variants is closed; new kinds are added in this package.
type Entity interface {
	// Glyph returns the display character.
	Glyph() rune
	// Passable returns true if another entity may step onto this cell.
	Passable() bool
	// Noun describes the entity in messages (e.g., "a wall").
	Noun() string

	entity()
}

// Wall is an impassable tile. It holds no state, so every wall is interchangeable.
type Wall struct{}

// Glyph returns '#'.
func (Wall) Glyph() rune { return '#' }

// Passable returns false.
func (Wall) Passable() bool { return false }

// Noun returns "a wall".
func (Wall) Noun() string { return "a wall" }

func (Wall) entity() {}

// Void is empty, walkable space. Like Wall it holds no state.
type Void struct{}

// Glyph returns ' '.
func (Void) Glyph() rune { return ' ' }

// Passable returns true.
func (Void) Passable() bool { return true }

// Noun returns "nothing".
func (Void) Noun() string { return "nothing" }

func (Void) entity() {}

var (
	_ Entity = Wall{}
	_ Entity = Void{}
	_ Entity = (*Player)(nil)
)
