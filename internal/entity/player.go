package entity

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/samdwyer/dungeonwalk/internal/inventory"
)

const (
	// DefaultPlayerName is the name given to a new player.
	DefaultPlayerName = "player"
	// DefaultPlayerHP is a new player's starting health.
	DefaultPlayerHP = 10
	// BackpackName is the name of the container every player carries.
	BackpackName = "backpack"
)

// Player is the entity controlled by the person at the keyboard.
// Players are compared by pointer: two players with equal stats are still different players.
type Player struct {
	ID       uuid.UUID // Used for logs and traces only
	Name     string
	HP       int // No upper bound is enforced
	Backpack *inventory.Container
}

// NewPlayer creates a player with default health and an empty backpack.
func NewPlayer(name string) *Player {
	return &Player{
		ID:       uuid.New(),
		Name:     name,
		HP:       DefaultPlayerHP,
		Backpack: inventory.NewContainer(BackpackName, inventory.DefaultSlots),
	}
}

// Glyph returns '*'.
func (p *Player) Glyph() rune { return '*' }

// Passable returns true. Moving onto a player's cell is not blocked.
func (p *Player) Passable() bool { return true }

// Noun returns the player's name.
func (p *Player) Noun() string { return p.Name }

func (p *Player) entity() {}

// DisplayStats writes the player's current health as a single line.
func (p *Player) DisplayStats(w io.Writer) {
	fmt.Fprintf(w, "HP: %d\n", p.HP)
}
