package game

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/samdwyer/dungeonwalk/internal/gamedata"
)

// Config describes everything needed to set up a game.
// New builds a game from it without touching any global state.
type Config struct {
	Player PlayerConfig
	Levels []LevelConfig // The first level is where the game starts

	// Seed for the flavor text generator. Used for reproducible runs.
	// A seed of 0 means a random seed will be generated.
	Seed int64
}

// PlayerConfig describes the player at the start of the game.
type PlayerConfig struct {
	Name          string   // Defaults to entity.DefaultPlayerName
	HP            int      // Defaults to entity.DefaultPlayerHP when <= 0
	BackpackSlots int      // Defaults to inventory.DefaultSlots when <= 0
	Items         []string // Names of the items packed in the backpack, in order
}

// LevelConfig describes one map.
type LevelConfig struct {
	Name   string
	Layout []string
	// Legend maps a layout character to a kind: gamedata.KindWall,
	// gamedata.KindVoid or gamedata.KindPlayer.
	Legend map[rune]string
}

// ErrInvalidLegendKey is returned when a legend key is not exactly one character.
var ErrInvalidLegendKey = errors.New("legend key must be a single character")

// DefaultConfig returns the built-in game: one level and a backpack holding
// a small red potion and snake oil.
func DefaultConfig() (Config, error) {
	world, err := gamedata.LoadWorld()
	if err != nil {
		return Config{}, err
	}
	return ConfigFromWorld(world)
}

// ConfigFromWorld converts loaded game data into a Config.
func ConfigFromWorld(world gamedata.WorldDef) (Config, error) {
	cfg := Config{
		Player: PlayerConfig{
			Name:          world.Player.Name,
			HP:            world.Player.HP,
			BackpackSlots: world.Player.BackpackSlots,
			Items:         world.Player.Items,
		},
		Levels: make([]LevelConfig, 0, len(world.Levels)),
	}

	for _, def := range world.Levels {
		legend := make(map[rune]string, len(def.Legend))
		for key, kind := range def.Legend {
			r, size := utf8.DecodeRuneInString(key)
			if key == "" || size != len(key) {
				return Config{}, fmt.Errorf("level %q: %q: %w", def.Name, key, ErrInvalidLegendKey)
			}
			legend[r] = kind
		}
		cfg.Levels = append(cfg.Levels, LevelConfig{
			Name:   def.Name,
			Layout: def.Layout,
			Legend: legend,
		})
	}

	return cfg, nil
}
