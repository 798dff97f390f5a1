package gamedata

import "errors"

// Legend kind tokens used in level files.
const (
	KindWall   = "wall"
	KindVoid   = "void"
	KindPlayer = "player"
)

// PlayerDef describes the player at the start of a game.
type PlayerDef struct {
	Name          string   `json:"name"`          // Display name
	HP            int      `json:"hp"`            // Starting health
	BackpackSlots int      `json:"backpackSlots"` // Backpack capacity
	Items         []string `json:"items"`         // Names of items packed at the start
}

// LevelDef describes one map.
type LevelDef struct {
	Name   string            `json:"name"`   // Display name (e.g., "level 1")
	Layout []string          `json:"layout"` // One string per row
	Legend map[string]string `json:"legend"` // Layout character -> kind token
}

// WorldDef is the structure of world.json: the player plus an ordered list of levels.
type WorldDef struct {
	Player PlayerDef  `json:"player"`
	Levels []LevelDef `json:"levels"`
}

// LoadWorld loads the embedded world.json.
func LoadWorld() (WorldDef, error) {
	return validateWorld(Load[WorldDef]("world.json"))
}

// LoadWorldFile loads a world definition from a JSON file on disk.
func LoadWorldFile(path string) (WorldDef, error) {
	return validateWorld(LoadFile[WorldDef](path))
}

func validateWorld(world WorldDef, err error) (WorldDef, error) {
	if err != nil {
		return world, err
	}
	if len(world.Levels) == 0 {
		return world, errors.New("no levels defined")
	}
	return world, nil
}
