package gamedata

import (
	"errors"
	"math/rand"
)

// FlavorFile represents the structure of flavor.json.
type FlavorFile struct {
	WallBumps []string `json:"wallBumps"`
}

// FlavorRegistry holds narrative lines and picks among them.
type FlavorRegistry struct {
	wallBumps []string
}

// NewFlavorRegistry creates a registry from loaded flavor text.
func NewFlavorRegistry(file FlavorFile) *FlavorRegistry {
	return &FlavorRegistry{wallBumps: file.WallBumps}
}

// LoadFlavorRegistry loads and creates a registry from the embedded flavor.json.
func LoadFlavorRegistry() (*FlavorRegistry, error) {
	file, err := Load[FlavorFile]("flavor.json")
	if err != nil {
		return nil, err
	}
	if len(file.WallBumps) == 0 {
		return nil, errors.New("no wall bump lines loaded from flavor.json")
	}
	return NewFlavorRegistry(file), nil
}

// RandomWallBump returns a random line for walking into a wall, or "" if there are none.
func (r *FlavorRegistry) RandomWallBump(rng *rand.Rand) string {
	if len(r.wallBumps) == 0 {
		return ""
	}
	return r.wallBumps[rng.Intn(len(r.wallBumps))]
}

// WallBumps returns all wall bump lines.
func (r *FlavorRegistry) WallBumps() []string {
	return r.wallBumps
}

// Narrator returns a narrator that draws lines from this registry using rng.
func (r *FlavorRegistry) Narrator(rng *rand.Rand) *Narrator {
	return &Narrator{registry: r, rng: rng}
}

// Narrator supplies random flavor text for in-game events.
type Narrator struct {
	registry *FlavorRegistry
	rng      *rand.Rand
}

// WalkIntoWall returns a random wall bump line.
func (n *Narrator) WalkIntoWall() string {
	return n.registry.RandomWallBump(n.rng)
}
