// Package game provides the game controller and the turn loop.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonwalk/internal/entity"
	"github.com/samdwyer/dungeonwalk/internal/gamedata"
	"github.com/samdwyer/dungeonwalk/internal/input"
	"github.com/samdwyer/dungeonwalk/internal/inventory"
	"github.com/samdwyer/dungeonwalk/internal/telemetry"
	"github.com/samdwyer/dungeonwalk/internal/world"
)

var (
	// ErrNoLevels is returned when a config has no levels.
	ErrNoLevels = errors.New("no levels configured")
	// ErrUnknownKind is returned when a legend names a kind that does not exist.
	ErrUnknownKind = errors.New("unknown legend kind")
	// ErrNoPlayer is returned when the first level does not place the player.
	ErrNoPlayer = errors.New("first level does not place the player")
	// ErrDuplicatePlayer is returned when a legend maps more than one character to the player.
	ErrDuplicatePlayer = errors.New("legend maps more than one character to the player")
	// ErrBackpackFull is returned when more starting items are configured than the backpack holds.
	ErrBackpackFull = errors.New("starting items do not fit in the backpack")
)

// Game holds the maps, the player and the messages produced by the last command.
type Game struct {
	maps     []*world.DungeonMap
	current  *world.DungeonMap
	player   *entity.Player
	messages []string
	turn     int

	narrator world.Narrator
	frontend Frontend
}

// Option configures optional collaborators of a Game.
type Option func(*Game)

// WithNarrator sets the flavor text source used when the player bumps into walls.
func WithNarrator(n world.Narrator) Option {
	return func(g *Game) { g.narrator = n }
}

// WithFrontend sets the frontend used by Run.
func WithFrontend(f Frontend) Option {
	return func(g *Game) { g.frontend = f }
}

// New builds a game from cfg. The player is created here and placed wherever
// the first level's legend puts the player kind.
func New(ctx context.Context, cfg Config, opts ...Option) (*Game, error) {
	_, span := telemetry.Tracer("game").Start(ctx, "game.init")
	defer span.End()

	g := &Game{messages: []string{}}
	for _, opt := range opts {
		opt(g)
	}

	if len(cfg.Levels) == 0 {
		return nil, ErrNoLevels
	}

	if g.narrator == nil {
		narrator, err := defaultNarrator(cfg.Seed)
		if err != nil {
			return nil, err
		}
		g.narrator = narrator
	}

	player, err := newPlayer(cfg.Player)
	if err != nil {
		return nil, err
	}
	g.player = player

	for i, level := range cfg.Levels {
		m, err := buildMap(level, player, g.narrator)
		if err != nil {
			return nil, err
		}
		g.maps = append(g.maps, m)

		if i == 0 {
			if _, _, err := m.FindEntity(player); err != nil {
				return nil, fmt.Errorf("level %q: %w", level.Name, ErrNoPlayer)
			}
		}
	}
	g.current = g.maps[0]

	row, col, _ := g.current.FindEntity(player)
	span.SetAttributes(
		attribute.String("player.id", player.ID.String()),
		attribute.Int("game.levels", len(g.maps)),
		attribute.String("map.name", g.current.Name()),
		attribute.Int("player.row", row),
		attribute.Int("player.col", col),
	)
	slog.Info("game ready", "map", g.current.Name(), "levels", len(g.maps), "player", player.ID)

	return g, nil
}

// defaultNarrator draws wall bump lines from the embedded flavor text.
func defaultNarrator(seed int64) (world.Narrator, error) {
	registry, err := gamedata.LoadFlavorRegistry()
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return registry.Narrator(rand.New(rand.NewSource(seed))), nil
}

func newPlayer(cfg PlayerConfig) (*entity.Player, error) {
	name := cfg.Name
	if name == "" {
		name = entity.DefaultPlayerName
	}
	player := entity.NewPlayer(name)

	if cfg.HP > 0 {
		player.HP = cfg.HP
	}
	if cfg.BackpackSlots > 0 {
		player.Backpack = inventory.NewContainer(entity.BackpackName, cfg.BackpackSlots)
	}

	for _, itemName := range cfg.Items {
		if !player.Backpack.Add(inventory.NewItem(itemName)) {
			return nil, fmt.Errorf("%d items, %d slots: %w", len(cfg.Items), player.Backpack.Slots, ErrBackpackFull)
		}
	}

	return player, nil
}

func buildMap(level LevelConfig, player *entity.Player, narrator world.Narrator) (*world.DungeonMap, error) {
	legend := make(world.Legend, len(level.Legend))
	players := 0

	for glyph, kind := range level.Legend {
		switch kind {
		case gamedata.KindWall:
			legend[glyph] = entity.Wall{}
		case gamedata.KindVoid:
			legend[glyph] = entity.Void{}
		case gamedata.KindPlayer:
			legend[glyph] = player
			players++
		default:
			return nil, fmt.Errorf("level %q: glyph %q: %q: %w", level.Name, glyph, kind, ErrUnknownKind)
		}
	}
	if players > 1 {
		return nil, fmt.Errorf("level %q: %w", level.Name, ErrDuplicatePlayer)
	}

	return world.NewDungeonMap(level.Name, level.Layout, legend, narrator)
}

// ProcessCommand clears the message log, applies cmd and returns the new messages.
//
// Moves go to the current map, ShowBackpack lists the backpack, and every other
// command (including Quit) produces nothing. Errors are logic errors, such as
// the player no longer being on the map.
func (g *Game) ProcessCommand(ctx context.Context, cmd input.Command) ([]string, error) {
	_, span := telemetry.Tracer("game").Start(ctx, "game.command")
	defer span.End()

	g.turn++
	g.messages = []string{}

	switch cmd {
	case input.Up, input.Down, input.Left, input.Right:
		dir, _ := cmd.Direction()
		messages, err := g.current.MoveEntity(g.player, dir)
		if err != nil {
			span.RecordError(err)
			return g.messages, fmt.Errorf("turn %d: %w", g.turn, err)
		}
		g.messages = append(g.messages, messages...)
	case input.ShowBackpack:
		g.messages = append(g.messages, g.player.Backpack.Display()...)
	}

	span.SetAttributes(
		attribute.String("command", cmd.String()),
		attribute.Int("turn", g.turn),
		attribute.Int("messages", len(g.messages)),
	)
	slog.Debug("command processed", "turn", g.turn, "command", cmd, "messages", len(g.messages))

	return g.messages, nil
}

// DisplayMessages writes the last command's messages to w, one per line.
func (g *Game) DisplayMessages(w io.Writer) {
	for _, message := range g.messages {
		fmt.Fprintln(w, message)
	}
}

// Messages returns the messages produced by the last command.
func (g *Game) Messages() []string {
	return g.messages
}

// Player returns the player.
func (g *Game) Player() *entity.Player {
	return g.player
}

// CurrentMap returns the map the player is on.
func (g *Game) CurrentMap() *world.DungeonMap {
	return g.current
}

// Maps returns all maps in order.
func (g *Game) Maps() []*world.DungeonMap {
	return g.maps
}
