package game

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/samdwyer/dungeonwalk/internal/input"
)

// ErrNoFrontend is returned by Run when the game was built without a frontend.
var ErrNoFrontend = errors.New("no frontend")

// Frontend is where the turn loop draws frames and reads commands.
// Writes between Clear and Show make up one frame.
type Frontend interface {
	io.Writer
	Clear()
	Show()
	// ReadCommand blocks until the player enters a recognized command.
	// io.EOF means no more input will arrive.
	ReadCommand(ctx context.Context) (input.Command, error)
	Close()
}

// Run executes the turn loop until the player quits, input ends or ctx is cancelled.
// Each turn renders the map, the player's stats and the last messages, then
// reads and processes one command. Quit ends the loop before it reaches ProcessCommand.
func (g *Game) Run(ctx context.Context) error {
	if g.frontend == nil {
		return ErrNoFrontend
	}
	defer g.frontend.Close()

	for {
		g.render()

		cmd, err := g.frontend.ReadCommand(ctx)
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
			slog.Info("input closed", "turn", g.turn)
			return nil
		case err != nil:
			return err
		}

		if cmd == input.Quit {
			slog.Info("player quit", "turn", g.turn)
			return nil
		}

		if _, err := g.ProcessCommand(ctx, cmd); err != nil {
			return err
		}
	}
}

// render draws one frame.
func (g *Game) render() {
	g.frontend.Clear()
	g.current.Display(g.frontend)
	g.player.DisplayStats(g.frontend)
	g.DisplayMessages(g.frontend)
	g.frontend.Show()
}
