package game

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonwalk/internal/entity"
	"github.com/samdwyer/dungeonwalk/internal/input"
	"github.com/samdwyer/dungeonwalk/internal/world"
)

// scriptedFrontend replays commands and records every frame drawn.
type scriptedFrontend struct {
	commands []input.Command
	err      error // returned once commands run out

	buf    bytes.Buffer
	frames []string
	closed bool
}

func (f *scriptedFrontend) Write(p []byte) (int, error) { return f.buf.Write(p) }
func (f *scriptedFrontend) Clear()                      { f.buf.Reset() }
func (f *scriptedFrontend) Show()                       { f.frames = append(f.frames, f.buf.String()) }
func (f *scriptedFrontend) Close()                      { f.closed = true }

func (f *scriptedFrontend) ReadCommand(ctx context.Context) (input.Command, error) {
	if err := ctx.Err(); err != nil {
		return input.Unknown, err
	}
	if len(f.commands) == 0 {
		if f.err != nil {
			return input.Unknown, f.err
		}
		return input.Unknown, io.EOF
	}
	cmd := f.commands[0]
	f.commands = f.commands[1:]
	return cmd, nil
}

var _ Frontend = (*scriptedFrontend)(nil)

func newLoopGame(t *testing.T, frontend Frontend) *Game {
	t.Helper()

	cfg, err := DefaultConfig()
	require.NoError(t, err)

	g, err := New(context.Background(), cfg, quietNarrator, WithFrontend(frontend))
	require.NoError(t, err)
	return g
}

func TestRunRendersEachTurn(t *testing.T) {
	frontend := &scriptedFrontend{commands: []input.Command{input.Up, input.ShowBackpack, input.Quit}}
	g := newLoopGame(t, frontend)
	initial := g.CurrentMap().Rows()

	require.NoError(t, g.Run(context.Background()))

	require.Len(t, frontend.frames, 3)
	assert.True(t, frontend.closed)

	first := strings.Join(initial, "\n") + "\nHP: 10\n"
	assert.Equal(t, first, frontend.frames[0])

	assert.Contains(t, frontend.frames[1], "HP: 10\n")
	assert.NotContains(t, frontend.frames[1], "backpack")

	assert.True(t, strings.HasSuffix(frontend.frames[2],
		"HP: 10\n--- backpack ---\n1: small red potion\n2: snake oil\n"))

	row, _ := playerPosition(t, g)
	assert.Equal(t, 7, row)
}

func TestRunQuitDoesNotReachController(t *testing.T) {
	frontend := &scriptedFrontend{commands: []input.Command{input.ShowBackpack, input.Quit}}
	g := newLoopGame(t, frontend)

	require.NoError(t, g.Run(context.Background()))

	// Quit is handled by the loop, so the backpack listing is still the last log.
	assert.Equal(t, []string{"--- backpack ---", "1: small red potion", "2: snake oil"}, g.Messages())
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	frontend := &scriptedFrontend{commands: []input.Command{input.Right}}
	g := newLoopGame(t, frontend)

	require.NoError(t, g.Run(context.Background()))
	assert.Len(t, frontend.frames, 2)
	assert.True(t, frontend.closed)
}

func TestRunStopsOnCancel(t *testing.T) {
	frontend := &scriptedFrontend{commands: []input.Command{input.Up}}
	g := newLoopGame(t, frontend)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, g.Run(ctx))
	assert.Len(t, frontend.frames, 1)
}

func TestRunReturnsFrontendError(t *testing.T) {
	boom := errors.New("terminal went away")
	frontend := &scriptedFrontend{err: boom}
	g := newLoopGame(t, frontend)

	assert.ErrorIs(t, g.Run(context.Background()), boom)
	assert.True(t, frontend.closed)
}

func TestRunReturnsLogicError(t *testing.T) {
	frontend := &scriptedFrontend{commands: []input.Command{input.Down}}
	g := newLoopGame(t, frontend)

	row, col := playerPosition(t, g)
	g.CurrentMap().SetEntityAt(entity.Void{}, row, col)

	assert.ErrorIs(t, g.Run(context.Background()), world.ErrEntityNotFound)
}

func TestRunWithoutFrontend(t *testing.T) {
	g := newDefaultGame(t)
	assert.ErrorIs(t, g.Run(context.Background()), ErrNoFrontend)
}

func TestDisplayMessages(t *testing.T) {
	g := newDefaultGame(t)
	_, err := g.ProcessCommand(context.Background(), input.ShowBackpack)
	require.NoError(t, err)

	var buf bytes.Buffer
	g.DisplayMessages(&buf)

	assert.Equal(t, "--- backpack ---\n1: small red potion\n2: snake oil\n", buf.String())
}
