package ui

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonwalk/internal/input"
)

// Terminal is a full-screen frontend built on tcell.
// Text written between Clear and Show is drawn top-down, one line per row,
// with each glyph styled from the style table.
type Terminal struct {
	screen *Screen
	styles map[rune]tcell.Style
	buf    bytes.Buffer
	rows   int // Rows drawn by the last Show
}

// NewTerminal creates a terminal frontend on the given screen.
// Glyphs missing from styles are drawn in the default text style.
func NewTerminal(screen *Screen, styles map[rune]tcell.Style) *Terminal {
	if styles == nil {
		styles = map[rune]tcell.Style{}
	}
	return &Terminal{
		screen: screen,
		styles: styles,
	}
}

// Write buffers frame text until Show.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.buf.Write(p)
}

// Clear starts a new frame.
func (t *Terminal) Clear() {
	t.buf.Reset()
	t.screen.Clear()
}

// Show draws the buffered frame.
func (t *Terminal) Show() {
	lines := strings.Split(strings.TrimSuffix(t.buf.String(), "\n"), "\n")
	for y, line := range lines {
		x := 0
		for _, ch := range line {
			t.screen.SetContent(x, y, ch, t.style(ch))
			x++
		}
	}
	t.rows = len(lines)
	t.screen.Show()
}

// ReadCommand waits for a key that maps to a command.
// Other keys show a hint below the frame and keep waiting.
func (t *Terminal) ReadCommand(ctx context.Context) (input.Command, error) {
	for {
		if err := ctx.Err(); err != nil {
			return input.Unknown, err
		}

		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return input.Unknown, io.EOF
		case *tcell.EventKey:
			if cmd := KeyCommand(ev); cmd != input.Unknown {
				return cmd, nil
			}
			t.screen.DrawText(0, t.rows, input.NotUnderstood, textStyle)
			t.screen.Show()
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Close()
}

var textStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)

func (t *Terminal) style(ch rune) tcell.Style {
	if style, ok := t.styles[ch]; ok {
		return style
	}
	return textStyle
}

// KeyCommand maps a key event to a command. Letters follow input.Translate,
// arrow keys move, and Escape or Ctrl-C quit.
func KeyCommand(ev *tcell.EventKey) input.Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit
	case tcell.KeyUp:
		return input.Up
	case tcell.KeyDown:
		return input.Down
	case tcell.KeyLeft:
		return input.Left
	case tcell.KeyRight:
		return input.Right
	case tcell.KeyRune:
		return input.Translate(string(ev.Rune()))
	default:
		return input.Unknown
	}
}
