package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/samdwyer/dungeonwalk/internal/input"
)

// ClearSequence is the ANSI sequence the console writes to clear the screen.
const ClearSequence = "\033[H\033[2J"

// Console is a line-oriented frontend: it prints frames as plain text and
// reads one typed line per command.
type Console struct {
	in  *bufio.Reader
	out *bufio.Writer
}

// NewConsole creates a console frontend reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: bufio.NewWriter(out),
	}
}

// Write adds text to the current frame.
func (c *Console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

// Clear clears the screen.
func (c *Console) Clear() {
	c.out.WriteString(ClearSequence)
}

// Show flushes the frame.
func (c *Console) Show() {
	c.out.Flush()
}

// ReadCommand prompts for a line until it maps to a command.
// Unrecognized lines of any length print input.NotUnderstood and prompt again.
func (c *Console) ReadCommand(ctx context.Context) (input.Command, error) {
	for {
		if err := ctx.Err(); err != nil {
			return input.Unknown, err
		}

		fmt.Fprint(c.out, input.Prompt)
		if err := c.out.Flush(); err != nil {
			return input.Unknown, err
		}

		line, err := c.in.ReadString('\n')
		if line == "" && err != nil {
			return input.Unknown, err
		}

		if cmd := input.Translate(strings.TrimRight(line, "\r\n")); cmd != input.Unknown {
			return cmd, nil
		}
		if err != nil {
			return input.Unknown, err
		}
		fmt.Fprintln(c.out, input.NotUnderstood)
	}
}

// Close flushes anything still buffered.
func (c *Console) Close() {
	fmt.Fprintln(c.out)
	c.out.Flush()
}
