// Package world provides the dungeon map: a grid of entities built from an ASCII layout.
package world

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samdwyer/dungeonwalk/internal/entity"
)

var (
	// ErrUnknownGlyph is returned when a layout uses a character the legend does not define.
	ErrUnknownGlyph = errors.New("glyph not in legend")
	// ErrEntityNotFound is returned when an entity is looked up but is not on the grid.
	ErrEntityNotFound = errors.New("entity not on map")
)

// UnknownGlyphError reports where a layout used an undefined character.
type UnknownGlyphError struct {
	Row, Col int
	Glyph    rune
}

func (e *UnknownGlyphError) Error() string {
	return fmt.Sprintf("row %d col %d: %q: %v", e.Row, e.Col, e.Glyph, ErrUnknownGlyph)
}

func (e *UnknownGlyphError) Unwrap() error {
	return ErrUnknownGlyph
}

// Legend maps a layout character to the entity placed wherever it appears.
// Every occurrence of a character gets the same entity value, so a legend must
// map exactly one character to a given player.
type Legend map[rune]entity.Entity

// Narrator supplies flavor text when something walks into a wall.
type Narrator interface {
	WalkIntoWall() string
}

// NarratorFunc adapts a function to the Narrator interface.
type NarratorFunc func() string

// WalkIntoWall calls f.
func (f NarratorFunc) WalkIntoWall() string { return f() }

// DungeonMap is a named grid of entities. Every cell always holds an entity.
// Rows may differ in length.
type DungeonMap struct {
	name     string
	grid     [][]entity.Entity
	narrator Narrator
}

// NewDungeonMap builds a map from layout rows and a legend.
// A nil narrator is replaced with one that says nothing.
func NewDungeonMap(name string, layout []string, legend Legend, narrator Narrator) (*DungeonMap, error) {
	if narrator == nil {
		narrator = NarratorFunc(func() string { return "" })
	}

	grid := make([][]entity.Entity, 0, len(layout))
	for row, line := range layout {
		cells := make([]entity.Entity, 0, len(line))
		col := 0
		for _, ch := range line {
			e, ok := legend[ch]
			if !ok || e == nil {
				return nil, fmt.Errorf("build map %q: %w", name, &UnknownGlyphError{Row: row, Col: col, Glyph: ch})
			}
			cells = append(cells, e)
			col++
		}
		grid = append(grid, cells)
	}

	return &DungeonMap{
		name:     name,
		grid:     grid,
		narrator: narrator,
	}, nil
}

// Name returns the map's name.
func (m *DungeonMap) Name() string {
	return m.name
}

// Height returns the number of rows.
func (m *DungeonMap) Height() int {
	return len(m.grid)
}

// Width returns the number of cells in the given row.
func (m *DungeonMap) Width(row int) int {
	return len(m.grid[row])
}

// FindEntity returns the position of the first cell, scanning row by row,
// whose entity equals e. Players compare by pointer, so only that exact player matches.
// Returns ErrEntityNotFound if e is not on the grid.
func (m *DungeonMap) FindEntity(e entity.Entity) (row, col int, err error) {
	for r, cells := range m.grid {
		for c, cell := range cells {
			if cell == e {
				return r, c, nil
			}
		}
	}
	return -1, -1, fmt.Errorf("find %T on map %q: %w", e, m.name, ErrEntityNotFound)
}

// EntityAt returns the entity at the given position.
// Indexing outside the grid panics.
func (m *DungeonMap) EntityAt(row, col int) entity.Entity {
	return m.grid[row][col]
}

// SetEntityAt places e at the given position, replacing whatever was there.
// Indexing outside the grid panics.
func (m *DungeonMap) SetEntityAt(e entity.Entity, row, col int) {
	m.grid[row][col] = e
}

// MoveEntity moves e one cell in the given direction and returns the messages produced.
//
// Stepping into an impassable cell leaves the grid unchanged and reports the bump.
// Stepping anywhere else overwrites the target cell with e and leaves Void behind;
// whatever was on the target is gone. A successful move produces no messages.
func (m *DungeonMap) MoveEntity(e entity.Entity, dir Direction) ([]string, error) {
	messages := []string{}

	row, col, err := m.FindEntity(e)
	if err != nil {
		return messages, err
	}

	dRow, dCol, ok := dir.Offset()
	if !ok {
		messages = append(messages, fmt.Sprintf("can not move %s", dir))
		return messages, nil
	}

	newRow, newCol := row+dRow, col+dCol
	target := m.EntityAt(newRow, newCol)
	if !target.Passable() {
		messages = append(messages,
			fmt.Sprintf("You step %s and hit %s", strings.ToLower(string(dir)), target.Noun()),
			m.narrator.WalkIntoWall(),
		)
		return messages, nil
	}

	m.SetEntityAt(e, newRow, newCol)
	m.SetEntityAt(entity.Void{}, row, col)

	return messages, nil
}

// Rows returns the grid rendered as one string of glyphs per row.
func (m *DungeonMap) Rows() []string {
	rows := make([]string, len(m.grid))
	var sb strings.Builder
	for r, cells := range m.grid {
		sb.Reset()
		for _, cell := range cells {
			sb.WriteRune(cell.Glyph())
		}
		rows[r] = sb.String()
	}
	return rows
}

// Display writes the grid to w, one line per row.
func (m *DungeonMap) Display(w io.Writer) {
	for _, row := range m.Rows() {
		fmt.Fprintln(w, row)
	}
}
