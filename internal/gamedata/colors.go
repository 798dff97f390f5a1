package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// GlyphDef assigns a display style to a glyph.
type GlyphDef struct {
	Glyph string `json:"glyph"` // Single character as it appears on the map
	Color string `json:"color"` // Hex color code (e.g., "#00FF00")
	Bold  bool   `json:"bold,omitempty"`
}

// GlyphRune returns the glyph as a rune, or '?' if empty.
func (g *GlyphDef) GlyphRune() rune {
	for _, r := range g.Glyph {
		return r
	}
	return '?'
}

// Style returns the tcell style for the glyph. An invalid color falls back to white.
func (g *GlyphDef) Style() tcell.Style {
	color, err := ParseHexColor(g.Color)
	if err != nil {
		color = tcell.ColorWhite
	}
	return tcell.StyleDefault.Foreground(color).Bold(g.Bold)
}

// GlyphsFile represents the structure of glyphs.json.
type GlyphsFile struct {
	Glyphs []GlyphDef `json:"glyphs"`
}

// LoadGlyphStyles loads the embedded glyphs.json as a glyph -> style table.
func LoadGlyphStyles() (map[rune]tcell.Style, error) {
	file, err := Load[GlyphsFile]("glyphs.json")
	if err != nil {
		return nil, err
	}
	styles := make(map[rune]tcell.Style, len(file.Glyphs))
	for i := range file.Glyphs {
		styles[file.Glyphs[i].GlyphRune()] = file.Glyphs[i].Style()
	}
	return styles, nil
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}
