// Package gamedata provides the embedded level, flavor text and display data, and loaders for it.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
