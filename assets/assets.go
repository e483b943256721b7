// Package assets embeds the arena maps.
package assets

import "embed"

// FS holds levels/*.tmx.
//
//go:embed all:levels
var FS embed.FS

// LevelsDir is the directory inside FS holding the arenas.
const LevelsDir = "levels"
