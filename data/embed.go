// Package data provides the embedded room maps, connection table and player sprites.
package data

import "embed"

// dataFS embeds the level data and sprite frames at build time.
//
//go:embed *.json player/*.png
var dataFS embed.FS

// FS returns the embedded filesystem containing game data.
func FS() embed.FS {
	return dataFS
}

// SpriteDir is the directory of the player frames inside FS.
const SpriteDir = "player"
