// Package assets embeds the default ship sprite.
package assets

import _ "embed"

// RedShip is the default ship sprite as PNG data. The ship occupies the
// 150x120 source rectangle at the origin.
//
//go:embed red_ship.png
var RedShip []byte
