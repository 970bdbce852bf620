package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/popshot/game"
)

// commandFor maps a key press to a game command. quit is true for Escape and
// Ctrl-C. Unbound keys yield CommandNone, which still dismisses the game-over
// message.
func commandFor(key tcell.Key, r rune) (cmd game.Command, quit bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.CommandNone, true
	case tcell.KeyLeft:
		return game.CommandLeft, false
	case tcell.KeyRight:
		return game.CommandRight, false
	case tcell.KeyRune:
		switch unicode.ToLower(r) {
		case 'a':
			return game.CommandLeft, false
		case 'd':
			return game.CommandRight, false
		case 's', ' ':
			return game.CommandFire, false
		}
	}
	return game.CommandNone, false
}
