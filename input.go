package popshot

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/popshot/game"
)

// Key repeat timing in ticks, matching a typical OS keyboard.
const (
	repeatDelay    = 30
	repeatInterval = 4
)

// Binding maps one key to a game command.
type Binding struct {
	Key     ebiten.Key
	Command game.Command
}

// Keymap is an ordered list of bindings. Several keys may share a command;
// each command is emitted at most once per frame.
type Keymap []Binding

// DefaultKeymap binds D/A/S plus the arrow keys and Space.
func DefaultKeymap() Keymap {
	return Keymap{
		{ebiten.KeyD, game.CommandRight},
		{ebiten.KeyA, game.CommandLeft},
		{ebiten.KeyS, game.CommandFire},
		{ebiten.KeyArrowRight, game.CommandRight},
		{ebiten.KeyArrowLeft, game.CommandLeft},
		{ebiten.KeySpace, game.CommandFire},
	}
}

// ackKeys dismiss the game-over message.
var ackKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace, ebiten.KeyEscape}

// Commands returns the commands whose keys fire this frame according to
// fired, in binding order and without duplicates.
func (k Keymap) Commands(fired func(ebiten.Key) bool) []game.Command {
	var out []game.Command
	var seen [4]bool // indexed by game.Command
	for _, b := range k {
		if b.Command == game.CommandNone || int(b.Command) >= len(seen) || seen[b.Command] {
			continue
		}
		if fired(b.Key) {
			seen[b.Command] = true
			out = append(out, b.Command)
		}
	}
	return out
}

// Lookup returns the command bound to key, or CommandNone.
func (k Keymap) Lookup(key ebiten.Key) game.Command {
	for _, b := range k {
		if b.Key == key {
			return b.Command
		}
	}
	return game.CommandNone
}

// keyFired reports a key-down edge, then repeats while the key is held.
func keyFired(key ebiten.Key) bool {
	return repeating(inpututil.KeyPressDuration(key))
}

// repeating decides from a hold duration in ticks whether a key fires.
func repeating(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

func ackPressed(pressed func(ebiten.Key) bool) bool {
	for _, k := range ackKeys {
		if pressed(k) {
			return true
		}
	}
	return false
}

// processInput feeds one frame of input into the loop. Injected input takes
// precedence over the keyboard.
func (g *Game) processInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.Screenshot("manual")
	}
	if g.processInjectedInput() {
		return
	}
	if g.loop.AwaitingAck() {
		if ackPressed(inpututil.IsKeyJustPressed) {
			g.acknowledge()
		}
		return
	}
	for _, cmd := range g.keymap.Commands(keyFired) {
		g.loop.Enqueue(cmd)
	}
}
