package popshot

import (
	"fmt"
	"strings"

	"github.com/phanxgames/popshot/game"
)

// syntheticInput is one injected frame of input: either a command or an
// acknowledgement of the game-over message.
type syntheticInput struct {
	cmd game.Command
	ack bool
}

// InjectCommand queues cmd as if its key had been pressed. Queued input is
// consumed one entry per frame, ahead of the keyboard.
func (g *Game) InjectCommand(cmd game.Command) {
	g.injectQueue = append(g.injectQueue, syntheticInput{cmd: cmd})
}

// InjectKey queues the command named by key: a command name ("left",
// "right", "fire") or one of the default key letters. Unknown names are an
// error.
func (g *Game) InjectKey(key string) error {
	cmd := game.ParseCommand(strings.ToLower(key))
	if cmd == game.CommandNone {
		cmd = letterCommands[strings.ToLower(key)]
	}
	if cmd == game.CommandNone {
		return fmt.Errorf("popshot: unknown key %q", key)
	}
	g.InjectCommand(cmd)
	return nil
}

var letterCommands = map[string]game.Command{
	"a": game.CommandLeft,
	"d": game.CommandRight,
	"s": game.CommandFire,
}

// InjectAck queues a dismissal of the game-over message.
func (g *Game) InjectAck() {
	g.injectQueue = append(g.injectQueue, syntheticInput{ack: true})
}

// processInjectedInput pops one queued entry and applies it. It returns true
// if an entry was consumed, in which case keyboard input is skipped.
func (g *Game) processInjectedInput() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	in := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	if in.ack {
		g.acknowledge()
	} else {
		g.loop.Enqueue(in.cmd)
	}
	return true
}
