// Package term is a terminal frontend built on tcell. It runs the same
// session rules as the window frontend at cell resolution.
package term

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/popshot/audio"
	"github.com/phanxgames/popshot/config"
	"github.com/phanxgames/popshot/ecs"
	"github.com/phanxgames/popshot/game"
)

// Frontend drives a game.Loop from terminal key events and draws it on a
// Screen.
type Frontend struct {
	screen  Screen
	loop    *game.Loop
	bus     *ecs.Bus
	records *ecs.Tracker
	audio   *audio.Player

	quit atomic.Bool
}

// New wires a session, its event bus and audio for cfg onto screen. Audio
// that fails to open is logged and left silent.
func New(screen Screen, cfg config.Config) *Frontend {
	bus := ecs.NewBus(donburi.NewWorld())
	f := &Frontend{
		screen:  screen,
		bus:     bus,
		records: ecs.NewTracker(bus.World()),
		audio:   audio.New(cfg.Audio),
	}
	if err := f.audio.Init(); err != nil {
		log.Printf("[popshot] audio disabled: %v", err)
	}
	bus.Subscribe(f.records)
	bus.Subscribe(f.audio)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	f.loop = game.NewLoop(game.NewSession(game.NewRandom(seed), bus))
	return f
}

func (f *Frontend) Loop() *game.Loop { return f.loop }

// Records returns the lifetime records of this frontend.
func (f *Frontend) Records() ecs.RecordsData { return f.records.Snapshot() }

// Close releases the audio device.
func (f *Frontend) Close() { f.audio.Close() }

// Run plays until ctx is done, events is closed and drained, or the player
// quits. A quit returns nil.
func (f *Frontend) Run(ctx context.Context, ticks <-chan time.Time, events <-chan tcell.Event) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cmds := make(chan game.Command, 16)
	go f.readInput(ctx, cancel, events, cmds)

	err := f.loop.Run(ctx, ticks, cmds, f.draw)
	if f.quit.Load() && errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// readInput turns key events into commands until ctx is done or events is
// closed.
func (f *Frontend) readInput(ctx context.Context, cancel context.CancelFunc, events <-chan tcell.Event, cmds chan<- game.Command) {
	defer close(cmds)
	for {
		var ev tcell.Event
		var ok bool
		select {
		case <-ctx.Done():
			return
		case ev, ok = <-events:
			if !ok {
				return
			}
		}

		key, isKey := ev.(*tcell.EventKey)
		if !isKey {
			continue
		}
		cmd, quit := commandFor(key.Key(), key.Rune())
		if quit {
			f.quit.Store(true)
			cancel()
			return
		}
		select {
		case cmds <- cmd:
		case <-ctx.Done():
			return
		}
	}
}

// draw runs on the loop goroutine after every tick.
func (f *Frontend) draw(snap game.Snapshot) {
	f.bus.Flush()
	Draw(f.screen, snap)
	if f.loop.AwaitingAck() {
		if res, ok := f.loop.LastResult(); ok {
			DrawGameOver(f.screen, res, f.records.Snapshot())
		}
	}
	f.screen.Show()
}

// Run opens the terminal and plays until ctx is done or the player presses
// Escape. The terminal is restored before any panic propagates.
func Run(ctx context.Context, cfg config.Config) (err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			panic(r)
		}
	}()
	screen.SetStyle(baseStyle)
	screen.HideCursor()

	f := New(screen, cfg)
	defer f.Close()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(cfg.Tick)
	defer ticker.Stop()
	return f.Run(ctx, ticker.C, events)
}
