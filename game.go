package popshot

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/popshot/audio"
	"github.com/phanxgames/popshot/config"
	"github.com/phanxgames/popshot/ecs"
	"github.com/phanxgames/popshot/game"
)

// Game is the Ebitengine frontend. It owns the session loop and wires game
// events through a Donburi world to audio, pop effects and lifetime records.
//
// All state is touched from Ebitengine's Update/Draw goroutine only.
type Game struct {
	cfg      config.Config
	loop     *game.Loop
	bus      *ecs.Bus
	records  *ecs.Tracker
	audio    *audio.Player
	pops     *PopEffects
	renderer *Renderer
	keymap   Keymap
	fps      fpsCounter

	snap game.Snapshot

	injectQueue     []syntheticInput
	testRunner      *TestRunner
	screenshotQueue []string
	screenshots     int

	stats debugStats
	quit  bool
}

// NewGame builds a game around sprite. Audio that fails to open is logged
// and left silent.
func NewGame(cfg config.Config, sprite *ebiten.Image) (*Game, error) {
	renderer, err := NewRenderer(sprite)
	if err != nil {
		return nil, err
	}

	bus := ecs.NewBus(donburi.NewWorld())
	g := &Game{
		cfg:      cfg,
		bus:      bus,
		records:  ecs.NewTracker(bus.World()),
		audio:    audio.New(cfg.Audio),
		pops:     NewPopEffects(),
		renderer: renderer,
		keymap:   DefaultKeymap(),
	}
	if err := g.audio.Init(); err != nil {
		logf("audio disabled: %v", err)
	}

	bus.Subscribe(g.records)
	bus.Subscribe(g.audio)
	if cfg.PopEffects {
		bus.Subscribe(g.pops)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g.loop = game.NewLoop(game.NewSession(game.NewRandom(seed), bus))
	g.loop.OnGameOver = g.gameOver
	g.snap = g.loop.Session().Snapshot()
	return g, nil
}

// Start starts the frame scheduler.
func (g *Game) Start() { g.loop.Start() }

// Close releases the audio device.
func (g *Game) Close() { g.audio.Close() }

// Loop exposes the session loop, mainly for tests and tools.
func (g *Game) Loop() *game.Loop { return g.loop }

// Records returns the lifetime records of this process.
func (g *Game) Records() ecs.RecordsData { return g.records.Snapshot() }

// Snapshot returns the state drawn by the last frame.
func (g *Game) Snapshot() game.Snapshot { return g.snap }

// Update implements ebiten.Game. Order: scripted steps, input, one tick of
// the loop, event delivery, then cosmetic effects.
func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	var t0 time.Time
	if g.cfg.Debug {
		t0 = time.Now()
	}

	dt := 1.0 / float64(ebiten.TPS())
	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	g.processInput()
	g.loop.Tick()
	g.bus.Flush()
	g.pops.Update(float32(dt))
	g.snap = g.loop.Session().Snapshot()
	if g.cfg.ShowFPS {
		g.fps.update(dt)
	}

	if g.cfg.Debug {
		g.stats.frames++
		g.stats.updateTime += time.Since(t0)
		g.stats.projectiles = len(g.snap.Projectiles)
		g.stats.enemies = len(g.snap.Enemies)
		g.stats.bursts = g.pops.Len()
		g.debugLog()
	}
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if g.cfg.Debug {
		t0 = time.Now()
	}

	g.renderer.Draw(screen, g.snap)
	g.pops.Draw(screen)
	if g.loop.AwaitingAck() {
		if res, ok := g.loop.LastResult(); ok {
			g.renderer.DrawGameOver(screen, res, g.records.Snapshot())
		}
	}
	if g.cfg.ShowFPS {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)

	if g.cfg.Debug {
		g.stats.drawTime += time.Since(t0)
	}
}

// Layout implements ebiten.Game. The playfield is fixed; the window scales.
func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func (g *Game) gameOver(res game.Result) {
	logf("game over: session %s score %d after %d frames (kills %d, escaped %d, hits %d)",
		res.SessionID, res.Score, res.Frames, res.Tally.Kills, res.Tally.Escapes, res.Tally.PlayerHits)
}

// acknowledge dismisses the game-over message. Events still queued from the
// finished session are delivered first so records stay in order.
func (g *Game) acknowledge() {
	g.bus.Flush()
	g.loop.Acknowledge()
}
