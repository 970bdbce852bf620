package term

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/popshot/config"
	"github.com/phanxgames/popshot/ecs"
	"github.com/phanxgames/popshot/game"
)

type fakeScreen struct {
	w, h  int
	cells map[[2]int]rune
	shows int
}

func newFakeScreen(w, h int) *fakeScreen {
	return &fakeScreen{w: w, h: h, cells: map[[2]int]rune{}}
}

func (s *fakeScreen) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.cells[[2]int{x, y}] = r
}

func (s *fakeScreen) Clear()           { clear(s.cells) }
func (s *fakeScreen) Show()            { s.shows++ }
func (s *fakeScreen) Size() (int, int) { return s.w, s.h }

func (s *fakeScreen) at(x, y int) rune { return s.cells[[2]int{x, y}] }

func (s *fakeScreen) row(y int) string {
	var b strings.Builder
	for x := 0; x < s.w; x++ {
		if r := s.at(x, y); r != 0 {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Seed = 3
	cfg.Audio.Enabled = false
	return cfg
}

func TestGridCell(t *testing.T) {
	g := grid{cols: 80, rows: 30}
	tests := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 0, 1},
		{400, 300, 40, 16},
		{799, 599, 79, 30},
		{-50, -50, 0, 1},
		{900, 900, 79, 30},
	}
	for _, tt := range tests {
		col, row := g.cell(tt.x, tt.y)
		if col != tt.col || row != tt.row {
			t.Errorf("cell(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, col, row, tt.col, tt.row)
		}
	}
}

func TestDrawHUDAndEntities(t *testing.T) {
	scr := newFakeScreen(80, 31)
	snap := game.Snapshot{
		Score: 30,
		Lives: 8,
		Player: game.Player{
			X: game.PlayerStartX, Y: game.PlayerStartY,
			Width: game.PlayerWidth, Height: game.PlayerHeight,
		},
		Enemies:     []game.Enemy{{X: 400, Y: 100, Radius: 30}},
		Projectiles: []game.Projectile{{X: 100, Y: 300, Radius: game.ProjectileRadius}},
	}
	Draw(scr, snap)

	if got := scr.row(0); got != "Score: 30 | Lives: 8" {
		t.Errorf("HUD row = %q", got)
	}
	if got := scr.at(40, 6); got != enemyRune {
		t.Errorf("enemy center cell = %q, want %q", got, enemyRune)
	}
	if got := scr.at(10, 16); got != projectileRune {
		t.Errorf("projectile cell = %q, want %q", got, projectileRune)
	}
	col, row := grid{cols: 80, rows: 30}.cell(game.PlayerStartX, game.PlayerStartY)
	if got := scr.at(col, row); got != shipRune {
		t.Errorf("ship cell = %q, want %q", got, shipRune)
	}
}

func TestDrawEnemyCoversRadius(t *testing.T) {
	scr := newFakeScreen(80, 31)
	Draw(scr, game.Snapshot{Enemies: []game.Enemy{{X: 400, Y: 300, Radius: 50}}})

	n := 0
	for _, r := range scr.cells {
		if r == enemyRune {
			n++
		}
	}
	// Radius 50 spans ten columns and five rows at this size.
	if n < 9 {
		t.Errorf("enemy covers %d cells, want a filled disc", n)
	}
}

func TestDrawGameOver(t *testing.T) {
	scr := newFakeScreen(80, 24)
	DrawGameOver(scr, game.Result{Score: 75}, ecs.RecordsData{BestScore: 90})

	var text strings.Builder
	for y := 0; y < scr.h; y++ {
		text.WriteString(scr.row(y))
		text.WriteByte('\n')
	}
	out := text.String()
	for _, want := range []string{"Game Over! Your final score is 75", "Best: 90"} {
		if !strings.Contains(out, want) {
			t.Errorf("message box missing %q:\n%s", want, out)
		}
	}
}

func TestCommandFor(t *testing.T) {
	tests := []struct {
		name     string
		key      tcell.Key
		r        rune
		want     game.Command
		wantQuit bool
	}{
		{"d", tcell.KeyRune, 'd', game.CommandRight, false},
		{"D", tcell.KeyRune, 'D', game.CommandRight, false},
		{"a", tcell.KeyRune, 'a', game.CommandLeft, false},
		{"s", tcell.KeyRune, 's', game.CommandFire, false},
		{"space", tcell.KeyRune, ' ', game.CommandFire, false},
		{"left arrow", tcell.KeyLeft, 0, game.CommandLeft, false},
		{"right arrow", tcell.KeyRight, 0, game.CommandRight, false},
		{"unbound", tcell.KeyRune, 'x', game.CommandNone, false},
		{"enter", tcell.KeyEnter, 0, game.CommandNone, false},
		{"escape", tcell.KeyEscape, 0, game.CommandNone, true},
		{"ctrl-c", tcell.KeyCtrlC, 0, game.CommandNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, quit := commandFor(tt.key, tt.r)
			if cmd != tt.want || quit != tt.wantQuit {
				t.Errorf("commandFor = (%v, %v), want (%v, %v)", cmd, quit, tt.want, tt.wantQuit)
			}
		})
	}
}

func TestFrontendRunTicksAndDraws(t *testing.T) {
	scr := newFakeScreen(80, 31)
	f := New(scr, testConfig())
	defer f.Close()

	ticks := make(chan time.Time)
	events := make(chan tcell.Event)
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- f.Run(ctx, ticks, events) }()

	for range 3 {
		ticks <- time.Now()
	}
	cancel()
	if err := <-errc; !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
	if scr.shows != 3 {
		t.Errorf("shows = %d, want 3", scr.shows)
	}
	if frame := f.Loop().Session().Snapshot().Frame; frame != 3 {
		t.Errorf("frame = %d, want 3", frame)
	}
	if got := scr.row(0); got != "Score: 0 | Lives: 10" {
		t.Errorf("HUD row = %q", got)
	}
}

func TestFrontendQuitOnEscape(t *testing.T) {
	f := New(newFakeScreen(80, 31), testConfig())
	defer f.Close()

	events := make(chan tcell.Event, 1)
	events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- f.Run(context.Background(), nil, events) }()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run = %v, want nil on quit", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Escape")
	}
}
