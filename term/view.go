package term

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/popshot/ecs"
	"github.com/phanxgames/popshot/game"
)

// Screen is the part of tcell.Screen the view draws on.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
	Size() (width, height int)
}

const (
	enemyRune      = '█'
	projectileRune = '|'
	shipRune       = '▄'
)

var (
	baseStyle       = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	projectileStyle = baseStyle.Foreground(tcell.NewRGBColor(0, 128, 0))
	shipStyle       = baseStyle.Foreground(tcell.ColorRed)
	messageStyle    = baseStyle.Reverse(true)
)

// grid maps playfield coordinates onto terminal cells. Row 0 holds the HUD;
// the playfield fills the rows below it.
type grid struct {
	cols, rows int
}

func newGrid(s Screen) grid {
	w, h := s.Size()
	return grid{cols: max(w, 1), rows: max(h-1, 1)}
}

// cell returns the column and row containing playfield point (x, y),
// clamped to the grid.
func (g grid) cell(x, y float64) (int, int) {
	col := int(math.Floor(x / game.PlayfieldWidth * float64(g.cols)))
	row := int(math.Floor(y / game.PlayfieldHeight * float64(g.rows)))
	return min(max(col, 0), g.cols-1), 1 + min(max(row, 0), g.rows-1)
}

// scale returns the size of one cell in playfield units.
func (g grid) scale() (float64, float64) {
	return game.PlayfieldWidth / float64(g.cols), game.PlayfieldHeight / float64(g.rows)
}

// Draw renders snap onto s. It does not call Show.
func Draw(s Screen, snap game.Snapshot) {
	s.Clear()
	g := newGrid(s)

	drawShip(s, g, snap.Player)
	for _, e := range snap.Enemies {
		drawEnemy(s, g, e)
	}
	for _, p := range snap.Projectiles {
		col, row := g.cell(p.X, p.Y)
		s.SetContent(col, row, projectileRune, nil, projectileStyle)
	}
	drawText(s, 0, 0, HUDText(snap), baseStyle)
}

func drawShip(s Screen, g grid, p game.Player) {
	c0, r0 := g.cell(p.X, p.Y)
	c1, r1 := g.cell(p.X+p.Width-1, p.Y+p.Height-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.SetContent(col, row, shipRune, nil, shipStyle)
		}
	}
}

// drawEnemy fills the cells whose centers lie inside the circle, and at
// least the cell holding its center.
func drawEnemy(s Screen, g grid, e game.Enemy) {
	style := baseStyle.Foreground(tcell.NewRGBColor(int32(e.Color.R), int32(e.Color.G), int32(e.Color.B)))
	cw, ch := g.scale()

	cc, cr := g.cell(e.X, e.Y)
	s.SetContent(cc, cr, enemyRune, nil, style)

	c0, r0 := g.cell(e.X-e.Radius, e.Y-e.Radius)
	c1, r1 := g.cell(e.X+e.Radius, e.Y+e.Radius)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x := (float64(col) + 0.5) * cw
			y := (float64(row-1) + 0.5) * ch
			if game.CirclesOverlap(x, y, 0, e.X, e.Y, e.Radius) {
				s.SetContent(col, row, enemyRune, nil, style)
			}
		}
	}
}

// DrawGameOver shows the end-of-session message box centered on s.
func DrawGameOver(s Screen, res game.Result, rec ecs.RecordsData) {
	lines := []string{
		GameOverText(res),
		fmt.Sprintf("Best: %d", rec.BestScore),
		"Press any key to play again",
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	width += 4

	w, h := s.Size()
	x0 := max((w-width)/2, 0)
	y0 := max((h-len(lines)-2)/2, 0)
	for row := 0; row < len(lines)+2; row++ {
		for col := 0; col < width; col++ {
			s.SetContent(x0+col, y0+row, ' ', nil, messageStyle)
		}
	}
	for i, l := range lines {
		drawText(s, x0+(width-len(l))/2, y0+1+i, l, messageStyle)
	}
}

func drawText(s Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// HUDText is the score line on the top row.
func HUDText(snap game.Snapshot) string {
	return fmt.Sprintf("Score: %d | Lives: %d", snap.Score, snap.Lives)
}

// GameOverText is the end-of-session message.
func GameOverText(res game.Result) string {
	return fmt.Sprintf("Game Over! Your final score is %d", res.Score)
}
