package popshot

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const fpsRefresh = 0.5 // seconds

// fpsCounter caches the FPS/TPS line so it only changes twice a second.
type fpsCounter struct {
	elapsed float64
	line    string
}

func (c *fpsCounter) update(dt float64) {
	c.elapsed += dt
	if c.line != "" && c.elapsed < fpsRefresh {
		return
	}
	c.elapsed = 0
	c.line = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

// draw prints the cached line in the top-right corner.
func (c *fpsCounter) draw(screen *ebiten.Image) {
	const w, h = 100, 32
	x := ScreenWidth - w
	vector.DrawFilledRect(screen, float32(x), 0, w, h, color.RGBA{A: 128}, false)
	ebitenutil.DebugPrintAt(screen, c.line, x+4, 0)
}
