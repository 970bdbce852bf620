package popshot

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/phanxgames/popshot/ecs"
	"github.com/phanxgames/popshot/game"
)

// Renderer draws a game.Snapshot. It never mutates game state.
type Renderer struct {
	ship  *ebiten.Image
	shipW float64
	shipH float64

	hud   *text.GoTextFace
	small *text.GoTextFace
}

// NewRenderer prepares the ship region of sprite and the HUD fonts.
func NewRenderer(sprite *ebiten.Image) (*Renderer, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("popshot: failed to parse HUD font: %w", err)
	}
	ship := shipRegion(sprite)
	b := ship.Bounds()
	return &Renderer{
		ship:  ship,
		shipW: float64(b.Dx()),
		shipH: float64(b.Dy()),
		hud:   &text.GoTextFace{Source: source, Size: hudFontSize},
		small: &text.GoTextFace{Source: source, Size: hudFontSize * 0.66},
	}, nil
}

// Draw renders one frame: background, ship, projectiles, enemies, HUD.
func (r *Renderer) Draw(screen *ebiten.Image, snap game.Snapshot) {
	screen.Clear()
	screen.Fill(backgroundColor)

	r.drawShip(screen, snap.Player)
	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), projectileColor, true)
	}
	for _, e := range snap.Enemies {
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), rgba(e.Color), true)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(hudX, hudY)
	op.ColorScale.ScaleWithColor(hudColor)
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = text.AlignEnd
	text.Draw(screen, HUDText(snap), r.hud, op)
}

func (r *Renderer) drawShip(screen *ebiten.Image, p game.Player) {
	if r.shipW == 0 || r.shipH == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(p.Width/r.shipW, p.Height/r.shipH)
	op.GeoM.Translate(p.X, p.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.ship, op)
}

// DrawGameOver dims the frame and shows the final score of res.
func (r *Renderer) DrawGameOver(screen *ebiten.Image, res game.Result, rec ecs.RecordsData) {
	vector.DrawFilledRect(screen, 0, 0, float32(ScreenWidth), float32(ScreenHeight), color.RGBA{A: 180}, false)

	cx, cy := float64(ScreenWidth)/2, float64(ScreenHeight)/2
	lines := []struct {
		s    string
		face *text.GoTextFace
		dy   float64
	}{
		{GameOverText(res), r.hud, -30},
		{fmt.Sprintf("Kills: %d | Escaped: %d | Hits taken: %d", res.Tally.Kills, res.Tally.Escapes, res.Tally.PlayerHits), r.small, 10},
		{fmt.Sprintf("Best: %d", rec.BestScore), r.small, 40},
		{"Press Enter to play again", r.small, 90},
	}
	for _, l := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(cx, cy+l.dy)
		op.ColorScale.ScaleWithColor(hudColor)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, l.s, l.face, op)
	}
}

// HUDText is the score line shown in the top-left corner.
func HUDText(snap game.Snapshot) string {
	return fmt.Sprintf("Score: %d | Lives: %d", snap.Score, snap.Lives)
}

// GameOverText is the end-of-session message.
func GameOverText(res game.Result) string {
	return fmt.Sprintf("Game Over! Your final score is %d", res.Score)
}
