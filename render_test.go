package popshot

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/popshot/game"
)

func TestHUDText(t *testing.T) {
	got := HUDText(game.Snapshot{Score: 45, Lives: 7})
	if want := "Score: 45 | Lives: 7"; got != want {
		t.Errorf("HUDText = %q, want %q", got, want)
	}
}

func TestGameOverText(t *testing.T) {
	got := GameOverText(game.Result{Score: 120})
	if want := "Game Over! Your final score is 120"; got != want {
		t.Errorf("GameOverText = %q, want %q", got, want)
	}
}

func TestNewRendererCropsShip(t *testing.T) {
	r, err := NewRenderer(ebiten.NewImage(300, 200))
	if err != nil {
		t.Fatal(err)
	}
	if r.shipW != spriteSrcW || r.shipH != spriteSrcH {
		t.Errorf("ship region = %vx%v, want %dx%d", r.shipW, r.shipH, spriteSrcW, spriteSrcH)
	}
	if r.hud.Size != hudFontSize {
		t.Errorf("hud font size = %v, want %v", r.hud.Size, hudFontSize)
	}
}

func TestNewRendererSmallSprite(t *testing.T) {
	r, err := NewRenderer(ebiten.NewImage(64, 48))
	if err != nil {
		t.Fatal(err)
	}
	if r.shipW != 64 || r.shipH != 48 {
		t.Errorf("ship region = %vx%v, want the whole 64x48 image", r.shipW, r.shipH)
	}
}

func TestRGBA(t *testing.T) {
	c := rgba(game.RGB{R: 1, G: 2, B: 3})
	if c.R != 1 || c.G != 2 || c.B != 3 || c.A != 255 {
		t.Errorf("rgba = %+v", c)
	}
}
