package popshot

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/popshot/config"
	"github.com/phanxgames/popshot/game"
)

// Logical screen size. The window may be scaled but the playfield never is.
const (
	ScreenWidth  = int(game.PlayfieldWidth)
	ScreenHeight = int(game.PlayfieldHeight)
)

// Source rectangle of the ship inside the sprite image.
const (
	spriteSrcX, spriteSrcY = 0, 0
	spriteSrcW, spriteSrcH = 150, 120
)

// HUD anchor: the bottom of the score line sits at (hudX, hudY).
const (
	hudX        = 10
	hudY        = 50
	hudFontSize = 24
)

var (
	backgroundColor = color.Black
	projectileColor = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	hudColor        = color.White
)

// rgba converts an enemy color to an opaque color.RGBA.
func rgba(c game.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Run loads the sprite, builds the game from cfg and blocks until the window
// is closed or a test script quits. The game loop does not start unless the
// sprite is ready.
func Run(cfg config.Config) error {
	sprite, err := LoadSprite(cfg.SpritePath)
	if err != nil {
		return err
	}

	g, err := NewGame(cfg, sprite)
	if err != nil {
		return err
	}
	defer g.Close()

	if cfg.ScriptPath != "" {
		data, err := os.ReadFile(cfg.ScriptPath)
		if err != nil {
			return fmt.Errorf("popshot: read test script: %w", err)
		}
		runner, err := LoadTestScript(data)
		if err != nil {
			return err
		}
		g.SetTestRunner(runner)
	}

	ebiten.SetWindowSize(int(float64(ScreenWidth)*cfg.Scale), int(float64(ScreenHeight)*cfg.Scale))
	ebiten.SetWindowTitle(cfg.Title)

	g.Start()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("popshot: run: %w", err)
	}
	return nil
}
