package popshot

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/popshot/assets"
)

// LoadSprite loads the ship sprite from path, or the embedded ship when path
// is empty. Any failure is returned; there is no retry.
func LoadSprite(path string) (*ebiten.Image, error) {
	data := assets.RedShip
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("popshot: load sprite: %w", err)
		}
	}
	img, err := decodeSprite(data)
	if err != nil {
		return nil, fmt.Errorf("popshot: load sprite %q: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// decodeSprite decodes PNG data and rejects empty images.
func decodeSprite(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("empty image %v", b)
	}
	return img, nil
}

// shipRegion returns the part of sprite drawn as the ship.
func shipRegion(sprite *ebiten.Image) *ebiten.Image {
	r := image.Rect(spriteSrcX, spriteSrcY, spriteSrcX+spriteSrcW, spriteSrcY+spriteSrcH)
	return sprite.SubImage(r.Intersect(sprite.Bounds())).(*ebiten.Image)
}
