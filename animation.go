package popshot

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/popshot/game"
)

const (
	popDuration    = 0.35 // seconds
	popGrowth      = 1.6
	popStartAlpha  = 0.8
	popStrokeWidth = 3
)

// popBurst is an expanding, fading ring left behind where an enemy popped.
// Bursts are cosmetic and never feed back into the game.
type popBurst struct {
	x, y   float64
	radius float64
	alpha  float64
	color  game.RGB

	tweens [2]*gween.Tween
	done   bool
}

func newPopBurst(e game.Event) *popBurst {
	return &popBurst{
		x:      e.X,
		y:      e.Y,
		radius: e.Radius,
		alpha:  popStartAlpha,
		color:  e.Color,
		tweens: [2]*gween.Tween{
			gween.New(float32(e.Radius), float32(e.Radius*popGrowth), popDuration, ease.OutQuad),
			gween.New(popStartAlpha, 0, popDuration, ease.OutQuad),
		},
	}
}

// update advances both tweens by dt seconds.
func (b *popBurst) update(dt float32) {
	if b.done {
		return
	}
	r, rDone := b.tweens[0].Update(dt)
	a, aDone := b.tweens[1].Update(dt)
	b.radius = float64(r)
	b.alpha = float64(a)
	b.done = rDone && aDone
}

// PopEffects collects bursts from game events. It implements game.EventSink
// so it can subscribe to the event bus.
type PopEffects struct {
	bursts []*popBurst
}

func NewPopEffects() *PopEffects {
	return &PopEffects{bursts: make([]*popBurst, 0, game.MaxEnemies)}
}

// Emit starts a burst for every event that removes an enemy.
func (p *PopEffects) Emit(e game.Event) {
	switch e.Kind {
	case game.EventEnemyKilled, game.EventEnemyEscaped, game.EventPlayerHit:
		p.bursts = append(p.bursts, newPopBurst(e))
	case game.EventSessionStarted:
		p.bursts = p.bursts[:0]
	}
}

// Update advances all bursts and drops the finished ones.
func (p *PopEffects) Update(dt float32) {
	live := p.bursts[:0]
	for _, b := range p.bursts {
		b.update(dt)
		if !b.done {
			live = append(live, b)
		}
	}
	clear(p.bursts[len(live):])
	p.bursts = live
}

// Len returns the number of bursts still animating.
func (p *PopEffects) Len() int { return len(p.bursts) }

func (p *PopEffects) Draw(screen *ebiten.Image) {
	for _, b := range p.bursts {
		a := uint8(min(max(b.alpha, 0), 1) * 255)
		// Premultiplied, as vector expects.
		c := color.RGBA{
			R: uint8(uint16(b.color.R) * uint16(a) / 255),
			G: uint8(uint16(b.color.G) * uint16(a) / 255),
			B: uint8(uint16(b.color.B) * uint16(a) / 255),
			A: a,
		}
		vector.StrokeCircle(screen, float32(b.x), float32(b.y), float32(b.radius), popStrokeWidth, c, true)
	}
}
