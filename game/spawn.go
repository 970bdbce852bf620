package game

import "math/rand/v2"

// Random is the uniform [0,1) source used by spawns. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// NewRandom returns a PCG source seeded from seed. A zero seed yields a
// time-independent but fixed sequence; callers wanting variety pass a clock
// derived seed.
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Spawner applies the projectile and enemy spawn policies.
type Spawner struct {
	rnd Random
}

func NewSpawner(rnd Random) *Spawner {
	if rnd == nil {
		rnd = NewRandom(1)
	}
	return &Spawner{rnd: rnd}
}

// Projectile appends a projectile at the ship's nose when fewer than
// MaxProjectiles are live. It reports whether one was created.
func (sp *Spawner) Projectile(s *State) bool {
	if len(s.Projectiles) >= MaxProjectiles {
		return false
	}
	s.Projectiles = append(s.Projectiles, Projectile{
		X:      s.Player.X + s.Player.Width/2,
		Y:      s.Player.Y,
		VY:     ProjectileSpeed,
		Radius: ProjectileRadius,
	})
	return true
}

// Enemy appends a randomized enemy when fewer than MaxEnemies are live. The
// returned pointer is valid until the next mutation of s.Enemies.
func (sp *Spawner) Enemy(s *State) (*Enemy, bool) {
	if len(s.Enemies) >= MaxEnemies {
		return nil, false
	}
	u := sp.rnd.Float64
	x := u()*(PlayfieldWidth-EnemyInsetRight+EnemyMarginX) + EnemyMarginX
	y := u()*(PlayfieldHeight/4-EnemyMarginY) + EnemyMarginY
	r := u()*(EnemyMaxRadius-EnemyMinRadius) + EnemyMinRadius

	speed := EnemySpeed
	if u()*(6-1)+1 > 3 {
		speed = -EnemySpeed
	}

	s.Enemies = append(s.Enemies, Enemy{
		X:      x,
		Y:      y,
		Radius: r,
		VX:     speed,
		VY:     speed,
		Color:  RGB{R: sp.channel(), G: sp.channel(), B: sp.channel()},
	})
	return &s.Enemies[len(s.Enemies)-1], true
}

func (sp *Spawner) channel() uint8 {
	return uint8(sp.rnd.Float64() * 256)
}
