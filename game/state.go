package game

// Authoritative session state. Only Step and Controller mutate it.

type Player struct {
	X, Y          float64
	Step          float64
	Width, Height float64
}

// Bounds returns the player's draw and hit rectangle.
func (p Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

type Projectile struct {
	X, Y   float64
	VY     float64
	Radius float64
}

type Enemy struct {
	X, Y   float64
	Radius float64
	VX, VY float64
	Color  RGB
}

// RGB is an opaque 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Phase is the session lifecycle state.
type Phase uint8

const (
	PhaseRunning  Phase = iota // updates are processed
	PhaseGameOver              // lives exhausted, terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Tally counts what happened during one session.
type Tally struct {
	Kills      int
	Escapes    int
	PlayerHits int
	Shots      int
}

type State struct {
	Frame       int
	Player      Player
	Projectiles []Projectile
	Enemies     []Enemy
	Score       int
	Lives       int
	Phase       Phase
	Tally       Tally
}

// NewState returns the initial state of a fresh session.
func NewState() *State {
	return &State{
		Player: Player{
			X:      PlayerStartX,
			Y:      PlayerStartY,
			Step:   PlayerStep,
			Width:  PlayerWidth,
			Height: PlayerHeight,
		},
		Projectiles: make([]Projectile, 0, MaxProjectiles),
		Enemies:     make([]Enemy, 0, MaxEnemies),
		Lives:       StartingLives,
		Phase:       PhaseRunning,
	}
}

// Snapshot is a detached copy of State for renderers. Mutating it has no
// effect on the session.
type Snapshot struct {
	SessionID   string
	Frame       int
	Player      Player
	Projectiles []Projectile
	Enemies     []Enemy
	Score       int
	Lives       int
	Phase       Phase
	Tally       Tally
}

func (s *State) snapshot(id string) Snapshot {
	return Snapshot{
		SessionID:   id,
		Frame:       s.Frame,
		Player:      s.Player,
		Projectiles: append([]Projectile(nil), s.Projectiles...),
		Enemies:     append([]Enemy(nil), s.Enemies...),
		Score:       s.Score,
		Lives:       s.Lives,
		Phase:       s.Phase,
		Tally:       s.Tally,
	}
}
