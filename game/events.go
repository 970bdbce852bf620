package game

// Cue names a sound effect to trigger. Cues are fire-and-forget.
type Cue uint8

const (
	CueNone      Cue = iota
	CuePop           // enemy destroyed or escaped
	CueShotLight     // fire with at most two projectiles in flight
	CueShotFull      // fire with exactly three projectiles in flight
)

func (c Cue) String() string {
	switch c {
	case CuePop:
		return "pop"
	case CueShotLight:
		return "shot-light"
	case CueShotFull:
		return "shot-full"
	default:
		return "none"
	}
}

// EventKind identifies something that happened during a frame or command.
type EventKind uint8

const (
	EventSessionStarted EventKind = iota // fresh state after New or Reset
	EventFired                           // fire command handled; Spawned says whether a projectile was created
	EventEnemySpawned
	EventEnemyKilled  // projectile hit; Score already includes the award
	EventEnemyEscaped // reached the floor; costs a life
	EventPlayerHit    // enemy touched the ship; costs a life
	EventGameOver     // lives reached zero; Score is the final score
)

func (k EventKind) String() string {
	switch k {
	case EventSessionStarted:
		return "session-started"
	case EventFired:
		return "fired"
	case EventEnemySpawned:
		return "enemy-spawned"
	case EventEnemyKilled:
		return "enemy-killed"
	case EventEnemyEscaped:
		return "enemy-escaped"
	case EventPlayerHit:
		return "player-hit"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event carries what a sink needs to react without reading session state.
type Event struct {
	Kind      EventKind
	Cue       Cue
	SessionID string
	Frame     int

	// Position and look of the entity involved, if any.
	X, Y   float64
	Radius float64
	Color  RGB

	Spawned bool // EventFired only
	Score   int
	Lives   int
}

// EventSink receives session events. Implementations must not call back into
// the session.
type EventSink interface {
	Emit(event Event)
}

// SinkFunc adapts a function to EventSink.
type SinkFunc func(Event)

func (f SinkFunc) Emit(event Event) { f(event) }

type discardSink struct{}

func (discardSink) Emit(Event) {}
