package game

import "github.com/google/uuid"

// Session owns the state of one playthrough plus the spawn source and event
// sink used to advance it. It is not safe for concurrent use; frontends call
// it from a single goroutine and queue input through Loop.
type Session struct {
	id      string
	state   *State
	spawner *Spawner
	sink    EventSink
	emit    SinkFunc
}

// NewSession creates a running session. A nil rnd uses a fixed seed and a nil
// sink discards events.
func NewSession(rnd Random, sink EventSink) *Session {
	if sink == nil {
		sink = discardSink{}
	}
	s := &Session{
		spawner: NewSpawner(rnd),
		sink:    sink,
	}
	s.emit = func(e Event) {
		e.SessionID = s.id
		s.sink.Emit(e)
	}
	s.Reset()
	return s
}

// ID returns the UUID of the current playthrough. It changes on Reset.
func (s *Session) ID() string { return s.id }

func (s *Session) Phase() Phase { return s.state.Phase }
func (s *Session) Score() int   { return s.state.Score }
func (s *Session) Lives() int   { return s.state.Lives }

// Over reports whether the session reached GameOver.
func (s *Session) Over() bool { return s.state.Phase == PhaseGameOver }

// Update runs the update stage for one frame.
func (s *Session) Update() {
	Step(s.state, s.spawner, s.emit)
}

// Handle applies a player command immediately.
func (s *Session) Handle(cmd Command) {
	Apply(s.state, s.spawner, cmd, s.emit)
}

// Snapshot returns a copy of the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	return s.state.snapshot(s.id)
}

// Reset discards the current playthrough and starts a fresh one: default
// ship, no projectiles or enemies, score 0 and full lives.
func (s *Session) Reset() {
	s.id = uuid.NewString()
	s.state = NewState()
	s.emit.Emit(Event{Kind: EventSessionStarted, Lives: s.state.Lives})
}
