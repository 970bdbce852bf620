package game

import (
	"context"
	"time"
)

// Result summarizes a finished playthrough.
type Result struct {
	SessionID string
	Score     int
	Frames    int
	Tally     Tally
}

// Loop is the frame scheduler for a Session. Input is queued with Enqueue and
// applied at the start of the next Tick, so a command that lands between an
// update and its render only affects the following frame.
//
// When the session ends the loop stops itself, resets the session and waits
// for Acknowledge before ticking again.
type Loop struct {
	session  *Session
	pending  []Command
	running  bool
	awaiting bool
	last     Result
	finished int

	// OnGameOver, if set, is called once per finished playthrough after the
	// session has been reset.
	OnGameOver func(Result)
}

func NewLoop(session *Session) *Loop {
	return &Loop{
		session: session,
		pending: make([]Command, 0, 8),
	}
}

func (l *Loop) Session() *Session { return l.session }

// Start begins (or resumes) ticking.
func (l *Loop) Start() {
	l.running = true
	l.awaiting = false
}

// Stop halts ticking and drops queued input. Stop does not reset the session.
func (l *Loop) Stop() {
	l.running = false
	l.awaiting = false
	l.pending = l.pending[:0]
}

func (l *Loop) Running() bool { return l.running }

// AwaitingAck reports whether the loop is paused on a game-over message.
func (l *Loop) AwaitingAck() bool { return l.awaiting }

// Acknowledge dismisses the game-over message and restarts the loop. It is a
// no-op unless the loop is awaiting acknowledgement.
func (l *Loop) Acknowledge() bool {
	if !l.awaiting {
		return false
	}
	l.Start()
	return true
}

// LastResult returns the most recent finished playthrough, if any.
func (l *Loop) LastResult() (Result, bool) {
	return l.last, l.finished > 0
}

// Enqueue queues cmd for the next Tick. Input received while the loop is not
// running is discarded.
func (l *Loop) Enqueue(cmd Command) {
	if !l.running || cmd == CommandNone {
		return
	}
	l.pending = append(l.pending, cmd)
}

// Tick applies queued input and runs one update. It returns false when the
// loop is not running.
func (l *Loop) Tick() bool {
	if !l.running {
		return false
	}
	for _, cmd := range l.pending {
		l.session.Handle(cmd)
	}
	l.pending = l.pending[:0]

	l.session.Update()
	if l.session.Over() {
		l.finish()
	}
	return true
}

func (l *Loop) finish() {
	snap := l.session.Snapshot()
	l.last = Result{
		SessionID: snap.SessionID,
		Score:     snap.Score,
		Frames:    snap.Frame,
		Tally:     snap.Tally,
	}
	l.finished++
	l.running = false
	l.awaiting = true
	l.pending = l.pending[:0]
	l.session.Reset()
	if l.OnGameOver != nil {
		l.OnGameOver(l.last)
	}
}

// Run drives the loop from ticks until ctx is done, calling draw after every
// tick (including ticks while paused, so overlays stay visible). Input from
// inputs is queued while running; while awaiting acknowledgement any input
// dismisses the game-over message instead. Run starts the loop itself.
func (l *Loop) Run(ctx context.Context, ticks <-chan time.Time, inputs <-chan Command, draw func(Snapshot)) error {
	l.Start()
	defer l.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-inputs:
			if !ok {
				inputs = nil
				continue
			}
			if l.awaiting {
				l.Acknowledge()
				continue
			}
			l.Enqueue(cmd)
		case <-ticks:
			l.Tick()
			if draw != nil {
				draw(l.session.Snapshot())
			}
		}
	}
}
