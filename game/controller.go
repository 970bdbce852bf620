package game

// Command is a discrete player request produced by a keyboard or script.
type Command uint8

const (
	CommandNone Command = iota
	CommandLeft
	CommandRight
	CommandFire
)

func (c Command) String() string {
	switch c {
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandFire:
		return "fire"
	default:
		return "none"
	}
}

// ParseCommand maps a command name ("left", "right", "fire") to a Command.
// Unknown names yield CommandNone.
func ParseCommand(name string) Command {
	switch name {
	case "left":
		return CommandLeft
	case "right":
		return CommandRight
	case "fire":
		return CommandFire
	default:
		return CommandNone
	}
}

// Apply executes cmd against s. Moves that would take the ship outside the
// playfield are dropped. CommandNone and commands on a finished session are
// ignored.
func Apply(s *State, sp *Spawner, cmd Command, sink EventSink) {
	if s.Phase != PhaseRunning {
		return
	}
	if sink == nil {
		sink = discardSink{}
	}

	p := &s.Player
	switch cmd {
	case CommandRight:
		if x := p.X + p.Step; x <= PlayfieldWidth-p.Width {
			p.X = x
		}
	case CommandLeft:
		if x := p.X - p.Step; x >= 0 {
			p.X = x
		}
	case CommandFire:
		spawned := sp.Projectile(s)
		if spawned {
			s.Tally.Shots++
		}
		sink.Emit(Event{
			Kind:    EventFired,
			Cue:     shotCue(len(s.Projectiles)),
			Frame:   s.Frame,
			X:       p.X + p.Width/2,
			Y:       p.Y,
			Radius:  ProjectileRadius,
			Spawned: spawned,
			Score:   s.Score,
			Lives:   s.Lives,
		})
	}
}

// shotCue picks the fire sound from the number of projectiles in flight after
// the spawn attempt.
func shotCue(live int) Cue {
	switch {
	case live <= MaxProjectiles-1:
		return CueShotLight
	case live == MaxProjectiles:
		return CueShotFull
	default:
		return CueNone
	}
}
