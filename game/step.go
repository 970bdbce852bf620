package game

import "slices"

// Step advances s by one frame: projectiles, enemy spawn, enemies, shot
// collisions, then ship collisions. It does nothing unless s is running and
// stops as soon as a life loss ends the session.
func Step(s *State, sp *Spawner, sink EventSink) {
	if s.Phase != PhaseRunning {
		return
	}
	if sink == nil {
		sink = discardSink{}
	}
	s.Frame++

	advanceProjectiles(s)
	if e, ok := sp.Enemy(s); ok {
		sink.Emit(enemyEvent(EventEnemySpawned, s, *e, CueNone))
	}
	if !advanceEnemies(s, sink) {
		return
	}
	resolveShots(s, sink)
	resolveShipHits(s, sink)
}

// advanceProjectiles drops projectiles that left through the top, then moves
// the rest.
func advanceProjectiles(s *State) {
	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if p.Y <= 0 {
			continue
		}
		p.Y += p.VY
		kept = append(kept, p)
	}
	clear(s.Projectiles[len(kept):])
	s.Projectiles = kept
}

// advanceEnemies moves every enemy, bounces it off the ceiling and side walls
// and removes it when it reaches the floor. Returns false if an escape ended
// the session.
func advanceEnemies(s *State, sink EventSink) bool {
	kept := s.Enemies[:0]
	for i := 0; i < len(s.Enemies); i++ {
		e := s.Enemies[i]
		e.Y += e.VY
		e.X += e.VX

		if e.Y-e.Radius <= 0 {
			e.VY = -e.VY
		}
		if e.Y+e.Radius >= PlayfieldHeight {
			s.Tally.Escapes++
			if !loseLife(s, sink, EventEnemyEscaped, e) {
				kept = append(kept, s.Enemies[i+1:]...)
				s.Enemies = kept
				return false
			}
			continue
		}
		if e.X-e.Radius <= 0 || e.X+e.Radius >= PlayfieldWidth {
			e.VX = -e.VX
		}
		kept = append(kept, e)
	}
	clear(s.Enemies[len(kept):])
	s.Enemies = kept
	return true
}

// resolveShots removes each projectile together with the first enemy it
// overlaps. A projectile scores at most once per frame and an enemy can only
// be destroyed by one projectile.
func resolveShots(s *State, sink EventSink) {
	for pi := 0; pi < len(s.Projectiles); {
		p := s.Projectiles[pi]
		ei := slices.IndexFunc(s.Enemies, func(e Enemy) bool {
			return CirclesOverlap(p.X, p.Y, p.Radius, e.X, e.Y, e.Radius)
		})
		if ei < 0 {
			pi++
			continue
		}
		e := s.Enemies[ei]
		s.Projectiles = slices.Delete(s.Projectiles, pi, pi+1)
		s.Enemies = slices.Delete(s.Enemies, ei, ei+1)
		s.Score += PointsPerKill
		s.Tally.Kills++
		sink.Emit(enemyEvent(EventEnemyKilled, s, e, CuePop))
	}
}

// resolveShipHits removes every enemy touching the ship, one life each.
func resolveShipHits(s *State, sink EventSink) {
	ship := s.Player.Bounds()
	for i := 0; i < len(s.Enemies); {
		e := s.Enemies[i]
		if !CircleTouchesRect(e.X, e.Y, e.Radius, ship) {
			i++
			continue
		}
		s.Enemies = slices.Delete(s.Enemies, i, i+1)
		s.Tally.PlayerHits++
		if !loseLife(s, sink, EventPlayerHit, e) {
			return
		}
	}
}

// loseLife takes one life for e and ends the session when none are left.
// Returns false once the session is over.
func loseLife(s *State, sink EventSink, kind EventKind, e Enemy) bool {
	s.Lives--
	sink.Emit(enemyEvent(kind, s, e, CuePop))
	if s.Lives > 0 {
		return true
	}
	s.Lives = 0
	s.Phase = PhaseGameOver
	sink.Emit(Event{Kind: EventGameOver, Frame: s.Frame, Score: s.Score})
	return false
}

func enemyEvent(kind EventKind, s *State, e Enemy, cue Cue) Event {
	return Event{
		Kind:   kind,
		Cue:    cue,
		Frame:  s.Frame,
		X:      e.X,
		Y:      e.Y,
		Radius: e.Radius,
		Color:  e.Color,
		Score:  s.Score,
		Lives:  s.Lives,
	}
}
