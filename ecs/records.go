package ecs

import (
	"github.com/yohamta/donburi"

	"github.com/phanxgames/popshot/game"
)

// RecordsData is the lifetime record kept across playthroughs of one
// process. Nothing is persisted.
type RecordsData struct {
	Sessions  int // finished playthroughs
	BestScore int
	Kills     int
	Escapes   int
	Hits      int
}

// Records is the component holding RecordsData.
var Records = donburi.NewComponentType[RecordsData]()

// Tracker keeps a single records entity up to date from game events.
type Tracker struct {
	world  donburi.World
	entity donburi.Entity
}

// NewTracker creates the records entity on world.
func NewTracker(world donburi.World) *Tracker {
	return &Tracker{world: world, entity: world.Create(Records)}
}

// Emit updates the records from a flushed event.
func (t *Tracker) Emit(e game.Event) {
	r := Records.Get(t.world.Entry(t.entity))
	switch e.Kind {
	case game.EventEnemyKilled:
		r.Kills++
	case game.EventEnemyEscaped:
		r.Escapes++
	case game.EventPlayerHit:
		r.Hits++
	case game.EventGameOver:
		r.Sessions++
		r.BestScore = max(r.BestScore, e.Score)
	}
}

// Snapshot returns a copy of the current records.
func (t *Tracker) Snapshot() RecordsData {
	return *Records.Get(t.world.Entry(t.entity))
}
