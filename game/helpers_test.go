package game

// seqRandom replays a fixed sequence of uniform samples, wrapping around.
type seqRandom struct {
	vals []float64
	i    int
}

func (r *seqRandom) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// recorder collects emitted events.
type recorder struct {
	events []Event
}

func (r *recorder) Emit(e Event) { r.events = append(r.events, e) }

func (r *recorder) kinds() []EventKind {
	out := make([]EventKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

func (r *recorder) count(kind EventKind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// zeroSpawner spawns every enemy at the minimum of each range: (75, 75),
// radius 10, moving down-right, black.
func zeroSpawner() *Spawner {
	return NewSpawner(&seqRandom{vals: []float64{0}})
}
