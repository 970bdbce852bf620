package popshot

import (
	"log"
	"os"
	"time"
)

var logger = log.New(os.Stderr, "[popshot] ", log.LstdFlags)

func logf(format string, args ...any) {
	logger.Printf(format, args...)
}

// debugInterval is how many frames are aggregated per debug line.
const debugInterval = 60

// debugStats accumulates frame timings and entity counts. Only populated
// when debug is enabled.
type debugStats struct {
	frames      int
	updateTime  time.Duration
	drawTime    time.Duration
	projectiles int
	enemies     int
	bursts      int
}

// debugLog prints averaged stats every debugInterval frames and resets.
func (g *Game) debugLog() {
	if !g.cfg.Debug {
		return
	}
	s := &g.stats
	if s.frames < debugInterval {
		return
	}
	n := time.Duration(s.frames)
	logf("update: %v | draw: %v | projectiles: %d | enemies: %d | bursts: %d",
		s.updateTime/n, s.drawTime/n, s.projectiles, s.enemies, s.bursts)
	logf("session %s | score: %d | lives: %d | frame: %d",
		g.snap.SessionID, g.snap.Score, g.snap.Lives, g.snap.Frame)
	*s = debugStats{}
}
