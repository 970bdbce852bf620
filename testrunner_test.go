package popshot

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "press", "key": "fire", "count": 2},
			{"action": "wait", "frames": 3},
			{"action": "ack"},
			{"action": "quit"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].Key != "fire" || runner.steps[1].Count != 2 {
		t.Errorf("step 1 = %+v", runner.steps[1])
	}
	if runner.steps[2].Frames != 3 {
		t.Errorf("step 2 = %+v", runner.steps[2])
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"no steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "click", "x": 1}]}`},
		{"press without key", `{"steps": [{"action": "press"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func loadRunner(t *testing.T, g *Game, data string) *TestRunner {
	t.Helper()
	runner, err := LoadTestScript([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	g.SetTestRunner(runner)
	return runner
}

func TestRunnerPress(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	runner := loadRunner(t, g, `{"steps": [{"action": "press", "key": "fire", "count": 3}]}`)

	// Frame 1 queues three presses and consumes the first.
	_ = g.Update()
	if len(g.injectQueue) != 2 {
		t.Fatalf("queue = %d, want 2", len(g.injectQueue))
	}
	_ = g.Update()
	_ = g.Update()
	if n := len(g.Snapshot().Projectiles); n != 3 {
		t.Errorf("projectiles = %d, want 3", n)
	}
	_ = g.Update()
	if !runner.Done() {
		t.Error("runner should be done after the queue drained")
	}
}

func TestRunnerWait(t *testing.T) {
	g := newTestGame(t)
	runner := loadRunner(t, g, `{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "after"}
	]}`)

	for range 3 {
		_ = g.Update()
		if len(g.screenshotQueue) != 0 {
			t.Fatal("screenshot queued before wait elapsed")
		}
	}
	_ = g.Update()
	if len(g.screenshotQueue) != 1 || g.screenshotQueue[0] != "after" {
		t.Errorf("screenshot queue = %v", g.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerQuit(t *testing.T) {
	g := newTestGame(t)
	loadRunner(t, g, `{"steps": [{"action": "quit"}]}`)
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update = %v, want termination", err)
	}
}

func TestRunnerAck(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	runUntilGameOver(t, g)

	loadRunner(t, g, `{"steps": [{"action": "ack"}]}`)
	_ = g.Update()
	if g.Loop().AwaitingAck() {
		t.Error("scripted ack did not dismiss the game-over message")
	}
}
