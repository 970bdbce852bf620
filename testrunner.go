package popshot

import (
	"encoding/json"
	"fmt"
)

// testStep is a single action in a test script.
type testStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Key    string `json:"key,omitempty"`
	Count  int    `json:"count,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected key presses, acknowledgements and
// screenshots across frames for unattended runs. Attach it to a Game with
// SetTestRunner.
//
// Supported actions:
//
//	{"action": "press", "key": "fire", "count": 3}
//	{"action": "wait", "frames": 60}
//	{"action": "screenshot", "label": "after-fire"}
//	{"action": "ack"}
//	{"action": "quit"}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses and validates a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("popshot: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("popshot: parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press":
			if st.Key == "" {
				return nil, fmt.Errorf("popshot: parse test script: step %d: press without key", i)
			}
		case "wait", "screenshot", "ack", "quit":
		default:
			return nil, fmt.Errorf("popshot: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches runner. Its step method runs at the start of every
// Update, before input is processed.
func (g *Game) SetTestRunner(runner *TestRunner) {
	g.testRunner = runner
}

// Done reports whether every step has been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(g *Game) {
	if r.done {
		return
	}
	// Let pending injections drain first.
	if len(g.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		n := max(st.Count, 1)
		for range n {
			if err := g.InjectKey(st.Key); err != nil {
				logf("test script: %v", err)
				break
			}
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		g.Screenshot(st.Label)
	case "ack":
		g.InjectAck()
	case "quit":
		g.quit = true
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(g.injectQueue) == 0 {
		r.done = true
	}
}
