package celebrate

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Count  int     `yaml:"count,omitempty"`
	Width  int     `yaml:"width,omitempty"`
	Height int     `yaml:"height,omitempty"`
	Scale  float64 `yaml:"scale,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// testScript is the top-level structure for a test script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

// TestRunner sequences triggers, injected input and screenshots across
// frames for automated visual testing. Attach to a Scene via SetTestRunner.
//
// Supported actions: celebrate, confetti (x, y, count), firework (x),
// aurora (x, y), click (x, y), resize (width, height, scale), wait (frames),
// waitIdle, screenshot (label).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	waitIdle  bool
	done      bool
}

// LoadTestScript parses a YAML (or JSON) test script and returns a
// TestRunner ready to be attached to a Scene via SetTestRunner.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownAction(st.Action) {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func knownAction(a string) bool {
	switch a {
	case "celebrate", "confetti", "firework", "aurora", "click",
		"resize", "wait", "waitIdle", "screenshot":
		return true
	}
	return false
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before input processing each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.waitIdle {
		if !s.engine.Idle() {
			return
		}
		r.waitIdle = false
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "celebrate":
		s.Celebrate()
	case "confetti":
		s.engine.Burst(st.X, st.Y, st.Count)
	case "firework":
		s.engine.Launch(st.X)
	case "aurora":
		s.AuroraBurst(st.X, st.Y)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "resize":
		s.surface.Resize(st.Width, st.Height, st.Scale)
	case "screenshot":
		s.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "waitIdle":
		r.waitIdle = true
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !r.waitIdle && len(s.injectQueue) == 0 {
		r.done = true
	}
}
