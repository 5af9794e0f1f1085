package hero

import (
	"encoding/json"
	"fmt"
	"math"
)

// defaultFrameDT is the tick length used by TestRunner.Run when FrameDT is
// unset.
const defaultFrameDT = 1.0 / 60

// testStep represents a single action in a test script.
type testStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
	Seconds float64 `json:"seconds,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences scripted input events, screenshots and waits across
// frames for automated testing. Attach it to a Game via SetTestRunner, or drive
// a Section directly with Run.
//
// Actions: "mount" (width, height), "unmount", "scroll" (y), "pointer" (x, y),
// "resize" (width, height), "screenshot" (label) and "wait" (seconds or
// frames). Screenshots are only taken when the runner is attached to a Game.
type TestRunner struct {
	// FrameDT is the tick length used by Run and by frame-count waits.
	FrameDT float64

	steps    []testStep
	cursor   int
	waitLeft float64
	done     bool

	screenshot func(label string)
}

// LoadTestScript parses a JSON test script and returns a TestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "mount", "unmount", "scroll", "pointer", "resize", "screenshot", "wait":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps, FrameDT: defaultFrameDT}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Run executes the whole script against s on c, advancing c tick by tick
// through every wait.
func (r *TestRunner) Run(s *Section, c *Clock) {
	dt := r.frameDT()
	for !r.done {
		r.step(s, c, dt)
	}
}

// step advances the runner by one tick of dt seconds: it executes every
// instantaneous action up to the next wait, then moves the clock forward by at
// most dt. Called from Game.Update.
func (r *TestRunner) step(s *Section, c *Clock, dt float64) {
	if r.done {
		return
	}
	for r.waitLeft <= 0 && r.cursor < len(r.steps) {
		r.exec(s, c, r.steps[r.cursor])
		r.cursor++
	}
	if r.waitLeft > 0 {
		adv := math.Min(dt, r.waitLeft)
		c.Advance(adv)
		r.waitLeft -= adv
		if r.waitLeft < 1e-9 {
			r.waitLeft = 0
		}
	}
	if r.cursor >= len(r.steps) && r.waitLeft <= 0 {
		r.done = true
	}
}

func (r *TestRunner) exec(s *Section, c *Clock, st testStep) {
	switch st.Action {
	case "mount":
		s.Mount(c, st.Width, st.Height)
	case "unmount":
		s.Unmount()
	case "scroll":
		s.OnScroll(st.Y)
	case "pointer":
		s.OnPointerMove(st.X, st.Y)
	case "resize":
		s.OnResize(st.Width, st.Height)
	case "screenshot":
		if r.screenshot != nil {
			r.screenshot(st.Label)
		}
	case "wait":
		r.waitLeft = st.Seconds
		if st.Frames > 0 {
			r.waitLeft += float64(st.Frames) * r.frameDT()
		}
	}
}

func (r *TestRunner) frameDT() float64 {
	if r.FrameDT > 0 {
		return r.FrameDT
	}
	return defaultFrameDT
}
