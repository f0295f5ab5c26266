package multitouch

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a touch script.
type scriptStep struct {
	Action string  `yaml:"action"`
	ID     int     `yaml:"id,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// scriptFile is the top-level document of a touch script.
type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

var errNoSteps = errors.New("no steps")

// TouchScript sequences injected touches across frames for automated
// testing of multi-finger interactions. Attach it with Scene.SetTouchScript.
//
// Steps (YAML, or JSON since JSON is valid YAML):
//
//	steps:
//	  - {action: start, id: 1, x: 100, y: 100}
//	  - {action: move,  id: 1, x: 140, y: 120}
//	  - {action: end,   id: 1}
//	  - {action: tap,   id: 2, x: 300, y: 80}
//	  - {action: drag,  id: 3, fromX: 0, fromY: 0, toX: 50, toY: 50, frames: 6}
//	  - {action: wait,  frames: 10}
//
// Consecutive start/move/end steps for different fingers are queued in the
// same frame so several fingers can go down together. A second step for the
// same finger begins a new frame.
type TouchScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTouchScript parses a YAML or JSON touch script.
func LoadTouchScript(data []byte) (*TouchScript, error) {
	var file scriptFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse touch script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse touch script: %w", errNoSteps)
	}
	for i, st := range file.Steps {
		switch st.Action {
		case "start", "move", "end", "tap", "drag", "wait":
		default:
			return nil, fmt.Errorf("parse touch script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TouchScript{steps: file.Steps}, nil
}

// SetTouchScript attaches a script to the scene. Scene.Update advances it
// before reading input each frame. Pass nil to detach.
func (s *Scene) SetTouchScript(script *TouchScript) {
	s.script = script
}

// Done reports whether every step has run and its injected frames have
// been consumed.
func (ts *TouchScript) Done() bool {
	return ts.done
}

// step advances the script by one frame. Called from Scene.Update.
func (ts *TouchScript) step(s *Scene) {
	if ts.done {
		return
	}
	in := s.input
	// Wait for pending injections to drain before advancing.
	if in.PendingInjections() > 0 {
		return
	}
	if ts.waitCount > 0 {
		ts.waitCount--
		return
	}
	if ts.cursor >= len(ts.steps) {
		ts.done = true
		return
	}

	// Fold a run of start/move/end steps for distinct fingers into one frame.
	var frame []TouchPoint
	folding := false
	seen := make(map[int]bool)
	for ts.cursor < len(ts.steps) {
		st := ts.steps[ts.cursor]
		if st.Action != "start" && st.Action != "move" && st.Action != "end" {
			break
		}
		if seen[st.ID] {
			break
		}
		seen[st.ID] = true
		if !folding {
			frame = cloneTouches(in.injectTail)
			folding = true
		}
		frame = applyStep(frame, st)
		ts.cursor++
	}
	if folding {
		in.InjectFrame(frame...)
		return
	}

	st := ts.steps[ts.cursor]
	ts.cursor++
	switch st.Action {
	case "tap":
		in.InjectTap(st.ID, st.X, st.Y)
	case "drag":
		in.InjectDrag(st.ID, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			ts.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}

// applyStep returns frame with a start/move/end step applied.
func applyStep(frame []TouchPoint, st scriptStep) []TouchPoint {
	for i := range frame {
		if frame[i].ID != st.ID {
			continue
		}
		if st.Action == "end" {
			return append(frame[:i], frame[i+1:]...)
		}
		frame[i].X, frame[i].Y = st.X, st.Y
		return frame
	}
	if st.Action == "end" {
		return frame
	}
	return append(frame, TouchPoint{ID: st.ID, X: st.X, Y: st.Y})
}
