package multitouch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTouchScript_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"malformed", "steps: [", "parse touch script"},
		{"empty", "steps: []", "no steps"},
		{"unknown action", "steps:\n  - {action: pinch, id: 1}", `step 0: unknown action "pinch"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTouchScript([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := LoadTouchScript([]byte("steps: []"))
	assert.ErrorIs(t, err, errNoSteps)
}

func TestLoadTouchScript_JSON(t *testing.T) {
	ts, err := LoadTouchScript([]byte(`{"steps": [{"action": "drag", "id": 3, "fromX": 1, "toX": 9, "frames": 4}]}`))
	require.NoError(t, err)
	require.Len(t, ts.steps, 1)
	assert.Equal(t, scriptStep{Action: "drag", ID: 3, FromX: 1, ToX: 9, Frames: 4}, ts.steps[0])
}

func TestTouchScript_TwoFingerDrag(t *testing.T) {
	s := newTestScene(t)
	a := NewRect("a", 50, 50, ColorWhite)
	b := NewRect("b", 50, 50, ColorWhite)
	b.SetPosition(100, 0)
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	var logA, logB routeLog
	s.Register(a, logA.handlers())
	s.Register(b, logB.handlers())

	ts, err := LoadTouchScript([]byte(`
steps:
  - {action: start, id: 1, x: 10, y: 10}
  - {action: start, id: 2, x: 110, y: 10}
  - {action: move,  id: 1, x: 20, y: 10}
  - {action: move,  id: 2, x: 120, y: 10}
  - {action: end,   id: 1}
  - {action: end,   id: 2}
`))
	require.NoError(t, err)
	s.SetTouchScript(ts)

	s.Update()
	assert.Equal(t, 2, s.Router().ActiveTouchCount(), "both fingers start in the first frame")

	s.Update()
	s.Update()
	assert.False(t, ts.Done())
	s.Update()
	assert.True(t, ts.Done())

	assert.Equal(t, []string{"start:1", "move:1", "end:1"}, logA.entries)
	assert.Equal(t, []string{"start:2", "move:2", "end:2"}, logB.entries)
	assert.Equal(t, 20.0, logA.points[2].X, "end carries the last position")
}

func TestTouchScript_SameFingerStartsNewFrame(t *testing.T) {
	s := newTestScene(t)
	ts, err := LoadTouchScript([]byte(`
steps:
  - {action: start, id: 1, x: 0, y: 0}
  - {action: end,   id: 1}
`))
	require.NoError(t, err)
	s.SetTouchScript(ts)

	s.Update()
	assert.Equal(t, 1, s.Input().Pressed())
	s.Update()
	assert.Zero(t, s.Input().Pressed())
}

func TestTouchScript_TapAndDragDrainBeforeAdvancing(t *testing.T) {
	s := newTestScene(t)
	ts, err := LoadTouchScript([]byte(`
steps:
  - {action: tap,  id: 1, x: 5, y: 5}
  - {action: drag, id: 2, fromX: 0, fromY: 0, toX: 10, toY: 0, frames: 3}
`))
	require.NoError(t, err)
	s.SetTouchScript(ts)

	// tap: 2 frames, drag: 3 frames, then one frame to notice the end.
	for i := 0; i < 5; i++ {
		s.Update()
		require.False(t, ts.Done(), "frame %d", i)
	}
	s.Update()
	assert.True(t, ts.Done())
}

func TestTouchScript_Wait(t *testing.T) {
	s := newTestScene(t)
	ts, err := LoadTouchScript([]byte("steps:\n  - {action: wait, frames: 3}"))
	require.NoError(t, err)
	s.SetTouchScript(ts)

	for i := 0; i < 3; i++ {
		s.Update()
	}
	assert.False(t, ts.Done())
	s.Update()
	assert.True(t, ts.Done())
}

func TestApplyStep(t *testing.T) {
	frame := []TouchPoint{{ID: 1, X: 1, Y: 1}}

	frame = applyStep(frame, scriptStep{Action: "start", ID: 2, X: 5, Y: 5})
	assert.Equal(t, []TouchPoint{{ID: 1, X: 1, Y: 1}, {ID: 2, X: 5, Y: 5}}, frame)

	frame = applyStep(frame, scriptStep{Action: "move", ID: 1, X: 9, Y: 9})
	assert.Equal(t, TouchPoint{ID: 1, X: 9, Y: 9}, frame[0])

	frame = applyStep(frame, scriptStep{Action: "end", ID: 1})
	assert.Equal(t, []TouchPoint{{ID: 2, X: 5, Y: 5}}, frame)

	frame = applyStep(frame, scriptStep{Action: "end", ID: 42})
	assert.Len(t, frame, 1)
}
