package multitouch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

func TestTweensReachTarget(t *testing.T) {
	tests := []struct {
		name  string
		tween func(n *Node) *TweenGroup
		check func(t *testing.T, n *Node)
	}{
		{
			name:  "position",
			tween: func(n *Node) *TweenGroup { return TweenPosition(n, 100, 200, 1, ease.Linear) },
			check: func(t *testing.T, n *Node) {
				assert.InDelta(t, 100, n.X, 0.5)
				assert.InDelta(t, 200, n.Y, 0.5)
			},
		},
		{
			name:  "scale",
			tween: func(n *Node) *TweenGroup { return TweenScale(n, 2, 3, 1, ease.Linear) },
			check: func(t *testing.T, n *Node) {
				assert.InDelta(t, 2, n.ScaleX, 0.01)
				assert.InDelta(t, 3, n.ScaleY, 0.01)
			},
		},
		{
			name:  "alpha",
			tween: func(n *Node) *TweenGroup { return TweenAlpha(n, 0.25, 1, ease.Linear) },
			check: func(t *testing.T, n *Node) {
				assert.InDelta(t, 0.25, n.Alpha, 0.01)
			},
		},
		{
			name: "color",
			tween: func(n *Node) *TweenGroup {
				return TweenColor(n, Color{R: 0, G: 1, B: 0.5, A: 0.5}, 1, ease.Linear)
			},
			check: func(t *testing.T, n *Node) {
				assert.InDelta(t, 0, n.Color.R, 0.01)
				assert.InDelta(t, 1, n.Color.G, 0.01)
				assert.InDelta(t, 0.5, n.Color.B, 0.01)
				assert.InDelta(t, 0.5, n.Color.A, 0.01)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewRect("n", 10, 10, Color{R: 1, A: 1})
			n.X, n.Y = 10, 20
			g := tt.tween(n)

			// Exact halves avoid float32 accumulation drift.
			g.Update(0.5)
			assert.False(t, g.Done)
			g.Update(0.5)

			require.True(t, g.Done)
			assert.True(t, n.transformDirty)
			tt.check(t, n)
		})
	}
}

func TestTweenGroup_DisposedNodeStops(t *testing.T) {
	n := NewContainer("n")
	n.X = 10
	g := TweenPosition(n, 100, 100, 1, ease.Linear)
	g.Update(0.1)
	x := n.X

	n.Dispose()
	g.Update(0.1)

	assert.True(t, g.Done)
	assert.Equal(t, x, n.X)
}

func TestSceneAddTween_ReplacesStaleTweenOnSameField(t *testing.T) {
	s := newTestScene(t)
	n := NewRect("n", 10, 10, ColorWhite)

	fadeOut := TweenAlpha(n, 0, 1, ease.Linear)
	move := TweenPosition(n, 50, 50, 1, ease.Linear)
	s.AddTween(fadeOut)
	s.AddTween(move)
	assert.False(t, fadeOut.Done, "different fields coexist")

	fadeIn := TweenAlpha(n, 1, 1, ease.Linear)
	s.AddTween(fadeIn)
	assert.True(t, fadeOut.Done)
	assert.False(t, move.Done)

	s.updateTweens(0.1)
	assert.Len(t, s.tweens, 2, "finished tweens are dropped")
}

func TestSceneCancelTweens(t *testing.T) {
	s := newTestScene(t)
	a := NewRect("a", 10, 10, ColorWhite)
	b := NewRect("b", 10, 10, ColorWhite)
	ga := TweenPosition(a, 50, 50, 1, ease.Linear)
	gb := TweenPosition(b, 50, 50, 1, ease.Linear)
	s.AddTween(ga)
	s.AddTween(gb)

	s.CancelTweens(a)
	s.updateTweens(0.5)

	assert.True(t, ga.Done)
	assert.Zero(t, a.X)
	assert.InDelta(t, 25, b.X, 0.5)
	assert.Equal(t, []*TweenGroup{gb}, s.tweens)
}

func TestSceneUpdate_AdvancesTweens(t *testing.T) {
	s := newTestScene(t)
	n := NewRect("n", 10, 10, ColorWhite)
	s.Root().AddChild(n)
	s.AddTween(TweenPosition(n, 100, 0, 0.1, ease.Linear))

	for i := 0; i < 20; i++ {
		s.Update()
	}

	assert.InDelta(t, 100, n.X, 0.5)
	assert.Empty(t, s.tweens)
}
