package multitouch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- HitShape ---

func TestHitShapes(t *testing.T) {
	square := HitPolygon{Points: []Vec2{{0, 0}, {100, 0}, {100, 100}, {0, 100}}}
	clockwise := HitPolygon{Points: []Vec2{{0, 100}, {100, 100}, {100, 0}, {0, 0}}}
	triangle := HitPolygon{Points: []Vec2{{0, 0}, {100, 0}, {50, 100}}}
	degenerate := HitPolygon{Points: []Vec2{{0, 0}, {1, 1}}}
	rect := HitRect{X: 10, Y: 20, Width: 100, Height: 50}
	circle := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name  string
		shape HitShape
		x, y  float64
		want  bool
	}{
		{"rect inside", rect, 50, 40, true},
		{"rect top-left corner", rect, 10, 20, true},
		{"rect bottom-right corner", rect, 110, 70, true},
		{"rect outside left", rect, 5, 40, false},
		{"rect outside bottom", rect, 50, 75, false},
		{"circle center", circle, 50, 50, true},
		{"circle on circumference", circle, 75, 50, true},
		{"circle outside", circle, 80, 50, false},
		{"circle outside diagonal", circle, 70, 70, false},
		{"square inside", square, 50, 50, true},
		{"square on edge", square, 0, 50, true},
		{"square outside", square, -1, 50, false},
		{"clockwise inside", clockwise, 50, 50, true},
		{"clockwise outside", clockwise, -1, 50, false},
		{"triangle center", triangle, 50, 50, true},
		{"triangle far left", triangle, -10, 50, false},
		{"degenerate", degenerate, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.Contains(tt.x, tt.y))
		})
	}
}

// --- nodeContainsLocal ---

func TestNodeContainsLocal(t *testing.T) {
	rect := NewRect("rect", 100, 50, ColorWhite)
	assert.True(t, nodeContainsLocal(rect, 50, 25))
	assert.True(t, nodeContainsLocal(rect, 0, 0))
	assert.False(t, nodeContainsLocal(rect, -1, 25))
	assert.False(t, nodeContainsLocal(rect, 101, 25))

	shaped := NewRect("shaped", 64, 64, ColorWhite)
	shaped.HitShape = HitCircle{CenterX: 32, CenterY: 32, Radius: 16}
	assert.True(t, nodeContainsLocal(shaped, 32, 32))
	assert.False(t, nodeContainsLocal(shaped, 0, 0), "HitShape replaces the box")

	box := NewContainer("box")
	assert.False(t, nodeContainsLocal(box, 0, 0), "container without HitShape")
	box.HitShape = HitRect{Width: 100, Height: 100}
	assert.True(t, nodeContainsLocal(box, 50, 50))
}

// --- Traversal ---

func TestHitTest(t *testing.T) {
	tests := []struct {
		name  string
		build func(root *Node) (a, b *Node)
		x, y  float64
		want  func(a, b *Node) *Node
	}{
		{
			name: "topmost wins",
			build: func(root *Node) (*Node, *Node) {
				a, b := NewRect("a", 100, 100, ColorWhite), NewRect("b", 100, 100, ColorWhite)
				root.AddChild(a)
				root.AddChild(b)
				return a, b
			},
			x: 50, y: 50,
			want: func(a, b *Node) *Node { return b },
		},
		{
			name: "skips invisible",
			build: func(root *Node) (*Node, *Node) {
				a, b := NewRect("a", 100, 100, ColorWhite), NewRect("b", 100, 100, ColorWhite)
				b.Visible = false
				root.AddChild(a)
				root.AddChild(b)
				return a, b
			},
			x: 50, y: 50,
			want: func(a, b *Node) *Node { return a },
		},
		{
			name: "skips non-interactable",
			build: func(root *Node) (*Node, *Node) {
				a, b := NewRect("a", 100, 100, ColorWhite), NewRect("b", 100, 100, ColorWhite)
				b.Interactable = false
				root.AddChild(a)
				root.AddChild(b)
				return a, b
			},
			x: 50, y: 50,
			want: func(a, b *Node) *Node { return a },
		},
		{
			name: "higher ZIndex on top",
			build: func(root *Node) (*Node, *Node) {
				a, b := NewRect("a", 100, 100, ColorWhite), NewRect("b", 100, 100, ColorWhite)
				a.SetZIndex(10)
				root.AddChild(a)
				root.AddChild(b)
				return a, b
			},
			x: 50, y: 50,
			want: func(a, b *Node) *Node { return a },
		},
		{
			name: "miss",
			build: func(root *Node) (*Node, *Node) {
				a := NewRect("a", 100, 100, ColorWhite)
				root.AddChild(a)
				return a, nil
			},
			x: 200, y: 200,
			want: func(a, b *Node) *Node { return nil },
		},
		{
			name: "translated",
			build: func(root *Node) (*Node, *Node) {
				a := NewRect("a", 100, 100, ColorWhite)
				a.SetPosition(200, 200)
				root.AddChild(a)
				return a, nil
			},
			x: 250, y: 250,
			want: func(a, b *Node) *Node { return a },
		},
		{
			name: "rotated about pivot",
			build: func(root *Node) (*Node, *Node) {
				a := NewRect("a", 100, 100, ColorWhite)
				a.SetPivot(50, 50)
				a.SetPosition(50, 50)
				a.SetRotation(math.Pi / 4)
				root.AddChild(a)
				return a, nil
			},
			x: 50, y: 50,
			want: func(a, b *Node) *Node { return a },
		},
		{
			name: "child of translated group",
			build: func(root *Node) (*Node, *Node) {
				group := NewContainer("group")
				group.SetPosition(300, 0)
				a := NewRect("a", 10, 10, ColorWhite)
				group.AddChild(a)
				root.AddChild(group)
				return a, nil
			},
			x: 305, y: 5,
			want: func(a, b *Node) *Node { return a },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene(t)
			a, b := tt.build(s.Root())
			updateWorldTransform(s.root, identityTransform, 1, false)
			assert.Equal(t, tt.want(a, b), s.hitTest(tt.x, tt.y))
		})
	}
}

func TestCollectInteractable_SkipsSubtrees(t *testing.T) {
	for _, name := range []string{"invisible", "non-interactable"} {
		t.Run(name, func(t *testing.T) {
			root := NewContainer("root")
			group := NewContainer("group")
			if name == "invisible" {
				group.Visible = false
			} else {
				group.Interactable = false
			}
			child := NewRect("child", 100, 100, ColorWhite)
			group.AddChild(child)
			root.AddChild(group)

			assert.NotContains(t, collectInteractable(root, nil), child)
		})
	}
}

func TestScenePick_ReturnsUntypedNilOnMiss(t *testing.T) {
	s := newTestScene(t)
	updateWorldTransform(s.root, identityTransform, 1, false)
	assert.True(t, s.Pick(10, 10) == nil)
}
