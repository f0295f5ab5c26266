package multitouch

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Scene owns a node tree, the Router that binds touches to its nodes, and
// the Input that feeds the router each frame. It implements Picker by hit
// testing its own tree.
type Scene struct {
	// ClearColor fills the screen before nodes are drawn. Zero alpha skips the fill.
	ClearColor Color

	root   *Node
	router *Router
	input  *Input
	camera *Camera
	tweens []*TweenGroup
	script *TouchScript
	hitBuf []*Node
	verts  []ebiten.Vertex
	view   [6]float64
	inds   []uint32

	debug     bool
	logger    zerolog.Logger
	baseLevel zerolog.Level // logger level outside debug mode
}

// NewScene creates a scene with a pre-created root container, a router
// picking against the tree, and an Ebitengine input source with
// mouse-as-touch enabled.
func NewScene() *Scene {
	s := &Scene{
		root:   NewContainer("root"),
		logger: defaultLogger(),
	}
	s.baseLevel = s.logger.GetLevel()
	s.router = NewRouter(s)
	s.input = NewInput(s.router, NewEbitenReader(true))
	return s
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Router returns the scene's touch router.
func (s *Scene) Router() *Router {
	return s.router
}

// Input returns the scene's input source.
func (s *Scene) Input() *Input {
	return s.input
}

// Register makes n draggable with the given handlers. Touches on any
// descendant of n are routed to n unless the descendant is registered too.
func (s *Scene) Register(n *Node, h Handlers) {
	s.router.Register(n, h)
}

// Dispose unregisters n and every descendant from the router, ending their
// live touches with synthetic OnEnd calls, then disposes the subtree.
func (s *Scene) Dispose(n *Node) {
	if n == nil || n.IsDisposed() {
		return
	}
	// Forced OnEnd handlers may edit the tree, so unregister from a snapshot.
	var nodes []*Node
	n.Walk(func(c *Node) {
		nodes = append(nodes, c)
	})
	for _, c := range nodes {
		s.router.Unregister(c)
	}
	n.Dispose()
}

// Update refreshes world transforms, advances tweens, the camera and the
// attached touch script, then reads one frame of input and routes it.
func (s *Scene) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))

	// Refresh world transforms first so hit testing sees this frame's layout.
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	s.updateTweens(dt)
	if s.camera != nil {
		s.camera.update(dt)
	}
	if s.script != nil {
		s.script.step(s)
	}

	st := s.input.update()
	if s.debug && st != (frameStats{}) {
		s.logger.Debug().
			Int("starts", st.starts).
			Int("moves", st.moves).
			Int("ends", st.ends).
			Int("active", s.router.ActiveTouchCount()).
			Msg("input frame")
	}
}

// SetLogger replaces the logger of the scene and its router.
// In debug mode the scene's copy is raised to debug level.
func (s *Scene) SetLogger(l zerolog.Logger) {
	s.baseLevel = l.GetLevel()
	s.logger = l
	if s.debug {
		s.logger = l.Level(zerolog.DebugLevel)
	}
	s.router.SetLogger(l)
}

// SetEntityStore sets the optional ECS bridge on the scene's router.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.router.SetEntityStore(store)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and every
// input frame that dispatched something is logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		s.logger = s.logger.Level(zerolog.DebugLevel)
	} else {
		s.logger = s.logger.Level(s.baseLevel)
	}
}
