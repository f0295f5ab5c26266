package multitouch

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerReader reports the points that are pressed right now.
type PointerReader interface {
	// AppendPointers appends every currently pressed point to buf and
	// returns the extended slice. Order should be stable across frames.
	AppendPointers(buf []TouchPoint) []TouchPoint
}

// ebitenReader reads touches, and optionally the left mouse button, from
// Ebitengine. Only valid while the ebiten game loop is running.
type ebitenReader struct {
	ids          []ebiten.TouchID
	mouseAsTouch bool
}

// NewEbitenReader returns a PointerReader backed by Ebitengine's touch API.
// With mouseAsTouch set, holding the left mouse button reports a point with
// identifier MouseTouchID at the cursor.
func NewEbitenReader(mouseAsTouch bool) PointerReader {
	return &ebitenReader{mouseAsTouch: mouseAsTouch}
}

func (r *ebitenReader) AppendPointers(buf []TouchPoint) []TouchPoint {
	r.ids = ebiten.AppendTouchIDs(r.ids[:0])
	for _, id := range r.ids {
		x, y := ebiten.TouchPosition(id)
		buf = append(buf, TouchPoint{ID: int(id), X: float64(x), Y: float64(y), Source: id})
	}
	if r.mouseAsTouch && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		buf = append(buf, TouchPoint{ID: MouseTouchID, X: float64(x), Y: float64(y), Source: ebiten.MouseButtonLeft})
	}
	return buf
}

// frameStats counts the records dispatched in one Input.Update.
type frameStats struct {
	starts, moves, ends int
}

// Input turns per-frame pointer snapshots into router batches. Each
// Update compares the pressed set with the previous frame: new identifiers
// become one HandleTouchStart batch, vanished ones one HandleTouchEnd batch
// (at their last known position), and surviving ones one HandleTouchMove
// batch when any of them moved.
type Input struct {
	router        *Router
	reader        PointerReader
	screenToWorld func(x, y float64) (float64, float64)

	cur, prev           []TouchPoint
	starts, moves, ends []TouchPoint

	injectQueue [][]TouchPoint
	injectHeld  []TouchPoint // pressed set after the last consumed injected frame
	injectTail  []TouchPoint // pressed set after the last queued injected frame
}

// NewInput creates an input source that feeds router from reader.
// A nil reader reports nothing; injected frames still work.
func NewInput(router *Router, reader PointerReader) *Input {
	return &Input{router: router, reader: reader}
}

// SetReader replaces the pointer reader.
func (in *Input) SetReader(reader PointerReader) {
	in.reader = reader
}

// SetScreenToWorld installs a conversion applied to every point before it
// reaches the router. Nil means screen and world coordinates coincide.
func (in *Input) SetScreenToWorld(fn func(x, y float64) (float64, float64)) {
	in.screenToWorld = fn
}

// Update reads one frame of input and dispatches it.
func (in *Input) Update() {
	in.update()
}

func (in *Input) update() frameStats {
	in.cur = in.cur[:0]
	switch {
	case len(in.injectQueue) > 0:
		in.cur = append(in.cur, in.popInjected()...)
	case len(in.injectHeld) > 0:
		in.cur = append(in.cur, in.injectHeld...)
	case in.reader != nil:
		in.cur = in.reader.AppendPointers(in.cur)
	}
	if in.screenToWorld != nil {
		for i := range in.cur {
			in.cur[i].X, in.cur[i].Y = in.screenToWorld(in.cur[i].X, in.cur[i].Y)
		}
	}
	return in.dispatch()
}

func (in *Input) dispatch() frameStats {
	in.starts = in.starts[:0]
	in.moves = in.moves[:0]
	in.ends = in.ends[:0]

	moved := false
	for _, p := range in.cur {
		q, ok := findPoint(in.prev, p.ID)
		if !ok {
			in.starts = append(in.starts, p)
			continue
		}
		if q.X != p.X || q.Y != p.Y {
			moved = true
		}
		in.moves = append(in.moves, p)
	}
	for _, q := range in.prev {
		if _, ok := findPoint(in.cur, q.ID); !ok {
			in.ends = append(in.ends, q)
		}
	}
	if !moved {
		in.moves = in.moves[:0]
	}

	in.prev = append(in.prev[:0], in.cur...)

	if in.router != nil {
		if len(in.ends) > 0 {
			in.router.HandleTouchEnd(in.ends)
		}
		if len(in.starts) > 0 {
			in.router.HandleTouchStart(in.starts)
		}
		if len(in.moves) > 0 {
			in.router.HandleTouchMove(in.moves)
		}
	}
	return frameStats{starts: len(in.starts), moves: len(in.moves), ends: len(in.ends)}
}

// Pressed returns the number of points pressed as of the last Update.
func (in *Input) Pressed() int {
	return len(in.prev)
}

func findPoint(points []TouchPoint, id int) (TouchPoint, bool) {
	for _, p := range points {
		if p.ID == id {
			return p, true
		}
	}
	return TouchPoint{}, false
}
