package multitouch

// Injected frames are full snapshots of the pressed set. Each Inject call
// queues one frame derived from the previous queued frame, so calls compose
// into multi-finger sequences. Input.Update consumes one queued frame per
// call in place of the real reader; once the queue drains, fingers that
// were left down stay down until an InjectEnd releases them.

// InjectStart queues a frame in which finger id is pressed at (x, y).
// If id is already down in the queued state this behaves like InjectMove.
func (in *Input) InjectStart(id int, x, y float64) {
	in.InjectMove(id, x, y)
}

// InjectMove queues a frame in which finger id is at (x, y).
func (in *Input) InjectMove(id int, x, y float64) {
	next := cloneTouches(in.injectTail)
	pt := TouchPoint{ID: id, X: x, Y: y}
	replaced := false
	for i := range next {
		if next[i].ID == id {
			next[i] = pt
			replaced = true
			break
		}
	}
	if !replaced {
		next = append(next, pt)
	}
	in.queueFrame(next)
}

// InjectEnd queues a frame in which finger id has lifted.
func (in *Input) InjectEnd(id int) {
	next := make([]TouchPoint, 0, len(in.injectTail))
	for _, p := range in.injectTail {
		if p.ID != id {
			next = append(next, p)
		}
	}
	in.queueFrame(next)
}

// InjectFrame queues a frame whose pressed set is exactly points. Use it to
// start or lift several fingers in the same frame.
func (in *Input) InjectFrame(points ...TouchPoint) {
	in.queueFrame(cloneTouches(points))
}

// InjectTap queues a press followed by a release at the same point.
// Consumes two frames.
func (in *Input) InjectTap(id int, x, y float64) {
	in.InjectStart(id, x, y)
	in.InjectEnd(id)
}

// InjectDrag queues a full drag for finger id: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release after reaching (toX, toY). Minimum frames is 2 (press + release).
func (in *Input) InjectDrag(id int, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectStart(id, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		in.InjectMove(id, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.InjectEnd(id)
}

// PendingInjections returns the number of queued injected frames.
func (in *Input) PendingInjections() int {
	return len(in.injectQueue)
}

func (in *Input) queueFrame(frame []TouchPoint) {
	in.injectQueue = append(in.injectQueue, frame)
	in.injectTail = frame
}

// popInjected removes and returns the oldest queued frame.
func (in *Input) popInjected() []TouchPoint {
	frame := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue[len(in.injectQueue)-1] = nil
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]
	in.injectHeld = frame
	return frame
}

func cloneTouches(points []TouchPoint) []TouchPoint {
	out := make([]TouchPoint, len(points))
	copy(out, points)
	return out
}
