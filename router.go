package multitouch

import (
	"os"
	"slices"

	"github.com/rs/zerolog"
)

// defaultMaxBubbleDepth bounds the ancestor walk in FindMatchingElement.
const defaultMaxBubbleDepth = 256

// activeTouch is the binding of one live touch identifier.
type activeTouch struct {
	element  Element
	handlers Handlers
	data     *GestureData
	ending   bool // OnEnd is running; guards against a second termination
}

// Router binds concurrent touches to the registered elements they started
// on and forwards start/move/end to each element's Handlers.
//
// A Router is single-threaded: every method runs to completion, handlers
// included, before returning. Handlers may call back into the router.
type Router struct {
	picker   Picker
	registry map[Element]Handlers
	active   map[int]*activeTouch
	order    []int // active identifiers in binding order

	store    EntityStore
	logger   zerolog.Logger
	onError  func(*HandlerError)
	maxDepth int
}

// NewRouter creates a router that resolves touch-start points with picker.
// A nil picker hits nothing.
func NewRouter(picker Picker) *Router {
	return &Router{
		picker:   picker,
		registry: make(map[Element]Handlers),
		active:   make(map[int]*activeTouch),
		logger:   defaultLogger(),
		maxDepth: defaultMaxBubbleDepth,
	}
}

func defaultLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).
		Level(zerolog.WarnLevel).
		With().Timestamp().Str("component", "multitouch").
		Logger()
}

// SetLogger replaces the logger used for handler failures and warnings.
func (r *Router) SetLogger(l zerolog.Logger) {
	r.logger = l
}

// SetErrorHandler installs a hook that receives every recovered handler
// panic after it has been logged. Pass nil to remove it.
func (r *Router) SetErrorHandler(fn func(*HandlerError)) {
	r.onError = fn
}

// SetEntityStore sets the optional ECS bridge.
func (r *Router) SetEntityStore(store EntityStore) {
	r.store = store
}

// SetMaxBubbleDepth bounds how many ancestors FindMatchingElement visits.
// Values below 1 restore the default.
func (r *Router) SetMaxBubbleDepth(depth int) {
	if depth < 1 {
		depth = defaultMaxBubbleDepth
	}
	r.maxDepth = depth
}

// SetPicker replaces the pick service used by HandleTouchStart.
func (r *Router) SetPicker(picker Picker) {
	r.picker = picker
}

// --- Registry ---

// Register makes e interactive with the given handlers, replacing any
// previous registration. Live touches keep the handlers they started with.
func (r *Router) Register(e Element, h Handlers) {
	if e == nil {
		return
	}
	r.registry[e] = h
}

// Unregister removes e from the registry and terminates every live touch
// bound to it: OnEnd receives a synthetic record (see TouchPoint.Synthetic)
// and the binding is dropped. Unknown elements are a no-op.
func (r *Router) Unregister(e Element) {
	if e == nil {
		return
	}
	delete(r.registry, e)
	r.terminate(PhaseUnregister, func(t *activeTouch) bool { return t.element == e })
}

// HasElement reports whether e is registered.
func (r *Router) HasElement(e Element) bool {
	if e == nil {
		return false
	}
	_, ok := r.registry[e]
	return ok
}

// FindMatchingElement returns target if it is registered, otherwise its
// nearest registered ancestor, otherwise nil. Registering a container thus
// captures touches that land on any of its descendants.
//
// The walk stops after SetMaxBubbleDepth ancestors so a parent cycle in a
// malformed scene graph cannot hang the router.
func (r *Router) FindMatchingElement(target Element) Element {
	depth := 0
	for cur := target; cur != nil; cur = cur.ParentElement() {
		if _, ok := r.registry[cur]; ok {
			return cur
		}
		depth++
		if depth > r.maxDepth {
			r.logger.Warn().Int("max_depth", r.maxDepth).Msg("ancestor walk exceeded max depth; parent chain may be cyclic")
			return nil
		}
	}
	return nil
}

// --- Event handling ---

// HandleTouchStart binds each new touch in batch, in order, to the
// registered element under it and calls that element's OnStart. Records
// whose identifier is already live, that hit nothing, or that hit nothing
// registered are skipped. The binding is committed before OnStart runs.
func (r *Router) HandleTouchStart(batch []TouchPoint) {
	for _, tp := range batch {
		if _, live := r.active[tp.ID]; live {
			continue
		}
		if r.picker == nil {
			continue
		}
		target := r.picker.Pick(tp.X, tp.Y)
		if target == nil {
			continue
		}
		el := r.FindMatchingElement(target)
		if el == nil {
			continue
		}
		h, ok := r.registry[el]
		if !ok {
			continue
		}

		t := &activeTouch{element: el, handlers: h, data: newGestureData(tp.X, tp.Y)}
		r.active[tp.ID] = t
		r.order = append(r.order, tp.ID)

		r.emit(EventTouchStart, tp, t)
		r.invoke(PhaseStart, h.OnStart, tp, t)
	}
}

// HandleTouchMove calls OnMove for every record whose identifier is live.
// Unknown identifiers are ignored.
func (r *Router) HandleTouchMove(batch []TouchPoint) {
	for _, tp := range batch {
		t, ok := r.active[tp.ID]
		if !ok || t.ending {
			continue
		}
		r.emit(EventTouchMove, tp, t)
		r.invoke(PhaseMove, t.handlers.OnMove, tp, t)
	}
}

// HandleTouchEnd ends the live touches in changed, the points that just
// lifted. OnEnd runs first; the binding is then dropped whether or not the
// handler panicked. Platform cancel events use this method too.
func (r *Router) HandleTouchEnd(changed []TouchPoint) {
	for _, tp := range changed {
		t, ok := r.active[tp.ID]
		if !ok || t.ending {
			continue
		}
		r.end(PhaseEnd, EventTouchEnd, tp, t)
	}
}

// Clear drops every live touch without calling any handler. The registry
// is left alone.
func (r *Router) Clear() {
	clear(r.active)
	r.order = r.order[:0]
}

// Destroy terminates every live touch the way Unregister does, then
// empties the registry. Call it once when the router is discarded.
func (r *Router) Destroy() {
	r.terminate(PhaseDestroy, func(*activeTouch) bool { return true })
	clear(r.active)
	r.order = r.order[:0]
	clear(r.registry)
}

// --- Accessors ---

// ActiveTouchCount returns the number of live touches.
func (r *Router) ActiveTouchCount() int {
	return len(r.active)
}

// TouchInfo returns the binding of a live touch.
func (r *Router) TouchInfo(id int) (TouchInfo, bool) {
	t, ok := r.active[id]
	if !ok {
		return TouchInfo{}, false
	}
	return TouchInfo{Element: t.element, Handlers: t.handlers, Data: t.data}, true
}

// TouchesByElement returns the identifiers of live touches bound to e, in
// the order they were bound.
func (r *Router) TouchesByElement(e Element) []int {
	var ids []int
	for _, id := range r.order {
		if r.active[id].element == e {
			ids = append(ids, id)
		}
	}
	return ids
}

// --- Internals ---

// syntheticTouch builds the record passed to OnEnd when a gesture is torn
// down without a real end event. No current position exists, so it
// reports the gesture's start coordinates.
func syntheticTouch(id int, data *GestureData) TouchPoint {
	return TouchPoint{ID: id, X: data.StartX, Y: data.StartY, Synthetic: true}
}

// terminate force-ends every live touch accepted by match. It walks a
// snapshot of the binding order so handlers may mutate the router.
func (r *Router) terminate(phase Phase, match func(*activeTouch) bool) {
	if len(r.order) == 0 {
		return
	}
	for _, id := range slices.Clone(r.order) {
		t, ok := r.active[id]
		if !ok || t.ending || !match(t) {
			continue
		}
		r.end(phase, EventTouchCancel, syntheticTouch(id, t.data), t)
	}
}

// end runs OnEnd for t and drops its binding.
func (r *Router) end(phase Phase, ev EventType, tp TouchPoint, t *activeTouch) {
	t.ending = true
	r.invoke(phase, t.handlers.OnEnd, tp, t)
	r.remove(tp.ID, t)
	r.emit(ev, tp, t)
}

// remove drops the binding for id if it is still t. A handler may have
// cleared the router and rebound the identifier in the meantime.
func (r *Router) remove(id int, t *activeTouch) {
	if r.active[id] != t {
		return
	}
	delete(r.active, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
}

// invoke calls fn, recovering and reporting a panic.
func (r *Router) invoke(phase Phase, fn func(TouchPoint, *GestureData), tp TouchPoint, t *activeTouch) {
	if fn == nil {
		return
	}
	defer func() {
		if v := recover(); v != nil {
			r.reportPanic(&HandlerError{Phase: phase, TouchID: tp.ID, Element: t.element, Value: v})
		}
	}()
	fn(tp, t.data)
}

func (r *Router) reportPanic(herr *HandlerError) {
	r.logger.Error().
		Str("phase", herr.Phase.String()).
		Int("touch_id", herr.TouchID).
		Interface("panic", herr.Value).
		Msg("touch handler panicked")
	if r.onError != nil {
		r.onError(herr)
	}
}

func (r *Router) emit(typ EventType, tp TouchPoint, t *activeTouch) {
	if r.store == nil {
		return
	}
	r.store.EmitEvent(TouchEvent{
		Type:      typ,
		TouchID:   tp.ID,
		Element:   t.element,
		X:         tp.X,
		Y:         tp.Y,
		StartX:    t.data.StartX,
		StartY:    t.data.StartY,
		Synthetic: tp.Synthetic,
	})
}
