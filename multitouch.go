package multitouch

import "image/color"

// MouseTouchID is the touch identifier reserved for the mouse when it is
// routed as a touch (left button held = finger down). Real touch IDs from
// Ebitengine are small sequential integers and never reach this value.
const MouseTouchID = 999

// Element is a node in a scene graph that touches can be bound to.
// Identity is interface equality, so the dynamic type must be comparable
// (pointer types are the norm). ParentElement returns nil at a root; it
// must return an untyped nil, not a nil pointer wrapped in the interface.
type Element interface {
	ParentElement() Element
}

// Picker resolves a point to the topmost element under it, or nil when the
// point hits nothing. Coordinates are in the same space as TouchPoint.X/Y.
type Picker interface {
	Pick(x, y float64) Element
}

// PickerFunc adapts a plain function to the Picker interface.
type PickerFunc func(x, y float64) Element

// Pick calls f(x, y).
func (f PickerFunc) Pick(x, y float64) Element {
	return f(x, y)
}

// TouchPoint is a single touch sample delivered by an input source.
type TouchPoint struct {
	// ID identifies the finger. It is unique among live touches and may
	// be reused once the touch has ended.
	ID   int
	X, Y float64

	// Source is the platform record the sample came from, if any. The
	// router never reads it.
	Source any

	// Synthetic is set on records the router fabricates to end a gesture
	// that had no real end event (Unregister, Destroy). X and Y then hold
	// the gesture's start coordinates.
	Synthetic bool
}

// Handlers is the callback set registered for one element. Any field may
// be nil. The same *GestureData is passed to every phase of one gesture.
type Handlers struct {
	OnStart func(TouchPoint, *GestureData)
	OnMove  func(TouchPoint, *GestureData)
	OnEnd   func(TouchPoint, *GestureData)
}

// TouchInfo describes a live touch binding.
type TouchInfo struct {
	Element  Element
	Handlers Handlers
	Data     *GestureData
}

// EventType identifies a kind of routed touch event.
type EventType uint8

const (
	EventTouchStart  EventType = iota // a touch was bound to an element
	EventTouchMove                    // a bound touch moved
	EventTouchEnd                     // a bound touch lifted or was cancelled by the platform
	EventTouchCancel                  // a binding was terminated by Unregister or Destroy
)

func (t EventType) String() string {
	switch t {
	case EventTouchStart:
		return "start"
	case EventTouchMove:
		return "move"
	case EventTouchEnd:
		return "end"
	case EventTouchCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// TouchEvent carries routed touch data for the ECS bridge.
type TouchEvent struct {
	Type      EventType
	TouchID   int
	Element   Element
	X, Y      float64
	StartX    float64
	StartY    float64
	Synthetic bool
}

// EntityStore is the interface for optional ECS integration.
// When set on a Router, every routed touch event is forwarded to it as soon
// as the router state changes: start and move before the element's handler
// runs, end and cancel after the binding has been dropped. A handler that
// re-enters the router therefore never reorders a touch's events.
type EntityStore interface {
	EmitEvent(event TouchEvent)
}

// Vec2 is a 2D vector used for positions and polygon points.
type Vec2 struct {
	X, Y float64
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

// ColorWhite is the default node color.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA, scaling alpha by the given
// inherited alpha.
func (c Color) toRGBA(alpha float64) color.RGBA {
	a := clamp01(c.A * alpha)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
