package multitouch

import (
	"maps"
	"slices"
)

// GestureData is the per-gesture scratch space handed to every callback of
// one touch. The router seeds StartX/StartY at touch start; everything else
// belongs to the handlers, which typically stash offsets with Set and read
// them back in OnMove. It lives exactly as long as the gesture.
type GestureData struct {
	StartX, StartY float64

	values map[string]any // allocated on first Set
}

func newGestureData(x, y float64) *GestureData {
	return &GestureData{StartX: x, StartY: y}
}

// Set stores v under key, replacing any previous value.
func (d *GestureData) Set(key string, v any) {
	if d.values == nil {
		d.values = make(map[string]any)
	}
	d.values[key] = v
}

// Get returns the value stored under key.
func (d *GestureData) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Float returns the value under key as a float64. Missing keys and
// non-numeric values yield 0.
func (d *GestureData) Float(key string) float64 {
	switch v := d.values[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// Delete removes key. No-op if absent.
func (d *GestureData) Delete(key string) {
	delete(d.values, key)
}

// Len returns the number of handler-defined keys (StartX/StartY excluded).
func (d *GestureData) Len() int {
	return len(d.values)
}

// Keys returns the handler-defined keys in sorted order.
func (d *GestureData) Keys() []string {
	return slices.Sorted(maps.Keys(d.values))
}
