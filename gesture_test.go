package multitouch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGestureData(t *testing.T) {
	d := newGestureData(3, 4)
	assert.Equal(t, 3.0, d.StartX)
	assert.Equal(t, 4.0, d.StartY)
	assert.Zero(t, d.Len())

	_, ok := d.Get("missing")
	assert.False(t, ok)
	d.Delete("missing") // nil map

	d.Set("dx", 1.5)
	d.Set("label", "card")
	v, ok := d.Get("label")
	assert.True(t, ok)
	assert.Equal(t, "card", v)
	assert.Equal(t, 2, d.Len())

	d.Delete("label")
	assert.Equal(t, 1, d.Len())
}

func TestGestureData_Float(t *testing.T) {
	d := newGestureData(0, 0)
	d.Set("f64", 1.5)
	d.Set("f32", float32(2.5))
	d.Set("int", 3)
	d.Set("int64", int64(4))
	d.Set("str", "x")

	tests := map[string]float64{
		"f64":     1.5,
		"f32":     2.5,
		"int":     3,
		"int64":   4,
		"str":     0,
		"missing": 0,
	}
	for key, want := range tests {
		t.Run(key, func(t *testing.T) {
			assert.Equal(t, want, d.Float(key))
		})
	}
}

func TestGestureData_Keys(t *testing.T) {
	d := newGestureData(0, 0)
	assert.Empty(t, d.Keys())

	d.Set("offsetY", 1.0)
	d.Set("offsetX", 2.0)
	d.Set("label", "card")
	assert.Equal(t, []string{"label", "offsetX", "offsetY"}, d.Keys())

	d.Delete("label")
	assert.Equal(t, []string{"offsetX", "offsetY"}, d.Keys())
}
