package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointf_Arithmetic(t *testing.T) {
	p := Pt(3, 4)

	assert.Equal(t, Pt(4, 6), p.Add(Pt(1, 2)))
	assert.Equal(t, Pt(2, 2), p.Sub(Pt(1, 2)))
	assert.Equal(t, Pt(6, 12), p.Mul(Pt(2, 3)))
	assert.Equal(t, Pt(1.5, 2), p.Scale(0.5))
	assert.Equal(t, 5.0, p.Length())
}

func TestPointf_Normalized(t *testing.T) {
	t.Run("unit length", func(t *testing.T) {
		n := Pt(3, 4).Normalized()
		assert.InDelta(t, 1.0, n.Length(), 1e-9)
		assert.InDelta(t, 0.6, n.X, 1e-9)
	})

	t.Run("zero stays zero", func(t *testing.T) {
		assert.Equal(t, Origin, Origin.Normalized())
	})
}

func TestPointf_Rotate(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
		want Pointf
	}{
		{"quarter turn", 90, Pt(0, 1)},
		{"half turn", 180, Pt(-1, 0)},
		{"negative", -90, Pt(0, -1)},
		{"full turn", 360, Pt(1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pt(1, 0).Rotate(tt.deg)
			assert.True(t, got.Equal(tt.want, 1e-9), "got %v want %v", got, tt.want)
		})
	}
}

func TestPointf_Lerp(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, -10)

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Pt(5, -5), a.Lerp(b, 0.5))
}

func TestRect_ContainsAndIntersects(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, r.Contains(Pt(0, 0)))
	assert.True(t, r.Contains(Pt(10, 10)))
	assert.False(t, r.Contains(Pt(10.1, 5)))

	assert.True(t, r.Intersects(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.False(t, r.Intersects(Rect{X: 10, Y: 0, W: 5, H: 5}), "touching edges")
	assert.False(t, r.Intersects(Rect{X: 20, Y: 20, W: 1, H: 1}))
}

func TestRect_Union(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 2, H: 2}
	b := Rect{X: 5, Y: -1, W: 1, H: 1}

	assert.Equal(t, Rect{X: 0, Y: -1, W: 6, H: 3}, a.Union(b))
}

func TestRectFromPoints(t *testing.T) {
	assert.Equal(t, Rect{}, RectFromPoints())

	r := RectFromPoints(Pt(1, 5), Pt(-2, 3), Pt(4, -1))
	assert.Equal(t, Rect{X: -2, Y: -1, W: 6, H: 6}, r)
	assert.Equal(t, Pt(1, 2), r.Center())
}

func TestRect_Corners(t *testing.T) {
	c := Rect{X: 1, Y: 2, W: 3, H: 4}.Corners()

	assert.Equal(t, Pt(1, 2), c[0])
	assert.Equal(t, Pt(4, 6), c[2])
	assert.False(t, math.IsNaN(c[3].X))
}
