// Package geom provides the small float geometry used by the scene graph.
package geom

import (
	"fmt"
	"math"
)

// Pointf is a 2D point or vector.
type Pointf struct {
	X, Y float64
}

var (
	// Origin is the zero point.
	Origin = Pointf{}
	// Unit is (1, 1), the identity scale.
	Unit = Pointf{X: 1, Y: 1}
)

// Pt is shorthand for Pointf{X: x, Y: y}.
func Pt(x, y float64) Pointf {
	return Pointf{X: x, Y: y}
}

// Add returns p+q.
func (p Pointf) Add(q Pointf) Pointf {
	return Pointf{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Pointf) Sub(q Pointf) Pointf {
	return Pointf{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul multiplies component-wise.
func (p Pointf) Mul(q Pointf) Pointf {
	return Pointf{X: p.X * q.X, Y: p.Y * q.Y}
}

// Scale multiplies both components by f.
func (p Pointf) Scale(f float64) Pointf {
	return Pointf{X: p.X * f, Y: p.Y * f}
}

// Length returns the euclidean length of p.
func (p Pointf) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalized returns p scaled to length 1. The zero vector stays zero.
func (p Pointf) Normalized() Pointf {
	l := p.Length()
	if l == 0 {
		return Pointf{}
	}
	return Pointf{X: p.X / l, Y: p.Y / l}
}

// Rotate rotates p around the origin by deg degrees (clockwise on screen,
// since y grows downward).
func (p Pointf) Rotate(deg float64) Pointf {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Pointf{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Lerp interpolates between p and q; t=0 gives p, t=1 gives q.
func (p Pointf) Lerp(q Pointf, t float64) Pointf {
	return Pointf{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Equal reports whether p and q are within eps on both axes.
func (p Pointf) Equal(q Pointf, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

func (p Pointf) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle. W and H are never negative for
// rects built by this package.
type Rect struct {
	X, Y, W, H float64
}

// Min returns the top-left corner.
func (r Rect) Min() Pointf { return Pointf{X: r.X, Y: r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Pointf { return Pointf{X: r.X + r.W, Y: r.Y + r.H} }

// Center returns the middle of the rect.
func (r Rect) Center() Pointf { return Pointf{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Pointf) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Intersects reports whether r and o overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Union returns the smallest rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.X+r.W, o.X+o.W)
	maxY := math.Max(r.Y+r.H, o.Y+o.H)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Corners returns the four corners clockwise from the top-left.
func (r Rect) Corners() [4]Pointf {
	return [4]Pointf{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}
}

// RectFromPoints returns the bounding box of pts. No points gives a zero rect.
func RectFromPoints(pts ...Pointf) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
