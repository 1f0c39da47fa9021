package scenegraph

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/engine2d/internal/geom"
)

// Transform defaults.
var (
	DefaultTranslation = geom.Origin
	DefaultScale       = geom.Unit
)

// DefaultRotation is the rotation of a fresh transform, in degrees.
const DefaultRotation = 0.0

// Transform holds an object's translation, rotation (degrees) and scale.
// Rotation and scale are applied around a pivot, normally the centre of
// the object's local bounds.
type Transform struct {
	translation geom.Pointf
	rotation    float64
	scale       geom.Pointf
}

// NewTransform creates a transform with the given values.
func NewTransform(translation geom.Pointf, rotation float64, scale geom.Pointf) Transform {
	t := Transform{translation: translation, scale: scale}
	t.SetRotation(rotation)
	return t
}

// IdentityTransform returns a transform with default values.
func IdentityTransform() Transform {
	return Transform{translation: DefaultTranslation, scale: DefaultScale}
}

// Translation returns the current translation.
func (t *Transform) Translation() geom.Pointf { return t.translation }

// Rotation returns the current rotation in degrees, in (-360, 360).
func (t *Transform) Rotation() float64 { return t.rotation }

// ScaleFactor returns the current scale.
func (t *Transform) ScaleFactor() geom.Pointf { return t.scale }

// Translate moves by d.
func (t *Transform) Translate(d geom.Pointf) {
	t.translation = t.translation.Add(d)
}

// SetTranslation moves to p.
func (t *Transform) SetTranslation(p geom.Pointf) {
	t.translation = p
}

// Rotate adds deg degrees of rotation.
func (t *Transform) Rotate(deg float64) {
	t.SetRotation(t.rotation + deg)
}

// SetRotation sets the rotation to deg degrees.
func (t *Transform) SetRotation(deg float64) {
	t.rotation = math.Mod(deg, 360)
}

// Scale adds s to the current scale. Scaling is additive: a scale of
// (1,1) scaled by (0.5,0.5) becomes (1.5,1.5).
func (t *Transform) Scale(s geom.Pointf) {
	t.scale = t.scale.Add(s)
}

// SetScale sets the scale to s.
func (t *Transform) SetScale(s geom.Pointf) {
	t.scale = s
}

// Reset restores the default translation, rotation and scale.
func (t *Transform) Reset() {
	*t = IdentityTransform()
}

// GeoM builds the local matrix: scale and rotate around pivot, then translate.
func (t *Transform) GeoM(pivot geom.Pointf) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-pivot.X, -pivot.Y)
	g.Scale(t.scale.X, t.scale.Y)
	g.Rotate(t.rotation * math.Pi / 180)
	g.Translate(pivot.X, pivot.Y)
	g.Translate(t.translation.X, t.translation.Y)
	return g
}
