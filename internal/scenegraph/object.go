// Package scenegraph provides the retained-mode tree of game objects that a
// scene draws and updates every frame.
//
// A GameObject carries a Transform, an optional Renderer that knows how to
// draw it, any number of Behaviors, and child objects that inherit its
// transform. Objects are owned by a Manager, one per scene.
package scenegraph

import (
	"reflect"
	"slices"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/engine2d/internal/geom"
)

// ObjectID is a unique identifier for a game object (never recycled).
// Zero means "no object".
type ObjectID uint64

var lastID atomic.Uint64

func nextID() ObjectID {
	return ObjectID(lastID.Add(1))
}

// GameObject is a drawable or logical entity in a scene.
type GameObject struct {
	id         ObjectID
	name       string
	tags       []string
	transform  Transform
	layer      int
	visible    bool
	collidable bool // while hidden
	renderer   Renderer

	parent   *GameObject
	children []*GameObject

	behaviors []Behavior
	destroyed bool

	// set while the object is held by a Manager
	manager *Manager
	seq     uint64
}

// NewGameObject creates a visible object with an identity transform.
// A nil renderer makes a logical (non-drawing) object.
func NewGameObject(name string, r Renderer) *GameObject {
	return &GameObject{
		id:        nextID(),
		name:      name,
		transform:  IdentityTransform(),
		visible:    true,
		collidable: true,
		renderer:   r,
	}
}

// ID returns the object's unique id.
func (o *GameObject) ID() ObjectID { return o.id }

// Name returns the object's name.
func (o *GameObject) Name() string { return o.name }

// Tags returns a copy of the object's tags.
func (o *GameObject) Tags() []string { return slices.Clone(o.tags) }

// HasTag reports whether the object carries tag.
func (o *GameObject) HasTag(tag string) bool {
	return slices.Contains(o.tags, tag)
}

// AddTag adds tag if it is not already present.
func (o *GameObject) AddTag(tag string) {
	if !o.HasTag(tag) {
		o.tags = append(o.tags, tag)
	}
}

// RemoveTag removes tag.
func (o *GameObject) RemoveTag(tag string) {
	o.tags = slices.DeleteFunc(o.tags, func(t string) bool { return t == tag })
}

// Transform returns the object's local transform for direct manipulation.
func (o *GameObject) Transform() *Transform { return &o.transform }

// Translation returns the local translation.
func (o *GameObject) Translation() geom.Pointf { return o.transform.Translation() }

// Rotation returns the local rotation in degrees.
func (o *GameObject) Rotation() float64 { return o.transform.Rotation() }

// ScaleFactor returns the local scale.
func (o *GameObject) ScaleFactor() geom.Pointf { return o.transform.ScaleFactor() }

// Translate moves the object by d.
func (o *GameObject) Translate(d geom.Pointf) { o.transform.Translate(d) }

// SetTranslation moves the object to p.
func (o *GameObject) SetTranslation(p geom.Pointf) { o.transform.SetTranslation(p) }

// Rotate rotates the object by deg degrees around its centre.
func (o *GameObject) Rotate(deg float64) { o.transform.Rotate(deg) }

// SetRotation sets the rotation in degrees.
func (o *GameObject) SetRotation(deg float64) { o.transform.SetRotation(deg) }

// Scale adds s to the object's scale.
func (o *GameObject) Scale(s geom.Pointf) { o.transform.Scale(s) }

// SetScale sets the object's scale.
func (o *GameObject) SetScale(s geom.Pointf) { o.transform.SetScale(s) }

// Layer returns the draw layer. Lower layers draw first.
func (o *GameObject) Layer() int { return o.layer }

// SetLayer changes the draw layer.
func (o *GameObject) SetLayer(layer int) {
	if o.layer == layer {
		return
	}
	o.layer = layer
	if o.manager != nil {
		o.manager.dirty = true
	}
}

// Visible reports whether the object is drawn.
func (o *GameObject) Visible() bool { return o.visible }

// SetVisible shows or hides the object.
func (o *GameObject) SetVisible(v bool) { o.visible = v }

// Collidable reports whether the object collides while hidden.
func (o *GameObject) Collidable() bool { return o.collidable }

// SetCollidable controls whether the object collides while hidden.
// Visible objects always collide.
func (o *GameObject) SetCollidable(c bool) { o.collidable = c }

// hitTestable reports whether o takes part in collision checks.
func (o *GameObject) hitTestable() bool {
	return !o.destroyed && (o.visible || o.collidable)
}

// Renderer returns the object's renderer, nil for logical objects.
func (o *GameObject) Renderer() Renderer { return o.renderer }

// SetRenderer replaces the object's renderer.
func (o *GameObject) SetRenderer(r Renderer) { o.renderer = r }

// Destroyed reports whether Destroy has been called.
func (o *GameObject) Destroyed() bool { return o.destroyed }

// Parent returns the parent object or nil.
func (o *GameObject) Parent() *GameObject { return o.parent }

// Children returns a copy of the child list.
func (o *GameObject) Children() []*GameObject { return slices.Clone(o.children) }

// AddChild attaches child to o, detaching it from any previous parent.
// Adding an ancestor of o as its child is ignored.
func (o *GameObject) AddChild(child *GameObject) {
	if child == nil || child == o || child.parent == o {
		return
	}
	for p := o; p != nil; p = p.parent {
		if p == child {
			return
		}
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = o
	o.children = append(o.children, child)
}

// RemoveChild detaches child from o.
func (o *GameObject) RemoveChild(child *GameObject) {
	idx := slices.Index(o.children, child)
	if idx < 0 {
		return
	}
	o.children = slices.Delete(o.children, idx, idx+1)
	child.parent = nil
}

// pivot is the point rotation and scale happen around: the centre of
// the local bounds.
func (o *GameObject) pivot() geom.Pointf {
	if o.renderer == nil {
		return geom.Origin
	}
	return o.renderer.Bounds().Center()
}

// LocalGeoM returns the matrix of the object's own transform.
func (o *GameObject) LocalGeoM() ebiten.GeoM {
	return o.transform.GeoM(o.pivot())
}

// WorldGeoM returns the object's transform combined with its ancestors'.
func (o *GameObject) WorldGeoM() ebiten.GeoM {
	g := o.LocalGeoM()
	if o.parent != nil {
		pg := o.parent.WorldGeoM()
		g.Concat(pg)
	}
	return g
}

// WorldPosition returns where the object's local origin lands on screen.
func (o *GameObject) WorldPosition() geom.Pointf {
	g := o.WorldGeoM()
	x, y := g.Apply(0, 0)
	return geom.Pt(x, y)
}

// Center returns the centre of the object's world bounds.
func (o *GameObject) Center() geom.Pointf {
	return o.Bounds().Center()
}

// Bounds returns the world-space axis-aligned bounds. Logical objects
// have zero-sized bounds at their position.
func (o *GameObject) Bounds() geom.Rect {
	g := o.WorldGeoM()
	if o.renderer == nil {
		x, y := g.Apply(0, 0)
		return geom.Rect{X: x, Y: y}
	}
	corners := o.renderer.Bounds().Corners()
	pts := make([]geom.Pointf, 0, len(corners))
	for _, c := range corners {
		x, y := g.Apply(c.X, c.Y)
		pts = append(pts, geom.Pt(x, y))
	}
	return geom.RectFromPoints(pts...)
}

// CollidesWith reports whether the world bounds of o and other overlap.
// Destroyed objects never collide, nor do hidden non-collidable ones.
func (o *GameObject) CollidesWith(other *GameObject) bool {
	if other == nil || o == other || !o.hitTestable() || !other.hitTestable() {
		return false
	}
	return o.Bounds().Intersects(other.Bounds())
}

// AddBehavior attaches b. The same behavior may be attached several
// times. If the object's manager has already initialised behaviors, b is
// initialised right away.
func (o *GameObject) AddBehavior(b Behavior) {
	if b == nil || o.destroyed {
		return
	}
	o.behaviors = append(o.behaviors, b)
	if o.manager != nil && o.manager.initialized {
		b.Init(o)
	}
}

// RemoveBehavior detaches the first occurrence of b. Behaviors are
// matched by identity; an uncomparable value is never found.
func (o *GameObject) RemoveBehavior(b Behavior) {
	idx := slices.IndexFunc(o.behaviors, func(x Behavior) bool { return sameBehavior(x, b) })
	if idx < 0 {
		return
	}
	o.behaviors = slices.Delete(o.behaviors, idx, idx+1)
}

func sameBehavior(a, b Behavior) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// Behaviors returns a copy of the attached behaviors.
func (o *GameObject) Behaviors() []Behavior { return slices.Clone(o.behaviors) }

func (o *GameObject) initBehaviors() {
	for _, b := range slices.Clone(o.behaviors) {
		if o.destroyed {
			return
		}
		b.Init(o)
	}
}

func (o *GameObject) fixedUpdateBehaviors() {
	for _, b := range slices.Clone(o.behaviors) {
		if o.destroyed {
			return
		}
		b.FixedUpdate(o)
	}
}

func (o *GameObject) updateBehaviors() {
	for _, b := range slices.Clone(o.behaviors) {
		if o.destroyed {
			return
		}
		b.Update(o)
	}
}

// Destroy releases the object's behaviors, detaches it from the tree and
// removes it from its manager. Calling Destroy again does nothing.
func (o *GameObject) Destroy() {
	if o.destroyed {
		return
	}
	o.destroyed = true

	for _, b := range o.behaviors {
		if d, ok := b.(Destroyer); ok {
			d.Destroy()
		}
	}
	o.behaviors = nil

	if o.parent != nil {
		o.parent.RemoveChild(o)
	}
	for _, c := range o.children {
		c.parent = nil
	}
	o.children = nil

	if o.manager != nil {
		o.manager.objectDestroyed(o)
	}
}

// Draw renders the object with its world transform. Hidden, destroyed and
// logical objects draw nothing.
func (o *GameObject) Draw(dst *ebiten.Image) {
	if !o.visible || o.destroyed || o.renderer == nil {
		return
	}
	o.renderer.Render(dst, o.WorldGeoM())
}
