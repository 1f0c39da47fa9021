package scenegraph

import "github.com/younwookim/engine2d/internal/geom"

// Builder assembles a GameObject.
type Builder struct {
	obj *GameObject
}

// New starts building an object named name.
func New(name string) *Builder {
	return &Builder{obj: NewGameObject(name, nil)}
}

// WithRenderer sets how the object is drawn.
func (b *Builder) WithRenderer(r Renderer) *Builder {
	b.obj.renderer = r
	return b
}

// WithTransform sets translation, rotation (degrees) and scale.
func (b *Builder) WithTransform(translation geom.Pointf, rotation float64, scale geom.Pointf) *Builder {
	b.obj.transform = NewTransform(translation, rotation, scale)
	return b
}

// WithLayer sets the draw layer.
func (b *Builder) WithLayer(layer int) *Builder {
	b.obj.layer = layer
	return b
}

// WithTags adds tags.
func (b *Builder) WithTags(tags ...string) *Builder {
	for _, t := range tags {
		b.obj.AddTag(t)
	}
	return b
}

// WithBehaviors attaches behaviors in order.
func (b *Builder) WithBehaviors(bs ...Behavior) *Builder {
	for _, x := range bs {
		b.obj.AddBehavior(x)
	}
	return b
}

// Hidden makes the object start invisible.
func (b *Builder) Hidden() *Builder {
	b.obj.visible = false
	return b
}

// WithCollidable sets whether the object collides while hidden.
func (b *Builder) WithCollidable(c bool) *Builder {
	b.obj.collidable = c
	return b
}

// Build returns the object.
func (b *Builder) Build() *GameObject {
	return b.obj
}
