// Package behavior provides ready-made scenegraph behaviors.
package behavior

import (
	"github.com/younwookim/engine2d/internal/geom"
	"github.com/younwookim/engine2d/internal/scenegraph"
)

// simple implements scenegraph.Behavior with a single fixed-update action.
type simple struct {
	fixed func(obj *scenegraph.GameObject)
}

func (s *simple) Init(*scenegraph.GameObject)   {}
func (s *simple) Update(*scenegraph.GameObject) {}
func (s *simple) FixedUpdate(obj *scenegraph.GameObject) {
	s.fixed(obj)
}

// SimpleTranslation translates its object by d on every fixed update.
func SimpleTranslation(d geom.Pointf) scenegraph.Behavior {
	return &simple{fixed: func(obj *scenegraph.GameObject) { obj.Translate(d) }}
}

// SimpleRotation rotates its object by deg degrees on every fixed update.
func SimpleRotation(deg float64) scenegraph.Behavior {
	return &simple{fixed: func(obj *scenegraph.GameObject) { obj.Rotate(deg) }}
}

// SimpleScale scales its object by s on every fixed update.
func SimpleScale(s geom.Pointf) scenegraph.Behavior {
	return &simple{fixed: func(obj *scenegraph.GameObject) { obj.Scale(s) }}
}

// Funcs adapts plain functions to scenegraph.Behavior. Nil fields are no-ops.
type Funcs struct {
	OnInit        func(obj *scenegraph.GameObject)
	OnFixedUpdate func(obj *scenegraph.GameObject)
	OnUpdate      func(obj *scenegraph.GameObject)
	OnDestroy     func()
}

func (f *Funcs) Init(obj *scenegraph.GameObject) {
	if f.OnInit != nil {
		f.OnInit(obj)
	}
}

func (f *Funcs) FixedUpdate(obj *scenegraph.GameObject) {
	if f.OnFixedUpdate != nil {
		f.OnFixedUpdate(obj)
	}
}

func (f *Funcs) Update(obj *scenegraph.GameObject) {
	if f.OnUpdate != nil {
		f.OnUpdate(obj)
	}
}

func (f *Funcs) Destroy() {
	if f.OnDestroy != nil {
		f.OnDestroy()
	}
}
