package behavior

import (
	"github.com/younwookim/engine2d/internal/geom"
	"github.com/younwookim/engine2d/internal/scenegraph"
)

// Velocity moves its object by PerSecond*Dt on every fixed update.
// Dt is the fixed timestep in seconds.
type Velocity struct {
	PerSecond geom.Pointf
	Dt        float64
}

func (v *Velocity) Init(*scenegraph.GameObject)   {}
func (v *Velocity) Update(*scenegraph.GameObject) {}
func (v *Velocity) FixedUpdate(obj *scenegraph.GameObject) {
	obj.Translate(v.PerSecond.Scale(v.Dt))
}

// lifetime counts fixed updates per object.
type lifetime struct {
	steps    int
	onExpire func(obj *scenegraph.GameObject)
	left     map[scenegraph.ObjectID]int
}

// Lifetime destroys its object after steps fixed updates. onExpire, if set,
// runs just before the object is destroyed. Each object the behavior is
// attached to keeps its own count.
func Lifetime(steps int, onExpire func(obj *scenegraph.GameObject)) scenegraph.Behavior {
	return &lifetime{steps: steps, onExpire: onExpire, left: make(map[scenegraph.ObjectID]int)}
}

func (l *lifetime) Init(obj *scenegraph.GameObject) {
	l.left[obj.ID()] = l.steps
}

func (l *lifetime) Update(*scenegraph.GameObject) {}

func (l *lifetime) FixedUpdate(obj *scenegraph.GameObject) {
	n, ok := l.left[obj.ID()]
	if !ok {
		n = l.steps
	}
	n--
	if n > 0 {
		l.left[obj.ID()] = n
		return
	}
	delete(l.left, obj.ID())
	if l.onExpire != nil {
		l.onExpire(obj)
	}
	obj.Destroy()
}

// Bounded calls onExit once the object's bounds no longer intersect area.
// A nil onExit destroys the object.
func Bounded(area geom.Rect, onExit func(obj *scenegraph.GameObject)) scenegraph.Behavior {
	if onExit == nil {
		onExit = (*scenegraph.GameObject).Destroy
	}
	return &Funcs{
		OnFixedUpdate: func(obj *scenegraph.GameObject) {
			b := obj.Bounds()
			if b.Empty() {
				if !area.Contains(b.Min()) {
					onExit(obj)
				}
				return
			}
			if !area.Intersects(b) {
				onExit(obj)
			}
		},
	}
}
