package scenegraph

import (
	"slices"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
	"github.com/pkg/errors"

	"github.com/younwookim/engine2d/internal/geom"
)

var (
	// ErrDuplicate is returned when adding an object the manager already holds.
	ErrDuplicate = errors.New("scenegraph: object already added")
	// ErrOwned is returned when adding an object that belongs to another manager.
	ErrOwned = errors.New("scenegraph: object belongs to another manager")
	// ErrDestroyed is returned when adding a destroyed object.
	ErrDestroyed = errors.New("scenegraph: object is destroyed")
)

// Manager holds a scene's game objects, draws them in layer order and
// drives their behaviors.
type Manager struct {
	index   *intmap.Map[ObjectID, *GameObject]
	order   []*GameObject
	nextSeq uint64
	dirty   bool

	initialized bool
	iterating   int
	pruneNeeded bool
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		index: intmap.New[ObjectID, *GameObject](64),
	}
}

// Add registers obj. If behaviors were already initialised, obj's
// behaviors are initialised immediately.
func (m *Manager) Add(obj *GameObject) error {
	if obj.destroyed {
		return errors.Wrapf(ErrDestroyed, "add %q", obj.name)
	}
	if obj.manager == m {
		return errors.Wrapf(ErrDuplicate, "add %q", obj.name)
	}
	if obj.manager != nil {
		return errors.Wrapf(ErrOwned, "add %q", obj.name)
	}

	obj.manager = m
	obj.seq = m.nextSeq
	m.nextSeq++
	m.index.Put(obj.id, obj)
	m.order = append(m.order, obj)
	m.dirty = true

	if m.initialized {
		obj.initBehaviors()
	}
	return nil
}

// MustAdd is Add for objects known to be fresh. It panics on error.
func (m *Manager) MustAdd(objs ...*GameObject) {
	for _, o := range objs {
		if err := m.Add(o); err != nil {
			panic(err)
		}
	}
}

// Remove unregisters the object with id without destroying it.
// It reports whether the object was present.
func (m *Manager) Remove(id ObjectID) bool {
	obj, ok := m.index.Get(id)
	if !ok {
		return false
	}
	m.index.Del(id)
	obj.manager = nil
	m.order = slices.DeleteFunc(m.order, func(o *GameObject) bool { return o == obj })
	return true
}

// Get returns the object with id.
func (m *Manager) Get(id ObjectID) (*GameObject, bool) {
	return m.index.Get(id)
}

// Len returns the number of live objects.
func (m *Manager) Len() int {
	return m.index.Len()
}

// Initialized reports whether InitBehaviors has run since the last Clear.
func (m *Manager) Initialized() bool {
	return m.initialized
}

func (m *Manager) sortOrder() {
	if !m.dirty {
		return
	}
	sort.SliceStable(m.order, func(i, j int) bool {
		a, b := m.order[i], m.order[j]
		if a.layer != b.layer {
			return a.layer < b.layer
		}
		return a.seq < b.seq
	})
	m.dirty = false
}

// Objects returns live objects in draw order: layer ascending, then
// insertion order.
func (m *Manager) Objects() []*GameObject {
	m.sortOrder()
	out := make([]*GameObject, 0, len(m.order))
	for _, o := range m.order {
		if !o.destroyed {
			out = append(out, o)
		}
	}
	return out
}

// WithTag returns live objects carrying tag, in draw order.
func (m *Manager) WithTag(tag string) []*GameObject {
	var out []*GameObject
	for _, o := range m.Objects() {
		if o.HasTag(tag) {
			out = append(out, o)
		}
	}
	return out
}

// At returns the visible objects whose bounds contain p, topmost first.
func (m *Manager) At(p geom.Pointf) []*GameObject {
	objs := m.Objects()
	var out []*GameObject
	for i := len(objs) - 1; i >= 0; i-- {
		o := objs[i]
		if o.visible && o.renderer != nil && o.Bounds().Contains(p) {
			out = append(out, o)
		}
	}
	return out
}

// InitBehaviors runs Init on every object's behaviors. Objects added
// afterwards are initialised as they arrive.
func (m *Manager) InitBehaviors() {
	m.initialized = true
	m.each((*GameObject).initBehaviors)
}

// FixedUpdateBehaviors runs FixedUpdate on every object's behaviors.
func (m *Manager) FixedUpdateBehaviors() {
	m.each((*GameObject).fixedUpdateBehaviors)
}

// UpdateBehaviors runs Update on every object's behaviors.
func (m *Manager) UpdateBehaviors() {
	m.each((*GameObject).updateBehaviors)
}

// each calls fn for a snapshot of the objects. Objects destroyed during
// the walk are skipped and pruned once the outermost walk ends.
func (m *Manager) each(fn func(*GameObject)) {
	snapshot := m.Objects()
	m.iterating++
	for _, o := range snapshot {
		if o.destroyed || o.manager != m {
			continue
		}
		fn(o)
	}
	m.iterating--
	if m.iterating == 0 && m.pruneNeeded {
		m.prune()
	}
}

func (m *Manager) objectDestroyed(o *GameObject) {
	m.index.Del(o.id)
	if m.iterating > 0 {
		m.pruneNeeded = true
		return
	}
	o.manager = nil
	m.order = slices.DeleteFunc(m.order, func(x *GameObject) bool { return x == o })
}

func (m *Manager) prune() {
	m.order = slices.DeleteFunc(m.order, func(o *GameObject) bool {
		if o.destroyed {
			o.manager = nil
			return true
		}
		return false
	})
	m.pruneNeeded = false
}

// Draw renders visible objects in draw order.
func (m *Manager) Draw(dst *ebiten.Image) {
	for _, o := range m.Objects() {
		o.Draw(dst)
	}
}

// Clear destroys every object and resets the manager to its
// uninitialised state.
func (m *Manager) Clear() {
	for _, o := range slices.Clone(m.order) {
		o.Destroy()
	}
	m.index.Clear()
	m.order = nil
	m.dirty = false
	m.initialized = false
	m.pruneNeeded = false
}
