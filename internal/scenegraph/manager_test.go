package scenegraph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/engine2d/internal/geom"
)

func TestManager_AddRemove(t *testing.T) {
	m := NewManager()
	o := NewGameObject("o", nil)

	require.NoError(t, m.Add(o))
	assert.Equal(t, 1, m.Len())

	got, ok := m.Get(o.ID())
	require.True(t, ok)
	assert.Equal(t, o, got)

	t.Run("duplicate add fails", func(t *testing.T) {
		err := m.Add(o)
		assert.True(t, errors.Is(err, ErrDuplicate))
	})

	t.Run("object owned elsewhere", func(t *testing.T) {
		err := NewManager().Add(o)
		assert.True(t, errors.Is(err, ErrOwned))
	})

	t.Run("remove keeps the object alive", func(t *testing.T) {
		assert.True(t, m.Remove(o.ID()))
		assert.False(t, m.Remove(o.ID()))
		assert.Equal(t, 0, m.Len())
		assert.False(t, o.Destroyed())
		assert.NoError(t, NewManager().Add(o), "removed object can move to another manager")
	})

	t.Run("destroyed object rejected", func(t *testing.T) {
		d := NewGameObject("d", nil)
		d.Destroy()
		assert.True(t, errors.Is(m.Add(d), ErrDestroyed))
	})
}

func TestManager_DrawOrder(t *testing.T) {
	m := NewManager()
	bg := New("bg").WithLayer(-1).Build()
	a := New("a").Build()
	ui := New("ui").WithLayer(10).Build()
	b := New("b").Build()

	m.MustAdd(ui, a, bg, b)

	assert.Equal(t, []*GameObject{bg, a, b, ui}, m.Objects())
}

func TestManager_WithTag(t *testing.T) {
	m := NewManager()
	e1 := New("e1").WithTags("enemy").Build()
	p := New("p").WithTags("player").Build()
	e2 := New("e2").WithTags("enemy").Build()
	m.MustAdd(e1, p, e2)

	assert.Equal(t, []*GameObject{e1, e2}, m.WithTag("enemy"))
	assert.Empty(t, m.WithTag("boss"))
}

func TestManager_At(t *testing.T) {
	m := NewManager()
	low := New("low").WithRenderer(square(20)).Build()
	high := New("high").WithRenderer(square(10)).WithLayer(1).Build()
	hidden := New("hidden").WithRenderer(square(20)).Hidden().Build()
	m.MustAdd(low, high, hidden)

	assert.Equal(t, []*GameObject{high, low}, m.At(geom.Pt(5, 5)))
	assert.Equal(t, []*GameObject{low}, m.At(geom.Pt(15, 15)))
	assert.Empty(t, m.At(geom.Pt(50, 50)))
}

func TestManager_BehaviorOrder(t *testing.T) {
	var log []string
	m := NewManager()

	a := New("a").WithBehaviors(
		&recordingBehavior{name: "a1", log: &log},
		&recordingBehavior{name: "a2", log: &log},
	).Build()
	b := New("b").WithLayer(-1).WithBehaviors(&recordingBehavior{name: "b1", log: &log}).Build()
	m.MustAdd(a, b)

	assert.Empty(t, log, "behaviors are not initialised on add before InitBehaviors")

	m.InitBehaviors()
	m.FixedUpdateBehaviors()
	m.UpdateBehaviors()

	assert.Equal(t, []string{
		"b1:init", "a1:init", "a2:init",
		"b1:fixed", "a1:fixed", "a2:fixed",
		"b1:update", "a1:update", "a2:update",
	}, log)
}

func TestManager_LateAdditionsAreInitialised(t *testing.T) {
	m := NewManager()
	m.InitBehaviors()

	b := &recordingBehavior{}
	o := New("late").WithBehaviors(b).Build()
	require.NoError(t, m.Add(o))
	assert.Equal(t, 1, b.inits)

	extra := &recordingBehavior{}
	o.AddBehavior(extra)
	assert.Equal(t, 1, extra.inits, "behavior added to a live object is initialised")
}

// destroyOther destroys target on its first fixed update.
type destroyOther struct {
	target *GameObject
}

func (d *destroyOther) Init(*GameObject) {}
func (d *destroyOther) FixedUpdate(*GameObject) {
	d.target.Destroy()
}
func (d *destroyOther) Update(*GameObject) {}

func TestManager_DestroyDuringIteration(t *testing.T) {
	m := NewManager()
	victimBehavior := &recordingBehavior{}
	victim := New("victim").WithLayer(1).WithBehaviors(victimBehavior).Build()
	killer := New("killer").WithBehaviors(&destroyOther{target: victim}).Build()
	m.MustAdd(killer, victim)
	m.InitBehaviors()

	m.FixedUpdateBehaviors()

	assert.Equal(t, 0, victimBehavior.fixed, "destroyed object skipped in the same walk")
	assert.Equal(t, 1, victimBehavior.destroyed)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, []*GameObject{killer}, m.Objects())

	_, ok := m.Get(victim.ID())
	assert.False(t, ok)
}

func TestManager_Clear(t *testing.T) {
	m := NewManager()
	b := &recordingBehavior{}
	o := New("o").WithBehaviors(b).Build()
	m.MustAdd(o, NewGameObject("p", nil))
	m.InitBehaviors()

	m.Clear()

	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Objects())
	assert.False(t, m.Initialized())
	assert.True(t, o.Destroyed())
	assert.Equal(t, 1, b.destroyed)
}
