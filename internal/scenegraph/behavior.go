package scenegraph

// Behavior is a per-object callback bundle driven by the owning scene.
//
// Init runs once after the scene has loaded (or when the object or
// behavior is added to an already running scene). FixedUpdate runs after
// the scene's FixedUpdate and Update after the scene's Update.
// A behavior value may be shared by any number of objects.
type Behavior interface {
	Init(obj *GameObject)
	FixedUpdate(obj *GameObject)
	Update(obj *GameObject)
}

// Destroyer is implemented by behaviors holding resources to release
// when their object is destroyed.
type Destroyer interface {
	Destroy()
}
