package engine

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type countingComponent struct {
	BaseComponent
	starts  int
	updates int
}

func (c *countingComponent) Start()            { c.starts++ }
func (c *countingComponent) Update(dt float32) { c.updates++ }
func (c *countingComponent) GetLookDirection() (x, y, z float32) {
	return 1, 0, 0
}

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}

	if obj.Transform.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Expected unit scale, got %v", obj.Transform.Scale)
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj2.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"static", "floor"}

	if !obj.HasTag("static") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("dynamic") {
		t.Error("HasTag should return false for non-existent tag")
	}

	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child, got %d", len(parent.Children))
	}

	parent.RemoveChild(child)

	if len(parent.Children) != 0 {
		t.Errorf("Expected 0 children after removal, got %d", len(parent.Children))
	}

	if child.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}

	obj.AddComponent(comp)

	if len(obj.components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.components))
	}

	if comp.gameObject != obj {
		t.Error("Component.gameObject should be set")
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}

	obj.AddComponent(comp)

	found := GetComponent[*countingComponent](obj)
	if found != comp {
		t.Error("GetComponent failed to find component")
	}

	if GetComponent[*countingComponent](NewGameObject("Empty")) != nil {
		t.Error("GetComponent on empty object should return nil")
	}
}

func TestGameObjectFindComponentByInterface(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	lp := FindComponent[LookProvider](obj)
	if lp == nil {
		t.Fatal("FindComponent should locate components by interface")
	}

	x, y, z := lp.GetLookDirection()
	if x != 1 || y != 0 || z != 0 {
		t.Errorf("Expected look direction (1,0,0), got (%v,%v,%v)", x, y, z)
	}

	if FindComponent[LookProvider](NewGameObject("Empty")) != nil {
		t.Error("FindComponent on empty object should return nil")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	obj.Start()
	obj.Start()

	if comp.starts != 1 {
		t.Errorf("Expected component Start called once, got %d", comp.starts)
	}
}

func TestGameObjectUpdateSkippedWhenInactive(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	obj.Update(0.016)
	obj.Active = false
	obj.Update(0.016)

	if comp.updates != 1 {
		t.Errorf("Expected 1 update on active object, got %d", comp.updates)
	}
}

func TestTransformForward(t *testing.T) {
	tr := Transform{Scale: rl.Vector3{X: 1, Y: 1, Z: 1}}

	fwd := tr.Forward()
	if !vecApprox(fwd, rl.Vector3{X: 1, Y: 0, Z: 0}, 1e-5) {
		t.Errorf("Expected forward (1,0,0) at zero rotation, got %v", fwd)
	}

	tr.Rotation.Y = 90
	fwd = tr.Forward()
	if !vecApprox(fwd, rl.Vector3{X: 0, Y: 0, Z: 1}, 1e-5) {
		t.Errorf("Expected forward (0,0,1) at yaw 90, got %v", fwd)
	}

	tr.Rotation = rl.Vector3{X: 90}
	fwd = tr.Forward()
	if !vecApprox(fwd, rl.Vector3{X: 0, Y: 1, Z: 0}, 1e-5) {
		t.Errorf("Expected forward (0,1,0) at pitch 90, got %v", fwd)
	}
}

func TestTransformRightStaysHorizontal(t *testing.T) {
	tr := Transform{Rotation: rl.Vector3{X: -60, Y: 30}}

	right := tr.Right()
	if right.Y != 0 {
		t.Errorf("Right axis should have no vertical component, got %v", right.Y)
	}

	fwd := tr.Forward()
	dot := right.X*fwd.X + right.Y*fwd.Y + right.Z*fwd.Z
	if math.Abs(float64(dot)) > 1e-5 {
		t.Errorf("Right should be orthogonal to forward, dot = %v", dot)
	}
}

func TestWorldPositionWithParent(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector3{X: 10, Y: 0, Z: 0}
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}

	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{X: 1, Y: 0, Z: 0}
	parent.AddChild(child)

	pos := child.WorldPosition()
	want := rl.Vector3{X: 12, Y: 0, Z: 0}
	if !vecApprox(pos, want, 1e-4) {
		t.Errorf("Expected world position %v, got %v", want, pos)
	}

	scale := child.WorldScale()
	if !vecApprox(scale, rl.Vector3{X: 2, Y: 2, Z: 2}, 1e-6) {
		t.Errorf("Expected world scale (2,2,2), got %v", scale)
	}
}

func vecApprox(a, b rl.Vector3, eps float64) bool {
	return math.Abs(float64(a.X-b.X)) < eps &&
		math.Abs(float64(a.Y-b.Y)) < eps &&
		math.Abs(float64(a.Z-b.Z)) < eps
}
