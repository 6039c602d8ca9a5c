package engine

import "testing"

func TestGameObjectRefGet(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Target")
	scene.AddGameObject(obj)

	ref := RefTo(obj)
	if found := ref.Get(scene); found != obj {
		t.Errorf("Get() failed: expected %v, got %v", obj, found)
	}
}

func TestGameObjectRefGetNil(t *testing.T) {
	scene := NewScene("Test")

	if (GameObjectRef{}).Get(scene) != nil {
		t.Error("Get() with UID=0 should return nil")
	}
	if (GameObjectRef{UID: 1 << 60}).Get(scene) != nil {
		t.Error("Get() with non-existent UID should return nil")
	}
	if (GameObjectRef{UID: 123}).Get(nil) != nil {
		t.Error("Get() with nil scene should return nil")
	}
}

func TestGameObjectRefAfterDestroy(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Doomed")
	scene.AddGameObject(obj)
	ref := RefTo(obj)

	scene.RemoveGameObject(obj)

	if !ref.IsValid() {
		t.Error("ref should still hold its UID")
	}
	if ref.Get(scene) != nil {
		t.Error("ref to destroyed object should resolve to nil")
	}
}

func TestGameObjectRefSetClear(t *testing.T) {
	obj := NewGameObject("Obj")
	var ref GameObjectRef

	ref.Set(obj)
	if ref.UID != obj.UID {
		t.Errorf("Expected UID %d, got %d", obj.UID, ref.UID)
	}
	ref.Set(nil)
	if ref.IsValid() {
		t.Error("Set(nil) should clear the ref")
	}
	ref.Set(obj)
	ref.Clear()
	if ref.IsValid() {
		t.Error("Clear should empty the ref")
	}
	if RefTo(nil).IsValid() {
		t.Error("RefTo(nil) should be empty")
	}
}
