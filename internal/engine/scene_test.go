package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)
	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}
	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
}

func TestSceneAddRegistersSubtree(t *testing.T) {
	scene := NewScene("Test")
	root := NewGameObject("Root")
	mid := NewGameObject("Mid")
	leaf := NewGameObject("Leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	scene.AddGameObject(root)

	if len(scene.GameObjects) != 3 {
		t.Fatalf("Expected 3 GameObjects, got %d", len(scene.GameObjects))
	}
	if scene.FindByUID(leaf.UID) != leaf {
		t.Error("leaf should be registered with its ancestor")
	}

	// Children attached after registration join the scene too.
	late := NewGameObject("Late")
	leaf.AddChild(late)
	if scene.FindByUID(late.UID) != late {
		t.Error("late child should be registered")
	}
}

func TestSceneUIDLookup(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")
	scene.AddGameObject(obj)

	if found := scene.FindByUID(obj.UID); found != obj {
		t.Errorf("FindByUID failed: expected %v, got %v", obj, found)
	}
	if scene.FindByUID(0) != nil {
		t.Error("FindByUID(0) should return nil")
	}
	if scene.FindByUID(1 << 60) != nil {
		t.Error("FindByUID should return nil for non-existent UID")
	}
}

func TestSceneFindByNameAndTag(t *testing.T) {
	scene := NewScene("Test")
	e1 := NewGameObject("Enemy1")
	e2 := NewGameObject("Enemy2")
	p := NewGameObject("Player")
	e1.Tags = []string{"enemy"}
	e2.Tags = []string{"enemy"}
	p.Tags = []string{"player"}
	scene.AddGameObject(e1)
	scene.AddGameObject(e2)
	scene.AddGameObject(p)

	if scene.FindByName("Player") != p {
		t.Error("FindByName failed")
	}
	if scene.FindByName("Nope") != nil {
		t.Error("FindByName should return nil for missing name")
	}
	if got := len(scene.FindByTag("enemy")); got != 2 {
		t.Errorf("Expected 2 enemies, got %d", got)
	}
	if got := len(scene.FindByTag("nonexistent")); got != 0 {
		t.Errorf("Expected 0 matches, got %d", got)
	}
}

func TestSceneRemoveWithChildren(t *testing.T) {
	scene := NewScene("Test")
	keep := NewGameObject("Keep")
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	parent.AddChild(child)
	scene.AddGameObject(keep)
	scene.AddGameObject(parent)

	scene.RemoveGameObject(parent)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != keep {
		t.Fatalf("Expected only Keep to remain, got %d objects", len(scene.GameObjects))
	}
	if scene.FindByUID(parent.UID) != nil || scene.FindByUID(child.UID) != nil {
		t.Error("removed subtree still in UID map")
	}
	if child.Scene != nil {
		t.Error("removed child should have nil Scene")
	}
}

func TestSceneRemoveChildOnly(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	parent.AddChild(child)
	scene.AddGameObject(parent)

	scene.RemoveGameObject(child)

	if len(parent.Children) != 0 {
		t.Error("child should be detached from its parent")
	}
	if scene.FindByUID(parent.UID) != parent {
		t.Error("parent should survive removal of its child")
	}
}

func TestSceneAddedSeenExactlyOnce(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Fresh")
	scene.AddGameObject(obj)

	if len(scene.Added()) != 0 {
		t.Error("spawns must not be visible before Flush")
	}

	scene.Flush()
	if added := scene.Added(); len(added) != 1 || added[0] != obj {
		t.Fatalf("Expected the fresh object after Flush, got %v", added)
	}

	// Spawned mid-frame: visible next frame only.
	late := NewGameObject("Late")
	scene.AddGameObject(late)
	if len(scene.Added()) != 1 {
		t.Error("mid-frame spawn leaked into the current frame")
	}

	scene.Flush()
	if added := scene.Added(); len(added) != 1 || added[0] != late {
		t.Fatalf("Expected only the late object, got %v", added)
	}

	scene.Flush()
	if len(scene.Added()) != 0 {
		t.Error("Added should be empty once consumed")
	}
}

func TestSceneRemoveDropsPendingSpawn(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Short")
	scene.AddGameObject(obj)
	scene.RemoveGameObject(obj)
	scene.Flush()

	if len(scene.Added()) != 0 {
		t.Error("destroyed object should not be published as added")
	}
}

func TestQuery(t *testing.T) {
	scene := NewScene("Test")
	a := NewGameObject("A")
	b := NewGameObject("B")
	a.AddComponent(&tagComponent{})
	scene.AddGameObject(a)
	scene.AddGameObject(b)

	got := Query[*tagComponent](scene)
	if len(got) != 1 || got[0].GetGameObject() != a {
		t.Errorf("Expected one component owned by A, got %v", got)
	}
}

func TestSceneUpdateStartsLateObjects(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Obj")
	comp := &tagComponent{}
	obj.AddComponent(comp)
	scene.AddGameObject(obj)

	scene.Update(0.016)
	scene.Update(0.016)

	if comp.started != 1 || comp.updates != 2 {
		t.Errorf("Expected 1 start and 2 updates, got %d and %d", comp.started, comp.updates)
	}
}
