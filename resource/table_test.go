package resource

import (
	"testing"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnResourceEvent(e Event) {
	o.events = append(o.events, e)
}

func TestObjectTable_Basic(t *testing.T) {
	table := NewTable()

	h := table.Insert(TypeDrawList, "list")
	if h == 0 {
		t.Fatal("Expected non-zero handle")
	}

	val, ok := table.Get(h)
	if !ok || val != "list" {
		t.Fatalf("Get = %v, %v", val, ok)
	}

	if _, ok = table.GetTyped(h, TypeDrawList); !ok {
		t.Fatal("GetTyped with correct type failed")
	}
	if _, ok = table.GetTyped(h, TypeFont); ok {
		t.Fatal("GetTyped with wrong type should fail")
	}
	if id, ok := table.TypeID(h); !ok || id != TypeDrawList {
		t.Fatalf("TypeID = %d, %v", id, ok)
	}

	val, ok = table.Remove(h)
	if !ok || val != "list" {
		t.Fatalf("Remove = %v, %v", val, ok)
	}
	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Remove")
	}
	if _, ok := table.Remove(h); ok {
		t.Fatal("second Remove should fail")
	}
}

func TestObjectTable_StaleHandle(t *testing.T) {
	table := NewTable()

	old := table.Insert(TypeTexture, "first")
	table.Remove(old)
	reused := table.Insert(TypeTexture, "second")

	if old == reused {
		t.Fatal("reused slot must get a new handle")
	}
	if old.slot() != reused.slot() {
		t.Fatalf("expected slot reuse: %d vs %d", old.slot(), reused.slot())
	}
	if _, ok := table.Get(old); ok {
		t.Fatal("stale handle resolved to the new occupant")
	}
	if v, ok := table.Get(reused); !ok || v != "second" {
		t.Fatalf("Get(reused) = %v, %v", v, ok)
	}
}

func TestObjectTable_InvalidHandles(t *testing.T) {
	table := NewTable()
	table.Insert(TypeIO, "io")

	for _, h := range []Handle{0, 999, makeHandle(0, 7)} {
		if _, ok := table.Get(h); ok {
			t.Errorf("Get(%#x) should fail", uint32(h))
		}
	}
}

func TestObjectTable_Observer(t *testing.T) {
	table := NewTable()
	obs := &testObserver{}
	table.Subscribe(obs)

	h := table.Insert(TypeFont, "font")
	if len(obs.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(obs.events))
	}
	if obs.events[0].Type != EventCreated || obs.events[0].Handle != h {
		t.Fatalf("unexpected event %+v", obs.events[0])
	}

	table.Remove(h)
	if len(obs.events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(obs.events))
	}
	if obs.events[1].Type != EventDropped || obs.events[1].TypeID != TypeFont {
		t.Fatalf("unexpected event %+v", obs.events[1])
	}

	table.Unsubscribe(obs)
	table.Insert(TypeFont, "font2")
	if len(obs.events) != 2 {
		t.Fatal("Should not receive events after Unsubscribe")
	}
}

func TestObjectTable_Clear(t *testing.T) {
	table := NewTable()

	table.Insert(TypeDrawList, "a")
	table.Insert(TypeDrawList, "b")
	table.Insert(TypeDrawList, "c")

	if table.Len() != 3 {
		t.Fatal("Expected Len() == 3")
	}

	table.Clear()

	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Clear")
	}
}

type dropCounter struct {
	count int
}

func (d *dropCounter) Drop() {
	d.count++
}

func TestObjectTable_Close(t *testing.T) {
	table := NewTable()
	d := &dropCounter{}
	table.Insert(TypeTexture, d)

	if err := table.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if d.count != 1 {
		t.Fatalf("Close should drop live values, dropped %d", d.count)
	}
	if h := table.Insert(TypeTexture, "c"); h != 0 {
		t.Fatal("Expected Insert to fail after Close")
	}
	if err := table.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}

func TestObjectTable_DropperInterface(t *testing.T) {
	table := NewTable()
	d := &dropCounter{}

	h := table.Insert(TypeTexture, d)
	table.Remove(h)

	if d.count != 1 {
		t.Fatalf("Expected Drop() to be called once, called %d times", d.count)
	}
}

func TestTyped(t *testing.T) {
	table := NewTable()
	textures := NewTyped[*dropCounter](table, TypeTexture)

	d := &dropCounter{}
	h := textures.Insert(d)
	if got, ok := textures.Get(h); !ok || got != d {
		t.Fatalf("Get = %v, %v", got, ok)
	}

	other := table.Insert(TypeFont, "font")
	if _, ok := textures.Get(other); ok {
		t.Fatal("typed view must not see other types")
	}
	if _, ok := textures.Remove(other); ok {
		t.Fatal("typed view must not remove other types")
	}
	if table.Len() != 2 {
		t.Fatalf("Len = %d, want 2", table.Len())
	}

	if _, ok := textures.Remove(h); !ok {
		t.Fatal("Remove failed")
	}
	if d.count != 1 {
		t.Fatalf("Drop called %d times", d.count)
	}
}

func TestTypeName(t *testing.T) {
	if TypeName(TypeIO) != "ImGuiIO" || TypeName(TypeStyle) != "ImGuiStyle" {
		t.Error("unexpected type names")
	}
	if TypeName(0) != "unknown" {
		t.Error("type 0 should be unknown")
	}
}
