package resource

// ObjectTable is the Table a GUI context keeps its native objects in. It
// stores values in a LocalBackend and reports every insert and removal to
// its observers.
type ObjectTable struct {
	backend   *LocalBackend
	observers []Observer
	closed    bool
}

// NewTable creates an empty table.
func NewTable() *ObjectTable {
	return &ObjectTable{backend: NewLocalBackend()}
}

// Insert stores value under typeID. It returns 0 once the table is closed
// or full.
func (t *ObjectTable) Insert(typeID uint32, value any) Handle {
	if t.closed {
		return 0
	}
	h, err := t.backend.Create(typeID, value)
	if err != nil {
		return 0
	}
	t.notify(Event{Type: EventCreated, Handle: h, TypeID: typeID, Value: value})
	return h
}

// Get resolves a handle of any type.
func (t *ObjectTable) Get(h Handle) (any, bool) {
	return t.backend.Get(h)
}

// GetTyped resolves h only when it was inserted as typeID, so a draw list
// handle never passes for a font.
func (t *ObjectTable) GetTyped(h Handle, typeID uint32) (any, bool) {
	if id, ok := t.backend.TypeID(h); !ok || id != typeID {
		return nil, false
	}
	return t.backend.Get(h)
}

// TypeID returns the type a live handle was inserted with.
func (t *ObjectTable) TypeID(h Handle) (uint32, bool) {
	return t.backend.TypeID(h)
}

// Remove drops h, running the value's Drop if it has one.
func (t *ObjectTable) Remove(h Handle) (any, bool) {
	typeID, _ := t.backend.TypeID(h)
	v, ok := t.backend.Drop(h)
	if !ok {
		return nil, false
	}
	if d, ok := v.(Dropper); ok {
		d.Drop()
	}
	t.notify(Event{Type: EventDropped, Handle: h, TypeID: typeID, Value: v})
	return v, true
}

func (t *ObjectTable) Subscribe(o Observer) {
	t.observers = append(t.observers, o)
}

func (t *ObjectTable) Unsubscribe(o Observer) {
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of live objects.
func (t *ObjectTable) Len() int {
	return t.backend.Len()
}

// Clear removes every live object, notifying observers of each.
func (t *ObjectTable) Clear() {
	var live []Handle
	t.backend.Each(func(h Handle, _ uint32, _ any) bool {
		live = append(live, h)
		return true
	})
	for _, h := range live {
		t.Remove(h)
	}
}

// Close drops whatever is left without notifying and refuses later inserts.
func (t *ObjectTable) Close() error {
	t.closed = true
	return t.backend.Close()
}

func (t *ObjectTable) notify(e Event) {
	for _, o := range t.observers {
		o.OnResourceEvent(e)
	}
}
