package resource

// Typed is a view of a table restricted to one type ID.
type Typed[T any] struct {
	table  Table
	typeID uint32
}

// NewTyped returns a view of table for values of typeID.
func NewTyped[T any](table Table, typeID uint32) *Typed[T] {
	return &Typed[T]{table: table, typeID: typeID}
}

// Insert adds a value and returns its handle.
func (t *Typed[T]) Insert(value T) Handle {
	return t.table.Insert(t.typeID, value)
}

// Get retrieves a value by handle.
func (t *Typed[T]) Get(handle Handle) (T, bool) {
	var zero T
	v, ok := t.table.GetTyped(handle, t.typeID)
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	return tv, ok
}

// Remove drops a value of this view's type.
func (t *Typed[T]) Remove(handle Handle) (T, bool) {
	var zero T
	if _, ok := t.Get(handle); !ok {
		return zero, false
	}
	v, ok := t.table.Remove(handle)
	if !ok {
		return zero, false
	}
	tv, _ := v.(T)
	return tv, true
}
