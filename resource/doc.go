// Package resource maps opaque handles to the native objects a GUI context
// owns: its IO and style blocks, draw lists, fonts, textures, viewports and
// state storage.
//
// A handle is what the host sees in place of a raw address. It carries a
// slot index and a generation, so a handle kept after its object was
// removed never resolves to whatever later reuses the slot:
//
//	table := resource.NewTable()
//	h := table.Insert(resource.TypeDrawList, list)
//	v, ok := table.GetTyped(h, resource.TypeDrawList) // ok
//	table.Remove(h)
//	_, ok = table.Get(h) // !ok, even after the slot is reused
//
// Observers see every insert and removal:
//
//	table.Subscribe(observer)
//
// Tables are not safe for concurrent use. Like the GUI context they serve,
// they belong to the one thread that drives the frame.
package resource
