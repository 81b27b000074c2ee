// Package native holds the Go shapes of the native kinds the bridge
// converts to and from: by-value vectors, and struct blocks that live at
// fixed offsets in a linear memory.
//
// Struct blocks are described by wit records. The record's fields are
// laid out with the usual C alignment rules, so a block written here has
// the same field order and padding as the struct it mirrors:
//
//	arena := native.NewArena(4096)
//	l, _ := native.NewStructLayout("ImGuiStyle", styleRecord)
//	s, _ := native.NewStruct(arena, arena, l)
//	_ = s.SetFloat("Alpha", 0.5)
//
// Nothing in this package is safe for concurrent use.
package native
