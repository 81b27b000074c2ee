// Package imgui drives a Dear ImGui context through cimgui-go and exposes
// the call surface of Dear ImGui 1.89 plus the rlImGui texture helpers.
//
// The library asserts on misuse and aborts the process. Context checks
// every call first: the frame state, the Begin/End and Push/Pop stacks,
// and the arguments the library asserts on. Mismatched stacks are reported
// as errors and unwound by EndFrame.
//
// Enum values follow the 1.89 constant table in this package. Families
// whose numbering moved in the linked library (style colors, keys, style
// variables, input text and popup flags) are translated per call.
//
// IO and Style are exposed as capability wrappers whose fields map onto
// the library's accessors. Everything else the host can hold on to (draw
// lists, fonts, textures, viewports, storages) is an opaque handle in the
// context's resource table. Destroy removes them all.
//
// A Context is not safe for concurrent use. The library keeps one current
// context per process, so every Context must be driven from the same
// goroutine.
package imgui
