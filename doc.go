// Package imguibridge exposes an immediate-mode GUI library to dynamically
// typed hosts.
//
// A host never touches the GUI directly. It calls named entry points with
// host values (None, bool, int, float, str, pointers, lists and records) and
// gets host values back. Arguments are checked against a compiled signature,
// converted to native shapes, dispatched and the result converted back. Any
// failure is a structured error naming the function, the argument and the
// kinds involved, and leaves the GUI state untouched.
//
// # Architecture Overview
//
//	imguibridge/         Root package with the Memory and Allocator interfaces
//	├── value/           Dynamically typed host values
//	├── marshal/         Signatures, argument binding and host/native conversion
//	├── native/          Native struct layouts over a linear memory arena
//	├── resource/        Generation-checked handle table for native objects
//	├── capability/      Field-level wrappers over the IO and Style blocks
//	├── imgui/           Dear ImGui through cimgui-go, behind frame and scope guards
//	├── binding/         The callable surface bound to one context
//	├── wasmhost/        wazero host module so wasm guests can drive a context
//	├── errors/          Structured error types for debugging
//	└── cmd/imgui-bridge CLI: list the surface, evaluate calls, interactive TUI
//
// # Quick Start
//
//	ctx, err := imgui.NewContext(imgui.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Destroy()
//
//	m, err := binding.NewModule(ctx, binding.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m.Call("NewFrame")
//	m.Call("Begin", value.String("Hello"))
//	clicked, err := m.Call("Button", value.String("OK"),
//	    marshal.Vec2Value(native.Vec2{X: 100, Y: 20}))
//	m.Call("End")
//	m.Call("Render")
//
// # Thread Safety
//
// Dear ImGui keeps one current context per process, so every context and
// the modules bound to them belong to one goroutine. A wasmhost.Host
// serializes the calls of every guest linked against it.
package imguibridge
