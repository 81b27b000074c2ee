// Package binding exposes a GUI context to a dynamically typed host as the
// "imgui" module namespace.
//
// The namespace holds three kinds of names:
//
//   - enum constants, looked up with Constant, exactly as the native header
//     defines them
//   - the wrapper types _IO and _Style, which host code can read and write
//     through but never construct
//   - entry points, each described by a signature string in a surface table
//     and compiled when the module is built
//
// A call binds its arguments against the signature before anything native
// runs:
//
//	m, err := binding.NewModule(ctx, binding.DefaultOptions())
//	pressed, err := m.Call("Button", value.String("OK"), marshal.Vec2Value(native.Vec2{X: 100, Y: 20}))
//
// A few entry points are overloaded on the kind of one argument
// (PushStyleVar takes a float or a vec2); the first overload whose
// signature accepts the arguments wins. PushID accepts a str, an int or a
// void_p and dispatches on the runtime tag in that order.
//
// Host helpers vec2, vec4, Rectangle, bool_p, int_p, float_p and char_p
// build the values widgets read and write through.
package binding
