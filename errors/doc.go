// Package errors provides structured error types for the bridge.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the argument path and position, the host and native kind
// names involved, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseMarshal, errors.KindTypeMismatch).
//		Path("Button", "size").
//		Position(2).
//		HostKind("str").
//		NativeKind("vec2").
//		Detail("expected a vec2 or a two element list").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseMarshal, path, "str", "vec2")
//	err := errors.Unsupported(errors.PhaseField, "constructing ImGuiIO")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
