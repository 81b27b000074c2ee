// Package capability exposes native struct blocks to host code as objects
// with a fixed table of named fields.
//
// A Type is declared once from field specs; its wit record is compiled into
// a native struct layout. A Wrapper pairs a Type with a resource handle. The
// wrapper never owns the block: it resolves the handle on every access, so
// once the owner removes the handle every Get and Set fails with
// InvalidArgument.
//
// Host code cannot construct wrappers. Type.New always fails with an
// unsupported error; wrappers only come out of Type.Wrap, which the native
// side calls when it hands an object to the host.
package capability
