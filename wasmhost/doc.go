// Package wasmhost lets WebAssembly guests drive a GUI context through the
// "imgui" namespace.
//
// A Host wraps a binding.Module and instantiates a wazero host module the
// guest imports from:
//
//	h := wasmhost.New(module, wasmhost.DefaultOptions())
//	if _, err := h.Instantiate(ctx, rt); err != nil {
//	    return err
//	}
//	guest, err := rt.Instantiate(ctx, wasmBytes)
//
// Every value crossing the boundary uses a small tagged wire format written
// into guest memory: one tag byte, then a little-endian payload. Native
// objects such as bool_p cells or the _IO wrapper never leave the host;
// the guest holds a u32 token instead and passes it back to use the object.
// Tokens stay valid until the guest calls release.
//
// Failed calls return a negative status and record a message the guest
// reads with last_error.
package wasmhost
