package binding

import (
	"math"

	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/imgui"
	"github.com/wippyai/imgui-bridge/marshal"
	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/resource"
	"github.com/wippyai/imgui-bridge/value"
)

// args holds the bound arguments of one call, in the Go shapes
// marshal.Bind produces. Accessors assume the signature declared the kind,
// so a wrong shape is a bug in the surface table and reads as the zero value.
type args []any

func (a args) str(i int) string {
	s, _ := a[i].(string)
	return s
}

// strPtr is for nullable str parameters where None means "no text".
func (a args) strPtr(i int) *string {
	s, ok := a[i].(string)
	if !ok {
		return nil
	}
	return &s
}

func (a args) i32(i int) int32 {
	n, _ := a[i].(int32)
	return n
}

func (a args) f32(i int) float32 {
	f, _ := a[i].(float32)
	return f
}

func (a args) bool(i int) bool {
	b, _ := a[i].(bool)
	return b
}

func (a args) vec2(i int) native.Vec2 {
	v, _ := a[i].(native.Vec2)
	return v
}

// vec2Or returns def when the parameter was bound as None.
func (a args) vec2Or(i int, def native.Vec2) native.Vec2 {
	if v, ok := a[i].(native.Vec2); ok {
		return v
	}
	return def
}

func (a args) vec2Ptr(i int) *native.Vec2 {
	v, ok := a[i].(native.Vec2)
	if !ok {
		return nil
	}
	return &v
}

func (a args) vec4(i int) native.Vec4 {
	v, _ := a[i].(native.Vec4)
	return v
}

func (a args) rect(i int) native.Rect {
	r, _ := a[i].(native.Rect)
	return r
}

func (a args) value(i int) value.Value {
	v, _ := a[i].(value.Value)
	return v
}

func (a args) strings(i int) []string {
	s, _ := a[i].([]string)
	return s
}

// handle narrows an opaque address to a resource handle. Addresses that
// cannot be handles resolve to handle 0, which every lookup rejects.
func (a args) handle(i int) resource.Handle {
	addr, _ := a[i].(value.Address)
	if addr > math.MaxUint32 {
		return 0
	}
	return resource.Handle(addr)
}

// boolPtr returns the cell of a bool_p argument, or nil for None.
func (a args) boolPtr(i int) *bool {
	r, ok := a[i].(*marshal.BoolRef)
	if !ok || r == nil {
		return nil
	}
	return r.Ptr()
}

func (a args) intRef(i int) *marshal.IntRef {
	r, _ := a[i].(*marshal.IntRef)
	return r
}

func (a args) floatRef(i int) *marshal.FloatRef {
	r, _ := a[i].(*marshal.FloatRef)
	return r
}

func (a args) buffer(i int) *marshal.TextBuffer {
	b, _ := a[i].(*marshal.TextBuffer)
	return b
}

// intPtr returns the first cell of an int_p argument.
func (a args) intPtr(fn string, i int) (*int32, error) {
	r := a.intRef(i)
	if r == nil {
		return nil, errors.NilPointer(errors.PhaseCall, []string{fn}, "int_p")
	}
	return &r.Values()[0], nil
}

func (a args) floatPtr(fn string, i int) (*float32, error) {
	r := a.floatRef(i)
	if r == nil {
		return nil, errors.NilPointer(errors.PhaseCall, []string{fn}, "float_p")
	}
	return &r.Values()[0], nil
}

// ints returns the first n cells of an int_p argument, which must hold at
// least n components.
func (a args) ints(fn string, i, n int) ([]int32, error) {
	r := a.intRef(i)
	if r == nil {
		return nil, errors.NilPointer(errors.PhaseCall, []string{fn}, "int_p")
	}
	if r.Len() < n {
		return nil, shortRef(fn, "int_p", r.Len(), n)
	}
	return r.Values()[:n], nil
}

func (a args) floats(fn string, i, n int) ([]float32, error) {
	r := a.floatRef(i)
	if r == nil {
		return nil, errors.NilPointer(errors.PhaseCall, []string{fn}, "float_p")
	}
	if r.Len() < n {
		return nil, shortRef(fn, "float_p", r.Len(), n)
	}
	return r.Values()[:n], nil
}

// text returns the writable region of a char_p argument after checking it
// against the capacity the caller declared.
func (a args) text(fn string, buf, size int) ([]byte, error) {
	b := a.buffer(buf)
	declared := int(a.i32(size))
	if err := marshal.CheckBuffer(b, declared); err != nil {
		return nil, withArg(err, fn, buf+1, "buf")
	}
	return b.Bytes()[:declared], nil
}

func withArg(err error, fn string, pos int, name string) error {
	if e, ok := err.(*errors.Error); ok {
		return e.WithArg(fn, pos, name)
	}
	return err
}

func shortRef(fn, kind string, have, want int) error {
	return errors.New(errors.PhaseCall, errors.KindInvalidArgument).
		Path(fn).
		NativeKind(kind).
		Detail("%s holds %d component(s), %s needs %d", kind, have, fn, want).
		Build()
}

// Result helpers: they pass errors through and shape the value the way
// marshal.ToHost expects for the declared result kind.

func retNone(err error) (any, error) { return nil, err }

func retBool(b bool, err error) (any, error) { return b, err }

func ret[T any](v T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

func retAddr(h resource.Handle, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return value.Address(h), nil
}

func retObj[T value.Object](o T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return value.Object(o), nil
}

func id(n int32) imgui.ID { return imgui.ID(uint32(n)) }
