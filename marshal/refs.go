package marshal

import (
	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/value"
)

// BoolRef is a host-visible bool cell passed where the native call takes bool*.
type BoolRef struct {
	v bool
}

func NewBoolRef(v bool) *BoolRef { return &BoolRef{v: v} }

func (r *BoolRef) Value() bool      { return r.v }
func (r *BoolRef) Store(v bool)     { r.v = v }
func (r *BoolRef) TypeName() string { return "bool_p" }
func (r *BoolRef) Fields() []string { return []string{"value"} }

// Ptr returns the cell itself; native calls write through it.
func (r *BoolRef) Ptr() *bool { return &r.v }

func (r *BoolRef) Get(name string) (value.Value, error) {
	if name != "value" {
		return value.Value{}, noField(r, name)
	}
	return value.Bool(r.v), nil
}

func (r *BoolRef) Set(name string, v value.Value) error {
	if name != "value" {
		return noField(r, name)
	}
	b, err := ToNative(v, KindBool)
	if err != nil {
		return err
	}
	r.v = b.(bool)
	return nil
}

// IntRef is an int* cell of one or more components.
type IntRef struct {
	v []int32
}

// NewIntRef creates a ref holding vals; with no vals it holds a single zero.
func NewIntRef(vals ...int32) *IntRef {
	if len(vals) == 0 {
		vals = []int32{0}
	}
	return &IntRef{v: append([]int32(nil), vals...)}
}

func (r *IntRef) Len() int             { return len(r.v) }
func (r *IntRef) Value() int32         { return r.v[0] }
func (r *IntRef) Values() []int32      { return r.v }
func (r *IntRef) Store(i int, v int32) { r.v[i] = v }
func (r *IntRef) TypeName() string     { return "int_p" }
func (r *IntRef) Fields() []string     { return []string{"value"} }

func (r *IntRef) Get(name string) (value.Value, error) {
	if name != "value" {
		return value.Value{}, noField(r, name)
	}
	if len(r.v) == 1 {
		return value.Int(int64(r.v[0])), nil
	}
	items := make([]value.Value, len(r.v))
	for i, x := range r.v {
		items[i] = value.Int(int64(x))
	}
	return value.List(items...), nil
}

func (r *IntRef) Set(name string, v value.Value) error {
	if name != "value" {
		return noField(r, name)
	}
	vals, err := components(v, len(r.v), KindInt)
	if err != nil {
		return err
	}
	for i, x := range vals {
		r.v[i] = x.(int32)
	}
	return nil
}

// FloatRef is a float* cell of one or more components.
type FloatRef struct {
	v []float32
}

// NewFloatRef creates a ref holding vals; with no vals it holds a single zero.
func NewFloatRef(vals ...float32) *FloatRef {
	if len(vals) == 0 {
		vals = []float32{0}
	}
	return &FloatRef{v: append([]float32(nil), vals...)}
}

func (r *FloatRef) Len() int               { return len(r.v) }
func (r *FloatRef) Value() float32         { return r.v[0] }
func (r *FloatRef) Values() []float32      { return r.v }
func (r *FloatRef) Store(i int, v float32) { r.v[i] = v }
func (r *FloatRef) TypeName() string       { return "float_p" }
func (r *FloatRef) Fields() []string       { return []string{"value"} }

func (r *FloatRef) Get(name string) (value.Value, error) {
	if name != "value" {
		return value.Value{}, noField(r, name)
	}
	if len(r.v) == 1 {
		return value.Float(float64(r.v[0])), nil
	}
	items := make([]value.Value, len(r.v))
	for i, x := range r.v {
		items[i] = value.Float(float64(x))
	}
	return value.List(items...), nil
}

func (r *FloatRef) Set(name string, v value.Value) error {
	if name != "value" {
		return noField(r, name)
	}
	vals, err := components(v, len(r.v), KindFloat)
	if err != nil {
		return err
	}
	for i, x := range vals {
		r.v[i] = x.(float32)
	}
	return nil
}

// components converts a scalar (n == 1) or an n element list.
func components(v value.Value, n int, k Kind) ([]any, error) {
	if n == 1 {
		if _, isList := v.List(); !isList {
			x, err := ToNative(v, k)
			if err != nil {
				return nil, err
			}
			return []any{x}, nil
		}
	}
	items, ok := v.List()
	if !ok || len(items) != n {
		return nil, errors.New(errors.PhaseField, errors.KindTypeMismatch).
			Path("value").
			HostKind(v.TypeName()).
			NativeKind(k.String()).
			Detail("expected %d component(s)", n).
			Build()
	}
	out := make([]any, n)
	for i, item := range items {
		x, err := ToNative(item, k)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

func noField(o value.Object, name string) error {
	e := errors.NotFound(errors.PhaseField, "field", name)
	e.Path = []string{o.TypeName()}
	return e
}

var (
	_ value.Fielder = (*BoolRef)(nil)
	_ value.Fielder = (*IntRef)(nil)
	_ value.Fielder = (*FloatRef)(nil)
	_ value.Fielder = (*TextBuffer)(nil)
)
