package capability

import (
	"math"

	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/marshal"
	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/resource"
	"github.com/wippyai/imgui-bridge/value"
	"go.bytecodealliance.org/wit"
)

// FieldSpec declares one host-visible field and its native storage type.
type FieldSpec struct {
	Type     wit.Type
	Name     string
	ReadOnly bool
}

// Field helpers for the storage types a wrapper supports.
func Bool(name string) FieldSpec   { return FieldSpec{Name: name, Type: wit.Bool{}} }
func Int(name string) FieldSpec    { return FieldSpec{Name: name, Type: wit.S32{}} }
func Float(name string) FieldSpec  { return FieldSpec{Name: name, Type: wit.F32{}} }
func Vec2(name string) FieldSpec   { return FieldSpec{Name: name, Type: native.Vec2Type} }
func Vec4(name string) FieldSpec   { return FieldSpec{Name: name, Type: native.Vec4Type} }
func String(name string) FieldSpec { return FieldSpec{Name: name, Type: wit.String{}} }
func Ptr(name string) FieldSpec    { return FieldSpec{Name: name, Type: wit.U32{}} }
func U16(name string) FieldSpec    { return FieldSpec{Name: name, Type: wit.U16{}} }
func S8(name string) FieldSpec     { return FieldSpec{Name: name, Type: wit.S8{}} }

// RO marks the field read-only.
func (f FieldSpec) RO() FieldSpec {
	f.ReadOnly = true
	return f
}

// Type is a compiled wrapper type.
type Type struct {
	layout *native.StructLayout
	specs  map[string]FieldSpec
	Name   string
	names  []string
	typeID uint32
}

// NewType compiles field specs into a wrapper type whose blocks are stored
// in a resource table under typeID.
func NewType(name string, typeID uint32, fields []FieldSpec) (*Type, error) {
	rec := &wit.Record{Fields: make([]wit.Field, len(fields))}
	for i, f := range fields {
		rec.Fields[i] = wit.Field{Name: f.Name, Type: f.Type}
	}
	l, err := native.NewStructLayout(name, rec)
	if err != nil {
		return nil, err
	}

	t := &Type{
		Name:   name,
		layout: l,
		typeID: typeID,
		specs:  make(map[string]FieldSpec, len(fields)),
		names:  make([]string, len(fields)),
	}
	for i, f := range fields {
		t.specs[f.Name] = f
		t.names[i] = f.Name
	}
	return t, nil
}

// Layout returns the native layout of the type's blocks.
func (t *Type) Layout() *native.StructLayout { return t.layout }

// TypeID returns the resource type the wrapper resolves handles against.
func (t *Type) TypeID() uint32 { return t.typeID }

// Fields returns the field names in declaration order.
func (t *Type) Fields() []string { return append([]string(nil), t.names...) }

// Spec returns the declaration of a field.
func (t *Type) Spec(name string) (FieldSpec, bool) {
	f, ok := t.specs[name]
	return f, ok
}

// NewBlock allocates a zeroed arena block of this type.
func (t *Type) NewBlock(mem imguibridge.Memory, alloc imguibridge.Allocator) (*native.Struct, error) {
	return native.NewStruct(mem, alloc, t.layout)
}

// New refuses construction from host code.
func (t *Type) New(args ...value.Value) (*Wrapper, error) {
	return nil, errors.New(errors.PhaseField, errors.KindUnsupported).
		Path(t.Name).
		Detail("%s cannot be created from host code", t.Name).
		Build()
}

// Wrap returns a wrapper for a block registered in table under h.
func (t *Type) Wrap(table resource.Table, h resource.Handle) *Wrapper {
	return &Wrapper{typ: t, table: table, handle: h}
}

// Block is native storage a wrapper reads and writes one field at a
// time. Values use the Go shape native.Struct.Load documents. Library
// structs exposed through accessors implement it as well as arena blocks.
type Block interface {
	Load(f native.Field) (any, error)
	Store(f native.Field, v any) error
}

var _ Block = (*native.Struct)(nil)

// Wrapper is the host-visible object for one native block.
type Wrapper struct {
	typ    *Type
	table  resource.Table
	handle resource.Handle
}

func (w *Wrapper) TypeName() string        { return w.typ.Name }
func (w *Wrapper) Fields() []string        { return w.typ.Fields() }
func (w *Wrapper) Type() *Type             { return w.typ }
func (w *Wrapper) Handle() resource.Handle { return w.handle }

// Alive reports whether the underlying block still exists.
func (w *Wrapper) Alive() bool {
	_, err := w.block()
	return err == nil
}

func (w *Wrapper) block() (Block, error) {
	v, ok := w.table.GetTyped(w.handle, w.typ.typeID)
	if !ok {
		return nil, errors.InvalidArgument(errors.PhaseField, []string{w.typ.Name}, "native object destroyed")
	}
	b, ok := v.(Block)
	if !ok {
		return nil, errors.InvalidArgument(errors.PhaseField, []string{w.typ.Name}, "native object destroyed")
	}
	return b, nil
}

func (w *Wrapper) lookup(name string) (FieldSpec, native.Field, Block, error) {
	b, err := w.block()
	if err != nil {
		return FieldSpec{}, native.Field{}, nil, err
	}
	spec, ok := w.typ.specs[name]
	if !ok {
		e := errors.NotFound(errors.PhaseField, "field", name)
		e.Path = []string{w.typ.Name}
		return FieldSpec{}, native.Field{}, nil, e
	}
	f, _ := w.typ.layout.Field(name)
	return spec, f, b, nil
}

// Get reads a field as a host value.
func (w *Wrapper) Get(name string) (value.Value, error) {
	_, f, b, err := w.lookup(name)
	if err != nil {
		return value.Value{}, err
	}
	x, err := b.Load(f)
	if err != nil {
		return value.Value{}, err
	}

	switch x := x.(type) {
	case bool:
		return value.Bool(x), nil
	case int32:
		return value.Int(int64(x)), nil
	case uint16:
		return value.Int(int64(x)), nil
	case int8:
		return value.Int(int64(x)), nil
	case float32:
		return value.Float(float64(x)), nil
	case native.Vec2:
		return marshal.Vec2Value(x), nil
	case native.Vec4:
		return marshal.Vec4Value(x), nil
	case string:
		return value.String(x), nil
	case uint32:
		if x == 0 {
			return value.None(), nil
		}
		return value.Pointer(value.Address(x)), nil
	}
	return value.Value{}, errors.Unsupported(errors.PhaseField, "field kind "+f.Kind.String())
}

// Set writes a host value into a field. Read-only fields refuse every write.
func (w *Wrapper) Set(name string, v value.Value) error {
	spec, f, b, err := w.lookup(name)
	if err != nil {
		return err
	}
	if spec.ReadOnly {
		return errors.New(errors.PhaseField, errors.KindUnsupported).
			Path(w.typ.Name, name).
			Detail("%s.%s is read-only", w.typ.Name, name).
			Build()
	}
	x, err := toShape(f.Kind, v, []string{w.typ.Name, name})
	if err != nil {
		return err
	}
	return b.Store(f, x)
}

// toShape converts v to the Go shape of kind k.
func toShape(k native.FieldKind, v value.Value, path []string) (any, error) {
	switch k {
	case native.FieldBool:
		return convert(v, marshal.KindBool, path)
	case native.FieldInt:
		return convert(v, marshal.KindInt, path)
	case native.FieldU16:
		i, err := convert(v, marshal.KindInt, path)
		if err != nil {
			return nil, err
		}
		n := i.(int32)
		if n < 0 || n > math.MaxUint16 {
			return nil, rangeErr(path, n, "u16")
		}
		return uint16(n), nil
	case native.FieldS8:
		i, err := convert(v, marshal.KindInt, path)
		if err != nil {
			return nil, err
		}
		n := i.(int32)
		if n < math.MinInt8 || n > math.MaxInt8 {
			return nil, rangeErr(path, n, "s8")
		}
		return int8(n), nil
	case native.FieldFloat:
		return convert(v, marshal.KindFloat, path)
	case native.FieldVec2:
		return convert(v, marshal.KindVec2, path)
	case native.FieldVec4:
		return convert(v, marshal.KindVec4, path)
	case native.FieldString:
		return convert(v, marshal.KindString, path)
	case native.FieldHandle:
		if v.IsNone() {
			return uint32(0), nil
		}
		x, err := convert(v, marshal.KindPointer, path)
		if err != nil {
			return nil, err
		}
		a := x.(value.Address)
		if a > math.MaxUint32 {
			return nil, rangeErr(path, a, "void_p")
		}
		return uint32(a), nil
	}
	return nil, errors.Unsupported(errors.PhaseField, "field kind "+k.String())
}

func convert(v value.Value, k marshal.Kind, path []string) (any, error) {
	x, err := marshal.ToNative(v, k)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			c := *e
			c.Phase = errors.PhaseField
			c.Path = append(append([]string(nil), path...), e.Path...)
			return nil, &c
		}
		return nil, err
	}
	return x, nil
}

func rangeErr(path []string, v any, target string) error {
	return errors.New(errors.PhaseField, errors.KindTypeMismatch).
		Path(path...).
		HostKind("int").
		NativeKind(target).
		Value(v).
		Detail("%v out of range for %s", v, target).
		Build()
}

var _ value.Fielder = (*Wrapper)(nil)
