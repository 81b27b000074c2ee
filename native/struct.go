package native

import (
	"fmt"
	"math"

	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/native/internal/layout"
	"go.bytecodealliance.org/wit"
)

// FieldKind is the storage class of one struct block field.
type FieldKind uint8

const (
	FieldBool   FieldKind = iota + 1 // wit bool
	FieldInt                         // wit s32
	FieldFloat                       // wit f32
	FieldVec2                        // Vec2Type
	FieldVec4                        // Vec4Type
	FieldString                      // wit string, bytes owned by the block
	FieldHandle                      // wit u32, an opaque pointer token
	FieldU16                         // wit u16
	FieldS8                          // wit s8
)

var fieldKindNames = [...]string{
	FieldBool:   "bool",
	FieldInt:    "int",
	FieldFloat:  "float",
	FieldVec2:   "vec2",
	FieldVec4:   "vec4",
	FieldString: "str",
	FieldHandle: "void_p",
	FieldU16:    "u16",
	FieldS8:     "s8",
}

func (k FieldKind) String() string {
	if int(k) < len(fieldKindNames) && fieldKindNames[k] != "" {
		return fieldKindNames[k]
	}
	return "unknown"
}

// Vec2Type and Vec4Type are the wit records that describe ImVec2 and ImVec4.
var (
	Vec2Type = &wit.TypeDef{Kind: &wit.Record{Fields: []wit.Field{
		{Name: "x", Type: wit.F32{}},
		{Name: "y", Type: wit.F32{}},
	}}}
	Vec4Type = &wit.TypeDef{Kind: &wit.Record{Fields: []wit.Field{
		{Name: "x", Type: wit.F32{}},
		{Name: "y", Type: wit.F32{}},
		{Name: "z", Type: wit.F32{}},
		{Name: "w", Type: wit.F32{}},
	}}}
)

// Field is one named slot of a struct layout.
type Field struct {
	Name   string
	Offset uint32
	Kind   FieldKind
}

// StructLayout is the compiled layout of a wit record.
type StructLayout struct {
	fields map[string]Field
	Name   string
	order  []string
	Size   uint32
	Align  uint32
}

// NewStructLayout compiles a wit record into a struct layout.
func NewStructLayout(name string, rec *wit.Record) (*StructLayout, error) {
	calc := layout.NewCalculator()
	info := calc.Calculate(&wit.TypeDef{Kind: rec})

	l := &StructLayout{
		Name:   name,
		Size:   info.Size,
		Align:  info.Align,
		fields: make(map[string]Field, len(rec.Fields)),
		order:  make([]string, 0, len(rec.Fields)),
	}
	for _, f := range rec.Fields {
		kind, err := fieldKind(f.Type)
		if err != nil {
			return nil, errors.New(errors.PhaseRegister, errors.KindUnsupported).
				Path(name, f.Name).
				Cause(err).
				Detail("field type").
				Build()
		}
		if _, dup := l.fields[f.Name]; dup {
			return nil, errors.InvalidArgument(errors.PhaseRegister, []string{name, f.Name}, "duplicate field")
		}
		l.fields[f.Name] = Field{Name: f.Name, Offset: info.FieldOffs[f.Name], Kind: kind}
		l.order = append(l.order, f.Name)
	}
	return l, nil
}

func fieldKind(t wit.Type) (FieldKind, error) {
	switch t.(type) {
	case wit.Bool:
		return FieldBool, nil
	case wit.S32:
		return FieldInt, nil
	case wit.F32:
		return FieldFloat, nil
	case wit.String:
		return FieldString, nil
	case wit.U32:
		return FieldHandle, nil
	case wit.U16:
		return FieldU16, nil
	case wit.S8:
		return FieldS8, nil
	}
	switch t {
	case Vec2Type:
		return FieldVec2, nil
	case Vec4Type:
		return FieldVec4, nil
	}
	return 0, errors.Unsupported(errors.PhaseRegister, "wit type "+witTypeName(t))
}

func witTypeName(t wit.Type) string {
	if td, ok := t.(*wit.TypeDef); ok && td.Name != nil {
		return *td.Name
	}
	return fmt.Sprintf("%T", t)
}

// Field returns the named field.
func (l *StructLayout) Field(name string) (Field, bool) {
	f, ok := l.fields[name]
	return f, ok
}

// Fields returns the fields in declaration order.
func (l *StructLayout) Fields() []Field {
	out := make([]Field, len(l.order))
	for i, name := range l.order {
		out[i] = l.fields[name]
	}
	return out
}

// Struct is one block of a StructLayout placed in a memory.
type Struct struct {
	mem    imguibridge.Memory
	alloc  imguibridge.Allocator
	layout *StructLayout
	base   uint32
}

// NewStruct allocates a zeroed block for l.
func NewStruct(mem imguibridge.Memory, alloc imguibridge.Allocator, l *StructLayout) (*Struct, error) {
	base, err := alloc.Alloc(max(l.Size, 1), l.Align)
	if err != nil {
		return nil, err
	}
	return &Struct{mem: mem, alloc: alloc, layout: l, base: base}, nil
}

// Layout returns the block's layout.
func (s *Struct) Layout() *StructLayout { return s.layout }

// Addr returns the block's base address in its memory.
func (s *Struct) Addr() uint32 { return s.base }

// Free releases the block and every string it owns.
func (s *Struct) Free() {
	if s.base == 0 {
		return
	}
	for _, name := range s.layout.order {
		f := s.layout.fields[name]
		if f.Kind == FieldString {
			s.freeString(f)
		}
	}
	s.alloc.Free(s.base, max(s.layout.Size, 1), s.layout.Align)
	s.base = 0
}

// Drop frees the block when its resource handle is removed.
func (s *Struct) Drop() { s.Free() }

func (s *Struct) field(name string, want FieldKind) (Field, error) {
	if s.base == 0 {
		return Field{}, errors.InvalidArgument(errors.PhaseMemory, []string{s.layout.Name, name}, "struct block freed")
	}
	f, ok := s.layout.fields[name]
	if !ok {
		e := errors.NotFound(errors.PhaseMemory, "field", name)
		e.Path = []string{s.layout.Name}
		return Field{}, e
	}
	if want != 0 && f.Kind != want {
		return Field{}, errors.TypeMismatch(errors.PhaseMemory, []string{s.layout.Name, name}, want.String(), f.Kind.String())
	}
	return f, nil
}

func (s *Struct) Bool(name string) (bool, error) {
	f, err := s.field(name, FieldBool)
	if err != nil {
		return false, err
	}
	b, err := s.mem.ReadU8(s.base + f.Offset)
	return b != 0, err
}

func (s *Struct) SetBool(name string, v bool) error {
	f, err := s.field(name, FieldBool)
	if err != nil {
		return err
	}
	var b uint8
	if v {
		b = 1
	}
	return s.mem.WriteU8(s.base+f.Offset, b)
}

func (s *Struct) Int(name string) (int32, error) {
	f, err := s.field(name, FieldInt)
	if err != nil {
		return 0, err
	}
	u, err := s.mem.ReadU32(s.base + f.Offset)
	return int32(u), err
}

func (s *Struct) SetInt(name string, v int32) error {
	f, err := s.field(name, FieldInt)
	if err != nil {
		return err
	}
	return s.mem.WriteU32(s.base+f.Offset, uint32(v))
}

func (s *Struct) Float(name string) (float32, error) {
	f, err := s.field(name, FieldFloat)
	if err != nil {
		return 0, err
	}
	return s.readF32(s.base + f.Offset)
}

func (s *Struct) SetFloat(name string, v float32) error {
	f, err := s.field(name, FieldFloat)
	if err != nil {
		return err
	}
	return s.mem.WriteU32(s.base+f.Offset, math.Float32bits(v))
}

func (s *Struct) Vec2(name string) (Vec2, error) {
	f, err := s.field(name, FieldVec2)
	if err != nil {
		return Vec2{}, err
	}
	x, err := s.readF32(s.base + f.Offset)
	if err != nil {
		return Vec2{}, err
	}
	y, err := s.readF32(s.base + f.Offset + 4)
	return Vec2{x, y}, err
}

func (s *Struct) SetVec2(name string, v Vec2) error {
	f, err := s.field(name, FieldVec2)
	if err != nil {
		return err
	}
	if err := s.mem.WriteU32(s.base+f.Offset, math.Float32bits(v.X)); err != nil {
		return err
	}
	return s.mem.WriteU32(s.base+f.Offset+4, math.Float32bits(v.Y))
}

func (s *Struct) Vec4(name string) (Vec4, error) {
	f, err := s.field(name, FieldVec4)
	if err != nil {
		return Vec4{}, err
	}
	var c [4]float32
	for i := range c {
		if c[i], err = s.readF32(s.base + f.Offset + uint32(i)*4); err != nil {
			return Vec4{}, err
		}
	}
	return Vec4{c[0], c[1], c[2], c[3]}, nil
}

func (s *Struct) SetVec4(name string, v Vec4) error {
	f, err := s.field(name, FieldVec4)
	if err != nil {
		return err
	}
	for i, c := range [4]float32{v.X, v.Y, v.Z, v.W} {
		if err := s.mem.WriteU32(s.base+f.Offset+uint32(i)*4, math.Float32bits(c)); err != nil {
			return err
		}
	}
	return nil
}

// Str reads a string field. A field that was never set reads as "".
func (s *Struct) Str(name string) (string, error) {
	f, err := s.field(name, FieldString)
	if err != nil {
		return "", err
	}
	ptr, err := s.mem.ReadU32(s.base + f.Offset)
	if err != nil {
		return "", err
	}
	n, err := s.mem.ReadU32(s.base + f.Offset + 4)
	if err != nil || ptr == 0 || n == 0 {
		return "", err
	}
	b, err := s.mem.Read(ptr, n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SetStr copies v into newly allocated memory and frees the old bytes.
func (s *Struct) SetStr(name string, v string) error {
	f, err := s.field(name, FieldString)
	if err != nil {
		return err
	}
	var ptr uint32
	if len(v) > 0 {
		ptr, err = s.alloc.Alloc(uint32(len(v)), 1)
		if err != nil {
			return err
		}
		if err := s.mem.Write(ptr, []byte(v)); err != nil {
			s.alloc.Free(ptr, uint32(len(v)), 1)
			return err
		}
	}
	s.freeString(f)
	if err := s.mem.WriteU32(s.base+f.Offset, ptr); err != nil {
		return err
	}
	return s.mem.WriteU32(s.base+f.Offset+4, uint32(len(v)))
}

func (s *Struct) freeString(f Field) {
	ptr, err := s.mem.ReadU32(s.base + f.Offset)
	if err != nil || ptr == 0 {
		return
	}
	n, err := s.mem.ReadU32(s.base + f.Offset + 4)
	if err != nil {
		return
	}
	s.alloc.Free(ptr, n, 1)
}

func (s *Struct) Handle(name string) (uint32, error) {
	f, err := s.field(name, FieldHandle)
	if err != nil {
		return 0, err
	}
	return s.mem.ReadU32(s.base + f.Offset)
}

func (s *Struct) SetHandle(name string, v uint32) error {
	f, err := s.field(name, FieldHandle)
	if err != nil {
		return err
	}
	return s.mem.WriteU32(s.base+f.Offset, v)
}

func (s *Struct) U16(name string) (uint16, error) {
	f, err := s.field(name, FieldU16)
	if err != nil {
		return 0, err
	}
	return s.mem.ReadU16(s.base + f.Offset)
}

func (s *Struct) SetU16(name string, v uint16) error {
	f, err := s.field(name, FieldU16)
	if err != nil {
		return err
	}
	return s.mem.WriteU16(s.base+f.Offset, v)
}

func (s *Struct) S8(name string) (int8, error) {
	f, err := s.field(name, FieldS8)
	if err != nil {
		return 0, err
	}
	b, err := s.mem.ReadU8(s.base + f.Offset)
	return int8(b), err
}

func (s *Struct) SetS8(name string, v int8) error {
	f, err := s.field(name, FieldS8)
	if err != nil {
		return err
	}
	return s.mem.WriteU8(s.base+f.Offset, uint8(v))
}

func (s *Struct) readF32(addr uint32) (float32, error) {
	u, err := s.mem.ReadU32(addr)
	return math.Float32frombits(u), err
}

// Load reads field f in the Go shape of its kind: bool, int32, uint16,
// int8, float32, Vec2, Vec4, string, or uint32 for handles.
func (s *Struct) Load(f Field) (any, error) {
	switch f.Kind {
	case FieldBool:
		return s.Bool(f.Name)
	case FieldInt:
		return s.Int(f.Name)
	case FieldU16:
		return s.U16(f.Name)
	case FieldS8:
		return s.S8(f.Name)
	case FieldFloat:
		return s.Float(f.Name)
	case FieldVec2:
		return s.Vec2(f.Name)
	case FieldVec4:
		return s.Vec4(f.Name)
	case FieldString:
		return s.Str(f.Name)
	case FieldHandle:
		return s.Handle(f.Name)
	}
	return nil, errors.Unsupported(errors.PhaseField, "field kind "+f.Kind.String())
}

// Store writes v, in the shape Load returns for f, into field f.
func (s *Struct) Store(f Field, v any) error {
	switch x := v.(type) {
	case bool:
		return s.SetBool(f.Name, x)
	case int32:
		return s.SetInt(f.Name, x)
	case uint16:
		return s.SetU16(f.Name, x)
	case int8:
		return s.SetS8(f.Name, x)
	case float32:
		return s.SetFloat(f.Name, x)
	case Vec2:
		return s.SetVec2(f.Name, x)
	case Vec4:
		return s.SetVec4(f.Name, x)
	case string:
		return s.SetStr(f.Name, x)
	case uint32:
		return s.SetHandle(f.Name, x)
	}
	return errors.Unsupported(errors.PhaseField, fmt.Sprintf("%T value for %s", v, f.Name))
}
