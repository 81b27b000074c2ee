// Package value defines the host-side value representation: a small
// immutable tagged union covering everything a host call can carry.
package value

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

type Kind uint8

const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindPointer
	KindRecord
	KindList
	KindObject
)

var kindNames = [...]string{
	KindNone:    "None",
	KindBool:    "bool",
	KindInt:     "int",
	KindFloat:   "float",
	KindString:  "str",
	KindPointer: "void_p",
	KindRecord:  "record",
	KindList:    "list",
	KindObject:  "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Address is an opaque native address token. The bridge never dereferences it.
type Address uint64

// Object is a host-visible native object such as a capability wrapper or a
// value reference.
type Object interface {
	TypeName() string
}

// Fielder is an Object with named, host-visible fields.
type Fielder interface {
	Object
	Get(name string) (Value, error)
	Set(name string, v Value) error
	Fields() []string
}

// Value is one host value. The zero Value is None.
type Value struct {
	obj    Object
	fields map[string]Value
	s      string
	list   []Value
	num    uint64
	kind   Kind
}

func None() Value { return Value{} }

func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

func Int(i int64) Value { return Value{kind: KindInt, num: uint64(i)} }

func Float(f float64) Value { return Value{kind: KindFloat, num: math.Float64bits(f)} }

func String(s string) Value { return Value{kind: KindString, s: s} }

func Pointer(a Address) Value { return Value{kind: KindPointer, num: uint64(a)} }

// Record builds a typed record. The fields map is copied.
func Record(typeName string, fields map[string]Value) Value {
	cp := make(map[string]Value, len(fields))
	for k, f := range fields {
		cp[k] = f
	}
	return Value{kind: KindRecord, s: typeName, fields: cp}
}

// List builds a list. The items slice is copied.
func List(items ...Value) Value {
	return Value{kind: KindList, list: slices.Clone(items)}
}

// Obj wraps a native object. A nil object is None.
func Obj(o Object) Value {
	if o == nil {
		return None()
	}
	return Value{kind: KindObject, obj: o}
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNone() bool { return v.kind == KindNone }

func (v Value) Bool() (bool, bool) {
	return v.num != 0, v.kind == KindBool
}

func (v Value) Int() (int64, bool) {
	return int64(v.num), v.kind == KindInt
}

func (v Value) Float() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return math.Float64frombits(v.num), true
}

// Number returns an int or float value as float64.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(int64(v.num)), true
	case KindFloat:
		return math.Float64frombits(v.num), true
	}
	return 0, false
}

func (v Value) Str() (string, bool) {
	return v.s, v.kind == KindString
}

func (v Value) Pointer() (Address, bool) {
	return Address(v.num), v.kind == KindPointer
}

// RecordType returns the type name of a record, or "" for other kinds.
func (v Value) RecordType() string {
	if v.kind != KindRecord {
		return ""
	}
	return v.s
}

// Field returns a record field.
func (v Value) Field(name string) (Value, bool) {
	if v.kind != KindRecord {
		return Value{}, false
	}
	f, ok := v.fields[name]
	return f, ok
}

// FieldNames returns the record's field names in sorted order.
func (v Value) FieldNames() []string {
	if v.kind != KindRecord {
		return nil
	}
	names := make([]string, 0, len(v.fields))
	for k := range v.fields {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// List returns a copy of the list items.
func (v Value) List() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return slices.Clone(v.list), true
}

// Len returns the number of list items, or 0.
func (v Value) Len() int {
	if v.kind != KindList {
		return 0
	}
	return len(v.list)
}

// Index returns the i-th list item.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindList || i < 0 || i >= len(v.list) {
		return Value{}, false
	}
	return v.list[i], true
}

func (v Value) Object() (Object, bool) {
	return v.obj, v.kind == KindObject
}

// TypeName is the host-visible type name: the kind name, the record type
// or the object's type.
func (v Value) TypeName() string {
	switch v.kind {
	case KindRecord:
		return v.s
	case KindObject:
		return v.obj.TypeName()
	}
	return v.kind.String()
}

// Equal reports deep equality. Objects compare by identity.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNone:
		return true
	case KindBool, KindInt, KindPointer:
		return v.num == o.num
	case KindFloat:
		return math.Float64frombits(v.num) == math.Float64frombits(o.num)
	case KindString:
		return v.s == o.s
	case KindRecord:
		if v.s != o.s || len(v.fields) != len(o.fields) {
			return false
		}
		for k, f := range v.fields {
			of, ok := o.fields[k]
			if !ok || !f.Equal(of) {
				return false
			}
		}
		return true
	case KindList:
		return slices.EqualFunc(v.list, o.list, Value.Equal)
	case KindObject:
		return v.obj == o.obj
	}
	return false
}

// String renders v the way the host would print it.
func (v Value) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

func (v Value) write(b *strings.Builder) {
	switch v.kind {
	case KindNone:
		b.WriteString("None")
	case KindBool:
		if v.num != 0 {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case KindInt:
		b.WriteString(strconv.FormatInt(int64(v.num), 10))
	case KindFloat:
		b.WriteString(formatFloat(math.Float64frombits(v.num)))
	case KindString:
		b.WriteString(strconv.Quote(v.s))
	case KindPointer:
		b.WriteString("<void_p at 0x")
		b.WriteString(strconv.FormatUint(v.num, 16))
		b.WriteByte('>')
	case KindRecord:
		b.WriteString(v.s)
		b.WriteByte('(')
		order, named := v.recordOrder()
		for i, name := range order {
			if i > 0 {
				b.WriteString(", ")
			}
			if named {
				b.WriteString(name)
				b.WriteByte('=')
			}
			v.fields[name].write(b)
		}
		b.WriteByte(')')
	case KindList:
		b.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				b.WriteString(", ")
			}
			item.write(b)
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('<')
		b.WriteString(v.obj.TypeName())
		b.WriteString(" object>")
	}
}

// component order for the vector-like records
var positional = map[string][]string{
	"vec2":      {"x", "y"},
	"vec4":      {"x", "y", "z", "w"},
	"Rectangle": {"x", "y", "width", "height"},
}

func (v Value) recordOrder() (order []string, named bool) {
	if order, ok := positional[v.s]; ok && len(order) == len(v.fields) {
		for _, name := range order {
			if _, ok := v.fields[name]; !ok {
				return v.FieldNames(), true
			}
		}
		return order, false
	}
	return v.FieldNames(), true
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnNI") {
		s += ".0"
	}
	return s
}
