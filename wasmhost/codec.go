package wasmhost

import (
	"encoding/binary"
	"maps"
	"math"
	"slices"
	"unicode/utf8"

	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/resource"
	"github.com/wippyai/imgui-bridge/value"
)

// Wire tags. Every value is one tag byte followed by a little-endian
// payload:
//
//	none     -
//	bool     u8 (0 or 1)
//	int      i64
//	float    f64
//	string   u32 length, UTF-8 bytes
//	pointer  u64
//	list     u32 count, items
//	record   string type name, u32 count, (string name, value) pairs
//	object   u32 token
const (
	TagNone byte = iota
	TagBool
	TagInt
	TagFloat
	TagString
	TagPointer
	TagList
	TagRecord
	TagObject
)

// Safety limits for decoding guest data.
const (
	MaxDepth      = 32
	MaxItems      = 1 << 16
	MaxStringSize = 1 << 20
)

// Objects maps host objects to the u32 tokens a guest holds in their place.
// The same object always gets the same token until it is released.
type Objects struct {
	table  resource.Table
	tokens map[value.Object]resource.Handle
}

// NewObjects creates an empty object table.
func NewObjects() *Objects {
	o := &Objects{
		table:  resource.NewTable(),
		tokens: make(map[value.Object]resource.Handle),
	}
	o.table.Subscribe(o)
	return o
}

// OnResourceEvent keeps the reverse map in step with the table.
func (o *Objects) OnResourceEvent(e resource.Event) {
	obj, ok := e.Value.(value.Object)
	if !ok {
		return
	}
	switch e.Type {
	case resource.EventCreated:
		o.tokens[obj] = e.Handle
	case resource.EventDropped:
		delete(o.tokens, obj)
	}
}

// Token returns the token for obj, registering it on first use.
func (o *Objects) Token(obj value.Object) uint32 {
	if h, ok := o.tokens[obj]; ok {
		return uint32(h)
	}
	return uint32(o.table.Insert(resource.TypeHostObject, obj))
}

// Lookup resolves a token.
func (o *Objects) Lookup(token uint32) (value.Object, bool) {
	v, ok := o.table.GetTyped(resource.Handle(token), resource.TypeHostObject)
	if !ok {
		return nil, false
	}
	return v.(value.Object), true
}

// Release forgets a token. A released token never resolves again.
func (o *Objects) Release(token uint32) bool {
	_, ok := o.table.Remove(resource.Handle(token))
	return ok
}

// Len returns the number of live tokens.
func (o *Objects) Len() int { return o.table.Len() }

// Close releases every token.
func (o *Objects) Close() {
	o.table.Clear()
}

func wireErr(kind errors.Kind, format string, args ...any) *errors.Error {
	return errors.New(errors.PhaseWire, kind).Detail(format, args...).Build()
}

// AppendValue encodes v onto dst. Objects are replaced by tokens from
// objs; a nil objs refuses them.
func AppendValue(dst []byte, v value.Value, objs *Objects) ([]byte, error) {
	return appendValue(dst, v, objs, 0)
}

func appendValue(dst []byte, v value.Value, objs *Objects, depth int) ([]byte, error) {
	if depth > MaxDepth {
		return nil, wireErr(errors.KindOverflow, "value nested deeper than %d", MaxDepth)
	}
	switch v.Kind() {
	case value.KindNone:
		return append(dst, TagNone), nil
	case value.KindBool:
		b, _ := v.Bool()
		if b {
			return append(dst, TagBool, 1), nil
		}
		return append(dst, TagBool, 0), nil
	case value.KindInt:
		i, _ := v.Int()
		return binary.LittleEndian.AppendUint64(append(dst, TagInt), uint64(i)), nil
	case value.KindFloat:
		f, _ := v.Float()
		return binary.LittleEndian.AppendUint64(append(dst, TagFloat), math.Float64bits(f)), nil
	case value.KindString:
		s, _ := v.Str()
		return appendString(append(dst, TagString), s), nil
	case value.KindPointer:
		p, _ := v.Pointer()
		return binary.LittleEndian.AppendUint64(append(dst, TagPointer), uint64(p)), nil
	case value.KindList:
		items, _ := v.List()
		dst = binary.LittleEndian.AppendUint32(append(dst, TagList), uint32(len(items)))
		for _, item := range items {
			var err error
			if dst, err = appendValue(dst, item, objs, depth+1); err != nil {
				return nil, err
			}
		}
		return dst, nil
	case value.KindRecord:
		names := v.FieldNames()
		dst = appendString(append(dst, TagRecord), v.RecordType())
		dst = binary.LittleEndian.AppendUint32(dst, uint32(len(names)))
		for _, name := range names {
			f, _ := v.Field(name)
			dst = appendString(dst, name)
			var err error
			if dst, err = appendValue(dst, f, objs, depth+1); err != nil {
				return nil, err
			}
		}
		return dst, nil
	case value.KindObject:
		if objs == nil {
			return nil, wireErr(errors.KindUnsupported, "object %s cannot cross the wire without an object table", v.TypeName())
		}
		o, _ := v.Object()
		return binary.LittleEndian.AppendUint32(append(dst, TagObject), objs.Token(o)), nil
	}
	return nil, wireErr(errors.KindUnsupported, "value kind %s", v.Kind())
}

func appendString(dst []byte, s string) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(s)))
	return append(dst, s...)
}

// DecodeValue decodes one value from the front of src and returns the
// number of bytes it used.
func DecodeValue(src []byte, objs *Objects) (value.Value, int, error) {
	d := decoder{src: src, objs: objs}
	v, err := d.value(0)
	if err != nil {
		return value.Value{}, 0, err
	}
	return v, d.off, nil
}

type decoder struct {
	src  []byte
	objs *Objects
	off  int
}

func (d *decoder) need(n int) error {
	if n < 0 || len(d.src)-d.off < n {
		return wireErr(errors.KindInvalidData, "truncated input at offset %d: need %d bytes, have %d", d.off, n, len(d.src)-d.off)
	}
	return nil
}

func (d *decoder) u8() (byte, error) {
	if err := d.need(1); err != nil {
		return 0, err
	}
	b := d.src[d.off]
	d.off++
	return b, nil
}

func (d *decoder) u32() (uint32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(d.src[d.off:])
	d.off += 4
	return v, nil
}

func (d *decoder) u64() (uint64, error) {
	if err := d.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(d.src[d.off:])
	d.off += 8
	return v, nil
}

func (d *decoder) count() (int, error) {
	n, err := d.u32()
	if err != nil {
		return 0, err
	}
	if n > MaxItems {
		return 0, wireErr(errors.KindOverflow, "count %d exceeds limit %d", n, MaxItems)
	}
	// Every item takes at least its tag byte.
	if int(n) > len(d.src)-d.off {
		return 0, wireErr(errors.KindInvalidData, "count %d exceeds the %d bytes left", n, len(d.src)-d.off)
	}
	return int(n), nil
}

func (d *decoder) str() (string, error) {
	n, err := d.u32()
	if err != nil {
		return "", err
	}
	if n > MaxStringSize {
		return "", wireErr(errors.KindOverflow, "string of %d bytes exceeds limit %d", n, MaxStringSize)
	}
	if err := d.need(int(n)); err != nil {
		return "", err
	}
	b := d.src[d.off : d.off+int(n)]
	if !utf8.Valid(b) {
		return "", wireErr(errors.KindInvalidData, "string at offset %d is not valid UTF-8", d.off)
	}
	d.off += int(n)
	return string(b), nil
}

func (d *decoder) value(depth int) (value.Value, error) {
	if depth > MaxDepth {
		return value.Value{}, wireErr(errors.KindOverflow, "value nested deeper than %d", MaxDepth)
	}
	tag, err := d.u8()
	if err != nil {
		return value.Value{}, err
	}
	switch tag {
	case TagNone:
		return value.None(), nil
	case TagBool:
		b, err := d.u8()
		if err != nil {
			return value.Value{}, err
		}
		if b > 1 {
			return value.Value{}, wireErr(errors.KindInvalidData, "bool byte %d", b)
		}
		return value.Bool(b == 1), nil
	case TagInt:
		u, err := d.u64()
		return value.Int(int64(u)), err
	case TagFloat:
		u, err := d.u64()
		return value.Float(math.Float64frombits(u)), err
	case TagString:
		s, err := d.str()
		return value.String(s), err
	case TagPointer:
		u, err := d.u64()
		return value.Pointer(value.Address(u)), err
	case TagList:
		n, err := d.count()
		if err != nil {
			return value.Value{}, err
		}
		items := make([]value.Value, n)
		for i := range items {
			if items[i], err = d.value(depth + 1); err != nil {
				return value.Value{}, err
			}
		}
		return value.List(items...), nil
	case TagRecord:
		name, err := d.str()
		if err != nil {
			return value.Value{}, err
		}
		n, err := d.count()
		if err != nil {
			return value.Value{}, err
		}
		fields := make(map[string]value.Value, n)
		for range n {
			field, err := d.str()
			if err != nil {
				return value.Value{}, err
			}
			if fields[field], err = d.value(depth + 1); err != nil {
				return value.Value{}, err
			}
		}
		return value.Record(name, fields), nil
	case TagObject:
		token, err := d.u32()
		if err != nil {
			return value.Value{}, err
		}
		if d.objs == nil {
			return value.Value{}, wireErr(errors.KindUnsupported, "object token %d without an object table", token)
		}
		o, ok := d.objs.Lookup(token)
		if !ok {
			return value.Value{}, wireErr(errors.KindNotFound, "unknown object token %d", token)
		}
		return value.Obj(o), nil
	}
	return value.Value{}, wireErr(errors.KindInvalidData, "unknown tag %d at offset %d", tag, d.off-1)
}

// EncodeArgs encodes a call's arguments: a u32 count and the positional
// values, then a u32 count and (name, value) keyword pairs. The keyword
// section is omitted when empty.
func EncodeArgs(args []value.Value, kwargs map[string]value.Value, objs *Objects) ([]byte, error) {
	buf := binary.LittleEndian.AppendUint32(nil, uint32(len(args)))
	for _, a := range args {
		var err error
		if buf, err = AppendValue(buf, a, objs); err != nil {
			return nil, err
		}
	}
	if len(kwargs) == 0 {
		return buf, nil
	}
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(kwargs)))
	for _, name := range slices.Sorted(maps.Keys(kwargs)) {
		buf = appendString(buf, name)
		var err error
		if buf, err = AppendValue(buf, kwargs[name], objs); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// DecodeArgs reverses EncodeArgs. An empty buffer is a call without
// arguments.
func DecodeArgs(src []byte, objs *Objects) ([]value.Value, map[string]value.Value, error) {
	if len(src) == 0 {
		return nil, nil, nil
	}
	d := decoder{src: src, objs: objs}
	n, err := d.count()
	if err != nil {
		return nil, nil, err
	}
	args := make([]value.Value, n)
	for i := range args {
		if args[i], err = d.value(0); err != nil {
			return nil, nil, err
		}
	}
	if d.off == len(src) {
		return args, nil, nil
	}

	n, err = d.count()
	if err != nil {
		return nil, nil, err
	}
	kwargs := make(map[string]value.Value, n)
	for range n {
		name, err := d.str()
		if err != nil {
			return nil, nil, err
		}
		if _, dup := kwargs[name]; dup {
			return nil, nil, wireErr(errors.KindInvalidData, "keyword %q repeated", name)
		}
		if kwargs[name], err = d.value(0); err != nil {
			return nil, nil, err
		}
	}
	if d.off != len(src) {
		return nil, nil, wireErr(errors.KindInvalidData, "%d trailing bytes after arguments", len(src)-d.off)
	}
	return args, kwargs, nil
}
