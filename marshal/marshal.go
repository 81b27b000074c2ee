package marshal

import (
	"math"
	"strconv"

	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/value"
)

// ToNative converts a host value to the Go shape of native kind k:
//
//	KindBool        bool
//	KindInt         int32
//	KindFloat       float32
//	KindString      string
//	KindVec2        native.Vec2
//	KindVec4        native.Vec4
//	KindRect        native.Rect
//	KindPointer     value.Address
//	KindTextBuffer  *TextBuffer
//	KindBoolRef     *BoolRef
//	KindIntRef      *IntRef
//	KindFloatRef    *FloatRef
//	KindStringList  []string
//	KindObject      value.Object
//	KindAny         value.Value, unconverted
func ToNative(v value.Value, k Kind) (any, error) {
	switch k {
	case KindAny:
		return v, nil
	case KindBool:
		if b, ok := v.Bool(); ok {
			return b, nil
		}
	case KindInt:
		if i, ok := v.Int(); ok {
			if i < math.MinInt32 || i > math.MaxInt32 {
				return nil, errors.New(errors.PhaseMarshal, errors.KindTypeMismatch).
					HostKind("int").
					NativeKind("int").
					Value(i).
					Detail("%d out of range for a 32-bit int", i).
					Build()
			}
			return int32(i), nil
		}
	case KindFloat:
		if f, ok := v.Number(); ok {
			return float32(f), nil
		}
	case KindString:
		if s, ok := v.Str(); ok {
			return s, nil
		}
	case KindVec2:
		c, err := vector(v, k, "vec2", nil)
		if err != nil {
			return nil, err
		}
		return native.Vec2{X: c[0], Y: c[1]}, nil
	case KindVec4:
		c, err := vector(v, k, "vec4", []string{"color"})
		if err != nil {
			return nil, err
		}
		return native.Vec4{X: c[0], Y: c[1], Z: c[2], W: c[3]}, nil
	case KindRect:
		c, err := vector(v, k, "Rectangle", nil)
		if err != nil {
			return nil, err
		}
		return native.Rect{X: c[0], Y: c[1], Width: c[2], Height: c[3]}, nil
	case KindPointer:
		if a, ok := v.Pointer(); ok {
			return a, nil
		}
	case KindTextBuffer:
		if o, ok := v.Object(); ok {
			if b, ok := o.(*TextBuffer); ok {
				return b, nil
			}
		}
	case KindBoolRef:
		if o, ok := v.Object(); ok {
			if r, ok := o.(*BoolRef); ok {
				return r, nil
			}
		}
	case KindIntRef:
		if o, ok := v.Object(); ok {
			if r, ok := o.(*IntRef); ok {
				return r, nil
			}
		}
	case KindFloatRef:
		if o, ok := v.Object(); ok {
			if r, ok := o.(*FloatRef); ok {
				return r, nil
			}
		}
	case KindStringList:
		return toStringList(v)
	case KindObject:
		if o, ok := v.Object(); ok {
			return o, nil
		}
	default:
		return nil, errors.Unsupported(errors.PhaseMarshal, "native kind "+k.String())
	}
	return nil, errors.TypeMismatch(errors.PhaseMarshal, nil, v.TypeName(), k.String())
}

var componentNames = map[string][]string{
	"vec2":      {"x", "y"},
	"vec4":      {"x", "y", "z", "w"},
	"color":     {"x", "y", "z", "w"},
	"Rectangle": {"x", "y", "width", "height"},
}

// vector reads the components of a vector-like record, in declaration
// order, or of a numeric list of the same length.
func vector(v value.Value, k Kind, record string, aliases []string) ([]float32, error) {
	names := componentNames[record]
	mismatch := func(detail string) error {
		b := errors.New(errors.PhaseMarshal, errors.KindTypeMismatch).
			HostKind(v.TypeName()).
			NativeKind(k.String())
		if detail != "" {
			b.Detail("%s", detail)
		}
		return b.Build()
	}

	out := make([]float32, len(names))
	switch v.Kind() {
	case value.KindRecord:
		rt := v.RecordType()
		if rt != record && !contains(aliases, rt) {
			return nil, mismatch("")
		}
		for i, name := range names {
			f, ok := v.Field(name)
			if !ok {
				return nil, mismatch("missing component " + name)
			}
			n, ok := f.Number()
			if !ok {
				return nil, mismatch("component " + name + " is " + f.TypeName())
			}
			out[i] = float32(n)
		}
		return out, nil
	case value.KindList:
		if v.Len() != len(names) {
			return nil, mismatch("expected a " + k.String() + " or a list of " + strconv.Itoa(len(names)) + " numbers")
		}
		for i := range names {
			item, _ := v.Index(i)
			n, ok := item.Number()
			if !ok {
				return nil, mismatch("item " + strconv.Itoa(i) + " is " + item.TypeName())
			}
			out[i] = float32(n)
		}
		return out, nil
	}
	return nil, mismatch("")
}

// ToHost converts the Go shape of a native kind back into a host value.
func ToHost(n any, k Kind) (value.Value, error) {
	if n == nil {
		return value.None(), nil
	}
	switch k {
	case KindNone:
		return value.None(), nil
	case KindAny:
		if v, ok := n.(value.Value); ok {
			return v, nil
		}
	case KindBool:
		if b, ok := n.(bool); ok {
			return value.Bool(b), nil
		}
	case KindInt:
		switch i := n.(type) {
		case int32:
			return value.Int(int64(i)), nil
		case int:
			return value.Int(int64(i)), nil
		case int64:
			return value.Int(i), nil
		case uint32:
			return value.Int(int64(i)), nil
		}
	case KindFloat:
		switch f := n.(type) {
		case float32:
			return value.Float(float64(f)), nil
		case float64:
			return value.Float(f), nil
		}
	case KindString:
		if s, ok := n.(string); ok {
			return value.String(s), nil
		}
	case KindVec2:
		if v, ok := n.(native.Vec2); ok {
			return Vec2Value(v), nil
		}
	case KindVec4:
		if v, ok := n.(native.Vec4); ok {
			return Vec4Value(v), nil
		}
	case KindRect:
		if r, ok := n.(native.Rect); ok {
			return RectValue(r), nil
		}
	case KindPointer:
		if a, ok := n.(value.Address); ok {
			return value.Pointer(a), nil
		}
	case KindStringList:
		if items, ok := n.([]string); ok {
			vals := make([]value.Value, len(items))
			for i, s := range items {
				vals[i] = value.String(s)
			}
			return value.List(vals...), nil
		}
	case KindTextBuffer, KindBoolRef, KindIntRef, KindFloatRef, KindObject:
		if o, ok := n.(value.Object); ok {
			return value.Obj(o), nil
		}
	}
	return value.Value{}, errors.New(errors.PhaseUnmarshal, errors.KindTypeMismatch).
		NativeKind(k.String()).
		Value(n).
		Detail("unexpected Go value %T", n).
		Build()
}

// DispatchByRuntimeTag picks the native kind for a parameter that accepts
// several unrelated kinds. The order is fixed: str, then int, then void_p.
func DispatchByRuntimeTag(v value.Value) (Kind, error) {
	if _, ok := v.Str(); ok {
		return KindString, nil
	}
	if _, ok := v.Int(); ok {
		return KindInt, nil
	}
	if _, ok := v.Pointer(); ok {
		return KindPointer, nil
	}
	return KindInvalid, errors.New(errors.PhaseDispatch, errors.KindTypeMismatch).
		HostKind(v.TypeName()).
		NativeKind("str|int|void_p").
		Detail("expected str, int or void_p").
		Build()
}

func Vec2Value(v native.Vec2) value.Value {
	return value.Record("vec2", map[string]value.Value{
		"x": value.Float(float64(v.X)),
		"y": value.Float(float64(v.Y)),
	})
}

func Vec4Value(v native.Vec4) value.Value {
	return value.Record("vec4", map[string]value.Value{
		"x": value.Float(float64(v.X)),
		"y": value.Float(float64(v.Y)),
		"z": value.Float(float64(v.Z)),
		"w": value.Float(float64(v.W)),
	})
}

func RectValue(r native.Rect) value.Value {
	return value.Record("Rectangle", map[string]value.Value{
		"x":      value.Float(float64(r.X)),
		"y":      value.Float(float64(r.Y)),
		"width":  value.Float(float64(r.Width)),
		"height": value.Float(float64(r.Height)),
	})
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
