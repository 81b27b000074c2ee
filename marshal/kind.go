package marshal

// Kind is a native parameter or return kind.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNone
	KindAny
	KindBool
	KindInt
	KindFloat
	KindString
	KindVec2
	KindVec4
	KindRect
	KindPointer
	KindTextBuffer
	KindBoolRef
	KindIntRef
	KindFloatRef
	KindStringList
	KindObject
)

var kindNames = [...]string{
	KindInvalid:    "invalid",
	KindNone:       "None",
	KindAny:        "any",
	KindBool:       "bool",
	KindInt:        "int",
	KindFloat:      "float",
	KindString:     "str",
	KindVec2:       "vec2",
	KindVec4:       "vec4",
	KindRect:       "Rectangle",
	KindPointer:    "void_p",
	KindTextBuffer: "char_p",
	KindBoolRef:    "bool_p",
	KindIntRef:     "int_p",
	KindFloatRef:   "float_p",
	KindStringList: "list[str]",
	KindObject:     "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// pointer-like type names that travel as opaque addresses
var pointerAliases = map[string]bool{
	"void_p":          true,
	"Texture_p":       true,
	"RenderTexture_p": true,
	"Texture":         true,
	"ImFont":          true,
}

// ParseKind resolves a type name as written in a signature. Names starting
// with an underscore are wrapper object types.
func ParseKind(name string) (Kind, bool) {
	if pointerAliases[name] {
		return KindPointer, true
	}
	for k, n := range kindNames {
		if n == name && Kind(k) > KindAny && Kind(k) != KindObject {
			return Kind(k), true
		}
	}
	switch {
	case name == "None":
		return KindNone, true
	case name == "float32", name == "f32":
		return KindFloat, true
	case len(name) > 1 && name[0] == '_':
		return KindObject, true
	}
	return KindInvalid, false
}
