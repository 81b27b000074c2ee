package marshal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/value"
)

// Param is one compiled parameter of a call site.
type Param struct {
	Default    value.Value
	Name       string
	Type       string // as written; empty when inferred from the default
	Kind       Kind
	HasDefault bool
	Nullable   bool // accepts None and binds it as nil
}

// Signature is a compiled call-site description.
type Signature struct {
	Name       string
	ResultType string
	Params     []Param
	Result     Kind
}

// Required returns the number of leading parameters without a default.
func (s *Signature) Required() int {
	n := 0
	for _, p := range s.Params {
		if p.HasDefault {
			break
		}
		n++
	}
	return n
}

// Param returns the parameter with the given name.
func (s *Signature) Param(name string) (Param, int, bool) {
	for i, p := range s.Params {
		if p.Name == name {
			return p, i, true
		}
	}
	return Param{}, -1, false
}

// String renders the signature in the form Compile accepts.
func (s *Signature) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte('(')
	for i, p := range s.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		if p.Type != "" {
			b.WriteString(": ")
			b.WriteString(p.Type)
		}
		if p.HasDefault {
			if p.Type != "" {
				b.WriteString(" = ")
			} else {
				b.WriteByte('=')
			}
			b.WriteString(literal(p.Default))
		}
	}
	b.WriteByte(')')
	if s.Result != KindNone {
		b.WriteString(" -> ")
		b.WriteString(s.ResultType)
	}
	return b.String()
}

func literal(v value.Value) string {
	switch v.Kind() {
	case value.KindNone:
		return "None"
	case value.KindBool:
		if b, _ := v.Bool(); b {
			return "True"
		}
		return "False"
	case value.KindString:
		s, _ := v.Str()
		return "'" + s + "'"
	}
	return v.String()
}

// CheckDefaults verifies that every non-None default converts to its
// parameter kind.
func (s *Signature) CheckDefaults() error {
	for i, p := range s.Params {
		if !p.HasDefault || p.Default.IsNone() || p.Kind == KindAny {
			continue
		}
		if _, err := ToNative(p.Default, p.Kind); err != nil {
			return withArg(err, s.Name, i+1, p.Name)
		}
	}
	return nil
}

// Compile parses a signature such as
//
//	SliderFloat(label: str, v: float_p, v_min: float, v_max: float, format='%.3f', flags=0) -> bool
//
// Untyped parameters take their kind from the default literal. An untyped
// parameter with no default, or with a None default, accepts any value.
func Compile(sig string) (*Signature, error) {
	src := strings.TrimSpace(sig)
	open := strings.IndexByte(src, '(')
	if open <= 0 {
		return nil, parseErr(sig, "missing parameter list")
	}
	name := strings.TrimSpace(src[:open])
	if !isIdent(name) {
		return nil, parseErr(sig, "invalid name %q", name)
	}

	closeAt := matchParen(src, open)
	if closeAt < 0 {
		return nil, parseErr(sig, "unbalanced parentheses")
	}

	s := &Signature{Name: name, Result: KindNone, ResultType: "None"}

	rest := strings.TrimSpace(src[closeAt+1:])
	if rest != "" {
		if !strings.HasPrefix(rest, "->") {
			return nil, parseErr(sig, "unexpected %q after parameters", rest)
		}
		rt := strings.TrimSpace(rest[2:])
		k, ok := ParseKind(rt)
		if !ok {
			return nil, parseErr(sig, "unknown result type %q", rt)
		}
		s.Result, s.ResultType = k, rt
	}

	seen := make(map[string]bool)
	for _, raw := range splitParams(src[open+1 : closeAt]) {
		p, err := compileParam(raw)
		if err != nil {
			return nil, parseErr(sig, "%s", err.Error())
		}
		if seen[p.Name] {
			return nil, parseErr(sig, "duplicate parameter %q", p.Name)
		}
		seen[p.Name] = true
		if !p.HasDefault && len(s.Params) > 0 && s.Params[len(s.Params)-1].HasDefault {
			return nil, parseErr(sig, "parameter %q without default follows one with a default", p.Name)
		}
		s.Params = append(s.Params, p)
	}
	return s, nil
}

// MustCompile is Compile for signature tables known at build time.
func MustCompile(sig string) *Signature {
	s, err := Compile(sig)
	if err != nil {
		panic(err)
	}
	return s
}

func compileParam(raw string) (Param, error) {
	var p Param
	decl, def, hasDef := strings.Cut(raw, "=")
	decl = strings.TrimSpace(decl)
	name, typ, typed := strings.Cut(decl, ":")
	p.Name = strings.TrimSpace(name)
	if !isIdent(p.Name) {
		return p, fmt.Errorf("invalid parameter name %q", p.Name)
	}

	if typed {
		p.Type = strings.TrimSpace(typ)
		k, ok := ParseKind(p.Type)
		if !ok || k == KindNone {
			return p, fmt.Errorf("unknown type %q for %s", p.Type, p.Name)
		}
		p.Kind = k
	} else {
		p.Kind = KindAny
	}

	if !hasDef {
		return p, nil
	}
	v, err := parseLiteral(strings.TrimSpace(def))
	if err != nil {
		return p, fmt.Errorf("default of %s: %w", p.Name, err)
	}
	p.Default, p.HasDefault = v, true

	if v.IsNone() {
		p.Nullable = true
		return p, nil
	}
	if !typed {
		switch v.Kind() {
		case value.KindBool:
			p.Kind = KindBool
		case value.KindInt:
			p.Kind = KindInt
		case value.KindFloat:
			p.Kind = KindFloat
		case value.KindString:
			p.Kind = KindString
		}
	}
	return p, nil
}

func parseLiteral(s string) (value.Value, error) {
	switch s {
	case "None":
		return value.None(), nil
	case "True":
		return value.Bool(true), nil
	case "False":
		return value.Bool(false), nil
	case "":
		return value.Value{}, fmt.Errorf("empty default")
	}
	if n := len(s); n >= 2 && (s[0] == '\'' || s[0] == '"') && s[n-1] == s[0] {
		return value.String(s[1 : n-1]), nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return value.Int(i), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return value.Float(f), nil
	}
	return value.Value{}, fmt.Errorf("unsupported literal %q", s)
}

func splitParams(s string) []string {
	var out []string
	depth, start := 0, 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(' || c == '[':
			depth++
		case c == ')' || c == ']':
			depth--
		case c == ',' && depth == 0:
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	if last := strings.TrimSpace(s[start:]); last != "" || len(out) > 0 {
		out = append(out, s[start:])
	}
	return out
}

func matchParen(s string, open int) int {
	depth := 0
	var quote byte
	for i := open; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func parseErr(sig, format string, args ...any) *errors.Error {
	cause := errors.InvalidData(errors.PhaseParse, nil, fmt.Sprintf(format, args...))
	return errors.ParseFailed("signature "+strconv.Quote(sig), cause)
}

// Bind converts positional and keyword host arguments into the Go shapes of
// the signature's parameters. Missing trailing arguments take their
// defaults. Nothing is returned unless every argument converts.
func Bind(sig *Signature, args []value.Value, kwargs map[string]value.Value) ([]any, error) {
	if len(args) > len(sig.Params) {
		return nil, errors.Arity(sig.Name, sig.Required(), len(sig.Params), len(args))
	}
	for name := range kwargs {
		_, i, ok := sig.Param(name)
		if !ok {
			return nil, errors.New(errors.PhaseMarshal, errors.KindInvalidArgument).
				Path(sig.Name).
				Detail("unexpected keyword argument %q", name).
				Build()
		}
		if i < len(args) {
			return nil, errors.New(errors.PhaseMarshal, errors.KindInvalidArgument).
				Path(sig.Name, name).
				Position(i + 1).
				Detail("multiple values for argument %q", name).
				Build()
		}
	}

	out := make([]any, len(sig.Params))
	for i, p := range sig.Params {
		var v value.Value
		switch kv, ok := kwargs[p.Name]; {
		case i < len(args):
			v = args[i]
		case ok:
			v = kv
		case p.HasDefault:
			v = p.Default
		default:
			return nil, errors.Arity(sig.Name, sig.Required(), len(sig.Params), len(args)+len(kwargs))
		}

		if p.Kind == KindAny {
			out[i] = v
			continue
		}
		if v.IsNone() && p.Nullable {
			out[i] = nil
			continue
		}
		n, err := ToNative(v, p.Kind)
		if err != nil {
			return nil, withArg(err, sig.Name, i+1, p.Name)
		}
		out[i] = n
	}
	return out, nil
}

func withArg(err error, fn string, pos int, name string) error {
	if e, ok := err.(*errors.Error); ok {
		return e.WithArg(fn, pos, name)
	}
	return errors.New(errors.PhaseMarshal, errors.KindInvalidArgument).
		Path(fn, name).
		Position(pos).
		Cause(err).
		Build()
}
