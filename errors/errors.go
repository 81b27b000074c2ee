package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in a bridge call the error occurred
type Phase string

const (
	PhaseRegister  Phase = "register"  // module and type registration
	PhaseMarshal   Phase = "marshal"   // host to native
	PhaseUnmarshal Phase = "unmarshal" // native to host
	PhaseDispatch  Phase = "dispatch"  // runtime-tag overload selection
	PhaseCall      Phase = "call"      // native call preconditions
	PhaseField     Phase = "field"     // capability wrapper field access
	PhaseMemory    Phase = "memory"    // native struct block access
	PhaseWire      Phase = "wire"      // guest wire codec
	PhaseHost      Phase = "host"      // guest host module
	PhaseParse     Phase = "parse"     // signature and expression parsing
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch    Kind = "type_mismatch"
	KindInvalidArgument Kind = "invalid_argument"
	KindUnsupported     Kind = "unsupported"
	KindOutOfBounds     Kind = "out_of_bounds"
	KindInvalidData     Kind = "invalid_data"
	KindArity           Kind = "arity"
	KindAllocation      Kind = "allocation"
	KindOverflow        Kind = "overflow"
	KindNilPointer      Kind = "nil_pointer"
	KindNotFound        Kind = "not_found"
	KindNotInitialized  Kind = "not_initialized"
	KindRegistration    Kind = "registration"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Value      any
	Cause      error
	Phase      Phase
	Kind       Kind
	HostKind   string
	NativeKind string
	Detail     string
	Path       []string
	Position   int // 1-based argument position, 0 when not tied to an argument
}

// PathString joins Path with dots. Index segments such as "[1]" attach to
// the segment before them.
func (e *Error) PathString() string {
	var b strings.Builder
	for i, seg := range e.Path {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(e.PathString())
	}
	if e.Position > 0 {
		b.WriteString(" (arg ")
		b.WriteString(strconv.Itoa(e.Position))
		b.WriteByte(')')
	}

	if e.HostKind != "" || e.NativeKind != "" {
		b.WriteString(": ")
		if e.HostKind != "" && e.NativeKind != "" {
			b.WriteString("host ")
			b.WriteString(e.HostKind)
			b.WriteString(", native ")
			b.WriteString(e.NativeKind)
		} else if e.HostKind != "" {
			b.WriteString("host ")
			b.WriteString(e.HostKind)
		} else {
			b.WriteString("native ")
			b.WriteString(e.NativeKind)
		}
	}

	if e.Detail != "" {
		if e.HostKind != "" || e.NativeKind != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// WithArg returns a copy of e bound to an argument position and name.
func (e *Error) WithArg(fn string, pos int, name string) *Error {
	c := *e
	c.Position = pos
	c.Path = append([]string{fn, name}, e.Path...)
	return &c
}

// IsKind reports whether any *Error in err's chain has the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if errors.As(err, &e) {
			if e.Kind == kind {
				return true
			}
			err = e.Cause
			continue
		}
		return false
	}
	return false
}

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Position sets the argument position
func (b *Builder) Position(pos int) *Builder {
	b.err.Position = pos
	return b
}

// HostKind sets the host value kind
func (b *Builder) HostKind(k string) *Builder {
	b.err.HostKind = k
	return b
}

// NativeKind sets the native parameter kind
func (b *Builder) NativeKind(k string) *Builder {
	b.err.NativeKind = k
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, hostKind, nativeKind string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindTypeMismatch,
		Path:       path,
		HostKind:   hostKind,
		NativeKind: nativeKind,
	}
}

// InvalidArgument creates an error for a well-typed value that violates a call precondition
func InvalidArgument(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidArgument,
		Path:   path,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Arity creates a wrong-argument-count error
func Arity(fn string, min, max, got int) *Error {
	var detail string
	switch {
	case min == max:
		detail = fmt.Sprintf("expected %d argument(s), got %d", min, got)
	case got < min:
		detail = fmt.Sprintf("expected at least %d argument(s), got %d", min, got)
	default:
		detail = fmt.Sprintf("expected at most %d argument(s), got %d", max, got)
	}
	return &Error{
		Phase:  PhaseMarshal,
		Kind:   KindArity,
		Path:   []string{fn},
		Detail: detail,
		Value:  got,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size, align uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes (align %d)", size, align),
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, path []string, nativeKind string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindNilPointer,
		Path:       path,
		NativeKind: nativeKind,
		Detail:     "nil pointer",
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, target string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindOverflow,
		Path:       path,
		NativeKind: target,
		Detail:     fmt.Sprintf("value %v overflows %s", value, target),
		Value:      value,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// NotInitialized creates a not-initialized error
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Registration creates a registration error
func Registration(namespace, name string, cause error) *Error {
	return &Error{
		Phase:  PhaseRegister,
		Kind:   KindRegistration,
		Detail: fmt.Sprintf("register %s.%s", namespace, name),
		Cause:  cause,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}
