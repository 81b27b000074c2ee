package marshal

import (
	"bytes"
	"strconv"
	"unicode/utf8"

	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/value"
)

// TextBuffer is a fixed-capacity, NUL-terminated byte buffer handed to
// native calls that edit text in place. It never grows.
type TextBuffer struct {
	buf    []byte
	closed bool
}

// NewTextBuffer allocates a zeroed buffer of capacity bytes.
func NewTextBuffer(capacity int) (*TextBuffer, error) {
	if capacity <= 0 {
		return nil, errors.InvalidArgument(errors.PhaseCall, []string{"char_p"},
			"buffer capacity must be positive, got "+strconv.Itoa(capacity))
	}
	return &TextBuffer{buf: make([]byte, capacity)}, nil
}

// NewTextBufferString allocates a buffer and copies s into it, truncated to fit.
func NewTextBufferString(s string, capacity int) (*TextBuffer, error) {
	b, err := NewTextBuffer(capacity)
	if err != nil {
		return nil, err
	}
	b.SetText(s)
	return b, nil
}

// Cap returns the buffer capacity including the terminating NUL.
func (b *TextBuffer) Cap() int { return len(b.buf) }

// Bytes returns the whole backing array. Writers must keep a NUL in it.
func (b *TextBuffer) Bytes() []byte { return b.buf }

// Text returns the contents up to the first NUL.
func (b *TextBuffer) Text() string {
	if i := bytes.IndexByte(b.buf, 0); i >= 0 {
		return string(b.buf[:i])
	}
	return string(b.buf)
}

// SetText replaces the contents, truncating at a rune boundary so that the
// terminating NUL fits. It reports whether s was truncated.
func (b *TextBuffer) SetText(s string) bool {
	limit := len(b.buf) - 1
	truncated := false
	if len(s) > limit {
		s = s[:limit]
		// Drop only a rune cut in half by the limit.
		i := len(s) - 1
		for i > 0 && len(s)-i < utf8.UTFMax && !utf8.RuneStart(s[i]) {
			i--
		}
		if i >= 0 && !utf8.FullRuneInString(s[i:]) {
			s = s[:i]
		}
		truncated = true
	}
	n := copy(b.buf, s)
	clear(b.buf[n:])
	return truncated
}

// Close invalidates the buffer; later native calls reject it.
func (b *TextBuffer) Close() { b.closed = true }

func (b *TextBuffer) TypeName() string { return "char_p" }

func (b *TextBuffer) Fields() []string { return []string{"value", "capacity"} }

func (b *TextBuffer) Get(name string) (value.Value, error) {
	switch name {
	case "value":
		return value.String(b.Text()), nil
	case "capacity":
		return value.Int(int64(len(b.buf))), nil
	}
	return value.Value{}, noField(b, name)
}

func (b *TextBuffer) Set(name string, v value.Value) error {
	switch name {
	case "value":
		s, ok := v.Str()
		if !ok {
			return errors.TypeMismatch(errors.PhaseField, []string{"char_p", name}, v.TypeName(), "str")
		}
		b.SetText(s)
		return nil
	case "capacity":
		return errors.Unsupported(errors.PhaseField, "char_p.capacity is read-only")
	}
	return noField(b, name)
}

// CheckBuffer validates a host-supplied buffer against the capacity the
// caller declared for it. It must pass before the native call runs.
func CheckBuffer(b *TextBuffer, declared int) error {
	switch {
	case b == nil:
		return errors.InvalidArgument(errors.PhaseCall, nil, "invalid buffer")
	case b.closed:
		return errors.InvalidArgument(errors.PhaseCall, nil, "buffer closed")
	case declared <= 0:
		return errors.InvalidArgument(errors.PhaseCall, nil, "buffer capacity is zero")
	case declared > len(b.buf):
		return errors.InvalidArgument(errors.PhaseCall, nil,
			"declared capacity "+strconv.Itoa(declared)+" exceeds buffer capacity "+strconv.Itoa(len(b.buf)))
	}
	return nil
}
