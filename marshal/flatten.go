package marshal

import (
	"bytes"
	"strconv"

	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/value"
)

// FlattenStrings encodes items as NUL-terminated entries followed by one
// more NUL: ["a", "bb", ""] becomes "a\x00bb\x00\x00\x00".
func FlattenStrings(items []string) []byte {
	n := 1
	for _, s := range items {
		n += len(s) + 1
	}
	out := make([]byte, 0, n)
	for _, s := range items {
		out = append(out, s...)
		out = append(out, 0)
	}
	return append(out, 0)
}

// FlattenList flattens a host list of strings.
func FlattenList(v value.Value) ([]byte, error) {
	items, err := toStringList(v)
	if err != nil {
		return nil, err
	}
	return FlattenStrings(items), nil
}

// SplitFlattened decodes a flattened buffer the way the native combo reads
// it: entries are taken up to the first empty one.
func SplitFlattened(b []byte) []string {
	var items []string
	for len(b) > 0 && b[0] != 0 {
		i := bytes.IndexByte(b, 0)
		if i < 0 {
			items = append(items, string(b))
			break
		}
		items = append(items, string(b[:i]))
		b = b[i+1:]
	}
	return items
}

func toStringList(v value.Value) ([]string, error) {
	items, ok := v.List()
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseMarshal, nil, v.TypeName(), KindStringList.String())
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.Str()
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseMarshal, []string{"[" + strconv.Itoa(i) + "]"}, item.TypeName(), "str")
		}
		out[i] = s
	}
	return out, nil
}
