package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/imgui-bridge/binding"
	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/value"
)

// Call expressions use the host's call syntax:
//
//	program = stmt { (";" | newline) stmt }
//	expr    = term { "|" term }
//	term    = literal | name | name "(" [arg { "," arg }] ")" | "[" [expr { "," expr }] "]"
//	arg     = expr | name "=" expr
//
// Literals are True, False, None, numbers (decimal or 0x hex, optionally
// negative) and quoted strings. A bare name is an enum constant; "|"
// combines flags. '#' starts a comment.

type expr interface {
	eval(m *binding.Module) (value.Value, error)
}

type literal struct{ v value.Value }

type constant struct{ name string }

type listExpr struct{ items []expr }

type flagsExpr struct{ terms []expr }

type callExpr struct {
	fn     string
	args   []expr
	kwargs []kwarg
}

type kwarg struct {
	name string
	val  expr
}

// statement is one parsed expression and the source text it came from.
type statement struct {
	src  string
	expr expr
}

func (l literal) eval(*binding.Module) (value.Value, error) { return l.v, nil }

func (c constant) eval(m *binding.Module) (value.Value, error) {
	n, ok := m.Constant(c.name)
	if !ok {
		return value.Value{}, errors.NotFound(errors.PhaseParse, "constant", c.name)
	}
	return value.Int(n), nil
}

func (l listExpr) eval(m *binding.Module) (value.Value, error) {
	items := make([]value.Value, len(l.items))
	for i, e := range l.items {
		v, err := e.eval(m)
		if err != nil {
			return value.Value{}, err
		}
		items[i] = v
	}
	return value.List(items...), nil
}

func (f flagsExpr) eval(m *binding.Module) (value.Value, error) {
	var acc int64
	for _, e := range f.terms {
		v, err := e.eval(m)
		if err != nil {
			return value.Value{}, err
		}
		n, ok := v.Int()
		if !ok {
			return value.Value{}, errors.New(errors.PhaseParse, errors.KindTypeMismatch).
				HostKind(v.Kind().String()).
				NativeKind("int").
				Detail("operands of | must be int").
				Build()
		}
		acc |= n
	}
	return value.Int(acc), nil
}

func (c *callExpr) eval(m *binding.Module) (value.Value, error) {
	args := make([]value.Value, len(c.args))
	for i, e := range c.args {
		v, err := e.eval(m)
		if err != nil {
			return value.Value{}, err
		}
		args[i] = v
	}
	var kwargs map[string]value.Value
	if len(c.kwargs) > 0 {
		kwargs = make(map[string]value.Value, len(c.kwargs))
		for _, kw := range c.kwargs {
			v, err := kw.val.eval(m)
			if err != nil {
				return value.Value{}, err
			}
			kwargs[kw.name] = v
		}
	}
	return m.CallKw(c.fn, args, kwargs)
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokName
	tokInt
	tokFloat
	tokString
	tokPunct
)

type token struct {
	kind     tokenKind
	text     string // unquoted for strings
	pos, end int
}

func syntaxErr(src string, pos int, format string, args ...any) error {
	cause := errors.InvalidData(errors.PhaseParse, nil, fmt.Sprintf("offset %d: ", pos)+fmt.Sprintf(format, args...))
	return errors.ParseFailed("expression "+strconv.Quote(src), cause)
}

func lex(src string) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '#':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case c == '\n':
			toks = append(toks, token{kind: tokPunct, text: ";", pos: i, end: i + 1})
			i++
		case isNameStart(c):
			j := i + 1
			for j < len(src) && (isNameStart(src[j]) || isDigit(src[j])) {
				j++
			}
			toks = append(toks, token{kind: tokName, text: src[i:j], pos: i, end: j})
			i = j
		case isDigit(c) || c == '.' && i+1 < len(src) && isDigit(src[i+1]):
			t := lexNumber(src, i)
			toks = append(toks, t)
			i = t.end
		case c == '\'' || c == '"':
			t, err := lexString(src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, t)
			i = t.end
		case strings.IndexByte("()[],=;|-", c) >= 0:
			toks = append(toks, token{kind: tokPunct, text: src[i : i+1], pos: i, end: i + 1})
			i++
		default:
			return nil, syntaxErr(src, i, "unexpected character %q", c)
		}
	}
	return append(toks, token{kind: tokEOF, pos: len(src), end: len(src)}), nil
}

func lexNumber(src string, i int) token {
	j := i
	if strings.HasPrefix(src[i:], "0x") || strings.HasPrefix(src[i:], "0X") {
		j += 2
		for j < len(src) && isHexDigit(src[j]) {
			j++
		}
		return token{kind: tokInt, text: src[i:j], pos: i, end: j}
	}
	kind := tokInt
	for j < len(src) && isDigit(src[j]) {
		j++
	}
	if j < len(src) && src[j] == '.' {
		kind = tokFloat
		j++
		for j < len(src) && isDigit(src[j]) {
			j++
		}
	}
	if j < len(src) && (src[j] == 'e' || src[j] == 'E') {
		k := j + 1
		if k < len(src) && (src[k] == '+' || src[k] == '-') {
			k++
		}
		if k < len(src) && isDigit(src[k]) {
			kind = tokFloat
			j = k
			for j < len(src) && isDigit(src[j]) {
				j++
			}
		}
	}
	return token{kind: kind, text: src[i:j], pos: i, end: j}
}

func lexString(src string, i int) (token, error) {
	quote := src[i]
	var b strings.Builder
	for j := i + 1; j < len(src); j++ {
		c := src[j]
		switch {
		case c == quote:
			return token{kind: tokString, text: b.String(), pos: i, end: j + 1}, nil
		case c == '\n':
			return token{}, syntaxErr(src, i, "unterminated string")
		case c == '\\' && j+1 < len(src):
			j++
			switch e := src[j]; e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '0':
				b.WriteByte(0)
			case '\\', '\'', '"':
				b.WriteByte(e)
			default:
				return token{}, syntaxErr(src, j-1, "unknown escape \\%c", e)
			}
		default:
			b.WriteByte(c)
		}
	}
	return token{}, syntaxErr(src, i, "unterminated string")
}

func isNameStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

type parser struct {
	src  string
	toks []token
	pos  int
}

// parseProgram splits src into statements. Empty statements are skipped.
func parseProgram(src string) ([]statement, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	var out []statement
	for p.peek().kind != tokEOF {
		if p.accept(";") {
			continue
		}
		start := p.peek().pos
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		end := p.toks[p.pos-1].end
		if t := p.peek(); t.kind != tokEOF && !p.accept(";") {
			return nil, syntaxErr(src, t.pos, "expected ';' before %q", t.raw(src))
		}
		out = append(out, statement{src: src[start:end], expr: e})
	}
	return out, nil
}

// parseExpr parses exactly one expression.
func parseExpr(src string) (expr, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, syntaxErr(src, t.pos, "unexpected %q after expression", t.raw(src))
	}
	return e, nil
}

func (t token) raw(src string) string { return src[t.pos:t.end] }

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) accept(punct string) bool {
	if t := p.peek(); t.kind == tokPunct && t.text == punct {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expect(punct string) error {
	if p.accept(punct) {
		return nil
	}
	t := p.peek()
	if t.kind == tokEOF {
		return syntaxErr(p.src, t.pos, "expected %q, got end of input", punct)
	}
	return syntaxErr(p.src, t.pos, "expected %q, got %q", punct, t.raw(p.src))
}

func (p *parser) expr() (expr, error) {
	first, err := p.term()
	if err != nil {
		return nil, err
	}
	if !p.accept("|") {
		return first, nil
	}
	f := flagsExpr{terms: []expr{first}}
	for {
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		f.terms = append(f.terms, t)
		if !p.accept("|") {
			return f, nil
		}
	}
}

func (p *parser) term() (expr, error) {
	t := p.next()
	switch t.kind {
	case tokInt, tokFloat:
		return p.number(t, false)
	case tokString:
		return literal{value.String(t.text)}, nil
	case tokName:
		switch t.text {
		case "True":
			return literal{value.Bool(true)}, nil
		case "False":
			return literal{value.Bool(false)}, nil
		case "None":
			return literal{value.None()}, nil
		}
		if p.accept("(") {
			return p.call(t.text)
		}
		return constant{t.text}, nil
	case tokPunct:
		switch t.text {
		case "-":
			n := p.next()
			if n.kind != tokInt && n.kind != tokFloat {
				return nil, syntaxErr(p.src, t.pos, "'-' must precede a number")
			}
			return p.number(n, true)
		case "[":
			return p.list()
		}
	case tokEOF:
		return nil, syntaxErr(p.src, t.pos, "unexpected end of input")
	}
	return nil, syntaxErr(p.src, t.pos, "unexpected %q", t.raw(p.src))
}

func (p *parser) number(t token, neg bool) (expr, error) {
	text := t.text
	if neg {
		text = "-" + text
	}
	if t.kind == tokInt {
		n, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return nil, syntaxErr(p.src, t.pos, "integer %s out of range", text)
		}
		return literal{value.Int(n)}, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, syntaxErr(p.src, t.pos, "invalid float %s", text)
	}
	return literal{value.Float(f)}, nil
}

func (p *parser) list() (expr, error) {
	var l listExpr
	if p.accept("]") {
		return l, nil
	}
	for {
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		l.items = append(l.items, e)
		if p.accept("]") {
			return l, nil
		}
		if err := p.expect(","); err != nil {
			return nil, err
		}
	}
}

func (p *parser) call(fn string) (expr, error) {
	c := &callExpr{fn: fn}
	if p.accept(")") {
		return c, nil
	}
	seen := make(map[string]bool)
	for {
		t := p.peek()
		if t.kind == tokName && p.toks[p.pos+1].kind == tokPunct && p.toks[p.pos+1].text == "=" {
			p.pos += 2
			if seen[t.text] {
				return nil, syntaxErr(p.src, t.pos, "keyword argument %q repeated", t.text)
			}
			seen[t.text] = true
			v, err := p.expr()
			if err != nil {
				return nil, err
			}
			c.kwargs = append(c.kwargs, kwarg{name: t.text, val: v})
		} else {
			if len(c.kwargs) > 0 {
				return nil, syntaxErr(p.src, t.pos, "positional argument follows keyword argument")
			}
			v, err := p.expr()
			if err != nil {
				return nil, err
			}
			c.args = append(c.args, v)
		}
		if p.accept(")") {
			return c, nil
		}
		if err := p.expect(","); err != nil {
			return nil, err
		}
	}
}
