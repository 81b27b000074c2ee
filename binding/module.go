package binding

import (
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/imgui-bridge/capability"
	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/imgui"
	"github.com/wippyai/imgui-bridge/marshal"
	"github.com/wippyai/imgui-bridge/value"
)

// Name is the namespace the module is registered under.
const Name = "imgui"

// Func is the Go side of one entry point. It receives the bound arguments
// and returns a value in the Go shape of the declared result kind.
type Func func(c *imgui.Context, a args) (any, error)

// entry is one row of a surface table.
type entry struct {
	sig string
	doc string
	fn  Func
}

// Overload is one compiled signature of a function.
type Overload struct {
	Sig *marshal.Signature
	Doc string
	fn  Func
}

// Function is a named entry point. Most have a single overload; a few
// native calls are overloaded on the kind of one argument.
type Function struct {
	Name      string
	Overloads []*Overload
}

// Doc returns the first non-empty overload doc.
func (f *Function) Doc() string {
	for _, o := range f.Overloads {
		if o.Doc != "" {
			return o.Doc
		}
	}
	return ""
}

// Options configures a module.
type Options struct {
	// Logger receives registration and call diagnostics. Nil uses the
	// package logger.
	Logger *zap.Logger

	// CheckDefaults converts every default literal at construction so a
	// bad surface table fails early instead of on first use.
	CheckDefaults bool
}

// DefaultOptions returns options with default checking enabled.
func DefaultOptions() Options {
	return Options{CheckDefaults: true}
}

// Module is the namespace a host sees: enum constants, the wrapper types
// and every callable entry point, bound to one GUI context.
type Module struct {
	ctx   *imgui.Context
	log   *zap.Logger
	funcs map[string]*Function
	types map[string]*capability.Type
	names []string
}

var surface = [][]entry{
	backendEntries,
	frameEntries,
	windowEntries,
	layoutEntries,
	widgetEntries,
	popupEntries,
	queryEntries,
	inputEntries,
	helperEntries,
}

// NewModule compiles the callable surface and binds it to ctx. The module
// does not own ctx; destroying it makes later calls fail.
func NewModule(ctx *imgui.Context, opts Options) (*Module, error) {
	if ctx == nil || ctx.Destroyed() {
		return nil, errors.NotInitialized(errors.PhaseRegister, "imgui context")
	}
	log := opts.Logger
	if log == nil {
		log = Logger()
	}

	m := &Module{
		ctx:   ctx,
		log:   log,
		funcs: make(map[string]*Function),
		types: make(map[string]*capability.Type),
	}
	for _, table := range surface {
		for _, e := range table {
			if err := m.register(e, opts.CheckDefaults); err != nil {
				log.Debug("registration failed", zap.String("sig", e.sig), zap.Error(err))
				return nil, err
			}
		}
	}

	io, err := ctx.GetIO()
	if err != nil {
		return nil, err
	}
	style, err := ctx.GetStyle()
	if err != nil {
		return nil, err
	}
	m.types[io.TypeName()] = io.Type()
	m.types[style.TypeName()] = style.Type()

	m.names = make([]string, 0, len(m.funcs))
	for name := range m.funcs {
		m.names = append(m.names, name)
	}
	slices.Sort(m.names)

	log.Debug("module ready",
		zap.String("namespace", Name),
		zap.Int("functions", len(m.funcs)),
		zap.Int("constants", len(imgui.Constants())))
	return m, nil
}

func (m *Module) register(e entry, check bool) error {
	sig, err := marshal.Compile(e.sig)
	if err != nil {
		return errors.Registration(Name, e.sig, err)
	}
	if check {
		if err := sig.CheckDefaults(); err != nil {
			return errors.Registration(Name, sig.Name, err)
		}
	}

	f, ok := m.funcs[sig.Name]
	if !ok {
		f = &Function{Name: sig.Name}
		m.funcs[sig.Name] = f
	}
	for _, o := range f.Overloads {
		if sameParams(o.Sig, sig) {
			return errors.Registration(Name, sig.Name,
				errors.InvalidData(errors.PhaseRegister, nil, "duplicate overload "+sig.String()))
		}
	}
	f.Overloads = append(f.Overloads, &Overload{Sig: sig, Doc: e.doc, fn: e.fn})
	return nil
}

func sameParams(a, b *marshal.Signature) bool {
	if len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if a.Params[i].Kind != b.Params[i].Kind {
			return false
		}
	}
	return true
}

// Context returns the GUI context the module is bound to.
func (m *Module) Context() *imgui.Context { return m.ctx }

// Functions returns the names of every entry point, sorted.
func (m *Module) Functions() []string { return slices.Clone(m.names) }

// Lookup returns a function by name.
func (m *Module) Lookup(name string) (*Function, bool) {
	f, ok := m.funcs[name]
	return f, ok
}

// Constant returns the value of an enum constant.
func (m *Module) Constant(name string) (int64, bool) {
	return imgui.LookupConstant(name)
}

// Constants returns every enum constant in header order.
func (m *Module) Constants() []imgui.Constant { return imgui.Constants() }

// Type returns a wrapper type (_IO or _Style).
func (m *Module) Type(name string) (*capability.Type, bool) {
	t, ok := m.types[name]
	return t, ok
}

// Types returns the wrapper type names, sorted.
func (m *Module) Types() []string {
	names := make([]string, 0, len(m.types))
	for name := range m.types {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Call invokes an entry point with positional arguments.
func (m *Module) Call(name string, args ...value.Value) (value.Value, error) {
	return m.CallKw(name, args, nil)
}

// CallKw invokes an entry point with positional and keyword arguments.
// Arguments are converted before the native call runs; a conversion
// failure leaves the context untouched.
func (m *Module) CallKw(name string, args []value.Value, kwargs map[string]value.Value) (value.Value, error) {
	v, err := m.call(name, args, kwargs)
	if err != nil {
		m.log.Debug("call failed", zap.String("func", name), zap.Error(err))
	}
	return v, err
}

func (m *Module) call(name string, args []value.Value, kwargs map[string]value.Value) (value.Value, error) {
	if t, ok := m.types[name]; ok {
		_, err := t.New(args...)
		return value.Value{}, err
	}
	f, ok := m.funcs[name]
	if !ok {
		e := errors.NotFound(errors.PhaseDispatch, "function", name)
		e.Path = []string{Name}
		return value.Value{}, e
	}

	o, bound, err := f.resolve(args, kwargs)
	if err != nil {
		return value.Value{}, err
	}
	res, err := o.fn(m.ctx, bound)
	if err != nil {
		return value.Value{}, err
	}
	v, err := marshal.ToHost(res, o.Sig.Result)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			c := *e
			c.Path = append([]string{name}, e.Path...)
			return value.Value{}, &c
		}
		return value.Value{}, err
	}
	return v, nil
}

// resolve binds the arguments against each overload in declaration order
// and picks the first that accepts them.
func (f *Function) resolve(in []value.Value, kwargs map[string]value.Value) (*Overload, args, error) {
	if len(f.Overloads) == 1 {
		o := f.Overloads[0]
		bound, err := marshal.Bind(o.Sig, in, kwargs)
		return o, bound, err
	}

	var first, mismatch error
	pos := 0
	for _, o := range f.Overloads {
		bound, err := marshal.Bind(o.Sig, in, kwargs)
		if err == nil {
			return o, bound, nil
		}
		if first == nil {
			first = err
		}
		if e, ok := err.(*errors.Error); ok && e.Kind == errors.KindTypeMismatch && mismatch == nil {
			mismatch, pos = e, e.Position
		}
	}
	if mismatch == nil {
		return nil, nil, first
	}

	var accepted []string
	for _, o := range f.Overloads {
		if pos > 0 && pos <= len(o.Sig.Params) {
			accepted = append(accepted, o.Sig.Params[pos-1].Kind.String())
		}
	}
	b := errors.New(errors.PhaseDispatch, errors.KindTypeMismatch).
		Path(f.Name).
		Position(pos).
		NativeKind(strings.Join(accepted, "|")).
		Cause(mismatch)
	if e, ok := mismatch.(*errors.Error); ok {
		b.HostKind(e.HostKind)
	}
	return nil, nil, b.Detail("no overload of %s accepts the arguments", f.Name).Build()
}
