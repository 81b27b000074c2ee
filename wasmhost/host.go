package wasmhost

import (
	"context"
	"math"
	"strconv"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/binding"
	"github.com/wippyai/imgui-bridge/errors"
)

// Status codes returned by call and release.
const (
	StatusFailed   int32 = -1 // the call failed, see last_error
	StatusRequest  int32 = -2 // the request could not be read or decoded
	StatusTooSmall int32 = -3 // the result does not fit out_cap
)

// NoConstant is what const returns for an unknown name.
const NoConstant = math.MinInt64

// Options configures a host.
type Options struct {
	// Logger receives guest call diagnostics. Nil uses the package logger.
	Logger *zap.Logger

	// ModuleName is the import module guests link against.
	ModuleName string
}

// DefaultOptions returns options exporting the "imgui" module.
func DefaultOptions() Options {
	return Options{ModuleName: binding.Name}
}

// Host exposes a binding module to WebAssembly guests. Calls from all
// guests linked against one host are serialized.
type Host struct {
	module  *binding.Module
	log     *zap.Logger
	name    string
	objects *Objects
	lastErr string
	mu      sync.Mutex
}

// New creates a host serving m.
func New(m *binding.Module, opts Options) *Host {
	log := opts.Logger
	if log == nil {
		log = Logger()
	}
	name := opts.ModuleName
	if name == "" {
		name = binding.Name
	}
	return &Host{
		module:  m,
		log:     log,
		name:    name,
		objects: NewObjects(),
	}
}

// Module returns the binding module the host serves.
func (h *Host) Module() *binding.Module { return h.module }

// Objects returns the table of object tokens handed to guests.
func (h *Host) Objects() *Objects { return h.objects }

// LastError returns the message of the most recent failure.
func (h *Host) LastError() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastErr
}

// Close releases every object token.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.objects.Close()
}

// Instantiate builds the host module into rt. Guests import:
//
//	call(name_ptr, name_len, args_ptr, args_len, out_ptr, out_cap i32) i32
//	const(name_ptr, name_len i32) i64
//	last_error(out_ptr, out_cap i32) i32
//	release(token i32) i32
func (h *Host) Instantiate(ctx context.Context, rt wazero.Runtime) (api.Module, error) {
	i32, i64 := api.ValueTypeI32, api.ValueTypeI64
	b := rt.NewHostModuleBuilder(h.name)
	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(h.callFunc), []api.ValueType{i32, i32, i32, i32, i32, i32}, []api.ValueType{i32}).
		WithParameterNames("name_ptr", "name_len", "args_ptr", "args_len", "out_ptr", "out_cap").
		Export("call")
	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(h.constFunc), []api.ValueType{i32, i32}, []api.ValueType{i64}).
		WithParameterNames("name_ptr", "name_len").
		Export("const")
	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(h.lastErrorFunc), []api.ValueType{i32, i32}, []api.ValueType{i32}).
		WithParameterNames("out_ptr", "out_cap").
		Export("last_error")
	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(h.releaseFunc), []api.ValueType{i32}, []api.ValueType{i32}).
		WithParameterNames("token").
		Export("release")

	mod, err := b.Instantiate(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseHost, errors.KindRegistration, err, "instantiate host module "+h.name)
	}
	h.log.Debug("host module ready", zap.String("module", h.name))
	return mod, nil
}

func (h *Host) callFunc(_ context.Context, mod api.Module, stack []uint64) {
	stack[0] = api.EncodeI32(h.Call(guestMemory{mod.Memory()},
		api.DecodeU32(stack[0]), api.DecodeU32(stack[1]),
		api.DecodeU32(stack[2]), api.DecodeU32(stack[3]),
		api.DecodeU32(stack[4]), api.DecodeU32(stack[5])))
}

func (h *Host) constFunc(_ context.Context, mod api.Module, stack []uint64) {
	stack[0] = api.EncodeI64(h.Const(guestMemory{mod.Memory()}, api.DecodeU32(stack[0]), api.DecodeU32(stack[1])))
}

func (h *Host) lastErrorFunc(_ context.Context, mod api.Module, stack []uint64) {
	stack[0] = api.EncodeI32(h.ReadLastError(guestMemory{mod.Memory()}, api.DecodeU32(stack[0]), api.DecodeU32(stack[1])))
}

func (h *Host) releaseFunc(_ context.Context, _ api.Module, stack []uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	token := api.DecodeU32(stack[0])
	if h.objects.Release(token) {
		stack[0] = api.EncodeI32(0)
		return
	}
	stack[0] = api.EncodeI32(h.fail(StatusRequest, errors.NotFound(errors.PhaseHost, "object token", strconv.FormatUint(uint64(token), 10))))
}

// Call reads a request from mem, runs it and writes the encoded result to
// out. It returns the number of bytes written or a negative status.
func (h *Host) Call(mem imguibridge.Memory, namePtr, nameLen, argsPtr, argsLen, outPtr, outCap uint32) int32 {
	h.mu.Lock()
	defer h.mu.Unlock()

	name, err := readString(mem, namePtr, nameLen)
	if err != nil {
		return h.fail(StatusRequest, err)
	}
	var raw []byte
	if argsLen > 0 {
		if raw, err = mem.Read(argsPtr, argsLen); err != nil {
			return h.fail(StatusRequest, err)
		}
	}
	args, kwargs, err := DecodeArgs(raw, h.objects)
	if err != nil {
		return h.fail(StatusRequest, withName(err, name))
	}

	res, err := h.module.CallKw(name, args, kwargs)
	if err != nil {
		h.log.Debug("guest call failed", zap.String("func", name), zap.Error(err))
		return h.fail(StatusFailed, err)
	}
	out, err := AppendValue(nil, res, h.objects)
	if err != nil {
		return h.fail(StatusFailed, withName(err, name))
	}
	if uint64(len(out)) > uint64(outCap) || len(out) > math.MaxInt32 {
		return h.fail(StatusTooSmall, errors.New(errors.PhaseWire, errors.KindOutOfBounds).
			Path(name).
			Value(len(out)).
			Detail("result needs %d bytes, out_cap is %d", len(out), outCap).
			Build())
	}
	if err := mem.Write(outPtr, out); err != nil {
		return h.fail(StatusRequest, err)
	}
	h.lastErr = ""
	return int32(len(out))
}

// Const reads a constant name from mem and returns its value, or
// NoConstant when there is no such constant.
func (h *Host) Const(mem imguibridge.Memory, namePtr, nameLen uint32) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	name, err := readString(mem, namePtr, nameLen)
	if err != nil {
		h.fail(StatusRequest, err)
		return NoConstant
	}
	v, ok := h.module.Constant(name)
	if !ok {
		h.fail(StatusFailed, errors.NotFound(errors.PhaseHost, "constant", name))
		return NoConstant
	}
	return v
}

// ReadLastError copies the last failure message to out, truncated to
// outCap, and returns the full message length.
func (h *Host) ReadLastError(mem imguibridge.Memory, outPtr, outCap uint32) int32 {
	h.mu.Lock()
	defer h.mu.Unlock()

	msg := h.lastErr
	n := min(uint32(len(msg)), outCap)
	if n > 0 {
		if err := mem.Write(outPtr, []byte(msg[:n])); err != nil {
			return StatusRequest
		}
	}
	return int32(len(msg))
}

func (h *Host) fail(status int32, err error) int32 {
	h.lastErr = err.Error()
	return status
}

func readString(mem imguibridge.Memory, ptr, n uint32) (string, error) {
	if n == 0 {
		return "", nil
	}
	if n > MaxStringSize {
		return "", errors.New(errors.PhaseWire, errors.KindOverflow).
			Value(n).
			Detail("name of %d bytes exceeds limit %d", n, MaxStringSize).
			Build()
	}
	b, err := mem.Read(ptr, n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func withName(err error, name string) error {
	if e, ok := err.(*errors.Error); ok {
		c := *e
		c.Path = append([]string{name}, e.Path...)
		return &c
	}
	return err
}
