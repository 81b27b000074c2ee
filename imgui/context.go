package imgui

import (
	cimgui "github.com/AllenDang/cimgui-go/imgui"

	"github.com/wippyai/imgui-bridge/capability"
	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/resource"
)

// FltMin is the smallest positive normal float32. A size of -FltMin means
// "extend to the right edge of the content region".
const FltMin = 0x1p-126

const (
	defaultFontSize = 13
	implicitWindow  = "Debug##Default"
)

// Context owns one Dear ImGui context. Library calls assert on misuse and
// abort the process, so every entry point validates its arguments and the
// frame and scope state before it reaches the library.
//
// Contexts share the library's current-context pointer: a Context makes
// itself current on every call, and all contexts of a process must be
// driven from one goroutine.
type Context struct {
	cfg   Config
	ctx   *cimgui.Context
	io    *cimgui.IO
	style *cimgui.Style
	font  *cimgui.Font
	table *resource.ObjectTable

	hCtx   resource.Handle
	hIO    resource.Handle
	hStyle resource.Handle
	hAtlas resource.Handle
	hFont  resource.Handle

	objects map[objectKey]resource.Handle

	frameCount  int32
	withinFrame bool
	ended       bool
	rendered    bool
	windows     []string

	scopes []scope
	params [paramCount]int
	fonts  []resource.Handle

	textures    *resource.Typed[*Texture]
	renderTexs  *resource.Typed[*RenderTexture]
	fontTexture resource.Handle
	backendUp   bool

	destroyed bool
}

// NewContext creates a library context, loads the default font and
// applies the configured theme.
func NewContext(cfg Config) (*Context, error) {
	if cfg.FontSize <= 0 {
		cfg.FontSize = DefaultConfig().FontSize
	}
	if cfg.DisplaySize.X < 0 || cfg.DisplaySize.Y < 0 {
		return nil, callErr("NewContext", "invalid display size %gx%g", cfg.DisplaySize.X, cfg.DisplaySize.Y)
	}

	c := &Context{
		cfg:     cfg,
		table:   resource.NewTable(),
		objects: make(map[objectKey]resource.Handle),
	}
	c.textures = resource.NewTyped[*Texture](c.table, resource.TypeTexture)
	c.renderTexs = resource.NewTyped[*RenderTexture](c.table, resource.TypeRenderTexture)

	c.ctx = cimgui.CreateContext()
	c.use()
	c.io = cimgui.CurrentIO()
	c.style = cimgui.CurrentStyle()

	c.io.SetIniFilename(cfg.IniFilename)
	c.io.SetDisplaySize(v2(cfg.DisplaySize))
	c.io.SetFontGlobalScale(cfg.FontSize / defaultFontSize)
	atlas := c.io.Fonts()
	c.font = atlas.AddFontDefault()
	atlas.Build()

	if cfg.DarkTheme {
		cimgui.StyleColorsDark()
	} else {
		cimgui.StyleColorsLight()
	}

	c.hCtx = c.table.Insert(resource.TypeContext, c)
	c.hIO = c.table.Insert(resource.TypeIO, newIOBlock(c))
	c.hStyle = c.table.Insert(resource.TypeStyle, newStyleBlock(c))
	c.hAtlas = c.object(resource.TypeFontAtlas, "", atlas)
	c.hFont = c.object(resource.TypeFont, "default", c.font)
	return c, nil
}

// Destroy releases the library context and every object registered for
// it. Wrappers and handles obtained earlier stop resolving.
func (c *Context) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.table.Clear()
	_ = c.table.Close()
	cimgui.DestroyContextV(c.ctx)
	c.ctx, c.io, c.style, c.font = nil, nil, nil, nil
}

// Destroyed reports whether Destroy was called.
func (c *Context) Destroyed() bool { return c.destroyed }

// Table returns the resource table holding the context's native objects.
func (c *Context) Table() resource.Table { return c.table }

// Config returns the configuration the context was created with.
func (c *Context) Config() Config { return c.cfg }

// GetIO returns a wrapper over the library's IO structure.
func (c *Context) GetIO() (*capability.Wrapper, error) {
	if err := c.live(); err != nil {
		return nil, err
	}
	return ioType.Wrap(c.table, c.hIO), nil
}

// GetStyle returns a wrapper over the library's Style structure.
func (c *Context) GetStyle() (*capability.Wrapper, error) {
	if err := c.live(); err != nil {
		return nil, err
	}
	return styleType.Wrap(c.table, c.hStyle), nil
}

// GetVersion returns the version of the linked library.
func (c *Context) GetVersion() string { return cimgui.Version() }

// GetTime returns the time accumulated from IO.DeltaTime.
func (c *Context) GetTime() float64 {
	if c.destroyed {
		return 0
	}
	c.use()
	return cimgui.Time()
}

// GetFrameCount returns the number of frames started.
func (c *Context) GetFrameCount() int32 {
	if c.destroyed {
		return c.frameCount
	}
	c.use()
	return cimgui.FrameCount()
}

// InFrame reports whether NewFrame has been called without a matching
// EndFrame or Render.
func (c *Context) InFrame() bool { return c.withinFrame }

// use makes the context current in the library.
func (c *Context) use() { cimgui.SetCurrentContext(c.ctx) }

func (c *Context) live() error {
	if c.destroyed {
		return errors.NotInitialized(errors.PhaseCall, "imgui context")
	}
	c.use()
	return nil
}

// inFrame guards calls that are only valid between NewFrame and EndFrame.
func (c *Context) inFrame(fn string) error {
	if err := c.live(); err != nil {
		return err
	}
	if !c.withinFrame {
		return callErr(fn, "called outside of a frame, call NewFrame first")
	}
	return nil
}

func callErr(fn, format string, args ...any) error {
	return errors.New(errors.PhaseCall, errors.KindInvalidArgument).
		Path(fn).
		Detail(format, args...).
		Build()
}

func argErr(fn, arg string, v any, format string, args ...any) error {
	return errors.New(errors.PhaseCall, errors.KindInvalidArgument).
		Path(fn, arg).
		Value(v).
		Detail(format, args...).
		Build()
}

func badIndex(fn, arg string, idx, n int32) error {
	return argErr(fn, arg, idx, "index %d out of range [0, %d)", idx, n)
}

// objectKey names a library object by role, so repeated lookups of the
// same object return the same handle.
type objectKey struct {
	typ  uint32
	name string
}

// object holds a library pointer registered in the table. The pointer is
// refreshed every time the object is looked up again.
type object struct {
	ptr any
}

func (c *Context) object(typ uint32, name string, ptr any) resource.Handle {
	k := objectKey{typ: typ, name: name}
	if h, ok := c.objects[k]; ok {
		if v, ok := c.table.GetTyped(h, typ); ok {
			v.(*object).ptr = ptr
			return h
		}
	}
	h := c.table.Insert(typ, &object{ptr: ptr})
	c.objects[k] = h
	return h
}

// lookup resolves a handle registered by object to its library pointer.
func lookup[T any](c *Context, h resource.Handle, typ uint32) (T, bool) {
	var zero T
	v, ok := c.table.GetTyped(h, typ)
	if !ok {
		return zero, false
	}
	o, ok := v.(*object)
	if !ok {
		return zero, false
	}
	p, ok := o.ptr.(T)
	return p, ok
}
