package imgui

import (
	cimgui "github.com/AllenDang/cimgui-go/imgui"

	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/resource"
)

// Texture is a texture uploaded to the renderer. Its handle is the
// library texture id.
type Texture struct {
	Width  int32
	Height int32
}

// RenderTexture is a render target with a color attachment.
type RenderTexture struct {
	Texture resource.Handle
	Width   int32
	Height  int32
}

const (
	backendPlatformName = "imgui_impl_raylib"
	backendRendererName = "imgui_impl_rlgl"

	backendHasMouseCursors = 1 << 1
	backendHasSetMousePos  = 1 << 2
)

// LoadTexture registers a texture of the given size and returns its
// handle.
func (c *Context) LoadTexture(width, height int32) (resource.Handle, error) {
	if err := c.live(); err != nil {
		return 0, err
	}
	if width <= 0 || height <= 0 {
		return 0, callErr("LoadTexture", "invalid texture size %dx%d", width, height)
	}
	return c.textures.Insert(&Texture{Width: width, Height: height}), nil
}

// LoadRenderTexture registers a render target and its color texture.
func (c *Context) LoadRenderTexture(width, height int32) (resource.Handle, error) {
	tex, err := c.LoadTexture(width, height)
	if err != nil {
		return 0, err
	}
	return c.renderTexs.Insert(&RenderTexture{Texture: tex, Width: width, Height: height}), nil
}

// UnloadTexture releases a texture. Draw data already built keeps the
// stale id.
func (c *Context) UnloadTexture(h resource.Handle) error {
	if err := c.live(); err != nil {
		return err
	}
	if h == c.fontTexture && h != 0 {
		return callErr("UnloadTexture", "the font texture is owned by the backend")
	}
	if _, ok := c.textures.Remove(h); !ok {
		return callErr("UnloadTexture", "invalid Texture pointer")
	}
	return nil
}

// UnloadRenderTexture releases a render target and its color texture.
func (c *Context) UnloadRenderTexture(h resource.Handle) error {
	if err := c.live(); err != nil {
		return err
	}
	rt, ok := c.renderTexs.Remove(h)
	if !ok {
		return callErr("UnloadRenderTexture", "invalid RenderTexture pointer")
	}
	c.textures.Remove(rt.Texture)
	return nil
}

// Texture resolves a texture handle.
func (c *Context) Texture(h resource.Handle) (*Texture, bool) { return c.textures.Get(h) }

// RenderTexture resolves a render texture handle.
func (c *Context) RenderTexture(h resource.Handle) (*RenderTexture, bool) {
	return c.renderTexs.Get(h)
}

// FontTexture returns the handle of the font atlas texture, or 0 before
// Setup.
func (c *Context) FontTexture() resource.Handle { return c.fontTexture }

// Setup starts the renderer backend: it names the backend in IO, applies
// the dark or light theme and uploads the font atlas.
func (c *Context) Setup(dark bool) error {
	if err := c.live(); err != nil {
		return err
	}
	if c.backendUp {
		return callErr("rlImGuiSetup", "backend already initialized")
	}
	c.io.SetBackendPlatformName(backendPlatformName)
	c.io.SetBackendRendererName(backendRendererName)
	c.io.SetBackendFlags(cimgui.BackendFlags(backendHasMouseCursors | backendHasSetMousePos))
	if dark {
		cimgui.StyleColorsDark()
	} else {
		cimgui.StyleColorsLight()
	}
	c.backendUp = true
	c.uploadFontTexture()
	return nil
}

// Shutdown stops the backend and releases the font texture. It does
// nothing when the backend is not running.
func (c *Context) Shutdown() error {
	if err := c.live(); err != nil {
		return err
	}
	if !c.backendUp {
		return nil
	}
	c.releaseFontTexture()
	c.io.SetBackendPlatformName("")
	c.io.SetBackendRendererName("")
	c.io.SetBackendFlags(0)
	c.backendUp = false
	return nil
}

// ReloadFonts rebuilds the font atlas texture after fonts changed.
func (c *Context) ReloadFonts() error {
	if err := c.live(); err != nil {
		return err
	}
	if !c.backendUp {
		return callErr("rlImGuiReloadFonts", "rlImGuiSetup must be called first")
	}
	c.uploadFontTexture()
	return nil
}

func (c *Context) uploadFontTexture() {
	c.releaseFontTexture()
	atlas := c.io.Fonts()
	atlas.Build()
	c.fontTexture = c.textures.Insert(&Texture{Width: atlas.TexWidth(), Height: atlas.TexHeight()})
	atlas.SetTexID(textureID(c.fontTexture))
}

func (c *Context) releaseFontTexture() {
	if c.fontTexture != 0 {
		c.textures.Remove(c.fontTexture)
	}
	c.fontTexture = 0
	c.io.Fonts().SetTexID(textureID(0))
}

func (c *Context) texture(fn string, h resource.Handle) (*Texture, error) {
	if err := c.inFrame(fn); err != nil {
		return nil, err
	}
	tex, ok := c.textures.Get(h)
	if !ok {
		return nil, callErr(fn, "invalid Texture pointer")
	}
	return tex, nil
}

func (c *Context) renderTexture(fn string, h resource.Handle) (*RenderTexture, *Texture, error) {
	if err := c.inFrame(fn); err != nil {
		return nil, nil, err
	}
	rt, ok := c.renderTexs.Get(h)
	if !ok {
		return nil, nil, callErr(fn, "invalid RenderTexture pointer")
	}
	tex, ok := c.textures.Get(rt.Texture)
	if !ok {
		return nil, nil, callErr(fn, "render texture has no color attachment")
	}
	return rt, tex, nil
}

var (
	uvMin = native.Vec2{}
	uvMax = native.Vec2{X: 1, Y: 1}
)

// Image draws a texture at its own size.
func (c *Context) Image(h resource.Handle) error {
	tex, err := c.texture("rlImGuiImage", h)
	if err != nil {
		return err
	}
	image(h, tex.size(), uvMin, uvMax)
	return nil
}

// ImageSize draws a texture scaled to width x height.
func (c *Context) ImageSize(h resource.Handle, width, height int32) error {
	if _, err := c.texture("rlImGuiImageSize", h); err != nil {
		return err
	}
	image(h, native.Vec2{X: float32(width), Y: float32(height)}, uvMin, uvMax)
	return nil
}

// ImageSizeV draws a texture scaled to size.
func (c *Context) ImageSizeV(h resource.Handle, size native.Vec2) error {
	if _, err := c.texture("rlImGuiImageSizeV", h); err != nil {
		return err
	}
	image(h, size, uvMin, uvMax)
	return nil
}

// ImageRect draws the src part of a texture scaled to destWidth x
// destHeight. A negative source width or height mirrors that axis.
func (c *Context) ImageRect(h resource.Handle, destWidth, destHeight int32, src native.Rect) error {
	tex, err := c.texture("rlImGuiImageRect", h)
	if err != nil {
		return err
	}
	uv0, uv1 := sourceUV(float32(tex.Width), float32(tex.Height), src)
	image(h, native.Vec2{X: float32(destWidth), Y: float32(destHeight)}, uv0, uv1)
	return nil
}

func (t *Texture) size() native.Vec2 {
	return native.Vec2{X: float32(t.Width), Y: float32(t.Height)}
}

// flipped returns the coordinates of a render target, which is stored
// upside down.
func (t *Texture) flipped() (uv0, uv1 native.Vec2) {
	return sourceUV(float32(t.Width), float32(t.Height), native.Rect{Width: float32(t.Width), Height: -float32(t.Height)})
}

// sourceUV converts a pixel rectangle into texture coordinates.
func sourceUV(texW, texH float32, src native.Rect) (uv0, uv1 native.Vec2) {
	axis := func(pos, extent, full float32) (float32, float32) {
		if extent < 0 {
			a := -pos / full
			return a, a - -extent/full
		}
		a := pos / full
		return a, a + extent/full
	}
	uv0.X, uv1.X = axis(src.X, src.Width, texW)
	uv0.Y, uv1.Y = axis(src.Y, src.Height, texH)
	return uv0, uv1
}

// ImageRenderTexture draws a render texture at its own size, flipped
// vertically.
func (c *Context) ImageRenderTexture(h resource.Handle) error {
	rt, tex, err := c.renderTexture("rlImGuiImageRenderTexture", h)
	if err != nil {
		return err
	}
	uv0, uv1 := tex.flipped()
	image(rt.Texture, tex.size(), uv0, uv1)
	return nil
}

// ImageRenderTextureFit scales a render texture to fit the available
// content region, keeping its aspect ratio, and optionally centers it.
func (c *Context) ImageRenderTextureFit(h resource.Handle, center bool) error {
	rt, tex, err := c.renderTexture("rlImGuiImageRenderTextureFit", h)
	if err != nil {
		return err
	}
	size, offset := fit(tex.size(), fromV2(cimgui.ContentRegionAvail()))
	if center {
		cimgui.SetCursorPosX(offset.X)
		cimgui.SetCursorPosY(cimgui.CursorPosY() + offset.Y)
	}
	uv0, uv1 := tex.flipped()
	image(rt.Texture, size, uv0, uv1)
	return nil
}

// fit scales size into area keeping its aspect ratio. offset centers the
// result in area.
func fit(size, area native.Vec2) (scaled, offset native.Vec2) {
	scale := area.X / size.X
	if size.Y*scale > area.Y {
		scale = area.Y / size.Y
	}
	scaled = native.Vec2{X: size.X * scale, Y: size.Y * scale}
	offset = native.Vec2{X: (area.X - scaled.X) / 2, Y: (area.Y - scaled.Y) / 2}
	return scaled, offset
}

// ImageButton draws a texture as a button at its own size.
func (c *Context) ImageButton(name string, h resource.Handle) (bool, error) {
	tex, err := c.texture("rlImGuiImageButton", h)
	if err != nil {
		return false, err
	}
	return imageButton(name, h, tex.size()), nil
}

// ImageButtonSize draws a texture as a button scaled to size.
func (c *Context) ImageButtonSize(name string, h resource.Handle, size native.Vec2) (bool, error) {
	if _, err := c.texture("rlImGuiImageButtonSize", h); err != nil {
		return false, err
	}
	return imageButton(name, h, size), nil
}

func image(h resource.Handle, size, uv0, uv1 native.Vec2) {
	cimgui.ImageV(textureID(h), v2(size), v2(uv0), v2(uv1), cimgui.Vec4{X: 1, Y: 1, Z: 1, W: 1}, cimgui.Vec4{})
}

func imageButton(name string, h resource.Handle, size native.Vec2) bool {
	return cimgui.ImageButtonV(name, textureID(h), v2(size), v2(uvMin), v2(uvMax), cimgui.Vec4{}, cimgui.Vec4{X: 1, Y: 1, Z: 1, W: 1})
}
