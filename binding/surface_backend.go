package binding

import (
	"github.com/wippyai/imgui-bridge/imgui"
)

// backendEntries covers the texture helper calls of the raylib backend and
// the texture loaders that feed them.
var backendEntries = []entry{
	{"rlImGuiSetup(darkTheme: bool)", "Sets up ImGui, loads fonts and themes.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.Setup(a.bool(0))) }},
	{"rlImGuiShutdown()", "Cleanup ImGui and unload font atlas.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.Shutdown()) }},
	{"rlImGuiReloadFonts()", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.ReloadFonts()) }},
	{"rlImGuiImage(image: Texture_p)", "Wraps `void rlImGuiImage(const Texture *image);`",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.Image(a.handle(0))) }},
	{"rlImGuiImageSize(image: Texture_p, width: int, height: int)", "Wraps `void rlImGuiImageSize(const Texture *image, int width, int height);`",
		func(c *imgui.Context, a args) (any, error) {
			return retNone(c.ImageSize(a.handle(0), a.i32(1), a.i32(2)))
		}},
	{"rlImGuiImageSizeV(image: Texture_p, size: vec2)", "Wraps `void rlImGuiImageSizeV(const Texture *image, Vector2 size);`",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.ImageSizeV(a.handle(0), a.vec2(1))) }},
	{"rlImGuiImageRect(image: Texture_p, destWidth: int, destHeight: int, sourceRect: Rectangle)", "Wraps `void rlImGuiImageRect(const Texture* image, int destWidth, int destHeight, Rectangle sourceRect);`",
		func(c *imgui.Context, a args) (any, error) {
			return retNone(c.ImageRect(a.handle(0), a.i32(1), a.i32(2), a.rect(3)))
		}},
	{"rlImGuiImageRenderTexture(image: RenderTexture_p)", "Wraps `void rlImGuiImageRenderTexture(const RenderTexture* image);`",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.ImageRenderTexture(a.handle(0))) }},
	{"rlImGuiImageRenderTextureFit(image: RenderTexture_p, center: bool)", "Wraps `void rlImGuiImageRenderTextureFit(const RenderTexture* image, bool center);`",
		func(c *imgui.Context, a args) (any, error) {
			return retNone(c.ImageRenderTextureFit(a.handle(0), a.bool(1)))
		}},
	{"rlImGuiImageButton(name: str, image: Texture_p) -> bool", "Wraps `bool rlImGuiImageButton(const char* name, const Texture* image);`",
		func(c *imgui.Context, a args) (any, error) { return retBool(c.ImageButton(a.str(0), a.handle(1))) }},
	{"rlImGuiImageButtonSize(name: str, image: Texture_p, size: vec2) -> bool", "Wraps `bool rlImGuiImageButtonSize(const char* name, const Texture* image, struct ImVec2 size);`",
		func(c *imgui.Context, a args) (any, error) {
			return retBool(c.ImageButtonSize(a.str(0), a.handle(1), a.vec2(2)))
		}},

	{"LoadTexture(width: int, height: int) -> Texture_p", "create a blank texture of the given size",
		func(c *imgui.Context, a args) (any, error) { return retAddr(c.LoadTexture(a.i32(0), a.i32(1))) }},
	{"UnloadTexture(texture: Texture_p)", "release a texture created by LoadTexture",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.UnloadTexture(a.handle(0))) }},
	{"LoadRenderTexture(width: int, height: int) -> RenderTexture_p", "create a render target of the given size",
		func(c *imgui.Context, a args) (any, error) {
			return retAddr(c.LoadRenderTexture(a.i32(0), a.i32(1)))
		}},
	{"UnloadRenderTexture(target: RenderTexture_p)", "release a render target created by LoadRenderTexture",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.UnloadRenderTexture(a.handle(0))) }},
}

var frameEntries = []entry{
	{"GetIO() -> _IO", "access the IO structure (mouse/keyboard/gamepad inputs, time, various configuration options/flags)",
		func(c *imgui.Context, a args) (any, error) { return retObj(c.GetIO()) }},
	{"GetStyle() -> _Style", "access the Style structure (colors, sizes). Always use PushStyleCol(), PushStyleVar() to modify style mid-frame!",
		func(c *imgui.Context, a args) (any, error) { return retObj(c.GetStyle()) }},
	{"NewFrame()", "Wraps `void rlImGuiBegin();`",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.NewFrame()) }},
	{"EndFrame()", "ends the Dear ImGui frame. automatically called by Render().",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.EndFrame()) }},
	{"Render()", "Wraps `void rlImGuiEnd();`",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.Render()) }},
	{"GetDrawData() -> void_p", "valid after Render() and until the next call to NewFrame(). this is what you have to render.",
		func(c *imgui.Context, a args) (any, error) { return retAddr(c.GetDrawData()) }},

	{"ShowDemoWindow(p_open: bool_p = None)", "create Demo window. demonstrate most ImGui features.",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.ShowDemoWindow(a.boolPtr(0))) }},
	{"ShowMetricsWindow(p_open: bool_p = None)", "",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.ShowMetricsWindow(a.boolPtr(0))) }},
	{"GetVersion() -> str", "get the compiled version string e.g. \"1.80 WIP\"",
		func(c *imgui.Context, a args) (any, error) { return c.GetVersion(), nil }},

	{"StyleColorsDark()", "new, recommended style (default)",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.StyleColorsDark()) }},
	{"StyleColorsLight()", "best used with borders and a custom, thicker font",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.StyleColorsLight()) }},
	{"StyleColorsClassic()", "classic imgui style",
		func(c *imgui.Context, a args) (any, error) { return retNone(c.StyleColorsClassic()) }},

	{"GetTime() -> float", "get global imgui time. incremented by io.DeltaTime every frame.",
		func(c *imgui.Context, a args) (any, error) { return c.GetTime(), nil }},
	{"GetFrameCount() -> int", "get global imgui frame count. incremented by 1 every frame.",
		func(c *imgui.Context, a args) (any, error) { return c.GetFrameCount(), nil }},
}
