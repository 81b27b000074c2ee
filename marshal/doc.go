// Package marshal converts between host values and the native kinds a
// bridged call expects.
//
// Every call site is described by a signature string:
//
//	sig, err := marshal.Compile("Button(label: str, size: vec2 = None) -> bool")
//	args, err := marshal.Bind(sig, hostArgs, nil)
//
// Bind converts every argument before it returns, so a conversion failure
// never reaches the native call. Parameters left out by the caller take the
// default written in the signature.
//
// Conversion rules:
//
//	bool      bool only
//	int       int, range-checked to int32
//	float     float or int
//	str       str
//	vec2      vec2 record or a two element numeric list
//	vec4      vec4 or color record, or a four element numeric list
//	Rectangle Rectangle record or a four element numeric list
//	void_p    pointer (also Texture_p, RenderTexture_p, Texture, ImFont)
//	char_p    *TextBuffer
//	bool_p    *BoolRef, int_p *IntRef, float_p *FloatRef
//	list[str] list of str
//
// A parameter whose default is None also accepts None, which binds as nil.
package marshal
