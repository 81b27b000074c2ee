package native

// Vec2 is a 2-component float vector (ImVec2, Vector2).
type Vec2 struct {
	X, Y float32
}

// Vec4 is a 4-component float vector (ImVec4). Colors use X=r, Y=g, Z=b, W=a.
type Vec4 struct {
	X, Y, Z, W float32
}

// Rect is a raylib Rectangle.
type Rect struct {
	X, Y, Width, Height float32
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Max returns the component-wise maximum.
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{max(v.X, o.X), max(v.Y, o.Y)}
}

// Contains reports whether p lies in the half-open box [lo, hi).
func Contains(lo, hi, p Vec2) bool {
	return p.X >= lo.X && p.Y >= lo.Y && p.X < hi.X && p.Y < hi.Y
}
