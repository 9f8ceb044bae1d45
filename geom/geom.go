package geom

// Vec2 is a 2D point or offset in world or UI space.
type Vec2 struct {
	X, Y float64
}

// Vec3 adds a depth component used for layer stacking.
type Vec3 struct {
	X, Y, Z float64
}

// UVec2 holds unsigned grid dimensions (tiles or pixels).
type UVec2 struct {
	X uint32 `yaml:"x"`
	Y uint32 `yaml:"y"`
}

type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
