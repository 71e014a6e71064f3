package shared

import "math"

// Vector2 is an immutable 2D vector value object.
// All operations return new values; nothing aliases.
type Vector2 struct {
	X float64
	Y float64
}

// Vec is shorthand for Vector2{X: x, Y: y}
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// FromAngle returns a vector of the given magnitude pointing along angle (radians)
func FromAngle(angle, magnitude float64) Vector2 {
	return Vector2{X: math.Cos(angle) * magnitude, Y: math.Sin(angle) * magnitude}
}

// Add returns v + o
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the magnitude of v
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector of v, or the zero vector when v has no length
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// Distance returns the euclidean distance between v and o
func (v Vector2) Distance(o Vector2) float64 {
	return o.Sub(v).Length()
}

// Angle returns the heading of v in radians
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Clamp limits each component into [lo, hi]
func (v Vector2) Clamp(lo, hi float64) Vector2 {
	return Vector2{X: ClampFloat(v.X, lo, hi), Y: ClampFloat(v.Y, lo, hi)}
}

// ClampFloat limits x into [lo, hi]
func ClampFloat(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// WrapAngle folds an angle difference into [-π, π]
func WrapAngle(a float64) float64 {
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
