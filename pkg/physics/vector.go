// pkg/physics/vector.go
package physics

import "math"

// Vector2D represents a 2D vector with x and y components
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Zero is the zero vector
var Zero = Vector2D{}

// UnitX points along the positive x axis, the heading of an unrotated ship
var UnitX = Vector2D{X: 1, Y: 0}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns magnitude squared (optimization for comparisons)
func (v Vector2D) LengthSquared() float64 {
	return v.Dot(v)
}

// Normalize returns a unit vector in the same direction.
// ok is false for the zero vector, in which case the zero vector is returned.
func (v Vector2D) Normalize() (unit Vector2D, ok bool) {
	length := v.Length()
	if length == 0 {
		return Vector2D{}, false
	}
	return Vector2D{
		X: v.X / length,
		Y: v.Y / length,
	}, true
}

// Distance returns the distance between two vectors
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// Angle returns the angle of the vector in radians
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle creates a vector from an angle and magnitude
func FromAngle(angle float64, magnitude float64) Vector2D {
	return Vector2D{
		X: magnitude * math.Cos(angle),
		Y: magnitude * math.Sin(angle),
	}
}

// Dot returns the dot product of two vectors
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product of v and other
func (v Vector2D) Cross(other Vector2D) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Rotate rotates the vector by angle (in radians)
func (v Vector2D) Rotate(angle float64) Vector2D {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vector2D{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Lerp interpolates between v (t=0) and other (t=1)
func (v Vector2D) Lerp(other Vector2D, t float64) Vector2D {
	return v.Add(other.Sub(v).Scale(t))
}

// RemEuclid wraps v in place into [0, mod.X) x [0, mod.Y).
// Both components of mod must be positive.
func (v *Vector2D) RemEuclid(mod Vector2D) {
	v.X = remEuclid(v.X, mod.X)
	v.Y = remEuclid(v.Y, mod.Y)
}

// Wrap returns v wrapped into [0, mod.X) x [0, mod.Y)
func Wrap(v, mod Vector2D) Vector2D {
	v.RemEuclid(mod)
	return v
}

// NearestImage returns the copy of p on the torus of size mod that lies
// closest to the reference point to. Used for tests across the seam.
func NearestImage(p, to, mod Vector2D) Vector2D {
	return Vector2D{
		X: nearestImage(p.X, to.X, mod.X),
		Y: nearestImage(p.Y, to.Y, mod.Y),
	}
}

func remEuclid(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	// -tiny + m rounds to m
	if r >= m {
		r = 0
	}
	return r
}

func nearestImage(p, to, m float64) float64 {
	d := p - to
	switch {
	case d > m/2:
		return p - m
	case d < -m/2:
		return p + m
	default:
		return p
	}
}
