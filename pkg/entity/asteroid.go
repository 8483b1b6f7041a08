// pkg/entity/asteroid.go
package entity

import (
	"math"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// MinStyle is the smallest polygon side count
const MinStyle = 3

// Asteroid drifts at constant velocity and spin. Style is its side count.
type Asteroid struct {
	BaseEntity
	Spin  float64
	Size  float64
	Style int
}

// NewAsteroid creates an asteroid; style is raised to MinStyle if needed
func NewAsteroid(id ID, position, velocity physics.Vector2D, angle, spin, size float64, style int) *Asteroid {
	if style < MinStyle {
		style = MinStyle
	}
	return &Asteroid{
		BaseEntity: BaseEntity{
			ID:       id,
			Position: position,
			Velocity: velocity,
			Angle:    angle,
			Radius:   size,
		},
		Spin:  spin,
		Size:  size,
		Style: style,
	}
}

// Advance drifts and spins the asteroid one tick
func (a *Asteroid) Advance(deltaTime float64, field physics.Vector2D) {
	a.BaseEntity.Advance(deltaTime, field)
	a.Angle += a.Spin * deltaTime
}

// Mass is the size-squared proxy used when splitting
func (a *Asteroid) Mass() float64 {
	return a.Size * a.Size
}

// Bounds returns the circle through every vertex
func (a *Asteroid) Bounds() physics.Circle {
	return physics.Circle{Center: a.Position, Radius: a.Size}
}

// Vertices returns the polygon corners around the asteroid's position.
// They are not wrapped and may lie outside the field.
func (a *Asteroid) Vertices() []physics.Vector2D {
	step := 2 * math.Pi / float64(a.Style)
	out := make([]physics.Vector2D, a.Style)
	for i := range out {
		out[i] = a.Position.Add(physics.FromAngle(a.Angle+step*float64(i), a.Size))
	}
	return out
}

// Triangles fans the polygon from its centre, one triangle per side
func (a *Asteroid) Triangles() [][3]physics.Vector2D {
	v := a.Vertices()
	out := make([][3]physics.Vector2D, len(v))
	for i := range v {
		out[i] = [3]physics.Vector2D{a.Position, v[i], v[(i+1)%len(v)]}
	}
	return out
}

// Intersects reports whether a circle touches the polygon, measuring
// across the field seam when that is shorter.
func (a *Asteroid) Intersects(center physics.Vector2D, radius float64, field physics.Vector2D) bool {
	c := physics.NearestImage(center, a.Position, field)
	if !a.Bounds().Collides(physics.Circle{Center: c, Radius: radius}) {
		return false
	}
	for _, tri := range a.Triangles() {
		if physics.TestCircleTriangle(c, radius, tri[0], tri[1], tri[2]) {
			return true
		}
	}
	return false
}

// CanSplit reports whether both halves would stay at or above minSize
func (a *Asteroid) CanSplit(minSize float64) bool {
	return a.Size > 2*minSize
}

// Split returns two half-size children moving along the given headings at
// the parent's speed times speedFactor.
func (a *Asteroid) Split(ids [2]ID, headings, spins [2]float64, speedFactor float64) [2]*Asteroid {
	speed := a.Velocity.Length() * speedFactor
	size := a.Size / 2
	var children [2]*Asteroid
	for i := range children {
		children[i] = NewAsteroid(ids[i], a.Position, physics.FromAngle(headings[i], speed),
			headings[i], spins[i], size, a.Style)
	}
	return children
}
