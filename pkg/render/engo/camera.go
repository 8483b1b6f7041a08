// pkg/render/engo/camera.go
package engo

import (
	"math"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Camera fits the whole field into the window, keeping its aspect ratio.
// Any spare room is split evenly on both sides.
type Camera struct {
	field  physics.Vector2D
	scale  float32
	offset engo.Point
}

// NewCamera creates a camera showing field at its natural size
func NewCamera(field physics.Vector2D) *Camera {
	return &Camera{field: field, scale: 1}
}

// Fit recomputes scale and offset for a window of the given size.
// Non-positive sizes are ignored.
func (c *Camera) Fit(width, height float32) {
	if width <= 0 || height <= 0 {
		return
	}
	fw, fh := float32(c.field.X), float32(c.field.Y)
	c.scale = min(width/fw, height/fh)
	c.offset = engo.Point{
		X: (width - fw*c.scale) / 2,
		Y: (height - fh*c.scale) / 2,
	}
}

// Scale returns the number of pixels per field unit
func (c *Camera) Scale() float32 {
	return c.scale
}

// Offset returns the screen position of the field origin
func (c *Camera) Offset() engo.Point {
	return c.offset
}

// WorldToScreen wraps p into the field and converts it to screen pixels
func (c *Camera) WorldToScreen(p physics.Vector2D) engo.Point {
	p = physics.Wrap(p, c.field)
	return c.project(p)
}

// project converts without wrapping, for overlay elements
func (c *Camera) project(p physics.Vector2D) engo.Point {
	return engo.Point{
		X: float32(p.X)*c.scale + c.offset.X,
		Y: float32(p.Y)*c.scale + c.offset.Y,
	}
}

// ScreenToWorld converts screen pixels back to field coordinates
func (c *Camera) ScreenToWorld(p engo.Point) physics.Vector2D {
	return physics.Vector2D{
		X: float64((p.X - c.offset.X) / c.scale),
		Y: float64((p.Y - c.offset.Y) / c.scale),
	}
}

// Pixels converts a field length to screen pixels
func (c *Camera) Pixels(length float64) float32 {
	return float32(length) * c.scale
}

// topLeft returns the position that puts the centre of a size x size
// sprite, rotated by angle radians about its top left corner, on centre
func topLeft(centre engo.Point, size float32, angle float64) engo.Point {
	half := float64(size) / 2
	sin, cos := math.Sincos(angle)
	return engo.Point{
		X: centre.X - float32(half*cos-half*sin),
		Y: centre.Y - float32(half*sin+half*cos),
	}
}

// degrees converts a heading to the sprite rotation engo expects
func degrees(angle float64) float32 {
	return float32(angle * 180 / math.Pi)
}
