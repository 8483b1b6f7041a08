// pkg/render/path.go
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

var shipPoints = []physics.Vector2D{
	{X: 10, Y: 0},
	{X: -10, Y: -5},
	{X: -8, Y: -2.5},
	{X: -8, Y: 2.5},
	{X: -10, Y: 5},
	{X: 10, Y: 0},
}

var flarePoints = []physics.Vector2D{
	{X: -8, Y: 1.5},
	{X: -12, Y: 0},
	{X: -8, Y: -1.5},
}

// vectorDigits are drawn on a 2x3 grid
var vectorDigits = [10][]physics.Vector2D{
	{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 3}, {X: 0, Y: 2}, {X: 0, Y: 1}, {X: 1, Y: 0}},
	{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 3}},
	{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 3}, {X: 2, Y: 3}},
	{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 3}, {X: 0, Y: 3}},
	{{X: 1, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 2, Y: 3}},
	{{X: 2, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 3}, {X: 0, Y: 3}},
	{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 2}, {X: 1, Y: 1}, {X: 0, Y: 1}},
	{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 3}},
	{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}, {X: 2, Y: 3}, {X: 2, Y: 2}, {X: 0, Y: 1}, {X: 0, Y: 0}},
	{{X: 0, Y: 3}, {X: 1, Y: 3}, {X: 2, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}},
}

const (
	shipScale = 2.0

	bulletTail = 5.0

	lifeStep = 40.0
	lifeY    = 50.0

	explosionRadius    = 30.0
	explosionParticles = 11
	particleLength     = 10.0

	digitScale     = 10.0
	digitStep      = -3.0
	digitRightmost = 120.0
	digitTop       = 5.0
)

// PathRenderer draws each frame as an SVG path of move and line commands.
// Shapes that cross the field edge are drawn again on the opposite side.
type PathRenderer struct {
	field physics.Vector2D
	buf   strings.Builder
	frame string
}

// NewPathRenderer creates a path renderer for a field of the given size
func NewPathRenderer(field physics.Vector2D) *PathRenderer {
	return &PathRenderer{field: field}
}

// Path returns the last presented frame
func (r *PathRenderer) Path() string {
	return r.frame
}

// Clear implements Renderer.
func (r *PathRenderer) Clear() {
	r.buf.Reset()
}

// Present implements Renderer.
func (r *PathRenderer) Present() {
	r.frame = r.buf.String()
}

// RenderLives implements Renderer. Lives are a row of ships along the
// top left, pointing up.
func (r *PathRenderer) RenderLives(lives uint64) {
	for l := uint64(0); l < lives; l++ {
		offset := physics.Vector2D{X: float64(l+1) * lifeStep, Y: lifeY}
		r.drawObject(shipPoints, shipScale, entity.SpawnAngle, offset)
	}
}

// RenderShip implements Renderer.
func (r *PathRenderer) RenderShip(ship *entity.Ship, thrusting bool) {
	r.drawObject(shipPoints, shipScale, ship.Angle, ship.Position)
	if thrusting {
		r.drawObject(flarePoints, shipScale, ship.Angle, ship.Position)
	}
}

// RenderBullet implements Renderer. A bullet is a short streak ahead of
// its position.
func (r *PathRenderer) RenderBullet(bullet *entity.Bullet) {
	dir, _ := bullet.Velocity.Normalize()
	tail := bullet.Position.Add(dir.Scale(bulletTail))
	r.drawWrapped([]physics.Vector2D{bullet.Position, tail})
}

// RenderAsteroid implements Renderer.
func (r *PathRenderer) RenderAsteroid(asteroid *entity.Asteroid) {
	step := 2 * math.Pi / float64(asteroid.Style)
	points := make([]physics.Vector2D, asteroid.Style+1)
	for i := range points {
		points[i] = physics.UnitX.Rotate(step * float64(i))
	}
	r.drawObject(points, asteroid.Size, asteroid.Angle, asteroid.Position)
}

// RenderExplosion implements Renderer. Particles fly outwards and
// lengthen as the explosion ages.
func (r *PathRenderer) RenderExplosion(explosion *entity.Explosion, tick uint64) {
	state := explosion.Progress(tick)
	step := 2 * math.Pi / explosionParticles
	for i := 0; i < explosionParticles; i++ {
		dir := physics.UnitX.Rotate(step * float64(i))
		start := dir.Scale(state * explosionRadius).Add(explosion.Position)
		end := dir.Scale(state*explosionRadius + particleLength*(1+state)).Add(explosion.Position)
		r.drawWrapped([]physics.Vector2D{start, end})
	}
}

// RenderScore implements Renderer. Digits are drawn right to left from
// the top right corner. The wave is not shown.
func (r *PathRenderer) RenderScore(score uint64, _ int) {
	for idx, d := range digitsOf(score) {
		offset := physics.Vector2D{X: digitRightmost + float64(idx)*digitStep, Y: digitTop}
		glyph := vectorDigits[d]
		points := make([]physics.Vector2D, len(glyph))
		for i, p := range glyph {
			points[i] = p.Add(offset).Scale(digitScale)
		}
		r.drawWrapped(points)
	}
}

// digitsOf returns the decimal digits of n, least significant first
func digitsOf(n uint64) []uint64 {
	if n == 0 {
		return []uint64{0}
	}
	var digits []uint64
	for ; n > 0; n /= 10 {
		digits = append(digits, n%10)
	}
	return digits
}

// drawObject scales, rotates and translates points before drawing them
func (r *PathRenderer) drawObject(points []physics.Vector2D, scale, rotation float64, offset physics.Vector2D) {
	placed := make([]physics.Vector2D, len(points))
	for i, p := range points {
		placed[i] = p.Scale(scale).Rotate(rotation).Add(offset)
	}
	r.drawWrapped(placed)
}

// drawWrapped draws the copies of points shifted back across any edge
// the shape sticks out of, then the points themselves
func (r *PathRenderer) drawWrapped(points []physics.Vector2D) {
	xWrap := wrapDirection(points, r.field.X, func(p physics.Vector2D) float64 { return p.X })
	yWrap := wrapDirection(points, r.field.Y, func(p physics.Vector2D) float64 { return p.Y })

	if xWrap != 0 {
		if yWrap != 0 {
			r.drawPoints(translate(points, physics.Vector2D{X: r.field.X * xWrap, Y: r.field.Y * yWrap}))
		}
		r.drawPoints(translate(points, physics.Vector2D{X: r.field.X * xWrap}))
	}
	if yWrap != 0 {
		r.drawPoints(translate(points, physics.Vector2D{Y: r.field.Y * yWrap}))
	}
	r.drawPoints(points)
}

// wrapDirection returns -1 or 1 for the first point past an edge along
// one axis, 0 when every point is inside
func wrapDirection(points []physics.Vector2D, size float64, axis func(physics.Vector2D) float64) float64 {
	for _, p := range points {
		switch v := axis(p); {
		case v >= size:
			return -1
		case v < 0:
			return 1
		}
	}
	return 0
}

func translate(points []physics.Vector2D, by physics.Vector2D) []physics.Vector2D {
	out := make([]physics.Vector2D, len(points))
	for i, p := range points {
		out[i] = p.Add(by)
	}
	return out
}

func (r *PathRenderer) drawPoints(points []physics.Vector2D) {
	for i, p := range points {
		cmd := 'L'
		if i == 0 {
			cmd = 'M'
		}
		fmt.Fprintf(&r.buf, "%c%.2f %.2f ", cmd, p.X, p.Y)
	}
}
