// pkg/render/terminal.go
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Terminal glyphs
const (
	GlyphEmpty     = ' '
	GlyphAsteroid  = '#'
	GlyphBullet    = '.'
	GlyphExplosion = '*'
	GlyphFlare     = '~'
	GlyphLife      = 'A'
)

// shipGlyphs are indexed by heading in eighths of a turn, starting east
var shipGlyphs = [8]rune{'>', '\\', 'v', '/', '<', '\\', '^', '/'}

// TerminalRenderer rasterises the field into a grid of runes, one cell per
// character. The whole field is always visible.
type TerminalRenderer struct {
	width  int
	height int
	buffer [][]rune
	field  physics.Vector2D
	out    io.Writer
}

// NewTerminalRenderer creates a width x height renderer for the field.
// Present writes the frame to out; a nil out leaves the frame in the buffer
// for the caller to copy.
func NewTerminalRenderer(width, height int, field physics.Vector2D, out io.Writer) *TerminalRenderer {
	width = max(width, 1)
	height = max(height, 1)
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	r := &TerminalRenderer{
		width:  width,
		height: height,
		buffer: buffer,
		field:  field,
		out:    out,
	}
	r.Clear()
	return r
}

// Size returns the grid dimensions
func (r *TerminalRenderer) Size() (int, int) {
	return r.width, r.height
}

// Cell returns the rune at column x, row y
func (r *TerminalRenderer) Cell(x, y int) rune {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return GlyphEmpty
	}
	return r.buffer[y][x]
}

// Lines returns the buffer as strings, top row first
func (r *TerminalRenderer) Lines() []string {
	lines := make([]string, r.height)
	for y, row := range r.buffer {
		lines[y] = string(row)
	}
	return lines
}

// worldToScreen converts a field position to a cell, wrapping so that
// every position lands on the grid
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	pos = physics.Wrap(pos, r.field)
	x := int(pos.X / r.field.X * float64(r.width))
	y := int(pos.Y / r.field.Y * float64(r.height))
	return min(x, r.width-1), min(y, r.height-1)
}

func (r *TerminalRenderer) plot(pos physics.Vector2D, glyph rune) {
	x, y := r.worldToScreen(pos)
	r.buffer[y][x] = glyph
}

// line plots the segment a-b in steps no longer than one cell
func (r *TerminalRenderer) line(a, b physics.Vector2D, glyph rune) {
	cellW := r.field.X / float64(r.width)
	cellH := r.field.Y / float64(r.height)
	d := b.Sub(a)
	steps := int(math.Ceil(math.Max(math.Abs(d.X)/cellW, math.Abs(d.Y)/cellH)))
	if steps == 0 {
		r.plot(a, glyph)
		return
	}
	for i := 0; i <= steps; i++ {
		r.plot(a.Lerp(b, float64(i)/float64(steps)), glyph)
	}
}

// text writes s starting at column x of row y, clipped to the grid
func (r *TerminalRenderer) text(x, y int, s string) {
	if y < 0 || y >= r.height {
		return
	}
	for _, ch := range s {
		if x >= 0 && x < r.width {
			r.buffer[y][x] = ch
		}
		x++
	}
}

// Clear implements Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = GlyphEmpty
		}
	}
}

// Present implements Renderer
func (r *TerminalRenderer) Present() {
	if r.out == nil {
		return
	}
	var sb strings.Builder
	// home the cursor and clear
	sb.WriteString("\033[H\033[2J")
	sb.WriteString("+" + strings.Repeat("-", r.width) + "+\n")
	for _, line := range r.Lines() {
		sb.WriteString("|" + line + "|\n")
	}
	sb.WriteString("+" + strings.Repeat("-", r.width) + "+\n")
	fmt.Fprint(r.out, sb.String())
}

// RenderLives implements Renderer
func (r *TerminalRenderer) RenderLives(lives uint64) {
	r.text(0, 0, strings.Repeat(string(GlyphLife)+" ", int(min(lives, uint64(r.width)))))
}

// RenderShip implements Renderer
func (r *TerminalRenderer) RenderShip(ship *entity.Ship, thrusting bool) {
	if thrusting {
		r.plot(ship.Position.Sub(ship.Heading().Scale(ship.Radius)), GlyphFlare)
	}
	r.plot(ship.Position, ShipGlyph(ship.Angle))
}

// ShipGlyph picks the arrow closest to the heading
func ShipGlyph(angle float64) rune {
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return shipGlyphs[octant]
}

// RenderBullet implements Renderer
func (r *TerminalRenderer) RenderBullet(bullet *entity.Bullet) {
	r.plot(bullet.Position, GlyphBullet)
}

// RenderAsteroid implements Renderer. The outline is traced edge by edge.
func (r *TerminalRenderer) RenderAsteroid(asteroid *entity.Asteroid) {
	v := asteroid.Vertices()
	for i := range v {
		r.line(v[i], v[(i+1)%len(v)], GlyphAsteroid)
	}
}

// RenderExplosion implements Renderer. The ring grows with age.
func (r *TerminalRenderer) RenderExplosion(explosion *entity.Explosion, tick uint64) {
	radius := explosion.Progress(tick) * explosionRadius
	step := 2 * math.Pi / explosionParticles
	for i := 0; i < explosionParticles; i++ {
		r.plot(explosion.Position.Add(physics.FromAngle(step*float64(i), radius)), GlyphExplosion)
	}
}

// RenderScore implements Renderer. Score and wave are right-aligned on
// the top row.
func (r *TerminalRenderer) RenderScore(score uint64, wave int) {
	s := fmt.Sprintf("WAVE %d  %s", wave, humanize.Comma(int64(score)))
	r.text(r.width-len(s), 0, s)
}
