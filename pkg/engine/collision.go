// pkg/engine/collision.go
package engine

import (
	"math"
	"slices"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// broadPhaseSlack widens candidate queries so rounding in the query edges
// never drops an asteroid the narrow phase would hit
const broadPhaseSlack = 1e-6

// populateSpatialIndex rebuilds the quadtree from asteroid centres. The
// stored index is the asteroid's position in g.asteroids. Asteroids the
// tree rejects are kept in g.unindexed and tested against every bullet.
func (g *Game) populateSpatialIndex() {
	g.spatialIndex.Clear()
	g.unindexed = g.unindexed[:0]
	for i, a := range g.asteroids {
		if !g.spatialIndex.Insert(a.Position, i) {
			g.unindexed = append(g.unindexed, i)
			g.logger.Warn(g.ctx, "asteroid outside spatial index",
				"asteroid_id", uint64(a.ID),
				"x", a.Position.X,
				"y", a.Position.Y,
			)
		}
	}
}

// processBulletCollisions resolves bullet hits. Each bullet hits at most
// one asteroid and each asteroid absorbs at most one bullet per tick.
func (g *Game) processBulletCollisions() {
	if g.state == GameOver || len(g.bullets) == 0 || len(g.asteroids) == 0 {
		return
	}
	g.populateSpatialIndex()

	hit := make([]bool, len(g.asteroids))
	var spawned []*entity.Asteroid

	live := g.bullets[:0]
	for _, b := range g.bullets {
		idx, ok := g.findBulletTarget(b, hit)
		if !ok {
			live = append(live, b)
			continue
		}
		hit[idx] = true
		spawned = append(spawned, g.handleAsteroidHit(g.asteroids[idx], b.Position)...)
	}
	clear(g.bullets[len(live):])
	g.bullets = live

	survivors := g.asteroids[:0]
	for i, a := range g.asteroids {
		if !hit[i] {
			survivors = append(survivors, a)
		}
	}
	clear(g.asteroids[len(survivors):])
	g.asteroids = append(survivors, spawned...)
}

// findBulletTarget returns the lowest-index asteroid the bullet touches
func (g *Game) findBulletTarget(b *entity.Bullet, hit []bool) (int, bool) {
	field := g.config.Physics.FieldSize
	reach := 2 * (g.largestAsteroid() + b.Radius + broadPhaseSlack)
	area := physics.Rect{
		Center: b.Position,
		Width:  math.Min(reach, field.X),
		Height: math.Min(reach, field.Y),
	}

	candidates := g.spatialIndex.QueryWrapped(area, field)
	if len(g.unindexed) > 0 {
		candidates = append(candidates, g.unindexed...)
		slices.Sort(candidates)
		candidates = slices.Compact(candidates)
	}

	for _, idx := range candidates {
		if hit[idx] {
			continue
		}
		if g.asteroids[idx].Intersects(b.Position, b.Radius, field) {
			return idx, true
		}
	}
	return 0, false
}

// largestAsteroid returns the biggest asteroid size on the field
func (g *Game) largestAsteroid() float64 {
	largest := 0.0
	for _, a := range g.asteroids {
		largest = math.Max(largest, a.Size)
	}
	return largest
}

// handleAsteroidHit scores the hit, leaves an explosion at the impact
// point and returns the children of a split, if any.
func (g *Game) handleAsteroidHit(a *entity.Asteroid, impact physics.Vector2D) []*entity.Asteroid {
	rules := g.config.Rules
	points := rules.ScorePerSide * uint64(a.Style)
	g.score += points
	g.explosions = append(g.explosions, entity.NewExplosion(impact, g.tick, rules.ExplosionLifetime))

	var children []*entity.Asteroid
	if a.CanSplit(rules.AsteroidMinSize) {
		children = g.splitAsteroid(a)
	}

	g.bus.Publish(event.NewAsteroidEvent(g, g.tick, a.Position.X, a.Position.Y, a.Size, a.Style, len(children), points))
	return children
}

// splitAsteroid draws the first child's heading and spin, then the
// second's, and halves the parent.
func (g *Game) splitAsteroid(a *entity.Asteroid) []*entity.Asteroid {
	var headings, spins [2]float64
	for i := range headings {
		headings[i] = g.drawHeading()
		spins[i] = g.drawSpin()
	}
	ids := [2]entity.ID{g.ids.Next(), g.ids.Next()}
	pair := a.Split(ids, headings, spins, g.config.Rules.SplitSpeedFactor)
	return pair[:]
}

// processShipCollisions destroys the ship when any asteroid touches it
func (g *Game) processShipCollisions() {
	if g.state != Playing {
		return
	}
	field := g.config.Physics.FieldSize
	for _, a := range g.asteroids {
		if a.Intersects(g.ship.Position, g.ship.Radius, field) {
			g.destroyShip()
			return
		}
	}
}
