// pkg/engine/spawn.go
package engine

import (
	"math"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// spawnWave starts the next wave away from the ship
func (g *Game) spawnWave() {
	g.wave++
	count := g.waveCount(g.wave)
	size := g.waveSize(g.wave)

	avoid := g.fieldCenter()
	if !g.ship.Dead {
		avoid = g.ship.Position
	}
	for i := 0; i < count; i++ {
		g.asteroids = append(g.asteroids, g.spawnAsteroid(size, avoid))
	}

	g.logger.Debug(g.ctx, "wave started", "wave", g.wave, "asteroids", count, "size", size)
	g.bus.Publish(event.NewGameEvent(event.WaveStarted, g, g.tick, g.wave, count, g.score))
}

// waveCount is the number of asteroids in wave n, counting from 1
func (g *Game) waveCount(n int) int {
	rules := g.config.Rules
	return min(rules.InitialAsteroids+(n-1)*rules.WaveGrowth, rules.MaxAsteroidsPerWave)
}

// waveSize grows the asteroid size by a tenth per wave up to the maximum
func (g *Game) waveSize(n int) float64 {
	rules := g.config.Rules
	return math.Min(rules.AsteroidSize*(1+0.1*float64(n-1)), rules.AsteroidMaxSize)
}

// spawnAsteroid draws, in order: x, y, heading, speed, spin, style. A
// position too close to avoid is moved to the opposite side of the field
// from avoid, so the number of draws never depends on where the ship is.
func (g *Game) spawnAsteroid(size float64, avoid physics.Vector2D) *entity.Asteroid {
	rules := g.config.Rules
	field := g.config.Physics.FieldSize

	pos := physics.Vector2D{X: g.rng.Float64() * field.X, Y: g.rng.Float64() * field.Y}
	heading := g.drawHeading()
	speed := rules.AsteroidMinSpeed + g.rng.Float64()*(rules.AsteroidMaxSpeed-rules.AsteroidMinSpeed)
	spin := g.drawSpin()
	style := rules.AsteroidMinStyle + g.rng.IntN(rules.AsteroidMaxStyle-rules.AsteroidMinStyle+1)

	clearance := rules.RespawnClearance + size
	img := physics.NearestImage(pos, avoid, field)
	if (physics.Circle{Center: avoid, Radius: clearance}).ContainsPoint(img) {
		pos = antipode(avoid, img.Sub(avoid), clearance, field)
	}
	pos.RemEuclid(field)

	return entity.NewAsteroid(g.ids.Next(), pos, physics.FromAngle(heading, speed), heading, spin, size, style)
}

// antipode moves a point at offset d from avoid, |d| <= clearance, to the
// far side of the torus. The offset is shrunk so the result stays at
// least clearance from avoid; config validation keeps clearance below half
// the field diagonal.
func antipode(avoid, d physics.Vector2D, clearance float64, field physics.Vector2D) physics.Vector2D {
	half := field.Scale(0.5)
	// keeping each axis of the offset within half the field stops it
	// wrapping back toward avoid
	margin := min(half.Length()-clearance, half.X, half.Y)
	return avoid.Add(half).Add(d.Scale(margin / clearance))
}

func (g *Game) drawHeading() float64 {
	return g.rng.Float64() * 2 * math.Pi
}

// drawSpin returns a rate in [-maxSpin, maxSpin)
func (g *Game) drawSpin() float64 {
	return (2*g.rng.Float64() - 1) * g.config.Rules.AsteroidMaxSpin
}
