// pkg/entity/weapon.go
package entity

import (
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Gun creates bullets from the ship's nose. Timing is counted in ticks.
type Gun struct {
	Cooldown     uint64
	Speed        float64
	Lifetime     uint64
	Radius       float64
	MuzzleOffset float64

	lastFired uint64
	hasFired  bool
}

// Ready reports whether the cooldown has elapsed at tick
func (g *Gun) Ready(tick uint64) bool {
	return !g.hasFired || tick-g.lastFired >= g.Cooldown
}

// Fire creates a bullet at the ship's nose travelling at the ship's
// velocity plus Speed along its heading. It returns nil while cooling down.
func (g *Gun) Fire(id ID, ship *Ship, tick uint64, field physics.Vector2D) *Bullet {
	if !g.Ready(tick) {
		return nil
	}
	g.lastFired = tick
	g.hasFired = true

	return &Bullet{
		BaseEntity: BaseEntity{
			ID:       id,
			Position: ship.Nose(g.MuzzleOffset, field),
			Velocity: ship.Velocity.Add(ship.Heading().Scale(g.Speed)),
			Angle:    ship.Angle,
			Radius:   g.Radius,
		},
		Expires: tick + g.Lifetime,
	}
}

// Reset forgets the last shot
func (g *Gun) Reset() {
	g.lastFired = 0
	g.hasFired = false
}
