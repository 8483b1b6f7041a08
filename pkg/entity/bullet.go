// pkg/entity/bullet.go
package entity

import (
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Bullet is a projectile fired by the ship
type Bullet struct {
	BaseEntity
	Expires uint64
}

// Expired reports whether the bullet should be removed at tick
func (b *Bullet) Expired(tick uint64) bool {
	return tick >= b.Expires
}

// Explosion is cosmetic debris left where something was destroyed.
// Lifetime is the absolute tick at which it disappears.
type Explosion struct {
	Position  physics.Vector2D
	StartTick uint64
	Lifetime  uint64
}

// NewExplosion creates an explosion lasting duration ticks from tick
func NewExplosion(position physics.Vector2D, tick, duration uint64) *Explosion {
	return &Explosion{Position: position, StartTick: tick, Lifetime: tick + duration}
}

// Expired reports whether the explosion should be removed at tick
func (e *Explosion) Expired(tick uint64) bool {
	return tick >= e.Lifetime
}

// Progress returns how far through its life the explosion is, in [0, 1]
func (e *Explosion) Progress(tick uint64) float64 {
	if tick <= e.StartTick || e.Lifetime <= e.StartTick {
		return 0
	}
	if tick >= e.Lifetime {
		return 1
	}
	return float64(tick-e.StartTick) / float64(e.Lifetime-e.StartTick)
}
