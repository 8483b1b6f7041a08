// pkg/engine/snapshot.go
package engine

import (
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/input"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Snapshot is a copy of the game state for renderers. Changing it does
// not affect the game.
type Snapshot struct {
	Tick      uint64
	Score     uint64
	Lives     uint64
	Wave      int
	State     State
	FieldSize physics.Vector2D
	Thrusting bool

	Ship       entity.Ship
	Bullets    []entity.Bullet
	Asteroids  []entity.Asteroid
	Explosions []entity.Explosion
}

// Snapshot copies the current state
func (g *Game) Snapshot() *Snapshot {
	return &Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Lives:     g.lives,
		Wave:      g.wave,
		State:     g.state,
		FieldSize: g.config.Physics.FieldSize,
		Thrusting: g.inputs.IsDown(input.Forward) || g.inputs.IsDown(input.Backward),

		Ship:       *g.ship,
		Bullets:    g.getBulletStates(),
		Asteroids:  g.getAsteroidStates(),
		Explosions: g.getExplosionStates(),
	}
}

// getBulletStates copies the live bullets
func (g *Game) getBulletStates() []entity.Bullet {
	states := make([]entity.Bullet, len(g.bullets))
	for i, b := range g.bullets {
		states[i] = *b
	}
	return states
}

// getAsteroidStates copies the asteroids
func (g *Game) getAsteroidStates() []entity.Asteroid {
	states := make([]entity.Asteroid, len(g.asteroids))
	for i, a := range g.asteroids {
		states[i] = *a
	}
	return states
}

// getExplosionStates copies the running explosions
func (g *Game) getExplosionStates() []entity.Explosion {
	states := make([]entity.Explosion, len(g.explosions))
	for i, e := range g.explosions {
		states[i] = *e
	}
	return states
}

// Entities lists the collidable objects in the snapshot: the ship while it
// is alive, then asteroids, then bullets.
func (s *Snapshot) Entities() []entity.Entity {
	out := make([]entity.Entity, 0, 1+len(s.Asteroids)+len(s.Bullets))
	if !s.Ship.Dead {
		out = append(out, &s.Ship)
	}
	for i := range s.Asteroids {
		out = append(out, &s.Asteroids[i])
	}
	for i := range s.Bullets {
		out = append(out, &s.Bullets[i])
	}
	return out
}
