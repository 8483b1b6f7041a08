// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// Renderer projects one frame of game state into some output
type Renderer interface {
	Clear()
	RenderLives(lives uint64)
	RenderShip(ship *entity.Ship, thrusting bool)
	RenderBullet(bullet *entity.Bullet)
	RenderAsteroid(asteroid *entity.Asteroid)
	RenderExplosion(explosion *entity.Explosion, tick uint64)
	RenderScore(score uint64, wave int)
	Present()
}

// Frame draws snap through r: lives, ship, bullets, asteroids,
// explosions, then the score. Dead ships are skipped.
func Frame(r Renderer, snap *engine.Snapshot) {
	r.Clear()
	r.RenderLives(snap.Lives)
	if !snap.Ship.Dead {
		r.RenderShip(&snap.Ship, snap.Thrusting)
	}
	for i := range snap.Bullets {
		r.RenderBullet(&snap.Bullets[i])
	}
	for i := range snap.Asteroids {
		r.RenderAsteroid(&snap.Asteroids[i])
	}
	for i := range snap.Explosions {
		r.RenderExplosion(&snap.Explosions[i], snap.Tick)
	}
	r.RenderScore(snap.Score, snap.Wave)
	r.Present()
}

// NullRenderer draws nothing and logs each call at debug level
type NullRenderer struct {
	logger *logging.Logger
	ctx    context.Context
}

// NewNullRenderer creates a new NullRenderer with structured logging.
// A nil logger discards everything.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &NullRenderer{
		logger: logger,
		ctx:    context.Background(),
	}
}

// Clear implements Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(d.ctx, "Clear called")
}

// Present implements Renderer.
func (d *NullRenderer) Present() {
	d.logger.Debug(d.ctx, "Present called")
}

// RenderLives implements Renderer.
func (d *NullRenderer) RenderLives(lives uint64) {
	d.logger.Debug(d.ctx, "RenderLives called", "lives", lives)
}

// RenderShip implements Renderer.
func (d *NullRenderer) RenderShip(ship *entity.Ship, thrusting bool) {
	if ship == nil {
		d.logger.Debug(d.ctx, "RenderShip called with nil ship")
		return
	}
	d.logger.Debug(d.ctx, "RenderShip called",
		"ship_id", ship.ID,
		"x", ship.Position.X,
		"y", ship.Position.Y,
		"thrusting", thrusting,
	)
}

// RenderBullet implements Renderer.
func (d *NullRenderer) RenderBullet(bullet *entity.Bullet) {
	if bullet == nil {
		d.logger.Debug(d.ctx, "RenderBullet called with nil bullet")
		return
	}
	d.logger.Debug(d.ctx, "RenderBullet called", "bullet_id", bullet.ID)
}

// RenderAsteroid implements Renderer.
func (d *NullRenderer) RenderAsteroid(asteroid *entity.Asteroid) {
	if asteroid == nil {
		d.logger.Debug(d.ctx, "RenderAsteroid called with nil asteroid")
		return
	}
	d.logger.Debug(d.ctx, "RenderAsteroid called",
		"asteroid_id", asteroid.ID,
		"size", asteroid.Size,
		"style", asteroid.Style,
	)
}

// RenderExplosion implements Renderer.
func (d *NullRenderer) RenderExplosion(explosion *entity.Explosion, tick uint64) {
	if explosion == nil {
		d.logger.Debug(d.ctx, "RenderExplosion called with nil explosion")
		return
	}
	d.logger.Debug(d.ctx, "RenderExplosion called", "progress", explosion.Progress(tick))
}

// RenderScore implements Renderer.
func (d *NullRenderer) RenderScore(score uint64, wave int) {
	d.logger.Debug(d.ctx, "RenderScore called", "score", score, "wave", wave)
}
