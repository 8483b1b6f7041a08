// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// SpriteSink receives the entities the renderer creates.
// *common.RenderSystem satisfies it.
type SpriteSink interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
	Remove(basic ecs.BasicEntity)
}

type spriteKind int

const (
	kindLife spriteKind = iota
	kindAsteroid
	kindExplosion
	kindBullet
	kindFlare
	kindShip

	kindCount
)

// sprite bundles the components the render system draws
type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// spritePool reuses sprites between frames. used counts the sprites
// drawn since the last Clear.
type spritePool struct {
	sprites []*sprite
	used    int
}

const (
	lifeSize       = 24
	lifeStep       = 40
	lifeY          = 50
	explosionReach = 30
	minPixels      = 2
)

// EngoRenderer implements render.Renderer by positioning pooled sprites.
// Entities are created the first time a frame needs more of a kind and
// hidden when later frames need fewer.
type EngoRenderer struct {
	sink    SpriteSink
	camera  *Camera
	assets  *AssetManager
	palette Palette
	hud     *HUDSystem

	pools [kindCount]spritePool
}

// NewEngoRenderer creates a renderer adding its sprites to sink. Score
// and wave are forwarded to hud when it is not nil.
func NewEngoRenderer(sink SpriteSink, camera *Camera, palette Palette, hud *HUDSystem) *EngoRenderer {
	return &EngoRenderer{
		sink:    sink,
		camera:  camera,
		assets:  NewAssetManager(),
		palette: palette,
		hud:     hud,
	}
}

// Clear implements render.Renderer
func (r *EngoRenderer) Clear() {
	for i := range r.pools {
		r.pools[i].used = 0
	}
}

// Present implements render.Renderer. Sprites not drawn this frame are hidden.
func (r *EngoRenderer) Present() {
	for i := range r.pools {
		pool := &r.pools[i]
		for _, s := range pool.sprites[pool.used:] {
			s.Hidden = true
		}
	}
}

// RenderLives implements render.Renderer
func (r *EngoRenderer) RenderLives(lives uint64) {
	size := r.camera.Pixels(lifeSize)
	for l := uint64(0); l < lives; l++ {
		s := r.acquire(kindLife)
		centre := r.camera.project(physics.Vector2D{X: float64(l+1) * lifeStep, Y: lifeY})
		r.place(s, centre, size, entity.SpawnAngle)
		s.Drawable = r.assets.Ship()
		s.Color = r.palette.Ship
	}
}

// RenderShip implements render.Renderer
func (r *EngoRenderer) RenderShip(ship *entity.Ship, thrusting bool) {
	size := r.shipPixels(ship)
	centre := r.camera.WorldToScreen(ship.Position)

	s := r.acquire(kindShip)
	r.place(s, centre, size, ship.Angle)
	s.Drawable = r.assets.Ship()
	s.Color = r.palette.Ship

	if thrusting {
		f := r.acquire(kindFlare)
		r.place(f, centre, size, ship.Angle)
		f.Drawable = r.assets.Flare()
		f.Color = r.palette.Flare
	}
}

// shipPixels sizes the ship sprite so the hull spans the collision circle
func (r *EngoRenderer) shipPixels(ship *entity.Ship) float32 {
	return max(r.camera.Pixels(2*ship.Radius*shipExtent/float64(shipNose.X)), minPixels)
}

// RenderBullet implements render.Renderer
func (r *EngoRenderer) RenderBullet(bullet *entity.Bullet) {
	size := max(r.camera.Pixels(2*bullet.Radius), minPixels)
	s := r.acquire(kindBullet)
	r.place(s, r.camera.WorldToScreen(bullet.Position), size, 0)
	s.Drawable = common.Rectangle{}
	s.Color = r.palette.Bullet
}

// RenderAsteroid implements render.Renderer
func (r *EngoRenderer) RenderAsteroid(asteroid *entity.Asteroid) {
	size := max(r.camera.Pixels(2*asteroid.Size), minPixels)
	s := r.acquire(kindAsteroid)
	r.place(s, r.camera.WorldToScreen(asteroid.Position), size, asteroid.Angle)
	s.Drawable = r.assets.Asteroid(asteroid.Style)
	s.Color = r.palette.Asteroid
}

// RenderExplosion implements render.Renderer. The ring grows with age.
func (r *EngoRenderer) RenderExplosion(explosion *entity.Explosion, tick uint64) {
	size := max(r.camera.Pixels(2*explosion.Progress(tick)*explosionReach), minPixels)
	s := r.acquire(kindExplosion)
	r.place(s, r.camera.WorldToScreen(explosion.Position), size, 0)
	s.Drawable = common.Circle{BorderWidth: 1, BorderColor: r.palette.Explosion}
	s.Color = color.Transparent
}

// RenderScore implements render.Renderer
func (r *EngoRenderer) RenderScore(score uint64, wave int) {
	if r.hud != nil {
		r.hud.SetScore(score, wave)
	}
}

// Drawn returns how many sprites of each kind the last frame used
func (r *EngoRenderer) Drawn() (ships, bullets, asteroids, explosions int) {
	return r.pools[kindShip].used, r.pools[kindBullet].used,
		r.pools[kindAsteroid].used, r.pools[kindExplosion].used
}

// Release removes every pooled sprite from the sink
func (r *EngoRenderer) Release() {
	for i := range r.pools {
		for _, s := range r.pools[i].sprites {
			r.sink.Remove(s.BasicEntity)
		}
		r.pools[i] = spritePool{}
	}
}

// acquire returns the next free sprite of kind, creating one if needed
func (r *EngoRenderer) acquire(kind spriteKind) *sprite {
	pool := &r.pools[kind]
	if pool.used == len(pool.sprites) {
		s := &sprite{BasicEntity: ecs.NewBasic()}
		s.SetZIndex(float32(kind))
		r.sink.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
		pool.sprites = append(pool.sprites, s)
	}
	s := pool.sprites[pool.used]
	pool.used++
	s.Hidden = false
	return s
}

// place centres a square sprite on centre, rotated by angle radians
func (r *EngoRenderer) place(s *sprite, centre engo.Point, size float32, angle float64) {
	s.Width = size
	s.Height = size
	s.Rotation = degrees(angle)
	s.Position = topLeft(centre, size, angle)
}
