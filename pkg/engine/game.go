// pkg/engine/game.go
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/input"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// State is the phase of the game
type State int

const (
	Playing State = iota
	ShipDestroyed
	GameOver
)

// String returns the state name
func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case ShipDestroyed:
		return "ship_destroyed"
	case GameOver:
		return "game_over"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Construction errors
var (
	ErrInvalidConfig = errors.New("invalid game configuration")
	ErrNilRNG        = errors.New("game requires a random number generator")
)

// RNG is the seeded generator the game draws from. *rand.Rand from
// math/rand/v2 satisfies it; rng.New builds one from a seed.
type RNG interface {
	Float64() float64
	IntN(n int) int
}

// Option customises a Game at construction
type Option func(*Game)

// WithLogger sets the logger used for wave and life changes
func WithLogger(logger *logging.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithEventBus publishes game notifications on bus instead of a private one
func WithEventBus(bus *event.Bus) Option {
	return func(g *Game) {
		if bus != nil {
			g.bus = bus
		}
	}
}

// Game owns every entity of one session and advances them a tick at a time.
// It is not safe for concurrent use; hosts feed it through an event.Queue.
type Game struct {
	config config.Config
	tuning physics.ShipTuning
	rng    RNG
	inputs *input.Inputs
	bus    *event.Bus
	logger *logging.Logger
	ctx    context.Context

	tick  uint64
	score uint64
	lives uint64
	wave  int
	state State

	ids        entity.IDGenerator
	ship       *entity.Ship
	gun        *entity.Gun
	bullets    []*entity.Bullet
	asteroids  []*entity.Asteroid
	explosions []*entity.Explosion

	spatialIndex *physics.QuadTree
	unindexed    []int
	firePrev     bool
}

// NewGame validates cfg and builds a game with the ship at rest in the
// centre of the field and the first wave of asteroids spawned.
func NewGame(cfg *config.Config, rng RNG, opts ...Option) (*Game, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if rng == nil {
		return nil, ErrNilRNG
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	game := &Game{
		config: *cfg.Clone(),
		tuning: cfg.ShipTuning(),
		rng:    rng,
		inputs: input.NewInputs(cfg.Keys),
		bus:    event.NewEventBus(),
		logger: logging.NewDiscardLogger(),
		lives:  cfg.Rules.InitialLives,
		state:  Playing,
	}
	for _, opt := range opts {
		opt(game)
	}
	game.ctx = logging.WithCorrelationID(context.Background(), "")

	game.initShip()
	game.initSpatialIndex()
	game.spawnWave()

	return game, nil
}

// initShip places the ship in the centre and arms it
func (g *Game) initShip() {
	rules := g.config.Rules
	g.ship = entity.NewShip(g.ids.Next(), g.fieldCenter(), rules.ShipRadius)
	g.gun = &entity.Gun{
		Cooldown:     rules.FireCooldown,
		Speed:        rules.BulletSpeed,
		Lifetime:     rules.BulletLifetime,
		Radius:       rules.BulletRadius,
		MuzzleOffset: rules.ShipRadius,
	}
}

// initSpatialIndex creates the quadtree used to find bullet targets
func (g *Game) initSpatialIndex() {
	g.spatialIndex = physics.NewQuadTree(physics.FieldRect(g.config.Physics.FieldSize), 4)
}

// Tick advances the simulation by one fixed time step
func (g *Game) Tick() {
	g.tick++

	g.updateShip()
	g.updateBullets()
	g.updateAsteroids()
	g.updateExplosions()

	g.processBulletCollisions()
	g.processShipCollisions()
	g.checkWave()
}

// Process drains the queue in order, applying key events to the inputs
// and running one tick per animation frame. It returns the ticks run.
func (g *Game) Process(q *event.Queue) int {
	ticks := 0
	for _, ev := range q.Drain() {
		switch e := ev.(type) {
		case event.AnimationFrame:
			g.Tick()
			ticks++
		case event.KeyDown:
			g.inputs.KeyDown(e.Code)
		case event.KeyUp:
			g.inputs.KeyUp(e.Code)
		}
	}
	return ticks
}

// updateShip steps the ship, fires on a press edge and handles respawning
func (g *Game) updateShip() {
	fire := g.inputs.IsDown(input.Fire)
	pressed := fire && !g.firePrev
	g.firePrev = fire

	switch g.state {
	case Playing:
		g.ship.Step(g.controls(), g.tuning)
		if pressed {
			g.fireBullet()
		}
	case ShipDestroyed:
		g.tryRespawn()
	}
}

// controls resolves the held actions into integrator input
func (g *Game) controls() physics.ShipControls {
	return physics.ShipControls{
		Thrust: physics.Axis(g.inputs.IsDown(input.Backward), g.inputs.IsDown(input.Forward)),
		Turn:   physics.Axis(g.inputs.IsDown(input.Left), g.inputs.IsDown(input.Right)),
	}
}

// fireBullet launches a bullet unless the gun is cooling down
func (g *Game) fireBullet() {
	if !g.gun.Ready(g.tick) {
		return
	}
	bullet := g.gun.Fire(g.ids.Next(), g.ship, g.tick, g.config.Physics.FieldSize)
	g.bullets = append(g.bullets, bullet)
	g.bus.Publish(event.NewBulletEvent(g, g.tick, bullet.Position.X, bullet.Position.Y))
}

// tryRespawn brings the ship back once the delay has passed and the
// centre of the field is clear
func (g *Game) tryRespawn() {
	if g.tick-g.ship.DiedAt < g.config.Rules.RespawnDelay {
		return
	}
	center := g.fieldCenter()
	if !g.areaClear(center, g.config.Rules.RespawnClearance) {
		return
	}

	g.ship.Respawn(center)
	g.gun.Reset()
	g.state = Playing

	g.logger.Debug(g.ctx, "ship respawned", "tick", g.tick, "lives", g.lives)
	g.bus.Publish(event.NewShipEvent(event.ShipRespawned, g, g.tick, center.X, center.Y, g.lives))
}

// areaClear reports whether no asteroid's bounding circle reaches within
// clearance of point
func (g *Game) areaClear(point physics.Vector2D, clearance float64) bool {
	field := g.config.Physics.FieldSize
	zone := physics.Circle{Center: point, Radius: clearance}
	for _, a := range g.asteroids {
		bounds := a.Bounds()
		bounds.Center = physics.NearestImage(bounds.Center, point, field)
		if bounds.Collides(zone) {
			return false
		}
	}
	return true
}

// updateBullets moves bullets and drops the expired ones
func (g *Game) updateBullets() {
	dt := g.config.Physics.DeltaT
	field := g.config.Physics.FieldSize

	live := g.bullets[:0]
	for _, b := range g.bullets {
		b.Advance(dt, field)
		if b.Expired(g.tick) {
			continue
		}
		live = append(live, b)
	}
	clear(g.bullets[len(live):])
	g.bullets = live
}

// updateAsteroids drifts and spins every asteroid
func (g *Game) updateAsteroids() {
	dt := g.config.Physics.DeltaT
	field := g.config.Physics.FieldSize
	for _, a := range g.asteroids {
		a.Advance(dt, field)
	}
}

// updateExplosions drops finished explosions
func (g *Game) updateExplosions() {
	live := g.explosions[:0]
	for _, e := range g.explosions {
		if !e.Expired(g.tick) {
			live = append(live, e)
		}
	}
	clear(g.explosions[len(live):])
	g.explosions = live
}

// destroyShip kills the ship and takes a life
func (g *Game) destroyShip() {
	pos := g.ship.Position
	g.ship.Kill(g.tick)
	g.explosions = append(g.explosions, entity.NewExplosion(pos, g.tick, g.config.Rules.ExplosionLifetime))
	g.lives--

	g.logger.Debug(g.ctx, "ship destroyed", "tick", g.tick, "lives", g.lives)
	g.bus.Publish(event.NewShipEvent(event.ShipDestroyed, g, g.tick, pos.X, pos.Y, g.lives))

	if g.lives > 0 {
		g.state = ShipDestroyed
		return
	}
	g.endGame()
}

// endGame moves to the terminal state
func (g *Game) endGame() {
	g.state = GameOver
	g.logger.Info(g.ctx, "game over", "tick", g.tick, "score", g.score, "wave", g.wave)
	g.bus.Publish(event.NewGameEvent(event.GameOver, g, g.tick, g.wave, len(g.asteroids), g.score))
}

// checkWave starts the next wave once the field is empty
func (g *Game) checkWave() {
	if g.state == GameOver || len(g.asteroids) > 0 {
		return
	}
	g.spawnWave()
}

func (g *Game) fieldCenter() physics.Vector2D {
	return g.config.Physics.FieldSize.Scale(0.5)
}

// CurrentTick returns the number of ticks run so far
func (g *Game) CurrentTick() uint64 {
	return g.tick
}

// Score returns the points scored so far
func (g *Game) Score() uint64 {
	return g.score
}

// Lives returns the lives left
func (g *Game) Lives() uint64 {
	return g.lives
}

// Wave returns the current wave number, starting at 1
func (g *Game) Wave() int {
	return g.wave
}

// State returns the current phase
func (g *Game) State() State {
	return g.state
}

// Inputs returns the held-key set hosts update with KeyDown and KeyUp
func (g *Game) Inputs() *input.Inputs {
	return g.inputs
}

// EventBus returns the bus game notifications are published on
func (g *Game) EventBus() *event.Bus {
	return g.bus
}

// Config returns a copy of the session configuration
func (g *Game) Config() config.Config {
	return *g.config.Clone()
}
