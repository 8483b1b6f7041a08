// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/opd-ai/go-asteroids/pkg/input"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Config contains the tunables for one asteroids session
type Config struct {
	Physics PhysicsConfig  `json:"physics"`
	Rules   GameRules      `json:"rules"`
	Keys    input.Bindings `json:"keys"`
	// Seed fixes the generator seed for replays; nil draws one from entropy
	Seed *uint64 `json:"seed,omitempty"`
}

// PhysicsConfig contains the ship integrator constants and the field size
type PhysicsConfig struct {
	Drag         float64          `json:"drag"`
	AngularDrag  float64          `json:"angularDrag"`
	Acceleration float64          `json:"acceleration"`
	AngularAccel float64          `json:"angularAccel"`
	SpeedLimit   float64          `json:"speedLimit"`
	AngularLimit float64          `json:"angularLimit"`
	DeltaT       float64          `json:"deltaT"`
	FieldSize    physics.Vector2D `json:"fieldSize"`
}

// GameRules contains the game rules. Durations are counted in ticks.
type GameRules struct {
	InitialLives     uint64  `json:"initialLives"`
	RespawnDelay     uint64  `json:"respawnDelay"`
	RespawnClearance float64 `json:"respawnClearance"`
	ShipRadius       float64 `json:"shipRadius"`

	BulletSpeed    float64 `json:"bulletSpeed"`
	BulletLifetime uint64  `json:"bulletLifetime"`
	BulletRadius   float64 `json:"bulletRadius"`
	FireCooldown   uint64  `json:"fireCooldown"`

	ExplosionLifetime uint64 `json:"explosionLifetime"`

	AsteroidSize     float64 `json:"asteroidSize"`
	AsteroidMinSize  float64 `json:"asteroidMinSize"`
	AsteroidMaxSize  float64 `json:"asteroidMaxSize"`
	AsteroidMinSpeed float64 `json:"asteroidMinSpeed"`
	AsteroidMaxSpeed float64 `json:"asteroidMaxSpeed"`
	AsteroidMaxSpin  float64 `json:"asteroidMaxSpin"`
	AsteroidMinStyle int     `json:"asteroidMinStyle"`
	AsteroidMaxStyle int     `json:"asteroidMaxStyle"`

	InitialAsteroids    int     `json:"initialAsteroids"`
	MaxAsteroidsPerWave int     `json:"maxAsteroidsPerWave"`
	WaveGrowth          int     `json:"waveGrowth"`
	ScorePerSide        uint64  `json:"scorePerSide"`
	SplitSpeedFactor    float64 `json:"splitSpeedFactor"`
}

// ValidationError describes one rejected field
type ValidationError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

// LoadConfig loads a configuration from a file. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, logging.WrapError(err, "failed to open config file")
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, logging.WrapError(err, "failed to parse config file")
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *Config, path string) error {
	if config == nil {
		return errors.New("failed to marshal config: nil config")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return logging.WrapError(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return logging.WrapError(err, "failed to write config file")
	}

	return nil
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *Config {
	return &Config{
		Physics: PhysicsConfig{
			Drag:         0.001,
			AngularDrag:  2,
			Acceleration: 300,
			AngularAccel: 20,
			SpeedLimit:   400,
			AngularLimit: 6,
			DeltaT:       1.0 / 60.0,
			FieldSize:    physics.Vector2D{X: 1280, Y: 720},
		},
		Rules: GameRules{
			InitialLives:     3,
			RespawnDelay:     120,
			RespawnClearance: 150,
			ShipRadius:       16,

			BulletSpeed:    600,
			BulletLifetime: 60,
			BulletRadius:   2,
			FireCooldown:   8,

			ExplosionLifetime: 40,

			AsteroidSize:     60,
			AsteroidMinSize:  15,
			AsteroidMaxSize:  90,
			AsteroidMinSpeed: 30,
			AsteroidMaxSpeed: 90,
			AsteroidMaxSpin:  1.5,
			AsteroidMinStyle: 5,
			AsteroidMaxStyle: 9,

			InitialAsteroids:    4,
			MaxAsteroidsPerWave: 12,
			WaveGrowth:          1,
			ScorePerSide:        10,
			SplitSpeedFactor:    1.3,
		},
		Keys: input.DefaultBindings(),
	}
}

// Clone returns a deep copy of the configuration
func (c *Config) Clone() *Config {
	out := *c
	out.Keys = c.Keys.Clone()
	if c.Seed != nil {
		seed := *c.Seed
		out.Seed = &seed
	}
	return &out
}

// ShipTuning extracts the ship integrator constants
func (c *Config) ShipTuning() physics.ShipTuning {
	p := c.Physics
	return physics.ShipTuning{
		Drag:         p.Drag,
		AngularDrag:  p.AngularDrag,
		Acceleration: p.Acceleration,
		AngularAccel: p.AngularAccel,
		SpeedLimit:   p.SpeedLimit,
		AngularLimit: p.AngularLimit,
		DeltaT:       p.DeltaT,
		FieldSize:    p.FieldSize,
	}
}

// Validate reports every invalid field, joined into one error
func (c *Config) Validate() error {
	var errs []error
	add := func(field string, value interface{}, reason string) {
		errs = append(errs, &ValidationError{Field: field, Value: value, Reason: reason})
	}

	p := c.Physics
	if !(p.FieldSize.X > 0) || !(p.FieldSize.Y > 0) {
		add("physics.fieldSize", p.FieldSize, "both components must be positive")
	}
	if !(p.DeltaT > 0) {
		add("physics.deltaT", p.DeltaT, "must be positive")
	}
	nonNegative := []struct {
		field string
		value float64
	}{
		{"physics.drag", p.Drag},
		{"physics.angularDrag", p.AngularDrag},
		{"physics.acceleration", p.Acceleration},
		{"physics.angularAccel", p.AngularAccel},
		{"physics.speedLimit", p.SpeedLimit},
		{"physics.angularLimit", p.AngularLimit},
		{"rules.respawnClearance", c.Rules.RespawnClearance},
		{"rules.bulletSpeed", c.Rules.BulletSpeed},
		{"rules.bulletRadius", c.Rules.BulletRadius},
		{"rules.asteroidMinSpeed", c.Rules.AsteroidMinSpeed},
		{"rules.asteroidMaxSpin", c.Rules.AsteroidMaxSpin},
		{"rules.splitSpeedFactor", c.Rules.SplitSpeedFactor},
	}
	for _, nn := range nonNegative {
		// negated so NaN is rejected too
		if !(nn.value >= 0) {
			add(nn.field, nn.value, "must not be negative")
		}
	}
	if p.DeltaT > 0 && p.Drag*p.SpeedLimit*p.DeltaT >= 1 {
		add("physics.drag", p.Drag, "drag at the speed limit would reverse the ship in one tick")
	}
	if p.DeltaT > 0 && p.AngularDrag*p.DeltaT >= 1 {
		add("physics.angularDrag", p.AngularDrag, "angular drag would reverse the spin in one tick")
	}

	r := c.Rules
	if r.InitialLives == 0 {
		add("rules.initialLives", r.InitialLives, "must be at least one")
	}
	if !(r.ShipRadius > 0) {
		add("rules.shipRadius", r.ShipRadius, "must be positive")
	}
	if r.BulletLifetime == 0 {
		add("rules.bulletLifetime", r.BulletLifetime, "must be at least one tick")
	}
	if r.ExplosionLifetime == 0 {
		add("rules.explosionLifetime", r.ExplosionLifetime, "must be at least one tick")
	}
	if !(r.AsteroidMinSize > 0) {
		add("rules.asteroidMinSize", r.AsteroidMinSize, "must be positive")
	}
	if !(r.AsteroidSize >= r.AsteroidMinSize) {
		add("rules.asteroidSize", r.AsteroidSize, "must not be below asteroidMinSize")
	}
	if !(r.AsteroidMaxSize >= r.AsteroidSize) {
		add("rules.asteroidMaxSize", r.AsteroidMaxSize, "must not be below asteroidSize")
	}
	if !(r.AsteroidMaxSpeed >= r.AsteroidMinSpeed) {
		add("rules.asteroidMaxSpeed", r.AsteroidMaxSpeed, "must not be below asteroidMinSpeed")
	}
	if r.AsteroidMinStyle < 3 {
		add("rules.asteroidMinStyle", r.AsteroidMinStyle, "a polygon needs at least 3 sides")
	}
	if r.AsteroidMaxStyle < r.AsteroidMinStyle {
		add("rules.asteroidMaxStyle", r.AsteroidMaxStyle, "must not be below asteroidMinStyle")
	}
	if r.InitialAsteroids < 1 {
		add("rules.initialAsteroids", r.InitialAsteroids, "must be at least 1")
	}
	if r.MaxAsteroidsPerWave < r.InitialAsteroids {
		add("rules.maxAsteroidsPerWave", r.MaxAsteroidsPerWave, "must not be below initialAsteroids")
	}
	if p.FieldSize.X > 0 && p.FieldSize.Y > 0 && r.RespawnClearance+r.AsteroidMaxSize >= p.FieldSize.Scale(0.5).Length() {
		add("rules.respawnClearance", r.RespawnClearance, "with asteroidMaxSize must stay below half the field diagonal")
	}
	if r.WaveGrowth < 0 {
		add("rules.waveGrowth", r.WaveGrowth, "must not be negative")
	}

	if err := c.Keys.Validate(); err != nil {
		add("keys", len(c.Keys), err.Error())
	}

	return errors.Join(errs...)
}
