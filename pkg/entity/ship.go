// pkg/entity/ship.go
package entity

import (
	"math"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// SpawnAngle points the nose up the screen
const SpawnAngle = -math.Pi / 2

// Ship represents the player's ship
type Ship struct {
	BaseEntity
	AngularSpeed float64
	Dead         bool
	DiedAt       uint64
}

// NewShip creates a live ship at rest, nose up
func NewShip(id ID, position physics.Vector2D, radius float64) *Ship {
	return &Ship{
		BaseEntity: BaseEntity{
			ID:       id,
			Position: position,
			Angle:    SpawnAngle,
			Radius:   radius,
		},
	}
}

// PhysicsState copies the fields the integrator works on
func (s *Ship) PhysicsState() physics.ShipState {
	return physics.ShipState{
		Position:     s.Position,
		Velocity:     s.Velocity,
		Angle:        s.Angle,
		AngularSpeed: s.AngularSpeed,
	}
}

// SetPhysicsState writes integrator results back into the ship
func (s *Ship) SetPhysicsState(state physics.ShipState) {
	s.Position = state.Position
	s.Velocity = state.Velocity
	s.Angle = state.Angle
	s.AngularSpeed = state.AngularSpeed
}

// Step advances the ship one tick. Dead ships do not move.
func (s *Ship) Step(controls physics.ShipControls, tuning physics.ShipTuning) {
	if s.Dead {
		return
	}
	state := s.PhysicsState()
	physics.StepShip(&state, controls, tuning)
	s.SetPhysicsState(state)
}

// Heading returns the unit vector the nose points along
func (s *Ship) Heading() physics.Vector2D {
	return physics.FromAngle(s.Angle, 1)
}

// Nose returns the point offset along the heading, wrapped onto the field
func (s *Ship) Nose(offset float64, field physics.Vector2D) physics.Vector2D {
	return physics.Wrap(s.Position.Add(s.Heading().Scale(offset)), field)
}

// Kill marks the ship dead at tick
func (s *Ship) Kill(tick uint64) {
	s.Dead = true
	s.DiedAt = tick
}

// Respawn brings the ship back at rest, nose up
func (s *Ship) Respawn(position physics.Vector2D) {
	s.Position = position
	s.Velocity = physics.Zero
	s.Angle = SpawnAngle
	s.AngularSpeed = 0
	s.Dead = false
}
