// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// ID is a unique identifier for an entity within one game
type ID uint64

// Entity is the base interface for all game objects
type Entity interface {
	GetID() ID
	GetPosition() physics.Vector2D
	GetCollider() physics.Circle
}

// BaseEntity contains common functionality for all entities
type BaseEntity struct {
	ID       ID
	Position physics.Vector2D
	Velocity physics.Vector2D
	Angle    float64
	Radius   float64
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

// GetCollider returns the entity's bounding circle
func (e *BaseEntity) GetCollider() physics.Circle {
	return physics.Circle{
		Center: e.Position,
		Radius: e.Radius,
	}
}

// Advance moves the entity by its velocity and wraps it onto the field
func (e *BaseEntity) Advance(deltaTime float64, field physics.Vector2D) {
	e.Position = e.Position.Add(e.Velocity.Scale(deltaTime))
	e.Position.RemEuclid(field)
}

// IDGenerator hands out increasing IDs. Each game owns one so that two
// games built from the same seed number their entities identically.
type IDGenerator struct {
	last ID
}

// Next returns a fresh ID, starting at 1
func (g *IDGenerator) Next() ID {
	g.last++
	return g.last
}
