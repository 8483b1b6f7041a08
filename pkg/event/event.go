// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Game notification types
const (
	BulletFired       Type = "bullet_fired"
	AsteroidDestroyed Type = "asteroid_destroyed"
	AsteroidSplit     Type = "asteroid_split"
	ShipDestroyed     Type = "ship_destroyed"
	ShipRespawned     Type = "ship_respawned"
	WaveStarted       Type = "wave_started"
	GameOver          Type = "game_over"
)

// Event is the base interface for all notifications
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
	Tick      uint64
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler. Cancel removes it.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	var once sync.Once
	return &Subscription{
		ID: id,
		Cancel: func() {
			once.Do(func() { b.unsubscribe(eventType, id) })
		},
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[eventType]
	for i, r := range regs {
		if r.id == id {
			// copy so a Publish iterating the old slice is unaffected
			next := make([]registration, 0, len(regs)-1)
			next = append(next, regs[:i]...)
			next = append(next, regs[i+1:]...)
			if len(next) == 0 {
				delete(b.handlers, eventType)
			} else {
				b.handlers[eventType] = next
			}
			return
		}
	}
}

// Publish sends an event to all subscribed handlers, in subscription order
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, r := range regs {
		r.handler(event)
	}
}

// Specific event implementations

// ShipEvent is published when the ship is destroyed or respawns
type ShipEvent struct {
	BaseEvent
	X, Y  float64
	Lives uint64
}

// NewShipEvent creates a new ship event
func NewShipEvent(eventType Type, source interface{}, tick uint64, x, y float64, lives uint64) *ShipEvent {
	return &ShipEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
			Tick:      tick,
		},
		X:     x,
		Y:     y,
		Lives: lives,
	}
}

// AsteroidEvent is published when a bullet destroys or splits an asteroid
type AsteroidEvent struct {
	BaseEvent
	X, Y     float64
	Size     float64
	Style    int
	Children int
	Score    uint64
}

// NewAsteroidEvent creates a new asteroid event. Children is 0 for a
// destroyed asteroid and 2 for a split.
func NewAsteroidEvent(source interface{}, tick uint64, x, y, size float64, style, children int, score uint64) *AsteroidEvent {
	eventType := AsteroidDestroyed
	if children > 0 {
		eventType = AsteroidSplit
	}
	return &AsteroidEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
			Tick:      tick,
		},
		X:        x,
		Y:        y,
		Size:     size,
		Style:    style,
		Children: children,
		Score:    score,
	}
}

// BulletEvent is published when the ship fires
type BulletEvent struct {
	BaseEvent
	X, Y float64
}

// NewBulletEvent creates a new bullet event
func NewBulletEvent(source interface{}, tick uint64, x, y float64) *BulletEvent {
	return &BulletEvent{
		BaseEvent: BaseEvent{
			EventType: BulletFired,
			Source:    source,
			Tick:      tick,
		},
		X: x,
		Y: y,
	}
}

// GameEvent carries wave and game-over notifications
type GameEvent struct {
	BaseEvent
	Wave      int
	Asteroids int
	Score     uint64
}

// NewGameEvent creates a new wave or game-over event
func NewGameEvent(eventType Type, source interface{}, tick uint64, wave, asteroids int, score uint64) *GameEvent {
	return &GameEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
			Tick:      tick,
		},
		Wave:      wave,
		Asteroids: asteroids,
		Score:     score,
	}
}
