// pkg/entity/ship_test.go
package entity

import (
	"math"
	"testing"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

func testTuning() physics.ShipTuning {
	return physics.ShipTuning{
		Drag:         0.001,
		AngularDrag:  2,
		Acceleration: 300,
		AngularAccel: 20,
		SpeedLimit:   400,
		AngularLimit: 6,
		DeltaT:       1.0 / 60.0,
		FieldSize:    testField,
	}
}

func TestShip_PhysicsStateRoundTrip(t *testing.T) {
	ship := NewShip(1, physics.Vector2D{X: 10, Y: 20}, 16)
	ship.Velocity = physics.Vector2D{X: 3, Y: 4}
	ship.AngularSpeed = 1.5

	state := ship.PhysicsState()
	if state.Position != ship.Position || state.Velocity != ship.Velocity ||
		state.Angle != ship.Angle || state.AngularSpeed != ship.AngularSpeed {
		t.Fatalf("PhysicsState() = %+v does not match ship", state)
	}

	state.Position = physics.Vector2D{X: 99, Y: 98}
	state.AngularSpeed = -2
	ship.SetPhysicsState(state)
	if ship.Position != state.Position || ship.AngularSpeed != -2 {
		t.Errorf("SetPhysicsState did not apply %+v", state)
	}
}

func TestShip_Step(t *testing.T) {
	tests := []struct {
		name     string
		dead     bool
		controls physics.ShipControls
		moved    bool
	}{
		{"alive_thrusting", false, physics.ShipControls{Thrust: 1}, true},
		{"alive_idle", false, physics.ShipControls{}, false},
		{"dead_thrusting", true, physics.ShipControls{Thrust: 1, Turn: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ship := NewShip(1, physics.Vector2D{X: 400, Y: 300}, 16)
			ship.Dead = tt.dead
			before := *ship

			ship.Step(tt.controls, testTuning())

			moved := ship.Velocity != before.Velocity || ship.Angle != before.Angle
			if moved != tt.moved {
				t.Errorf("moved = %v, want %v (ship %+v)", moved, tt.moved, ship)
			}
		})
	}
}

func TestShip_Nose(t *testing.T) {
	tests := []struct {
		name     string
		position physics.Vector2D
		angle    float64
		expected physics.Vector2D
	}{
		{"facing_right", physics.Vector2D{X: 100, Y: 100}, 0, physics.Vector2D{X: 120, Y: 100}},
		{"facing_up", physics.Vector2D{X: 100, Y: 100}, -math.Pi / 2, physics.Vector2D{X: 100, Y: 80}},
		{"wraps_over_top", physics.Vector2D{X: 100, Y: 5}, -math.Pi / 2, physics.Vector2D{X: 100, Y: 585}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ship := NewShip(1, tt.position, 16)
			ship.Angle = tt.angle

			got := ship.Nose(20, testField)
			if got.Distance(tt.expected) > 1e-9 {
				t.Errorf("Nose() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestShip_KillAndRespawn(t *testing.T) {
	ship := NewShip(1, physics.Vector2D{X: 10, Y: 10}, 16)
	ship.Velocity = physics.Vector2D{X: 50, Y: 0}
	ship.Angle = 2
	ship.AngularSpeed = 3

	ship.Kill(42)
	if !ship.Dead || ship.DiedAt != 42 {
		t.Fatalf("Kill(42) left Dead=%v DiedAt=%d", ship.Dead, ship.DiedAt)
	}

	center := physics.Vector2D{X: 400, Y: 300}
	ship.Respawn(center)

	if ship.Dead {
		t.Error("ship should be alive after Respawn")
	}
	if ship.Position != center || ship.Velocity != physics.Zero {
		t.Errorf("Respawn left position %v velocity %v", ship.Position, ship.Velocity)
	}
	if ship.Angle != SpawnAngle || ship.AngularSpeed != 0 {
		t.Errorf("Respawn left angle %v angular speed %v", ship.Angle, ship.AngularSpeed)
	}
}
