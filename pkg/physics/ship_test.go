// pkg/physics/ship_test.go
package physics

import (
	"math"
	"testing"
)

func testTuning() ShipTuning {
	return ShipTuning{
		Drag:         0.001,
		AngularDrag:  2,
		Acceleration: 50,
		AngularAccel: 20,
		SpeedLimit:   100,
		AngularLimit: 6,
		DeltaT:       1.0 / 60.0,
		FieldSize:    Vector2D{X: 800, Y: 600},
	}
}

func TestAxis(t *testing.T) {
	tests := []struct {
		name     string
		negative bool
		positive bool
		expected float64
	}{
		{"neither", false, false, 0},
		{"positive_only", false, true, 1},
		{"negative_only", true, false, -1},
		{"both_cancel", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Axis(tt.negative, tt.positive); got != tt.expected {
				t.Errorf("Axis(%v, %v) = %v, expected %v", tt.negative, tt.positive, got, tt.expected)
			}
		})
	}
}

func TestStepShip_ThrustScenario(t *testing.T) {
	tuning := testTuning()
	state := &ShipState{Position: tuning.FieldSize.Scale(0.5)}

	for i := 0; i < 300; i++ {
		StepShip(state, ShipControls{Thrust: 1}, tuning)
		if speed := state.Velocity.Length(); speed > tuning.SpeedLimit+1e-9 {
			t.Fatalf("tick %d: speed %v exceeds limit %v", i, speed, tuning.SpeedLimit)
		}
	}

	if speed := state.Velocity.Length(); math.Abs(speed-100) > 1e-6 {
		t.Errorf("Expected speed within epsilon of 100 after 300 ticks, got %v", speed)
	}
}

func TestStepShip_Rotation(t *testing.T) {
	tests := []struct {
		name string
		turn float64
		sign float64
	}{
		{"turn_right", 1, 1},
		{"turn_left", -1, -1},
		{"no_turn", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := testTuning()
			state := &ShipState{Position: Vector2D{X: 10, Y: 10}}

			StepShip(state, ShipControls{Turn: tt.turn}, tuning)

			want := tt.turn * tuning.AngularAccel * tuning.DeltaT
			if math.Abs(state.AngularSpeed-want) > 1e-12 {
				t.Errorf("Expected angular speed %v, got %v", want, state.AngularSpeed)
			}
			if math.Signbit(state.Angle) != math.Signbit(tt.sign) && tt.sign != 0 {
				t.Errorf("Expected heading sign %v, got angle %v", tt.sign, state.Angle)
			}
			if tt.sign == 0 && state.Angle != 0 {
				t.Errorf("Expected no rotation, got angle %v", state.Angle)
			}
		})
	}
}

func TestStepShip_AngularClamp(t *testing.T) {
	tuning := testTuning()
	tuning.AngularDrag = 0
	state := &ShipState{Position: Vector2D{X: 10, Y: 10}}

	for i := 0; i < 1000; i++ {
		StepShip(state, ShipControls{Turn: -1}, tuning)
		if math.Abs(state.AngularSpeed) > tuning.AngularLimit+1e-9 {
			t.Fatalf("tick %d: angular speed %v exceeds limit", i, state.AngularSpeed)
		}
	}
	if state.AngularSpeed != -tuning.AngularLimit {
		t.Errorf("Expected angular speed pinned at %v, got %v", -tuning.AngularLimit, state.AngularSpeed)
	}
}

func TestStepShip_DragWithoutSpeedIsNoop(t *testing.T) {
	tuning := testTuning()
	state := &ShipState{Position: Vector2D{X: 100, Y: 200}}

	StepShip(state, ShipControls{}, tuning)

	if state.Velocity != Zero {
		t.Errorf("Expected zero velocity, got %v", state.Velocity)
	}
	if state.Position != (Vector2D{X: 100, Y: 200}) {
		t.Errorf("Expected ship to stay put, got %v", state.Position)
	}
}

func TestStepShip_DragSlowsShip(t *testing.T) {
	tuning := testTuning()
	state := &ShipState{
		Position: Vector2D{X: 100, Y: 200},
		Velocity: Vector2D{X: 60, Y: -80},
	}

	StepShip(state, ShipControls{}, tuning)

	// |v|=100, drag = 100^2 * 0.001 = 10 per second
	wantSpeed := 100 - 10*tuning.DeltaT
	if got := state.Velocity.Length(); math.Abs(got-wantSpeed) > 1e-9 {
		t.Errorf("Expected speed %v after drag, got %v", wantSpeed, got)
	}
	if dir, _ := state.Velocity.Normalize(); math.Abs(dir.X-0.6) > 1e-9 || math.Abs(dir.Y+0.8) > 1e-9 {
		t.Errorf("Drag must not change direction, got %v", dir)
	}
}

func TestStepShip_BothThrustButtonsCancel(t *testing.T) {
	tuning := testTuning()
	state := &ShipState{Position: Vector2D{X: 100, Y: 200}}

	StepShip(state, ShipControls{Thrust: Axis(true, true)}, tuning)

	if state.Velocity != Zero {
		t.Errorf("Expected no thrust, got velocity %v", state.Velocity)
	}
}

func TestStepShip_ThrustFollowsHeading(t *testing.T) {
	tuning := testTuning()
	state := &ShipState{Position: Vector2D{X: 100, Y: 200}, Angle: math.Pi / 2}

	StepShip(state, ShipControls{Thrust: 1}, tuning)

	if math.Abs(state.Velocity.X) > 1e-9 || state.Velocity.Y <= 0 {
		t.Errorf("Expected velocity along +y, got %v", state.Velocity)
	}

	StepShip(state, ShipControls{Thrust: -1}, tuning)
	StepShip(state, ShipControls{Thrust: -1}, tuning)
	if state.Velocity.Y >= 0 {
		t.Errorf("Expected reverse thrust to push along -y, got %v", state.Velocity)
	}
}

func TestStepShip_WrapsAcrossEdges(t *testing.T) {
	tests := []struct {
		name     string
		position Vector2D
		velocity Vector2D
	}{
		{"right_edge", Vector2D{X: 799.9, Y: 300}, Vector2D{X: 90, Y: 0}},
		{"left_edge", Vector2D{X: 0.1, Y: 300}, Vector2D{X: -90, Y: 0}},
		{"bottom_edge", Vector2D{X: 400, Y: 599.9}, Vector2D{X: 0, Y: 90}},
		{"top_edge", Vector2D{X: 400, Y: 0.1}, Vector2D{X: 0, Y: -90}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := testTuning()
			tuning.Drag = 0
			state := &ShipState{Position: tt.position, Velocity: tt.velocity}

			for i := 0; i < 3; i++ {
				StepShip(state, ShipControls{}, tuning)
				p := state.Position
				if p.X < 0 || p.X >= tuning.FieldSize.X || p.Y < 0 || p.Y >= tuning.FieldSize.Y {
					t.Fatalf("tick %d: position %v left the field", i, p)
				}
			}
		})
	}
}

func TestStepShip_AngleIsNotNormalized(t *testing.T) {
	tuning := testTuning()
	tuning.AngularDrag = 0
	state := &ShipState{Position: Vector2D{X: 10, Y: 10}}

	for i := 0; i < 600; i++ {
		StepShip(state, ShipControls{Turn: 1}, tuning)
	}
	if state.Angle <= 2*math.Pi {
		t.Errorf("Expected angle to accumulate past 2π, got %v", state.Angle)
	}
}

func TestStepShip_ZeroDeltaTime(t *testing.T) {
	tuning := testTuning()
	tuning.DeltaT = 0
	state := &ShipState{
		Position: Vector2D{X: 100, Y: 200},
		Velocity: Vector2D{X: 50, Y: 25},
		Angle:    1.5,
	}
	original := *state

	StepShip(state, ShipControls{Thrust: 1, Turn: 1}, tuning)

	if *state != original {
		t.Errorf("State changed with zero delta time: %+v -> %+v", original, *state)
	}
}
