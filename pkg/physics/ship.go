// pkg/physics/ship.go
package physics

// ShipTuning holds the integrator constants for the player ship
type ShipTuning struct {
	Drag         float64
	AngularDrag  float64
	Acceleration float64
	AngularAccel float64
	SpeedLimit   float64
	AngularLimit float64
	DeltaT       float64
	FieldSize    Vector2D
}

// ShipControls is the resolved control input for one tick.
// Thrust and Turn are each -1, 0 or 1.
type ShipControls struct {
	Thrust float64
	Turn   float64 // negative turns left
}

// Axis resolves a pair of opposing buttons: pressing exactly one of them
// yields -1 or 1, pressing both or neither yields 0.
func Axis(negative, positive bool) float64 {
	switch {
	case positive && !negative:
		return 1
	case negative && !positive:
		return -1
	default:
		return 0
	}
}

// ShipState tracks ship physics
type ShipState struct {
	Position     Vector2D
	Velocity     Vector2D
	Angle        float64 // radians, never normalized
	AngularSpeed float64
}

// StepShip advances the ship by one tick. The order of the stages is fixed:
// drag, angular drag, thrust, steering, clamping, wrap, integration.
func StepShip(state *ShipState, controls ShipControls, tuning ShipTuning) {
	dt := tuning.DeltaT

	// drag opposes motion, quadratic in speed
	drag := state.Velocity.LengthSquared() * tuning.Drag
	dir, _ := state.Velocity.Normalize()
	state.Velocity = state.Velocity.Sub(dir.Scale(drag * dt))

	state.AngularSpeed -= state.AngularSpeed * tuning.AngularDrag * dt

	if controls.Thrust != 0 {
		accel := UnitX.Scale(controls.Thrust * tuning.Acceleration * dt).Rotate(state.Angle)
		state.Velocity = state.Velocity.Add(accel)
	}

	if controls.Turn != 0 {
		state.AngularSpeed += controls.Turn * tuning.AngularAccel * dt
	}

	if speed := state.Velocity.Length(); speed > tuning.SpeedLimit {
		state.Velocity = state.Velocity.Scale(tuning.SpeedLimit / speed)
	}
	state.AngularSpeed = clamp(state.AngularSpeed, -tuning.AngularLimit, tuning.AngularLimit)

	state.Position.RemEuclid(tuning.FieldSize)

	state.Position = state.Position.Add(state.Velocity.Scale(dt))
	state.Angle += state.AngularSpeed * dt

	// keep the stored position on the torus between ticks
	state.Position.RemEuclid(tuning.FieldSize)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
