// pkg/entity/weapon_test.go
package entity

import (
	"math"
	"testing"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

func newTestGun() *Gun {
	return &Gun{
		Cooldown:     8,
		Speed:        600,
		Lifetime:     60,
		Radius:       2,
		MuzzleOffset: 20,
	}
}

func TestGun_Fire(t *testing.T) {
	gun := newTestGun()
	ship := NewShip(1, physics.Vector2D{X: 400, Y: 300}, 16)
	ship.Angle = 0
	ship.Velocity = physics.Vector2D{X: 10, Y: 5}

	bullet := gun.Fire(7, ship, 100, testField)
	if bullet == nil {
		t.Fatal("Fire() returned nil on a ready gun")
	}

	if bullet.ID != 7 {
		t.Errorf("ID = %d, want 7", bullet.ID)
	}
	if bullet.Position.Distance(physics.Vector2D{X: 420, Y: 300}) > 1e-9 {
		t.Errorf("Position = %v, want the nose at (420, 300)", bullet.Position)
	}
	if bullet.Velocity.Distance(physics.Vector2D{X: 610, Y: 5}) > 1e-9 {
		t.Errorf("Velocity = %v, want ship velocity plus muzzle speed", bullet.Velocity)
	}
	if bullet.Expires != 160 {
		t.Errorf("Expires = %d, want 160", bullet.Expires)
	}
	if bullet.Radius != 2 {
		t.Errorf("Radius = %v, want 2", bullet.Radius)
	}
}

func TestGun_Cooldown(t *testing.T) {
	tests := []struct {
		name   string
		second uint64
		fires  bool
	}{
		{"same_tick", 10, false},
		{"inside_cooldown", 17, false},
		{"cooldown_elapsed", 18, true},
		{"long_after", 500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gun := newTestGun()
			ship := NewShip(1, physics.Vector2D{X: 400, Y: 300}, 16)

			if gun.Fire(1, ship, 10, testField) == nil {
				t.Fatal("first shot should fire")
			}
			got := gun.Fire(2, ship, tt.second, testField) != nil
			if got != tt.fires {
				t.Errorf("second shot at tick %d fired = %v, want %v", tt.second, got, tt.fires)
			}
		})
	}
}

func TestGun_ReadyAtTickZero(t *testing.T) {
	gun := newTestGun()
	if !gun.Ready(0) {
		t.Error("a gun that never fired should be ready")
	}

	ship := NewShip(1, physics.Vector2D{X: 400, Y: 300}, 16)
	gun.Fire(1, ship, 3, testField)
	if gun.Ready(4) {
		t.Error("gun should be cooling down")
	}

	gun.Reset()
	if !gun.Ready(4) {
		t.Error("Reset should make the gun ready")
	}
}

func TestGun_FireWrapsMuzzle(t *testing.T) {
	gun := newTestGun()
	ship := NewShip(1, physics.Vector2D{X: 795, Y: 300}, 16)
	ship.Angle = 0

	bullet := gun.Fire(1, ship, 0, testField)
	if math.Abs(bullet.Position.X-15) > 1e-9 {
		t.Errorf("muzzle should wrap to x=15, got %v", bullet.Position)
	}
}

func TestBullet_Expired(t *testing.T) {
	b := &Bullet{Expires: 10}
	for tick, want := range map[uint64]bool{0: false, 9: false, 10: true, 11: true} {
		if got := b.Expired(tick); got != want {
			t.Errorf("Expired(%d) = %v, want %v", tick, got, want)
		}
	}
}

func TestExplosion_Lifecycle(t *testing.T) {
	e := NewExplosion(physics.Vector2D{X: 1, Y: 2}, 100, 40)

	if e.Lifetime != 140 {
		t.Fatalf("Lifetime = %d, want 140", e.Lifetime)
	}

	tests := []struct {
		tick     uint64
		expired  bool
		progress float64
	}{
		{100, false, 0},
		{110, false, 0.25},
		{139, false, 39.0 / 40.0},
		{140, true, 1},
		{200, true, 1},
	}

	for _, tt := range tests {
		if got := e.Expired(tt.tick); got != tt.expired {
			t.Errorf("Expired(%d) = %v, want %v", tt.tick, got, tt.expired)
		}
		if got := e.Progress(tt.tick); math.Abs(got-tt.progress) > 1e-12 {
			t.Errorf("Progress(%d) = %v, want %v", tt.tick, got, tt.progress)
		}
	}
}
