// pkg/render/renderer_test.go
package render

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// recordingRenderer remembers the order of calls
type recordingRenderer struct {
	calls []string
}

func (r *recordingRenderer) Clear()                   { r.calls = append(r.calls, "clear") }
func (r *recordingRenderer) Present()                 { r.calls = append(r.calls, "present") }
func (r *recordingRenderer) RenderLives(lives uint64) { r.calls = append(r.calls, fmt.Sprintf("lives %d", lives)) }
func (r *recordingRenderer) RenderShip(_ *entity.Ship, thrusting bool) {
	r.calls = append(r.calls, fmt.Sprintf("ship %v", thrusting))
}
func (r *recordingRenderer) RenderBullet(*entity.Bullet)     { r.calls = append(r.calls, "bullet") }
func (r *recordingRenderer) RenderAsteroid(*entity.Asteroid) { r.calls = append(r.calls, "asteroid") }
func (r *recordingRenderer) RenderExplosion(_ *entity.Explosion, tick uint64) {
	r.calls = append(r.calls, fmt.Sprintf("explosion %d", tick))
}
func (r *recordingRenderer) RenderScore(score uint64, wave int) {
	r.calls = append(r.calls, fmt.Sprintf("score %d %d", score, wave))
}

func testSnapshot() *engine.Snapshot {
	return &engine.Snapshot{
		Tick:      12,
		Score:     340,
		Lives:     2,
		Wave:      3,
		FieldSize: physics.Vector2D{X: 1280, Y: 720},
		Thrusting: true,
		Ship:      *entity.NewShip(1, physics.Vector2D{X: 640, Y: 360}, 16),
		Bullets:   []entity.Bullet{{Expires: 20}},
		Asteroids: []entity.Asteroid{
			*entity.NewAsteroid(2, physics.Vector2D{X: 100, Y: 100}, physics.Zero, 0, 0, 30, 5),
			*entity.NewAsteroid(3, physics.Vector2D{X: 900, Y: 500}, physics.Zero, 0, 0, 30, 7),
		},
		Explosions: []entity.Explosion{*entity.NewExplosion(physics.Vector2D{X: 50, Y: 50}, 10, 40)},
	}
}

func TestFrame_DrawOrder(t *testing.T) {
	rec := &recordingRenderer{}

	Frame(rec, testSnapshot())

	want := []string{
		"clear",
		"lives 2",
		"ship true",
		"bullet",
		"asteroid",
		"asteroid",
		"explosion 12",
		"score 340 3",
		"present",
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestFrame_SkipsDeadShip(t *testing.T) {
	rec := &recordingRenderer{}
	snap := testSnapshot()
	snap.Ship.Dead = true

	Frame(rec, snap)

	for _, call := range rec.calls {
		if strings.HasPrefix(call, "ship") {
			t.Fatalf("dead ship was drawn: %v", rec.calls)
		}
	}
}

func TestNullRenderer_LogsCalls(t *testing.T) {
	t.Setenv(logging.LevelEnv, "DEBUG")
	var buf bytes.Buffer
	renderer := NewNullRenderer(logging.NewLoggerWithWriter(&buf))

	Frame(renderer, testSnapshot())

	output := buf.String()
	for _, msg := range []string{
		"Clear called",
		"RenderLives called",
		"RenderShip called",
		"RenderBullet called",
		"RenderAsteroid called",
		"RenderExplosion called",
		"RenderScore called",
		"Present called",
	} {
		if !strings.Contains(output, msg) {
			t.Errorf("Expected log to contain %q", msg)
		}
	}
}

func TestNullRenderer_NilEntities(t *testing.T) {
	t.Setenv(logging.LevelEnv, "DEBUG")
	var buf bytes.Buffer
	renderer := NewNullRenderer(logging.NewLoggerWithWriter(&buf))

	renderer.RenderShip(nil, false)
	renderer.RenderBullet(nil)
	renderer.RenderAsteroid(nil)
	renderer.RenderExplosion(nil, 0)

	if got := strings.Count(buf.String(), "with nil"); got != 4 {
		t.Errorf("logged %d nil calls, want 4", got)
	}
}

func TestNullRenderer_NilLogger(t *testing.T) {
	renderer := NewNullRenderer(nil)
	Frame(renderer, testSnapshot())
}
