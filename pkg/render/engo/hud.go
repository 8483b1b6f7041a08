// pkg/render/engo/hud.go
package engo

import (
	"fmt"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"github.com/dustin/go-humanize"

	"github.com/opd-ai/go-asteroids/pkg/engine"
)

// HUDSystem shows the score line across the top of the window. Text is
// only drawn once a font has been attached.
type HUDSystem struct {
	score uint64
	wave  int
	state engine.State

	font  *common.Font
	sink  SpriteSink
	text  *sprite
	shown string
	x, y  float32
}

// NewHUDSystem creates a HUD with nothing to show yet
func NewHUDSystem() *HUDSystem {
	return &HUDSystem{wave: 1, x: 10, y: 10}
}

// SetScore records the values shown on the next Update
func (hud *HUDSystem) SetScore(score uint64, wave int) {
	hud.score = score
	hud.wave = wave
}

// SetState records the game state, used to show the game over banner
func (hud *HUDSystem) SetState(state engine.State) {
	hud.state = state
}

// StatusLine returns the text the HUD displays
func (hud *HUDSystem) StatusLine() string {
	line := fmt.Sprintf("WAVE %d   SCORE %s", hud.wave, humanize.Comma(int64(hud.score)))
	if hud.state == engine.GameOver {
		line += "   GAME OVER"
	}
	return line
}

// SetFont attaches a preloaded font and the sink its text entity goes to
func (hud *HUDSystem) SetFont(sink SpriteSink, font *common.Font) {
	hud.sink = sink
	hud.font = font
}

// Update satisfies the ecs.System interface
func (hud *HUDSystem) Update(dt float32) {
	if hud.font == nil || hud.sink == nil {
		return
	}
	line := hud.StatusLine()
	if hud.text != nil && line == hud.shown {
		return
	}

	if hud.text == nil {
		hud.text = &sprite{BasicEntity: ecs.NewBasic()}
		hud.text.SetZIndex(float32(kindCount))
		hud.text.Position = engo.Point{X: hud.x, Y: hud.y}
		hud.sink.Add(&hud.text.BasicEntity, &hud.text.RenderComponent, &hud.text.SpaceComponent)
	}
	hud.text.Drawable = common.Text{Font: hud.font, Text: line}
	hud.shown = line
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {}
