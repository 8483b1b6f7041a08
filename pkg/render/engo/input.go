// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/input"
)

// buttonState is the part of engo.Button the input system reads
type buttonState interface {
	JustPressed() bool
	JustReleased() bool
}

// actionKeys are the engo keys registered for each action's button
var actionKeys = map[input.Action][]engo.Key{
	input.Forward:  {engo.KeyArrowUp, engo.KeyW},
	input.Backward: {engo.KeyArrowDown, engo.KeyS},
	input.Left:     {engo.KeyArrowLeft, engo.KeyA},
	input.Right:    {engo.KeyArrowRight, engo.KeyD},
	input.Fire:     {engo.KeySpace},
}

// InputSystem turns engo button edges into the key events the game
// consumes. Each action is reported with the first key code bound to it.
type InputSystem struct {
	queue  *event.Queue
	codes  map[input.Action]int
	button func(name string) buttonState
	onQuit func()
}

// NewInputSystem creates an input system feeding queue. Actions with no
// bound key code are ignored.
func NewInputSystem(queue *event.Queue, bindings input.Bindings) *InputSystem {
	codes := make(map[input.Action]int)
	for a, bound := range bindings {
		if len(bound) > 0 {
			codes[a] = bound[0]
		}
	}
	return &InputSystem{
		queue: queue,
		codes: codes,
		button: func(name string) buttonState {
			return engo.Input.Button(name)
		},
	}
}

// OnQuit sets the function called when the quit button is pressed
func (is *InputSystem) OnQuit(fn func()) {
	is.onQuit = fn
}

// Update satisfies the ecs.System interface
func (is *InputSystem) Update(dt float32) {
	if is.onQuit != nil && is.button(quitButton).JustPressed() {
		is.onQuit()
	}
	for _, a := range input.Actions() {
		code, ok := is.codes[a]
		if !ok {
			continue
		}
		b := is.button(a.String())
		if b.JustPressed() {
			is.queue.Push(event.KeyDown{Code: code})
		}
		if b.JustReleased() {
			is.queue.Push(event.KeyUp{Code: code})
		}
	}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// SetupInputBindings registers one engo button per action, named after it
func SetupInputBindings() {
	for _, a := range input.Actions() {
		engo.Input.RegisterButton(a.String(), actionKeys[a]...)
	}
	engo.Input.RegisterButton(quitButton, engo.KeyEscape)
}

const quitButton = "quit"
