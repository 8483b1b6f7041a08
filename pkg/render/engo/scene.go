// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"github.com/dustin/go-humanize"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

// GameScene runs a game inside engo. Every engo frame becomes one
// simulation tick followed by a redraw.
type GameScene struct {
	game   *engine.Game
	queue  *event.Queue
	logger *logging.Logger
	ctx    context.Context

	// FontURL names a TrueType font to load for the HUD. Without one the
	// HUD stays hidden.
	FontURL string

	// Rendering components
	renderer *EngoRenderer
	camera   *Camera
	input    *InputSystem
	hud      *HUDSystem
	frames   *logging.FrameTimer

	subs []*event.Subscription
}

// NewGameScene creates a scene driving game. A nil logger discards output.
func NewGameScene(game *engine.Game, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	cfg := game.Config()
	queue := event.NewQueue()
	return &GameScene{
		game:   game,
		queue:  queue,
		logger: logger,
		ctx:    logging.WithCorrelationID(context.Background(), logging.GenerateCorrelationID()),
		camera: NewCamera(cfg.Physics.FieldSize),
		input:  NewInputSystem(queue, cfg.Keys),
		hud:    NewHUDSystem(),
		frames: logging.NewFrameTimer(logger),
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "AsteroidsScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {
	if scene.FontURL == "" {
		return
	}
	if err := engo.Files.Load(scene.FontURL); err != nil {
		scene.logger.Error(scene.ctx, "failed to load font", err, "url", scene.FontURL)
		scene.FontURL = ""
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		panic("engo updater is not an *ecs.World")
	}
	common.SetBackground(color.Black)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	SetupInputBindings()
	scene.input.OnQuit(engo.Exit)
	world.AddSystem(scene.input)
	world.AddSystem(scene)
	world.AddSystem(scene.hud)

	scene.attach(renderSystem, engo.GameWidth(), engo.GameHeight())
	scene.loadFont(renderSystem)

	engo.Mailbox.Listen(engo.WindowResizeMessage{}.Type(), func(msg engo.Message) {
		if resize, ok := msg.(engo.WindowResizeMessage); ok {
			scene.camera.Fit(float32(resize.NewWidth), float32(resize.NewHeight))
		}
	})
}

// attach wires the renderer to sink for a window of the given size and
// subscribes to game events
func (scene *GameScene) attach(sink SpriteSink, width, height float32) {
	scene.camera.Fit(width, height)
	scene.renderer = NewEngoRenderer(sink, scene.camera, DefaultPalette(), scene.hud)
	scene.subscribeToEvents()
}

func (scene *GameScene) loadFont(sink SpriteSink) {
	if scene.FontURL == "" {
		return
	}
	font := &common.Font{URL: scene.FontURL, FG: DefaultPalette().Text, Size: 24}
	if err := font.CreatePreloaded(); err != nil {
		scene.logger.Error(scene.ctx, "failed to create font", err, "url", scene.FontURL)
		return
	}
	scene.hud.SetFont(sink, font)
}

// subscribeToEvents sets up event handlers
func (scene *GameScene) subscribeToEvents() {
	bus := scene.game.EventBus()
	scene.subs = append(scene.subs,
		bus.Subscribe(event.WaveStarted, func(e event.Event) {
			if ge, ok := e.(*event.GameEvent); ok {
				scene.logger.Info(scene.ctx, "wave started",
					"wave", ge.Wave,
					"asteroids", ge.Asteroids,
				)
			}
		}),
		bus.Subscribe(event.GameOver, func(e event.Event) {
			if ge, ok := e.(*event.GameEvent); ok {
				scene.logger.Info(scene.ctx, "game over",
					"score", humanize.Comma(int64(ge.Score)),
					"wave", ge.Wave,
				)
			}
		}),
	)
}

// Queue returns the queue host events are fed through
func (scene *GameScene) Queue() *event.Queue {
	return scene.queue
}

// Update satisfies the ecs.System interface; it advances the game one
// tick per frame
func (scene *GameScene) Update(dt float32) {
	scene.Step()
}

// Step queues an animation frame, processes everything pending and draws
// the result
func (scene *GameScene) Step() {
	start := time.Now()
	scene.queue.Push(event.AnimationFrame{})
	scene.game.Process(scene.queue)
	tickTime := time.Since(start)

	start = time.Now()
	snap := scene.game.Snapshot()
	if scene.renderer != nil {
		render.Frame(scene.renderer, snap)
	}
	scene.hud.SetState(snap.State)
	scene.frames.Observe(scene.ctx, snap.Tick, tickTime, time.Since(start))
}

// Remove satisfies the ecs.System interface
func (scene *GameScene) Remove(basic ecs.BasicEntity) {}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	for _, sub := range scene.subs {
		sub.Cancel()
	}
	scene.subs = nil
	if scene.renderer != nil {
		scene.renderer.Release()
	}
}
