// pkg/tui/host.go
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/input"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

// Defaults for Options
const (
	DefaultFrameTime = 16 * time.Millisecond
	// DefaultHoldTime outlasts the usual terminal auto-repeat delay
	DefaultHoldTime = 550 * time.Millisecond
)

// Options configures a Host
type Options struct {
	// FrameTime is the wall time between ticks
	FrameTime time.Duration
	// HoldTime is how long a key counts as held after its last report.
	// Terminals send no release events, so releases are synthesised.
	HoldTime time.Duration
	Logger   *logging.Logger
}

// Host runs a game in a terminal. Key presses are fed through the queue,
// one tick is processed per frame and the field is drawn below a status
// row.
type Host struct {
	screen   tcell.Screen
	game     *engine.Game
	queue    *event.Queue
	renderer *render.TerminalRenderer
	frames   *logging.FrameTimer
	logger   *logging.Logger
	ctx      context.Context
	opts     Options

	// held maps key codes to when they were last reported
	held map[int]time.Time
	// taps are released right after the tick that sees them
	taps    map[int]bool
	pending []int

	now func() time.Time
}

// NewHost creates a host drawing game on screen. The screen must already
// be initialised.
func NewHost(screen tcell.Screen, game *engine.Game, opts Options) *Host {
	if opts.FrameTime <= 0 {
		opts.FrameTime = DefaultFrameTime
	}
	if opts.HoldTime <= 0 {
		opts.HoldTime = DefaultHoldTime
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewDiscardLogger()
	}

	taps := make(map[int]bool)
	cfg := game.Config()
	for _, code := range cfg.Keys[input.Fire] {
		taps[code] = true
	}

	h := &Host{
		screen: screen,
		game:   game,
		queue:  event.NewQueue(),
		frames: logging.NewFrameTimer(opts.Logger),
		logger: opts.Logger,
		ctx:    logging.WithCorrelationID(context.Background(), logging.GenerateCorrelationID()),
		opts:   opts,
		held:   make(map[int]time.Time),
		taps:   taps,
		now:    time.Now,
	}
	h.resize()
	return h
}

// resize fits the renderer to the screen, keeping the bottom row for status
func (h *Host) resize() {
	w, rows := h.screen.Size()
	cfg := h.game.Config()
	h.renderer = render.NewTerminalRenderer(w, rows-1, cfg.Physics.FieldSize, nil)
}

// Run loops until the player quits or ctx is cancelled. It returns nil
// on a quit key and ctx.Err() on cancellation.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.opts.FrameTime)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	h.logger.Info(h.ctx, "terminal host started", "frame_ms", h.opts.FrameTime.Milliseconds())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if h.handleEvent(ev) {
				h.logger.Info(h.ctx, "player quit",
					"score", h.game.Score(),
					"wave", h.game.Wave(),
				)
				return nil
			}
		case <-ticker.C:
			h.Frame()
		}
	}
}

// handleEvent queues key presses and reports whether the player quit
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return true
		}
		code, ok := KeyCode(ev)
		if !ok {
			return false
		}
		h.queue.Push(event.KeyDown{Code: code, Modifiers: Modifiers(ev)})
		if h.taps[code] {
			h.pending = append(h.pending, code)
		} else {
			h.held[code] = h.now()
		}
	case *tcell.EventResize:
		h.resize()
		h.screen.Sync()
	}
	return false
}

// Frame releases stale keys, advances one tick and redraws
func (h *Host) Frame() {
	start := h.now()
	h.releaseStale(start)
	h.queue.Push(event.AnimationFrame{})
	h.game.Process(h.queue)
	h.releaseTaps()
	tickTime := h.now().Sub(start)

	start = h.now()
	snap := h.game.Snapshot()
	render.Frame(h.renderer, snap)
	h.draw(snap)
	h.frames.Observe(h.ctx, snap.Tick, tickTime, h.now().Sub(start))
}

// releaseStale queues a release for every held key not reported within
// HoldTime of now
func (h *Host) releaseStale(now time.Time) {
	for code, seen := range h.held {
		if now.Sub(seen) >= h.opts.HoldTime {
			h.queue.Push(event.KeyUp{Code: code})
			delete(h.held, code)
		}
	}
}

// releaseTaps queues releases for tapped keys the last tick consumed
func (h *Host) releaseTaps() {
	for _, code := range h.pending {
		h.queue.Push(event.KeyUp{Code: code})
	}
	h.pending = h.pending[:0]
}

// draw copies the rendered field and the status row to the screen
func (h *Host) draw(snap *engine.Snapshot) {
	h.screen.Clear()
	for y, line := range h.renderer.Lines() {
		x := 0
		for _, ch := range line {
			if ch != render.GlyphEmpty {
				h.screen.SetContent(x, y, ch, nil, glyphStyle(ch))
			}
			x++
		}
	}

	_, rows := h.screen.Size()
	status := StatusLine(snap)
	for x, ch := range []rune(status) {
		h.screen.SetContent(x, rows-1, ch, nil, statusStyle)
	}
	h.screen.Show()
}

// StatusLine summarises the snapshot for the bottom row
func StatusLine(snap *engine.Snapshot) string {
	line := fmt.Sprintf("SCORE %s  WAVE %d  LIVES %d  TICK %s",
		humanize.Comma(int64(snap.Score)), snap.Wave, snap.Lives, humanize.Comma(int64(snap.Tick)))
	switch snap.State {
	case engine.ShipDestroyed:
		line += "  RESPAWNING"
	case engine.GameOver:
		line += "  GAME OVER (q to quit)"
	}
	return line
}

var (
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	glyphStyles = map[rune]tcell.Style{
		render.GlyphAsteroid:  tcell.StyleDefault.Foreground(tcell.NewRGBColor(170, 170, 170)),
		render.GlyphBullet:    tcell.StyleDefault.Foreground(tcell.ColorYellow),
		render.GlyphExplosion: tcell.StyleDefault.Foreground(tcell.ColorRed),
		render.GlyphFlare:     tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 160, 32)),
	}
)

// glyphStyle picks the colour for a rendered cell; ship arrows, lives
// and text use the default
func glyphStyle(ch rune) tcell.Style {
	if style, ok := glyphStyles[ch]; ok {
		return style
	}
	return tcell.StyleDefault.Foreground(tcell.ColorWhite)
}

// Queue returns the queue key events are fed through
func (h *Host) Queue() *event.Queue {
	return h.queue
}
