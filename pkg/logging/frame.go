// pkg/logging/frame.go
package logging

import (
	"context"
	"time"
)

// DefaultFrameInterval is how many ticks pass between timing reports
const DefaultFrameInterval = 512

// FrameTimer reports simulation and render cost every Interval ticks
type FrameTimer struct {
	Logger   *Logger
	Interval uint64
}

// NewFrameTimer creates a timer reporting every DefaultFrameInterval ticks
func NewFrameTimer(logger *Logger) *FrameTimer {
	return &FrameTimer{Logger: logger, Interval: DefaultFrameInterval}
}

// Observe logs the timings for tick when it falls on the interval.
// It reports whether a record was written.
func (f *FrameTimer) Observe(ctx context.Context, tick uint64, tickTime, renderTime time.Duration) bool {
	if f == nil || f.Logger == nil || f.Interval == 0 || tick%f.Interval != 0 {
		return false
	}
	f.Logger.Info(ctx, "frame timing",
		"tick", tick,
		"tick_ms", durationMillis(tickTime),
		"render_ms", durationMillis(renderTime),
		"total_ms", durationMillis(tickTime+renderTime),
	)
	return true
}

func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
