// pkg/logging/frame_test.go
package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestFrameTimer_Observe(t *testing.T) {
	tests := []struct {
		name     string
		interval uint64
		tick     uint64
		expected bool
	}{
		{"first_report", 512, 512, true},
		{"between_reports", 512, 513, false},
		{"tick_zero", 512, 0, true},
		{"later_report", 512, 2048, true},
		{"disabled", 0, 512, false},
		{"every_tick", 1, 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := &Logger{slog.New(slog.NewJSONHandler(&buf, nil))}
			timer := &FrameTimer{Logger: logger, Interval: tt.interval}

			got := timer.Observe(context.Background(), tt.tick, time.Millisecond, time.Millisecond)
			if got != tt.expected {
				t.Errorf("Observe(%d) = %v, want %v", tt.tick, got, tt.expected)
			}
			if written := buf.Len() > 0; written != tt.expected {
				t.Errorf("record written = %v, want %v", written, tt.expected)
			}
		})
	}
}

func TestFrameTimer_Fields(t *testing.T) {
	var buf bytes.Buffer
	timer := NewFrameTimer(&Logger{slog.New(slog.NewJSONHandler(&buf, nil))})

	if timer.Interval != DefaultFrameInterval {
		t.Fatalf("Interval = %d, want %d", timer.Interval, DefaultFrameInterval)
	}

	timer.Observe(context.Background(), 1024, 1500*time.Microsecond, 2500*time.Microsecond)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse log JSON: %v", err)
	}

	want := map[string]float64{
		"tick":      1024,
		"tick_ms":   1.5,
		"render_ms": 2.5,
		"total_ms":  4,
	}
	for field, value := range want {
		if logEntry[field] != value {
			t.Errorf("%s = %v, want %v", field, logEntry[field], value)
		}
	}
	if !strings.Contains(buf.String(), "frame timing") {
		t.Errorf("unexpected message: %s", buf.String())
	}
}

func TestFrameTimer_NilSafe(t *testing.T) {
	var timer *FrameTimer
	if timer.Observe(context.Background(), 0, 0, 0) {
		t.Error("nil timer should not report")
	}

	noLogger := &FrameTimer{Interval: 1}
	if noLogger.Observe(context.Background(), 1, 0, 0) {
		t.Error("timer without logger should not report")
	}
}
