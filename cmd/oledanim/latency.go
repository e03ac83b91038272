package main

import (
	"time"

	"github.com/CDXX710/GameDAC-Animation/internal/domain"
)

// latencyTracker records round-trip times of successful frame sends.
type latencyTracker struct {
	sent  int64
	total time.Duration
	max   time.Duration
}

func (l *latencyTracker) OnFrameSent(index int, frame domain.Frame, duration time.Duration) {
	l.sent++
	l.total += duration
	if duration > l.max {
		l.max = duration
	}
}

func (l *latencyTracker) OnFrameError(index int, frame domain.Frame, err error) {}

// Average returns the mean send latency, or zero if nothing was sent.
func (l *latencyTracker) Average() time.Duration {
	if l.sent == 0 {
		return 0
	}
	return l.total / time.Duration(l.sent)
}
