package app

import (
	"context"
	"time"

	"github.com/CDXX710/GameDAC-Animation/internal/domain"
	"github.com/CDXX710/GameDAC-Animation/internal/ports"
)

// DefaultFrameDelay is the pause after each frame.
const DefaultFrameDelay = 500 * time.Millisecond

// AnimatorConfig contains configuration for the animation loop.
type AnimatorConfig struct {
	Identity domain.Identity
	Delay    time.Duration

	// MaxCycles stops the loop after this many full passes. Zero runs forever.
	MaxCycles int
}

// FrameEmitter is called after every frame send.
type FrameEmitter interface {
	OnFrameSent(index int, frame domain.Frame, duration time.Duration)
	OnFrameError(index int, frame domain.Frame, err error)
}

// Stats counts what the animator has done so far.
type Stats struct {
	Sent   uint64
	Failed uint64
	Cycles uint64
}

// Animator posts animation frames to the daemon one by one, forever.
type Animator struct {
	config    AnimatorConfig
	animation domain.Animation
	client    ports.GameSense
	logger    ports.Logger
	emitter   FrameEmitter
	stats     Stats
}

// NewAnimator creates an animator. A non-positive delay falls back to
// DefaultFrameDelay. emitter may be nil.
func NewAnimator(
	config AnimatorConfig,
	animation domain.Animation,
	client ports.GameSense,
	logger ports.Logger,
	emitter FrameEmitter,
) *Animator {
	if config.Delay <= 0 {
		config.Delay = DefaultFrameDelay
	}
	return &Animator{
		config:    config,
		animation: animation,
		client:    client,
		logger:    logger,
		emitter:   emitter,
	}
}

// Run sends frames in order, wrapping to the first after the last, waiting
// Delay after every send. A failed send is logged and the schedule carries on.
// Run returns nil when ctx is canceled or MaxCycles passes are done; once
// cancellation is seen no further frame is sent.
func (a *Animator) Run(ctx context.Context) error {
	a.logger.Info("Animating OLED.. Press Ctrl+C to stop.",
		ports.Int("frames", a.animation.Len()),
		ports.Duration("delay", a.config.Delay),
	)

	timer := time.NewTimer(a.config.Delay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	n := a.animation.Len()
	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		idx := i % n
		a.sendFrame(ctx, idx)

		if idx == n-1 {
			a.stats.Cycles++
			if a.config.MaxCycles > 0 && a.stats.Cycles >= uint64(a.config.MaxCycles) {
				return nil
			}
		}

		timer.Reset(a.config.Delay)
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
	}
}

// sendFrame posts frame idx and records the outcome.
func (a *Animator) sendFrame(ctx context.Context, idx int) {
	frame := a.animation.At(idx)

	start := time.Now()
	err := a.client.SendEvent(ctx, a.config.Identity.FrameEvent(frame))
	duration := time.Since(start)

	if err != nil {
		// Cancellation during an in-flight request is not a send failure.
		if ctx.Err() != nil {
			return
		}
		a.stats.Failed++
		a.logger.Error("frame send failed",
			ports.Int("frame", idx),
			ports.Err(err),
		)
		if a.emitter != nil {
			a.emitter.OnFrameError(idx, frame, err)
		}
		return
	}

	a.stats.Sent++
	a.logger.Debug("frame sent",
		ports.Int("frame", idx),
		ports.Duration("duration", duration),
	)
	if a.emitter != nil {
		a.emitter.OnFrameSent(idx, frame, duration)
	}
}

// Stats returns the counters. Call it after Run returns.
func (a *Animator) Stats() Stats {
	return a.stats
}
