package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CDXX710/GameDAC-Animation/internal/domain"
)

func mustAnimation(t *testing.T, frames ...domain.Frame) domain.Animation {
	t.Helper()
	a, err := domain.NewAnimation(frames)
	require.NoError(t, err)
	return a
}

type countingEmitter struct {
	sent   []int
	failed []int
}

func (e *countingEmitter) OnFrameSent(index int, frame domain.Frame, d time.Duration) {
	e.sent = append(e.sent, index)
}

func (e *countingEmitter) OnFrameError(index int, frame domain.Frame, err error) {
	e.failed = append(e.failed, index)
}

func TestAnimator_SendsFramesInOrderAndWraps(t *testing.T) {
	gs := &fakeGameSense{}
	cfg := AnimatorConfig{Identity: domain.DefaultIdentity(), Delay: time.Millisecond, MaxCycles: 3}
	a := NewAnimator(cfg, mustAnimation(t, "a", "b", "c"), gs, mockLogger{}, nil)

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c", "a", "b", "c"}, gs.Values("SendEvent"))
	assert.Equal(t, Stats{Sent: 9, Cycles: 3}, a.Stats())
}

func TestAnimator_DelayBetweenSends(t *testing.T) {
	gs := &fakeGameSense{}
	delay := 20 * time.Millisecond
	cfg := AnimatorConfig{Identity: domain.DefaultIdentity(), Delay: delay, MaxCycles: 2}
	a := NewAnimator(cfg, mustAnimation(t, "a", "b"), gs, mockLogger{}, nil)

	require.NoError(t, a.Run(context.Background()))

	calls := gs.Calls()
	require.Len(t, calls, 4)
	for i := 1; i < len(calls); i++ {
		gap := calls[i].at.Sub(calls[i-1].at)
		if gap < delay {
			t.Errorf("gap between send %d and %d = %v, want >= %v", i-1, i, gap, delay)
		}
	}
}

func TestAnimator_FailuresAreSkipped(t *testing.T) {
	gs := &fakeGameSense{fail: func(_ string, n int) bool { return n%2 == 0 }}
	em := &countingEmitter{}
	cfg := AnimatorConfig{Identity: domain.DefaultIdentity(), Delay: time.Millisecond, MaxCycles: 2}
	a := NewAnimator(cfg, mustAnimation(t, "a", "b", "c"), gs, mockLogger{}, em)

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, gs.Values("SendEvent"))
	assert.Equal(t, []int{0, 2, 1}, em.failed)
	assert.Equal(t, []int{1, 0, 2}, em.sent)
	assert.Equal(t, Stats{Sent: 3, Failed: 3, Cycles: 2}, a.Stats())
}

func TestAnimator_CancelStopsWithoutFurtherSends(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gs := &fakeGameSense{}
	cfg := AnimatorConfig{Identity: domain.DefaultIdentity(), Delay: time.Hour}
	a := NewAnimator(cfg, mustAnimation(t, "a", "b"), gs, mockLogger{}, nil)

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	// With an hour-long delay only the first frame goes out before we cancel.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, []string{"a"}, gs.Values("SendEvent"))
}

func TestAnimator_CancelDuringSend(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gs := &fakeGameSense{onSend: func(int) { cancel() }}
	cfg := AnimatorConfig{Identity: domain.DefaultIdentity(), Delay: time.Hour}
	a := NewAnimator(cfg, mustAnimation(t, "a", "b"), gs, mockLogger{}, nil)

	assert.NoError(t, a.Run(ctx))
	assert.Equal(t, []string{"a"}, gs.Values("SendEvent"))
	assert.Equal(t, uint64(1), a.Stats().Sent)
}

func TestAnimator_CanceledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gs := &fakeGameSense{}
	a := NewAnimator(AnimatorConfig{Identity: domain.DefaultIdentity()}, mustAnimation(t, "a"), gs, mockLogger{}, nil)

	assert.NoError(t, a.Run(ctx))
	assert.Empty(t, gs.Calls())
}

func TestNewAnimator_DefaultDelay(t *testing.T) {
	a := NewAnimator(AnimatorConfig{}, mustAnimation(t, "a"), &fakeGameSense{}, mockLogger{}, nil)
	assert.Equal(t, DefaultFrameDelay, a.config.Delay)
}
