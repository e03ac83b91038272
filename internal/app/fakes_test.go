package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/CDXX710/GameDAC-Animation/internal/domain"
	"github.com/CDXX710/GameDAC-Animation/internal/ports"
)

// mockLogger implements ports.Logger for testing.
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields ...ports.Field) {}
func (mockLogger) Info(msg string, fields ...ports.Field)  {}
func (mockLogger) Warn(msg string, fields ...ports.Field)  {}
func (mockLogger) Error(msg string, fields ...ports.Field) {}

var errTransport = errors.New("connection refused")

type call struct {
	method string
	value  string
	at     time.Time
}

// fakeGameSense records every call. fail decides per call whether it errors.
type fakeGameSense struct {
	mu     sync.Mutex
	calls  []call
	fail   func(method string, n int) bool
	onSend func(n int)
}

func (f *fakeGameSense) record(method, value string) error {
	f.mu.Lock()
	n := len(f.calls)
	f.calls = append(f.calls, call{method: method, value: value, at: time.Now()})
	fail := f.fail
	f.mu.Unlock()

	if fail != nil && fail(method, n) {
		return errTransport
	}
	return nil
}

func (f *fakeGameSense) RegisterGame(ctx context.Context, md domain.GameMetadata) error {
	return f.record("RegisterGame", md.Game)
}

func (f *fakeGameSense) RegisterEvent(ctx context.Context, reg domain.EventRegistration) error {
	return f.record("RegisterEvent", reg.Event)
}

func (f *fakeGameSense) BindEvent(ctx context.Context, b domain.EventBinding) error {
	return f.record("BindEvent", b.Event)
}

func (f *fakeGameSense) SendEvent(ctx context.Context, ev domain.GameEvent) error {
	err := f.record("SendEvent", ev.Data.Value)
	if f.onSend != nil {
		f.onSend(len(f.Calls()))
	}
	return err
}

func (f *fakeGameSense) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call{}, f.calls...)
}

func (f *fakeGameSense) Values(method string) []string {
	var out []string
	for _, c := range f.Calls() {
		if c.method == method {
			out = append(out, c.value)
		}
	}
	return out
}
