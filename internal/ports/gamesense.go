package ports

import (
	"context"

	"github.com/CDXX710/GameDAC-Animation/internal/domain"
)

// GameSense is the subset of the SteelSeries GameSense REST API used to drive
// an OLED screen. Every method is a single POST; implementations do not retry.
type GameSense interface {
	// RegisterGame announces the game to the daemon.
	RegisterGame(ctx context.Context, md domain.GameMetadata) error

	// RegisterEvent registers an event under a game.
	RegisterEvent(ctx context.Context, reg domain.EventRegistration) error

	// BindEvent attaches handlers (device, zone, mode) to an event.
	BindEvent(ctx context.Context, binding domain.EventBinding) error

	// SendEvent triggers an event with a value.
	SendEvent(ctx context.Context, ev domain.GameEvent) error
}
