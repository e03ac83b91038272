package app

import (
	"context"

	"github.com/CDXX710/GameDAC-Animation/internal/domain"
	"github.com/CDXX710/GameDAC-Animation/internal/ports"
)

// Setup step names, in the order they run.
const (
	StepRegisterGame  = "register_game"
	StepRegisterEvent = "register_event"
	StepBindEvent     = "bind_event"
)

// SetupReport records the outcome of each setup step.
// A nil entry means the request reached the daemon.
type SetupReport struct {
	Steps  []string
	Errors map[string]error
}

// OK returns true if every step reached the daemon.
func (r SetupReport) OK() bool {
	return len(r.Errors) == 0
}

// Registrar performs the one-time GameSense setup for an identity.
type Registrar struct {
	identity domain.Identity
	client   ports.GameSense
	logger   ports.Logger
}

// NewRegistrar creates a registrar for identity.
func NewRegistrar(identity domain.Identity, client ports.GameSense, logger ports.Logger) *Registrar {
	return &Registrar{
		identity: identity,
		client:   client,
		logger:   logger,
	}
}

// Register registers the game, registers the event, then binds the event to
// the screen. Each call is attempted exactly once and in that order; a failed
// call is logged and the next one still runs. Nothing verifies that earlier
// steps succeeded, so the binding can target an event the daemon never
// accepted. Once ctx is canceled no further step is attempted.
func (r *Registrar) Register(ctx context.Context) SetupReport {
	steps := []struct {
		name string
		call func(context.Context) error
	}{
		{StepRegisterGame, func(ctx context.Context) error {
			return r.client.RegisterGame(ctx, r.identity.Metadata())
		}},
		{StepRegisterEvent, func(ctx context.Context) error {
			return r.client.RegisterEvent(ctx, r.identity.Registration())
		}},
		{StepBindEvent, func(ctx context.Context) error {
			return r.client.BindEvent(ctx, r.identity.ScreenBinding())
		}},
	}

	report := SetupReport{Errors: map[string]error{}}
	for _, s := range steps {
		if ctx.Err() != nil {
			break
		}
		report.Steps = append(report.Steps, s.name)
		if err := s.call(ctx); err != nil {
			if ctx.Err() != nil {
				break
			}
			r.logger.Error("setup step failed",
				ports.String("step", s.name),
				ports.String("game", r.identity.Game),
				ports.String("event", r.identity.Event),
				ports.Err(err),
			)
			report.Errors[s.name] = err
			continue
		}
		r.logger.Debug("setup step done", ports.String("step", s.name))
	}
	return report
}
