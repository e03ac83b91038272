package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	httpAdapter "github.com/CDXX710/GameDAC-Animation/internal/adapters/http"
	"github.com/CDXX710/GameDAC-Animation/internal/app"
	"github.com/CDXX710/GameDAC-Animation/internal/cliconfig"
	"github.com/CDXX710/GameDAC-Animation/internal/coreprops"
	"github.com/CDXX710/GameDAC-Animation/internal/domain"
	"github.com/CDXX710/GameDAC-Animation/internal/ports"
)

// run resolves the daemon, registers with it and animates until ctx ends.
// Only a failure to find the daemon is returned as an error.
func run(ctx context.Context, cfg cliconfig.Config, logger ports.Logger) error {
	animation, err := domain.NewAnimation(cfg.Frames)
	if err != nil {
		return err
	}

	address, err := resolveAddress(ctx, cfg, logger)
	if err != nil {
		if ctx.Err() != nil {
			logger.Info("[USER] Stopped before SteelSeries Engine was found.")
			return nil
		}
		logger.Error("failed to get GameSense address", ports.Err(err))
		return err
	}
	logger.Info("found GameSense", ports.String("address", address))

	client := httpAdapter.NewGameSenseClient(address, &http.Client{Timeout: cfg.HTTPTimeout}, logger)
	identity := cfg.Identity()

	start := time.Now()
	report := app.NewRegistrar(identity, client, logger).Register(ctx)
	if ctx.Err() != nil {
		logger.Info("[USER] Stopped the animation.", ports.Duration("ran_for", time.Since(start)))
		return nil
	}
	logger.Debug("setup finished", ports.Bool("ok", report.OK()))
	if !report.OK() {
		logger.Warn("setup incomplete, animating anyway", ports.Int("failed_steps", len(report.Errors)))
	}

	latency := &latencyTracker{}
	animator := app.NewAnimator(app.AnimatorConfig{
		Identity:  identity,
		Delay:     cfg.Delay,
		MaxCycles: cfg.Cycles,
	}, animation, client, logger, latency)

	if err := animator.Run(ctx); err != nil {
		return err
	}

	stats := animator.Stats()
	msg := "animation finished"
	if ctx.Err() != nil {
		msg = "[USER] Stopped the animation."
	}
	logger.Info(msg,
		ports.Uint64("frames_sent", stats.Sent),
		ports.Uint64("frames_failed", stats.Failed),
		ports.Uint64("cycles", stats.Cycles),
		ports.Duration("avg_latency", latency.Average()),
		ports.Duration("max_latency", latency.max),
		ports.Duration("ran_for", time.Since(start)),
	)
	return nil
}

// resolveAddress returns the daemon base URL from --address or coreProps.json.
func resolveAddress(ctx context.Context, cfg cliconfig.Config, logger ports.Logger) (string, error) {
	if cfg.Address != "" {
		return coreprops.BaseURL(cfg.Address), nil
	}

	path := cfg.CorePropsPath
	if path == "" {
		p, err := coreprops.DefaultPath()
		if err != nil {
			return "", err
		}
		path = p
	}

	if cfg.WaitForEngine {
		addr, err := coreprops.Wait(ctx, path, logger)
		if err != nil && !errors.Is(err, context.Canceled) {
			return "", fmt.Errorf("wait for %s: %w", path, err)
		}
		return addr, err
	}
	return coreprops.Resolve(path)
}
