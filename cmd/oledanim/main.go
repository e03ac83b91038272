package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	logAdapter "github.com/CDXX710/GameDAC-Animation/internal/adapters/log"
	"github.com/CDXX710/GameDAC-Animation/internal/cliconfig"
)

const longHelp = `Animate the OLED screen of a SteelSeries GameDAC through SteelSeries Engine.

oledanim finds the local GameSense address in coreProps.json, registers a
custom game and event, binds the event to the screen and then sends one text
frame after another until you press Ctrl+C.`

var exampleUsage = strings.TrimSpace(`
  oledanim
  oledanim --delay 250ms --cycles 10
  oledanim --address 127.0.0.1:51248 --log-level debug
  oledanim frames --config $HOME/.oledanim/config.toml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "oledanim",
		Short:         "Animate a SteelSeries GameDAC OLED screen",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, cfgPath, &cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			zl, err := logAdapter.NewLogger(cfg.LogLevel, cfg.LogJSON)
			if err != nil {
				return err
			}
			logger := logAdapter.NewZerologAdapterWithLogger(zl)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, logger)
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.oledanim/config.toml)")

	root.Flags().StringVar(&cfg.CorePropsPath, "core-props", cfg.CorePropsPath, "path to SteelSeries Engine coreProps.json (default: platform location)")
	root.Flags().StringVar(&cfg.Address, "address", cfg.Address, "GameSense host:port; skips coreProps.json discovery")
	root.Flags().BoolVar(&cfg.WaitForEngine, "wait-for-engine", cfg.WaitForEngine, "wait for SteelSeries Engine to write coreProps.json instead of exiting")

	root.Flags().StringVar(&cfg.Game, "game", cfg.Game, "GameSense game id")
	root.Flags().StringVar(&cfg.Event, "event", cfg.Event, "GameSense event id")
	root.Flags().StringVar(&cfg.DisplayName, "display-name", cfg.DisplayName, "game name shown in SteelSeries Engine")
	root.Flags().StringVar(&cfg.Developer, "developer", cfg.Developer, "developer name shown in SteelSeries Engine")

	root.Flags().DurationVar(&cfg.Delay, "delay", cfg.Delay, "pause after each frame")
	root.Flags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP timeout per GameSense call")
	root.Flags().IntVar(&cfg.Cycles, "cycles", cfg.Cycles, "stop after this many passes over the frames (0 = forever)")

	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "write JSON logs instead of console output")

	root.AddCommand(newFramesCmd(&cfg))

	if err := root.Execute(); err != nil {
		boot, _ := logAdapter.NewLogger("info", false)
		boot.Error().Err(err).Msg("oledanim")
		os.Exit(1)
	}
}

// loadConfig layers the config file and OLEDANIM_* env vars under any flags
// set on the command line, then validates the result.
func loadConfig(cmd *cobra.Command, cfgPath string, cfg *cliconfig.Config) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	} else if cfgPath != "" {
		return fmt.Errorf("config file %s not found", cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	return cfg.Validate()
}
