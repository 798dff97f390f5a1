package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeonwalk/internal/config"
	"github.com/samdwyer/dungeonwalk/internal/game"
	"github.com/samdwyer/dungeonwalk/internal/gamedata"
	"github.com/samdwyer/dungeonwalk/internal/logger"
	"github.com/samdwyer/dungeonwalk/internal/telemetry"
	"github.com/samdwyer/dungeonwalk/internal/ui"
)

var (
	frontendFlag  string
	seedFlag      int64
	logFileFlag   string
	logLevelFlag  string
	worldFileFlag string
	noTelemetry   bool
)

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&frontendFlag, "frontend", "", "frontend to use: terminal or console")
	cmd.Flags().Int64Var(&seedFlag, "seed", 0, "flavor text seed (0 = random)")
	cmd.Flags().StringVar(&logFileFlag, "log-file", "", "write log output to file")
	cmd.Flags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&worldFileFlag, "world", "", "world JSON file replacing the built-in level")
	cmd.Flags().BoolVar(&noTelemetry, "no-telemetry", false, "do not export traces")
}

// loadConfig reads the environment and applies any flags that were set.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.Load()

	flags := cmd.Flags()
	if flags.Changed("frontend") {
		cfg.Frontend = config.ParseFrontend(frontendFlag)
	}
	if flags.Changed("seed") {
		cfg.Seed = seedFlag
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFileFlag
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = config.ParseLogLevel(logLevelFlag)
	}
	if flags.Changed("world") {
		cfg.WorldFile = worldFileFlag
	}
	if noTelemetry {
		cfg.Telemetry = false
	}

	return cfg
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	logs, closeLog, err := logger.Setup(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry && setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.WithError(logs, err).Warn("telemetry setup failed, running without observability")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.WithError(logs, err).Error("telemetry shutdown failed")
				}
			}()
		}
	}

	gameCfg, err := loadGameConfig(cfg)
	if err != nil {
		return err
	}

	frontend, err := newFrontend(cfg)
	if err != nil {
		return fmt.Errorf("failed to start %s frontend: %w", cfg.Frontend, err)
	}

	g, err := game.New(ctx, gameCfg, game.WithFrontend(frontend))
	if err != nil {
		frontend.Close()
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	return g.Run(ctx)
}

// loadGameConfig returns the built-in game, or the world file if one is configured.
func loadGameConfig(cfg *config.Config) (game.Config, error) {
	var (
		gameCfg game.Config
		err     error
	)
	if cfg.WorldFile == "" {
		gameCfg, err = game.DefaultConfig()
	} else {
		var world gamedata.WorldDef
		world, err = gamedata.LoadWorldFile(cfg.WorldFile)
		if err == nil {
			gameCfg, err = game.ConfigFromWorld(world)
		}
	}
	if err != nil {
		return game.Config{}, err
	}

	gameCfg.Seed = cfg.Seed
	return gameCfg, nil
}

func newFrontend(cfg *config.Config) (game.Frontend, error) {
	if cfg.Frontend == config.FrontendConsole {
		return ui.NewConsole(os.Stdin, os.Stdout), nil
	}

	styles, err := gamedata.LoadGlyphStyles()
	if err != nil {
		return nil, err
	}
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return ui.NewTerminal(screen, styles), nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// Returns false when there is nowhere to send traces.
func setupOTelEnv() bool {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		return true
	}

	apiKey := os.Getenv("HONEYCOMB_DUNGEONWALK_API_KEY")
	if apiKey == "" {
		return false
	}
	dataset := os.Getenv("HONEYCOMB_DUNGEONWALK_DATASET")
	if dataset == "" {
		dataset = "dungeonwalk" // default dataset name
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
