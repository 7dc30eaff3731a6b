// Package main is the entry point for minefield.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/samdwyer/minefield/internal/game"
	"github.com/samdwyer/minefield/internal/gamedata"
	"github.com/samdwyer/minefield/internal/telemetry"
)

// version is set by ldflags during build
var version = "dev"

// CLI is the command line; every flag can also come from the environment or .env.
type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`

	Preset  string `short:"p" env:"MINEFIELD_PRESET" help:"Board preset: ${presets}"`
	Rows    int    `env:"MINEFIELD_ROWS" help:"Board rows (overrides the preset)"`
	Columns int    `env:"MINEFIELD_COLUMNS" help:"Board columns (overrides the preset)"`
	Bombs   int    `env:"MINEFIELD_BOMBS" help:"Number of bombs (overrides the preset)"`
	Seed    int64  `env:"MINEFIELD_SEED" help:"Random seed for reproducible boards (0 = random)"`

	LogFile     string `type:"path" env:"MINEFIELD_LOG_FILE" help:"Write logs to this file (the terminal is used by the game)"`
	LogJSON     bool   `env:"MINEFIELD_LOG_JSON" help:"Write JSON logs instead of console format"`
	Debug       bool   `short:"d" env:"MINEFIELD_DEBUG" help:"Enable debug logging"`
	NoTelemetry bool   `env:"MINEFIELD_NO_TELEMETRY" help:"Disable OpenTelemetry tracing"`
}

// Validate rejects negative sizes before the game starts.
func (c *CLI) Validate() error {
	if c.Rows < 0 || c.Columns < 0 || c.Bombs < 0 {
		return fmt.Errorf("rows, columns and bombs must not be negative")
	}
	return nil
}

func main() {
	// Load .env file for local development
	envErr := godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("minefield"),
		kong.Description("Minesweeper in the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
			"presets": strings.Join(gamedata.MustLoadPresetRegistry().IDs(), ", "),
		},
	)

	logger, closeLog, err := setupLogger(cli.LogFile, cli.LogJSON, cli.Debug)
	ctx.FatalIfErrorf(err)
	defer closeLog()

	if envErr != nil {
		// Not fatal - env vars might be set directly
		logger.Debug().Err(envErr).Msg(".env file not loaded")
	}

	ctx.FatalIfErrorf(cli.run(logger))
}

func (c *CLI) run(logger zerolog.Logger) error {
	ctx := context.Background()

	cfg := game.Config{
		Seed:    c.Seed,
		Preset:  c.Preset,
		Rows:    c.Rows,
		Columns: c.Columns,
		Bombs:   c.Bombs,
	}

	if c.NoTelemetry {
		cfg.Tracer = telemetry.NoopTracer()
	} else {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("telemetry setup failed, running without tracing")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down telemetry")
				}
			}()
		}
	}

	g, err := game.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	return g.Run(ctx)
}

// setupOTelEnv maps the Honeycomb settings onto the standard OTEL_* variables
// unless they are already set.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	apiKey := os.Getenv("HONEYCOMB_MINEFIELD_API_KEY")
	dataset := os.Getenv("HONEYCOMB_MINEFIELD_DATASET")
	if dataset == "" {
		dataset = "minefield"
	}
	if apiKey != "" && os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
