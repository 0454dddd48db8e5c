package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/azul/automatic"
	"github.com/domino14/azul/config"
)

var (
	GitVersion string
)

const histogramBins = 15

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	level, err := zerolog.ParseLevel(cfg.GetString(config.ConfigLogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	if cfg.GetBool(config.ConfigDebug) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
	logger.Info().Str("version", GitVersion).Msgf("Loaded config: %v", cfg.AllSettings())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := automatic.RunFromConfig(ctx, cfg)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("autoplay-failed")
	}
	if err := summary.WriteYAML(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("write-summary")
	}
	if cfg.GetBool(config.ConfigHistogram) {
		if err := summary.WriteHistogram(os.Stdout, histogramBins); err != nil {
			log.Fatal().Err(err).Msg("write-histogram")
		}
	}
	logger.Info().Msg("bye")
}
