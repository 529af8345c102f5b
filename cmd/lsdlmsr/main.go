package main

import (
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/lsdlmsr/pkg/compare"
)

func main() {
	configPath := flag.String("config", "scenarios.yaml", "path to the scenario file")
	verbose := flag.Bool("v", false, "log balances and intermediate costs")
	stable := flag.Bool("stable", false, "use the max-shifted log-sum-exp")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	cfg, err := compare.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load-config")
	}
	if *verbose {
		cfg.Verbose = true
	}
	if *stable {
		cfg.Stable = true
	}
	setupLogging(cfg.Verbose)

	log.Info().Str("config", *configPath).Float64("fee", cfg.Fee).
		Bool("stable", cfg.Stable).Int("scenarios", len(cfg.Scenarios)).Msg("starting")

	out, err := compare.Run(cfg, compare.NewReporter(log.Logger, cfg.Verbose))
	if err != nil {
		log.Fatal().Err(err).Int("completed", len(out)).Msg("run")
	}
}

func setupLogging(verbose bool) {
	level := zerolog.InfoLevel
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}
