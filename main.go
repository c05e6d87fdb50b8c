package main

import (
	"os"
	"os/signal"

	"github.com/MaaXYZ/maa-framework-go/v3"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load config")
		os.Exit(1)
	}

	cleanup, err := initLogger(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize logger")
		os.Exit(1)
	}
	defer cleanup()

	log.Info().Str("version", Version).Msg("RoiBox Agent Service")

	if len(os.Args) < 2 {
		log.Error().Msg("Usage: go-service <identifier>")
		os.Exit(1)
	}

	identifier := os.Args[1]
	log.Info().Str("identifier", identifier).Msg("Starting agent server")

	// Initialize MAA framework first (required before any other MAA calls)
	log.Info().Str("libDir", cfg.LibDir).Msg("Initializing MAA framework")
	if err := maa.Init(maa.WithLibDir(cfg.LibDir)); err != nil {
		log.Error().Err(err).Msg("Failed to initialize MAA framework")
		os.Exit(1)
	}
	defer maa.Release()
	log.Info().Msg("MAA framework initialized")

	if ok := maa.ConfigInitOption(cfg.UserPath, "{}"); !ok {
		log.Warn().Str("userPath", cfg.UserPath).Msg("Failed to init toolkit config option")
	} else {
		log.Info().Str("userPath", cfg.UserPath).Msg("Toolkit config option initialized")
	}

	registerAll()

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, shutdownSignals...)

	go func() {
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received signal, initiating shutdown")
		maa.AgentServerShutDown()
	}()

	if !maa.AgentServerStartUp(identifier) {
		log.Error().Msg("Failed to start agent server")
		os.Exit(1)
	}
	log.Info().Msg("Agent server started")

	maa.AgentServerJoin()

	// Shutdown (idempotent, safe to call even if already shut down by signal)
	maa.AgentServerShutDown()
	log.Info().Msg("Agent server shutdown complete")
}
