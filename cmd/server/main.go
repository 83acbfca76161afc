package main

import (
	"github.com/joho/godotenv"

	"bank-reconciliation/internal/config"
	"bank-reconciliation/internal/logging"
	"bank-reconciliation/internal/matcher"
	"bank-reconciliation/internal/server"
)

func main() {
	// Optional .env for local development; environment wins over file.
	_ = godotenv.Load()

	cfg := config.LoadOrEnv()
	logger := logging.Setup(cfg.Logging)

	matcherCfg := cfg.Matching.MatcherConfig()
	if err := matcherCfg.Validate(); err != nil {
		logger.Fatalf("invalid matching config: %v", err)
	}

	engine := matcher.NewEngine(matcherCfg)
	srv := server.New(cfg.Server, engine, logger)

	logger.WithField("port", cfg.Server.Port).Info("starting reconciliation server")
	if err := srv.Run(); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}
