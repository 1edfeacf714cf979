// Command moodyd runs the moody backend: mood classification and
// mood-driven Spotify playlist generation.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/DathaCode/moody-backend/internal/classifier"
	"github.com/DathaCode/moody-backend/internal/config"
	"github.com/DathaCode/moody-backend/internal/logger"
	"github.com/DathaCode/moody-backend/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.Production())
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Without a classifier endpoint every request takes the keyword
	// fallback path.
	var llm classifier.Analyzer
	if cfg.ClassifierBaseURL != "" {
		llm = classifier.NewClient(cfg.ClassifierBaseURL, cfg.ClassifierAPIKey, cfg.ClassifierModel)
	} else {
		log.Warn("CLASSIFIER_BASE_URL not set, using keyword classification only")
	}
	analyzer := classifier.NewService(llm, log)

	server := web.NewServer(cfg, analyzer, log)

	log.Info("moody backend configured",
		zap.String("addr", cfg.Addr),
		zap.String("environment", cfg.Environment),
	)

	return server.Run()
}
