package main

import (
	"errors"
	"os"

	"laptop-dashboard/config"
	"laptop-dashboard/models"
	"laptop-dashboard/server"
	"laptop-dashboard/services"
	"laptop-dashboard/storage"
	"laptop-dashboard/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Laptop Price Dashboard starting ===")
	logger.Info("Config — source: %s | dataset: %s | addr: %s",
		cfg.DatasetSource, cfg.DatasetPath, cfg.HTTPAddr)

	source, cacheKey, err := newSource(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialise dataset source: %v", err)
		os.Exit(1)
	}
	defer source.Close()

	cleaner := services.NewCleaner(services.CurrencyFormat{
		Symbols:        cfg.CurrencySymbols,
		GroupSeparator: ",",
	}, logger)

	cache := storage.NewCache()
	dataset, err := cache.GetOrFill(cacheKey, func() ([]*models.Listing, error) {
		raw, err := source.Fetch()
		if err != nil {
			return nil, err
		}
		return cleaner.Clean(raw), nil
	})
	if err != nil {
		if errors.Is(err, storage.ErrDatasetNotFound) {
			logger.Error("Dataset not found. Please ensure %q exists.", cfg.DatasetPath)
		} else {
			logger.Error("Failed to load dataset: %v", err)
		}
		os.Exit(1)
	}

	if len(dataset) == 0 {
		logger.Warn("Dataset is empty after cleaning — the dashboard will show no data")
	} else {
		logger.Info("Dataset ready: %d listings", len(dataset))
	}

	insights := services.NewInsightService(logger)
	srv := server.New(dataset, insights, logger)
	if err := srv.Run(cfg.HTTPAddr); err != nil {
		logger.Error("HTTP server stopped: %v", err)
		os.Exit(1)
	}
}

// newSource picks the dataset backend from config. The cache key is the
// source identity: file path for CSV, DSN for Postgres.
func newSource(cfg *config.Config, logger *utils.Logger) (storage.DatasetSource, string, error) {
	switch cfg.DatasetSource {
	case "postgres":
		src, err := storage.NewPostgresSource(cfg.DSN(), cfg.MaxRetries, logger)
		return src, cfg.DSN(), err
	default:
		return storage.NewCSVSource(cfg.DatasetPath), cfg.DatasetPath, nil
	}
}
