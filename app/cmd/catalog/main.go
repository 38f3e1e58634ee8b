// Command catalog imports a YAML vocabulary of facets and concepts.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"annotate-service/app/config"
	"annotate-service/app/driver/catalogfile"
	"annotate-service/app/driver/postgres"
	"annotate-service/app/usecase"
	"annotate-service/app/utils/logger"
)

func main() {
	var (
		file    = flag.String("file", os.Getenv("CATALOG_FILE"), "Catalog YAML file (defaults to CATALOG_FILE)")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	if *file == "" {
		slog.Error("No catalog file given, use -file or CATALOG_FILE")
		os.Exit(2)
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logLevel := cfg.LogLevel
	if *verbose {
		logLevel = "debug"
	}
	appLogger, err := logger.New(logLevel)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	catalog, err := catalogfile.Load(*file)
	if err != nil {
		appLogger.Error("Failed to read catalog", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewConnection(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	catalogUsecase := usecase.NewCatalogUseCase(postgres.NewCatalogRepository(db.Pool(), appLogger), appLogger)
	result, err := catalogUsecase.Import(ctx, catalog)
	if err != nil {
		appLogger.Error("Catalog import failed", "file", *file, "error", err)
		os.Exit(1)
	}

	appLogger.Info("Catalog imported", "file", *file, "facets", result.Facets, "concepts", result.Concepts)
}
