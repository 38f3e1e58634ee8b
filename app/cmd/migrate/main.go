package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"annotate-service/app/config"
	"annotate-service/app/utils/database"
	"annotate-service/app/utils/logger"
	"annotate-service/app/utils/migration"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	var (
		command = flag.String("command", "up", "Migration command (up, down, status)")
		steps   = flag.Int("steps", 1, "Number of migrations to roll back")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	// Load environment variables
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	// Load configuration
	cfg, err := config.LoadDatabase()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logLevel := cfg.LogLevel
	if *verbose {
		logLevel = "debug"
	}

	appLogger, err := logger.New(logLevel)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	// Create database connection
	dbConfig := database.DefaultConfig()
	dbConfig.DSN = cfg.DatabaseURL
	dbConfig.Host = cfg.DatabaseHost
	dbConfig.Port = parsePort(cfg.DatabasePort)
	dbConfig.User = cfg.DatabaseUser
	dbConfig.Password = cfg.DatabasePassword
	dbConfig.Database = cfg.DatabaseName
	dbConfig.SSLMode = cfg.DatabaseSSLMode
	dbConfig.ConnTimeout = 30 * time.Second

	dbConn, err := database.NewConnection(dbConfig, appLogger)
	if err != nil {
		appLogger.Error("Failed to create database connection", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		appLogger.Error("Failed to open embedded migrations", "error", err)
		os.Exit(1)
	}

	migrator := migration.NewMigrator(dbConn.DB(), appLogger, sub)
	ctx := context.Background()

	// Execute command
	switch *command {
	case "up":
		applied, err := migrator.Up(ctx)
		if err != nil {
			appLogger.Error("Migration up failed", "error", err, "applied", applied)
			os.Exit(1)
		}
		appLogger.Info("Migrations applied", "count", applied)

	case "down":
		if *steps <= 0 {
			appLogger.Error("Invalid steps value", "steps", *steps)
			os.Exit(1)
		}

		done, err := migrator.Down(ctx, *steps)
		if err != nil {
			appLogger.Error("Migration down failed", "error", err, "rolled_back", done)
			os.Exit(1)
		}
		appLogger.Info("Migrations rolled back", "count", done)

	case "status":
		states, err := migrator.Status(ctx)
		if err != nil {
			appLogger.Error("Migration status failed", "error", err)
			os.Exit(1)
		}
		for _, state := range states {
			switch {
			case state.Modified:
				appLogger.Warn("Migration modified after apply", "version", state.Version, "name", state.Name,
					"applied_at", state.AppliedAt.Format(time.RFC3339))
			case state.Applied:
				appLogger.Info("Migration applied", "version", state.Version, "name", state.Name,
					"applied_at", state.AppliedAt.Format(time.RFC3339))
			default:
				appLogger.Info("Migration pending", "version", state.Version, "name", state.Name)
			}
		}

	default:
		appLogger.Error("Unknown command", "command", *command)
		fmt.Println("Available commands: up, down, status")
		os.Exit(1)
	}
}

func parsePort(portStr string) int {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 5432 // default PostgreSQL port
	}
	return port
}
