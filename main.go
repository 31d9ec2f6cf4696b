package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	gormLogger "gorm.io/gorm/logger"

	"quizku_backend/internals/configs"
	database "quizku_backend/internals/databases"
	service "quizku_backend/internals/features/quizzes/quiz/service"
	"quizku_backend/internals/helpers/slogcustom"
	routes "quizku_backend/internals/route"
	"quizku_backend/internals/seeds"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slogcustom.Critical(context.Background(), "quizku stopped", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("quizku", pflag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	fresh := flags.Bool("fresh", false, "drop the quiz tables, recreate them and seed sample data")
	seedFile := flags.String("seed-file", seeds.DefaultQuizSeedFile, "JSON file with sample quizzes")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := configs.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := slogcustom.ParseLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slogcustom.NewCustomHandler(os.Stdout, level)))

	gormLevel := gormLogger.Warn
	if level <= slog.LevelDebug {
		gormLevel = gormLogger.Info
	}

	// 🔌 DB connect + pool + schema
	db, err := database.ConnectDB(cfg.Database, gormLevel)
	if err != nil {
		return fmt.Errorf("database connect: %w", err)
	}
	defer database.Close(db)
	database.TunePool(db)

	freshEnv := *fresh || cfg.NewEnvironment
	if err := database.Migrate(db, freshEnv); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if freshEnv {
		if err := seeds.RunAllSeeds(context.Background(), db, service.PruneMode(cfg.PruneMode), *seedFile); err != nil {
			slog.Error("seeding failed", "err", err)
		}
	}

	app := routes.NewApp(db, cfg)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	listenErr := make(chan error, 1)
	go func() {
		slog.Info("listening", "port", cfg.Server.Port)
		listenErr <- app.Listen("0.0.0.0:" + cfg.Server.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-quit:
	}
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		slog.Warn("shutdown", "err", err)
	}
	return nil
}
