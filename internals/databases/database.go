package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"quizku_backend/internals/configs"
	quizModel "quizku_backend/internals/features/quizzes/quiz/model"
)

// ConnectDB opens the pool for the configured driver. The handle is owned by
// the caller and passed explicitly to every component that needs it.
func ConnectDB(cfg configs.DatabaseConfig, logLevel gormLogger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "postgres":
		slog.Info("connecting to PostgreSQL", "host", cfg.Host, "db", cfg.Name)
		// statement_timeout keeps queries below the HTTP timeout guard
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=quizku&options=-c statement_timeout=3000",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, sslMode(cfg.SSLMode),
		)
		dialector = postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		})
	case "sqlite":
		slog.Info("opening SQLite database", "path", cfg.Path)
		dialector = sqlite.Open(sqliteDSN(cfg.Path))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: configs.NewGormLogger(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}
	slog.Info("database connected", "driver", cfg.Driver)
	return db, nil
}

// sqliteDSN turns on foreign keys so cascade deletes are enforced by the engine.
func sqliteDSN(path string) string {
	if path == "" {
		path = "quizku.db"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

func sslMode(v string) string {
	if v == "" {
		return "require"
	}
	return v
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		slog.Warn("pool tune failed", "err", err)
		return
	}
	if db.Dialector.Name() == "sqlite" {
		// single writer; avoids SQLITE_BUSY between pooled connections
		sqlDB.SetMaxOpenConns(1)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		slog.Warn("close database failed", "err", err)
	}
}

// Migrate creates quizzes, quiz_questions and quiz_options. With fresh=true the
// tables are dropped first (children before parents).
func Migrate(db *gorm.DB, fresh bool) error {
	if fresh {
		slog.Warn("dropping quiz tables for a fresh environment")
		if err := db.Migrator().DropTable(
			&quizModel.QuizOptionModel{},
			&quizModel.QuizQuestionModel{},
			&quizModel.QuizModel{},
		); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
	}
	if err := db.AutoMigrate(
		&quizModel.QuizModel{},
		&quizModel.QuizQuestionModel{},
		&quizModel.QuizOptionModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
