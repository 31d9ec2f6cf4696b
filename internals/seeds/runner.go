package seeds

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	service "quizku_backend/internals/features/quizzes/quiz/service"
	quizzes "quizku_backend/internals/seeds/quizzes/quizzes"
)

const DefaultQuizSeedFile = "internals/seeds/quizzes/quizzes/data_quizzes.json"

func RunAllSeeds(ctx context.Context, db *gorm.DB, mode service.PruneMode, quizFile string) error {
	if quizFile == "" {
		quizFile = DefaultQuizSeedFile
	}

	//* Quizzes
	n, err := quizzes.SeedQuizzesFromJSON(ctx, service.NewQuizService(db, mode), quizFile)
	if err != nil {
		return err
	}
	slog.Info("seeding finished", "quizzes", n)
	return nil
}
