package quizzes

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/bytedance/sonic"

	dto "quizku_backend/internals/features/quizzes/quiz/dto"
	model "quizku_backend/internals/features/quizzes/quiz/model"
	service "quizku_backend/internals/features/quizzes/quiz/service"
)

// SeedQuizzesFromJSON saves every quiz in the file as a new quiz. Quizzes whose
// name already exists are skipped, so running it twice is harmless.
func SeedQuizzesFromJSON(ctx context.Context, svc *service.QuizService, filePath string) (int, error) {
	slog.Info("reading seed file", "path", filePath)

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var seeds []dto.QuizData
	if err := sonic.Unmarshal(raw, &seeds); err != nil {
		return 0, fmt.Errorf("decode seed file: %w", err)
	}

	var existing []string
	if err := svc.DB.WithContext(ctx).
		Model(&model.QuizModel{}).
		Pluck("name", &existing).Error; err != nil {
		return 0, fmt.Errorf("load existing quiz names: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, n := range existing {
		seen[n] = true
	}

	inserted := 0
	for i := range seeds {
		q := seeds[i]
		if q.Name == nil {
			return inserted, fmt.Errorf("seed #%d: %w: missing name", i, service.ErrMalformedPayload)
		}
		if seen[*q.Name] {
			slog.Info("quiz already exists, skipped", "name", *q.Name)
			continue
		}

		zero := 0
		q.QuizID = &zero
		res, err := svc.SaveQuiz(ctx, &dto.SaveQuizRequest{QuizData: &q})
		if err != nil {
			return inserted, fmt.Errorf("seed %q: %w", *q.Name, err)
		}
		seen[*q.Name] = true
		inserted++
		slog.Info("quiz seeded", "name", *q.Name, "quiz_id", res.QuizID)
	}
	return inserted, nil
}
