package service

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"quizku_backend/internals/configs"
	database "quizku_backend/internals/databases"
	dto "quizku_backend/internals/features/quizzes/quiz/dto"
	model "quizku_backend/internals/features/quizzes/quiz/model"
)

func newTestService(t *testing.T, mode PruneMode) *QuizService {
	t.Helper()

	db, err := database.ConnectDB(configs.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "quiz.db"),
	}, gormLogger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	database.TunePool(db)
	require.NoError(t, database.Migrate(db, false))

	return NewQuizService(db, mode)
}

func ptr[T any](v T) *T { return &v }

// buildQuiz makes a tree with contiguous numbering: question i has text "Q<i>"
// and option j has text "Q<i>O<j>"; option 1 is the correct one.
func buildQuiz(quizID int, name string, questions, options int) *dto.SaveQuizRequest {
	data := &dto.QuizData{
		QuizID:           ptr(quizID),
		Name:             ptr(name),
		QuizQuestionData: make([]dto.QuestionData, 0, questions),
	}
	for i := 1; i <= questions; i++ {
		q := dto.QuestionData{
			QuestionNumber: ptr(i),
			Text:           ptr(fmt.Sprintf("Q%d", i)),
			QuizOptionData: make([]dto.OptionData, 0, options),
		}
		for j := 1; j <= options; j++ {
			q.QuizOptionData = append(q.QuizOptionData, dto.OptionData{
				OptionNumber:  ptr(j),
				Text:          ptr(fmt.Sprintf("Q%dO%d", i, j)),
				CorrectAnswer: ptr(j == 1),
			})
		}
		data.QuizQuestionData = append(data.QuizQuestionData, q)
	}
	return &dto.SaveQuizRequest{QuizData: data}
}

func questionsOf(t *testing.T, db *gorm.DB, quizID int) []model.QuizQuestionModel {
	t.Helper()
	var out []model.QuizQuestionModel
	require.NoError(t, db.Where("quiz_id = ?", quizID).Order("question_number ASC").Find(&out).Error)
	return out
}

func optionsOf(t *testing.T, db *gorm.DB, quizID int) []model.QuizOptionModel {
	t.Helper()
	var out []model.QuizOptionModel
	require.NoError(t, db.
		Joins("INNER JOIN quiz_questions ON quiz_questions.question_id = quiz_options.question_id").
		Where("quiz_questions.quiz_id = ?", quizID).
		Order("quiz_questions.question_number ASC").
		Order("quiz_options.option_number ASC").
		Find(&out).Error)
	return out
}

func countRows(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}
