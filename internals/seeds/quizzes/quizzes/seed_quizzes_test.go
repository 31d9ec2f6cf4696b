package quizzes

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormLogger "gorm.io/gorm/logger"

	"quizku_backend/internals/configs"
	database "quizku_backend/internals/databases"
	dto "quizku_backend/internals/features/quizzes/quiz/dto"
	service "quizku_backend/internals/features/quizzes/quiz/service"
)

func newService(t *testing.T) *service.QuizService {
	t.Helper()
	db, err := database.ConnectDB(configs.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "seed.db"),
	}, gormLogger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	database.TunePool(db)
	require.NoError(t, database.Migrate(db, false))
	return service.NewQuizService(db, service.PruneThreshold)
}

func TestSeedQuizzesFromJSON(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	n, err := SeedQuizzesFromJSON(ctx, svc, "data_quizzes.json")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := svc.GetQuizList(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Math", list[0].Name)
	assert.Equal(t, "Science", list[1].Name)

	rows, err := svc.SelectFullQuiz(ctx, &list[0].QuizID)
	require.NoError(t, err)
	assert.Len(t, rows, 4)

	result, err := svc.EvaluateQuiz(ctx, &dto.EvaluateQuizRequest{
		QuizID: &list[0].QuizID,
		Selections: []dto.Selection{
			{QuestionNumber: intPtr(1), OptionNumbers: []int{2}},
			{QuestionNumber: intPtr(2), OptionNumbers: []int{1}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, result)

	again, err := SeedQuizzesFromJSON(ctx, svc, "data_quizzes.json")
	require.NoError(t, err)
	assert.Zero(t, again)
}

func TestSeedQuizzesFromJSON_BadFile(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := SeedQuizzesFromJSON(ctx, svc, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"not":"a list"}`), 0o644))
	_, err = SeedQuizzesFromJSON(ctx, svc, bad)
	assert.Error(t, err)

	nameless := filepath.Join(t.TempDir(), "nameless.json")
	require.NoError(t, os.WriteFile(nameless, []byte(`[{"quiz_id":0,"quiz_question_data":[]}]`), 0o644))
	_, err = SeedQuizzesFromJSON(ctx, svc, nameless)
	assert.ErrorIs(t, err, service.ErrMalformedPayload)
}

func intPtr(v int) *int { return &v }
