package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "quizku_backend/internals/features/quizzes/quiz/dto"
	model "quizku_backend/internals/features/quizzes/quiz/model"
)

func TestSelectFullQuiz_EmptyTable(t *testing.T) {
	svc := newTestService(t, PruneThreshold)

	rows, err := svc.SelectFullQuiz(context.Background(), ptr(1))
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestSelectFullQuiz_QuizWithoutQuestions(t *testing.T) {
	svc := newTestService(t, PruneThreshold)
	ctx := context.Background()

	res, err := svc.SaveQuiz(ctx, buildQuiz(0, "Empty", 0, 0))
	require.NoError(t, err)

	rows, err := svc.SelectFullQuiz(ctx, &res.QuizID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSelectFullQuiz_FilterAndOrder(t *testing.T) {
	svc := newTestService(t, PruneThreshold)
	ctx := context.Background()

	a, err := svc.SaveQuiz(ctx, buildQuiz(0, "A", 2, 2))
	require.NoError(t, err)
	_, err = svc.SaveQuiz(ctx, buildQuiz(0, "B", 1, 3))
	require.NoError(t, err)

	rows, err := svc.SelectFullQuiz(ctx, &a.QuizID)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Q1O1", "Q1O2", "Q2O1", "Q2O2"}, []string{
		rows[0].OptionText, rows[1].OptionText, rows[2].OptionText, rows[3].OptionText,
	})

	all, err := svc.SelectFullQuiz(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

func TestGetQuizList(t *testing.T) {
	svc := newTestService(t, PruneThreshold)
	ctx := context.Background()

	empty, err := svc.GetQuizList(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, name := range []string{"Math", "Science", "History"} {
		_, err := svc.SaveQuiz(ctx, buildQuiz(0, name, 1, 1))
		require.NoError(t, err)
	}

	limited, err := svc.GetQuizList(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, dto.QuizListItem{QuizID: 1, Name: "Math"}, limited[0])
	assert.Equal(t, "Science", limited[1].Name)

	all, err := svc.GetQuizList(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = svc.GetQuizList(ctx, -1)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestDeleteQuiz(t *testing.T) {
	svc := newTestService(t, PruneThreshold)
	ctx := context.Background()

	missing, err := svc.DeleteQuiz(ctx, &dto.DeleteQuizRequest{QuizID: ptr(1)})
	require.NoError(t, err)
	assert.False(t, missing)

	res, err := svc.SaveQuiz(ctx, buildQuiz(0, "Doomed", 2, 3))
	require.NoError(t, err)

	deleted, err := svc.DeleteQuiz(ctx, &dto.DeleteQuizRequest{QuizID: ptr(res.QuizID)})
	require.NoError(t, err)
	assert.True(t, deleted)

	assert.Zero(t, countRows(t, svc.DB, &model.QuizModel{}))
	assert.Zero(t, countRows(t, svc.DB, &model.QuizQuestionModel{}))
	assert.Zero(t, countRows(t, svc.DB, &model.QuizOptionModel{}))

	_, err = svc.DeleteQuiz(ctx, &dto.DeleteQuizRequest{})
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestEvaluateQuiz(t *testing.T) {
	svc := newTestService(t, PruneThreshold)
	ctx := context.Background()

	req := buildQuiz(0, "Eval", 3, 3)
	// question 3 has two correct options: 1 and 3
	req.QuizData.QuizQuestionData[2].QuizOptionData[2].CorrectAnswer = ptr(true)
	res, err := svc.SaveQuiz(ctx, req)
	require.NoError(t, err)

	result, err := svc.EvaluateQuiz(ctx, &dto.EvaluateQuizRequest{
		QuizID: ptr(res.QuizID),
		Selections: []dto.Selection{
			{QuestionNumber: ptr(1), OptionNumbers: []int{1}},
			{QuestionNumber: ptr(2), OptionNumbers: []int{2}},
			{QuestionNumber: ptr(3), OptionNumbers: []int{3, 1}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, result)

	partial, err := svc.EvaluateQuiz(ctx, &dto.EvaluateQuizRequest{
		QuizID:     ptr(res.QuizID),
		Selections: []dto.Selection{{QuestionNumber: ptr(3), OptionNumbers: []int{1}}},
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false}, partial)

	unknown, err := svc.EvaluateQuiz(ctx, &dto.EvaluateQuizRequest{
		QuizID:     ptr(999),
		Selections: []dto.Selection{},
	})
	require.NoError(t, err)
	assert.Empty(t, unknown)

	_, err = svc.EvaluateQuiz(ctx, &dto.EvaluateQuizRequest{QuizID: ptr(res.QuizID)})
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestFetchTableData(t *testing.T) {
	svc := newTestService(t, PruneThreshold)
	ctx := context.Background()

	_, err := svc.SaveQuiz(ctx, buildQuiz(0, "Dump", 2, 2))
	require.NoError(t, err)

	quizzes, err := svc.FetchTableData(ctx, TableQuiz)
	require.NoError(t, err)
	require.Len(t, quizzes, 1)
	assert.Equal(t, "Dump", asString(quizzes[0]["name"]))
	assert.Contains(t, quizzes[0], "created_at")

	questions, err := svc.FetchTableData(ctx, TableQuizQuestion)
	require.NoError(t, err)
	assert.Len(t, questions, 2)

	options, err := svc.FetchTableData(ctx, TableQuizOption)
	require.NoError(t, err)
	require.Len(t, options, 4)
	assert.ElementsMatch(t,
		[]string{"option_id", "question_id", "option_number", "text", "correct_answer"},
		keys(options[0]),
	)
	assert.Equal(t, true, options[0]["correct_answer"])
	assert.Equal(t, false, options[1]["correct_answer"])

	_, err = svc.FetchTableData(ctx, "users")
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestAsBool(t *testing.T) {
	assert.True(t, asBool(int64(1)))
	assert.False(t, asBool(int64(0)))
	assert.True(t, asBool([]byte("true")))
	assert.True(t, asBool("1"))
	assert.False(t, asBool(nil))
	assert.True(t, asBool(true))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// asString normalises driver text values, which may arrive as string or []byte.
func asString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	default:
		return ""
	}
}
