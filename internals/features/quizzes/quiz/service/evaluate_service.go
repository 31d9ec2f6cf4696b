package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	dto "quizku_backend/internals/features/quizzes/quiz/dto"
	model "quizku_backend/internals/features/quizzes/quiz/model"
)

// EvaluateQuiz grades every stored question of the quiz, in question_number
// order. A question is correct when the selected option numbers are exactly
// the options flagged correct_answer. Unanswered questions are graded against
// an empty selection. An unknown quiz yields an empty result.
func (s *QuizService) EvaluateQuiz(ctx context.Context, req *dto.EvaluateQuizRequest) ([]bool, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrMalformedPayload)
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	var (
		questions []model.QuizQuestionModel
		correct   []model.QuizOptionModel
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("quiz_id = ?", *req.QuizID).
			Order("question_number ASC").
			Find(&questions).Error; err != nil {
			return fmt.Errorf("load questions: %w", err)
		}
		if len(questions) == 0 {
			return nil
		}

		ids := make([]int, 0, len(questions))
		for _, q := range questions {
			ids = append(ids, q.QuestionID)
		}
		if err := tx.
			Where("question_id IN ? AND correct_answer = ?", ids, true).
			Find(&correct).Error; err != nil {
			return fmt.Errorf("load correct options: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("evaluate quiz %d: %w", *req.QuizID, err)
	}

	expected := make(map[int]map[int]struct{}, len(questions))
	for _, o := range correct {
		if expected[o.QuestionID] == nil {
			expected[o.QuestionID] = make(map[int]struct{})
		}
		expected[o.QuestionID][o.OptionNumber] = struct{}{}
	}

	selected := req.SelectedByQuestion()
	result := make([]bool, 0, len(questions))
	for _, q := range questions {
		result = append(result, sameSet(selected[q.QuestionNumber], expected[q.QuestionID]))
	}
	return result, nil
}

func sameSet(a, b map[int]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
