package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	dto "quizku_backend/internals/features/quizzes/quiz/dto"
	model "quizku_backend/internals/features/quizzes/quiz/model"
)

/* =========================================================
   PUBLIC API: SaveQuiz
========================================================= */

// SaveQuiz reconciles a submitted quiz tree with the stored rows in one
// transaction:
//   - quiz_id 0 inserts a quiz, otherwise the existing quiz is renamed
//   - questions and options are matched by their position number and
//     inserted or updated in place
//   - children left over from an earlier, larger submission are pruned
//
// Saved=false (with a nil error) means the quiz to update does not exist; in
// that case nothing is written.
func (s *QuizService) SaveQuiz(ctx context.Context, req *dto.SaveQuizRequest) (dto.SaveQuizResult, error) {
	if req == nil {
		return dto.SaveQuizResult{}, fmt.Errorf("%w: empty request", ErrMalformedPayload)
	}
	if err := s.validate(req); err != nil {
		return dto.SaveQuizResult{}, err
	}
	data := req.QuizData
	if err := checkUniqueSlots(data); err != nil {
		return dto.SaveQuizResult{}, err
	}

	var quizID int
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := upsertQuiz(tx, data)
		if err != nil {
			return err
		}
		quizID = id

		submitted := make([]int, 0, len(data.QuizQuestionData))
		for i := range data.QuizQuestionData {
			question := &data.QuizQuestionData[i]

			questionID, err := upsertQuestion(tx, quizID, question)
			if err != nil {
				return err
			}
			if err := s.reconcileOptions(tx, questionID, question.QuizOptionData); err != nil {
				return err
			}
			submitted = append(submitted, *question.QuestionNumber)
		}

		if err := s.prune(tx, &model.QuizQuestionModel{}, "quiz_id", quizID, "question_number", submitted); err != nil {
			return fmt.Errorf("prune questions of quiz %d: %w", quizID, err)
		}
		return nil
	})

	switch {
	case errors.Is(err, errQuizNotFound):
		slog.InfoContext(ctx, "save quiz: quiz not found", "quiz_id", *data.QuizID)
		return dto.SaveQuizResult{Saved: false, QuizID: *data.QuizID}, nil
	case err != nil:
		return dto.SaveQuizResult{}, err
	}

	slog.DebugContext(ctx, "quiz saved",
		"quiz_id", quizID,
		"questions", len(data.QuizQuestionData),
		"prune_mode", s.PruneMode,
	)
	return dto.SaveQuizResult{Saved: true, QuizID: quizID}, nil
}

/* =========================================================
   STEPS
========================================================= */

func upsertQuiz(tx *gorm.DB, data *dto.QuizData) (int, error) {
	if data.IsNew() {
		m := model.QuizModel{Name: *data.Name}
		if err := tx.Create(&m).Error; err != nil {
			return 0, fmt.Errorf("insert quiz: %w", err)
		}
		return m.QuizID, nil
	}

	res := tx.Model(&model.QuizModel{}).
		Where("quiz_id = ?", *data.QuizID).
		Updates(map[string]any{
			"name":       *data.Name,
			"updated_at": tx.NowFunc(),
		})
	if res.Error != nil {
		return 0, fmt.Errorf("update quiz %d: %w", *data.QuizID, res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, errQuizNotFound
	}
	return *data.QuizID, nil
}

func upsertQuestion(tx *gorm.DB, quizID int, q *dto.QuestionData) (int, error) {
	var existing model.QuizQuestionModel
	res := tx.
		Where("quiz_id = ? AND question_number = ?", quizID, *q.QuestionNumber).
		Limit(1).
		Find(&existing)
	if res.Error != nil {
		return 0, fmt.Errorf("lookup question %d: %w", *q.QuestionNumber, res.Error)
	}

	if res.RowsAffected == 0 {
		m := q.ToModel(quizID)
		if err := tx.Create(m).Error; err != nil {
			return 0, fmt.Errorf("insert question %d: %w", *q.QuestionNumber, err)
		}
		return m.QuestionID, nil
	}

	if err := tx.Model(&existing).Update("text", *q.Text).Error; err != nil {
		return 0, fmt.Errorf("update question %d: %w", *q.QuestionNumber, err)
	}
	return existing.QuestionID, nil
}

func upsertOption(tx *gorm.DB, questionID int, o *dto.OptionData) error {
	var existing model.QuizOptionModel
	res := tx.
		Where("question_id = ? AND option_number = ?", questionID, *o.OptionNumber).
		Limit(1).
		Find(&existing)
	if res.Error != nil {
		return fmt.Errorf("lookup option %d: %w", *o.OptionNumber, res.Error)
	}

	if res.RowsAffected == 0 {
		if err := tx.Create(o.ToModel(questionID)).Error; err != nil {
			return fmt.Errorf("insert option %d: %w", *o.OptionNumber, err)
		}
		return nil
	}

	if err := tx.Model(&existing).Updates(map[string]any{
		"text":           *o.Text,
		"correct_answer": *o.CorrectAnswer,
	}).Error; err != nil {
		return fmt.Errorf("update option %d: %w", *o.OptionNumber, err)
	}
	return nil
}

func (s *QuizService) reconcileOptions(tx *gorm.DB, questionID int, options []dto.OptionData) error {
	submitted := make([]int, 0, len(options))
	for i := range options {
		if err := upsertOption(tx, questionID, &options[i]); err != nil {
			return err
		}
		submitted = append(submitted, *options[i].OptionNumber)
	}

	if err := s.prune(tx, &model.QuizOptionModel{}, "question_id", questionID, "option_number", submitted); err != nil {
		return fmt.Errorf("prune options of question %d: %w", questionID, err)
	}
	return nil
}

// prune deletes the children of parentID that the submission did not keep.
func (s *QuizService) prune(tx *gorm.DB, m any, parentCol string, parentID int, posCol string, submitted []int) error {
	q := tx.Where(parentCol+" = ?", parentID)

	switch s.PruneMode {
	case PruneExact:
		if len(submitted) > 0 {
			q = q.Where(posCol+" NOT IN ?", submitted)
		}
	default:
		q = q.Where(posCol+" > ?", maxPosition(submitted))
	}
	return q.Delete(m).Error
}

/* =========================================================
   HELPERS
========================================================= */

// maxPosition is 0 for an empty submission, which prunes every child.
func maxPosition(positions []int) int {
	out := 0
	for _, p := range positions {
		if p > out {
			out = p
		}
	}
	return out
}

// checkUniqueSlots rejects a tree that names the same slot twice.
func checkUniqueSlots(data *dto.QuizData) error {
	questions := make(map[int]struct{}, len(data.QuizQuestionData))
	for _, q := range data.QuizQuestionData {
		if _, dup := questions[*q.QuestionNumber]; dup {
			return fmt.Errorf("%w: duplicate question_number %d", ErrMalformedPayload, *q.QuestionNumber)
		}
		questions[*q.QuestionNumber] = struct{}{}

		options := make(map[int]struct{}, len(q.QuizOptionData))
		for _, o := range q.QuizOptionData {
			if _, dup := options[*o.OptionNumber]; dup {
				return fmt.Errorf("%w: duplicate option_number %d in question %d",
					ErrMalformedPayload, *o.OptionNumber, *q.QuestionNumber)
			}
			options[*o.OptionNumber] = struct{}{}
		}
	}
	return nil
}
