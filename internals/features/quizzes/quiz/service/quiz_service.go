package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	dto "quizku_backend/internals/features/quizzes/quiz/dto"
	model "quizku_backend/internals/features/quizzes/quiz/model"
)

// PruneMode decides which stored children a save removes.
type PruneMode string

const (
	// PruneThreshold deletes children whose position is above the highest
	// submitted position. Unsubmitted gaps below it are kept.
	PruneThreshold PruneMode = "threshold"
	// PruneExact deletes every child whose position was not submitted.
	PruneExact PruneMode = "exact"
)

var (
	// ErrMalformedPayload marks structural input errors (missing keys,
	// duplicate slots). It is never used for "not found".
	ErrMalformedPayload = errors.New("malformed payload")
	ErrUnknownTable     = errors.New("unknown table")

	errQuizNotFound = errors.New("quiz not found")
)

/* =========================================================
   SERVICE
========================================================= */

type QuizService struct {
	DB        *gorm.DB
	Validator *validator.Validate
	PruneMode PruneMode
}

func NewQuizService(db *gorm.DB, mode PruneMode) *QuizService {
	if mode != PruneExact {
		mode = PruneThreshold
	}
	return &QuizService{
		DB:        db,
		Validator: validator.New(),
		PruneMode: mode,
	}
}

func (s *QuizService) validate(v any) error {
	if err := s.Validator.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return nil
}

/* =========================================================
   READS
========================================================= */

const fullQuizColumns = `
	quizzes.quiz_id,
	quizzes.name,
	quizzes.created_at,
	quizzes.updated_at,
	quiz_questions.question_id,
	quiz_questions.question_number,
	quiz_questions.text AS question_text,
	quiz_options.option_id,
	quiz_options.option_number,
	quiz_options.text AS option_text,
	quiz_options.correct_answer`

// SelectFullQuiz returns one row per (question, option) pair. Quizzes without
// questions or options produce no rows; a missing quiz is not an error.
func (s *QuizService) SelectFullQuiz(ctx context.Context, quizID *int) ([]dto.FullQuizRow, error) {
	q := s.DB.WithContext(ctx).
		Table("quizzes").
		Select(fullQuizColumns).
		Joins("INNER JOIN quiz_questions ON quiz_questions.quiz_id = quizzes.quiz_id").
		Joins("INNER JOIN quiz_options ON quiz_options.question_id = quiz_questions.question_id")
	if quizID != nil {
		q = q.Where("quizzes.quiz_id = ?", *quizID)
	}

	rows := make([]dto.FullQuizRow, 0)
	if err := q.
		Order("quizzes.quiz_id ASC").
		Order("quiz_questions.question_number ASC").
		Order("quiz_options.option_number ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("select full quiz: %w", err)
	}
	return rows, nil
}

// GetQuizList returns up to limit quizzes in insertion order; 0 means no limit.
func (s *QuizService) GetQuizList(ctx context.Context, limit int) ([]dto.QuizListItem, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: negative limit %d", ErrMalformedPayload, limit)
	}

	q := s.DB.WithContext(ctx).
		Model(&model.QuizModel{}).
		Select("quiz_id, name").
		Order("quiz_id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	items := make([]dto.QuizListItem, 0)
	if err := q.Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("get quiz list: %w", err)
	}
	return items, nil
}

/* =========================================================
   DELETE
========================================================= */

// DeleteQuiz removes the quiz; questions and options go with it through the
// ON DELETE CASCADE foreign keys. false means nothing matched.
func (s *QuizService) DeleteQuiz(ctx context.Context, req *dto.DeleteQuizRequest) (bool, error) {
	if req == nil {
		return false, fmt.Errorf("%w: empty request", ErrMalformedPayload)
	}
	if err := s.validate(req); err != nil {
		return false, err
	}

	res := s.DB.WithContext(ctx).
		Where("quiz_id = ?", *req.QuizID).
		Delete(&model.QuizModel{})
	if res.Error != nil {
		return false, fmt.Errorf("delete quiz %d: %w", *req.QuizID, res.Error)
	}
	return res.RowsAffected > 0, nil
}
