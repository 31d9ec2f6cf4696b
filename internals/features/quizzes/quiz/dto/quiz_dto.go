package dto

import (
	"time"

	model "quizku_backend/internals/features/quizzes/quiz/model"
)

/* ==============================
   SAVE (POST /save-quiz)
   Pointers + required: an absent key is rejected, a zero value is not.
============================== */

type SaveQuizRequest struct {
	QuizData *QuizData `json:"quiz_data" validate:"required"`
}

type QuizData struct {
	// 0 = create a new quiz
	QuizID           *int           `json:"quiz_id" validate:"required"`
	Name             *string        `json:"name" validate:"required,max=100"`
	QuizQuestionData []QuestionData `json:"quiz_question_data" validate:"required,dive"`
}

type QuestionData struct {
	QuestionNumber *int         `json:"question_number" validate:"required,gte=1"`
	Text           *string      `json:"text" validate:"required"`
	QuizOptionData []OptionData `json:"quiz_option_data" validate:"required,dive"`
}

type OptionData struct {
	OptionNumber  *int    `json:"option_number" validate:"required,gte=1"`
	Text          *string `json:"text" validate:"required"`
	CorrectAnswer *bool   `json:"correct_answer" validate:"required"`
}

func (q *QuizData) IsNew() bool { return *q.QuizID == 0 }

func (q *QuestionData) ToModel(quizID int) *model.QuizQuestionModel {
	return &model.QuizQuestionModel{
		QuizID:         quizID,
		QuestionNumber: *q.QuestionNumber,
		Text:           *q.Text,
	}
}

func (o *OptionData) ToModel(questionID int) *model.QuizOptionModel {
	return &model.QuizOptionModel{
		QuestionID:    questionID,
		OptionNumber:  *o.OptionNumber,
		Text:          *o.Text,
		CorrectAnswer: *o.CorrectAnswer,
	}
}

// SaveQuizResult reports the outcome of a save. Saved=false means the quiz id
// being updated does not exist.
type SaveQuizResult struct {
	Saved  bool
	QuizID int
}

/* ==============================
   DELETE (POST /delete-quiz)
============================== */

type DeleteQuizRequest struct {
	QuizID *int `json:"quiz_id" validate:"required"`
}

/* ==============================
   READ
============================== */

// FullQuizRow is one (question, option) pair of the quiz join.
type FullQuizRow struct {
	QuizID         int       `gorm:"column:quiz_id"         json:"quiz_id"`
	Name           string    `gorm:"column:name"            json:"name"`
	CreatedAt      time.Time `gorm:"column:created_at"      json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"      json:"updated_at"`
	QuestionID     int       `gorm:"column:question_id"     json:"question_id"`
	QuestionNumber int       `gorm:"column:question_number" json:"question_number"`
	QuestionText   string    `gorm:"column:question_text"   json:"question_text"`
	OptionID       int       `gorm:"column:option_id"       json:"option_id"`
	OptionNumber   int       `gorm:"column:option_number"   json:"option_number"`
	OptionText     string    `gorm:"column:option_text"     json:"option_text"`
	CorrectAnswer  bool      `gorm:"column:correct_answer"  json:"correct_answer"`
}

type QuizListItem struct {
	QuizID int    `gorm:"column:quiz_id" json:"quiz_id"`
	Name   string `gorm:"column:name"    json:"name"`
}
