package model

import "time"

type QuizModel struct {
	QuizID int    `gorm:"column:quiz_id;primaryKey;autoIncrement" json:"quiz_id"`
	Name   string `gorm:"column:name;type:varchar(100);not null"  json:"name"`

	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`

	// FK lives on quiz_questions.quiz_id
	Questions []QuizQuestionModel `gorm:"foreignKey:QuizID;references:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name used by GORM.
func (QuizModel) TableName() string {
	return "quizzes"
}
