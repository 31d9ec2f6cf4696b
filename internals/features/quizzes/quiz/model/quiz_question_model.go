package model

// QuizQuestionModel is one question slot of a quiz. (quiz_id, question_number)
// is unique and is the key used when a quiz is re-saved.
type QuizQuestionModel struct {
	QuestionID     int    `gorm:"column:question_id;primaryKey;autoIncrement"                      json:"question_id"`
	QuizID         int    `gorm:"column:quiz_id;not null;uniqueIndex:uq_quiz_questions_slot,priority:1" json:"quiz_id"`
	QuestionNumber int    `gorm:"column:question_number;not null;uniqueIndex:uq_quiz_questions_slot,priority:2" json:"question_number"`
	Text           string `gorm:"column:text;type:text;not null"                                    json:"text"`

	Options []QuizOptionModel `gorm:"foreignKey:QuestionID;references:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (QuizQuestionModel) TableName() string { return "quiz_questions" }
