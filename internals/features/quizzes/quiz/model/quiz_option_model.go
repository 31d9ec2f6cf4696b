package model

// QuizOptionModel is one option slot of a question, keyed by
// (question_id, option_number).
type QuizOptionModel struct {
	OptionID      int    `gorm:"column:option_id;primaryKey;autoIncrement"                               json:"option_id"`
	QuestionID    int    `gorm:"column:question_id;not null;uniqueIndex:uq_quiz_options_slot,priority:1" json:"question_id"`
	OptionNumber  int    `gorm:"column:option_number;not null;uniqueIndex:uq_quiz_options_slot,priority:2" json:"option_number"`
	Text          string `gorm:"column:text;type:text;not null"                                           json:"text"`
	CorrectAnswer bool   `gorm:"column:correct_answer;not null;default:false"                             json:"correct_answer"`
}

func (QuizOptionModel) TableName() string { return "quiz_options" }
