package dto

/* ==============================
   EVALUATE (POST /evaluate-quiz)
============================== */

type EvaluateQuizRequest struct {
	QuizID     *int        `json:"quiz_id" validate:"required"`
	Selections []Selection `json:"selections" validate:"required,dive"`
}

// Selection is the set of option numbers picked for one question slot.
type Selection struct {
	QuestionNumber *int  `json:"question_number" validate:"required,gte=1"`
	OptionNumbers  []int `json:"option_numbers" validate:"required,dive,gte=1"`
}

// SelectedByQuestion indexes selections by question number. A later entry for
// the same question replaces an earlier one.
func (r *EvaluateQuizRequest) SelectedByQuestion() map[int]map[int]struct{} {
	out := make(map[int]map[int]struct{}, len(r.Selections))
	for _, s := range r.Selections {
		set := make(map[int]struct{}, len(s.OptionNumbers))
		for _, n := range s.OptionNumbers {
			set[n] = struct{}{}
		}
		out[*s.QuestionNumber] = set
	}
	return out
}
