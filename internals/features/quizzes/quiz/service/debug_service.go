package service

import (
	"context"
	"fmt"
	"strconv"
)

// Debug table keys accepted by FetchTableData.
const (
	TableQuiz         = "quiz"
	TableQuizQuestion = "quiz_question"
	TableQuizOption   = "quiz_option"
)

type tableDef struct {
	name    string
	columns []string
	orderBy string
	bools   []string // sqlite hands these back as 0/1
}

// debugTables lists the dumpable tables and their columns explicitly.
var debugTables = map[string]tableDef{
	TableQuiz: {
		name:    "quizzes",
		columns: []string{"quiz_id", "name", "created_at", "updated_at"},
		orderBy: "quiz_id ASC",
	},
	TableQuizQuestion: {
		name:    "quiz_questions",
		columns: []string{"question_id", "quiz_id", "question_number", "text"},
		orderBy: "question_id ASC",
	},
	TableQuizOption: {
		name:    "quiz_options",
		columns: []string{"option_id", "question_id", "option_number", "text", "correct_answer"},
		orderBy: "option_id ASC",
		bools:   []string{"correct_answer"},
	},
}

// FetchTableData dumps every row of one table. Diagnostics only.
func (s *QuizService) FetchTableData(ctx context.Context, table string) ([]map[string]any, error) {
	def, ok := debugTables[table]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}

	rows := make([]map[string]any, 0)
	if err := s.DB.WithContext(ctx).
		Table(def.name).
		Select(def.columns).
		Order(def.orderBy).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("dump %s: %w", def.name, err)
	}
	for _, row := range rows {
		for _, col := range def.bools {
			row[col] = asBool(row[col])
		}
	}
	return rows, nil
}

func asBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int64:
		return x != 0
	case int32:
		return x != 0
	case int:
		return x != 0
	case float64:
		return x != 0
	case []byte:
		return asBool(string(x))
	case string:
		b, err := strconv.ParseBool(x)
		return err == nil && b
	default:
		return false
	}
}
