// models/quiz.go
package models

import (
	"time"

	"github.com/lib/pq"
)

// QuizQuestionCount is the fixed number of questions per group.
const QuizQuestionCount = 3

type Quiz struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	GroupCode     string         `gorm:"not null;size:20;uniqueIndex:idx_quizzes_group_index" json:"groupCode"`
	Question      string         `gorm:"not null;type:text" json:"question"`
	Options       pq.StringArray `gorm:"type:text[]" json:"options"`
	CorrectOption int            `gorm:"not null" json:"correctOption"`
	QuizIndex     int            `gorm:"not null;uniqueIndex:idx_quizzes_group_index" json:"quizIndex"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// PublicQuiz is a quiz question with the correct option stripped, safe for
// non-admin responses.
type PublicQuiz struct {
	ID        uint     `json:"id"`
	GroupCode string   `json:"groupCode"`
	Question  string   `json:"question"`
	Options   []string `json:"options"`
	QuizIndex int      `json:"quizIndex"`
}

// Public strips the correct-option field.
func (q *Quiz) Public() PublicQuiz {
	return PublicQuiz{
		ID:        q.ID,
		GroupCode: q.GroupCode,
		Question:  q.Question,
		Options:   q.Options,
		QuizIndex: q.QuizIndex,
	}
}
