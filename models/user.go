// models/user.go
package models

import (
	"strconv"
	"time"

	"github.com/lib/pq"
)

// AdminGroupCode is the reserved group designation for administrators.
const AdminGroupCode = "admin"

// PlayerGroupCodes lists the four fixed teams players can join.
var PlayerGroupCodes = []string{"1", "2", "3", "4"}

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	Password  string `gorm:"not null" json:"-"`
	GroupCode string `gorm:"not null;index;size:20" json:"groupCode"`

	// Hunt progress
	Progress            int            `gorm:"default:0" json:"progress"`
	CurrentChallenge    int            `gorm:"default:1" json:"currentChallenge"`
	CompletedChallenges pq.StringArray `gorm:"type:text[]" json:"completedChallenges"`

	// Quiz progress
	LastQuizQuestion int  `gorm:"default:1" json:"lastQuizQuestion"`
	CompletedQuiz    bool `gorm:"default:false" json:"completedQuiz"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user carries the administrative group code.
func (u *User) IsAdmin() bool {
	return u.GroupCode == AdminGroupCode
}

// IsValidGroupCode reports whether code is one of the four player groups.
func IsValidGroupCode(code string) bool {
	for _, g := range PlayerGroupCodes {
		if g == code {
			return true
		}
	}
	return false
}

// HasCompleted reports whether the challenge with the given order is in the
// user's completed set.
func (u *User) HasCompleted(order int) bool {
	key := strconv.Itoa(order)
	for _, id := range u.CompletedChallenges {
		if id == key {
			return true
		}
	}
	return false
}

// AddCompleted inserts the challenge order into the completed set and
// recomputes the derived fields. Duplicate orders are ignored, so calling it
// twice for the same order is a no-op.
func (u *User) AddCompleted(order int) {
	if u.HasCompleted(order) {
		return
	}
	u.CompletedChallenges = append(u.CompletedChallenges, strconv.Itoa(order))
	u.Progress = ProgressFor(len(u.CompletedChallenges))

	// Advisory pointer only, never moves backward.
	next := order + 1
	if next > MaxChallengeOrder {
		next = MaxChallengeOrder
	}
	if next > u.CurrentChallenge {
		u.CurrentChallenge = next
	}
}

// ProgressFor converts a completed-challenge count to a percentage.
func ProgressFor(completedCount int) int {
	p := completedCount * 20
	if p > 100 {
		p = 100
	}
	return p
}
