// models/challenge.go
package models

import "time"

// MaxChallengeOrder is the order of the final (quiz gate) challenge.
const MaxChallengeOrder = 5

type Challenge struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null;size:100" json:"title"`
	Description string    `gorm:"not null;type:text" json:"description"`
	Answer      string    `gorm:"not null;size:200" json:"answer"`
	CodeName    string    `gorm:"not null;size:100" json:"codeName"`
	Order       int       `gorm:"column:challenge_order;not null;index" json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Challenge) TableName() string {
	return "challenges"
}

// PublicChallenge is a challenge with the answer stripped, safe for
// non-admin responses.
type PublicChallenge struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CodeName    string `json:"codeName"`
	Order       int    `json:"order"`
}

// Public strips the answer field.
func (c *Challenge) Public() PublicChallenge {
	return PublicChallenge{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		CodeName:    c.CodeName,
		Order:       c.Order,
	}
}
