// models/group_progress.go
package models

import "time"

// GroupProgress is the persisted per-team record. Membership statistics are
// never stored here; they are recomputed from the live user set on every
// read (see services.GroupSnapshot).
type GroupProgress struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	GroupCode     string    `gorm:"uniqueIndex;not null;size:20" json:"groupCode"`
	CompletedQuiz bool      `gorm:"default:false" json:"completedQuiz"`
	CompletionTime int64    `gorm:"default:0" json:"completionTime"` // elapsed ms of the first finisher
	GroupPhoto    string    `gorm:"type:text" json:"-"`
	PhotoID       string    `gorm:"size:40" json:"photoId,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (GroupProgress) TableName() string {
	return "group_progress"
}

// HasPhoto reports whether a photo payload has been stored for the group.
func (g *GroupProgress) HasPhoto() bool {
	return g != nil && g.GroupPhoto != ""
}
