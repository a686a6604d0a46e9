package model

import (
	"time"
)

// Task is a unit of tracked work.
type Task struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Content
	Title    string `json:"title" gorm:"size:255;not null" binding:"required"`
	Details  string `json:"details" gorm:"type:text"`
	Blockers string `json:"blockers" gorm:"type:text"`
	Comments string `json:"comments" gorm:"type:text"`

	// Tracking. HoursSpent is nil when no hours were logged.
	HoursSpent *float64   `json:"hours_spent" gorm:"type:numeric(6,2)"`
	DueDate    *time.Time `json:"due_date" gorm:"type:date"`

	// Status is stored as given; values outside the known set are
	// tolerated and reported as active.
	Status string `json:"status" gorm:"size:50;default:'in_progress'"`

	// Ownership
	AssigneeID *int64 `json:"assignee_id"`
	CreatorID  *int64 `json:"creator_id"`

	// Associations
	Assignee *Member   `json:"-" gorm:"foreignKey:AssigneeID"`
	Creator  *Member   `json:"-" gorm:"foreignKey:CreatorID"`
	Tags     []TaskTag `json:"-" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// Known task statuses.
const (
	TaskStatusInProgress = "in_progress" // active work
	TaskStatusCompleted  = "completed"   // the only status reporting treats specially
)

// TagMemberIDs returns the member ids tagged on the task, in load order.
func (t *Task) TagMemberIDs() []int64 {
	ids := make([]int64, 0, len(t.Tags))
	for _, tag := range t.Tags {
		ids = append(ids, tag.MemberID)
	}
	return ids
}
