package model

import (
	"time"
)

// TaskTag links a member to a task. A member may be tagged on a given
// task at most once.
type TaskTag struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	TaskID    int64     `json:"task_id" gorm:"not null;uniqueIndex:uq_task_member_tag"`
	MemberID  int64     `json:"member_id" gorm:"not null;uniqueIndex:uq_task_member_tag"`
	CreatedAt time.Time `json:"created_at"`
}
