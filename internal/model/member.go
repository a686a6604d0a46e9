package model

import (
	"time"
)

// Member is a team member account. Leads hold elevated permissions:
// assign and edit any task, manage members and teams, run unscoped reports.
type Member struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	// Credentials
	Username     string `json:"username" gorm:"size:150;not null;uniqueIndex"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`

	// Profile
	Name        string `json:"name" gorm:"size:255;not null"`
	CareerLevel string `json:"career_level" gorm:"size:100;not null"`

	// Flags. Locking blocks new logins only; tokens issued before the
	// lock stay valid until they expire.
	IsLead   bool `json:"is_lead" gorm:"default:false"`
	IsLocked bool `json:"is_locked" gorm:"default:false"`

	TeamID *int64 `json:"team_id"`

	// Associations
	AssignedTasks []Task    `json:"-" gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL"`
	CreatedTasks  []Task    `json:"-" gorm:"foreignKey:CreatorID;constraint:OnDelete:SET NULL"`
	TaggedTasks   []TaskTag `json:"-" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}
