package model

import (
	"time"
)

// Team groups members. Deleting a team leaves its members with a NULL
// team_id; the startup reconciliation moves them to the default team.
type Team struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;uniqueIndex" binding:"required"`
	CreatedAt time.Time `json:"created_at"`

	Members []Member `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}
