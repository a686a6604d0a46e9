package model

import (
	"time"
)

// SessionToken is an opaque bearer credential issued at login. A token is
// valid while expires_at is in the future; there is no revocation path.
// Expired rows are swept by the scheduler but never need to be.
type SessionToken struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Token     string    `json:"token" gorm:"size:255;not null;uniqueIndex"`
	MemberID  int64     `json:"member_id" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`

	Member *Member `json:"-" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}
