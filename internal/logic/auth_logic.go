package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/blues/ets/internal/config"
	"github.com/blues/ets/internal/model"
	"github.com/blues/ets/internal/security"
	"gorm.io/gorm"
)

// AuthLogic handles login, session resolution and password changes.
type AuthLogic struct {
	db  *gorm.DB
	cfg config.AuthConfig
}

// NewAuthLogic creates the auth business logic.
func NewAuthLogic(db *gorm.DB, cfg config.AuthConfig) *AuthLogic {
	return &AuthLogic{db: db, cfg: cfg}
}

// Login verifies the credentials and issues a session token. A locked
// account fails with Forbidden even when the password is correct, and no
// token is issued.
func (a *AuthLogic) Login(username, password string) (string, *model.Member, error) {
	var member model.Member
	if err := a.db.Where("username = ?", username).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fmt.Errorf("invalid username or password: %w", ErrUnauthenticated)
		}
		return "", nil, fmt.Errorf("failed to look up member: %w", err)
	}

	if !security.VerifyPassword(password, member.PasswordHash) {
		return "", nil, fmt.Errorf("invalid username or password: %w", ErrUnauthenticated)
	}

	if member.IsLocked {
		return "", nil, fmt.Errorf("account is locked: %w", ErrForbidden)
	}

	session := model.SessionToken{
		Token:     security.IssueToken(),
		MemberID:  member.ID,
		ExpiresAt: security.TokenExpiry(a.cfg.TokenTTLDays),
	}
	if err := a.db.Create(&session).Error; err != nil {
		return "", nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session.Token, &member, nil
}

// ResolveActor returns the member behind a bearer token. Missing, unknown
// or expired tokens fail with Unauthenticated. A locked member with a
// live token still resolves: locking does not revoke issued sessions.
func (a *AuthLogic) ResolveActor(token string) (*model.Member, error) {
	if token == "" {
		return nil, fmt.Errorf("missing bearer token: %w", ErrUnauthenticated)
	}

	var session model.SessionToken
	err := a.db.Where("token = ? AND expires_at > ?", token, time.Now().UTC()).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invalid or expired token: %w", ErrUnauthenticated)
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	var member model.Member
	if err := a.db.First(&member, session.MemberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invalid or expired token: %w", ErrUnauthenticated)
		}
		return nil, fmt.Errorf("failed to look up member: %w", err)
	}

	return &member, nil
}

// ChangePassword rotates the actor's password after verifying the current one.
func (a *AuthLogic) ChangePassword(actor *model.Member, current, newPassword string) error {
	if !security.VerifyPassword(current, actor.PasswordHash) {
		return fmt.Errorf("current password is incorrect: %w", ErrUnauthenticated)
	}
	if newPassword == "" {
		return fmt.Errorf("new password must not be empty: %w", ErrValidation)
	}

	hash, err := security.HashPassword(newPassword, a.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = a.db.Model(&model.Member{}).
		Where("id = ?", actor.ID).
		Update("password_hash", hash).Error
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// PurgeExpiredSessions deletes session rows past their expiry. Validity
// checks already exclude them, so this only reclaims storage.
func (a *AuthLogic) PurgeExpiredSessions() (int64, error) {
	result := a.db.Where("expires_at <= ?", time.Now().UTC()).
		Delete(&model.SessionToken{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
