package logic

import (
	"errors"
	"fmt"

	"github.com/blues/ets/internal/config"
	"github.com/blues/ets/internal/model"
	"github.com/blues/ets/internal/security"
	"gorm.io/gorm"
)

// MemberLogic manages member accounts. All mutation is lead-gated at the
// handler layer.
type MemberLogic struct {
	db  *gorm.DB
	cfg config.AuthConfig
}

// NewMemberLogic creates the member business logic.
func NewMemberLogic(db *gorm.DB, cfg config.AuthConfig) *MemberLogic {
	return &MemberLogic{db: db, cfg: cfg}
}

// GetMembers lists all members ordered by display name.
func (m *MemberLogic) GetMembers() ([]model.Member, error) {
	var members []model.Member
	if err := m.db.Order("name").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// GetMember fetches a single member.
func (m *MemberLogic) GetMember(id int64) (*model.Member, error) {
	var member model.Member
	if err := m.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("member not found: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch member: %w", err)
	}
	return &member, nil
}

// CreateMember creates an account. The username is pre-checked for
// uniqueness so the caller gets a validation error instead of a raw
// constraint violation.
func (m *MemberLogic) CreateMember(member *model.Member, password string) error {
	if member.Username == "" {
		return fmt.Errorf("username must not be empty: %w", ErrValidation)
	}
	if member.Name == "" {
		return fmt.Errorf("name must not be empty: %w", ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("password must not be empty: %w", ErrValidation)
	}

	var count int64
	err := m.db.Model(&model.Member{}).
		Where("username = ?", member.Username).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("username already taken: %w", ErrValidation)
	}

	hash, err := security.HashPassword(password, m.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	member.PasswordHash = hash

	if err := m.db.Create(member).Error; err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}

// UpdateMember applies a partial update. Only keys present in updates
// change; a "password" entry is hashed before storage.
func (m *MemberLogic) UpdateMember(id int64, updates map[string]interface{}) (*model.Member, error) {
	member, err := m.GetMember(id)
	if err != nil {
		return nil, err
	}

	if username, ok := updates["username"].(string); ok && username != member.Username {
		var count int64
		err := m.db.Model(&model.Member{}).
			Where("username = ? AND id <> ?", username, id).
			Count(&count).Error
		if err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if count > 0 {
			return nil, fmt.Errorf("username already taken: %w", ErrValidation)
		}
	}

	if password, ok := updates["password"].(string); ok {
		hash, err := security.HashPassword(password, m.cfg.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		delete(updates, "password")
		updates["password_hash"] = hash
	}

	if len(updates) > 0 {
		if err := m.db.Model(member).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update member: %w", err)
		}
	}

	return m.GetMember(id)
}

// DeleteMember removes an account. Tasks referencing it fall back to NULL
// assignee/creator; tags cascade away.
func (m *MemberLogic) DeleteMember(id int64) error {
	member, err := m.GetMember(id)
	if err != nil {
		return err
	}
	if err := m.db.Delete(member).Error; err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}
