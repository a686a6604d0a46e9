package logic

import (
	"fmt"

	"github.com/blues/ets/internal/model"
	"gorm.io/gorm"
)

// TeamLogic manages teams.
type TeamLogic struct {
	db *gorm.DB
}

// NewTeamLogic creates the team business logic.
func NewTeamLogic(db *gorm.DB) *TeamLogic {
	return &TeamLogic{db: db}
}

// GetTeams lists all teams ordered by name.
func (t *TeamLogic) GetTeams() ([]model.Team, error) {
	var teams []model.Team
	if err := t.db.Order("name").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// CreateTeam creates a team with a unique name.
func (t *TeamLogic) CreateTeam(team *model.Team) error {
	if team.Name == "" {
		return fmt.Errorf("team name must not be empty: %w", ErrValidation)
	}

	var count int64
	err := t.db.Model(&model.Team{}).
		Where("name = ?", team.Name).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check team name: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("team name already taken: %w", ErrValidation)
	}

	if err := t.db.Create(team).Error; err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}
