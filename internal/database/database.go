package database

import (
	"fmt"

	"github.com/blues/ets/internal/config"
	"github.com/blues/ets/internal/logger"
	"github.com/blues/ets/internal/model"
	"github.com/blues/ets/internal/security"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// Init opens the database connection and migrates the schema.
func Init(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		NamingStrategy: &schema.NamingStrategy{
			SingularTable: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Team{},
		&model.Member{},
		&model.Task{},
		&model.TaskTag{},
		&model.SessionToken{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// Prepare runs the idempotent startup steps: ensure the default team
// exists, reattach orphaned members to it, and seed the first lead
// account on an empty install.
func Prepare(db *gorm.DB, cfg *config.Config) error {
	team, err := ensureDefaultTeam(db, cfg.Team.DefaultName)
	if err != nil {
		return err
	}

	if err := reassignOrphanedMembers(db, team.ID); err != nil {
		return err
	}

	return seedLeadAccount(db, cfg, team.ID)
}

func ensureDefaultTeam(db *gorm.DB, name string) (*model.Team, error) {
	var team model.Team
	if err := db.Where(model.Team{Name: name}).FirstOrCreate(&team).Error; err != nil {
		return nil, fmt.Errorf("failed to ensure default team: %w", err)
	}
	return &team, nil
}

// reassignOrphanedMembers repairs members left without a team after a
// team deletion (the FK is ON DELETE SET NULL).
func reassignOrphanedMembers(db *gorm.DB, teamID int64) error {
	result := db.Model(&model.Member{}).
		Where("team_id IS NULL").
		Update("team_id", teamID)
	if result.Error != nil {
		return fmt.Errorf("failed to reassign orphaned members: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		logger.Info("Reassigned %d members to default team", result.RowsAffected)
	}
	return nil
}

func seedLeadAccount(db *gorm.DB, cfg *config.Config, teamID int64) error {
	var count int64
	if err := db.Model(&model.Member{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count members: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := security.HashPassword(cfg.Auth.SeedPassword, cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	lead := model.Member{
		Username:     cfg.Auth.SeedUsername,
		PasswordHash: hash,
		Name:         cfg.Auth.SeedLeadName,
		CareerLevel:  cfg.Auth.SeedLeadLevel,
		IsLead:       true,
		TeamID:       &teamID,
	}
	if err := db.Create(&lead).Error; err != nil {
		return fmt.Errorf("failed to seed lead account: %w", err)
	}

	logger.Info("Seeded lead account %s", lead.Username)
	return nil
}
