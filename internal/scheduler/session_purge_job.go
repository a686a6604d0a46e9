package scheduler

import (
	"time"

	"github.com/blues/ets/internal/config"
	"github.com/blues/ets/internal/logger"
	"github.com/blues/ets/internal/logic"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// SessionPurgeJob deletes expired session token rows. Expired tokens
// already fail validation, so the sweep only keeps the table small;
// skipping a run changes nothing observable.
type SessionPurgeJob struct {
	authLogic *logic.AuthLogic
	config    *config.Config
}

// NewSessionPurgeJob creates the purge job.
func NewSessionPurgeJob(db *gorm.DB, cfg *config.Config) *SessionPurgeJob {
	return &SessionPurgeJob{
		authLogic: logic.NewAuthLogic(db, cfg.Auth),
		config:    cfg,
	}
}

// GetName returns the job name.
func (j *SessionPurgeJob) GetName() string {
	return "session_token_purge"
}

// GetSchedule returns the job interval.
func (j *SessionPurgeJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.PurgeInterval) * time.Second)
}

// Execute runs one sweep.
func (j *SessionPurgeJob) Execute() {
	purged, err := j.authLogic.PurgeExpiredSessions()
	if err != nil {
		logger.Error("Failed to purge expired sessions: %v", err)
		return
	}
	if purged > 0 {
		logger.Info("Purged %d expired sessions", purged)
	}
}
