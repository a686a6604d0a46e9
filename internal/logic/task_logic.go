package logic

import (
	"errors"
	"fmt"

	"github.com/blues/ets/internal/model"
	"gorm.io/gorm"
)

// TaskLogic manages tasks and their tags.
type TaskLogic struct {
	db *gorm.DB
}

// NewTaskLogic creates the task business logic.
func NewTaskLogic(db *gorm.DB) *TaskLogic {
	return &TaskLogic{db: db}
}

// GetTasks lists tasks under the given scope, newest first, with tags
// preloaded.
func (t *TaskLogic) GetTasks(scope TaskScope) ([]model.Task, error) {
	query := t.db.Preload("Tags").Order("created_at DESC")

	if scope.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *scope.AssigneeID)
	} else if scope.OwnerID != nil {
		query = query.Where("assignee_id = ? OR creator_id = ?", *scope.OwnerID, *scope.OwnerID)
	}

	var tasks []model.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask fetches a single task with its tags.
func (t *TaskLogic) GetTask(id int64) (*model.Task, error) {
	var task model.Task
	if err := t.db.Preload("Tags").First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("task not found: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}
	return &task, nil
}

// CreateTask validates and stores a task plus its initial tags in one
// transaction. The caller has already resolved creator and assignee.
func (t *TaskLogic) CreateTask(task *model.Task, tags []int64) error {
	if err := validateTask(task); err != nil {
		return err
	}
	if task.Status == "" {
		task.Status = model.TaskStatusInProgress
	}

	err := t.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}
		for _, memberID := range tags {
			tag := model.TaskTag{TaskID: task.ID, MemberID: memberID}
			if err := tx.Create(&tag).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return t.reload(task)
}

// UpdateTask applies a partial update. Only keys present in updates
// change. When tags is non-nil the tag set is replaced wholesale;
// delete-then-reinsert runs inside the transaction so no reader observes
// a half-tagged task.
func (t *TaskLogic) UpdateTask(task *model.Task, updates map[string]interface{}, tags *[]int64) error {
	if hours, ok := updates["hours_spent"].(float64); ok && hours < 0 {
		return fmt.Errorf("hours_spent must not be negative: %w", ErrValidation)
	}
	if title, ok := updates["title"].(string); ok && title == "" {
		return fmt.Errorf("title must not be empty: %w", ErrValidation)
	}

	err := t.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(task).Updates(updates).Error; err != nil {
				return err
			}
		}
		if tags != nil {
			if err := tx.Where("task_id = ?", task.ID).Delete(&model.TaskTag{}).Error; err != nil {
				return err
			}
			for _, memberID := range *tags {
				tag := model.TaskTag{TaskID: task.ID, MemberID: memberID}
				if err := tx.Create(&tag).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return t.reload(task)
}

// TagTask tags a member on a task. Tagging the same pair twice is
// idempotent: the second call reports alreadyTagged without touching the
// store.
func (t *TaskLogic) TagTask(taskID, memberID int64) (alreadyTagged bool, err error) {
	var memberCount int64
	err = t.db.Model(&model.Member{}).Where("id = ?", memberID).Count(&memberCount).Error
	if err != nil {
		return false, fmt.Errorf("failed to check member: %w", err)
	}
	if memberCount == 0 {
		return false, fmt.Errorf("member not found: %w", ErrNotFound)
	}

	var count int64
	err = t.db.Model(&model.TaskTag{}).
		Where("task_id = ? AND member_id = ?", taskID, memberID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check tag: %w", err)
	}
	if count > 0 {
		return true, nil
	}

	tag := model.TaskTag{TaskID: taskID, MemberID: memberID}
	if err := t.db.Create(&tag).Error; err != nil {
		return false, fmt.Errorf("failed to create tag: %w", err)
	}
	return false, nil
}

func (t *TaskLogic) reload(task *model.Task) error {
	fresh, err := t.GetTask(task.ID)
	if err != nil {
		return err
	}
	*task = *fresh
	return nil
}

func validateTask(task *model.Task) error {
	if task.Title == "" {
		return fmt.Errorf("title must not be empty: %w", ErrValidation)
	}
	if task.HoursSpent != nil && *task.HoursSpent < 0 {
		return fmt.Errorf("hours_spent must not be negative: %w", ErrValidation)
	}
	return nil
}
