package logic

import (
	"fmt"
	"strings"
	"time"

	"github.com/blues/ets/internal/model"
	"gorm.io/gorm"
)

// Color keys: the report engine's per-task classification buckets.
const (
	ColorCompletedOnTime  = "completed_on_time"
	ColorCompletedPastDue = "completed_past_due"
	ColorPastDue          = "past_due"
	ColorNearingDeadline  = "nearing_deadline"
	ColorJustStarted      = "just_started"
	ColorInProgress       = "in_progress"
)

const dateLayout = "2006-01-02"

// Report periods.
const (
	PeriodWeekly   = "weekly"
	PeriodMonthly  = "monthly"
	PeriodSemester = "semester"
)

// ReportFilters selects the tasks included in a report. Dates are
// inclusive and compared against the task's creation date.
type ReportFilters struct {
	StartDate time.Time
	EndDate   time.Time
	MemberID  *int64   // assignee filter
	Statuses  []string // empty means all statuses
}

// ReportRow is one classified task. The formatter renders rows as-is and
// never re-derives classification.
type ReportRow struct {
	TaskID      int64    `json:"task_id"`
	Title       string   `json:"title"`
	Assignee    *string  `json:"assignee"`
	HoursSpent  *float64 `json:"hours_spent"`
	Status      string   `json:"status"`
	DueDate     *string  `json:"due_date"`
	CreatedAt   string   `json:"created_at"`
	ColorKey    string   `json:"color_key"`
	HasBlockers bool     `json:"has_blockers"`
}

// ReportSummary aggregates the rows of one report.
type ReportSummary struct {
	TotalTasks            int     `json:"total_tasks"`
	TotalHours            float64 `json:"total_hours"`
	TotalBlockers         int     `json:"total_blockers"`
	TasksPastDue          int     `json:"tasks_past_due"`
	TasksCompletedPastDue int     `json:"tasks_completed_past_due"`
	StartDate             string  `json:"start_date"`
	EndDate               string  `json:"end_date"`
}

// ReportLogic builds reports over the task store.
type ReportLogic struct {
	db *gorm.DB
}

// NewReportLogic creates the report business logic.
func NewReportLogic(db *gorm.DB) *ReportLogic {
	return &ReportLogic{db: db}
}

// PeriodWindow resolves a period name into an inclusive date range ending
// today.
func PeriodWindow(period string, today time.Time) (start, end time.Time, err error) {
	end = dateOnly(today)
	switch period {
	case PeriodWeekly:
		start = end.AddDate(0, 0, -7)
	case PeriodMonthly:
		start = end.AddDate(0, 0, -30)
	case PeriodSemester:
		start = end.AddDate(0, 0, -182)
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown period %q: %w", period, ErrValidation)
	}
	return start, end, nil
}

// Classify buckets a task by status and dates. Deterministic given the
// task fields and today's date.
func Classify(task *model.Task, today time.Time) string {
	today = dateOnly(today)

	if task.Status == model.TaskStatusCompleted {
		completed := task.UpdatedAt
		if completed.IsZero() {
			completed = task.CreatedAt
		}
		if task.DueDate != nil && dateOnly(completed).After(dateOnly(*task.DueDate)) {
			return ColorCompletedPastDue
		}
		return ColorCompletedOnTime
	}

	if task.DueDate != nil {
		due := dateOnly(*task.DueDate)
		if due.Before(today) {
			return ColorPastDue
		}
		// Due within two days outranks the just-started window.
		if !due.After(today.AddDate(0, 0, 2)) {
			return ColorNearingDeadline
		}
	}

	if !dateOnly(task.CreatedAt).Before(today.AddDate(0, 0, -3)) {
		return ColorJustStarted
	}
	return ColorInProgress
}

// HasBlockers reports whether the task has non-whitespace blocker text.
func HasBlockers(task *model.Task) bool {
	return strings.TrimSpace(task.Blockers) != ""
}

// BuildRow renders one task into a report row. Zero logged hours render
// as null, the same as no hours at all; downstream consumers rely on
// that mapping.
func BuildRow(task *model.Task, today time.Time) ReportRow {
	row := ReportRow{
		TaskID:      task.ID,
		Title:       task.Title,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt.UTC().Format(time.RFC3339),
		ColorKey:    Classify(task, today),
		HasBlockers: HasBlockers(task),
	}

	if task.Assignee != nil {
		name := task.Assignee.Name
		row.Assignee = &name
	}
	if task.HoursSpent != nil && *task.HoursSpent != 0 {
		hours := *task.HoursSpent
		row.HoursSpent = &hours
	}
	if task.DueDate != nil {
		due := task.DueDate.Format(dateLayout)
		row.DueDate = &due
	}

	return row
}

// Summarize aggregates rows into the report summary. Null hours count as
// zero.
func Summarize(rows []ReportRow, start, end time.Time) *ReportSummary {
	summary := &ReportSummary{
		TotalTasks: len(rows),
		StartDate:  start.Format(dateLayout),
		EndDate:    end.Format(dateLayout),
	}
	for _, row := range rows {
		if row.HoursSpent != nil {
			summary.TotalHours += *row.HoursSpent
		}
		if row.HasBlockers {
			summary.TotalBlockers++
		}
		switch row.ColorKey {
		case ColorPastDue:
			summary.TasksPastDue++
		case ColorCompletedPastDue:
			summary.TasksCompletedPastDue++
		}
	}
	return summary
}

// Build queries the filtered tasks and produces the summary and rows.
func (r *ReportLogic) Build(filters ReportFilters) (*ReportSummary, []ReportRow, error) {
	start := dateOnly(filters.StartDate)
	end := dateOnly(filters.EndDate)
	if end.Before(start) {
		return nil, nil, fmt.Errorf("end_date before start_date: %w", ErrValidation)
	}

	query := r.db.Preload("Assignee").
		Where("created_at >= ? AND created_at < ?", start, end.AddDate(0, 0, 1)).
		Order("created_at DESC")

	if filters.MemberID != nil {
		query = query.Where("assignee_id = ?", *filters.MemberID)
	}
	if len(filters.Statuses) > 0 {
		query = query.Where("status IN ?", filters.Statuses)
	}

	var tasks []model.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to query report tasks: %w", err)
	}

	today := time.Now().UTC()
	rows := make([]ReportRow, 0, len(tasks))
	for i := range tasks {
		rows = append(rows, BuildRow(&tasks[i], today))
	}

	return Summarize(rows, start, end), rows, nil
}

// ParseStatusSet splits a comma-separated status filter, dropping blanks.
func ParseStatusSet(raw string) []string {
	if raw == "" {
		return nil
	}
	var statuses []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			statuses = append(statuses, s)
		}
	}
	return statuses
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
