package logic

import (
	"testing"
	"time"

	"github.com/blues/ets/internal/model"
)

var testToday = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func day(offset int) time.Time {
	return time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		task model.Task
		want string
	}{
		{
			name: "active past due",
			task: model.Task{Status: "in_progress", DueDate: datePtr(day(-1)), CreatedAt: day(-10)},
			want: ColorPastDue,
		},
		{
			name: "due today is nearing not past due",
			task: model.Task{Status: "in_progress", DueDate: datePtr(day(0)), CreatedAt: day(-10)},
			want: ColorNearingDeadline,
		},
		{
			name: "due in two days",
			task: model.Task{Status: "in_progress", DueDate: datePtr(day(2)), CreatedAt: day(-10)},
			want: ColorNearingDeadline,
		},
		{
			name: "near deadline outranks just started",
			task: model.Task{Status: "in_progress", DueDate: datePtr(day(1)), CreatedAt: day(-5)},
			want: ColorNearingDeadline,
		},
		{
			name: "far deadline new task is just started",
			task: model.Task{Status: "in_progress", DueDate: datePtr(day(10)), CreatedAt: day(0)},
			want: ColorJustStarted,
		},
		{
			name: "far deadline old task",
			task: model.Task{Status: "in_progress", DueDate: datePtr(day(10)), CreatedAt: day(-5)},
			want: ColorInProgress,
		},
		{
			name: "no due date created today",
			task: model.Task{Status: "in_progress", CreatedAt: day(0)},
			want: ColorJustStarted,
		},
		{
			name: "no due date three days old",
			task: model.Task{Status: "in_progress", CreatedAt: day(-3)},
			want: ColorJustStarted,
		},
		{
			name: "no due date four days old",
			task: model.Task{Status: "in_progress", CreatedAt: day(-4)},
			want: ColorInProgress,
		},
		{
			name: "no due date never past due",
			task: model.Task{Status: "in_progress", CreatedAt: day(-100)},
			want: ColorInProgress,
		},
		{
			name: "unknown status counts as active",
			task: model.Task{Status: "blocked", DueDate: datePtr(day(-1)), CreatedAt: day(-10)},
			want: ColorPastDue,
		},
		{
			name: "completed after due date",
			task: model.Task{
				Status:    model.TaskStatusCompleted,
				DueDate:   datePtr(day(-2)),
				CreatedAt: day(-10),
				UpdatedAt: day(-1),
			},
			want: ColorCompletedPastDue,
		},
		{
			name: "completed on the due date",
			task: model.Task{
				Status:    model.TaskStatusCompleted,
				DueDate:   datePtr(day(-1)),
				CreatedAt: day(-10),
				UpdatedAt: day(-1),
			},
			want: ColorCompletedOnTime,
		},
		{
			name: "completed without due date",
			task: model.Task{Status: model.TaskStatusCompleted, CreatedAt: day(-10), UpdatedAt: day(0)},
			want: ColorCompletedOnTime,
		},
		{
			name: "completed falls back to created date",
			task: model.Task{
				Status:    model.TaskStatusCompleted,
				DueDate:   datePtr(day(-5)),
				CreatedAt: day(-1),
			},
			want: ColorCompletedPastDue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(&tt.task, testToday)
			if got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasBlockers(t *testing.T) {
	tests := []struct {
		name     string
		blockers string
		want     bool
	}{
		{"empty", "", false},
		{"whitespace only", "   \n\t", false},
		{"text", "waiting on API keys", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := model.Task{Blockers: tt.blockers}
			if got := HasBlockers(&task); got != tt.want {
				t.Errorf("HasBlockers(%q) = %v, want %v", tt.blockers, got, tt.want)
			}
		})
	}
}

func TestPeriodWindow(t *testing.T) {
	tests := []struct {
		period    string
		wantStart time.Time
		wantErr   bool
	}{
		{PeriodWeekly, day(-7), false},
		{PeriodMonthly, day(-30), false},
		{PeriodSemester, day(-182), false},
		{"quarterly", time.Time{}, true},
		{"", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			start, end, err := PeriodWindow(tt.period, testToday)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("PeriodWindow(%q) expected error", tt.period)
				}
				return
			}
			if err != nil {
				t.Fatalf("PeriodWindow(%q) unexpected error: %v", tt.period, err)
			}
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(day(0)) {
				t.Errorf("end = %v, want %v", end, day(0))
			}
		})
	}
}

func TestBuildRowZeroHoursIsNull(t *testing.T) {
	zero := 0.0
	task := model.Task{
		ID:         7,
		Title:      "Zero hour task",
		Status:     "in_progress",
		HoursSpent: &zero,
		CreatedAt:  day(0),
	}

	row := BuildRow(&task, testToday)
	if row.HoursSpent != nil {
		t.Errorf("HoursSpent = %v, want nil for zero hours", *row.HoursSpent)
	}
}

func TestBuildRow(t *testing.T) {
	hours := 3.5
	task := model.Task{
		ID:         42,
		Title:      "Onboard new feature",
		Status:     "in_progress",
		HoursSpent: &hours,
		DueDate:    datePtr(day(2)),
		Blockers:   "need API keys",
		CreatedAt:  day(0),
		Assignee:   &model.Member{Name: "Bailey Dev"},
	}

	row := BuildRow(&task, testToday)

	if row.TaskID != 42 {
		t.Errorf("TaskID = %d, want 42", row.TaskID)
	}
	if row.Assignee == nil || *row.Assignee != "Bailey Dev" {
		t.Errorf("Assignee = %v, want Bailey Dev", row.Assignee)
	}
	if row.HoursSpent == nil || *row.HoursSpent != 3.5 {
		t.Errorf("HoursSpent = %v, want 3.5", row.HoursSpent)
	}
	if row.DueDate == nil || *row.DueDate != "2025-03-17" {
		t.Errorf("DueDate = %v, want 2025-03-17", row.DueDate)
	}
	if row.ColorKey != ColorNearingDeadline {
		t.Errorf("ColorKey = %q, want %q", row.ColorKey, ColorNearingDeadline)
	}
	if !row.HasBlockers {
		t.Error("HasBlockers = false, want true")
	}
}

func TestSummarize(t *testing.T) {
	hoursA, hoursB := 2.5, 4.0
	rows := []ReportRow{
		{HoursSpent: &hoursA, ColorKey: ColorPastDue, HasBlockers: true},
		{HoursSpent: &hoursB, ColorKey: ColorCompletedPastDue},
		{HoursSpent: nil, ColorKey: ColorInProgress, HasBlockers: true},
		{HoursSpent: nil, ColorKey: ColorPastDue},
	}

	summary := Summarize(rows, day(-7), day(0))

	if summary.TotalTasks != 4 {
		t.Errorf("TotalTasks = %d, want 4", summary.TotalTasks)
	}
	if summary.TotalHours != 6.5 {
		t.Errorf("TotalHours = %v, want 6.5", summary.TotalHours)
	}
	if summary.TotalBlockers != 2 {
		t.Errorf("TotalBlockers = %d, want 2", summary.TotalBlockers)
	}
	if summary.TasksPastDue != 2 {
		t.Errorf("TasksPastDue = %d, want 2", summary.TasksPastDue)
	}
	if summary.TasksCompletedPastDue != 1 {
		t.Errorf("TasksCompletedPastDue = %d, want 1", summary.TasksCompletedPastDue)
	}
	if summary.StartDate != "2025-03-08" || summary.EndDate != "2025-03-15" {
		t.Errorf("dates = %s..%s, want 2025-03-08..2025-03-15", summary.StartDate, summary.EndDate)
	}
}

func TestSummarizePastDueMatchesRows(t *testing.T) {
	// Every active past-due task must land in tasks_past_due.
	var rows []ReportRow
	for i := 0; i < 5; i++ {
		task := model.Task{Status: "in_progress", DueDate: datePtr(day(-1 - i)), CreatedAt: day(-20)}
		rows = append(rows, BuildRow(&task, testToday))
	}

	summary := Summarize(rows, day(-30), day(0))
	if summary.TasksPastDue != len(rows) {
		t.Errorf("TasksPastDue = %d, want %d", summary.TasksPastDue, len(rows))
	}
}

func TestParseStatusSet(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"completed", []string{"completed"}},
		{"completed,in_progress", []string{"completed", "in_progress"}},
		{" completed , in_progress ,", []string{"completed", "in_progress"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseStatusSet(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseStatusSet(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseStatusSet(%q)[%d] = %q, want %q", tt.raw, i, got[i], tt.want[i])
				}
			}
		})
	}
}
