package handler

import (
	"time"

	"github.com/blues/ets/internal/model"
)

// Request payloads. Update payloads use pointer fields so only the keys
// present in the JSON body are applied.

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type TeamCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

type MemberCreateRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Name        string `json:"name" binding:"required"`
	CareerLevel string `json:"career_level"`
	IsLead      bool   `json:"is_lead"`
	TeamID      *int64 `json:"team_id"`
}

type MemberUpdateRequest struct {
	Username    *string `json:"username"`
	Password    *string `json:"password"`
	Name        *string `json:"name"`
	CareerLevel *string `json:"career_level"`
	IsLead      *bool   `json:"is_lead"`
	IsLocked    *bool   `json:"is_locked"`
	TeamID      *int64  `json:"team_id"`
}

type TaskCreateRequest struct {
	Title      string   `json:"title" binding:"required"`
	Details    string   `json:"details"`
	HoursSpent *float64 `json:"hours_spent"`
	DueDate    *string  `json:"due_date"` // YYYY-MM-DD
	Blockers   string   `json:"blockers"`
	Comments   string   `json:"comments"`
	Status     string   `json:"status"`
	AssigneeID *int64   `json:"assignee_id"`
	Tags       []int64  `json:"tags"`
}

type TaskUpdateRequest struct {
	Title      *string  `json:"title"`
	Details    *string  `json:"details"`
	HoursSpent *float64 `json:"hours_spent"`
	DueDate    *string  `json:"due_date"` // YYYY-MM-DD
	Blockers   *string  `json:"blockers"`
	Comments   *string  `json:"comments"`
	Status     *string  `json:"status"`
	AssigneeID *int64   `json:"assignee_id"`
	Tags       *[]int64 `json:"tags"`
}

type TagRequest struct {
	MemberID int64 `json:"member_id" binding:"required"`
}

// Response models.

// MemberResponse is a member without credential fields.
type MemberResponse struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	CareerLevel string    `json:"career_level"`
	IsLead      bool      `json:"is_lead"`
	IsLocked    bool      `json:"is_locked"`
	TeamID      *int64    `json:"team_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TaskResponse is a task with its tagged member ids inlined.
type TaskResponse struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Details    string     `json:"details"`
	HoursSpent *float64   `json:"hours_spent"`
	DueDate    *string    `json:"due_date"`
	Blockers   string     `json:"blockers"`
	Comments   string     `json:"comments"`
	Status     string     `json:"status"`
	AssigneeID *int64     `json:"assignee_id"`
	CreatorID  *int64     `json:"creator_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Tags       []int64   `json:"tags"`
}

type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	Member      MemberResponse `json:"member"`
}

func newMemberResponse(m *model.Member) MemberResponse {
	return MemberResponse{
		ID:          m.ID,
		Username:    m.Username,
		Name:        m.Name,
		CareerLevel: m.CareerLevel,
		IsLead:      m.IsLead,
		IsLocked:    m.IsLocked,
		TeamID:      m.TeamID,
		CreatedAt:   m.CreatedAt,
	}
}

func newTaskResponse(t *model.Task) TaskResponse {
	resp := TaskResponse{
		ID:         t.ID,
		Title:      t.Title,
		Details:    t.Details,
		HoursSpent: t.HoursSpent,
		Blockers:   t.Blockers,
		Comments:   t.Comments,
		Status:     t.Status,
		AssigneeID: t.AssigneeID,
		CreatorID:  t.CreatorID,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
		Tags:       t.TagMemberIDs(),
	}
	if t.DueDate != nil {
		due := t.DueDate.Format(dateLayout)
		resp.DueDate = &due
	}
	return resp
}
