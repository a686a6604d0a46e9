package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/blues/ets/internal/logic"
	"github.com/blues/ets/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TaskHandler struct {
	taskLogic *logic.TaskLogic
}

func NewTaskHandler(db *gorm.DB) *TaskHandler {
	return &TaskHandler{
		taskLogic: logic.NewTaskLogic(db),
	}
}

// GetTasks lists tasks visible to the actor, newest first. An explicit
// member_id query filters on the assignee and takes precedence over
// self-scoping; without it, non-leads only see tasks they own.
func (h *TaskHandler) GetTasks(c *gin.Context) {
	actor := actorFrom(c)

	var memberID *int64
	if raw := c.Query("member_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member_id"})
			return
		}
		memberID = &id
	}

	tasks, err := h.taskLogic.GetTasks(logic.ListTaskScope(actor, memberID))
	if err != nil {
		errorJSON(c, err)
		return
	}

	resp := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		resp = append(resp, newTaskResponse(&tasks[i]))
	}
	c.JSON(http.StatusOK, gin.H{"tasks": resp})
}

// GetTask fetches a single task.
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	task, err := h.taskLogic.GetTask(id)
	if err != nil {
		errorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": newTaskResponse(task)})
}

// CreateTask creates a task owned by the actor. Non-leads may only assign
// to themselves; the assignee defaults to the actor when unset.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	actor := actorFrom(c)

	var req TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.AssigneeID != nil && !logic.CanAssign(actor, *req.AssigneeID) {
		errorJSON(c, fmt.Errorf("only leads can assign tasks to others: %w", logic.ErrForbidden))
		return
	}

	dueDate, err := parseDateParam(stringValue(req.DueDate))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "due_date must be YYYY-MM-DD"})
		return
	}

	assigneeID := actor.ID
	if req.AssigneeID != nil {
		assigneeID = *req.AssigneeID
	}
	creatorID := actor.ID

	task := model.Task{
		Title:      req.Title,
		Details:    req.Details,
		HoursSpent: req.HoursSpent,
		DueDate:    dueDate,
		Blockers:   req.Blockers,
		Comments:   req.Comments,
		Status:     req.Status,
		AssigneeID: &assigneeID,
		CreatorID:  &creatorID,
	}
	if err := h.taskLogic.CreateTask(&task, req.Tags); err != nil {
		errorJSON(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": newTaskResponse(&task)})
}

// UpdateTask applies a partial update. Allowed for leads, the assignee or
// the creator; handing the task to a different assignee additionally
// requires lead privileges.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	actor := actorFrom(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	task, err := h.taskLogic.GetTask(id)
	if err != nil {
		errorJSON(c, err)
		return
	}

	if !logic.CanEditTask(actor, task) {
		errorJSON(c, fmt.Errorf("not allowed to edit this task: %w", logic.ErrForbidden))
		return
	}

	var req TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The lead check only applies when the assignee actually changes.
	if req.AssigneeID != nil {
		changed := task.AssigneeID == nil || *task.AssigneeID != *req.AssigneeID
		if changed && !actor.IsLead {
			errorJSON(c, fmt.Errorf("reassigning tasks requires lead privileges: %w", logic.ErrForbidden))
			return
		}
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Details != nil {
		updates["details"] = *req.Details
	}
	if req.HoursSpent != nil {
		updates["hours_spent"] = *req.HoursSpent
	}
	if req.DueDate != nil {
		dueDate, err := parseDateParam(*req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "due_date must be YYYY-MM-DD"})
			return
		}
		updates["due_date"] = dueDate
	}
	if req.Blockers != nil {
		updates["blockers"] = *req.Blockers
	}
	if req.Comments != nil {
		updates["comments"] = *req.Comments
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.AssigneeID != nil {
		updates["assignee_id"] = *req.AssigneeID
	}

	if err := h.taskLogic.UpdateTask(task, updates, req.Tags); err != nil {
		errorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": newTaskResponse(task)})
}

// TagTask tags a member on a task, idempotently. Same ownership rule as
// editing.
func (h *TaskHandler) TagTask(c *gin.Context) {
	actor := actorFrom(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	task, err := h.taskLogic.GetTask(id)
	if err != nil {
		errorJSON(c, err)
		return
	}

	if !logic.CanEditTask(actor, task) {
		errorJSON(c, fmt.Errorf("not allowed to tag this task: %w", logic.ErrForbidden))
		return
	}

	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alreadyTagged, err := h.taskLogic.TagTask(task.ID, req.MemberID)
	if err != nil {
		errorJSON(c, err)
		return
	}
	if alreadyTagged {
		c.JSON(http.StatusOK, gin.H{"message": "already tagged"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "tagged"})
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
