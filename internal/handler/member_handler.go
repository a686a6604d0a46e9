package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/blues/ets/internal/config"
	"github.com/blues/ets/internal/logic"
	"github.com/blues/ets/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MemberHandler struct {
	memberLogic *logic.MemberLogic
}

func NewMemberHandler(db *gorm.DB, cfg config.AuthConfig) *MemberHandler {
	return &MemberHandler{
		memberLogic: logic.NewMemberLogic(db, cfg),
	}
}

// GetMembers lists all members. Open to any authenticated member.
func (h *MemberHandler) GetMembers(c *gin.Context) {
	members, err := h.memberLogic.GetMembers()
	if err != nil {
		errorJSON(c, err)
		return
	}

	resp := make([]MemberResponse, 0, len(members))
	for i := range members {
		resp = append(resp, newMemberResponse(&members[i]))
	}
	c.JSON(http.StatusOK, gin.H{"members": resp})
}

// GetMember fetches a single member.
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	member, err := h.memberLogic.GetMember(id)
	if err != nil {
		errorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"member": newMemberResponse(member)})
}

// CreateMember creates an account. Lead-only.
func (h *MemberHandler) CreateMember(c *gin.Context) {
	actor := actorFrom(c)
	if !actor.IsLead {
		errorJSON(c, fmt.Errorf("member management requires lead privileges: %w", logic.ErrForbidden))
		return
	}

	var req MemberCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member := model.Member{
		Username:    req.Username,
		Name:        req.Name,
		CareerLevel: req.CareerLevel,
		IsLead:      req.IsLead,
		TeamID:      req.TeamID,
	}
	if err := h.memberLogic.CreateMember(&member, req.Password); err != nil {
		errorJSON(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"member": newMemberResponse(&member)})
}

// UpdateMember applies a partial update, including lock/unlock. Lead-only.
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	actor := actorFrom(c)
	if !actor.IsLead {
		errorJSON(c, fmt.Errorf("member management requires lead privileges: %w", logic.ErrForbidden))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	var req MemberUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Password != nil {
		updates["password"] = *req.Password
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.CareerLevel != nil {
		updates["career_level"] = *req.CareerLevel
	}
	if req.IsLead != nil {
		updates["is_lead"] = *req.IsLead
	}
	if req.IsLocked != nil {
		updates["is_locked"] = *req.IsLocked
	}
	if req.TeamID != nil {
		updates["team_id"] = *req.TeamID
	}

	member, err := h.memberLogic.UpdateMember(id, updates)
	if err != nil {
		errorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"member": newMemberResponse(member)})
}

// DeleteMember removes an account. Lead-only.
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	actor := actorFrom(c)
	if !actor.IsLead {
		errorJSON(c, fmt.Errorf("member management requires lead privileges: %w", logic.ErrForbidden))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	if err := h.memberLogic.DeleteMember(id); err != nil {
		errorJSON(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
