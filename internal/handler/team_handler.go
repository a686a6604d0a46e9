package handler

import (
	"fmt"
	"net/http"

	"github.com/blues/ets/internal/logic"
	"github.com/blues/ets/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TeamHandler struct {
	teamLogic *logic.TeamLogic
}

func NewTeamHandler(db *gorm.DB) *TeamHandler {
	return &TeamHandler{
		teamLogic: logic.NewTeamLogic(db),
	}
}

// GetTeams lists all teams.
func (h *TeamHandler) GetTeams(c *gin.Context) {
	teams, err := h.teamLogic.GetTeams()
	if err != nil {
		errorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// CreateTeam creates a team. Lead-only.
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	actor := actorFrom(c)
	if !actor.IsLead {
		errorJSON(c, fmt.Errorf("team management requires lead privileges: %w", logic.ErrForbidden))
		return
	}

	var req TeamCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team := model.Team{Name: req.Name}
	if err := h.teamLogic.CreateTeam(&team); err != nil {
		errorJSON(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"team": team})
}
