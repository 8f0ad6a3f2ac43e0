package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/builder_site/internal/session"
)

// TeamHandler handles team-related HTTP requests.
type TeamHandler struct {
	teamService TeamServiceInterface
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(teamService TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// GetTeam handles GET /api/team.
func (h *TeamHandler) GetTeam(c *gin.Context) {
	ctx := c.Request.Context()

	team, err := h.teamService.TeamForSession(ctx, session.FromContext(ctx))
	if err != nil {
		Fail(c, err)
		return
	}
	if team == nil {
		Unauthorized(c)
		return
	}

	c.JSON(http.StatusOK, team)
}
