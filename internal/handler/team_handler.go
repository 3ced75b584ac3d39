package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/thesolution-at/alz-backend/internal/common"
	"github.com/thesolution-at/alz-backend/internal/service"
)

// TeamHandler handles HTTP requests for the team page
type TeamHandler struct {
	content service.ContentService
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(content service.ContentService) *TeamHandler {
	return &TeamHandler{content: content}
}

// ListTeam godoc
// @Summary      Team-Liste abrufen
// @Description  Alle Team-Mitglieder in ihrer Anzeigereihenfolge
// @Tags         team
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=[]domain.TeamMember}
// @Router       /team [get]
func (h *TeamHandler) ListTeam(c *gin.Context) {
	members := h.content.GetTeamMembers(c.Request.Context())
	common.SuccessResponse(c, members, &common.Meta{Total: len(members)})
}

// GetTeamMember godoc
// @Summary      Team-Mitglied abrufen
// @Description  Ein Team-Mitglied anhand seiner ID abrufen
// @Tags         team
// @Produce      json
// @Param        id  path  string  true  "Eintrags-ID"
// @Success      200  {object}  common.APIResponse{data=domain.TeamMember}
// @Failure      404  {object}  common.APIResponse
// @Router       /team/{id} [get]
func (h *TeamHandler) GetTeamMember(c *gin.Context) {
	id := c.Param("id")

	member := h.content.GetTeamMemberByID(c.Request.Context(), id)
	if member == nil {
		common.ErrorResponse(c, 404, "Team-Mitglied nicht gefunden", nil)
		return
	}

	common.SuccessResponse(c, member, nil)
}
