package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/thesolution-at/alz-backend/internal/common"
	"github.com/thesolution-at/alz-backend/internal/domain"
	"github.com/thesolution-at/alz-backend/internal/service"
)

// AdminNewsHandler handles the authenticated news management endpoints
type AdminNewsHandler struct {
	admin service.AdminService
}

// NewAdminNewsHandler creates a new AdminNewsHandler
func NewAdminNewsHandler(admin service.AdminService) *AdminNewsHandler {
	return &AdminNewsHandler{admin: admin}
}

// ListNews godoc
// @Summary      News-Verwaltung: Liste (Admin)
// @Description  Kompakte News-Liste für das Admin-Panel
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=[]domain.AdminNewsItem}
// @Failure      401  {object}  common.APIResponse
// @Failure      503  {object}  common.APIResponse
// @Router       /admin/news [get]
func (h *AdminNewsHandler) ListNews(c *gin.Context) {
	items, err := h.admin.ListNews(c.Request.Context())
	if err != nil {
		writeAdminError(c, err, "News konnten nicht geladen werden")
		return
	}

	common.SuccessResponse(c, items, &common.Meta{Total: len(items)})
}

// CreateNews godoc
// @Summary      News erstellen (Admin)
// @Description  Erstellt und veröffentlicht einen News-Artikel und stößt das Redeploy an
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.CreateNewsRequest  true  "Neuer Artikel"
// @Success      200  {object}  common.APIResponse{data=domain.CreateNewsResult}
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      503  {object}  common.APIResponse
// @Router       /admin/news [post]
func (h *AdminNewsHandler) CreateNews(c *gin.Context) {
	var req domain.CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Ungültige Anfrage", err)
		return
	}

	result, err := h.admin.CreateNews(c.Request.Context(), &req)
	if err != nil {
		writeAdminError(c, err, "Artikel konnte nicht erstellt werden")
		return
	}

	common.SuccessResponse(c, result, &common.Meta{Deploy: result.Deploy})
}

// DeleteNews godoc
// @Summary      News löschen (Admin)
// @Description  Depubliziert und löscht einen News-Artikel
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  query  string  true  "Eintrags-ID"
// @Success      200  {object}  common.APIResponse{data=domain.DeleteResult}
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      503  {object}  common.APIResponse
// @Router       /admin/news [delete]
func (h *AdminNewsHandler) DeleteNews(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		common.ErrorResponse(c, 400, "Eintrags-ID fehlt", nil)
		return
	}

	result, err := h.admin.DeleteNews(c.Request.Context(), id)
	if err != nil {
		writeAdminError(c, err, "Artikel konnte nicht gelöscht werden")
		return
	}

	common.SuccessResponse(c, result, &common.Meta{Deploy: result.Deploy})
}

// writeAdminError maps the admin service errors onto HTTP statuses
func writeAdminError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, common.ErrNotConfigured):
		common.ErrorResponse(c, 503, "Contentful Management API ist nicht konfiguriert", nil)
	case errors.Is(err, common.ErrDuplicateSlug):
		common.ErrorResponse(c, 400, "Ein Artikel mit diesem Slug existiert bereits", nil)
	case errors.Is(err, common.ErrInvalidInput):
		common.ErrorResponse(c, 400, err.Error(), nil)
	case errors.Is(err, common.ErrNotFound):
		common.ErrorResponse(c, 404, "Eintrag nicht gefunden", nil)
	default:
		common.ErrorResponse(c, 500, fallback, err)
	}
}
