package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thesolution-at/alz-backend/internal/common"
	"github.com/thesolution-at/alz-backend/internal/service"
)

// GalleryHandler handles HTTP requests for the public gallery
type GalleryHandler struct {
	content service.ContentService
}

// NewGalleryHandler creates a new GalleryHandler
func NewGalleryHandler(content service.ContentService) *GalleryHandler {
	return &GalleryHandler{content: content}
}

// ListImages godoc
// @Summary      Galerie-Bilder abrufen
// @Description  Alle Bilder aus allen Galerie-Quellen, einzeln aufgelöst und sortiert
// @Tags         gallery
// @Produce      json
// @Param        category  query  string  false  "Kategorie-Filter ('all' oder leer für alle)"
// @Param        limit     query  int     false  "Maximale Anzahl"
// @Success      200  {object}  common.APIResponse{data=[]domain.GalleryImage}
// @Router       /gallery [get]
func (h *GalleryHandler) ListImages(c *gin.Context) {
	category := c.Query("category")
	limit, _ := strconv.Atoi(c.Query("limit"))

	images := h.content.GetGalleryImagesByCategory(c.Request.Context(), category, limit)
	common.SuccessResponse(c, images, &common.Meta{Total: len(images)})
}
