package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thesolution-at/alz-backend/internal/common"
	"github.com/thesolution-at/alz-backend/internal/service"
)

// NewsHandler handles HTTP requests for the public news pages
type NewsHandler struct {
	content service.ContentService
}

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(content service.ContentService) *NewsHandler {
	return &NewsHandler{content: content}
}

// ListNews godoc
// @Summary      News-Liste abrufen
// @Description  Veröffentlichte News-Artikel, neueste zuerst, optional nach Kategorie gefiltert
// @Tags         news
// @Produce      json
// @Param        limit     query  int     false  "Maximale Anzahl (Standard 10)"
// @Param        category  query  string  false  "Kategorie-Filter"
// @Success      200  {object}  common.APIResponse{data=[]domain.NewsArticle}
// @Router       /news [get]
func (h *NewsHandler) ListNews(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	category := c.Query("category")

	articles := h.content.GetNews(c.Request.Context(), limit, category)
	common.SuccessResponse(c, articles, &common.Meta{Total: len(articles)})
}

// LatestNews godoc
// @Summary      Neueste News abrufen
// @Description  Die neuesten Artikel für die Startseite
// @Tags         news
// @Produce      json
// @Param        count  query  int  false  "Anzahl (Standard 3)"
// @Success      200  {object}  common.APIResponse{data=[]domain.NewsArticle}
// @Router       /news/latest [get]
func (h *NewsHandler) LatestNews(c *gin.Context) {
	count, _ := strconv.Atoi(c.Query("count"))

	articles := h.content.GetLatestNews(c.Request.Context(), count)
	common.SuccessResponse(c, articles, &common.Meta{Total: len(articles)})
}

// GetNewsBySlug godoc
// @Summary      News-Artikel abrufen
// @Description  Einen Artikel anhand seines Slugs abrufen
// @Tags         news
// @Produce      json
// @Param        slug  path  string  true  "Artikel-Slug"
// @Success      200  {object}  common.APIResponse{data=domain.NewsArticle}
// @Failure      404  {object}  common.APIResponse
// @Router       /news/{slug} [get]
func (h *NewsHandler) GetNewsBySlug(c *gin.Context) {
	slug := c.Param("slug")

	article := h.content.GetNewsBySlug(c.Request.Context(), slug)
	if article == nil {
		common.ErrorResponse(c, 404, "Artikel nicht gefunden", nil)
		return
	}

	common.SuccessResponse(c, article, nil)
}
