package handler

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thesolution-at/alz-backend/internal/config"
	"github.com/thesolution-at/alz-backend/internal/service"
)

// sitemap XML types per the sitemaps.org schema
type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// staticRoutes are the fixed site pages with their crawl hints
var staticRoutes = []sitemapURL{
	{Loc: "", ChangeFreq: "weekly", Priority: "1.0"},
	{Loc: "/news", ChangeFreq: "daily", Priority: "0.9"},
	{Loc: "/ueber-uns", ChangeFreq: "monthly", Priority: "0.8"},
	{Loc: "/paedagogik", ChangeFreq: "monthly", Priority: "0.8"},
	{Loc: "/team", ChangeFreq: "monthly", Priority: "0.7"},
	{Loc: "/galerie", ChangeFreq: "weekly", Priority: "0.7"},
	{Loc: "/karriere", ChangeFreq: "weekly", Priority: "0.8"},
	{Loc: "/anmeldung", ChangeFreq: "monthly", Priority: "0.8"},
	{Loc: "/kontakt", ChangeFreq: "yearly", Priority: "0.5"},
	{Loc: "/impressum", ChangeFreq: "yearly", Priority: "0.3"},
	{Loc: "/datenschutz", ChangeFreq: "yearly", Priority: "0.3"},
}

// SitemapHandler renders the sitemap from static routes plus the
// published news and job entries.
type SitemapHandler struct {
	content service.ContentService
	cfg     *config.Config
}

// NewSitemapHandler creates a new SitemapHandler
func NewSitemapHandler(content service.ContentService, cfg *config.Config) *SitemapHandler {
	return &SitemapHandler{content: content, cfg: cfg}
}

// Sitemap godoc
// @Summary      Sitemap abrufen
// @Description  XML-Sitemap mit statischen Seiten, News-Artikeln und Stellenangeboten
// @Tags         sitemap
// @Produce      xml
// @Success      200  {string}  string
// @Router       /sitemap.xml [get]
func (h *SitemapHandler) Sitemap(c *gin.Context) {
	base := h.cfg.App.BaseURL
	now := time.Now().Format("2006-01-02")

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, route := range staticRoutes {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + route.Loc,
			LastMod:    now,
			ChangeFreq: route.ChangeFreq,
			Priority:   route.Priority,
		})
	}

	// diagnostic records never carry real slugs, filter them out
	for _, article := range h.content.GetNews(c.Request.Context(), 100, "") {
		if article.ID == "env-error" || article.ID == "connection-error" {
			continue
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + "/news/" + article.Slug,
			LastMod:    articleDate(article.Date, now),
			ChangeFreq: "monthly",
			Priority:   "0.6",
		})
	}

	for _, job := range h.content.GetJobListings(c.Request.Context()) {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + "/karriere/" + job.ID,
			ChangeFreq: "weekly",
			Priority:   "0.6",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
}

// articleDate normalizes the stored date to the YYYY-MM-DD lastmod format
func articleDate(date, fallback string) string {
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t.Format("2006-01-02")
	}
	if len(date) >= 10 {
		return date[:10]
	}
	return fallback
}
