package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/thesolution-at/alz-backend/internal/common"
	"github.com/thesolution-at/alz-backend/internal/domain"
	"github.com/thesolution-at/alz-backend/internal/service"
)

// AdminGalleryHandler handles the authenticated gallery management endpoints
type AdminGalleryHandler struct {
	admin service.AdminService
}

// NewAdminGalleryHandler creates a new AdminGalleryHandler
func NewAdminGalleryHandler(admin service.AdminService) *AdminGalleryHandler {
	return &AdminGalleryHandler{admin: admin}
}

// ListGallery godoc
// @Summary      Galerie-Verwaltung: Liste (Admin)
// @Description  Eine Zeile pro Galerie-Eintrag für das Admin-Panel
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=[]domain.GalleryImage}
// @Failure      401  {object}  common.APIResponse
// @Failure      503  {object}  common.APIResponse
// @Router       /admin/gallery [get]
func (h *AdminGalleryHandler) ListGallery(c *gin.Context) {
	rows, err := h.admin.ListGallery(c.Request.Context())
	if err != nil {
		writeAdminError(c, err, "Galerie konnte nicht geladen werden")
		return
	}

	common.SuccessResponse(c, rows, &common.Meta{Total: len(rows)})
}

// UploadImage godoc
// @Summary      Galerie-Bild hochladen (Admin)
// @Description  Lädt ein Bild hoch, legt das Asset an, verarbeitet und veröffentlicht es samt Galerie-Eintrag
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title     formData  string  true   "Bildtitel"
// @Param        category  formData  string  false  "Kategorie"
// @Param        file      formData  file    true   "Bilddatei (max. 5 MB)"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      503  {object}  common.APIResponse
// @Router       /admin/gallery [post]
func (h *AdminGalleryHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		common.ErrorResponse(c, 400, "Bilddatei fehlt", err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		common.ErrorResponse(c, 400, "Bilddatei konnte nicht gelesen werden", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		common.ErrorResponse(c, 400, "Bilddatei konnte nicht gelesen werden", err)
		return
	}

	upload := &domain.GalleryUpload{
		Title:       c.PostForm("title"),
		Category:    c.PostForm("category"),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}

	id, err := h.admin.UploadGalleryImage(c.Request.Context(), upload)
	if err != nil {
		writeAdminError(c, err, "Bild konnte nicht hochgeladen werden")
		return
	}

	common.SuccessResponse(c, gin.H{"id": id}, nil)
}

// DeleteEntry godoc
// @Summary      Galerie-Eintrag löschen (Admin)
// @Description  Depubliziert und löscht einen Galerie-Eintrag
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  query  string  true  "Eintrags-ID"
// @Success      200  {object}  common.APIResponse{data=domain.DeleteResult}
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      503  {object}  common.APIResponse
// @Router       /admin/gallery [delete]
func (h *AdminGalleryHandler) DeleteEntry(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		common.ErrorResponse(c, 400, "Eintrags-ID fehlt", nil)
		return
	}

	result, err := h.admin.DeleteGalleryEntry(c.Request.Context(), id)
	if err != nil {
		writeAdminError(c, err, "Galerie-Eintrag konnte nicht gelöscht werden")
		return
	}

	common.SuccessResponse(c, result, &common.Meta{Deploy: result.Deploy})
}
