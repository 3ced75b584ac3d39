package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thesolution-at/alz-backend/internal/common"
	"github.com/thesolution-at/alz-backend/internal/config"
)

// UploadHandler stores news cover images on local disk. Gallery images
// go through the asset pipeline instead; this endpoint only serves the
// simpler article-image case where the file is referenced by URL.
type UploadHandler struct {
	cfg *config.Config
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

// Upload godoc
// @Summary      Bild hochladen (Admin)
// @Description  Speichert ein Artikelbild und gibt dessen URL zurück
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Bilddatei (max. 5 MB)"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Router       /admin/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		common.ErrorResponse(c, 400, "Bilddatei fehlt", err)
		return
	}

	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		common.ErrorResponse(c, 400, "Nur Bilder sind erlaubt", nil)
		return
	}
	if fileHeader.Size > h.cfg.Upload.MaxBytes {
		common.ErrorResponse(c, 400, fmt.Sprintf("Datei überschreitet %d Bytes", h.cfg.Upload.MaxBytes), nil)
		return
	}

	if err := os.MkdirAll(h.cfg.Upload.Dir, 0o755); err != nil {
		common.ErrorResponse(c, 500, "Upload-Verzeichnis nicht verfügbar", err)
		return
	}

	// random name prevents collisions and path traversal via the client filename
	name := uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, filepath.Join(h.cfg.Upload.Dir, name)); err != nil {
		common.ErrorResponse(c, 500, "Datei konnte nicht gespeichert werden", err)
		return
	}

	common.SuccessResponse(c, gin.H{"url": "/uploads/" + name}, nil)
}
