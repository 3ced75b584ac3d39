package handler

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/thesolution-at/alz-backend/internal/common"
	"github.com/thesolution-at/alz-backend/internal/config"
	"github.com/thesolution-at/alz-backend/pkg/jwt"
)

// AuthHandler implements the admin session gate: one shared password is
// exchanged for a time-limited session token. There are no user accounts.
type AuthHandler struct {
	cfg     *config.Config
	manager *jwt.Manager
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(cfg *config.Config, manager *jwt.Manager) *AuthHandler {
	return &AuthHandler{cfg: cfg, manager: manager}
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// Login godoc
// @Summary      Admin-Anmeldung
// @Description  Tauscht das Admin-Passwort gegen ein zeitlich begrenztes Sitzungstoken
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  loginRequest  true  "Admin-Passwort"
// @Success      200  {object}  common.APIResponse{data=loginResponse}
// @Failure      401  {object}  common.APIResponse
// @Failure      503  {object}  common.APIResponse
// @Router       /admin/auth [post]
func (h *AuthHandler) Login(c *gin.Context) {
	if h.cfg.Admin.Password == "" {
		common.ErrorResponse(c, 503, "Admin-Zugang ist nicht konfiguriert", nil)
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Passwort fehlt", err)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.Admin.Password)) != 1 {
		common.ErrorResponse(c, 401, "Falsches Passwort", nil)
		return
	}

	token, err := h.manager.Generate()
	if err != nil {
		common.ErrorResponse(c, 500, "Sitzung konnte nicht erstellt werden", err)
		return
	}

	maxAge := int(h.manager.TTL().Seconds())
	c.SetCookie("admin_token", token, maxAge, "/", "", true, true)

	common.SuccessResponse(c, loginResponse{
		Token:     token,
		ExpiresIn: int64(maxAge),
	}, nil)
}

// Logout godoc
// @Summary      Admin-Abmeldung
// @Description  Löscht das Sitzungscookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  common.APIResponse
// @Router       /admin/auth [delete]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("admin_token", "", -1, "/", "", true, true)
	common.SuccessResponse(c, gin.H{"message": "Abgemeldet"}, nil)
}
