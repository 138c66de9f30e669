package handler

import (
	"net/http"

	"github.com/Chinmaytikole/DiscoverCart/internal/apierror"
	"github.com/Chinmaytikole/DiscoverCart/internal/config"
	"github.com/Chinmaytikole/DiscoverCart/internal/dto"
	"github.com/Chinmaytikole/DiscoverCart/internal/middleware"
	"github.com/Chinmaytikole/DiscoverCart/internal/session"

	"github.com/gin-gonic/gin"
)

// AuthHandler implements the session login/logout exchange. It is the only
// code that elevates a session; the gate middleware merely checks the result.
type AuthHandler struct {
	cfg      *config.Config
	sessions *session.Store
}

func NewAuthHandler(cfg *config.Config, sessions *session.Store) *AuthHandler {
	return &AuthHandler{cfg: cfg, sessions: sessions}
}

// Login POST /admin/login — verifies credentials (same comparison as the
// inline check) and elevates the caller's session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if !middleware.CheckCredentials(h.cfg, req.Username, req.Password) {
		c.Header("WWW-Authenticate", `Basic realm="Admin Area"`)
		c.JSON(http.StatusUnauthorized, apierror.New("Invalid credentials"))
		return
	}

	token, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Could not start session"))
		return
	}

	ttl := int(h.sessions.TTL().Seconds())
	c.SetCookie(middleware.SessionCookie, token, ttl, "/", "", h.cfg.Env == "production", true)
	c.JSON(http.StatusOK, dto.LoginResponse{ExpiresIn: ttl})
}

// Logout POST /admin/logout — destroys the elevated session if present.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			_ = c.Error(err)
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.cfg.Env == "production", true)
	c.Status(http.StatusNoContent)
}
