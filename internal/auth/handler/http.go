package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"milestone-tracker/backend/internal/apierr"
	"milestone-tracker/backend/internal/auth/service"
	"milestone-tracker/backend/internal/httpx"
)

// CookieConfig describes the session cookie the handler issues.
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// Handler exposes login, logout, and session introspection under /api/auth.
type Handler struct {
	svc    *service.Service
	cookie CookieConfig
}

// NewHandler returns an auth HTTP handler backed by svc.
func NewHandler(svc *service.Service, cookie CookieConfig) *Handler {
	return &Handler{svc: svc, cookie: cookie}
}

// Register mounts the auth routes on the given router group.
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/auth")
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)
	g.GET("/me", h.me)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Abort(c, apierr.Validation("body", "geçersiz JSON gövdesi"))
		return
	}
	sess, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	h.setCookie(c, sess.Token, int(h.cookie.TTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Hoş geldin, %s!", sess.Username),
		"token":   sess.Token,
	})
}

func (h *Handler) logout(c *gin.Context) {
	if token := SessionToken(c, h.cookie.Name); token != "" {
		h.svc.Logout(c.Request.Context(), token)
	}
	h.setCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Görüşmek üzere!"})
}

func (h *Handler) me(c *gin.Context) {
	token := SessionToken(c, h.cookie.Name)
	sess, err := h.svc.Resolve(c.Request.Context(), token)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username":  sess.Username,
		"expiresAt": sess.ExpiresAt.Format(time.RFC3339),
	})
}

// setCookie issues the session cookie. SameSite=None lets the browser frontend
// on another origin send it; that combination requires Secure.
func (h *Handler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}

// SessionToken extracts the session token from the cookie, falling back to a
// Bearer authorization header for non-browser clients.
func SessionToken(c *gin.Context, cookieName string) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}
	authz := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(authz, "Bearer "); ok {
		return token
	}
	return ""
}
