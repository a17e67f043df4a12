package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"milestone-tracker/backend/internal/apierr"
	"milestone-tracker/backend/internal/audit"
	authhandler "milestone-tracker/backend/internal/auth/handler"
	authservice "milestone-tracker/backend/internal/auth/service"
)

// publicPaths require no session. Everything else behind /api does.
var publicPaths = map[string]bool{
	"/api/auth/login":  true,
	"/actuator/health": true,
	"/actuator/info":   true,
}

// CORS returns a middleware allowing the single configured frontend origin to
// call the API with credentials. An empty origin leaves cross-origin requests
// blocked by the browser.
func CORS(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowedOrigin != "" && origin == allowedOrigin {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", allowedOrigin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			// Echo whatever headers the preflight asks for; the single-origin
			// check above is the only gate.
			if reqHeaders := c.GetHeader("Access-Control-Request-Headers"); reqHeaders != "" {
				h.Set("Access-Control-Allow-Headers", reqHeaders)
			} else {
				h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			}
			h.Add("Vary", "Origin")
			h.Add("Vary", "Access-Control-Request-Headers")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// SessionAuth returns a middleware that resolves the session token from the
// cookie (or a Bearer header) and records the username as the acting identity.
// Requests without a live session are rejected with 401 unless the path is public.
func SessionAuth(auth *authservice.Service, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if publicPaths[c.Request.URL.Path] {
			c.Next()
			return
		}
		token := authhandler.SessionToken(c, cookieName)
		sess, err := auth.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Unauthorized",
				"message": apierr.ErrUnauthorized.Error(),
			})
			return
		}
		ctx := audit.WithActor(c.Request.Context(), sess.Username)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
