// Package server wires the HTTP surface: middleware ordering, route
// registration, and the dependencies each handler needs.
package server

import (
	"github.com/gin-gonic/gin"

	authhandler "milestone-tracker/backend/internal/auth/handler"
	authservice "milestone-tracker/backend/internal/auth/service"
	"milestone-tracker/backend/internal/health"
	"milestone-tracker/backend/internal/httpx"
	planhandler "milestone-tracker/backend/internal/plan/handler"
	planservice "milestone-tracker/backend/internal/plan/service"
	quizhandler "milestone-tracker/backend/internal/quiz/handler"
	quizservice "milestone-tracker/backend/internal/quiz/service"
	timelinehandler "milestone-tracker/backend/internal/timeline/handler"
	timelineservice "milestone-tracker/backend/internal/timeline/service"
)

// Deps holds the services and settings the router needs.
type Deps struct {
	Auth     *authservice.Service
	Plans    *planservice.Service
	Quiz     *quizservice.Service
	Timeline *timelineservice.Service
	// HealthPinger is probed by /actuator/health (e.g. *sql.DB).
	HealthPinger health.Pinger
	// Version is reported by /actuator/info.
	Version string
	// CORSAllowedOrigin is the single origin allowed to call the API with credentials.
	CORSAllowedOrigin string
	// SessionCookie describes the cookie issued at login and read by the session middleware.
	SessionCookie authhandler.CookieConfig
}

// NewRouter builds the gin engine with all middleware and routes registered.
//
// Route → handler mapping:
//   - /api/auth/*        → internal/auth/handler
//   - /api/plans/*       → internal/plan/handler
//   - /api/quiz/*        → internal/quiz/handler
//   - /api/timeline/*    → internal/timeline/handler
//   - /actuator/*        → internal/health
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(CORS(deps.CORSAllowedOrigin))
	r.Use(httpx.ErrorHandler())
	r.Use(SessionAuth(deps.Auth, deps.SessionCookie.Name))

	health.NewHandler(deps.HealthPinger, deps.Version).Register(r)

	api := r.Group("/api")
	authhandler.NewHandler(deps.Auth, deps.SessionCookie).Register(api)
	planhandler.NewHandler(deps.Plans).Register(api)
	quizhandler.NewHandler(deps.Quiz).Register(api)
	timelinehandler.NewHandler(deps.Timeline).Register(api)

	return r
}
