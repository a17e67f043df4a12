package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"milestone-tracker/backend/internal/apierr"
	"milestone-tracker/backend/internal/httpx"
	"milestone-tracker/backend/internal/plan/domain"
	"milestone-tracker/backend/internal/plan/service"
)

// Handler exposes dream plan CRUD under /api/plans.
type Handler struct {
	svc *service.Service
}

// NewHandler returns a dream plan HTTP handler backed by svc.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the plan routes on the given router group.
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/plans")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	raw := c.Query("status")
	if raw == "" {
		plans, err := h.svc.List(c.Request.Context())
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, plans)
		return
	}
	status, ok := domain.ParsePlanStatus(raw)
	if !ok {
		httpx.Abort(c, apierr.Validation("status", "PLANNED, IN_PROGRESS, COMPLETED veya ARCHIVED olmalı"))
		return
	}
	plans, err := h.svc.ListByStatus(c.Request.Context(), status)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *Handler) get(c *gin.Context) {
	id, err := httpx.PathID(c)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	dto, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *Handler) create(c *gin.Context) {
	var dto service.DreamPlanDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		httpx.Abort(c, apierr.Validation("body", "geçersiz JSON gövdesi"))
		return
	}
	created, err := h.svc.Create(c.Request.Context(), dto)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) update(c *gin.Context) {
	id, err := httpx.PathID(c)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	var dto service.DreamPlanDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		httpx.Abort(c, apierr.Validation("body", "geçersiz JSON gövdesi"))
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, dto)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) remove(c *gin.Context) {
	id, err := httpx.PathID(c)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		httpx.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
