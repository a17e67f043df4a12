package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"milestone-tracker/backend/internal/apierr"
	"milestone-tracker/backend/internal/httpx"
	"milestone-tracker/backend/internal/timeline/service"
)

// maxUploadBytes caps the accepted attachment size.
const maxUploadBytes = 20 << 20

// Handler exposes timeline event CRUD, range queries, and media upload under /api/timeline.
type Handler struct {
	svc *service.Service
}

// NewHandler returns a timeline HTTP handler backed by svc.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the timeline routes on the given router group.
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/timeline")
	g.GET("", h.list)
	g.GET("/range", h.listRange)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.POST("/upload", h.upload)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	events, err := h.svc.List(c.Request.Context())
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *Handler) listRange(c *gin.Context) {
	events, err := h.svc.ListBetween(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
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
	var dto service.TimelineEventDTO
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

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httpx.Abort(c, apierr.Validation("file", "zorunlu alan"))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		httpx.Abort(c, err)
		return
	}

	req := service.UploadRequest{
		FileData:           data,
		ContentType:        fileHeader.Header.Get("Content-Type"),
		Title:              c.PostForm("title"),
		EventDate:          c.PostForm("eventDate"),
		Description:        c.PostForm("description"),
		InteractionType:    c.PostForm("interactionType"),
		InteractionPayload: c.PostForm("interactionPayload"),
	}
	created, err := h.svc.UploadAndCreate(c.Request.Context(), req)
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
	var dto service.TimelineEventDTO
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
