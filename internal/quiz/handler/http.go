package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"milestone-tracker/backend/internal/apierr"
	"milestone-tracker/backend/internal/httpx"
	"milestone-tracker/backend/internal/quiz/domain"
	"milestone-tracker/backend/internal/quiz/service"
)

// Handler exposes quiz questions and results under /api/quiz.
type Handler struct {
	svc *service.Service
}

// NewHandler returns a quiz HTTP handler backed by svc.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the quiz routes on the given router group.
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/quiz")
	g.GET("/questions", h.listQuestions)
	g.GET("/questions/random", h.randomQuestions)
	g.GET("/questions/:id", h.getQuestion)
	g.POST("/questions", h.createQuestion)
	g.PUT("/questions/:id", h.updateQuestion)
	g.DELETE("/questions/:id", h.deleteQuestion)
	g.POST("/results", h.recordResult)
	g.GET("/results", h.listResults)
}

func (h *Handler) listQuestions(c *gin.Context) {
	difficulty, err := difficultyQuery(c)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	questions, err := h.svc.ListQuestions(c.Request.Context(), difficulty)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *Handler) randomQuestions(c *gin.Context) {
	count := 5
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httpx.Abort(c, apierr.Validation("count", "pozitif bir sayı olmalı"))
			return
		}
		count = n
	}
	difficulty, err := difficultyQuery(c)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	questions, err := h.svc.GetRandomQuestions(c.Request.Context(), count, difficulty)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *Handler) getQuestion(c *gin.Context) {
	id, err := httpx.PathID(c)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	dto, err := h.svc.GetQuestion(c.Request.Context(), id)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *Handler) createQuestion(c *gin.Context) {
	var dto service.QuizQuestionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		httpx.Abort(c, apierr.Validation("body", "geçersiz JSON gövdesi"))
		return
	}
	created, err := h.svc.CreateQuestion(c.Request.Context(), dto)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updateQuestion(c *gin.Context) {
	id, err := httpx.PathID(c)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	var dto service.QuizQuestionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		httpx.Abort(c, apierr.Validation("body", "geçersiz JSON gövdesi"))
		return
	}
	updated, err := h.svc.UpdateQuestion(c.Request.Context(), id, dto)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteQuestion(c *gin.Context) {
	id, err := httpx.PathID(c)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	if err := h.svc.DeleteQuestion(c.Request.Context(), id); err != nil {
		httpx.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) recordResult(c *gin.Context) {
	var dto service.QuizResultDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		httpx.Abort(c, apierr.Validation("body", "geçersiz JSON gövdesi"))
		return
	}
	saved, err := h.svc.RecordResult(c.Request.Context(), dto)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *Handler) listResults(c *gin.Context) {
	results, err := h.svc.ListResultsForUser(c.Request.Context(), c.Query("username"))
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func difficultyQuery(c *gin.Context) (*domain.Difficulty, error) {
	raw := c.Query("difficulty")
	if raw == "" {
		return nil, nil
	}
	d, ok := domain.ParseDifficulty(raw)
	if !ok {
		return nil, apierr.Validation("difficulty", "EASY, MEDIUM veya HARD olmalı")
	}
	return &d, nil
}
