package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"milestone-tracker/backend/internal/apierr"
)

func serveWithError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) { Abort(c, err) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	return w
}

func TestErrorHandler_Envelope(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", apierr.NotFound("dream plan", "abc"), http.StatusNotFound},
		{"validation", apierr.Validation("title", "zorunlu alan"), http.StatusBadRequest},
		{"invalid credentials", apierr.ErrInvalidCredentials, http.StatusUnauthorized},
		{"internal", errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serveWithError(tc.err)
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d", w.Code, tc.status)
			}
			var e APIError
			if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if e.Status != tc.status || e.Path != "/boom" {
				t.Fatalf("bad envelope: %+v", e)
			}
			if e.Error != http.StatusText(tc.status) {
				t.Fatalf("error label = %q", e.Error)
			}
			if e.Timestamp.IsZero() || e.Message == "" {
				t.Fatalf("incomplete envelope: %+v", e)
			}
		})
	}
}

func TestErrorHandler_LeavesWrittenResponsesAlone(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		_ = c.Error(apierr.NotFound("plan", "x"))
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/things/:id", func(c *gin.Context) {
		id, err := PathID(c)
		if err != nil {
			Abort(c, err)
			return
		}
		c.String(http.StatusOK, id)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/2c1f0ff1-6f0f-4ab5-9f11-6f0f4ab59f11", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("uuid id rejected: %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/not-a-uuid", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad id status = %d", w.Code)
	}
}
