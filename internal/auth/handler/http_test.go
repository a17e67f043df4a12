package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"milestone-tracker/backend/internal/auth/service"
	"milestone-tracker/backend/internal/auth/session"
	"milestone-tracker/backend/internal/httpx"
	"milestone-tracker/backend/internal/security"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hasher := security.NewHasher(4)
	hash, err := hasher.Hash([]byte("gizli-parola"))
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	svc := service.NewService(map[string]string{"sevgi": hash}, hasher,
		session.NewMemoryRegistry(time.Hour, 2))

	r := gin.New()
	r.Use(httpx.ErrorHandler())
	api := r.Group("/api")
	NewHandler(svc, CookieConfig{Name: "milestone_session", Secure: true, TTL: time.Hour}).Register(api)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_SetsCookieAndGreets(t *testing.T) {
	r := newTestRouter(t)
	w := postJSON(r, "/api/auth/login", `{"username":"sevgi","password":"gizli-parola"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.Contains(resp.Message, "sevgi") {
		t.Fatalf("greeting should name the user: %q", resp.Message)
	}
	if resp.Token == "" {
		t.Fatal("expected a session token")
	}
	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "milestone_session=") || !strings.Contains(cookie, "HttpOnly") {
		t.Fatalf("bad cookie: %q", cookie)
	}
	if !strings.Contains(cookie, "SameSite=None") || !strings.Contains(cookie, "Secure") {
		t.Fatalf("cookie must be SameSite=None and Secure: %q", cookie)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	r := newTestRouter(t)
	w := postJSON(r, "/api/auth/login", `{"username":"sevgi","password":"yanlış"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var envelope httpx.APIError
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if envelope.Status != http.StatusUnauthorized || envelope.Path != "/api/auth/login" {
		t.Fatalf("bad envelope: %+v", envelope)
	}
	if strings.Contains(w.Header().Get("Set-Cookie"), "milestone_session=") {
		t.Fatal("failed login must not set a session cookie")
	}
}

func TestMe_WithBearerToken(t *testing.T) {
	r := newTestRouter(t)
	w := postJSON(r, "/api/auth/login", `{"username":"sevgi","password":"gizli-parola"}`)
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w2.Code, w2.Body.String())
	}
	if !strings.Contains(w2.Body.String(), `"username":"sevgi"`) {
		t.Fatalf("unexpected body: %s", w2.Body.String())
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	r := newTestRouter(t)
	w := postJSON(r, "/api/auth/login", `{"username":"sevgi","password":"gizli-parola"}`)
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("logout status = %d", w2.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, req)
	if w3.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w3.Code)
	}
}
