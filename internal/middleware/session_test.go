package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"talentboard/config"
	"talentboard/internal/core"
	"talentboard/internal/service"
	"talentboard/internal/telemetry"

	"github.com/gin-gonic/gin"
)

func newSessionTestRouter(t *testing.T) (*gin.Engine, *service.SessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conf := &config.Configuration{}
	conf.App.Name = "talentboard"
	conf.Session.SecretKey = "test-secret"

	trace, err := telemetry.NewTrace(conf)
	if err != nil {
		t.Fatalf("NewTrace: %v", err)
	}
	sessionService := service.NewSessionService(conf)

	router := gin.New()
	router.Use(NewSession(trace, sessionService).SessionHandler())
	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) }
	router.GET("/api/employees", ok)
	router.GET("/dashboard", ok)
	router.POST("/auth/login", ok)
	router.GET("/health-check", ok)

	return router, sessionService
}

func TestSessionExemptPaths(t *testing.T) {
	router, _ := newSessionTestRouter(t)

	for _, tt := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/auth/login"},
		{http.MethodGet, "/health-check"},
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s %s = %d, want 200 without a session", tt.method, tt.path, w.Code)
		}
	}
}

func TestSessionMissingCookie(t *testing.T) {
	router, _ := newSessionTestRouter(t)

	// API 請求：401 JSON
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("/api without session = %d, want 401", w.Code)
	}

	// 瀏覽器請求：302 轉到登入頁
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Accept", "text/html")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusFound {
		t.Fatalf("browser request without session = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/auth/login" {
		t.Errorf("redirect location = %q, want /auth/login", loc)
	}
}

func TestSessionValidCookie(t *testing.T) {
	router, sessionService := newSessionTestRouter(t)
	token, _, err := sessionService.Issue("Amy", "amy@corp.com", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	for _, cookieName := range []string{core.SessionCookieName, core.SecureSessionCookieName} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("cookie %q = %d, want 200", cookieName, w.Code)
		}
	}
}

func TestSessionInvalidToken(t *testing.T) {
	router, _ := newSessionTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	req.AddCookie(&http.Cookie{Name: core.SessionCookieName, Value: "tampered"})
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("invalid token = %d, want 401", w.Code)
	}
}
