package middleware

import (
	"net/http"
	"strings"

	"talentboard/internal/core"
	cErr "talentboard/internal/pkg/error"
	res "talentboard/internal/pkg/response"
	"talentboard/internal/service"
	"talentboard/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 不需要 session 的路徑前綴
var sessionExemptPrefixes = []string{
	"/auth",
	"/health-check",
	"/metrics",
	"/version",
	"/debug/pprof",
}

type Session struct {
	trace          *telemetry.Trace
	sessionService *service.SessionService
}

func NewSession(trace *telemetry.Trace, sessionService *service.SessionService) *Session {
	return &Session{trace: trace, sessionService: sessionService}
}

// SessionHandler 驗證 session cookie。瀏覽器請求未帶有效 session 時
// 302 轉到 /auth/login；API 請求（Accept JSON）回 401。
func (m *Session) SessionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range sessionExemptPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		_, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanSessionMiddleware))

		token := readSessionCookie(c)
		if token == "" {
			m.trace.ApplyTraceAttributes(span, core.TraceSessionMeta{Path: path, Status: "missing"})
			end(nil)
			m.reject(c)
			return
		}

		claims, err := m.sessionService.Parse(token)
		if err != nil {
			m.trace.ApplyTraceAttributes(span, core.TraceSessionMeta{Path: path, Status: "invalid"})
			end(err)
			m.reject(c)
			return
		}

		m.trace.ApplyTraceAttributes(span, core.TraceSessionMeta{Path: path, Status: "ok", Name: claims.Name})
		end(nil)
		c.Set(core.ContextSessionKey, claims)
		c.Next()
	}
}

// 兩種 cookie 名稱都接受，__Secure- 前綴優先
func readSessionCookie(c *gin.Context) string {
	if token, err := c.Cookie(core.SecureSessionCookieName); err == nil && token != "" {
		return token
	}
	if token, err := c.Cookie(core.SessionCookieName); err == nil && token != "" {
		return token
	}
	return ""
}

func (m *Session) reject(c *gin.Context) {
	if wantsJSON(c) {
		requestID, err := uuid.NewV7()
		if err != nil {
			requestID = uuid.New()
		}
		res.FailByErr(c, requestID.String(), cErr.InvalidSession("session required"))
		return
	}
	c.Redirect(http.StatusFound, "/auth/login")
	c.Abort()
}

// API 呼叫（Accept JSON 或 /api 前綴）不做轉址
func wantsJSON(c *gin.Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, "/api") {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}
