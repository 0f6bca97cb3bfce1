package handler

import (
	"time"

	"talentboard/config"
	"talentboard/internal/core"
	"talentboard/internal/dto"
	cErr "talentboard/internal/pkg/error"
	"talentboard/internal/pkg/response"
	"talentboard/internal/service"
	"talentboard/internal/telemetry"
	"talentboard/utils/validate"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	trace          *telemetry.Trace
	conf           *config.Configuration
	sessionService *service.SessionService
}

func NewSessionHandler(
	trace *telemetry.Trace,
	conf *config.Configuration,
	sessionService *service.SessionService,
) *SessionHandler {
	return &SessionHandler{trace: trace, conf: conf, sessionService: sessionService}
}

// cookie 名稱依部署模式決定（HTTPS 用 __Secure- 前綴）
func (h *SessionHandler) cookieName() string {
	if h.conf.Session.SecureCookie {
		return core.SecureSessionCookieName
	}
	return core.SessionCookieName
}

// Login 簽發 session cookie
func (h *SessionHandler) Login(c *gin.Context) {
	_, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.LoginDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	token, expiresAt, err := h.sessionService.Issue(req.Name, req.Email, req.Avatar)
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.InternalServer("issue session failed"))
		return
	}

	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetCookie(h.cookieName(), token, maxAge, "/", "", h.conf.Session.SecureCookie, true)

	response.Create(c, dto.SessionResponseDto{
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
	})
}

// Logout 清空兩種命名的 session cookie
func (h *SessionHandler) Logout(c *gin.Context) {
	_, _, end := h.trace.WithSpan(c)
	defer end(nil)

	c.SetCookie(core.SessionCookieName, "", -1, "/", "", false, true)
	c.SetCookie(core.SecureSessionCookieName, "", -1, "/", "", true, true)

	response.Success(c, gin.H{"message": "logged out"})
}

// Session 回傳目前 session 的身分（由 middleware 驗證後放入 context）
func (h *SessionHandler) Session(c *gin.Context) {
	_, _, end := h.trace.WithSpan(c)
	defer end(nil)

	raw, exists := c.Get(core.ContextSessionKey)
	claims, ok := raw.(*core.SessionClaims)
	if !exists || !ok {
		response.AbortWithError(c, cErr.InvalidSession("no active session"))
		return
	}

	response.Success(c, dto.SessionResponseDto{
		Name:   claims.Name,
		Email:  claims.Email,
		Avatar: claims.Avatar,
	})
}
