package core

import "github.com/golang-jwt/jwt/v4"

// Session cookie 名稱，允許兩種固定命名（HTTPS 下用 __Secure- 前綴）
const (
	SessionCookieName       = "hr_session_token"
	SecureSessionCookieName = "__Secure-hr_session_token"
)

// gin context key，session middleware 驗證通過後放入 claims
const ContextSessionKey = "session_claims"

// SessionClaims 只承載顯示用身分，核心不做任何使用者管理
type SessionClaims struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	jwt.RegisteredClaims
}
