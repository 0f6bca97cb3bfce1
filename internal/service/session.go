package service

import (
	"time"

	"talentboard/config"
	"talentboard/internal/core"

	"github.com/golang-jwt/jwt/v4"
)

const defaultSessionTTL = 12 * time.Hour

// SessionService 簽發與驗證 session token。核心沒有使用者資料庫，
// token 只承載顯示身分（名稱、信箱、頭像）。
type SessionService struct {
	conf *config.Configuration
}

func NewSessionService(conf *config.Configuration) *SessionService {
	return &SessionService{conf: conf}
}

// Issue 簽發 HS256 session token
func (s *SessionService) Issue(name, email, avatar string) (string, time.Time, error) {
	ttl := defaultSessionTTL
	if s.conf.Session.TTLMinutes > 0 {
		ttl = time.Duration(s.conf.Session.TTLMinutes) * time.Minute
	}
	expiresAt := time.Now().Add(ttl)

	claims := core.SessionClaims{
		Name:   name,
		Email:  email,
		Avatar: avatar,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.conf.App.Name,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(s.conf.Session.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Parse 驗證 token 並取回 claims；簽章或時效不符都算無效
func (s *SessionService) Parse(token string) (*core.SessionClaims, error) {
	claims := &core.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.conf.Session.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
