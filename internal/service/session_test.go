package service

import (
	"testing"
	"time"

	"talentboard/config"
)

func newTestSessionService(ttlMinutes int) *SessionService {
	conf := &config.Configuration{}
	conf.App.Name = "talentboard"
	conf.Session.SecretKey = "test-secret"
	conf.Session.TTLMinutes = ttlMinutes
	return NewSessionService(conf)
}

func TestSessionRoundTrip(t *testing.T) {
	svc := newTestSessionService(30)

	token, expiresAt, err := svc.Issue("Amy Chen", "amy@corp.com", "https://corp.com/amy.png")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if until := time.Until(expiresAt); until < 29*time.Minute || until > 31*time.Minute {
		t.Errorf("expiry %v not near the configured 30m TTL", until)
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.Name != "Amy Chen" || claims.Email != "amy@corp.com" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.Issuer != "talentboard" {
		t.Errorf("issuer = %q", claims.Issuer)
	}
}

func TestSessionParseRejectsBadTokens(t *testing.T) {
	svc := newTestSessionService(30)
	token, _, err := svc.Issue("Amy", "amy@corp.com", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"tampered", token + "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Parse(tt.token); err == nil {
				t.Error("Parse should reject the token")
			}
		})
	}
}

func TestSessionParseRejectsOtherKey(t *testing.T) {
	token, _, err := newTestSessionService(30).Issue("Amy", "amy@corp.com", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	other := newTestSessionService(30)
	other.conf.Session.SecretKey = "different-secret"
	if _, err := other.Parse(token); err == nil {
		t.Error("token signed with another key must not validate")
	}
}
