package utils

import (
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42, "Bears Fan", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.UserID != 42 || claims.DisplayName != "Bears Fan" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(1, "x", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if _, err := ParseToken(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := ParseToken("not.a.token"); err == nil {
		t.Error("expected parse error")
	}
}

func TestTokenBlacklistInMemory(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token := "blacklisted-token"
	BlacklistToken(token, time.Now().Add(time.Minute))
	if !IsTokenBlacklisted(token) {
		t.Error("token should be blacklisted")
	}
	if IsTokenBlacklisted("other-token") {
		t.Error("unrelated token reported blacklisted")
	}
}
