package auth

import (
	"testing"

	"keybuddy/internal/shared/authorization"
)

func newTestJWTService() *JWTService {
	return NewJWTService("test-secret", 15, 7)
}

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.Generate(42, "anna", authorization.RoleManager)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Error("access and refresh tokens must differ")
	}
	if pair.ExpiresIn != 15*60 {
		t.Errorf("ExpiresIn = %d, want %d", pair.ExpiresIn, 15*60)
	}

	claims, err := svc.Verify(pair.AccessToken)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UserID != 42 || claims.Username != "anna" || claims.Role != authorization.RoleManager {
		t.Errorf("claims = %+v", claims)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("TokenType = %s, want %s", claims.TokenType, TokenTypeAccess)
	}

	refreshClaims, err := svc.Verify(pair.RefreshToken)
	if err != nil {
		t.Fatalf("Verify(refresh) error = %v", err)
	}
	if refreshClaims.TokenType != TokenTypeRefresh {
		t.Errorf("refresh TokenType = %s, want %s", refreshClaims.TokenType, TokenTypeRefresh)
	}
}

func TestJWTService_VerifyRejectsBadTokens(t *testing.T) {
	svc := newTestJWTService()
	pair, err := svc.Generate(1, "anna", authorization.RoleUser)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := svc.Verify("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}

	other := NewJWTService("another-secret", 15, 7)
	if _, err := other.Verify(pair.AccessToken); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestJWTService_VerifyRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -1, 7)

	pair, err := svc.Generate(1, "anna", authorization.RoleUser)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if _, err := svc.Verify(pair.AccessToken); err == nil {
		t.Error("expected error for expired access token")
	}
}

func TestJWTService_RefreshRotatesTokens(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.Generate(7, "bertil", authorization.RoleAdmin)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	rotated, err := svc.Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	claims, err := svc.Verify(rotated.AccessToken)
	if err != nil {
		t.Fatalf("Verify(rotated) error = %v", err)
	}
	if claims.UserID != 7 || claims.Username != "bertil" || claims.Role != authorization.RoleAdmin {
		t.Errorf("rotated claims = %+v", claims)
	}
	if rotated.RefreshToken == "" {
		t.Error("expected a new refresh token")
	}
}

func TestJWTService_RefreshRejectsAccessToken(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.Generate(7, "bertil", authorization.RoleUser)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if _, err := svc.Refresh(pair.AccessToken); err == nil {
		t.Error("expected error when refreshing with an access token")
	}
}
