package utils

import (
	"testing"
	"time"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/enum"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-taller")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "s3cret-taller" {
		t.Fatal("expected hash to differ from plaintext")
	}
	if !CheckPasswordHash("s3cret-taller", hash) {
		t.Fatal("expected matching password to verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatal("expected wrong password to fail")
	}
}

func TestJWTAccessTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateAccessToken(42, "mechanic@taller.test", enum.RoleMechanic)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "mechanic@taller.test" || claims.Role != enum.RoleMechanic {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTRejectsForeignSignature(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	other := NewJWTManager("different-secret", time.Hour, 24*time.Hour)

	token, err := other.GenerateAccessToken(1, "admin@taller.test", enum.RoleAdmin)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := manager.GenerateAccessToken(1, "admin@taller.test", enum.RoleAdmin)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}
