package middleware

import (
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"

	"sewakos-backend/models"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := CreateToken(42, models.RoleOwner)
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	caller, err := ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if caller.ID != 42 || caller.Role != models.RoleOwner {
		t.Fatalf("got caller %+v; want id=42 role=%s", caller, models.RoleOwner)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := ParseToken("not-a-token"); err == nil {
		t.Fatal("expected error for garbage token")
	}
}

func TestParseToken_WrongSigningMethod(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	// correctly signed, but with a method other than the one issued
	claims := Claims{UserID: 7, Role: models.RoleTenant}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := ParseToken(token); err == nil {
		t.Fatal("expected error for token signed with HS512")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := CreateToken(7, models.RoleTenant)
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-two")
	if _, err := ParseToken(token); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}
