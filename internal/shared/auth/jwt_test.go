package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "jwt-test-secret")
	t.Setenv("ENV", "test")

	token, err := SignJWT(Claims{Sub: "google:jane", Email: "jane@example.com", Name: "Jane"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("token is not three segments: %q", token)
	}

	claims, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}
	if claims.Sub != "google:jane" || claims.Email != "jane@example.com" || claims.Name != "Jane" {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.Exp <= claims.Iat {
		t.Fatalf("expiry %d not after issued-at %d", claims.Exp, claims.Iat)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "jwt-test-secret")
	t.Setenv("ENV", "test")

	token, err := SignJWT(Claims{Sub: "google:jane"})
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]
	if _, err := VerifyJWT(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}

	if _, err := VerifyJWT("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed input, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := SignJWT(Claims{Sub: "google:jane"})
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("JWT_SECRET", "secret-two")
	if _, err := VerifyJWT(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "jwt-test-secret")
	t.Setenv("ENV", "test")

	past := time.Now().UTC().Add(-2 * time.Hour).Unix()
	token, err := SignJWT(Claims{Sub: "google:jane", Iat: past, Exp: past + 60})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := VerifyJWT(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSigningRequiresSecretInProduction(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	if _, err := SignJWT(Claims{Sub: "google:jane"}); err == nil {
		t.Fatal("expected error when JWT_SECRET is unset in production")
	}
}
