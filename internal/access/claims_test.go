package access

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTDecoderVerified(t *testing.T) {
	exp := time.Now().Add(-time.Hour).Unix() // expired tokens still decode
	raw := signToken(t, testSecret, jwt.MapClaims{"sub": "42", "exp": exp, "roles": []string{"admin_user", "sales_user"}})

	claims, err := NewJWTDecoder(testSecret).Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.Subject != "42" || claims.ExpiresAt != exp {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != RoleAdmin {
		t.Fatalf("roles not preserved in order: %v", claims.Roles)
	}
}

func TestJWTDecoderRejectsWrongSecret(t *testing.T) {
	raw := signToken(t, "other", jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	if _, err := NewJWTDecoder(testSecret).Decode(raw); !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken, got %v", err)
	}
}

func TestJWTDecoderUnverified(t *testing.T) {
	raw := signToken(t, "whatever", jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix(), "roles": []string{"finance_user"}})
	claims, err := JWTDecoder{}.Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != RoleFinance {
		t.Fatalf("unexpected roles %v", claims.Roles)
	}
}

func TestJWTDecoderLegacyRoleClaim(t *testing.T) {
	raw := signToken(t, testSecret, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix(), "role": "support_user"})
	claims, err := NewJWTDecoder(testSecret).Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != RoleSupport {
		t.Fatalf("legacy role claim not mapped: %v", claims.Roles)
	}
}

func TestJWTDecoderMissingExpiry(t *testing.T) {
	raw := signToken(t, testSecret, jwt.MapClaims{"roles": []string{"admin_user"}})
	if _, err := NewJWTDecoder(testSecret).Decode(raw); !errors.Is(err, ErrMissingExpiry) {
		t.Fatalf("expected ErrMissingExpiry, got %v", err)
	}
}

func TestJWTDecoderGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "a.b.c"} {
		if _, err := (JWTDecoder{}).Decode(raw); !errors.Is(err, ErrMalformedToken) {
			t.Fatalf("Decode(%q): expected ErrMalformedToken, got %v", raw, err)
		}
	}
}
