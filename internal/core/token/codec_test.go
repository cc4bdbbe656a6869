package token

import (
	"encoding/base64"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storefront/gateway/internal/core/domain"
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func rawToken(payload string) string {
	return "eyJhbGciOiJIUzI1NiJ9." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".c2ln"
}

func TestDecode_Roles(t *testing.T) {
	tok := sign(t, jwt.MapClaims{"sub": "a@b.com", "roles": []string{"admin", "customer"}})

	claims, err := Decode(tok)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if !reflect.DeepEqual(claims.Roles, []string{"admin", "customer"}) {
		t.Fatalf("unexpected roles: %v", claims.Roles)
	}
	if claims.Subject != "a@b.com" {
		t.Fatalf("unexpected subject: %q", claims.Subject)
	}
}

func TestDecode_MissingRolesDefaultsToEmpty(t *testing.T) {
	for name, tok := range map[string]string{
		"absent": sign(t, jwt.MapClaims{"sub": "42"}),
		"null":   rawToken(`{"roles":null}`),
	} {
		t.Run(name, func(t *testing.T) {
			claims, err := Decode(tok)
			if err != nil {
				t.Fatalf("Decode returned error: %v", err)
			}
			if claims.Roles == nil || len(claims.Roles) != 0 {
				t.Fatalf("expected empty non-nil roles, got %#v", claims.Roles)
			}
		})
	}
}

func TestDecode_Expiry(t *testing.T) {
	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	claims, err := Decode(sign(t, jwt.MapClaims{"exp": exp.Unix()}))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if !claims.ExpiresAt.Equal(exp) {
		t.Fatalf("expected %v, got %v", exp, claims.ExpiresAt)
	}
}

func TestDecode_PaddedPayload(t *testing.T) {
	payload := base64.URLEncoding.EncodeToString([]byte(`{"roles":["admin"]}`))
	claims, err := Decode("h." + payload + ".s")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "admin" {
		t.Fatalf("unexpected roles: %v", claims.Roles)
	}
}

func TestDecode_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":            "",
		"one segment":      "abc",
		"two segments":     "abc.def",
		"four segments":    "a.b.c.d",
		"bad base64":       "h.!!!notbase64!!!.s",
		"empty payload":    "h..s",
		"not json":         rawToken("hello"),
		"json array":       rawToken(`["admin"]`),
		"json null":        rawToken("null"),
		"roles not a list": rawToken(`{"roles":"admin"}`),
		"roles mixed":      rawToken(`{"roles":["admin",7]}`),
		"invalid utf8":     "h." + base64.RawURLEncoding.EncodeToString([]byte{'{', 0xff, '}'}) + ".s",
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(tok)
			var de *domain.DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("expected DecodeError, got %v", err)
			}
		})
	}
}
