package token

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/authgate/auth-api/internal/core/domain"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("secret")

	issued, err := codec.Issue(NewClaims("1", domain.RoleUser, time.Now().Add(time.Hour)))
	if err != nil {
		t.Fatalf("issue returned error: %v", err)
	}
	if issued == "" {
		t.Fatalf("expected token, got empty string")
	}

	claims, err := codec.Verify(issued)
	if err != nil {
		t.Fatalf("verify returned error: %v", err)
	}
	if claims.Subject != "1" {
		t.Fatalf("expected subject 1, got %q", claims.Subject)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("expected role %s, got %s", domain.RoleUser, claims.Role)
	}
}

func TestCodec_Verify_Tampered(t *testing.T) {
	codec := NewCodec("secret")

	issued, err := codec.Issue(NewClaims("2", domain.RoleAdmin, time.Now().Add(time.Hour)))
	if err != nil {
		t.Fatalf("issue returned error: %v", err)
	}

	// Flipping any single byte of the decoded payload or signature must
	// yield ErrInvalidToken: the HMAC no longer matches what was signed.
	parts := strings.Split(issued, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token parts, got %d", len(parts))
	}
	for _, segment := range []int{1, 2} {
		decoded, err := base64.RawURLEncoding.DecodeString(parts[segment])
		if err != nil {
			t.Fatalf("decode segment %d: %v", segment, err)
		}
		for i := range decoded {
			tampered := make([]byte, len(decoded))
			copy(tampered, decoded)
			tampered[i] ^= 0x01

			mutated := make([]string, 3)
			copy(mutated, parts)
			mutated[segment] = base64.RawURLEncoding.EncodeToString(tampered)

			if _, err := codec.Verify(strings.Join(mutated, ".")); !errors.Is(err, domain.ErrInvalidToken) {
				t.Fatalf("segment %d byte %d: expected ErrInvalidToken, got %v", segment, i, err)
			}
		}
	}
}

func TestCodec_Verify_Expired(t *testing.T) {
	codec := NewCodec("secret")

	issued, err := codec.Issue(NewClaims("1", domain.RoleUser, time.Now().Add(-time.Minute)))
	if err != nil {
		t.Fatalf("issue returned error: %v", err)
	}

	if _, err := codec.Verify(issued); !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestCodec_Verify_WrongSecret(t *testing.T) {
	issued, err := NewCodec("secret").Issue(NewClaims("1", domain.RoleUser, time.Now().Add(time.Hour)))
	if err != nil {
		t.Fatalf("issue returned error: %v", err)
	}

	if _, err := NewCodec("other").Verify(issued); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCodec_Verify_Malformed(t *testing.T) {
	codec := NewCodec("secret")

	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := codec.Verify(raw); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("%q: expected ErrInvalidToken, got %v", raw, err)
		}
	}
}

func TestCodec_Verify_RejectsForeignAlgorithms(t *testing.T) {
	codec := NewCodec("secret")
	claims := NewClaims("2", domain.RoleAdmin, time.Now().Add(time.Hour))

	// HS384 with the right secret must still be rejected: accepted
	// algorithms are pinned.
	hs384, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign hs384: %v", err)
	}
	if _, err := codec.Verify(hs384); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("hs384: expected ErrInvalidToken, got %v", err)
	}

	// Unsigned "none" tokens must be rejected outright.
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := codec.Verify(none); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("none: expected ErrInvalidToken, got %v", err)
	}
}

func TestCodec_Verify_MissingExpiry(t *testing.T) {
	codec := NewCodec("secret")

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Role:             domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "1"},
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := codec.Verify(noExp); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for missing exp, got %v", err)
	}
}

func TestCodec_Verify_UnknownRoleClaim(t *testing.T) {
	codec := NewCodec("secret")

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Role: "Superadmin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := codec.Verify(forged); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for unknown role, got %v", err)
	}
}

func TestCodec_IssuedTokenIsThreePartJWT(t *testing.T) {
	issued, err := NewCodec("secret").Issue(NewClaims("1", domain.RoleUser, time.Now().Add(time.Hour)))
	if err != nil {
		t.Fatalf("issue returned error: %v", err)
	}
	if parts := strings.Split(issued, "."); len(parts) != 3 {
		t.Fatalf("expected header.payload.signature, got %d parts", len(parts))
	}
}
