package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTRoundTrip(t *testing.T) {
	tok, exp, err := SignJWT("s3cret", "user-1", "sess-1", 5)
	if err != nil || exp.IsZero() {
		t.Fatalf("sign: %v", err)
	}
	c, err := ParseJWT("s3cret", tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.UserID != "user-1" || c.SessionID != "sess-1" {
		t.Fatalf("unexpected claims %+v", c)
	}
	if _, err := ParseJWT("other", tok); err == nil {
		t.Fatalf("wrong secret must fail")
	}
}

func TestJWTExpiredAndForeignAlg(t *testing.T) {
	tok, _, _ := SignJWT("s3cret", "u", "s", -1)
	if _, err := ParseJWT("s3cret", tok); err == nil {
		t.Fatalf("expired token must fail")
	}

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "u", SessionID: "s"})
	raw, _ := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := ParseJWT("s3cret", raw); err == nil {
		t.Fatalf("alg none must be rejected")
	}
}

func TestPasswordHash(t *testing.T) {
	h, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(h, "hunter22") || CheckPassword(h, "hunter23") {
		t.Fatalf("bcrypt check mismatch")
	}
}
