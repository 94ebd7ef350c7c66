// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"
)

var (
	ErrInvalidAccessCode = errors.New("invalid access code")
	ErrInvalidGateToken  = errors.New("invalid gate token")
)

// gateSubject is the fixed message the gate token signs. The token
// proves the holder passed the access gate, nothing more; it carries
// no identity.
const gateSubject = "revy-brief-gate-v1"

// ValidateAccessCode compares the submitted code against the
// configured one in constant time.
func ValidateAccessCode(code, expected string) error {
	if expected == "" || subtle.ConstantTimeCompare([]byte(code), []byte(expected)) != 1 {
		return ErrInvalidAccessCode
	}
	return nil
}

// GenerateGateToken creates the HMAC-based gate token for a salt.
// This is deterministic and verifiable without server-side state.
func GenerateGateToken(salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(gateSubject))
	sum := h.Sum(nil)
	// URL-safe base64 and trim padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateGateToken checks that the provided token was minted with the
// configured salt.
func ValidateGateToken(token, salt string) error {
	expected := GenerateGateToken(salt)
	if !hmac.Equal([]byte(token), []byte(expected)) {
		return ErrInvalidGateToken
	}
	return nil
}
